package model

import "time"

const EntityName = "notification"

// Template selects one of the fixed message presets offered after a status
// decision.
type Template string

const (
	TemplateAccepted Template = "accepted"
	TemplateRejected Template = "rejected"
	TemplateGeneric  Template = "generic"
)

// Notification is one entry in the upstream's append-only push log.
type Notification struct {
	NotificationID string         `json:"notification_id"`
	Title          string         `json:"title"`
	Body           string         `json:"body"`
	Data           map[string]any `json:"data"`
	CreatedAt      time.Time      `json:"created_at"`
}
