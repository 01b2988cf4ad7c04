package dto

import (
	"krown/internal/domains/notification/model"
)

// SendRequest carries one push notification tied to a booking. Title and
// Body default from the chosen template when left empty.
type SendRequest struct {
	BookingID string         `json:"booking_id" validate:"required"`
	UserID    string         `json:"user_id" validate:"required"`
	Template  model.Template `json:"template" validate:"omitempty,oneof=accepted rejected generic"`
	Title     string         `json:"title" validate:"omitempty,max=120"`
	Body      string         `json:"body" validate:"omitempty,max=500"`
}

// PushPayload is the upstream send contract. Data always references the
// booking and café so history lookups can find it again.
type PushPayload struct {
	UserID string         `json:"user_id"`
	Title  string         `json:"title"`
	Body   string         `json:"body"`
	Data   map[string]any `json:"data"`
}

// HistoryParams scope a history query to one booking's recipient.
type HistoryParams struct {
	BookingID string `validate:"required"`
	UserID    string `validate:"required"`
}

// HistoryResponse is the append-only log returned for a booking.
type HistoryResponse struct {
	Notifications []model.Notification `json:"notifications"`
}
