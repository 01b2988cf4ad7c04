package model

import (
	"slices"
	"strings"
	"time"
)

const EntityName = "booking"

// Status is a booking's lifecycle state as reported by the upstream.
// "pending" and "initiated" both mean "awaiting an operator decision" and
// sort identically.
type Status string

const (
	StatusPending   Status = "pending"
	StatusInitiated Status = "initiated"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Weight orders statuses for display: open decisions first, then accepted,
// then closed. Unknown statuses sink to the bottom.
func (s Status) Weight() int {
	switch s {
	case StatusPending, StatusInitiated:
		return 0
	case StatusAccepted:
		return 1
	case StatusRejected, StatusCancelled:
		return 2
	default:
		return 99
	}
}

// Actionable reports whether an operator may still accept or reject the
// booking. Accepted, rejected and cancelled are terminal.
func (s Status) Actionable() bool {
	return s == StatusPending || s == StatusInitiated
}

// Booking mirrors the upstream booking record. The console never mutates it
// locally; status changes go through the upstream and trigger a refetch.
type Booking struct {
	BookingID         string    `json:"booking_id"`
	BookingDate       string    `json:"booking_date"`       // ISO date
	BookingStartTime  string    `json:"booking_start_time"` // "HH:MM:SS"
	NumOfGuests       int       `json:"num_of_guests"`
	SpecialRequest    *string   `json:"special_request"`
	BookingStatus     Status    `json:"booking_status"`
	AdvancePaid       bool      `json:"advance_paid"`
	TransactionAmount *float64  `json:"transaction_amount"`
	TransactionID     *string   `json:"transaction_id"`
	UserName          string    `json:"user_name"`
	UserMobileNo      string    `json:"user_mobile_no"`
	UserID            string    `json:"user_id"`
	CafeID            string    `json:"cafe_id"`
	CreatedAt         time.Time `json:"created_at"`
	NotificationSent  bool      `json:"notification_sent"`
}

// startKey composes date and start time into a single sortable key. Both
// components are fixed-width ISO strings, so lexicographic compare is
// chronological.
func (b Booking) startKey() string {
	return b.BookingDate + "T" + b.BookingStartTime
}

// Sort orders bookings for the console list: status weight ascending, then
// newest date+start-time first among equals, with booking_id as the final
// tiebreak so the order is deterministic.
func Sort(bookings []Booking) {
	slices.SortStableFunc(bookings, func(a, b Booking) int {
		if d := a.BookingStatus.Weight() - b.BookingStatus.Weight(); d != 0 {
			return d
		}

		if d := strings.Compare(b.startKey(), a.startKey()); d != 0 {
			return d
		}

		return strings.Compare(a.BookingID, b.BookingID)
	})
}

// Slot is a bookable time unit within a named category. Only availability
// is toggled from this console; slot definitions live in the café-update
// flow.
type Slot struct {
	SlotID      int    `json:"slot_id"`
	CafeID      string `json:"cafe_id"`
	Category    string `json:"category"`
	SlotTime    string `json:"slot_time"` // "HH:MM:SS"
	IsAvailable bool   `json:"is_available"`
}
