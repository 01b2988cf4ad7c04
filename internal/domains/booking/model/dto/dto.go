package dto

import (
	"krown/internal/domains/booking/model"
)

// ListParams narrow a booking list fetch. View is "recent" or "past" and
// Search is matched upstream against guest name and mobile number.
type ListParams struct {
	View   string `validate:"omitempty,oneof=recent past"`
	Search string `validate:"omitempty,max=100"`
}

// UpdateStatusRequest carries an operator decision for one booking.
type UpdateStatusRequest struct {
	Status model.Status `json:"status" validate:"required,oneof=accepted rejected"`
}

// ToggleSlotRequest flips availability for one slot time inside a category.
type ToggleSlotRequest struct {
	Category    string `json:"category" validate:"required"`
	SlotTime    string `json:"slot_time" validate:"required"`
	IsAvailable bool   `json:"is_available"`
}

// SlotGroup is the console's grouped slot view, one entry per category with
// its slots ordered by time of day.
type SlotGroup struct {
	Category string       `json:"category"`
	Slots    []model.Slot `json:"slots"`
}

// BookingResponse is the list/detail payload shape handed to the router.
type BookingResponse struct {
	Bookings []model.Booking `json:"bookings"`
}
