package dto

import (
	"krown/internal/domains/cafe/model"
)

// UpdateCafeRequest carries the full editable café profile. Times come in
// as "HH:MM"; the upstream accepts both with and without seconds.
type UpdateCafeRequest struct {
	CafeName        string               `json:"cafe_name" validate:"required,min=3"`
	CafeLocation    string               `json:"cafe_location" validate:"required,min=5"`
	CafeDescription string               `json:"cafe_description" validate:"omitempty,max=500"`
	CafeMobileNo    string               `json:"cafe_mobile_no" validate:"required,min=10,max=16"`
	CafeUpiID       string               `json:"cafe_upi_id" validate:"required,min=5"`
	OpeningTime     string               `json:"opening_time" validate:"required,datetime=15:04"`
	ClosingTime     string               `json:"closing_time" validate:"required,datetime=15:04"`
	Latitude        *float64             `json:"latitude" validate:"omitempty,latitude"`
	Longitude       *float64             `json:"longitude" validate:"omitempty,longitude"`
	WorkingDays     []string             `json:"working_days" validate:"omitempty,dive,required"`
	IsAvailable     bool                 `json:"is_available"`
	Categories      []model.SlotCategory `json:"categories" validate:"omitempty,dive"`
}

// ImagesResponse is the upstream main-image listing for a café. Menu
// images come back as a bare array and need no wrapper.
type ImagesResponse struct {
	Main struct {
		Images []model.Image `json:"images"`
	} `json:"main"`
}
