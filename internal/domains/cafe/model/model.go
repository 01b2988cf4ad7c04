package model

// Cafe is the café profile as held by the upstream. Times are "HH:MM:SS"
// strings and working days are upstream-defined day names.
type Cafe struct {
	CafeID          string   `json:"cafe_id"`
	CafeName        string   `json:"cafe_name"`
	CafeLocation    string   `json:"cafe_location"`
	CafeDescription string   `json:"cafe_description"`
	CafeMobileNo    string   `json:"cafe_mobile_no"`
	CafeUpiID       string   `json:"cafe_upi_id"`
	OpeningTime     string   `json:"opening_time"`
	ClosingTime     string   `json:"closing_time"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	WorkingDays     []string `json:"working_days"`
	IsAvailable     bool     `json:"is_available"`
}

// SlotHour is one bookable time inside a slot category.
type SlotHour struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// SlotCategory is a named group of bookable times, part of the café
// profile update payload.
type SlotCategory struct {
	Name  string     `json:"name"`
	Hours []SlotHour `json:"hours"`
}

// Image is one entry of the café's main or menu image sets.
type Image struct {
	ImageID  int    `json:"image_id"`
	CafeID   string `json:"cafe_id"`
	ImageURL string `json:"image_url"`
}
