package model

const EntityName = "item"

// Item is one menu entry of a café.
type Item struct {
	ItemID          int     `json:"item_id"`
	ItemName        string  `json:"item_name"`
	ItemDescription string  `json:"item_description"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	Recommended     bool    `json:"recommended"`
	ImageURL        *string `json:"image_url"`
	ImageID         *int    `json:"image_id"`
}
