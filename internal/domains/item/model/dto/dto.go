package dto

import (
	"krown/internal/domains/item/model"
)

// CreateItemRequest adds a menu item. Price must be positive; zero-priced
// items are rejected before any upstream call.
type CreateItemRequest struct {
	ItemName        string  `json:"item_name" validate:"required,min=2,max=100"`
	ItemDescription string  `json:"item_description" validate:"required,min=2,max=500"`
	Category        string  `json:"category" validate:"required,min=2,max=50"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	Recommended     bool    `json:"recommended"`
}

// UpdateItemRequest edits an existing menu item.
type UpdateItemRequest struct {
	ItemName        string  `json:"item_name" validate:"required,min=2,max=100"`
	ItemDescription string  `json:"item_description" validate:"required,min=2,max=500"`
	Category        string  `json:"category" validate:"required,min=2,max=50"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	Recommended     bool    `json:"recommended"`
}

// DeleteItemRequest names the item to remove.
type DeleteItemRequest struct {
	ItemID int `json:"item_id" validate:"required"`
}

// CafeResponse is the upstream café payload; only the menu is consumed
// here.
type CafeResponse struct {
	Items []model.Item `json:"items"`
}
