package model

import "time"

const EntityName = "gallery"

// Image is one café gallery picture. The file lives in the blob store; the
// upstream keeps the record that ties it to the café.
type Image struct {
	ImageID   int       `json:"image_id"`
	CafeID    string    `json:"cafe_id"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
