package models

import "gorm.io/gorm"

// Content is a saved reference to external material: a link plus a
// platform-type tag such as "youtube" or "twitter". Title and Notes are
// optional and not populated by every client.
type Content struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string   `json:"userId" gorm:"index;type:varchar(36)"`
	Link       string   `json:"link"`
	Type       string   `json:"type"`
	Title      string   `json:"title,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	Tags       []string `json:"tags" gorm:"serializer:json"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
