package models

import "gorm.io/gorm"

// User represents an account that owns saved content.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)"`
	Password   string `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
