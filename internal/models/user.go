// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a user account in the Inkwell application. UserID is chosen
// by the user at signup and never changes afterwards.
type User struct {
	UserID    string         `gorm:"primaryKey;size:64" json:"user_id"`
	Password  string         `gorm:"not null" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:CreatorUserID;references:UserID" json:"posts,omitempty"`
}
