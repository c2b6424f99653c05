// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a blog post in the Inkwell application.
type Post struct {
	ID    uint   `gorm:"primaryKey" json:"blog_id"`
	Title string `gorm:"not null" json:"title"`
	Body  string `gorm:"type:text" json:"body"`
	// CreatorName is display-only; ownership decisions never look at it.
	CreatorName string `gorm:"not null" json:"creator_name"`
	// CreatorUserID is fixed at creation time and is the only input,
	// together with the acting user id, to the ownership check on
	// edit and delete.
	CreatorUserID string         `gorm:"not null;index" json:"creator_user_id"`
	Creator       *User          `gorm:"foreignKey:CreatorUserID;references:UserID" json:"creator,omitempty"`
	CreatedAt     time.Time      `json:"date_created"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
