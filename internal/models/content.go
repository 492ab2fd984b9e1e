package models

import (
	"github.com/google/uuid"
)

// Announcement is a site-wide banner message.
type Announcement struct {
	BaseModel
	Content  string `json:"content"`
	IsActive bool   `json:"is_active"`
}

// Notification targets a single user, or everyone when IsBroadcast is set
// and UserID is nil.
type Notification struct {
	BaseModel
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User        *User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	IsRead      bool       `json:"is_read"`
	IsBroadcast bool       `json:"is_broadcast"`
}

// Setting is a key/value system configuration row.
type Setting struct {
	BaseModel
	Key   string `gorm:"uniqueIndex" json:"key"`
	Value string `json:"value"`
}

// WelcomeMessage is shown to users on first visit; the latest active row wins.
type WelcomeMessage struct {
	BaseModel
	Title    string `json:"title"`
	Message  string `json:"message"`
	IsActive bool   `json:"is_active"`
}

// SupportMessage is one entry in a user's support conversation.
type SupportMessage struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User       *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SenderType string    `json:"sender_type"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
}

// FaqItem is a question/answer pair ordered by DisplayOrder on the public page.
type FaqItem struct {
	BaseModel
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}
