package models

import (
	"time"

	"github.com/google/uuid"
)

// NumberHistory records one user claiming one number from a country pool.
type NumberHistory struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User        *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CountryID   uuid.UUID `gorm:"type:uuid;index" json:"country_id"`
	Country     *Country  `gorm:"constraint:OnDelete:CASCADE" json:"country,omitempty"`
	PhoneNumber string    `json:"phone_number"`
	UsedAt      time.Time `json:"used_at"`
}

// SmsMessage is a message delivered to a pool number by the external feeder.
type SmsMessage struct {
	BaseModel
	PhoneNumber string    `gorm:"index" json:"phone_number"`
	Sender      string    `json:"sender"`
	Message     string    `json:"message"`
	ReceivedAt  time.Time `json:"received_at"`
}

// SavedNumber is a number a user bookmarked for reuse.
type SavedNumber struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User        *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CountryID   uuid.UUID `gorm:"type:uuid;index" json:"country_id"`
	Country     *Country  `gorm:"constraint:OnDelete:CASCADE" json:"country,omitempty"`
	PhoneNumber string    `json:"phone_number"`
	SavedAt     time.Time `json:"saved_at"`
}
