package models

import (
	"time"
)

// GiftCode is an admin-issued redeemable code. ClaimedCount may only grow
// through the ledger's conditional claim and never past MaxClaims.
type GiftCode struct {
	BaseModel
	Code          string    `gorm:"uniqueIndex" json:"code"`
	CreditsAmount int       `json:"credits_amount"`
	MaxClaims     int       `json:"max_claims"`
	ClaimedCount  int       `json:"claimed_count"`
	ExpiryDate    time.Time `json:"expiry_date"`
	IsActive      bool      `json:"is_active"`
}
