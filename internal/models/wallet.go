package models

import (
	"github.com/google/uuid"
)

// TransactionType is the closed set of balance-affecting event kinds.
type TransactionType string

const (
	TransactionPurchase TransactionType = "purchase"
	TransactionReferral TransactionType = "referral"
	TransactionAdmin    TransactionType = "admin"
	TransactionUsage    TransactionType = "usage"
	TransactionGiftCode TransactionType = "giftcode"
)

// Valid reports whether t is one of the known transaction kinds.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionPurchase, TransactionReferral, TransactionAdmin,
		TransactionUsage, TransactionGiftCode:
		return true
	}
	return false
}

// TransactionStatus is the closed set of ledger entry states.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Valid reports whether s is one of the known statuses.
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// WalletTransaction is an immutable ledger entry. The sum of completed
// amounts per user is the source of truth behind User.Credits.
type WalletTransaction struct {
	BaseModel
	UserID        uuid.UUID         `gorm:"type:uuid;index" json:"user_id"`
	User          *User             `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Type          TransactionType   `json:"type"`
	Amount        int               `json:"amount"`
	Description   string            `json:"description"`
	Status        TransactionStatus `json:"status"`
	TransactionID string            `json:"transaction_id"`
}
