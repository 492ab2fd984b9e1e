package models

import (
	"time"
)

// User represents a registered account. Credits is a cached projection of the
// wallet ledger; it is only ever mutated together with a ledger append.
type User struct {
	BaseModel
	Username              string     `gorm:"uniqueIndex" json:"username"`
	PasswordHash          string     `json:"-"`
	Email                 string     `json:"email"`
	Credits               int        `json:"credits"`
	ReferralCode          string     `gorm:"uniqueIndex" json:"referral_code"`
	ReferredBy            string     `json:"referred_by"`
	SuccessfulReferrals   int        `json:"successful_referrals"`
	IsBanned              bool       `json:"is_banned"`
	IsAdmin               bool       `json:"is_admin"`
	IsModerator           bool       `json:"is_moderator"`
	IPAddress             string     `gorm:"index" json:"ip_address"`
	LastLoginDate         *time.Time `json:"last_login_date"`
	WelcomeAcknowledgedAt *time.Time `json:"welcome_acknowledged_at"`
}
