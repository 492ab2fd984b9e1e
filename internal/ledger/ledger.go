// Package ledger owns every mutation of user credit balances. Each operation
// appends a wallet transaction and updates the cached balance inside a single
// database transaction, so the ledger and the balance cannot drift apart.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/otpking/internal/models"
)

// Failure reasons for credit operations. Handlers collapse the claim reasons
// into a plain {success:false} response but they are kept distinct here for
// logging and tests.
var (
	ErrCodeNotFound        = errors.New("gift code not found")
	ErrCodeInactive        = errors.New("gift code is inactive")
	ErrCodeExhausted       = errors.New("gift code claim limit reached")
	ErrCodeExpired         = errors.New("gift code expired")
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInvalidKind         = errors.New("invalid transaction type")
)

// Ledger applies balance-affecting operations atomically.
type Ledger struct {
	db  *gorm.DB
	log *zap.Logger
}

// New constructs a Ledger.
func New(db *gorm.DB, log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{db: db, log: log}
}

// ClaimResult mirrors the wire shape of a gift code claim.
type ClaimResult struct {
	Success      bool `json:"success"`
	CreditsAdded int  `json:"creditsAdded"`
}

// apply credits (or debits, for negative amounts) a user and appends the
// matching ledger entry. Must run inside an open transaction.
func (l *Ledger) apply(tx *gorm.DB, userID uuid.UUID, kind models.TransactionType, amount int, description string) error {
	if !kind.Valid() {
		return ErrInvalidKind
	}

	res := tx.Model(&models.User{}).Where("id = ?", userID).
		Update("credits", gorm.Expr("credits + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}

	entry := models.WalletTransaction{
		UserID:      userID,
		Type:        kind,
		Amount:      amount,
		Description: description,
		Status:      models.StatusCompleted,
	}
	return tx.Create(&entry).Error
}

// Adjust moves a user's balance by amount and records the reason. Used for
// admin grants and purchase credits.
func (l *Ledger) Adjust(userID uuid.UUID, kind models.TransactionType, amount int, description string) error {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		return l.apply(tx, userID, kind, amount, description)
	})
	if err != nil {
		l.log.Warn("wallet adjustment failed",
			zap.String("user_id", userID.String()),
			zap.String("type", string(kind)),
			zap.Int("amount", amount),
			zap.Error(err))
		return err
	}

	l.log.Info("wallet adjusted",
		zap.String("user_id", userID.String()),
		zap.String("type", string(kind)),
		zap.Int("amount", amount))
	return nil
}

// ClaimGiftCode redeems a gift code for a user. Preconditions are checked in
// order (exists, active, slots remain, not expired, user exists) and the
// claim-count increment is a conditional update re-checked by the database,
// so two racing claims can never overshoot the cap. All three writes land in
// one transaction or not at all.
func (l *Ledger) ClaimGiftCode(code string, userID uuid.UUID) (ClaimResult, error) {
	var credited int

	err := l.db.Transaction(func(tx *gorm.DB) error {
		var gift models.GiftCode
		if err := tx.First(&gift, "code = ?", code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCodeNotFound
			}
			return err
		}

		now := time.Now()
		switch {
		case !gift.IsActive:
			return ErrCodeInactive
		case gift.ClaimedCount >= gift.MaxClaims:
			return ErrCodeExhausted
		case gift.ExpiryDate.Before(now):
			return ErrCodeExpired
		}

		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		res := tx.Model(&models.GiftCode{}).
			Where("id = ? AND is_active = ? AND claimed_count < max_claims AND expiry_date > ?",
				gift.ID, true, now).
			Update("claimed_count", gorm.Expr("claimed_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// lost the race for the last slot
			return ErrCodeExhausted
		}

		desc := fmt.Sprintf("Gift code claimed: %s", code)
		if err := l.apply(tx, userID, models.TransactionGiftCode, gift.CreditsAmount, desc); err != nil {
			return err
		}

		credited = gift.CreditsAmount
		return nil
	})
	if err != nil {
		l.log.Warn("gift code claim rejected",
			zap.String("code", code),
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return ClaimResult{Success: false, CreditsAdded: 0}, err
	}

	l.log.Info("gift code claimed",
		zap.String("code", code),
		zap.String("user_id", userID.String()),
		zap.Int("credits_added", credited))
	return ClaimResult{Success: true, CreditsAdded: credited}, nil
}

// ChargeNumberAccess debits the cost of claiming a number. The debit only
// lands when the user still holds at least cost credits; balances never go
// negative through this path.
func (l *Ledger) ChargeNumberAccess(userID uuid.UUID, cost int, description string) error {
	if cost < 0 {
		return ErrInvalidKind
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND credits >= ?", userID, cost).
			Update("credits", gorm.Expr("credits - ?", cost))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrUserNotFound
			}
			return ErrInsufficientCredits
		}

		entry := models.WalletTransaction{
			UserID:      userID,
			Type:        models.TransactionUsage,
			Amount:      -cost,
			Description: description,
			Status:      models.StatusCompleted,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		l.log.Warn("number access charge failed",
			zap.String("user_id", userID.String()),
			zap.Int("cost", cost),
			zap.Error(err))
	}
	return err
}

// GrantReferralBonus credits the referrer and bumps their successful
// referral counter in the same transaction.
func (l *Ledger) GrantReferralBonus(referrerID uuid.UUID, amount int, referredUsername string) error {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		desc := fmt.Sprintf("Referral bonus: %s signed up", referredUsername)
		if err := l.apply(tx, referrerID, models.TransactionReferral, amount, desc); err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", referrerID).
			Update("successful_referrals", gorm.Expr("successful_referrals + 1")).Error
	})
	if err != nil {
		l.log.Warn("referral bonus failed",
			zap.String("referrer_id", referrerID.String()),
			zap.Error(err))
		return err
	}

	l.log.Info("referral bonus granted",
		zap.String("referrer_id", referrerID.String()),
		zap.Int("amount", amount))
	return nil
}
