package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/otpking/internal/models"
)

var (
	ErrCountryNotFound = errors.New("country not found")
	ErrPoolExhausted   = errors.New("no numbers left in pool")
)

// ClaimNumber takes the next unused number from a country pool, debits the
// user and appends the history record, all in one transaction. The pool
// increment and the debit are both conditional updates, so concurrent claims
// cannot hand out the same slot or drive a balance negative.
func (l *Ledger) ClaimNumber(userID, countryID uuid.UUID, cost int) (*models.NumberHistory, error) {
	var history *models.NumberHistory

	err := l.db.Transaction(func(tx *gorm.DB) error {
		var country models.Country
		if err := tx.First(&country, "id = ?", countryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCountryNotFound
			}
			return err
		}

		res := tx.Model(&models.Country{}).
			Where("id = ? AND used_numbers < total_numbers", countryID).
			Update("used_numbers", gorm.Expr("used_numbers + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPoolExhausted
		}

		// reload to learn which slot this claim took
		if err := tx.First(&country, "id = ?", countryID).Error; err != nil {
			return err
		}

		pool := strings.Split(strings.TrimSpace(country.Numbers), "\n")
		index := country.UsedNumbers - 1
		if index < 0 || index >= len(pool) {
			return ErrPoolExhausted
		}
		phone := strings.TrimSpace(pool[index])

		if cost > 0 {
			debit := tx.Model(&models.User{}).
				Where("id = ? AND credits >= ?", userID, cost).
				Update("credits", gorm.Expr("credits - ?", cost))
			if debit.Error != nil {
				return debit.Error
			}
			if debit.RowsAffected == 0 {
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
				Description: fmt.Sprintf("Number claimed: %s (%s)", phone, country.Name),
				Status:      models.StatusCompleted,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}

		record := models.NumberHistory{
			UserID:      userID,
			CountryID:   countryID,
			PhoneNumber: phone,
			UsedAt:      time.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		history = &record
		return nil
	})
	if err != nil {
		l.log.Warn("number claim rejected",
			zap.String("user_id", userID.String()),
			zap.String("country_id", countryID.String()),
			zap.Error(err))
		return nil, err
	}

	l.log.Info("number claimed",
		zap.String("user_id", userID.String()),
		zap.String("phone_number", history.PhoneNumber),
		zap.Int("cost", cost))
	return history, nil
}
