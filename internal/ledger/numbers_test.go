package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/otpking/internal/models"
)

func createCountry(t *testing.T, db *gorm.DB, name string, numbers string, total int) *models.Country {
	country := &models.Country{
		Name:         name,
		Code:         "XX",
		Numbers:      numbers,
		TotalNumbers: total,
	}
	require.NoError(t, db.Create(country).Error)
	return country
}

func TestClaimNumber(t *testing.T) {
	t.Run("hands out numbers in pool order and charges", func(t *testing.T) {
		db := setupTestDB(t)
		lg := New(db, zap.NewNop())
		user := createUser(t, db, "alice", 100)
		country := createCountry(t, db, "Testland", "+111\n+222", 2)

		first, err := lg.ClaimNumber(user.ID, country.ID, 10)
		require.NoError(t, err)
		assert.Equal(t, "+111", first.PhoneNumber)
		assert.Equal(t, 90, userCredits(t, db, user.ID))

		second, err := lg.ClaimNumber(user.ID, country.ID, 10)
		require.NoError(t, err)
		assert.Equal(t, "+222", second.PhoneNumber)
		assert.Equal(t, 80, userCredits(t, db, user.ID))

		var updated models.Country
		require.NoError(t, db.First(&updated, "id = ?", country.ID).Error)
		assert.Equal(t, 2, updated.UsedNumbers)

		entries := walletEntries(t, db, user.ID)
		assert.Len(t, entries, 2)
		for _, entry := range entries {
			assert.Equal(t, models.TransactionUsage, entry.Type)
			assert.Equal(t, -10, entry.Amount)
		}

		var history []models.NumberHistory
		require.NoError(t, db.Where("user_id = ?", user.ID).Find(&history).Error)
		assert.Len(t, history, 2)
	})

	t.Run("exhausted pool", func(t *testing.T) {
		db := setupTestDB(t)
		lg := New(db, zap.NewNop())
		user := createUser(t, db, "alice", 100)
		country := createCountry(t, db, "Testland", "+111", 1)

		_, err := lg.ClaimNumber(user.ID, country.ID, 10)
		require.NoError(t, err)

		_, err = lg.ClaimNumber(user.ID, country.ID, 10)
		assert.ErrorIs(t, err, ErrPoolExhausted)
		assert.Equal(t, 90, userCredits(t, db, user.ID))
	})

	t.Run("insufficient credits rolls back the pool slot", func(t *testing.T) {
		db := setupTestDB(t)
		lg := New(db, zap.NewNop())
		user := createUser(t, db, "alice", 5)
		country := createCountry(t, db, "Testland", "+111", 1)

		_, err := lg.ClaimNumber(user.ID, country.ID, 10)
		assert.ErrorIs(t, err, ErrInsufficientCredits)

		var updated models.Country
		require.NoError(t, db.First(&updated, "id = ?", country.ID).Error)
		assert.Equal(t, 0, updated.UsedNumbers, "failed claim must not consume a slot")

		var history []models.NumberHistory
		require.NoError(t, db.Where("user_id = ?", user.ID).Find(&history).Error)
		assert.Empty(t, history)
	})

	t.Run("unknown country", func(t *testing.T) {
		db := setupTestDB(t)
		lg := New(db, zap.NewNop())
		user := createUser(t, db, "alice", 100)

		_, err := lg.ClaimNumber(user.ID, uuid.New(), 10)
		assert.ErrorIs(t, err, ErrCountryNotFound)
	})

	t.Run("free claim skips the ledger", func(t *testing.T) {
		db := setupTestDB(t)
		lg := New(db, zap.NewNop())
		user := createUser(t, db, "alice", 100)
		country := createCountry(t, db, "Testland", "+111", 1)

		history, err := lg.ClaimNumber(user.ID, country.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, "+111", history.PhoneNumber)
		assert.Equal(t, 100, userCredits(t, db, user.ID))
		assert.Empty(t, walletEntries(t, db, user.ID))
	})
}
