package store

import (
	"github.com/google/uuid"

	"github.com/example/otpking/internal/models"
)

// GetGiftCode looks a gift code up by its code string. Returns (nil, nil)
// when absent.
func (s *Store) GetGiftCode(code string) (*models.GiftCode, error) {
	var gift models.GiftCode
	found, err := first(s.db.First(&gift, "code = ?", code))
	if err != nil || !found {
		return nil, err
	}
	return &gift, nil
}

// ListGiftCodes returns all gift codes, newest first.
func (s *Store) ListGiftCodes() ([]models.GiftCode, error) {
	var codes []models.GiftCode
	err := s.db.Order("created_at desc").Find(&codes).Error
	return codes, err
}

// CreateGiftCode inserts a new gift code.
func (s *Store) CreateGiftCode(gift *models.GiftCode) error {
	return s.db.Create(gift).Error
}

// UpdateGiftCode applies partial field updates to a gift code. ClaimedCount
// is owned by the ledger and must not be set through here.
func (s *Store) UpdateGiftCode(id uuid.UUID, updates map[string]interface{}) error {
	return s.db.Model(&models.GiftCode{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteGiftCode removes a gift code.
func (s *Store) DeleteGiftCode(id uuid.UUID) error {
	return s.db.Delete(&models.GiftCode{}, "id = ?", id).Error
}
