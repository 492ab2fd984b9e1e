package store

import (
	"github.com/google/uuid"

	"github.com/example/otpking/internal/models"
)

// Number history

// ListUserHistory returns a user's claimed numbers, most recent first.
func (s *Store) ListUserHistory(userID uuid.UUID) ([]models.NumberHistory, error) {
	var history []models.NumberHistory
	err := s.db.Preload("Country").Where("user_id = ?", userID).
		Order("used_at desc").Find(&history).Error
	return history, err
}

// CreateNumberHistory appends an immutable claim record.
func (s *Store) CreateNumberHistory(history *models.NumberHistory) error {
	return s.db.Create(history).Error
}

// SMS messages

// ListSmsMessages returns messages delivered to a number, newest first.
func (s *Store) ListSmsMessages(phoneNumber string) ([]models.SmsMessage, error) {
	var messages []models.SmsMessage
	err := s.db.Where("phone_number = ?", phoneNumber).
		Order("received_at desc").Find(&messages).Error
	return messages, err
}

// CreateSmsMessage inserts a message received from the external feeder.
func (s *Store) CreateSmsMessage(sms *models.SmsMessage) error {
	return s.db.Create(sms).Error
}

// Saved numbers

// ListUserSavedNumbers returns a user's bookmarks with their country, newest first.
func (s *Store) ListUserSavedNumbers(userID uuid.UUID) ([]models.SavedNumber, error) {
	var saved []models.SavedNumber
	err := s.db.Preload("Country").Where("user_id = ?", userID).
		Order("saved_at desc").Find(&saved).Error
	return saved, err
}

// SaveNumber bookmarks a number for a user.
func (s *Store) SaveNumber(saved *models.SavedNumber) error {
	return s.db.Create(saved).Error
}

// DeleteSavedNumber removes a bookmark owned by the user.
func (s *Store) DeleteSavedNumber(id, userID uuid.UUID) error {
	return s.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.SavedNumber{}).Error
}

// IsSavedNumber reports whether the user already bookmarked the number.
func (s *Store) IsSavedNumber(userID uuid.UUID, phoneNumber string) (bool, error) {
	var count int64
	err := s.db.Model(&models.SavedNumber{}).
		Where("user_id = ? AND phone_number = ?", userID, phoneNumber).
		Count(&count).Error
	return count > 0, err
}
