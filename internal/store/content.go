package store

import (
	"github.com/google/uuid"

	"github.com/example/otpking/internal/models"
)

// Announcements

func (s *Store) ListAnnouncements() ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := s.db.Order("created_at desc").Find(&announcements).Error
	return announcements, err
}

func (s *Store) ListActiveAnnouncements() ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := s.db.Where("is_active = ?", true).
		Order("created_at desc").Find(&announcements).Error
	return announcements, err
}

func (s *Store) CreateAnnouncement(a *models.Announcement) error {
	return s.db.Create(a).Error
}

func (s *Store) UpdateAnnouncement(id uuid.UUID, content string) error {
	return s.db.Model(&models.Announcement{}).Where("id = ?", id).
		Update("content", content).Error
}

func (s *Store) ToggleAnnouncement(id uuid.UUID, isActive bool) error {
	return s.db.Model(&models.Announcement{}).Where("id = ?", id).
		Update("is_active", isActive).Error
}

func (s *Store) DeleteAnnouncement(id uuid.UUID) error {
	return s.db.Delete(&models.Announcement{}, "id = ?", id).Error
}

// Notifications

// ListUserNotifications returns a user's notifications plus broadcasts,
// newest first.
func (s *Store) ListUserNotifications(userID uuid.UUID) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Where("user_id = ? OR is_broadcast = ?", userID, true).
		Order("created_at desc").Find(&notifications).Error
	return notifications, err
}

func (s *Store) ListBroadcastNotifications() ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Where("is_broadcast = ?", true).
		Order("created_at desc").Find(&notifications).Error
	return notifications, err
}

func (s *Store) CreateNotification(n *models.Notification) error {
	return s.db.Create(n).Error
}

func (s *Store) MarkNotificationRead(id uuid.UUID) error {
	return s.db.Model(&models.Notification{}).Where("id = ?", id).
		Update("is_read", true).Error
}

// Settings

// GetSetting looks a setting up by key. Returns (nil, nil) when absent.
func (s *Store) GetSetting(key string) (*models.Setting, error) {
	var setting models.Setting
	found, err := first(s.db.First(&setting, "key = ?", key))
	if err != nil || !found {
		return nil, err
	}
	return &setting, nil
}

// SetSetting inserts or updates a setting value by key.
func (s *Store) SetSetting(key, value string) (*models.Setting, error) {
	existing, err := s.GetSetting(key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Value = value
		if err := s.db.Model(&models.Setting{}).Where("key = ?", key).
			Update("value", value).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}

	setting := models.Setting{Key: key, Value: value}
	if err := s.db.Create(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// Welcome messages

func (s *Store) ListWelcomeMessages() ([]models.WelcomeMessage, error) {
	var messages []models.WelcomeMessage
	err := s.db.Order("created_at desc").Find(&messages).Error
	return messages, err
}

// GetActiveWelcomeMessage returns the most recent active welcome message, or
// (nil, nil) when none is configured.
func (s *Store) GetActiveWelcomeMessage() (*models.WelcomeMessage, error) {
	var message models.WelcomeMessage
	found, err := first(s.db.Where("is_active = ?", true).
		Order("created_at desc").First(&message))
	if err != nil || !found {
		return nil, err
	}
	return &message, nil
}

func (s *Store) CreateWelcomeMessage(m *models.WelcomeMessage) error {
	return s.db.Create(m).Error
}

func (s *Store) UpdateWelcomeMessage(id uuid.UUID, updates map[string]interface{}) error {
	return s.db.Model(&models.WelcomeMessage{}).Where("id = ?", id).Updates(updates).Error
}

func (s *Store) DeleteWelcomeMessage(id uuid.UUID) error {
	return s.db.Delete(&models.WelcomeMessage{}, "id = ?", id).Error
}

// Support messages

func (s *Store) ListUserSupportMessages(userID uuid.UUID) ([]models.SupportMessage, error) {
	var messages []models.SupportMessage
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").Find(&messages).Error
	return messages, err
}

func (s *Store) ListAllSupportMessages() ([]models.SupportMessage, error) {
	var messages []models.SupportMessage
	err := s.db.Order("created_at desc").Find(&messages).Error
	return messages, err
}

func (s *Store) CreateSupportMessage(m *models.SupportMessage) error {
	return s.db.Create(m).Error
}

func (s *Store) MarkSupportMessageRead(id uuid.UUID) error {
	return s.db.Model(&models.SupportMessage{}).Where("id = ?", id).
		Update("is_read", true).Error
}

func (s *Store) DeleteSupportMessage(id uuid.UUID) error {
	return s.db.Delete(&models.SupportMessage{}, "id = ?", id).Error
}

// FAQ items

// ListActiveFaqItems returns the public FAQ: active items only, sorted by
// display order ascending.
func (s *Store) ListActiveFaqItems() ([]models.FaqItem, error) {
	var items []models.FaqItem
	err := s.db.Where("is_active = ?", true).
		Order("display_order asc").Find(&items).Error
	return items, err
}

// ListAllFaqItems returns every FAQ item for the admin panel.
func (s *Store) ListAllFaqItems() ([]models.FaqItem, error) {
	var items []models.FaqItem
	err := s.db.Order("display_order asc").Find(&items).Error
	return items, err
}

func (s *Store) CreateFaqItem(item *models.FaqItem) error {
	return s.db.Create(item).Error
}

func (s *Store) UpdateFaqItem(id uuid.UUID, updates map[string]interface{}) error {
	return s.db.Model(&models.FaqItem{}).Where("id = ?", id).Updates(updates).Error
}

func (s *Store) DeleteFaqItem(id uuid.UUID) error {
	return s.db.Delete(&models.FaqItem{}, "id = ?", id).Error
}
