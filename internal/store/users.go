package store

import (
	"github.com/google/uuid"

	"github.com/example/otpking/internal/models"
)

// GetUser looks a user up by ID. Returns (nil, nil) when absent.
func (s *Store) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	found, err := first(s.db.First(&user, "id = ?", id))
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername looks a user up by username.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	found, err := first(s.db.First(&user, "username = ?", username))
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// GetUserByReferralCode looks a user up by their referral code.
func (s *Store) GetUserByReferralCode(code string) (*models.User, error) {
	var user models.User
	found, err := first(s.db.First(&user, "referral_code = ?", code))
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// GetUserByIP returns the first user registered from the given address.
func (s *Store) GetUserByIP(ip string) (*models.User, error) {
	var user models.User
	found, err := first(s.db.First(&user, "ip_address = ?", ip))
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user.
func (s *Store) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

// UpdateUser applies partial field updates to a user row.
func (s *Store) UpdateUser(id uuid.UUID, updates map[string]interface{}) error {
	return s.db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
}

// ListUsers returns all users, newest first.
func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at desc").Find(&users).Error
	return users, err
}

// SearchUsers returns users whose username or email matches the query.
func (s *Store) SearchUsers(query string) ([]models.User, error) {
	var users []models.User
	like := "%" + query + "%"
	err := s.db.Where("username LIKE ? OR email LIKE ?", like, like).
		Order("created_at desc").Find(&users).Error
	return users, err
}

// DeleteUser removes a user; the schema cascades to history, notifications,
// wallet transactions, support messages and saved numbers.
func (s *Store) DeleteUser(id uuid.UUID) error {
	return s.db.Delete(&models.User{}, "id = ?", id).Error
}

// CountUsers returns the total number of registered users.
func (s *Store) CountUsers() (int64, error) {
	var total int64
	err := s.db.Model(&models.User{}).Count(&total).Error
	return total, err
}
