package store

import (
	"github.com/google/uuid"

	"github.com/example/otpking/internal/models"
)

// ListCountries returns all country pools, newest first.
func (s *Store) ListCountries() ([]models.Country, error) {
	var countries []models.Country
	err := s.db.Order("created_at desc").Find(&countries).Error
	return countries, err
}

// GetCountry looks a country up by ID. Returns (nil, nil) when absent.
func (s *Store) GetCountry(id uuid.UUID) (*models.Country, error) {
	var country models.Country
	found, err := first(s.db.First(&country, "id = ?", id))
	if err != nil || !found {
		return nil, err
	}
	return &country, nil
}

// CreateCountry inserts a new country pool.
func (s *Store) CreateCountry(country *models.Country) error {
	return s.db.Create(country).Error
}

// UpdateCountry applies partial field updates to a country row.
func (s *Store) UpdateCountry(id uuid.UUID, updates map[string]interface{}) error {
	return s.db.Model(&models.Country{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteCountry removes a country pool and cascades to its history and
// saved numbers.
func (s *Store) DeleteCountry(id uuid.UUID) error {
	return s.db.Delete(&models.Country{}, "id = ?", id).Error
}
