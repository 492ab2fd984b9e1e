package store

import (
	"errors"

	"gorm.io/gorm"
)

// Store mediates all reads and writes against the relational store. It is
// the only component that touches gorm directly besides the credit ledger.
type Store struct {
	db *gorm.DB
}

// New constructs a Store over an initialized gorm connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// first runs a single-row lookup and maps a missing row to (found=false, nil)
// instead of an error. Simple lookups never fail on absence.
func first(tx *gorm.DB) (bool, error) {
	if err := tx.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
