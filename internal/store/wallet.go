package store

import (
	"github.com/google/uuid"

	"github.com/example/otpking/internal/models"
)

// ListUserWallet returns a user's ledger entries, newest first.
func (s *Store) ListUserWallet(userID uuid.UUID) ([]models.WalletTransaction, error) {
	var transactions []models.WalletTransaction
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").Find(&transactions).Error
	return transactions, err
}

// WalletStats aggregates ledger totals for the admin dashboard.
type WalletStats struct {
	TotalTransactions int64 `json:"total_transactions"`
	TotalPurchased    int64 `json:"total_purchased"`
}

// GetWalletStats returns the ledger entry count and the sum of completed
// purchase amounts.
func (s *Store) GetWalletStats() (*WalletStats, error) {
	var stats WalletStats
	if err := s.db.Model(&models.WalletTransaction{}).
		Count(&stats.TotalTransactions).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.WalletTransaction{}).
		Where("type = ? AND status = ?", models.TransactionPurchase, models.StatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalPurchased).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
