package seed

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/otpking/internal/config"
	"github.com/example/otpking/internal/models"
	"github.com/example/otpking/internal/store"
	"github.com/example/otpking/internal/utils"
)

const adminInitialCredits = 10000

// Run creates the initial admin account when ADMIN_USERNAME/ADMIN_PASSWORD
// are configured and no such user exists yet.
func Run(db *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	st := store.New(db)
	existing, err := st.GetUserByUsername(cfg.AdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Info("admin user already exists", zap.String("username", cfg.AdminUsername))
		return nil
	}

	passwordHash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	referralCode, err := utils.GenerateReferralCode()
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: passwordHash,
		Credits:      adminInitialCredits,
		ReferralCode: referralCode,
		IsAdmin:      true,
		IPAddress:    "127.0.0.1",
	}
	if err := st.CreateUser(&admin); err != nil {
		return err
	}

	log.Info("admin user created", zap.String("username", admin.Username))
	return nil
}
