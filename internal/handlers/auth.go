package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/otpking/internal/config"
	"github.com/example/otpking/internal/ledger"
	"github.com/example/otpking/internal/middleware"
	"github.com/example/otpking/internal/models"
	"github.com/example/otpking/internal/services"
	"github.com/example/otpking/internal/store"
	"github.com/example/otpking/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	st       *store.Store
	ledger   *ledger.Ledger
	cfg      *config.Config
	telegram *services.TelegramService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(st *store.Store, lg *ledger.Ledger, cfg *config.Config, tg *services.TelegramService) *AuthHandler {
	return &AuthHandler{st: st, ledger: lg, cfg: cfg, telegram: tg}
}

type signupRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	ReferralCode string `json:"referralCode"`
}

// Signup creates a new account, grants the signup bonus and pays the referral
// bonus when a valid referral code was supplied.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if len(req.Username) < 3 {
		return fiber.NewError(fiber.StatusBadRequest, "username must be at least 3 characters")
	}
	if len(req.Password) < 6 {
		return fiber.NewError(fiber.StatusBadRequest, "password must be at least 6 characters")
	}

	existing, err := h.st.GetUserByUsername(req.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return fiber.NewError(fiber.StatusConflict, "username already taken")
	}

	var referrer *models.User
	if req.ReferralCode != "" {
		referrer, err = h.st.GetUserByReferralCode(req.ReferralCode)
		if err != nil {
			return err
		}
		if referrer == nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid referral code")
		}
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	referralCode, err := utils.GenerateReferralCode()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate referral code")
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Email:        req.Email,
		Credits:      h.cfg.SignupBonus,
		ReferralCode: referralCode,
		ReferredBy:   req.ReferralCode,
		IPAddress:    c.IP(),
	}

	if err := h.st.CreateUser(&user); err != nil {
		return err
	}

	if referrer != nil {
		if err := h.ledger.GrantReferralBonus(referrer.ID, h.cfg.ReferralBonus, user.Username); err != nil {
			return err
		}
	}

	go h.telegram.NotifySignup(user.Username, req.ReferralCode)

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    publicUser(&user),
		"token":   token,
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an existing user.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.st.GetUserByUsername(req.Username)
	if err != nil {
		return err
	}
	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}
	if user.IsBanned {
		return fiber.NewError(fiber.StatusForbidden, "account is banned")
	}

	now := time.Now()
	if err := h.st.UpdateUser(user.ID, map[string]interface{}{
		"last_login_date": now,
		"ip_address":      c.IP(),
	}); err != nil {
		return err
	}
	user.LastLoginDate = &now

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    publicUser(user),
		"token":   token,
	})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{"success": true, "user": publicUser(user)})
}

// AcknowledgeWelcome stamps the per-user welcome acknowledgement.
func (h *AuthHandler) AcknowledgeWelcome(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now()
	if err := h.st.UpdateUser(user.ID, map[string]interface{}{
		"welcome_acknowledged_at": now,
	}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

func publicUser(user *models.User) fiber.Map {
	return fiber.Map{
		"id":                      user.ID,
		"username":                user.Username,
		"email":                   user.Email,
		"credits":                 user.Credits,
		"referral_code":           user.ReferralCode,
		"successful_referrals":    user.SuccessfulReferrals,
		"is_admin":                user.IsAdmin,
		"is_moderator":            user.IsModerator,
		"last_login_date":         user.LastLoginDate,
		"welcome_acknowledged_at": user.WelcomeAcknowledgedAt,
		"created_at":              user.CreatedAt,
	}
}
