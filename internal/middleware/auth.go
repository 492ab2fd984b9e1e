package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/otpking/internal/config"
	"github.com/example/otpking/internal/models"
	"github.com/example/otpking/internal/store"
	"github.com/example/otpking/internal/utils"
)

const userContextKey = "currentUser"

// AuthMiddleware validates JWT tokens, loads the authenticated user and
// rejects banned accounts.
func AuthMiddleware(cfg *config.Config, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		userID, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		user, err := st.GetUser(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		if user.IsBanned {
			return fiber.NewError(fiber.StatusForbidden, "account is banned")
		}

		c.Locals(userContextKey, user)
		return c.Next()
	}
}

// RequireAdmin allows only admin accounts through. Must run after
// AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetCurrentUser(c)
		if !ok || !user.IsAdmin {
			return fiber.NewError(fiber.StatusForbidden, "admin access required")
		}
		return c.Next()
	}
}

// RequireStaff allows admins and moderators through. Must run after
// AuthMiddleware.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetCurrentUser(c)
		if !ok || (!user.IsAdmin && !user.IsModerator) {
			return fiber.NewError(fiber.StatusForbidden, "staff access required")
		}
		return c.Next()
	}
}

// GetCurrentUser extracts the authenticated user from context.
func GetCurrentUser(c *fiber.Ctx) (*models.User, bool) {
	value := c.Locals(userContextKey)
	if value == nil {
		return nil, false
	}

	if user, ok := value.(*models.User); ok {
		return user, true
	}

	return nil, false
}
