package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/otpking/internal/ledger"
	"github.com/example/otpking/internal/middleware"
	"github.com/example/otpking/internal/store"
)

// WalletHandler serves wallet ledgers and gift code claims.
type WalletHandler struct {
	st     *store.Store
	ledger *ledger.Ledger
}

// NewWalletHandler constructs WalletHandler.
func NewWalletHandler(st *store.Store, lg *ledger.Ledger) *WalletHandler {
	return &WalletHandler{st: st, ledger: lg}
}

// ListWallet returns the authenticated user's ledger entries.
func (h *WalletHandler) ListWallet(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	transactions, err := h.st.ListUserWallet(user.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": transactions})
}

type claimGiftCodeRequest struct {
	Code string `json:"code"`
}

// ClaimGiftCode redeems a gift code. Precondition failures all collapse to
// {success:false, creditsAdded:0}, matching the client contract; the reason
// is logged server side.
func (h *WalletHandler) ClaimGiftCode(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req claimGiftCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "code required")
	}

	result, err := h.ledger.ClaimGiftCode(req.Code, user.ID)
	if err != nil && !isClaimRejection(err) {
		return err
	}

	return c.JSON(result)
}

func isClaimRejection(err error) bool {
	return errors.Is(err, ledger.ErrCodeNotFound) ||
		errors.Is(err, ledger.ErrCodeInactive) ||
		errors.Is(err, ledger.ErrCodeExhausted) ||
		errors.Is(err, ledger.ErrCodeExpired) ||
		errors.Is(err, ledger.ErrUserNotFound)
}
