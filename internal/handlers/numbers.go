package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/otpking/internal/ledger"
	"github.com/example/otpking/internal/middleware"
	"github.com/example/otpking/internal/models"
	"github.com/example/otpking/internal/store"
)

const defaultNumberCost = 10

// NumberHandler serves country pools, number claims, SMS inboxes and saved
// numbers.
type NumberHandler struct {
	st     *store.Store
	ledger *ledger.Ledger
}

// NewNumberHandler constructs NumberHandler.
func NewNumberHandler(st *store.Store, lg *ledger.Ledger) *NumberHandler {
	return &NumberHandler{st: st, ledger: lg}
}

// ListCountries returns all country pools.
func (h *NumberHandler) ListCountries(c *fiber.Ctx) error {
	countries, err := h.st.ListCountries()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": countries})
}

type claimNumberRequest struct {
	CountryID string `json:"countryId"`
}

// ClaimNumber charges the configured credit cost and hands out the next
// number from the requested pool.
func (h *NumberHandler) ClaimNumber(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req claimNumberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	countryID, err := uuid.Parse(req.CountryID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid country id")
	}

	cost, err := h.numberCost()
	if err != nil {
		return err
	}

	history, err := h.ledger.ClaimNumber(user.ID, countryID, cost)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrCountryNotFound):
			return fiber.NewError(fiber.StatusNotFound, "country not found")
		case errors.Is(err, ledger.ErrPoolExhausted):
			return fiber.NewError(fiber.StatusConflict, "no numbers available for this country")
		case errors.Is(err, ledger.ErrInsufficientCredits):
			return fiber.NewError(fiber.StatusPaymentRequired, "insufficient credits")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": history})
}

// History returns the authenticated user's claimed numbers.
func (h *NumberHandler) History(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	history, err := h.st.ListUserHistory(user.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": history})
}

// SmsMessages returns the inbox for a phone number.
func (h *NumberHandler) SmsMessages(c *fiber.Ctx) error {
	phoneNumber := c.Params("phoneNumber")
	if phoneNumber == "" {
		return fiber.NewError(fiber.StatusBadRequest, "phone number required")
	}

	messages, err := h.st.ListSmsMessages(phoneNumber)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": messages})
}

// ListSavedNumbers returns the user's bookmarked numbers.
func (h *NumberHandler) ListSavedNumbers(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	saved, err := h.st.ListUserSavedNumbers(user.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": saved})
}

type saveNumberRequest struct {
	CountryID   string `json:"countryId"`
	PhoneNumber string `json:"phoneNumber"`
}

// SaveNumber bookmarks a number for the user.
func (h *NumberHandler) SaveNumber(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req saveNumberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.PhoneNumber == "" {
		return fiber.NewError(fiber.StatusBadRequest, "phone number required")
	}

	countryID, err := uuid.Parse(req.CountryID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid country id")
	}

	already, err := h.st.IsSavedNumber(user.ID, req.PhoneNumber)
	if err != nil {
		return err
	}
	if already {
		return fiber.NewError(fiber.StatusConflict, "number already saved")
	}

	saved := models.SavedNumber{
		UserID:      user.ID,
		CountryID:   countryID,
		PhoneNumber: req.PhoneNumber,
		SavedAt:     time.Now(),
	}
	if err := h.st.SaveNumber(&saved); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": saved})
}

// DeleteSavedNumber removes one of the user's bookmarks.
func (h *NumberHandler) DeleteSavedNumber(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.st.DeleteSavedNumber(id, user.ID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "saved number deleted"})
}

// IsSaved reports whether the user already bookmarked a number.
func (h *NumberHandler) IsSaved(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	phoneNumber := c.Query("phoneNumber")
	if phoneNumber == "" {
		return fiber.NewError(fiber.StatusBadRequest, "phone number required")
	}

	saved, err := h.st.IsSavedNumber(user.ID, phoneNumber)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "saved": saved})
}

func (h *NumberHandler) numberCost() (int, error) {
	setting, err := h.st.GetSetting("number_cost")
	if err != nil {
		return 0, err
	}
	if setting == nil {
		return defaultNumberCost, nil
	}
	cost, err := strconv.Atoi(setting.Value)
	if err != nil || cost < 0 {
		return defaultNumberCost, nil
	}
	return cost, nil
}
