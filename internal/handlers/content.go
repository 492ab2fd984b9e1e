package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/otpking/internal/middleware"
	"github.com/example/otpking/internal/models"
	"github.com/example/otpking/internal/services"
	"github.com/example/otpking/internal/store"
)

// ContentHandler serves FAQs, welcome messages, announcements, notifications
// and support conversations to end users.
type ContentHandler struct {
	st       *store.Store
	telegram *services.TelegramService
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(st *store.Store, tg *services.TelegramService) *ContentHandler {
	return &ContentHandler{st: st, telegram: tg}
}

// ListFaqs returns active FAQ items ordered for display.
func (h *ContentHandler) ListFaqs(c *fiber.Ctx) error {
	items, err := h.st.ListActiveFaqItems()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// WelcomeMessage returns the most recent active welcome message.
func (h *ContentHandler) WelcomeMessage(c *fiber.Ctx) error {
	message, err := h.st.GetActiveWelcomeMessage()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": message})
}

// ListAnnouncements returns active announcements.
func (h *ContentHandler) ListAnnouncements(c *fiber.Ctx) error {
	announcements, err := h.st.ListActiveAnnouncements()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": announcements})
}

// ListNotifications returns the user's notifications plus broadcasts.
func (h *ContentHandler) ListNotifications(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	notifications, err := h.st.ListUserNotifications(user.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": notifications})
}

// MarkNotificationRead marks a notification as read.
func (h *ContentHandler) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.st.MarkNotificationRead(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// ListSupportMessages returns the user's support conversation.
func (h *ContentHandler) ListSupportMessages(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	messages, err := h.st.ListUserSupportMessages(user.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": messages})
}

type supportMessageRequest struct {
	Message string `json:"message"`
}

// CreateSupportMessage appends a message to the user's support conversation
// and pings the admin chat.
func (h *ContentHandler) CreateSupportMessage(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req supportMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message required")
	}

	message := models.SupportMessage{
		UserID:     user.ID,
		SenderType: "user",
		Message:    req.Message,
	}
	if err := h.st.CreateSupportMessage(&message); err != nil {
		return err
	}

	go h.telegram.NotifySupportMessage(user.Username, req.Message)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": message})
}
