package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/otpking/internal/ledger"
	"github.com/example/otpking/internal/models"
	"github.com/example/otpking/internal/store"
)

// AdminHandler manages the back office: users, countries, gift codes,
// content, support, settings and the SMS feeder endpoint.
type AdminHandler struct {
	st     *store.Store
	ledger *ledger.Ledger
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(st *store.Store, lg *ledger.Ledger) *AdminHandler {
	return &AdminHandler{st: st, ledger: lg}
}

// Users

// ListUsers returns all users, optionally filtered by a search query.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	var (
		users []models.User
		err   error
	)
	if search := c.Query("search"); search != "" {
		users, err = h.st.SearchUsers(search)
	} else {
		users, err = h.st.ListUsers()
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": users})
}

type updateUserRequest struct {
	CreditsDelta *int    `json:"creditsDelta"`
	Description  string  `json:"description"`
	IsBanned     *bool   `json:"isBanned"`
	IsAdmin      *bool   `json:"isAdmin"`
	IsModerator  *bool   `json:"isModerator"`
	Email        *string `json:"email"`
}

// UpdateUser applies admin changes to an account. Credit changes go through
// the ledger so the balance and the transaction log stay consistent.
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	user, err := h.st.GetUser(id)
	if err != nil {
		return err
	}
	if user == nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.CreditsDelta != nil && *req.CreditsDelta != 0 {
		description := req.Description
		if description == "" {
			description = fmt.Sprintf("Admin adjustment: %+d credits", *req.CreditsDelta)
		}
		if err := h.ledger.Adjust(id, models.TransactionAdmin, *req.CreditsDelta, description); err != nil {
			return err
		}
	}

	updates := map[string]interface{}{}
	if req.IsBanned != nil {
		updates["is_banned"] = *req.IsBanned
	}
	if req.IsAdmin != nil {
		updates["is_admin"] = *req.IsAdmin
	}
	if req.IsModerator != nil {
		updates["is_moderator"] = *req.IsModerator
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if len(updates) > 0 {
		if err := h.st.UpdateUser(id, updates); err != nil {
			return err
		}
	}

	updated, err := h.st.GetUser(id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": updated})
}

// DeleteUser removes an account; the schema cascades to all owned records.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.st.DeleteUser(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "user deleted"})
}

// Countries

type countryRequest struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	FlagURL string `json:"flagUrl"`
	Numbers string `json:"numbers"`
}

// CreateCountry uploads a new country pool; Numbers is the raw
// newline-delimited number list.
func (h *AdminHandler) CreateCountry(c *fiber.Ctx) error {
	var req countryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name and code required")
	}

	country := models.Country{
		Name:         req.Name,
		Code:         req.Code,
		FlagURL:      req.FlagURL,
		Numbers:      req.Numbers,
		TotalNumbers: countNumbers(req.Numbers),
	}
	if err := h.st.CreateCountry(&country); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": country})
}

// UpdateCountry replaces country fields; a new number list resets the total.
func (h *AdminHandler) UpdateCountry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	country, err := h.st.GetCountry(id)
	if err != nil {
		return err
	}
	if country == nil {
		return fiber.NewError(fiber.StatusNotFound, "country not found")
	}

	var req countryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Code != "" {
		updates["code"] = req.Code
	}
	if req.FlagURL != "" {
		updates["flag_url"] = req.FlagURL
	}
	if req.Numbers != "" {
		updates["numbers"] = req.Numbers
		updates["total_numbers"] = countNumbers(req.Numbers)
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	if err := h.st.UpdateCountry(id, updates); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "country updated"})
}

// DeleteCountry removes a country pool.
func (h *AdminHandler) DeleteCountry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.st.DeleteCountry(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "country deleted"})
}

func countNumbers(numbers string) int {
	trimmed := strings.TrimSpace(numbers)
	if trimmed == "" {
		return 0
	}
	return len(strings.Split(trimmed, "\n"))
}

// Gift codes

// ListGiftCodes returns all gift codes.
func (h *AdminHandler) ListGiftCodes(c *fiber.Ctx) error {
	codes, err := h.st.ListGiftCodes()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": codes})
}

type giftCodeRequest struct {
	Code          string     `json:"code"`
	CreditsAmount *int       `json:"creditsAmount"`
	MaxClaims     *int       `json:"maxClaims"`
	ExpiryDate    *time.Time `json:"expiryDate"`
	IsActive      *bool      `json:"isActive"`
}

// CreateGiftCode issues a new gift code.
func (h *AdminHandler) CreateGiftCode(c *fiber.Ctx) error {
	var req giftCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Code == "" || req.CreditsAmount == nil || req.MaxClaims == nil || req.ExpiryDate == nil {
		return fiber.NewError(fiber.StatusBadRequest, "code, creditsAmount, maxClaims and expiryDate required")
	}
	if *req.CreditsAmount <= 0 || *req.MaxClaims <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "creditsAmount and maxClaims must be positive")
	}

	gift := models.GiftCode{
		Code:          req.Code,
		CreditsAmount: *req.CreditsAmount,
		MaxClaims:     *req.MaxClaims,
		ExpiryDate:    *req.ExpiryDate,
		IsActive:      true,
	}
	if req.IsActive != nil {
		gift.IsActive = *req.IsActive
	}
	if err := h.st.CreateGiftCode(&gift); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": gift})
}

// UpdateGiftCode edits a gift code's terms. The claimed count is not
// editable here.
func (h *AdminHandler) UpdateGiftCode(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req giftCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Code != "" {
		updates["code"] = req.Code
	}
	if req.CreditsAmount != nil {
		updates["credits_amount"] = *req.CreditsAmount
	}
	if req.MaxClaims != nil {
		updates["max_claims"] = *req.MaxClaims
	}
	if req.ExpiryDate != nil {
		updates["expiry_date"] = *req.ExpiryDate
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	if err := h.st.UpdateGiftCode(id, updates); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "gift code updated"})
}

// DeleteGiftCode removes a gift code.
func (h *AdminHandler) DeleteGiftCode(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.st.DeleteGiftCode(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "gift code deleted"})
}

// FAQ items

// ListFaqs returns every FAQ item, including inactive ones.
func (h *AdminHandler) ListFaqs(c *fiber.Ctx) error {
	items, err := h.st.ListAllFaqItems()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

type faqRequest struct {
	Question     *string `json:"question"`
	Answer       *string `json:"answer"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

// CreateFaq adds a FAQ item.
func (h *AdminHandler) CreateFaq(c *fiber.Ctx) error {
	var req faqRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Question == nil || req.Answer == nil || *req.Question == "" || *req.Answer == "" {
		return fiber.NewError(fiber.StatusBadRequest, "question and answer required")
	}

	item := models.FaqItem{
		Question: *req.Question,
		Answer:   *req.Answer,
		IsActive: true,
	}
	if req.DisplayOrder != nil {
		item.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := h.st.CreateFaqItem(&item); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

// UpdateFaq edits a FAQ item.
func (h *AdminHandler) UpdateFaq(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req faqRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Question != nil {
		updates["question"] = *req.Question
	}
	if req.Answer != nil {
		updates["answer"] = *req.Answer
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	if err := h.st.UpdateFaqItem(id, updates); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "faq updated"})
}

// DeleteFaq removes a FAQ item.
func (h *AdminHandler) DeleteFaq(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.st.DeleteFaqItem(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "faq deleted"})
}

// Welcome messages

// ListWelcomeMessages returns all configured welcome messages.
func (h *AdminHandler) ListWelcomeMessages(c *fiber.Ctx) error {
	messages, err := h.st.ListWelcomeMessages()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": messages})
}

type welcomeMessageRequest struct {
	Title    *string `json:"title"`
	Message  *string `json:"message"`
	IsActive *bool   `json:"isActive"`
}

// CreateWelcomeMessage adds a welcome message.
func (h *AdminHandler) CreateWelcomeMessage(c *fiber.Ctx) error {
	var req welcomeMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Title == nil || req.Message == nil || *req.Title == "" || *req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title and message required")
	}

	message := models.WelcomeMessage{
		Title:    *req.Title,
		Message:  *req.Message,
		IsActive: true,
	}
	if req.IsActive != nil {
		message.IsActive = *req.IsActive
	}
	if err := h.st.CreateWelcomeMessage(&message); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": message})
}

// UpdateWelcomeMessage edits a welcome message.
func (h *AdminHandler) UpdateWelcomeMessage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req welcomeMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Message != nil {
		updates["message"] = *req.Message
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	if err := h.st.UpdateWelcomeMessage(id, updates); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "welcome message updated"})
}

// DeleteWelcomeMessage removes a welcome message.
func (h *AdminHandler) DeleteWelcomeMessage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.st.DeleteWelcomeMessage(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "welcome message deleted"})
}

// Announcements

// ListAnnouncements returns every announcement.
func (h *AdminHandler) ListAnnouncements(c *fiber.Ctx) error {
	announcements, err := h.st.ListAnnouncements()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": announcements})
}

type announcementRequest struct {
	Content  string `json:"content"`
	IsActive *bool  `json:"isActive"`
}

// CreateAnnouncement adds an announcement.
func (h *AdminHandler) CreateAnnouncement(c *fiber.Ctx) error {
	var req announcementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Content == "" {
		return fiber.NewError(fiber.StatusBadRequest, "content required")
	}

	announcement := models.Announcement{Content: req.Content, IsActive: true}
	if req.IsActive != nil {
		announcement.IsActive = *req.IsActive
	}
	if err := h.st.CreateAnnouncement(&announcement); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": announcement})
}

// UpdateAnnouncement replaces an announcement's content.
func (h *AdminHandler) UpdateAnnouncement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req announcementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Content == "" {
		return fiber.NewError(fiber.StatusBadRequest, "content required")
	}

	if err := h.st.UpdateAnnouncement(id, req.Content); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "announcement updated"})
}

// ToggleAnnouncement flips an announcement's active flag.
func (h *AdminHandler) ToggleAnnouncement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.st.ToggleAnnouncement(id, req.IsActive); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteAnnouncement removes an announcement.
func (h *AdminHandler) DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.st.DeleteAnnouncement(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "announcement deleted"})
}

// Notifications

type notificationRequest struct {
	UserID  string `json:"userId"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// CreateNotification targets a single user, or broadcasts when no user is
// given.
func (h *AdminHandler) CreateNotification(c *fiber.Ctx) error {
	var req notificationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" || req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title and message required")
	}

	notification := models.Notification{
		Title:   req.Title,
		Message: req.Message,
	}
	if req.UserID == "" {
		notification.IsBroadcast = true
	} else {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
		}
		notification.UserID = &userID
	}

	if err := h.st.CreateNotification(&notification); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": notification})
}

// Support

// ListSupportMessages returns every support message across all users.
func (h *AdminHandler) ListSupportMessages(c *fiber.Ctx) error {
	messages, err := h.st.ListAllSupportMessages()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": messages})
}

type supportReplyRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// ReplySupportMessage appends a staff reply to a user's conversation.
func (h *AdminHandler) ReplySupportMessage(c *fiber.Ctx) error {
	var req supportReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message required")
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	user, err := h.st.GetUser(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	message := models.SupportMessage{
		UserID:     userID,
		SenderType: "admin",
		Message:    req.Message,
	}
	if err := h.st.CreateSupportMessage(&message); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": message})
}

// MarkSupportMessageRead marks a support message as read.
func (h *AdminHandler) MarkSupportMessageRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.st.MarkSupportMessageRead(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteSupportMessage removes a support message.
func (h *AdminHandler) DeleteSupportMessage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.st.DeleteSupportMessage(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "support message deleted"})
}

// Settings

// GetSetting returns one setting by key.
func (h *AdminHandler) GetSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	setting, err := h.st.GetSetting(key)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": setting})
}

type settingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SetSetting inserts or updates a setting.
func (h *AdminHandler) SetSetting(c *fiber.Ctx) error {
	var req settingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Key == "" {
		return fiber.NewError(fiber.StatusBadRequest, "key required")
	}

	setting, err := h.st.SetSetting(req.Key, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": setting})
}

// SMS feeder

type smsRequest struct {
	PhoneNumber string     `json:"phoneNumber"`
	Sender      string     `json:"sender"`
	Message     string     `json:"message"`
	ReceivedAt  *time.Time `json:"receivedAt"`
}

// CreateSmsMessage inserts a message on behalf of the external SMS feeder.
func (h *AdminHandler) CreateSmsMessage(c *fiber.Ctx) error {
	var req smsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.PhoneNumber == "" || req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "phoneNumber and message required")
	}

	receivedAt := time.Now()
	if req.ReceivedAt != nil {
		receivedAt = *req.ReceivedAt
	}

	sms := models.SmsMessage{
		PhoneNumber: req.PhoneNumber,
		Sender:      req.Sender,
		Message:     req.Message,
		ReceivedAt:  receivedAt,
	}
	if err := h.st.CreateSmsMessage(&sms); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": sms})
}

// Stats

// Stats returns aggregate numbers for the admin dashboard.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	totalUsers, err := h.st.CountUsers()
	if err != nil {
		return err
	}

	walletStats, err := h.st.GetWalletStats()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_users":        totalUsers,
			"total_transactions": walletStats.TotalTransactions,
			"total_purchased":    walletStats.TotalPurchased,
		},
	})
}
