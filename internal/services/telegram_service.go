package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// NotifySupportMessage pings the admin chat about a new support message.
func (s *TelegramService) NotifySupportMessage(username, message string) error {
	if s.adminChatID == "" {
		return nil
	}

	text := fmt.Sprintf("<b>💬 New support message</b>\n<b>User:</b> %s\n%s", username, message)
	return s.SendToAdmin(text)
}

// NotifySignup pings the admin chat about a new registration.
func (s *TelegramService) NotifySignup(username, referredBy string) error {
	if s.adminChatID == "" {
		return nil
	}

	text := fmt.Sprintf("<b>🆕 New signup</b>\n<b>User:</b> %s", username)
	if referredBy != "" {
		text += fmt.Sprintf("\n<b>Referred by code:</b> %s", referredBy)
	}
	return s.SendToAdmin(text)
}
