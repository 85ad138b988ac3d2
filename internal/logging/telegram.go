package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"delivery-profile-assigner/internal/config"
)

const defaultTelegramAPI = "https://api.telegram.org"

type Creds struct {
	Creds config.TelegramBotConfig

	baseURL    string
	httpClient *http.Client
}

type telegramRequest struct {
	ChatId string `json:"chat_id"`
	Text   string `json:"text"`
}

const (
	iconInfo    = "ℹ️"
	iconError   = "❌"
	iconWarning = "⚠️"
	iconSuccess = "✅"
)

// NewTelegram returns nil when credentials are missing; a nil *Creds drops every message.
func NewTelegram(cfg *Creds) *Creds {
	if cfg == nil || cfg.Creds.ChatId == "" || cfg.Creds.Token == "" {
		return nil
	}
	baseURL := strings.TrimRight(cfg.baseURL, "/")
	if baseURL == "" {
		baseURL = defaultTelegramAPI
	}
	client := cfg.httpClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Creds{Creds: cfg.Creds, baseURL: baseURL, httpClient: client}
}

func (c *Creds) Log(value string) {
	if c == nil {
		return
	}
	_ = c.sendRequest(formatMessage(iconInfo, "INFO", value))
}

func (c *Creds) LogError(value string) {
	if c == nil {
		return
	}
	_ = c.sendRequest(formatMessage(iconError, "ERROR", value))
}

func (c *Creds) LogWarning(value string) {
	if c == nil {
		return
	}
	_ = c.sendRequest(formatMessage(iconWarning, "WARNING", value))
}

func (c *Creds) LogSuccess(value string) {
	if c == nil {
		return
	}
	_ = c.sendRequest(formatMessage(iconSuccess, "SUCCESS", value))
}

func formatMessage(icon, level, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		v = "-"
	}
	return fmt.Sprintf("%s %s: %s", icon, level, v)
}

func (c *Creds) sendRequest(value string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.Creds.Token)

	bodyBytes, err := json.Marshal(telegramRequest{
		ChatId: c.Creds.ChatId,
		Text:   value,
	})
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Post(url, "application/json", bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram send failed: %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}
	return nil
}
