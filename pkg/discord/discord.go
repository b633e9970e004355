package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"scanner-srv/pkg/log"
)

const defaultTimeout = 10 * time.Second

var errWebhookRequired = errors.New("discord: webhook ID and token are required")

// discordImpl implements IDiscord.
type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	client  *http.Client
}

// webhookPayload is the body sent to the Discord webhook endpoint.
type webhookPayload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []embed `json:"embeds,omitempty"`
}

type embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) send(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// SendMessage sends a plain content message.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, webhookPayload{Content: content})
}

// SendError sends an error embed (red).
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	desc := description
	if err != nil {
		desc = fmt.Sprintf("%s\n```%v```", description, err)
	}
	return d.send(ctx, webhookPayload{
		Embeds: []embed{{
			Title:       title,
			Description: desc,
			Color:       0xE74C3C,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

// ReportBug sends an urgent bug report message.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.send(ctx, webhookPayload{
		Embeds: []embed{{
			Title:       "Bug Report",
			Description: message,
			Color:       0xE67E22,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

// Close releases resources. No-op for webhook clients.
func (d *discordImpl) Close() error {
	return nil
}
