package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-notify-relay/internal/domain"
	"github.com/go-notify-relay/internal/pkg/id"
)

// DefaultColor is used when the caller does not pick an embed color.
const DefaultColor = "3319890"

// footerText is the fixed label on every embed this relay sends.
const footerText = "帰宅通知"

// Notifier posts embed notifications to a Discord webhook URL. Delivery is
// at-most-once: failures are logged and swallowed, never returned.
type Notifier interface {
	Notify(ctx context.Context, title, description, body, targetURL, color string)
}

type notifier struct {
	httpClient *http.Client
	now        func() time.Time
}

// NewNotifier returns a webhook Notifier using the given HTTP client.
func NewNotifier(httpClient *http.Client) Notifier {
	return &notifier{httpClient: httpClient, now: time.Now}
}

// Notify builds a single-embed payload and POSTs it as JSON to targetURL.
// An empty targetURL or body makes the call a silent no-op.
func (n *notifier) Notify(ctx context.Context, title, description, body, targetURL, color string) {
	if targetURL == "" || body == "" {
		return
	}
	if color == "" {
		color = DefaultColor
	}

	payload := domain.EmbedPayload{
		Embeds: []domain.Embed{{
			Title:       title,
			Description: description,
			Color:       color,
			Fields: []domain.EmbedField{{
				Name:   "",
				Value:  body,
				Inline: false,
			}},
			Timestamp: n.now().UTC().Format(time.RFC3339),
			Footer:    domain.EmbedFooter{Text: footerText},
		}},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("webhook send error: %v", err)
		return
	}

	deliveryID := id.New()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(raw))
	if err != nil {
		log.Printf("webhook send error [%s]: %v", deliveryID, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		log.Printf("webhook send error [%s]: %v", deliveryID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("webhook send error [%s]: status %d", deliveryID, resp.StatusCode)
		return
	}
	log.Printf("webhook sent [%s]", deliveryID)
}
