package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-notify-relay/internal/domain"
)

// Messenger is the subset of the LINE Messaging API this relay uses.
type Messenger interface {
	GetProfile(ctx context.Context, userID string) (*domain.LineProfile, error)
	Reply(ctx context.Context, replyToken string, texts ...string) (*domain.ReplyResult, error)
	Push(ctx context.Context, userIDs []string, text string) error
	Broadcast(ctx context.Context, text string) error
}

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

// NewClient returns a Messenger over the LINE Messaging API.
func NewClient(httpClient *http.Client, baseURL, accessToken string) Messenger {
	return &client{httpClient: httpClient, baseURL: baseURL, accessToken: accessToken}
}

// textMessage is the wire shape of a text message object.
type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func textMessages(texts []string) []textMessage {
	msgs := make([]textMessage, len(texts))
	for i, t := range texts {
		msgs[i] = textMessage{Type: "text", Text: t}
	}
	return msgs
}

func (c *client) GetProfile(ctx context.Context, userID string) (*domain.LineProfile, error) {
	endpoint := fmt.Sprintf("%s/v2/bot/profile/%s", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("get profile: %w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var profile domain.LineProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

func (c *client) Reply(ctx context.Context, replyToken string, texts ...string) (*domain.ReplyResult, error) {
	body := struct {
		ReplyToken string        `json:"replyToken"`
		Messages   []textMessage `json:"messages"`
	}{ReplyToken: replyToken, Messages: textMessages(texts)}

	var result domain.ReplyResult
	if err := c.post(ctx, "/v2/bot/message/reply", body, &result); err != nil {
		return nil, fmt.Errorf("reply: %w", err)
	}
	return &result, nil
}

// Push delivers a text to every user in userIDs via the multicast endpoint.
// An empty recipient list or empty text is a silent no-op, so the relay keeps
// working when no special users are configured.
func (c *client) Push(ctx context.Context, userIDs []string, text string) error {
	if len(userIDs) == 0 || text == "" {
		return nil
	}
	body := struct {
		To       []string      `json:"to"`
		Messages []textMessage `json:"messages"`
	}{To: userIDs, Messages: textMessages([]string{text})}

	if err := c.post(ctx, "/v2/bot/message/multicast", body, nil); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

// Broadcast delivers a text to every friend of the bot. Empty text is a no-op.
func (c *client) Broadcast(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	body := struct {
		Messages             []textMessage `json:"messages"`
		NotificationDisabled bool          `json:"notificationDisabled"`
	}{Messages: textMessages([]string{text})}

	if err := c.post(ctx, "/v2/bot/message/broadcast", body, nil); err != nil {
		return fmt.Errorf("broadcast: %w", err)
	}
	return nil
}

func (c *client) post(ctx context.Context, path string, body, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}
	if out != nil {
		// Some endpoints answer with an empty object; a decode failure
		// there is not a delivery failure.
		_ = json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
