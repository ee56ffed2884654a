package domain

// LINE webhook event discriminators. Only text message events are processed;
// everything else resolves to a skipped (null) result.
const (
	LineEventTypeMessage = "message"
	LineMessageTypeText  = "text"
)

// LineWebhookRequest is the batch envelope LINE delivers to the webhook URL.
type LineWebhookRequest struct {
	Destination string      `json:"destination"`
	Events      []LineEvent `json:"events"`
}

// LineEvent is a single event within a webhook batch.
type LineEvent struct {
	Type       string      `json:"type"`
	ReplyToken string      `json:"replyToken,omitempty"`
	Source     LineSource  `json:"source"`
	Message    LineMessage `json:"message,omitempty"`
}

// LineSource identifies the sender of an event.
type LineSource struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

// LineMessage is the message body of a message-type event.
type LineMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// IsTextMessage reports whether the event should be processed at all.
func (e LineEvent) IsTextMessage() bool {
	return e.Type == LineEventTypeMessage && e.Message.Type == LineMessageTypeText
}

// LineProfile is the subset of a LINE user profile the relay cares about.
type LineProfile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

// ReplyResult is the Messaging API response to a reply call. It is returned
// verbatim as the per-event result in the webhook response array.
type ReplyResult struct {
	SentMessages []SentMessage `json:"sentMessages,omitempty"`
}

// SentMessage identifies one message delivered by a reply call.
type SentMessage struct {
	ID         string `json:"id"`
	QuoteToken string `json:"quoteToken,omitempty"`
}
