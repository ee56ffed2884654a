package domain

// EmbedPayload is the JSON body posted to a Discord webhook URL. The relay
// always sends exactly one embed per notification.
type EmbedPayload struct {
	Embeds []Embed `json:"embeds"`
}

// Embed is a single Discord embed.
type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       string       `json:"color"`
	Fields      []EmbedField `json:"fields"`
	Timestamp   string       `json:"timestamp"`
	Footer      EmbedFooter  `json:"footer"`
}

// EmbedField carries the notification body. The name is intentionally empty;
// Discord renders the value alone.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// EmbedFooter is the fixed footer label on every embed.
type EmbedFooter struct {
	Text string `json:"text"`
}
