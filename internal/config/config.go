package config

import (
	"os"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	// LINE Messaging API credentials. The channel secret signs inbound
	// webhook bodies; the access token authorises outbound API calls.
	LINEChannelAccessToken string
	LINEChannelSecret      string
	LINEAPIBaseURL         string

	// GSI reverse-geocoder endpoint. Overridable for local testing.
	GeocoderBaseURL string

	// Discord webhook targets. Either may be empty, in which case the
	// corresponding notification degrades to a no-op.
	DiscordLocationWebhookURL string
	DiscordLineUserWebhookURL string

	// Recipients of the direct "arriving home" push. Unset slots are
	// dropped; an empty list disables the push entirely.
	SpecialUserIDs []string

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3001"),
		AppEnv:  getEnv("APP_ENV", "development"),

		LINEChannelAccessToken: getEnv("LINE_CHANNEL_ACCESS_TOKEN", ""),
		LINEChannelSecret:      getEnv("LINE_CHANNEL_SECRET", ""),
		LINEAPIBaseURL:         getEnv("LINE_API_BASE_URL", "https://api.line.me"),

		GeocoderBaseURL: getEnv("GEOCODER_BASE_URL", "https://mreversegeocoder.gsi.go.jp"),

		DiscordLocationWebhookURL: getEnv("DISCORD_WEBHOOK_URL_LOCATION", ""),
		DiscordLineUserWebhookURL: getEnv("DISCORD_WEBHOOK_URL_LINE_USER", ""),

		SpecialUserIDs: nonEmpty(
			os.Getenv("LINE_SPECIAL_USER_ID_1"),
			os.Getenv("LINE_SPECIAL_USER_ID_2"),
		),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// nonEmpty filters out unset slots so a half-configured recipient list still works.
func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
