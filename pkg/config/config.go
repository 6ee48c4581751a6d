package config

import (
	"os"
)

// DefaultGuideBaseURL is used when GUIDE_BASE_URL is not set for a deployment.
const DefaultGuideBaseURL = "https://www.keystonehomegroup.com/first-time-buyer-guide"

// Config holds all application configuration values
type Config struct {
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	LoftyAPIKey      string
	ResendAPIKey     string
	GuideBaseURL     string
	Port             string
}

// LoadConfig reads configuration from environment variables. Every credential
// is optional: a missing one disables that integration rather than erroring.
func LoadConfig() *Config {
	cfg := &Config{
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		LoftyAPIKey:      os.Getenv("LOFTY_API_KEY"),
		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		GuideBaseURL:     os.Getenv("GUIDE_BASE_URL"),
		Port:             os.Getenv("PORT"),
	}

	if cfg.GuideBaseURL == "" {
		cfg.GuideBaseURL = DefaultGuideBaseURL
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg
}

// SMSEnabled reports whether Twilio credentials are present.
func (c *Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

// CRMEnabled reports whether the Lofty integration is configured.
func (c *Config) CRMEnabled() bool {
	return c.LoftyAPIKey != ""
}

// EmailEnabled reports whether the Resend integration is configured.
func (c *Config) EmailEnabled() bool {
	return c.ResendAPIKey != ""
}
