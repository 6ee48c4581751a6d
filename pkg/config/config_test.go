package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_FROM_NUMBER",
		"LOFTY_API_KEY", "RESEND_API_KEY", "GUIDE_BASE_URL", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, DefaultGuideBaseURL, cfg.GuideBaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.SMSEnabled())
	assert.False(t, cfg.CRMEnabled())
	assert.False(t, cfg.EmailEnabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("TWILIO_FROM_NUMBER", "+15550000000")
	t.Setenv("LOFTY_API_KEY", "lofty-key")
	t.Setenv("RESEND_API_KEY", "re_123")
	t.Setenv("GUIDE_BASE_URL", "https://example.com/guide")
	t.Setenv("PORT", "9000")

	cfg := LoadConfig()

	assert.True(t, cfg.SMSEnabled())
	assert.True(t, cfg.CRMEnabled())
	assert.True(t, cfg.EmailEnabled())
	assert.Equal(t, "https://example.com/guide", cfg.GuideBaseURL)
	assert.Equal(t, "9000", cfg.Port)
}

func TestSMSEnabledRequiresAllCredentials(t *testing.T) {
	cfg := &Config{TwilioAccountSID: "AC123", TwilioAuthToken: "token"}
	assert.False(t, cfg.SMSEnabled())
}
