package services

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-capture/pkg/config"
)

type fakeTwilioClient struct {
	calls    int
	lastTo   string
	lastBody string
	err      error
}

func (f *fakeTwilioClient) SendSMS(to, body string) error {
	f.calls++
	f.lastTo = to
	f.lastBody = body
	return f.err
}

func smsConfig() *config.Config {
	return &config.Config{
		TwilioAccountSID: "AC123",
		TwilioAuthToken:  "token",
		TwilioFromNumber: "+15550000000",
	}
}

func TestSendVerificationCodeDemoMode(t *testing.T) {
	tw := &fakeTwilioClient{}
	svc := NewVerificationService(tw, &config.Config{})

	code, delivered, err := svc.SendVerificationCode("5551234567")
	require.NoError(t, err)

	assert.False(t, delivered)
	assert.Zero(t, tw.calls)
	assert.Len(t, code, 6)

	n, err := strconv.Atoi(code)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 100000)
	assert.LessOrEqual(t, n, 999999)
}

func TestSendVerificationCodeDelivered(t *testing.T) {
	tw := &fakeTwilioClient{}
	svc := NewVerificationService(tw, smsConfig())

	code, delivered, err := svc.SendVerificationCode("5551234567")
	require.NoError(t, err)

	assert.True(t, delivered)
	assert.Equal(t, 1, tw.calls)
	assert.Equal(t, "+15551234567", tw.lastTo)
	assert.Contains(t, tw.lastBody, code)
}

func TestSendVerificationCodeProviderFailure(t *testing.T) {
	tw := &fakeTwilioClient{err: errors.New("twilio is down")}
	svc := NewVerificationService(tw, smsConfig())

	code, delivered, err := svc.SendVerificationCode("5551234567")
	require.Error(t, err)
	assert.False(t, delivered)
	assert.Empty(t, code)
}

func TestSendVerificationCodesVary(t *testing.T) {
	svc := NewVerificationService(&fakeTwilioClient{}, &config.Config{})

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		code, _, err := svc.SendVerificationCode("5551234567")
		require.NoError(t, err)
		seen[code] = true
	}

	// No state links successive codes; ten draws should almost never collapse
	// to a single value
	assert.Greater(t, len(seen), 1)
}
