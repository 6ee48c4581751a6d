package services

import (
	"fmt"
	"log"
	"math/rand"

	"lead-capture/pkg/clients/twilio"
	"lead-capture/pkg/config"
)

// VerificationService generates one-shot SMS verification codes. Codes are
// never stored and never checked against a later submission; delivery is the
// whole contract.
type VerificationService struct {
	twilioClient twilio.Client
	config       *config.Config
}

// NewVerificationService creates a new verification service
func NewVerificationService(twilioClient twilio.Client, config *config.Config) *VerificationService {
	return &VerificationService{
		twilioClient: twilioClient,
		config:       config,
	}
}

// SendVerificationCode generates a random 6-digit code for the given 10-digit
// phone number. With Twilio configured the code is delivered by SMS and
// delivered reports true. Without credentials the code is handed back to the
// caller instead (demo mode).
func (s *VerificationService) SendVerificationCode(phone string) (code string, delivered bool, err error) {
	code = fmt.Sprintf("%d", 100000+rand.Intn(900000))

	if !s.config.SMSEnabled() {
		log.Printf("Twilio not configured, returning verification code in response")
		return code, false, nil
	}

	body := fmt.Sprintf("Your Keystone Home Group verification code is %s", code)
	if err := s.twilioClient.SendSMS("+1"+phone, body); err != nil {
		log.Printf("Error sending verification SMS: %v", err)
		return "", false, err
	}

	return code, true, nil
}
