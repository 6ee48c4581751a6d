package services

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"lead-capture/pkg/clients/lofty"
	"lead-capture/pkg/clients/resend"
	"lead-capture/pkg/config"
	"lead-capture/pkg/email"
	"lead-capture/pkg/models"
	"lead-capture/pkg/utils"
)

const (
	leadSource   = "Buyer Guide Landing Page"
	emailSubject = "Your First-Time Buyer Guide is ready"
)

var leadTags = []string{"Buyer Guide", "Website Lead"}

// LeadSubmissionService defines the interface for handling form submissions
type LeadSubmissionService interface {
	ProcessLeadSubmission(data models.LeadFormData) (*models.AccessGrant, error)
}

type leadSubmissionServiceImpl struct {
	loftyClient  lofty.Client
	resendClient resend.Client
	config       *config.Config
}

// NewLeadSubmissionService creates a new submission service
func NewLeadSubmissionService(
	loftyClient lofty.Client,
	resendClient resend.Client,
	config *config.Config,
) LeadSubmissionService {
	return &leadSubmissionServiceImpl{
		loftyClient:  loftyClient,
		resendClient: resendClient,
		config:       config,
	}
}

// ProcessLeadSubmission generates the guide access grant for a validated lead
// and runs the CRM sync and the guide email concurrently. The email result
// decides the outcome; the CRM sync is best-effort and its failure is only
// logged. Nothing is persisted between requests.
func (s *leadSubmissionServiceImpl) ProcessLeadSubmission(data models.LeadFormData) (*models.AccessGrant, error) {
	grant := &models.AccessGrant{
		AccessToken: utils.NewAccessToken(),
	}
	grant.AccessURL = fmt.Sprintf("%s?ref=%s", s.config.GuideBaseURL, grant.AccessToken)

	record := models.LeadRecord{
		LeadFormData: data,
		AccessToken:  grant.AccessToken,
		AccessURL:    grant.AccessURL,
		SubmittedAt:  time.Now(),
	}

	log.Printf("Processing submission for %s %s (%s)", data.FirstName, data.LastName, grant.AccessToken)

	var wg sync.WaitGroup
	var emailErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := s.notifyCRM(record); err != nil {
			// CRM sync never blocks the submission: log and move on.
			log.Printf("Error syncing lead to Lofty: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		emailErr = s.sendGuideEmail(record)
	}()
	wg.Wait()

	if emailErr != nil {
		log.Printf("Error sending guide email: %v", emailErr)
		return nil, emailErr
	}

	return grant, nil
}

// notifyCRM pushes the lead into Lofty. A missing API key is a skip, not an
// error.
func (s *leadSubmissionServiceImpl) notifyCRM(record models.LeadRecord) error {
	if !s.config.CRMEnabled() {
		log.Printf("Lofty not configured, skipping CRM sync for %s", record.Email)
		return nil
	}

	lead := lofty.Lead{
		FirstName: record.FirstName,
		LastName:  record.LastName,
		Email:     record.Email,
		Emails:    []string{record.Email},
		Source:    leadSource,
		Tags:      leadTags,
		Note: fmt.Sprintf("Requested the buyer guide on %s. Access token: %s",
			record.SubmittedAt.Format("Jan 2, 2006 3:04 PM"), record.AccessToken),
	}

	if record.Phone != "" {
		lead.Phone = "+1" + digitsOnly(record.Phone)
	}

	return s.loftyClient.CreateLead(lead)
}

// sendGuideEmail renders and sends the guide-access email. A missing API key
// is treated as success so keyless deployments still complete submissions.
func (s *leadSubmissionServiceImpl) sendGuideEmail(record models.LeadRecord) error {
	if !s.config.EmailEnabled() {
		log.Printf("Resend not configured, skipping guide email for %s", record.Email)
		return nil
	}

	html := email.RenderGuideEmail(record.FirstName, record.AccessURL)

	if _, err := s.resendClient.SendEmail(record.Email, emailSubject, html); err != nil {
		return err
	}

	return nil
}

// digitsOnly strips everything but digits from a phone number.
func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
