package resend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.resend.com"

// FromAddress is the fixed sender identity for all outbound email.
const FromAddress = "Keystone Home Group <guides@keystonehomegroup.com>"

// Client defines the interface for interacting with the Resend API
type Client interface {
	SendEmail(to, subject, html string) (string, error)
}

type clientImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Resend client
func NewClient(apiKey string) Client {
	return &clientImpl{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SendEmail sends one transactional email and returns the provider's email id.
func (c *clientImpl) SendEmail(to, subject, html string) (string, error) {
	url := c.baseURL + "/emails"

	payload := map[string]interface{}{
		"from":    FromAddress,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending email: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("error from Resend API (status %d): %s", resp.StatusCode, string(body))
	}

	var response struct {
		ID string `json:"id"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("error parsing response: %w", err)
	}

	log.Printf("Sent email to %s, id: %s", to, response.ID)
	return response.ID, nil
}
