package lofty

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.lofty.com/v1.0"

// Lead is the payload for the Lofty lead-creation endpoint.
type Lead struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Emails    []string `json:"emails"`
	Phone     string   `json:"phone,omitempty"`
	Source    string   `json:"source"`
	Tags      []string `json:"tags"`
	Note      string   `json:"note"`
}

// Client defines the interface for interacting with the Lofty CRM API
type Client interface {
	CreateLead(lead Lead) error
}

type clientImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Lofty client
func NewClient(apiKey string) Client {
	return &clientImpl{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *clientImpl) CreateLead(lead Lead) error {
	url := c.baseURL + "/leads"

	jsonPayload, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	// Lofty expects its key in a "token" authorization scheme
	req.Header.Add("Authorization", "token "+c.apiKey)
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error creating Lofty lead: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("error from Lofty API (status %d): %s", resp.StatusCode, string(body))
	}

	log.Printf("Successfully created Lofty lead for %s", lead.Email)
	return nil
}
