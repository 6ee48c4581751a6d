package models

import "time"

// Action values accepted in the webhook body.
const (
	ActionSendVerification = "sendVerification"
	ActionSubmitLead       = "submitLead"
)

// LeadFormData is the data structure coming from the landing page form. The
// action field selects between phone verification and lead submission; an
// empty action is treated as a lead submission.
type LeadFormData struct {
	Action    string `json:"action"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

// AccessGrant is the per-submission guide access link. The token is a
// tracking string, not a credential; it is never stored server-side.
type AccessGrant struct {
	AccessToken string `json:"accessToken"`
	AccessURL   string `json:"accessUrl"`
}

// LeadRecord is the enriched lead handed to the outbound integrations.
type LeadRecord struct {
	LeadFormData
	AccessToken string
	AccessURL   string
	SubmittedAt time.Time
}
