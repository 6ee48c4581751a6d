package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"lead-capture/pkg/models"
	"lead-capture/pkg/services"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	submissionService   services.LeadSubmissionService
	verificationService *services.VerificationService
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.LeadSubmissionService, verificationService *services.VerificationService) *Handlers {
	return &Handlers{
		submissionService:   submissionService,
		verificationService: verificationService,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleLeadWebhook processes incoming requests from the landing page form,
// dispatching on the action field.
func (h *Handlers) HandleLeadWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("Error reading request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading request"})
		return
	}

	// Log the raw request for debugging
	log.Printf("Received webhook body: %s", string(body))

	var form models.LeadFormData
	if err := json.Unmarshal(body, &form); err != nil {
		log.Printf("Error parsing JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	switch form.Action {
	case models.ActionSendVerification:
		h.handleSendVerification(c, form)
	case "", models.ActionSubmitLead:
		h.handleSubmitLead(c, form)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action"})
	}
}

func (h *Handlers) handleSendVerification(c *gin.Context, form models.LeadFormData) {
	if !phonePattern.MatchString(form.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number must be 10 digits"})
		return
	}

	code, delivered, err := h.verificationService.SendVerificationCode(form.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification code"})
		return
	}

	if delivered {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Verification code sent",
		})
		return
	}

	// Demo mode: no SMS provider configured, hand the code back directly.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"code":    code,
		"message": "SMS provider not configured, code returned for demo use",
	})
}

func (h *Handlers) handleSubmitLead(c *gin.Context, form models.LeadFormData) {
	if form.FirstName == "" || form.LastName == "" || form.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if !emailPattern.MatchString(form.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	if form.Phone != "" && !phonePattern.MatchString(form.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number must be 10 digits"})
		return
	}

	grant, err := h.submissionService.ProcessLeadSubmission(form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"accessUrl": grant.AccessURL,
	})
}
