package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"lead-capture/pkg/api"
	"lead-capture/pkg/clients/lofty"
	"lead-capture/pkg/clients/resend"
	"lead-capture/pkg/clients/twilio"
	"lead-capture/pkg/config"
	"lead-capture/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize API clients
	twilioClient := twilio.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	loftyClient := lofty.NewClient(cfg.LoftyAPIKey)
	resendClient := resend.NewClient(cfg.ResendAPIKey)

	// Initialize services
	submissionService := services.NewLeadSubmissionService(loftyClient, resendClient, cfg)
	verificationService := services.NewVerificationService(twilioClient, cfg)

	gin.SetMode(gin.ReleaseMode)

	router := api.NewRouter(api.NewHandlers(submissionService, verificationService))

	// Start the server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
