package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lead-capture/pkg/middleware"
)

// NewRouter builds the gin engine: CORS on every route, a recovery that never
// leaks internals to the caller, and a JSON 405 for non-POST hits on the
// webhook.
func NewRouter(handlers *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	router.Use(middleware.CORS())

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	router.POST("/webhook/lead-submission", handlers.HandleLeadWebhook)
	router.GET("/health", handlers.HealthCheck)

	return router
}
