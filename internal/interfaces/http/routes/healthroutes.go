package routes

import (
	"github.com/gin-gonic/gin"

	healthhandlers "helpdesk/internal/interfaces/http/handlers/health"
)

// SetupHealthRoutes registers the liveness probe. It is intentionally
// registered outside the authenticated groups.
func SetupHealthRoutes(engine *gin.Engine) {
	handler := healthhandlers.NewHealthHandler()
	engine.GET("/health", handler.Check)
}
