package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

const (
	// HeaderAccountSID identifies the account making the request.
	HeaderAccountSID = "x-account-sid"
	// HeaderAPIKey carries the plain API key secret.
	HeaderAPIKey = "x-api-key"

	// ContextAccountID is the gin context key for the authenticated account ID.
	ContextAccountID = "account_id"
	// ContextAccountSID is the gin context key for the authenticated account SID.
	ContextAccountSID = "account_sid"
)

// AuthMiddleware authenticates requests by the account SID / API key header
// pair. Every route except the health probe sits behind it.
type AuthMiddleware struct {
	authenticateUC usecases.AuthenticateExecutor
	logger         logger.Interface
}

func NewAuthMiddleware(authenticateUC usecases.AuthenticateExecutor) *AuthMiddleware {
	return &AuthMiddleware{
		authenticateUC: authenticateUC,
		logger:         logger.NewLogger(),
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := strings.TrimSpace(c.GetHeader(HeaderAccountSID))
		key := strings.TrimSpace(c.GetHeader(HeaderAPIKey))

		if sid == "" || key == "" {
			utils.ErrorResponse(c, 401, "missing x-account-sid or x-api-key header")
			c.Abort()
			return
		}

		acc, err := m.authenticateUC.Execute(c.Request.Context(), usecases.AuthenticateCommand{
			AccountSID: sid,
			APIKey:     key,
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextAccountID, acc.ID)
		c.Set(ContextAccountSID, acc.SID)
		c.Next()
	}
}
