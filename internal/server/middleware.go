package server

import (
	"net/http"
	"strings"
	"time"

	"auctionhouse/internal/auctionerrors"
	"auctionhouse/internal/identity"
	handler "auctionhouse/services/auction/handler"
	"auctionhouse/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// bearerToken extracts the credential from the Authorization header, empty if absent.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// AuthRequired resolves the bearer token once at the boundary and stores the
// identity in the context for handlers to pass into the engine. Requests
// without a valid credential are rejected with 401.
func AuthRequired(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthenticated, "authentication required")
			c.Abort()
			return
		}

		id, err := provider.Resolve(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthenticated, "authentication required")
			c.Abort()
			return
		}

		c.Set(handler.IdentityContextKey, id)
		c.Next()
	}
}

// AuthOptional resolves the bearer token when one is present and otherwise
// lets the request through unauthenticated. An invalid token is still a 401:
// a caller presenting a credential expects it to count.
func AuthOptional(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		id, err := provider.Resolve(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthenticated, "authentication required")
			c.Abort()
			return
		}

		c.Set(handler.IdentityContextKey, id)
		c.Next()
	}
}
