package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/goblog/internal/server/services"
)

const (
	callerContextKey = "caller"

	requestIDContextKey = "request_id"
	requestIDHeader     = "X-Request-ID"
)

// requireAuth extracts and verifies the bearer token and stores the caller
// identity in the gin context. Rejections never reveal why verification
// failed beyond the two fixed messages.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortError(c, http.StatusUnauthorized, "missing bearer")
			return
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			abortError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}

		c.Set(callerContextKey, services.AuthUser{
			ID:       claims.UserID,
			Username: claims.Username,
			Email:    claims.Email,
		})
		c.Next()
	}
}

func callerFromContext(c *gin.Context) (services.AuthUser, bool) {
	value, ok := c.Get(callerContextKey)
	if !ok {
		return services.AuthUser{}, false
	}
	caller, ok := value.(services.AuthUser)
	return caller, ok
}

// cors answers preflights itself and lets everything through: any origin,
// any method, any header, cached for an hour.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "*")
		c.Header("Access-Control-Allow-Headers", "*")
		c.Header("Access-Control-Max-Age", "3600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requestID propagates an inbound X-Request-ID or mints one, and logs every
// request once it completes.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		startedAt := time.Now()

		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDContextKey, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", float64(time.Since(startedAt).Microseconds())/1000.0,
			"client_ip", c.ClientIP(),
		)
	}
}
