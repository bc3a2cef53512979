package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gurohotvedt/cab230serverside/internal/auth"
)

// AuthEmailKey is the context key for the authenticated subject's email
const AuthEmailKey = "auth_email"

// Auth guards protected routes behind a bearer token. The header must carry
// exactly "Bearer <token>"; the token must verify against the service secret
// and be unexpired. Every failure short-circuits with a 403 JSON body.
func Auth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		parts := strings.Split(header, " ")
		if header == "" || len(parts) != 2 || parts[0] != "Bearer" {
			abortForbidden(c, "Unauthorized user")
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				abortForbidden(c, "Token has expired")
				return
			}
			abortForbidden(c, "Token is not valid")
			return
		}

		c.Set(AuthEmailKey, claims.Email)
		c.Next()
	}
}

// GetAuthEmail retrieves the authenticated email from the context
func GetAuthEmail(c *gin.Context) string {
	if email, exists := c.Get(AuthEmailKey); exists {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}

func abortForbidden(c *gin.Context, message string) {
	log.Warn().
		Str("request_id", GetRequestID(c)).
		Str("path", c.Request.URL.Path).
		Str("message", message).
		Msg("Authorization rejected")

	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error":   true,
		"message": message,
	})
}
