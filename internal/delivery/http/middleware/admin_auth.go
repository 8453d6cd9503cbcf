package middleware

import (
	"strings"

	"go-firesafety-backend/internal/delivery/http/response"
	"go-firesafety-backend/pkg/apperror"
	"go-firesafety-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// ModerationAuth guards the moderation surface. Every method, reads
// included, must present either the shared operator secret as a query
// parameter or a session token issued by the login endpoint. The check
// runs before any store access.
func ModerationAuth(cred *auth.Credential) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cred.Configured() {
			response.ModerationError(c, apperror.Config("Server Configuration Error: ADMIN_SECRET is missing."))
			c.Abort()
			return
		}

		if secret, ok := c.GetQuery("secret"); ok && cred.Match(secret) {
			c.Next()
			return
		}

		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token := strings.TrimPrefix(h, "Bearer ")
			if cred.VerifyToken(token) == nil {
				c.Next()
				return
			}
		}

		// Same body for a wrong secret, a bad token and no credential at
		// all: nothing about the configured value may leak.
		response.ModerationError(c, apperror.Unauthorized("Unauthorized"))
		c.Abort()
	}
}
