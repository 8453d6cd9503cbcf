package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers so the marketing-site frontend can
// call the API from the browser. The origin whitelist is strict:
// the configured frontend URL, localhost in non-release mode, and
// firesafe-* Vercel preview deployments.
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	isProduction := os.Getenv("GIN_MODE") == "release"

	devOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://127.0.0.1:5173": true,
		"http://localhost:3000": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var isAllowed bool

		if origin == "" || origin == frontendURL {
			// Same-origin requests carry no Origin header.
			isAllowed = true
		}

		if !isProduction && devOrigins[origin] {
			isAllowed = true
		}

		// Vercel preview deployments, firesafe-* subdomains only. The
		// prefix check blocks lookalike deployments on other accounts.
		if !isAllowed && strings.HasSuffix(origin, ".vercel.app") {
			subdomain := strings.TrimPrefix(origin, "https://")
			subdomain = strings.TrimSuffix(subdomain, ".vercel.app")
			if strings.HasPrefix(subdomain, "firesafe") ||
				strings.Contains(subdomain, "-firesafe-") {
				isAllowed = true
			}
		}

		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PATCH")
			c.Header("Access-Control-Max-Age", "86400")
		}

		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
