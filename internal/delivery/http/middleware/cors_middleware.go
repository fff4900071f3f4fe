package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware only allows the configured frontend origins. Requests from
// any other origin get no CORS headers and are blocked by the browser.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-CSRF-Token", "X-Request-ID", "Cache-Control", "X-Requested-With"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	config.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition", "Retry-After"}
	config.MaxAge = 24 * time.Hour
	return cors.New(config)
}
