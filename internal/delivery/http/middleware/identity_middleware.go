package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"muto-jobboard/internal/delivery/http/response"
	"muto-jobboard/internal/domain"
	"muto-jobboard/pkg/auth"
	"muto-jobboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthCookieName is the cookie the frontend stores the session token in.
const AuthCookieName = "auth_token"

var errNoKey = errors.New("no signing key configured")

// IdentityMiddleware resolves the signed-in user from the hosted auth
// service's access token, if there is one. It never rejects a request: a
// missing, expired or forged token simply leaves the request anonymous, and
// each page decides whether it needs an identity.
func IdentityMiddleware(jwksProvider *auth.Provider, jwtSecret string) gin.HandlerFunc {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			if jwtSecret == "" {
				return nil, fmt.Errorf("HS256 token received: %w", errNoKey)
			}
			return []byte(jwtSecret), nil
		case *jwt.SigningMethodRSA:
			if jwksProvider == nil {
				return nil, fmt.Errorf("RS256 token received: %w", errNoKey)
			}
			return jwksProvider.KeyFunc(token)
		default:
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
	}

	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(tokenString, keyFunc, jwt.WithValidMethods([]string{"HS256", "RS256"}))
		if err != nil || !token.Valid {
			logger.Log.Debug("ignoring invalid token", "error", err)
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		// Supabase standard claims
		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		if sub == "" {
			c.Next()
			return
		}

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Request = c.Request.WithContext(domain.WithIdentity(c.Request.Context(), &domain.Identity{
			UserID: sub,
			Email:  email,
		}))

		c.Next()
	}
}

// RequireIdentity rejects anonymous requests to pages that only make sense
// for a signed-in user.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := (domain.ContextIdentity{}).CurrentIdentity(c.Request.Context()); !ok {
			response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// bearerToken reads the token from the Authorization header, falling back to
// the auth cookie.
func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if strings.HasPrefix(header, "Bearer ") {
			return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
		return ""
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}
	return ""
}
