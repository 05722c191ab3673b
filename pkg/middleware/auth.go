package middleware

import (
	"context"
	"net/http"
	"strings"

	"portfolio/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	AdminSessionCookie = "admin_session"

	ContextSessionID      = "session_id"
	ContextSessionExpires = "session_expires_at"
)

type RevocationChecker interface {
	IsRevoked(ctx context.Context, id string) (bool, error)
}

// SessionToken reads the admin token from the session cookie, falling back to a bearer header.
func SessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AdminSessionCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func authenticate(c *gin.Context, jwtService *jwt.Service, revoked RevocationChecker) bool {
	claims, err := jwtService.ValidateToken(SessionToken(c))
	if err != nil || claims.Subject != jwt.AdminSubject {
		return false
	}

	if revoked != nil {
		isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil || isRevoked {
			return false
		}
	}

	c.Set(ContextSessionID, claims.ID)
	c.Set(ContextSessionExpires, claims.ExpiresAt.Time)
	return true
}

// AdminAuth guards admin API routes and answers 401 for missing or invalid sessions.
func AdminAuth(jwtService *jwt.Service, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, jwtService, revoked) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminPages guards browser paths under the admin prefix. Unauthenticated requests are
// redirected to loginURL; loginPath itself is always let through.
func AdminPages(jwtService *jwt.Service, revoked RevocationChecker, loginPath, loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == loginPath {
			c.Next()
			return
		}

		if !authenticate(c, jwtService, revoked) {
			c.Redirect(http.StatusFound, loginURL)
			c.Abort()
			return
		}
		c.Next()
	}
}
