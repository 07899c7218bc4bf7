package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/butcherynv/posdesk/internal/domain/errors"
	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/pkg/session"
)

const (
	// SessionContextKey is a gin context key for the authenticated session.
	SessionContextKey = "session"
	authCookieName    = "posdesk_token"
	loginPath         = "/login"
)

// RoleRequired gates a route group on the given role allow-list. The session
// is stored in the gin context and attached to the request context so
// upstream calls forward the caller's credential. Missing or unusable
// credentials answer 401 with a hint pointing the client back to login.
func RoleRequired(allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := session.Gate(extractToken(c), allowed)
		if err != nil {
			if errors.Is(err, domainErrors.ErrRoleNotAllowed) {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"redirect": loginPath})
			return
		}

		c.Set(SessionContextKey, sess)
		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the credential cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie drops the credential cookie on logout.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
