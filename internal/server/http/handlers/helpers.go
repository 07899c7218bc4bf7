package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/butcherynv/posdesk/internal/adapter/backend"
	domainErrors "github.com/butcherynv/posdesk/internal/domain/errors"
	"github.com/butcherynv/posdesk/internal/pkg/session"
	"github.com/butcherynv/posdesk/internal/server/http/middleware"
)

// CurrentSession extracts the authenticated session from the gin context.
func CurrentSession(c *gin.Context) *session.Context {
	val, ok := c.Get(middleware.SessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := val.(*session.Context)
	return sess
}

// pageQuery reads the ?page query parameter, defaulting to the first page.
func pageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// writeError maps domain and transport errors onto HTTP statuses. Validation
// failures carry their message so the client can show it inline.
func writeError(c *gin.Context, err error) {
	var netErr backend.NetworkError
	switch {
	case domainErrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrAlreadyFinished):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrLoginRejected):
		c.Status(http.StatusUnauthorized)
	case errors.Is(err, backend.ErrUnauthorized):
		c.Status(http.StatusUnauthorized)
	case errors.As(err, &netErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream unreachable"})
	default:
		c.Status(http.StatusInternalServerError)
	}
}
