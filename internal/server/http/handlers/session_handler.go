package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/butcherynv/posdesk/internal/domain/model"
	"github.com/butcherynv/posdesk/internal/server/http/dto"
	"github.com/butcherynv/posdesk/internal/server/http/middleware"
)

// SessionHandler processes sign-in, sign-out and account provisioning.
type SessionHandler struct {
	facade SessionFacade
}

// NewSessionHandler creates SessionHandler instance.
func NewSessionHandler(facade SessionFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

// Login handles POST /api/session.
func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	sess, err := h.facade.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, sess.Token)
	c.JSON(http.StatusOK, dto.SessionResponse{Role: string(sess.Role)})
}

// Logout handles DELETE /api/session. The credential only lives in the
// cookie, so dropping it ends the session.
func (h *SessionHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.Status(http.StatusNoContent)
}

// Register handles POST /api/staff.
func (h *SessionHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reg := model.Registration{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.Role(req.Role),
	}
	if err := h.facade.Register(c.Request.Context(), reg); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}
