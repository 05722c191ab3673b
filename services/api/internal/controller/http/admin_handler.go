package http

import (
	"errors"
	"net/http"
	"time"

	"portfolio/pkg/logger"
	"portfolio/pkg/middleware"
	"portfolio/services/api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckPasswordRequest struct {
	Password string `json:"password"`
}

type AdminHandler struct {
	authUseCase      usecase.AuthUseCase
	dashboardUseCase usecase.DashboardUseCase
	cookieSecure     bool
	logger           *logger.Logger
}

func NewAdminHandler(authUseCase usecase.AuthUseCase, dashboardUseCase usecase.DashboardUseCase, cookieSecure bool, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		authUseCase:      authUseCase,
		dashboardUseCase: dashboardUseCase,
		cookieSecure:     cookieSecure,
		logger:           logger,
	}
}

func (h *AdminHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminSessionCookie, value, maxAge, "/", "", h.cookieSecure, true)
}

// CheckPassword godoc
// @Summary      Admin login
// @Description  Checks the admin secret and starts a session (HttpOnly admin_session cookie)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body CheckPasswordRequest true "Admin password"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]bool
// @Failure      429  {object}  map[string]string
// @Router       /admin/check-password [post]
func (h *AdminHandler) CheckPassword(c *gin.Context) {
	var req CheckPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false})
		return
	}

	session, err := h.authUseCase.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false})
			return
		}
		h.logger.Error("Failed to start admin session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to start session"})
		return
	}

	h.setSessionCookie(c, session.Token, int(time.Until(session.ExpiresAt).Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"token":     session.Token,
		"expiresAt": session.ExpiresAt,
	})
}

// Logout godoc
// @Summary      Admin logout
// @Description  Revokes the current session and clears the cookie
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	if err := h.authUseCase.Logout(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		h.logger.Error("Failed to revoke admin session: %v", err)
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Session godoc
// @Summary      Current admin session
// @Tags         admin
// @Produce      json
// @Security     AdminSession
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /admin/session [get]
func (h *AdminHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"expiresAt":     c.GetTime(middleware.ContextSessionExpires),
	})
}

// Dashboard godoc
// @Summary      Admin dashboard
// @Description  Document counts per collection and site-wide ratings. Redirects to the login page without a session.
// @Tags         admin
// @Produce      json
// @Security     AdminSession
// @Success      200  {object}  entity.DashboardStats
// @Failure      302
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboardUseCase.Stats(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, stats)
}
