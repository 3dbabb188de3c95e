package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/sims-service/internal/services"
	"github.com/SAP-F-2025/sims-service/internal/session"
	"github.com/SAP-F-2025/sims-service/internal/utils"
	"github.com/SAP-F-2025/sims-service/internal/validator"
)

type AuthHandler struct {
	BaseHandler
	service    services.UserService
	store      *session.Store
	cookieName string
	cookieTTL  time.Duration
}

func NewAuthHandler(service services.UserService, store *session.Store, cookieName string, cookieTTL time.Duration, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		store:       store,
		cookieName:  cookieName,
		cookieTTL:   cookieTTL,
	}
}

// Login verifies credentials and issues a session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	h.LogRequest(c, "Logging in")

	var req validator.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "invalid request body",
		})
		return
	}

	user, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	sessionID, err := h.store.Create(c.Request.Context(), &session.Session{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: time.Now(),
	})
	if err != nil {
		h.LogError(c, "Failed to create session", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "failed to create session",
		})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, sessionID, int(h.cookieTTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

// Logout drops the session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.LogRequest(c, "Logging out")

	if sessionID, err := c.Cookie(h.cookieName); err == nil && sessionID != "" {
		if err := h.store.Delete(c.Request.Context(), sessionID); err != nil {
			h.LogError(c, "Failed to delete session", err)
		}
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated identity.
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "login required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":  actor.UserID,
		"username": actor.Username,
		"role":     actor.Role,
	})
}
