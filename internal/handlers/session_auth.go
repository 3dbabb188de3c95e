package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/services"
	"github.com/SAP-F-2025/sims-service/internal/session"
)

const actorContextKey = "actor"

// SessionAuthMiddleware authenticates requests by resolving the login
// cookie against the session store.
type SessionAuthMiddleware struct {
	store      *session.Store
	cookieName string
}

func NewSessionAuthMiddleware(store *session.Store, cookieName string) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{store: store, cookieName: cookieName}
}

// AuthMiddleware rejects requests without a valid session cookie and
// stores the resolved actor in the request context.
func (sam *SessionAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sam.cookieName)
		if err != nil || sessionID == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "unauthorized",
				Message: "login required",
			})
			c.Abort()
			return
		}

		sess, err := sam.store.Get(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, ErrorResponse{
					Error:   "unauthorized",
					Message: "session expired, log in again",
				})
			} else {
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Error:   "internal_error",
					Message: "failed to resolve session",
				})
			}
			c.Abort()
			return
		}

		c.Set(actorContextKey, services.Actor{
			UserID:   sess.UserID,
			Username: sess.Username,
			Role:     sess.Role,
		})
		c.Next()
	}
}

// RequireRoleMiddleware checks if user has required role
func (sam *SessionAuthMiddleware) RequireRoleMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := currentActor(c)
		if !ok {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error:   "forbidden",
				Message: "user identity not found in context",
			})
			c.Abort()
			return
		}

		// Admins pass every role gate.
		for _, role := range requiredRoles {
			if actor.Role == role || actor.Role == models.RoleAdmin {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:   "forbidden",
			Message: fmt.Sprintf("insufficient permissions, required role: %v", requiredRoles),
		})
		c.Abort()
	}
}

// currentActor returns the authenticated identity set by AuthMiddleware.
func currentActor(c *gin.Context) (services.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return services.Actor{}, false
	}
	actor, ok := v.(services.Actor)
	return actor, ok
}
