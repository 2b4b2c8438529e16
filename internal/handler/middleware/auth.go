package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"pousada-api/internal/domain/user"
	"pousada-api/internal/security"
	"pousada-api/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

// TokenVerifier resolves a bearer token to the stored user record.
type TokenVerifier interface {
	FindByToken(ctx context.Context, token string) (*readmodel.UserView, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

const (
	ctxPrincipalKey   = "principal"
	ctxCurrentUserKey = "currentUser"
)

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		view, err := m.verifier.FindByToken(c.Request.Context(), token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		role, err := user.NewRole(view.Role)
		if err != nil {
			role = user.RoleGuest
		}
		c.Set(ctxPrincipalKey, security.Principal{
			ID:    view.ID,
			Email: view.Email,
			Role:  role,
		})
		c.Set(ctxCurrentUserKey, view)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetCurrentUser returns the full user record resolved by RequireAuth.
func GetCurrentUser(c *gin.Context) (*readmodel.UserView, bool) {
	v, exists := c.Get(ctxCurrentUserKey)
	if !exists {
		return nil, false
	}
	view, ok := v.(*readmodel.UserView)
	return view, ok
}

// GetPrincipal returns the authenticated principal set by RequireAuth.
func GetPrincipal(c *gin.Context) (security.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return security.Principal{}, false
	}
	p, ok := v.(security.Principal)
	return p, ok
}
