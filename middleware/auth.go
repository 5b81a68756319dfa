package middleware

import (
	"errors"
	"net/http"
	"strings"

	"hdmonks/models"
	"hdmonks/services/auth"
	"hdmonks/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SessionKey = utils.ContextSessionKey
	TokenKey   = "token"
)

// RequireRole rejects requests without a valid bearer token for role. The
// verified *models.Session is stored under SessionKey.
func RequireRole(authSvc auth.AuthService, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		session, err := authSvc.Verify(c.Request.Context(), role, tokenString)
		if err != nil {
			detail := "Invalid token"
			if errors.Is(err, models.ErrTokenExpired) {
				detail = "Token expired"
			} else if !errors.Is(err, models.ErrInvalidToken) {
				zap.L().Error("Session verification failed", zap.String("role", string(role)), zap.Error(err))
			}
			utils.JSONError(c, http.StatusUnauthorized, detail)
			return
		}

		c.Set(SessionKey, session)
		c.Set(TokenKey, tokenString)
		c.Next()
	}
}

// CurrentSession returns the session stored by RequireRole.
func CurrentSession(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*models.Session)
	return s, ok
}
