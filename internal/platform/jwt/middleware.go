package jwtmw

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
)

const (
	ContextUserID = "userID"
	ContextEmail  = "email"
)

// AuthRequired returns a Gin middleware that rejects requests without a valid bearer token.
func AuthRequired(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			api.AbortWithFail(c, http.StatusUnauthorized, "missing bearer token")
			return
		}
		if len(key) == 0 {
			// JWT_SECRET 未設定はサーバー設定ミス
			api.AbortWithFail(c, http.StatusInternalServerError, "server misconfigured")
			return
		}

		claims, err := Parse(strings.TrimPrefix(auth, "Bearer "), key)
		if err != nil || claims.Subject == "" {
			slog.Warn("rejected bearer token", "error", err, "remote_addr", c.ClientIP())
			api.AbortWithFail(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}
