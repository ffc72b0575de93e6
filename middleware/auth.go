package middleware

import (
	"net/http"
	"strings"

	"templeseva/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "userID"

// JWTAuthMiddleware requires a valid bearer token and exposes its subject
// as the caller's user id.
func JWTAuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "Unauthorized"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		userID, err := issuer.ExtractIDFromToken(tokenString)
		if err != nil {
			zap.L().Debug("rejected bearer token", zap.Error(err), zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "Unauthorized"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the id set by JWTAuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
