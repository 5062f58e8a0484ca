package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tshirt-brand/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// JWT context keys
const (
	ClaimsKey     = "jwt_claims"
	AdminIDKey    = "jwt_admin_id"
	AdminEmailKey = "jwt_admin_email"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// RequireAdmin creates middleware that only lets authenticated admins through
func RequireAdmin(jwtService *auth.JWTService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			handleAuthError(c, logger, auth.ErrInvalidToken, "Missing authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			handleAuthError(c, logger, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			handleAuthError(c, logger, auth.ErrInvalidToken, "Missing token")
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			handleAuthError(c, logger, err, "Token validation failed")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(AdminIDKey, claims.AdminID)
		c.Set(AdminEmailKey, claims.Email)

		if logger != nil {
			logger.Debug("Admin authenticated",
				zap.String("admin_id", claims.AdminID),
				zap.String("email", claims.Email),
			)
		}

		c.Next()
	}
}

// handleAuthError handles authentication errors
func handleAuthError(c *gin.Context, logger *zap.Logger, err error, message string) {
	if logger != nil {
		logger.Warn("Authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	errorCode := "UNAUTHORIZED"
	errorMessage := "Authentication required"

	switch err {
	case auth.ErrExpiredToken:
		errorCode = "TOKEN_EXPIRED"
		errorMessage = "Token has expired"
	case auth.ErrInvalidToken:
		errorCode = "INVALID_TOKEN"
		errorMessage = "Invalid token"
	case auth.ErrTokenNotYetValid:
		errorCode = "TOKEN_NOT_VALID"
		errorMessage = "Token is not yet valid"
	case auth.ErrInvalidClaims, auth.ErrMissingAdminID:
		errorCode = "INVALID_TOKEN"
		errorMessage = "Invalid token claims"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    errorCode,
			"message": errorMessage,
		},
	})
}

// GetClaims retrieves JWT claims from gin.Context
func GetClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(ClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetAdminID retrieves the admin ID from JWT claims in context
func GetAdminID(c *gin.Context) string {
	if adminID, exists := c.Get(AdminIDKey); exists {
		if id, ok := adminID.(string); ok {
			return id
		}
	}
	return ""
}

// GetAdminEmail retrieves the admin email from JWT claims in context
func GetAdminEmail(c *gin.Context) string {
	if email, exists := c.Get(AdminEmailKey); exists {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}
