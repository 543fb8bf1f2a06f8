package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"engage-api/internal/domain/user"
	"engage-api/internal/pkg/cookie"
	"engage-api/internal/usecase"
	"engage-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey     = "user_id"
	ctxUserRoleKey   = "user_role"
	ctxBusinessIDKey = "business_id"
)

var roleHierarchy = map[user.Role]int{
	user.RoleCustomer: 1,
	user.RoleOwner:    2,
	user.RoleAdmin:    3,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		userID, role, businessID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		setAuthContext(c, userID, role, businessID)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setAuthContext(c *gin.Context, userID uuid.UUID, role user.Role, businessID *uuid.UUID) {
	c.Set(ctxUserIDKey, userID)
	c.Set(ctxUserRoleKey, role)

	claims := map[string]any{
		"user_id": userID.String(),
		"role":    string(role),
	}
	if businessID != nil {
		c.Set(ctxBusinessIDKey, *businessID)
		claims["business_id"] = businessID.String()
	}
	c.Set("jwt_claims", claims)
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

func GetBusinessID(c *gin.Context) (uuid.UUID, bool) {
	businessID, exists := c.Get(ctxBusinessIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := businessID.(uuid.UUID)
	return id, ok
}

// GetActor assembles the authenticated actor for the command layer.
func GetActor(c *gin.Context) (shared.Actor, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return shared.Actor{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return shared.Actor{}, false
	}

	actor := shared.Actor{ID: id, Role: role}
	if businessID, ok := GetBusinessID(c); ok {
		actor.BusinessID = &businessID
	}
	return actor, true
}
