package auth

import (
	"net/http"
	"strings"

	"band-scheduler-backend/internal/database/models"
	"band-scheduler-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
	users   repository.UserRepositoryInterface
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, users repository.UserRepositoryInterface) *AuthMiddleware {
	return &AuthMiddleware{service: service, users: users}
}

// RequireAuth validates JWT tokens and loads the current account into the
// request context. The account is reloaded on every request so verification
// and disabled state are never stale.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		user, err := m.users.GetByID(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			c.Abort()
			return
		}
		if user.Disabled {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is disabled"})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("email", user.Email)
		c.Set("actor", user)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// CurrentUser extracts the authenticated account from the request context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	actor, exists := c.Get("actor")
	if !exists {
		return nil, false
	}

	user, ok := actor.(*models.User)
	return user, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
