package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/tkhs0604/task-api/internal/errors"
	"github.com/tkhs0604/task-api/internal/models"
	"github.com/tkhs0604/task-api/internal/repository"
	"github.com/tkhs0604/task-api/internal/services"
)

const contextKeyCurrentUser = "current_user"

// Authenticate inspects the bearer token and, when it resolves to a live
// user, attaches that user to the request context. Any failure (missing
// header, bad scheme, invalid or expired token, unknown or soft-deleted
// user) lets the request proceed unauthenticated.
func Authenticate(jwtService *services.JWTService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		claims, err := jwtService.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.Next()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.Next()
			return
		}

		// Soft-deleted users are filtered out by the repository lookup.
		user, err := userRepo.FindByID(userID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(contextKeyCurrentUser, user)
		c.Next()
	}
}

// RequireAuth rejects unauthenticated requests with a 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from the context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(contextKeyCurrentUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
