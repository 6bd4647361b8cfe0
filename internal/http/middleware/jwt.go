package middleware

import (
	"strings"

	"avagostar-product-api/internal/models"
	"avagostar-product-api/internal/repo"
	"avagostar-product-api/internal/services"
	"avagostar-product-api/internal/utils"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// Auth extracts and verifies the bearer access token, loads the referenced
// user and stores it in the request context. Any failure is the same 401.
func Auth(tokens *services.TokenService, users repo.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "missing token")
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "), services.TokenKindAccess)
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}
		if !user.IsActive {
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireRoles rejects authenticated users whose role is not in the set.
// It must run after Auth.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthorized(c, "missing token")
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			utils.RespondError(c, utils.ErrForbidden("insufficient privileges"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Auth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	val, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func abortUnauthorized(c *gin.Context, message string) {
	utils.RespondError(c, utils.ErrUnauthorized(message))
	c.Abort()
}
