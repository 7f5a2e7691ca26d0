package middleware

import (
	"net/http"

	"github.com/aduportal/portal-go/internal/domain/profile"
	"github.com/aduportal/portal-go/pkg/response"
	"github.com/aduportal/portal-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Auth gates routes by profile role. Claims must already be populated by
// JWTAuthMiddleware.
type Auth struct{}

func NewAuth() *Auth {
	return &Auth{}
}

func (a *Auth) requireRole(roles ...profile.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "authentication required"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if claims.Role == string(role) {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "permission denied"})
		c.Abort()
	}
}

// Admin allows only administrators.
func (a *Auth) Admin() gin.HandlerFunc {
	return a.requireRole(profile.RoleAdmin)
}

// Clerk allows clerks and administrators.
func (a *Auth) Clerk() gin.HandlerFunc {
	return a.requireRole(profile.RoleClerk, profile.RoleAdmin)
}
