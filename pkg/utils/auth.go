package utils

import (
	"errors"

	"github.com/aduportal/portal-go/pkg/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

var GetUserIDFromContext = func(c *gin.Context) (uuid.UUID, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

// ParseUUIDParam reads a path parameter and validates it as a UUID.
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
