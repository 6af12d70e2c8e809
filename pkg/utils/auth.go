package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/pkg/types"
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

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

var GetUserNameFromContext = func(c *gin.Context) (string, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}

var GetRoleFromContext = func(c *gin.Context) (string, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return "", err
	}
	return claims.Role, nil
}

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, errors.New("invalid " + name + " parameter")
	}
	return uint(id), nil
}
