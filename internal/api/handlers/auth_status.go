package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/pkg/response"
	"github.com/itsd-lab/vendorgate/pkg/utils"
)

// AuthStatusHandler lets the frontend check whether its token is still valid.
func AuthStatusHandler(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user_id":       claims.UserID,
		"username":      claims.Username,
		"role":          claims.Role,
	})
}
