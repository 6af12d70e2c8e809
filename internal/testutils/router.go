package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/internal/api/routes"
	"gorm.io/gorm"
)

func SetupRouter(gdb *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, gdb)
	return r
}
