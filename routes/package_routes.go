package routes

import (
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/controllers/packages"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/services/inventory"

	"github.com/gin-gonic/gin"
)

func SetupPackageRoutes(router *gin.Engine, svc *inventory.InventoryService) {
	packageController := packages.NewPackagePageController(svc)

	packageGroup := router.Group("/packages")
	{
		packageGroup.GET("/page", packageController.LoadPage)
		packageGroup.POST("/book/:id", packageController.Book)
	}
}
