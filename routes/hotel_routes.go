package routes

import (
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/controllers/hotels"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/services/inventory"

	"github.com/gin-gonic/gin"
)

func SetupHotelRoutes(router *gin.Engine, svc *inventory.InventoryService) {
	hotelController := hotels.NewHotelPageController(svc)

	hotelGroup := router.Group("/hotels")
	{
		hotelGroup.GET("/page", hotelController.LoadPage)
		hotelGroup.POST("/book/:id", hotelController.Book)
	}
}
