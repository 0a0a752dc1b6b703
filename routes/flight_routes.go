package routes

import (
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/config"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/controllers/flights"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/services/inventory"

	"github.com/gin-gonic/gin"
)

func SetupFlightRoutes(router *gin.Engine, svc *inventory.InventoryService, cfg *config.Config) {
	flightController := flights.NewFlightPageController(svc, cfg.AssetOrigin)

	flightGroup := router.Group("/flights")
	{
		// Открытие страницы: билеты + справочник авиакомпаний параллельно
		flightGroup.GET("/page", flightController.LoadPage)
		// Поиск перезапрашивает только билеты
		flightGroup.GET("/search", flightController.Search)
		// Retry повторяет комбинированную загрузку
		flightGroup.POST("/retry", flightController.Retry)
		flightGroup.POST("/book/:id", flightController.Book)
	}
}
