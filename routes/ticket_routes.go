package routes

import (
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/controllers/tickets"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/services/inventory"

	"github.com/gin-gonic/gin"
)

func SetupTicketRoutes(router *gin.Engine, svc *inventory.InventoryService) {
	ticketController := tickets.NewTicketPageController(svc)

	ticketGroup := router.Group("/ticket-groups")
	{
		ticketGroup.GET("/page", ticketController.LoadPage)
		ticketGroup.POST("/book/:id", ticketController.Book)
	}
}
