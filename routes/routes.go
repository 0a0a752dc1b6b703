package routes

import (
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/config"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/middleware"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/services/inventory"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter создаёт gin.Engine, регистрирует все маршруты и возвращает роутер
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RecoveryMiddleware())

	// CORS middleware ДО роутов
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://saer.pk", "https://www.saer.pk"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Один общий клиент Core API на все страницы
	inventoryService := inventory.NewInventoryService(cfg.CoreAPIURL)

	SetupFlightRoutes(r, inventoryService, cfg)
	SetupHotelRoutes(r, inventoryService)
	SetupPackageRoutes(r, inventoryService)
	SetupTicketRoutes(r, inventoryService)

	return r
}
