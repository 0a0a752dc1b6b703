package packages

import (
	"net/http"
	"sync"

	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/controllers"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/services/inventory"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PackagePageController страница пакетных туров. Без фильтров: всегда
// только активные пакеты. Ошибки загрузки гасятся в errors.log.
type PackagePageController struct {
	inventoryService *inventory.InventoryService

	mu     sync.Mutex
	status controllers.PageStatus
	cards  []utils.PackageCard
}

// NewPackagePageController создает новый экземпляр контроллера
func NewPackagePageController(svc *inventory.InventoryService) *PackagePageController {
	return &PackagePageController{
		inventoryService: svc,
		status:           controllers.StatusIdle,
		cards:            []utils.PackageCard{},
	}
}

// LoadPage загрузка страницы пакетов
func (pc *PackagePageController) LoadPage(c *gin.Context) {
	active := true

	pc.mu.Lock()
	pc.status = controllers.StatusLoading
	pc.mu.Unlock()

	cards := []utils.PackageCard{}
	packageList, err := pc.inventoryService.GetPackages(inventory.PackageFilter{IsActive: &active})
	if err != nil {
		utils.LogError(err, "Package page fetch")
	} else {
		for _, pkg := range packageList {
			cards = append(cards, utils.BuildPackageCard(pkg))
		}
	}

	pc.mu.Lock()
	pc.cards = cards
	pc.status = controllers.StatusReady
	pc.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"status": controllers.StatusReady,
		"cards":  cards,
	})
}

// Book заглушка бронирования пакета
func (pc *PackagePageController) Book(c *gin.Context) {
	if rdb := utils.GetRedis(); rdb != nil {
		if ok, msg := utils.CanSubmitEnquiry(rdb, c.ClientIP()); !ok {
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": msg})
			return
		}
		utils.MarkEnquirySent(rdb, c.ClientIP())
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Online booking is not available yet, our team will contact you",
		"reference":  uuid.New().String(),
		"package_id": c.Param("id"),
	})
}
