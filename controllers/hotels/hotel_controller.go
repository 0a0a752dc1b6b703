package hotels

import (
	"net/http"
	"sync"

	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/controllers"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/services/inventory"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HotelPageController страница отелей. В отличие от страницы авиабилетов
// ошибка загрузки не показывается пользователю: она уходит в errors.log,
// а страница отвечает пустым списком. Исторический разнобой фронта,
// сохранен сознательно.
type HotelPageController struct {
	inventoryService *inventory.InventoryService

	mu     sync.Mutex
	status controllers.PageStatus
	cards  []utils.HotelCard
}

// NewHotelPageController создает новый экземпляр контроллера
func NewHotelPageController(svc *inventory.InventoryService) *HotelPageController {
	return &HotelPageController{
		inventoryService: svc,
		status:           controllers.StatusIdle,
		cards:            []utils.HotelCard{},
	}
}

// LoadPage загрузка страницы, фильтр по городу и минимальному рейтингу
func (hc *HotelPageController) LoadPage(c *gin.Context) {
	filter := inventory.HotelFilter{}
	if city := c.Query("city"); city != "" {
		filter.City = &city
	}
	if ratingStr := c.Query("min_rating"); ratingStr != "" {
		rating := utils.ParseIntSafe(ratingStr)
		filter.MinRating = &rating
	}

	hc.mu.Lock()
	hc.status = controllers.StatusLoading
	hc.mu.Unlock()

	cards := []utils.HotelCard{}
	hotels, err := hc.inventoryService.GetHotels(filter)
	if err != nil {
		utils.LogError(err, "Hotel page fetch")
	} else {
		for _, hotel := range hotels {
			cards = append(cards, utils.BuildHotelCard(hotel))
		}
	}

	hc.mu.Lock()
	hc.cards = cards
	hc.status = controllers.StatusReady
	hc.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"status": controllers.StatusReady,
		"cards":  cards,
	})
}

// Book заглушка бронирования отеля
func (hc *HotelPageController) Book(c *gin.Context) {
	if rdb := utils.GetRedis(); rdb != nil {
		if ok, msg := utils.CanSubmitEnquiry(rdb, c.ClientIP()); !ok {
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": msg})
			return
		}
		utils.MarkEnquirySent(rdb, c.ClientIP())
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Online booking is not available yet, our team will contact you",
		"reference": uuid.New().String(),
		"hotel_id":  c.Param("id"),
	})
}
