package tickets

import (
	"net/http"
	"sync"

	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/controllers"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/services/inventory"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TicketPageController страница групповых (блочных) билетов. Фильтр по
// имени группы, всегда только активные группы. Кнопка фильтра на фронте
// перезапрашивает список даже с неизменным текстом - здесь это просто
// каждый запрос к LoadPage. Ошибки загрузки гасятся в errors.log.
type TicketPageController struct {
	inventoryService *inventory.InventoryService

	mu     sync.Mutex
	status controllers.PageStatus
	cards  []utils.TicketGroupCard
}

// NewTicketPageController создает новый экземпляр контроллера
func NewTicketPageController(svc *inventory.InventoryService) *TicketPageController {
	return &TicketPageController{
		inventoryService: svc,
		status:           controllers.StatusIdle,
		cards:            []utils.TicketGroupCard{},
	}
}

// LoadPage загрузка страницы групповых билетов
func (tc *TicketPageController) LoadPage(c *gin.Context) {
	active := true
	filter := inventory.TicketFilter{IsActive: &active}
	if groupName := c.Query("group_name"); groupName != "" {
		filter.GroupName = &groupName
	}
	if groupType := c.Query("group_type"); groupType != "" {
		filter.GroupType = &groupType
	}
	if tripType := c.Query("trip_type"); tripType != "" {
		filter.TripType = &tripType
	}

	tc.mu.Lock()
	tc.status = controllers.StatusLoading
	tc.mu.Unlock()

	cards := []utils.TicketGroupCard{}
	groups, err := tc.inventoryService.GetTicketInventory(filter)
	if err != nil {
		utils.LogError(err, "Ticket page fetch")
	} else {
		for _, group := range groups {
			cards = append(cards, utils.BuildTicketGroupCard(group))
		}
	}

	tc.mu.Lock()
	tc.cards = cards
	tc.status = controllers.StatusReady
	tc.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"status": controllers.StatusReady,
		"cards":  cards,
	})
}

// Book заглушка бронирования группового билета
func (tc *TicketPageController) Book(c *gin.Context) {
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
		"group_id":  c.Param("id"),
	})
}
