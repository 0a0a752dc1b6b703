package flights

import (
	"net/http"
	"sync"

	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/controllers"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/models"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/services/inventory"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FlightPageController страница авиабилетов. Единственная страница с
// баннером ошибки и кнопкой Retry: обе загрузки (билеты + справочник
// авиакомпаний) идут параллельно, и падение любой из них валит загрузку
// целиком - частично примененных списков не бывает.
type FlightPageController struct {
	inventoryService *inventory.InventoryService
	assetOrigin      string

	mu       sync.Mutex
	status   controllers.PageStatus
	airlines []models.Airline
	cards    []utils.FlightCard
}

// NewFlightPageController создает новый экземпляр контроллера
func NewFlightPageController(svc *inventory.InventoryService, assetOrigin string) *FlightPageController {
	return &FlightPageController{
		inventoryService: svc,
		assetOrigin:      assetOrigin,
		status:           controllers.StatusIdle,
		cards:            []utils.FlightCard{},
	}
}

// LoadPage открытие страницы: параллельная загрузка билетов и справочника
func (fc *FlightPageController) LoadPage(c *gin.Context) {
	fc.runCombinedFetch(c)
}

// Retry повторная загрузка после ошибки: тот же комбинированный запрос
func (fc *FlightPageController) Retry(c *gin.Context) {
	fc.runCombinedFetch(c)
}

// Search сабмит поиска: перезапрашиваются только билеты, справочник
// авиакомпаний остается от последней успешной полной загрузки. Свободный
// текст уходит в sector: город вылета имеет приоритет над городом прилета.
func (fc *FlightPageController) Search(c *gin.Context) {
	filter := inventory.FlightFilter{}
	if departure := c.Query("departure_city"); departure != "" {
		filter.Sector = &departure
	} else if arrival := c.Query("arrival_city"); arrival != "" {
		filter.Sector = &arrival
	}
	if airline := c.Query("airline"); airline != "" {
		filter.Airline = &airline
	}

	fc.setLoading()

	tickets, err := fc.inventoryService.GetFlights(filter)
	if err != nil {
		fc.setError(c, err)
		return
	}

	fc.mu.Lock()
	fc.cards = buildCards(tickets, fc.airlines, fc.assetOrigin)
	fc.status = controllers.StatusReady
	cards := fc.cards
	fc.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"status": controllers.StatusReady,
		"cards":  cards,
	})
}

// Book заглушка бронирования: без похода в Core API, только номер заявки
func (fc *FlightPageController) Book(c *gin.Context) {
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
		"ticket_id": c.Param("id"),
	})
}

func (fc *FlightPageController) runCombinedFetch(c *gin.Context) {
	fc.setLoading()

	var (
		wg          sync.WaitGroup
		tickets     []models.FlightTicket
		airlines    []models.Airline
		ticketsErr  error
		airlinesErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		tickets, ticketsErr = fc.inventoryService.GetFlights(inventory.FlightFilter{})
	}()
	go func() {
		defer wg.Done()
		airlines, airlinesErr = fc.inventoryService.GetAirlines()
	}()
	wg.Wait()

	if ticketsErr != nil {
		fc.setError(c, ticketsErr)
		return
	}
	if airlinesErr != nil {
		fc.setError(c, airlinesErr)
		return
	}

	fc.mu.Lock()
	fc.airlines = airlines
	fc.cards = buildCards(tickets, airlines, fc.assetOrigin)
	fc.status = controllers.StatusReady
	cards := fc.cards
	fc.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"status": controllers.StatusReady,
		"cards":  cards,
	})
}

func (fc *FlightPageController) setLoading() {
	fc.mu.Lock()
	fc.status = controllers.StatusLoading
	fc.mu.Unlock()
}

func (fc *FlightPageController) setError(c *gin.Context, err error) {
	utils.LogError(err, "Flight page fetch")

	fc.mu.Lock()
	fc.status = controllers.StatusError
	fc.mu.Unlock()

	// Для фронта любая причина схлопывается в общий "fetch failed"
	c.JSON(http.StatusInternalServerError, gin.H{
		"status": controllers.StatusError,
		"error":  "fetch failed",
		"retry":  true,
	})
}

func buildCards(tickets []models.FlightTicket, airlines []models.Airline, assetOrigin string) []utils.FlightCard {
	cards := make([]utils.FlightCard, 0, len(tickets))
	for _, ticket := range tickets {
		cards = append(cards, utils.BuildFlightCard(ticket, airlines, assetOrigin))
	}
	return cards
}
