package inventory

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/models"
)

// InventoryService сервис для работы с Core API (инвентарь агентства).
// Чистое проксирование: без ретраев и без кеша, каждая страница
// запрашивает свежий снимок.
type InventoryService struct {
	baseURL    string
	httpClient *http.Client
}

// NewInventoryService создает новый экземпляр сервиса
func NewInventoryService(baseURL string) *InventoryService {
	return &InventoryService{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FlightFilter фильтры для /flights/. Нулевой указатель - ключ не передается.
type FlightFilter struct {
	Airline *string
	// Sector матчится бэкендом и по городу вылета, и по городу прилета;
	// какой из них подставить - решает вызывающая страница.
	Sector *string
}

// HotelFilter фильтры для /hotels/
type HotelFilter struct {
	City      *string
	MinRating *int
}

// PackageFilter фильтры для /packages/
type PackageFilter struct {
	IsActive *bool
}

// TicketFilter фильтры для /ticket-inventory/
type TicketFilter struct {
	GroupName *string
	GroupType *string
	TripType  *string
	IsActive  *bool
}

// GetFlights получает список авиабилетов
func (s *InventoryService) GetFlights(filter FlightFilter) ([]models.FlightTicket, error) {
	params := url.Values{}
	setString(params, "airline", filter.Airline)
	setString(params, "sector", filter.Sector)

	var flights []models.FlightTicket
	if err := s.getJSON("/flights/", params, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// GetHotels получает список отелей
func (s *InventoryService) GetHotels(filter HotelFilter) ([]models.Hotel, error) {
	params := url.Values{}
	setString(params, "city", filter.City)
	setInt(params, "min_rating", filter.MinRating)

	var hotels []models.Hotel
	if err := s.getJSON("/hotels/", params, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

// GetPackages получает список пакетных туров
func (s *InventoryService) GetPackages(filter PackageFilter) ([]models.Package, error) {
	params := url.Values{}
	setBool(params, "is_active", filter.IsActive)

	var packages []models.Package
	if err := s.getJSON("/packages/", params, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// GetTicketInventory получает список групповых билетов
func (s *InventoryService) GetTicketInventory(filter TicketFilter) ([]models.TicketGroup, error) {
	params := url.Values{}
	setString(params, "group_name", filter.GroupName)
	setString(params, "group_type", filter.GroupType)
	setString(params, "trip_type", filter.TripType)
	setBool(params, "is_active", filter.IsActive)

	var groups []models.TicketGroup
	if err := s.getJSON("/ticket-inventory/", params, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetAirlines получает справочник авиакомпаний (IATA). Запрос фиксированный,
// всегда только активные записи.
func (s *InventoryService) GetAirlines() ([]models.Airline, error) {
	params := url.Values{}
	params.Set("is_active", "true")

	var airlines []models.Airline
	if err := s.getJSON("/others/flight-iata", params, &airlines); err != nil {
		return nil, err
	}
	return airlines, nil
}

// getJSON выполняет GET запрос к Core API и декодирует JSON массив
func (s *InventoryService) getJSON(endpoint string, params url.Values, out interface{}) error {
	reqURL := s.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("core api returned status %d for %s", resp.StatusCode, endpoint)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %v", err)
	}
	return nil
}

func setString(params url.Values, key string, value *string) {
	if value != nil {
		params.Set(key, *value)
	}
}

func setInt(params url.Values, key string, value *int) {
	if value != nil {
		params.Set(key, strconv.Itoa(*value))
	}
}

func setBool(params url.Values, key string, value *bool) {
	if value != nil {
		params.Set(key, strconv.FormatBool(*value))
	}
}
