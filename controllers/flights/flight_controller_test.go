package flights_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/config"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/routes"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/utils"

	"github.com/stretchr/testify/assert"
)

// coreStub изображает Core API: один билет Gulf Air туда-обратно с тремя
// местами и справочник с логотипом Gulf Air. Падение включается флагом.
type coreStub struct {
	mu            sync.Mutex
	failFlights   bool
	failAirlines  bool
	flightsQuery  string
	airlinesCalls int
}

func (cs *coreStub) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.mu.Lock()
		defer cs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/flights/":
			if cs.failFlights {
				http.Error(w, "down", http.StatusInternalServerError)
				return
			}
			cs.flightsQuery = r.URL.RawQuery
			w.Write([]byte(`[{
				"id": 1,
				"departure_trip": {
					"airline": "Gulf Air",
					"departure_city": "Lahore",
					"arrival_city": "Jeddah",
					"departure_datetime": "2025-11-10T09:30:00",
					"arrival_datetime": "2025-11-10T13:45:00"
				},
				"return_trip": {
					"airline": "Gulf Air",
					"departure_city": "Jeddah",
					"arrival_city": "Lahore",
					"departure_datetime": "2025-11-24T16:00:00",
					"arrival_datetime": "2025-11-24T23:30:00"
				},
				"total_seats": 40,
				"available_seats": 3,
				"adult_selling": 125000
			}]`))
		case "/others/flight-iata":
			if cs.failAirlines {
				http.Error(w, "down", http.StatusInternalServerError)
				return
			}
			cs.airlinesCalls++
			w.Write([]byte(`[{"airline_name": "Gulf Air", "logo_url": "/logos/ga.png"}]`))
		default:
			http.NotFound(w, r)
		}
	})
}

type flightPageResponse struct {
	Status string             `json:"status"`
	Error  string             `json:"error"`
	Retry  bool               `json:"retry"`
	Cards  []utils.FlightCard `json:"cards"`
}

func setupFlightTest(t *testing.T) (*coreStub, http.Handler) {
	t.Helper()
	stub := &coreStub{}
	core := httptest.NewServer(stub.handler())
	t.Cleanup(core.Close)

	router := routes.SetupRouter(&config.Config{
		CoreAPIURL:  core.URL,
		AssetOrigin: "https://api.saer.pk",
	})
	return stub, router
}

func TestFlightPageEndToEnd(t *testing.T) {
	_, router := setupFlightTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/flights/page", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp flightPageResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	assert.Len(t, resp.Cards, 1)

	card := resp.Cards[0]
	assert.Len(t, card.Legs, 2)
	assert.Equal(t, "Departure", card.Legs[0].Direction)
	assert.Equal(t, "Return", card.Legs[1].Direction)
	assert.Equal(t, "https://api.saer.pk/logos/ga.png", card.Legs[0].LogoURL)
	assert.Equal(t, "https://api.saer.pk/logos/ga.png", card.Legs[1].LogoURL)
	assert.True(t, card.LowStock)
	assert.Equal(t, "Rs. 125,000", card.PriceLabel)
}

func TestFlightPageErrorAndRetry(t *testing.T) {
	stub, router := setupFlightTest(t)

	stub.mu.Lock()
	stub.failFlights = true
	stub.mu.Unlock()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/flights/page", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "fetch failed")
	assert.Contains(t, w.Body.String(), `"retry":true`)

	// Бэкенд ожил - Retry повторяет комбинированную загрузку
	stub.mu.Lock()
	stub.failFlights = false
	stub.mu.Unlock()

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/flights/retry", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp flightPageResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	assert.Len(t, resp.Cards, 1)
}

func TestFlightPageAirlineFailureFailsCombinedLoad(t *testing.T) {
	stub, router := setupFlightTest(t)

	stub.mu.Lock()
	stub.failAirlines = true
	stub.mu.Unlock()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/flights/page", nil)
	router.ServeHTTP(w, req)

	// Частично примененных списков не бывает: валится вся загрузка
	assert.Equal(t, 500, w.Code)
	assert.Contains(t, w.Body.String(), "fetch failed")
}

func TestFlightSearchUsesDeparturePrecedenceAndSkipsAirlines(t *testing.T) {
	stub, router := setupFlightTest(t)

	// Полная загрузка, чтобы справочник был на руках
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/flights/page", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)

	stub.mu.Lock()
	callsBefore := stub.airlinesCalls
	stub.mu.Unlock()

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/flights/search?departure_city=Lahore&arrival_city=Karachi", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)

	stub.mu.Lock()
	assert.Equal(t, "sector=Lahore", stub.flightsQuery)
	assert.Equal(t, callsBefore, stub.airlinesCalls, "search must not refetch airlines")
	stub.mu.Unlock()

	// Логотип по-прежнему резолвится из сохраненного справочника
	var resp flightPageResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://api.saer.pk/logos/ga.png", resp.Cards[0].Legs[0].LogoURL)
}

func TestFlightBookIsTerminalStub(t *testing.T) {
	stub, router := setupFlightTest(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/flights/book/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "reference")

	// Никакого похода в Core API
	stub.mu.Lock()
	assert.Equal(t, 0, stub.airlinesCalls)
	stub.mu.Unlock()
}
