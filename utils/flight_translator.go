package utils

import (
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/models"
)

// Порог "мало мест" для карточек. Пять мест - еще не мало.
const LowStockThreshold = 5

// FlightLegView строка плеча на карточке билета
type FlightLegView struct {
	Direction     string `json:"direction"`
	Airline       string `json:"airline"`
	LogoURL       string `json:"logo_url,omitempty"`
	DepartureCity string `json:"departure_city"`
	ArrivalCity   string `json:"arrival_city"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureDate string `json:"departure_date"`
}

// FlightCard карточка авиабилета
type FlightCard struct {
	ID             uint            `json:"id"`
	Legs           []FlightLegView `json:"legs"`
	TotalSeats     int             `json:"total_seats"`
	AvailableSeats int             `json:"available_seats"`
	LowStock       bool            `json:"low_stock"`
	PriceLabel     string          `json:"price_label"`
}

// FindAirline ищет авиакомпанию по точному совпадению имени (с учетом
// регистра). Nil - не ошибка: джойн с справочником заведомо с потерями,
// карточка в этом случае показывает generic иконку.
func FindAirline(name string, airlines []models.Airline) *models.Airline {
	for i := range airlines {
		if airlines[i].AirlineName == name {
			return &airlines[i]
		}
	}
	return nil
}

// BuildFlightCard собирает карточку билета: плечо туда, плечо обратно (если
// есть), джойн логотипов по справочнику, цена и признак "мало мест".
func BuildFlightCard(ticket models.FlightTicket, airlines []models.Airline, assetOrigin string) FlightCard {
	legs := []FlightLegView{
		buildLegView("Departure", ticket.DepartureTrip, airlines, assetOrigin),
	}
	if ticket.ReturnTrip != nil {
		legs = append(legs, buildLegView("Return", *ticket.ReturnTrip, airlines, assetOrigin))
	}

	return FlightCard{
		ID:             ticket.ID,
		Legs:           legs,
		TotalSeats:     ticket.TotalSeats,
		AvailableSeats: ticket.AvailableSeats,
		LowStock:       ticket.AvailableSeats < LowStockThreshold,
		PriceLabel:     FormatRupees(ticket.AdultSelling),
	}
}

func buildLegView(direction string, leg models.TripLeg, airlines []models.Airline, assetOrigin string) FlightLegView {
	view := FlightLegView{
		Direction:     direction,
		Airline:       leg.Airline,
		DepartureCity: leg.DepartureCity,
		ArrivalCity:   leg.ArrivalCity,
	}

	if airline := FindAirline(leg.Airline, airlines); airline != nil {
		if airline.LogoURL != nil && *airline.LogoURL != "" {
			view.LogoURL = assetOrigin + *airline.LogoURL
		}
	}

	if dep, ok := ParseBackendDatetime(leg.DepartureDatetime); ok {
		view.DepartureTime = FormatTimeOfDay(dep)
		view.DepartureDate = FormatShortDate(dep)
	}
	if arr, ok := ParseBackendDatetime(leg.ArrivalDatetime); ok {
		view.ArrivalTime = FormatTimeOfDay(arr)
	}

	return view
}
