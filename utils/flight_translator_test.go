package utils

import (
	"testing"

	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/models"

	"github.com/stretchr/testify/assert"
)

const testAssetOrigin = "https://api.saer.pk"

func logoPtr(s string) *string { return &s }

func sampleLeg(airline string) models.TripLeg {
	return models.TripLeg{
		Airline:           airline,
		DepartureCity:     "Lahore",
		ArrivalCity:       "Jeddah",
		DepartureDatetime: "2025-11-10T09:30:00",
		ArrivalDatetime:   "2025-11-10T13:45:00",
	}
}

func TestFindAirlineExactMatch(t *testing.T) {
	airlines := []models.Airline{
		{AirlineName: "Serene Air"},
		{AirlineName: "Gulf Air", LogoURL: logoPtr("/logos/ga.png")},
	}

	found := FindAirline("Gulf Air", airlines)
	assert.NotNil(t, found)
	assert.Equal(t, "Gulf Air", found.AirlineName)

	// Матч строгий, с учетом регистра
	assert.Nil(t, FindAirline("gulf air", airlines))
	assert.Nil(t, FindAirline("Gulf Air ", airlines))
	assert.Nil(t, FindAirline("PIA", airlines))
}

func TestBuildFlightCardOneWaySingleLeg(t *testing.T) {
	ticket := models.FlightTicket{
		ID:             7,
		DepartureTrip:  sampleLeg("PIA"),
		TotalSeats:     40,
		AvailableSeats: 12,
		AdultSelling:   98500,
	}

	card := BuildFlightCard(ticket, nil, testAssetOrigin)
	assert.Len(t, card.Legs, 1)
	assert.Equal(t, "Departure", card.Legs[0].Direction)
	assert.Equal(t, "09:30 AM", card.Legs[0].DepartureTime)
	assert.Equal(t, "01:45 PM", card.Legs[0].ArrivalTime)
	assert.Equal(t, "10 Nov 2025", card.Legs[0].DepartureDate)
	assert.False(t, card.LowStock)
	assert.Equal(t, "Rs. 98,500", card.PriceLabel)
}

func TestBuildFlightCardRoundTripTwoLegsInOrder(t *testing.T) {
	returnLeg := sampleLeg("Gulf Air")
	returnLeg.DepartureCity = "Jeddah"
	returnLeg.ArrivalCity = "Lahore"

	ticket := models.FlightTicket{
		ID:             8,
		DepartureTrip:  sampleLeg("Gulf Air"),
		ReturnTrip:     &returnLeg,
		TotalSeats:     40,
		AvailableSeats: 3,
		AdultSelling:   125000,
	}
	airlines := []models.Airline{{AirlineName: "Gulf Air", LogoURL: logoPtr("/logos/ga.png")}}

	card := BuildFlightCard(ticket, airlines, testAssetOrigin)
	assert.Len(t, card.Legs, 2)
	assert.Equal(t, "Departure", card.Legs[0].Direction)
	assert.Equal(t, "Return", card.Legs[1].Direction)
	assert.Equal(t, testAssetOrigin+"/logos/ga.png", card.Legs[0].LogoURL)
	assert.Equal(t, testAssetOrigin+"/logos/ga.png", card.Legs[1].LogoURL)
	assert.True(t, card.LowStock)
	assert.Equal(t, "Rs. 125,000", card.PriceLabel)
}

func TestLogoOnlyWhenAirlineFoundWithLogo(t *testing.T) {
	airlines := []models.Airline{
		{AirlineName: "Serene Air"}, // без логотипа
		{AirlineName: "Gulf Air", LogoURL: logoPtr("/logos/ga.png")},
	}

	// Авиакомпания не из справочника - без логотипа, но без ошибки
	card := BuildFlightCard(models.FlightTicket{DepartureTrip: sampleLeg("Fly Jinnah")}, airlines, testAssetOrigin)
	assert.Equal(t, "", card.Legs[0].LogoURL)

	// Найдена, но логотип не заполнен
	card = BuildFlightCard(models.FlightTicket{DepartureTrip: sampleLeg("Serene Air")}, airlines, testAssetOrigin)
	assert.Equal(t, "", card.Legs[0].LogoURL)

	// Найдена с логотипом
	card = BuildFlightCard(models.FlightTicket{DepartureTrip: sampleLeg("Gulf Air")}, airlines, testAssetOrigin)
	assert.Equal(t, testAssetOrigin+"/logos/ga.png", card.Legs[0].LogoURL)
}

func TestLowStockBoundary(t *testing.T) {
	ticket := models.FlightTicket{DepartureTrip: sampleLeg("PIA")}

	ticket.AvailableSeats = 4
	assert.True(t, BuildFlightCard(ticket, nil, testAssetOrigin).LowStock)

	// Ровно пять мест - еще не мало
	ticket.AvailableSeats = 5
	assert.False(t, BuildFlightCard(ticket, nil, testAssetOrigin).LowStock)
}

func TestUnparseableDatetimeLeavesFieldsEmpty(t *testing.T) {
	leg := sampleLeg("PIA")
	leg.DepartureDatetime = "not-a-date"
	leg.ArrivalDatetime = ""

	card := BuildFlightCard(models.FlightTicket{DepartureTrip: leg}, nil, testAssetOrigin)
	assert.Equal(t, "", card.Legs[0].DepartureTime)
	assert.Equal(t, "", card.Legs[0].DepartureDate)
	assert.Equal(t, "", card.Legs[0].ArrivalTime)
}
