package models

// FlightTicket авиабилет из инвентаря агентства
type FlightTicket struct {
	ID             uint     `json:"id"`
	DepartureTrip  TripLeg  `json:"departure_trip"`
	ReturnTrip     *TripLeg `json:"return_trip"`
	TotalSeats     int      `json:"total_seats"`
	AvailableSeats int      `json:"available_seats"`
	AdultSelling   float64  `json:"adult_selling"`
}

// TripLeg плечо перелета (вложено в билет, отдельно не запрашивается)
type TripLeg struct {
	Airline           string `json:"airline"`
	DepartureCity     string `json:"departure_city"`
	ArrivalCity       string `json:"arrival_city"`
	DepartureDatetime string `json:"departure_datetime"`
	ArrivalDatetime   string `json:"arrival_datetime"`
}

// Airline справочник авиакомпаний (IATA)
type Airline struct {
	AirlineName string  `json:"airline_name"`
	LogoURL     *string `json:"logo_url"`
}
