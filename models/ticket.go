package models

// TicketGroup групповой (блочный) билет, плоская запись без вложенных плеч
type TicketGroup struct {
	ID           uint    `json:"id"`
	GroupName    string  `json:"group_name"`
	TripType     string  `json:"trip_type"`
	Airline      string  `json:"airline"`
	AvailableQty int     `json:"available_qty"`
	TotalQty     int     `json:"total_qty"`
	PNR          *string `json:"pnr"`
	SellingPrice float64 `json:"selling_price"`
}
