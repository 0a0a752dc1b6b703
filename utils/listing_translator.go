package utils

import (
	"fmt"

	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/models"
)

// HotelCard карточка отеля. Цена на сущности отеля не приходит,
// карточка всегда показывает "On Request".
type HotelCard struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	StarRating  int    `json:"star_rating"`
	Description string `json:"description"`
	PriceLabel  string `json:"price_label"`
}

// TicketGroupCard карточка группового билета
type TicketGroupCard struct {
	ID         uint   `json:"id"`
	GroupName  string `json:"group_name"`
	TripType   string `json:"trip_type"`
	Airline    string `json:"airline"`
	QtyLabel   string `json:"qty_label"`
	PNR        string `json:"pnr,omitempty"`
	LowStock   bool   `json:"low_stock"`
	PriceLabel string `json:"price_label"`
}

// BuildHotelCard собирает карточку отеля
func BuildHotelCard(hotel models.Hotel) HotelCard {
	description := ""
	if hotel.Description != nil {
		description = *hotel.Description
	}
	return HotelCard{
		ID:          hotel.ID,
		Name:        hotel.Name,
		City:        hotel.City,
		StarRating:  hotel.StarRating,
		Description: description,
		PriceLabel:  "On Request",
	}
}

// BuildTicketGroupCard собирает карточку группового билета
func BuildTicketGroupCard(group models.TicketGroup) TicketGroupCard {
	card := TicketGroupCard{
		ID:         group.ID,
		GroupName:  group.GroupName,
		TripType:   group.TripType,
		Airline:    group.Airline,
		QtyLabel:   fmt.Sprintf("%d/%d", group.AvailableQty, group.TotalQty),
		LowStock:   group.AvailableQty < LowStockThreshold,
		PriceLabel: FormatRupees(group.SellingPrice),
	}
	if group.PNR != nil {
		card.PNR = *group.PNR
	}
	return card
}
