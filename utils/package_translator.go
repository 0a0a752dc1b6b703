package utils

import (
	"fmt"

	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/models"
)

// PackageHotelInfo блок "отель в городе" на карточке пакета
type PackageHotelInfo struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PackagePriceRow строка цены по размещению
type PackagePriceRow struct {
	Tier  string `json:"tier"`
	Price string `json:"price"`
}

// PackageFlightSummary сводка перелета пакета (только направление туда)
type PackageFlightSummary struct {
	Airline string `json:"airline"`
	Route   string `json:"route"`
}

// PackageCard карточка пакетного тура
type PackageCard struct {
	ID            uint                  `json:"id"`
	Title         string                `json:"title"`
	PaxCapacity   int                   `json:"pax_capacity"`
	Badges        []string              `json:"badges"`
	Hotels        []PackageHotelInfo    `json:"hotels"`
	Prices        []PackagePriceRow     `json:"prices"`
	FlightSummary *PackageFlightSummary `json:"flight_summary,omitempty"`
}

// BuildPackageCard собирает карточку пакета: бейджи по наличию опциональных
// блоков, блоки отелей, цены по фиксированному порядку размещений.
func BuildPackageCard(pkg models.Package) PackageCard {
	card := PackageCard{
		ID:          pkg.ID,
		Title:       pkg.Title,
		PaxCapacity: pkg.PaxCapacity,
		Badges:      []string{},
		Hotels:      []PackageHotelInfo{},
		Prices:      []PackagePriceRow{},
	}

	if pkg.Flight != nil {
		card.Badges = append(card.Badges, "Flight")
		card.FlightSummary = &PackageFlightSummary{
			Airline: pkg.Flight.Airline,
			Route:   fmt.Sprintf("%s → %s", pkg.Flight.DepartureCity, pkg.Flight.ArrivalCity),
		}
	}
	if pkg.VisaPricing != nil {
		card.Badges = append(card.Badges, "Visa")
	}
	if pkg.Food != nil {
		card.Badges = append(card.Badges, "Food")
	}
	if pkg.Transport != nil {
		// Подпись транспортного бейджа берется из sector, не фиксированная
		card.Badges = append(card.Badges, pkg.Transport.Sector)
	}

	for _, hotel := range pkg.Hotels {
		name := hotel.Name
		if name == "" {
			name = "Not specified"
		}
		card.Hotels = append(card.Hotels, PackageHotelInfo{
			Label: fmt.Sprintf("%s Hotel", hotel.City),
			Value: name,
		})
	}

	// Порядок уровней фиксированный, отсутствующие уровни не рендерятся
	tiers := []struct {
		label string
		tier  *models.PriceTier
	}{
		{"Sharing", pkg.PackagePrices.Sharing},
		{"Quint", pkg.PackagePrices.Quint},
		{"Quad", pkg.PackagePrices.Quad},
		{"Triple", pkg.PackagePrices.Triple},
		{"Double", pkg.PackagePrices.Double},
	}
	for _, t := range tiers {
		if t.tier == nil {
			continue
		}
		price := "N/A"
		if t.tier.Selling != 0 {
			price = FormatAmount(t.tier.Selling)
		}
		card.Prices = append(card.Prices, PackagePriceRow{Tier: t.label, Price: price})
	}

	return card
}
