package models

// Package пакетный тур (умра/хадж). Опциональные блоки оформлены указателями:
// наличие блока определяет бейджи на карточке.
type Package struct {
	ID            uint           `json:"id"`
	Title         string         `json:"title"`
	PaxCapacity   int            `json:"pax_capacity"`
	Hotels        []PackageHotel `json:"hotels"`
	Flight        *PackageFlight `json:"flight"`
	VisaPricing   *VisaPricing   `json:"visa_pricing"`
	Food          *FoodInfo      `json:"food"`
	Transport     *TransportInfo `json:"transport"`
	PackagePrices PackagePrices  `json:"package_prices"`
}

// PackageHotel отель внутри пакета
type PackageHotel struct {
	City string `json:"city"`
	Name string `json:"name"`
}

// PackageFlight перелет внутри пакета (только прямое направление в сводке)
type PackageFlight struct {
	Airline       string `json:"airline"`
	DepartureCity string `json:"departure_city"`
	ArrivalCity   string `json:"arrival_city"`
}

// VisaPricing визовый блок пакета
type VisaPricing struct {
	Selling float64 `json:"selling"`
}

// FoodInfo питание в пакете
type FoodInfo struct {
	Description string `json:"description"`
}

// TransportInfo транспорт в пакете, sector идет в подпись бейджа
type TransportInfo struct {
	Sector string `json:"sector"`
}

// PackagePrices ценовые уровни по размещению. Каждый уровень независимо опционален.
type PackagePrices struct {
	Sharing *PriceTier `json:"sharing"`
	Quint   *PriceTier `json:"quint"`
	Quad    *PriceTier `json:"quad"`
	Triple  *PriceTier `json:"triple"`
	Double  *PriceTier `json:"double"`
}

// PriceTier цена уровня размещения
type PriceTier struct {
	Selling float64 `json:"selling"`
}
