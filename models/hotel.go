package models

// Hotel отель из инвентаря агентства. Цены на отель приходят только по запросу.
type Hotel struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	StarRating  int     `json:"star_rating"`
	Description *string `json:"description"`
}
