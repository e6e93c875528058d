package domain

// Package is a priced ticket bundle. Price is in the gateway's major currency unit.
type Package struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
	IsPopular   bool     `json:"is_popular"`
}
