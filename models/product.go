package models

import "github.com/shopspring/decimal"

// Product is a catalog entry as rendered by the marketplace screens.
// Discount is the percentage badge shown next to the price; totals are
// always derived from the price fields, not from this value.
type Product struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Image         string           `json:"image"`
	Rating        float64          `json:"rating"`
	Reviews       int              `json:"reviews"`
	Category      string           `json:"category"`
	Discount      int              `json:"discount"`
	Badge         string           `json:"badge,omitempty"`
	Brand         string           `json:"brand"`
	AgeRange      string           `json:"age_range"`
	Features      []string         `json:"features"`
	Description   string           `json:"description,omitempty"`
}
