package models

import "github.com/shopspring/decimal"

// CartLine is a single cart entry. OriginalPrice is nil when the product
// is not discounted. DiscountPercent is carried for display and is never
// consulted when computing totals.
type CartLine struct {
	ProductID       int              `json:"product_id"`
	Name            string           `json:"name"`
	Image           string           `json:"image,omitempty"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	Quantity        int              `json:"quantity"`
	DiscountPercent int              `json:"discount_percent"`
}

// CartSummary holds the derived totals, rendered to two decimal places.
type CartSummary struct {
	Subtotal             string `json:"subtotal"`
	Savings              string `json:"savings"`
	Shipping             string `json:"shipping"`
	Total                string `json:"total"`
	FreeShippingEligible bool   `json:"free_shipping_eligible"`
}

// AddItemRequest adds a catalog product to the session cart.
type AddItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity"`
}

// UpdateQuantityRequest replaces the quantity of a cart line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// LoginRequest carries login form fields for pre-submit validation.
// Fields are intentionally unbound so empty values reach the validator
// and come back as per-field messages instead of a binding error.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest carries signup form fields for pre-submit validation.
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}
