// Package catalog is the read-only seeded product catalog backing the
// marketplace screens. Data is fixed at init and safe for concurrent reads.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"storefront-service/models"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pricePtr(s string) *decimal.Decimal {
	d := price(s)
	return &d
}

// Category tab order as rendered by the marketplace screen. "All" is the
// implicit first tab.
var categories = []string{"All", "Toys", "Educational", "Electronics", "Accessories"}

var products = []models.Product{
	{
		ID:            1,
		Name:          "Buddy the Bear",
		Price:         price("89.99"),
		OriginalPrice: pricePtr("119.99"),
		Image:         "https://images.unsplash.com/photo-1542282088-72c9c27ed0cd?w=400&q=80",
		Rating:        4.8,
		Reviews:       124,
		Category:      "Toys",
		Discount:      25,
		Badge:         "Popular",
		Brand:         "AI Toys Co.",
		AgeRange:      "Ages 3-7",
		Features:      []string{"AI-Powered", "Safe Materials"},
		Description:   "An interactive AI-powered teddy bear that provides companionship and educational entertainment for children. With advanced voice recognition and emotional intelligence, Buddy can engage in meaningful conversations and adapt to your child's personality.",
	},
	{
		ID:            2,
		Name:          "Smart Elephant",
		Price:         price("69.99"),
		OriginalPrice: pricePtr("89.99"),
		Image:         "https://images.unsplash.com/photo-1547471080-7cc2caa01a7e?w=400&q=80",
		Rating:        4.6,
		Reviews:       89,
		Category:      "Toys",
		Discount:      22,
		Badge:         "Sale",
		Brand:         "Smart Toys",
		AgeRange:      "Ages 4-8",
		Features:      []string{"AI-Powered", "Educational"},
		Description:   "A wise and interactive elephant toy that teaches children about animals, nature, and conservation. Features touch sensors, voice recognition, and multiple educational games.",
	},
	{
		ID:            3,
		Name:          "Dino Explorer",
		Price:         price("79.99"),
		OriginalPrice: pricePtr("99.99"),
		Image:         "https://images.unsplash.com/photo-1542282088-72c9c27ed0cd?w=400&q=80",
		Rating:        4.9,
		Reviews:       156,
		Category:      "Educational",
		Discount:      20,
		Badge:         "New",
		Brand:         "Dino Toys",
		AgeRange:      "Ages 5-10",
		Features:      []string{"Educational", "Safe Materials"},
		Description:   "An exciting dinosaur companion that brings prehistoric times to life. Features sound effects, movement sensors, and facts about different dinosaur species.",
	},
	{
		ID:            4,
		Name:          "Robot Friend",
		Price:         price("109.99"),
		OriginalPrice: pricePtr("139.99"),
		Image:         "https://images.unsplash.com/photo-1547471080-7cc2caa01a7e?w=400&q=80",
		Rating:        4.7,
		Reviews:       203,
		Category:      "Electronics",
		Discount:      21,
		Badge:         "Popular",
		Brand:         "Tech Toys",
		AgeRange:      "Ages 6-12",
		Features:      []string{"AI-Powered", "Educational"},
		Description:   "A programmable robot companion that teaches children basic coding concepts while providing entertainment. Features LED lights, movement capabilities, and voice interaction.",
	},
	{
		ID:            5,
		Name:          "Space Buddy",
		Price:         price("99.99"),
		OriginalPrice: pricePtr("129.99"),
		Image:         "https://images.unsplash.com/photo-1542282088-72c9c27ed0cd?w=400&q=80",
		Rating:        4.5,
		Reviews:       78,
		Category:      "Educational",
		Discount:      23,
		Badge:         "Sale",
		Brand:         "Space Toys",
		AgeRange:      "Ages 4-9",
		Features:      []string{"Educational", "AI-Powered"},
		Description:   "A space-themed AI toy that teaches children about astronomy, planets, and space exploration. Features constellation projection and interactive space missions.",
	},
	{
		ID:            6,
		Name:          "Ocean Friend",
		Price:         price("84.99"),
		OriginalPrice: pricePtr("104.99"),
		Image:         "https://images.unsplash.com/photo-1547471080-7cc2caa01a7e?w=400&q=80",
		Rating:        4.8,
		Reviews:       142,
		Category:      "Toys",
		Discount:      19,
		Badge:         "New",
		Brand:         "Ocean Toys",
		AgeRange:      "Ages 3-8",
		Features:      []string{"Safe Materials", "Educational"},
		Description:   "A friendly sea creature toy that teaches children about marine life and ocean conservation. Features water-resistant design and underwater sound effects.",
	},
	{
		ID:          7,
		Name:        "Adventure Kit",
		Price:       price("59.99"),
		Image:       "https://images.unsplash.com/photo-1542282088-72c9c27ed0cd?w=400&q=80",
		Rating:      4.6,
		Reviews:     92,
		Category:    "Accessories",
		Discount:    0,
		Brand:       "Adventure Toys",
		AgeRange:    "Ages 5-10",
		Features:    []string{"Safe Materials", "Durable"},
		Description: "A complete adventure set including compass, magnifying glass, and explorer tools. Perfect for outdoor adventures and nature exploration activities.",
	},
	{
		ID:            8,
		Name:          "Learning Blocks",
		Price:         price("49.99"),
		OriginalPrice: pricePtr("59.99"),
		Image:         "https://images.unsplash.com/photo-1547471080-7cc2caa01a7e?w=400&q=80",
		Rating:        4.7,
		Reviews:       167,
		Category:      "Educational",
		Discount:      17,
		Badge:         "Popular",
		Brand:         "Learning Toys",
		AgeRange:      "Ages 2-6",
		Features:      []string{"Educational", "Safe Materials"},
		Description:   "Colorful educational blocks that help children learn shapes, colors, numbers, and letters. Features textured surfaces for sensory development and creative building.",
	},
}

// All returns every product in display order.
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// Get returns the product with the given ID.
func Get(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Categories returns the category tabs in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// Filter returns products matching the category tab and search query.
// An empty or "All" category matches everything; the query is a
// case-insensitive substring match over name, brand, and category.
func Filter(category, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.Product{}
	for _, p := range products {
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		if q != "" && !matches(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p models.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}
