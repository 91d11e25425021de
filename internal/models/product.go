package models

// Menu categories. The catalog is fixed at startup, so these cover every
// item the store can sell.
const (
	CategoryNigiri  = "nigiri"
	CategoryMaki    = "maki"
	CategorySashimi = "sashimi"
	CategoryRolls   = "rolls"
	CategorySets    = "sets"
)

// Product represents a single menu item available for order.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Ingredients []string `json:"ingredients"`
	Weight      int      `json:"weight"`
	Calories    int      `json:"calories"`
	Category    string   `json:"category"`
	Spicy       bool     `json:"spicy"`
	Vegetarian  bool     `json:"vegetarian"`
	Popular     bool     `json:"popular"`
}

// CartItem is one line of a cart or an order snapshot: the product plus the
// requested quantity. Product fields are inlined so the serialized form
// matches what the storefront persists between sessions.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
