// Package catalog holds the storefront's static product data and the
// simulated fetch that serves it.
package catalog

// Category is a named partition of the catalog, e.g. "Pink Donut".
type Category string

// Item is a single catalog entry. Price is already formatted for display.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image"`
}

// Categories the storefront ships with, in menu order.
const (
	CategoryDonut     Category = "Donut"
	CategoryPinkDonut Category = "Pink Donut"
	CategoryFloating  Category = "Floating"
)
