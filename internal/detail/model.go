package detail

import (
	"fmt"

	"github.com/jdlms/donut-shop/internal/catalog"
)

// Static copy shown on every detail page.
const (
	DeliveryEstimate = "30 min"
	RestaurantInfo   = "Order a Large Pizza but the size is the equivalent of a medium/small from other places at the same price range."
)

// Order is the intent produced by "Add to cart". Nothing stores it.
type Order struct {
	Item     catalog.Item
	Quantity int
}

func (o Order) String() string {
	return fmt.Sprintf("%d x %s (%s each)", o.Quantity, o.Item.Name, o.Item.Price)
}

// Model is the state of one open detail page.
type Model struct {
	Item     catalog.Item
	Quantity *Quantity
}

// Open starts a detail page for item with quantity 1.
func Open(item catalog.Item) *Model {
	return &Model{
		Item:     item,
		Quantity: NewQuantity(),
	}
}

// AddToCart returns the order intent for the current quantity.
func (m *Model) AddToCart() Order {
	return Order{Item: m.Item, Quantity: m.Quantity.Value()}
}
