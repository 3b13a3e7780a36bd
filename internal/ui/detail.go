package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/jdlms/donut-shop/internal/detail"
)

// RenderDetail draws the detail page for m.
func RenderDetail(view *tview.TextView, m *detail.Model) {
	if view == nil || m == nil {
		return
	}
	view.SetTitle(m.Item.Name)
	view.SetText(DetailText(m))
	view.ScrollToBeginning()
}

// DetailText is the markup shown on the detail page.
func DetailText(m *detail.Model) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[::b]%s[::-]\n", tview.Escape(m.Item.Name))
	fmt.Fprintf(&b, "%s\n", tview.Escape(m.Item.Description))
	fmt.Fprintf(&b, "[green::b]%s[-::-]\n\n", m.Item.Price)
	fmt.Fprintf(&b, "[gray]Image:[-] %s\n\n", m.Item.ImageURL)
	fmt.Fprintf(&b, "Delivery in [yellow]%s[-]\n\n", detail.DeliveryEstimate)
	fmt.Fprintf(&b, "Quantity:  (-)  [::b]%d[::-]  (+)\n\n", m.Quantity.Value())
	fmt.Fprintf(&b, "[::b]Restaurants info[::-]\n%s\n", detail.RestaurantInfo)

	return b.String()
}
