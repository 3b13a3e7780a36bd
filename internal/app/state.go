// state.go - list and detail page transitions
package app

import (
	"fmt"

	"github.com/jdlms/donut-shop/internal/catalog"
	"github.com/jdlms/donut-shop/internal/detail"
	"github.com/jdlms/donut-shop/internal/listview"
	"github.com/jdlms/donut-shop/internal/types"
	"github.com/jdlms/donut-shop/internal/ui"
)

// RenderList redraws the list page widgets from view. It must run on the
// UI thread.
func RenderList(state *types.AppState, view listview.View) {
	state.Header.SetText(ui.HeaderText(state.Greeting, view))
	ui.MarkActiveCategory(state.Menu, state.ListView.Categories(), view.Category)
	ui.PopulateItems(state.ItemTable, view)
}

// SelectCategory forwards a category pick to the list view
func SelectCategory(state *types.AppState, c catalog.Category) {
	state.Log.Debugf("Category %q picked", c)
	if _, err := state.ListView.SelectCategory(c); err != nil {
		state.Log.WithError(err).Errorf("Could not select %q", c)
	}
}

// SelectCategoryAt picks the category at index in menu order
func SelectCategoryAt(state *types.AppState, index int) bool {
	categories := state.ListView.Categories()
	if index < 0 || index >= len(categories) {
		return false
	}
	state.Menu.SetCurrentItem(index)
	SelectCategory(state, categories[index])
	return true
}

// OpenDetail shows the detail page for item
func OpenDetail(state *types.AppState, item catalog.Item) {
	state.Log.WithField("item_id", item.ID).Info("Opening detail")

	state.DetailMutex.Lock()
	state.Detail = detail.Open(item)
	m := state.Detail
	state.DetailMutex.Unlock()

	ui.RenderDetail(state.DetailView, m)
	state.DetailFooter.SetText(ui.FooterDetailHelp)
	state.Pages.SwitchToPage(types.PageDetail)
	state.App.SetFocus(state.DetailView)
}

// OpenSelectedDetail opens the item under the table cursor
func OpenSelectedDetail(state *types.AppState) bool {
	row, _ := state.ItemTable.GetSelection()
	id, ok := ui.ItemIDAtRow(state.ItemTable, row)
	if !ok {
		return false
	}
	item, ok := state.Dataset.Lookup(id)
	if !ok {
		state.Log.WithField("item_id", id).Warn("Selected item is not in the catalog")
		return false
	}
	OpenDetail(state, item)
	return true
}

// CloseDetail returns to the list page
func CloseDetail(state *types.AppState) {
	state.DetailMutex.Lock()
	state.Detail = nil
	state.DetailMutex.Unlock()

	state.Pages.SwitchToPage(types.PageList)
	state.App.SetFocus(state.ItemTable)
}

// ChangeQuantity steps the open detail's quantity by one in either direction
func ChangeQuantity(state *types.AppState, up bool) {
	state.DetailMutex.Lock()
	m := state.Detail
	if m != nil {
		if up {
			m.Quantity.Increment()
		} else {
			m.Quantity.Decrement()
		}
	}
	state.DetailMutex.Unlock()

	if m != nil {
		ui.RenderDetail(state.DetailView, m)
	}
}

// AddToCart records the add-to-cart intent of the open detail page
func AddToCart(state *types.AppState) (detail.Order, bool) {
	state.DetailMutex.Lock()
	m := state.Detail
	state.DetailMutex.Unlock()
	if m == nil {
		return detail.Order{}, false
	}

	order := m.AddToCart()
	state.Log.WithField("item_id", order.Item.ID).Infof("Add to cart: %s", order)
	state.DetailFooter.SetText(fmt.Sprintf("[green]Added %s to cart[-] | %s", order, ui.FooterDetailHelp))
	return order, true
}
