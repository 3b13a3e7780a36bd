package ui

import (
	"github.com/rivo/tview"

	"github.com/jdlms/donut-shop/internal/types"
)

// SetupGrid configures the list page layout
func SetupGrid(state *types.AppState) *tview.Grid {
	grid := tview.NewGrid().
		SetRows(3, 0, 3).
		SetColumns(25, 0).
		SetBorders(false)

	// Header and footer span both columns
	grid.AddItem(state.Header, 0, 0, 1, 2, 0, 0, false)
	grid.AddItem(state.Footer, 2, 0, 1, 2, 0, 0, false)

	// Categories on the left, items on the right
	grid.AddItem(state.Menu, 1, 0, 1, 1, 0, 60, true)
	grid.AddItem(state.ItemTable, 1, 1, 1, 1, 0, 60, false)

	return grid
}

// SetupPages stacks the list page and the detail page
func SetupPages(state *types.AppState) *tview.Pages {
	detailGrid := tview.NewGrid().
		SetRows(0, 3).
		SetColumns(0).
		SetBorders(false)
	detailGrid.AddItem(state.DetailView, 0, 0, 1, 1, 0, 0, true)
	detailGrid.AddItem(state.DetailFooter, 1, 0, 1, 1, 0, 0, false)

	pages := tview.NewPages()
	pages.AddPage(types.PageList, state.Grid, true, true)
	pages.AddPage(types.PageDetail, detailGrid, true, false)
	return pages
}
