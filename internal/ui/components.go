package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/jdlms/donut-shop/internal/catalog"
)

// FooterHelp is the default footer text on the list page
const FooterHelp = "Press 'q' to quit | 'j/k' to navigate | Enter to select | 1-9 pick category | Tab to switch pane"

// FooterDetailHelp is the footer text on the detail page
const FooterDetailHelp = "'+'/'-' quantity | 'a' add to cart | Esc to go back | 'q' to quit"

// CreateMenu creates the category menu
func CreateMenu(categories []catalog.Category) *tview.List {
	menu := tview.NewList()
	menu.SetBorder(true).SetTitle("🍩 Categories")
	menu.ShowSecondaryText(false)

	for i, c := range categories {
		menu.AddItem(MenuLabel(c, false), "", shortcut(i), nil)
	}

	// Note: selection is handled in the key bindings so that j/k and
	// Enter behave the same on every list
	return menu
}

// MenuLabel renders a category entry, marking the active one.
func MenuLabel(c catalog.Category, active bool) string {
	if active {
		return "[::b]● " + string(c) + "[::-]"
	}
	return "  " + string(c)
}

// MarkActiveCategory updates the menu labels so only active is marked
func MarkActiveCategory(menu *tview.List, categories []catalog.Category, active catalog.Category) {
	for i, c := range categories {
		if i >= menu.GetItemCount() {
			return
		}
		menu.SetItemText(i, MenuLabel(c, c == active), "")
	}
}

func shortcut(i int) rune {
	if i < 9 {
		return rune('1' + i)
	}
	return 0
}

// CreateItemTable creates the product table
func CreateItemTable() *tview.Table {
	table := tview.NewTable()
	table.SetBorder(true).SetTitle("Best Food")
	table.SetSelectable(true, false) // Allow row selection but not column selection
	table.SetFixed(1, 0)             // Fix the first row as header
	return table
}

// CreateHeader creates the header text view
func CreateHeader(greeting string) *tview.TextView {
	header := tview.NewTextView()
	header.SetBorder(true)
	header.SetText(fmt.Sprintf("%s Choose your Best food", greeting))
	header.SetTextAlign(tview.AlignCenter)
	header.SetDynamicColors(true)
	return header
}

// CreateFooter creates the footer text view with help text
func CreateFooter() *tview.TextView {
	footer := tview.NewTextView()
	footer.SetBorder(true)
	footer.SetText(FooterHelp)
	footer.SetTextAlign(tview.AlignCenter)
	footer.SetDynamicColors(true)
	return footer
}

// CreateDetailView creates the product detail text view
func CreateDetailView() *tview.TextView {
	view := tview.NewTextView()
	view.SetBorder(true).SetTitle("Detail")
	view.SetDynamicColors(true)
	view.SetWrap(true).SetWordWrap(true)
	view.SetScrollable(true)
	return view
}

// CreateDetailFooter creates the footer shown under the detail view
func CreateDetailFooter() *tview.TextView {
	footer := tview.NewTextView()
	footer.SetBorder(true)
	footer.SetText(FooterDetailHelp)
	footer.SetTextAlign(tview.AlignCenter)
	footer.SetDynamicColors(true)
	return footer
}
