package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/jdlms/donut-shop/internal/listview"
)

var itemColumns = []string{"Name", "Description", "Price"}

// PopulateItems fills the table from the list view. Row 0 is the column
// header; item i is on row i+1.
func PopulateItems(table *tview.Table, view listview.View) {
	if table == nil {
		return
	}

	table.Clear()
	table.SetTitle(fmt.Sprintf("Best Food - %s", view.Category))

	switch view.State.Phase {
	case listview.Idle:
		setMessage(table, "[gray]Nothing selected yet[-]")
		return
	case listview.Loading:
		setMessage(table, "[yellow]Loading...[-]")
		return
	case listview.Failed:
		setMessage(table, "[red]"+view.Error()+"[-]")
		return
	}

	items := view.Items()
	if len(items) == 0 {
		setMessage(table, fmt.Sprintf("No items in %s", view.Category))
		return
	}

	for col, name := range itemColumns {
		table.SetCell(0, col, tview.NewTableCell("[yellow::b]"+name+"[-::-]").
			SetAlign(tview.AlignCenter).
			SetSelectable(false))
	}

	for i, item := range items {
		row := i + 1
		table.SetCell(row, 0, tview.NewTableCell("[white]"+item.Name+"[-]").
			SetAlign(tview.AlignLeft).
			SetReference(item.ID))
		table.SetCell(row, 1, tview.NewTableCell(item.Description).
			SetAlign(tview.AlignLeft).
			SetExpansion(1))
		table.SetCell(row, 2, tview.NewTableCell("[green]"+item.Price+"[-]").
			SetAlign(tview.AlignRight))
	}
	table.Select(1, 0)
}

func setMessage(table *tview.Table, msg string) {
	table.SetCell(0, 0, tview.NewTableCell(msg).
		SetAlign(tview.AlignCenter).
		SetSelectable(false).
		SetExpansion(1))
}

// ItemIDAtRow returns the id of the item rendered on row, if any.
func ItemIDAtRow(table *tview.Table, row int) (string, bool) {
	cell := table.GetCell(row, 0)
	if cell == nil {
		return "", false
	}
	id, ok := cell.GetReference().(string)
	return id, ok
}

// HeaderText is the header line for the list page.
func HeaderText(greeting string, view listview.View) string {
	switch view.State.Phase {
	case listview.Loading:
		return fmt.Sprintf("%s [yellow]Loading %s...[-]", greeting, view.Category)
	case listview.Loaded:
		return fmt.Sprintf("%s [green]Choose your Best food - %s[-] (%d items)", greeting, view.Category, len(view.Items()))
	case listview.Failed:
		return fmt.Sprintf("%s [red]%s[-] (select a category to retry)", greeting, view.Error())
	default:
		return fmt.Sprintf("%s Choose your Best food", greeting)
	}
}
