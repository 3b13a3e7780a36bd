package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/jdlms/donut-shop/internal/types"
)

// SetupKeyBindings configures keyboard input handling
func SetupKeyBindings(state *types.AppState) {
	state.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if page, _ := state.Pages.GetFrontPage(); page == types.PageDetail {
			return HandleDetailKey(state, event)
		}
		return HandleListKey(state, event)
	})
}

// HandleListKey handles input on the list page. It returns nil when the
// event was consumed.
func HandleListKey(state *types.AppState, event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyTab, tcell.KeyBacktab:
		if state.App.GetFocus() == state.Menu {
			state.App.SetFocus(state.ItemTable)
		} else {
			state.App.SetFocus(state.Menu)
		}
		return nil
	case tcell.KeyEnter:
		switch state.App.GetFocus() {
		case state.Menu:
			// Re-selecting the active category reloads it
			SelectCategoryAt(state, state.Menu.GetCurrentItem())
			return nil
		case state.ItemTable:
			OpenSelectedDetail(state)
			return nil
		}
		return event
	case tcell.KeyRune:
	default:
		return event
	}

	r := event.Rune()
	switch {
	case r == 'q':
		Quit(state)
		return nil
	case r >= '1' && r <= '9':
		if SelectCategoryAt(state, int(r-'1')) {
			return nil
		}
		return event
	case r == 'j':
		// Move down in menu; the table handles j/k itself
		if state.App.GetFocus() == state.Menu {
			currentIndex := state.Menu.GetCurrentItem()
			if currentIndex < state.Menu.GetItemCount()-1 {
				state.Menu.SetCurrentItem(currentIndex + 1)
			}
			return nil
		}
	case r == 'k':
		// Move up in menu
		if state.App.GetFocus() == state.Menu {
			currentIndex := state.Menu.GetCurrentItem()
			if currentIndex > 0 {
				state.Menu.SetCurrentItem(currentIndex - 1)
			}
			return nil
		}
	}

	return event
}

// HandleDetailKey handles input on the detail page
func HandleDetailKey(state *types.AppState, event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		CloseDetail(state)
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch event.Rune() {
	case 'q':
		Quit(state)
		return nil
	case '+', '=':
		ChangeQuantity(state, true)
		return nil
	case '-', '_':
		ChangeQuantity(state, false)
		return nil
	case 'a':
		AddToCart(state)
		return nil
	}
	return event
}
