// Package listview implements the category-scoped loading state machine
// behind the product list screen.
package listview

import "github.com/jdlms/donut-shop/internal/catalog"

// FailureMessage is the only error text the list screen ever shows.
const FailureMessage = "Failed to fetch data"

// Phase tags a LoadState.
type Phase int

const (
	// Idle is the state before the screen is activated.
	Idle Phase = iota
	Loading
	Loaded
	Failed
)

// String returns a string representation of the Phase
func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Loading:
		return "Loading"
	case Loaded:
		return "Loaded"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// LoadState is a tagged variant over Idle, Loading, Loaded(Items) and
// Failed(Message). Transitions replace it wholesale.
type LoadState struct {
	Phase   Phase
	Items   []catalog.Item
	Message string
}

func idleState() LoadState {
	return LoadState{Phase: Idle}
}

func loadingState() LoadState {
	return LoadState{Phase: Loading}
}

func loadedState(items []catalog.Item) LoadState {
	out := make([]catalog.Item, len(items))
	copy(out, items)
	return LoadState{Phase: Loaded, Items: out}
}

func failedState(msg string) LoadState {
	return LoadState{Phase: Failed, Message: msg}
}

// View is what the presentation layer renders on each change.
type View struct {
	Category catalog.Category
	State    LoadState
}

// Loading reports whether a load for the active category is pending.
func (v View) Loading() bool {
	return v.State.Phase == Loading
}

// Items returns the loaded items, or nil outside the Loaded phase.
func (v View) Items() []catalog.Item {
	if v.State.Phase != Loaded {
		return nil
	}
	return v.State.Items
}

// Error returns the user-facing error, or "" outside the Failed phase.
func (v View) Error() string {
	if v.State.Phase != Failed {
		return ""
	}
	return v.State.Message
}
