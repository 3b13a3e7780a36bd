package app

import (
	"context"
	"fmt"

	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/jdlms/donut-shop/internal/catalog"
	"github.com/jdlms/donut-shop/internal/config"
	"github.com/jdlms/donut-shop/internal/listview"
	"github.com/jdlms/donut-shop/internal/logging"
	"github.com/jdlms/donut-shop/internal/types"
	"github.com/jdlms/donut-shop/internal/ui"
)

// CreateApp initializes and returns the application state
func CreateApp(cfg *config.Config, logger *logrus.Logger) *types.AppState {
	ui.SetupTheme(cfg.Theme)

	ds := catalog.DefaultDataset()
	state := &types.AppState{
		Dataset:  ds,
		Log:      logging.Component(logger, "app"),
		Greeting: cfg.Greeting,
	}

	// Create components
	state.Header = ui.CreateHeader(cfg.Greeting)
	state.Footer = ui.CreateFooter()
	state.Menu = ui.CreateMenu(ds.Categories())
	state.ItemTable = ui.CreateItemTable()
	state.DetailView = ui.CreateDetailView()
	state.DetailFooter = ui.CreateDetailFooter()

	// Setup layout
	state.Grid = ui.SetupGrid(state)
	state.Pages = ui.SetupPages(state)

	// Create application
	state.App = tview.NewApplication().
		SetRoot(state.Pages, true).
		SetFocus(state.Menu)

	loader := catalog.NewLoader(ds,
		catalog.WithDelay(cfg.FetchDelay),
		catalog.WithOutage(cfg.SimulateOutage),
		catalog.WithLogger(logging.Component(logger, "catalog")),
	)
	state.Log.Infof("Catalog loader ready (delay %s)", loader.Delay())

	// Completions arrive on fetch goroutines; hand them to the UI thread.
	// QueueUpdateDraw blocks until the event loop picks f up.
	state.ListView = listview.New(loader, ds.Categories(),
		listview.WithDefaultCategory(ds.Default()),
		listview.WithDispatcher(newDispatcher(state, func(f func()) {
			go state.App.QueueUpdateDraw(f)
		})),
		listview.WithObserver(func(view listview.View) {
			RenderList(state, view)
		}),
		listview.WithLogger(logging.Component(logger, "listview")),
	)

	// Setup key bindings
	SetupKeyBindings(state)

	RenderList(state, state.ListView.View())
	return state
}

// newDispatcher passes completions to queue until the list screen stops.
// After that the event loop may be gone and nothing would drain the queue.
func newDispatcher(state *types.AppState, queue func(func())) func(func()) {
	return func(f func()) {
		if state.ListView == nil || state.ListView.Stopped() {
			state.Log.Debug("List screen stopped, dropping completion")
			return
		}
		queue(f)
	}
}

// Quit stops the list screen, then the application
func Quit(state *types.AppState) {
	state.ListView.Stop()
	state.App.Stop()
}

// Run activates the list screen and blocks until the user quits
func Run(ctx context.Context, state *types.AppState) error {
	if _, err := state.ListView.Start(ctx); err != nil {
		return fmt.Errorf("starting list view: %w", err)
	}
	defer state.ListView.Stop()

	state.Log.Info("Storefront running")
	if err := state.App.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	state.Log.Info("Storefront stopped")
	return nil
}
