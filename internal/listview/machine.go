package listview

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jdlms/donut-shop/internal/catalog"
)

var (
	// ErrNotStarted is returned when a category is selected before Start.
	ErrNotStarted = errors.New("list view not started")
	// ErrStopped is returned when a category is selected after Stop.
	ErrStopped = errors.New("list view stopped")
	// ErrNoCategories is returned by Start when there is nothing to select.
	ErrNoCategories = errors.New("no categories to select")
)

// Fetcher resolves a category to its items. catalog.Loader implements it.
type Fetcher interface {
	Fetch(ctx context.Context, c catalog.Category) ([]catalog.Item, error)
}

// Request identifies one load. Generation orders requests issued by the
// same Machine; ID correlates log lines.
type Request struct {
	ID         uuid.UUID
	Generation uint64
	Category   catalog.Category
}

// Option configures a Machine.
type Option func(*Machine)

// WithDispatcher sets how load completions reach the UI thread. The
// default runs them directly on the fetching goroutine.
func WithDispatcher(dispatch func(func())) Option {
	return func(m *Machine) {
		if dispatch != nil {
			m.dispatch = dispatch
		}
	}
}

// WithObserver registers a callback that receives every new View, in
// transition order. The observer may read View but must not select a
// category from inside the callback.
func WithObserver(observer func(View)) Option {
	return func(m *Machine) {
		m.observer = observer
	}
}

// WithDefaultCategory sets the category Start selects. It defaults to the
// first category.
func WithDefaultCategory(c catalog.Category) Option {
	return func(m *Machine) {
		m.defaultCategory = c
	}
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Entry) Option {
	return func(m *Machine) {
		if log != nil {
			m.log = log
		}
	}
}

// Machine owns the active category and the LoadState derived from it.
//
// Every selection bumps a generation counter. A completion is applied only
// if it carries the latest generation, so the most recent selection wins
// regardless of the order in which fetches finish. Superseded fetches are
// not cancelled; their results are dropped on arrival.
type Machine struct {
	fetcher         Fetcher
	categories      []catalog.Category
	defaultCategory catalog.Category
	dispatch        func(func())
	observer        func(View)
	log             *logrus.Entry

	// transitions serializes state changes together with their
	// notification; mu guards the fields below it.
	transitions sync.Mutex
	mu          sync.Mutex
	ctx         context.Context
	cancel      context.CancelFunc
	stopped     bool
	category    catalog.Category
	state       LoadState
	latest      Request

	inflight sync.WaitGroup
}

// New creates a Machine in the Idle state.
func New(fetcher Fetcher, categories []catalog.Category, opts ...Option) *Machine {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	m := &Machine{
		fetcher:    fetcher,
		categories: append([]catalog.Category(nil), categories...),
		dispatch:   func(f func()) { f() },
		log:        logrus.NewEntry(discard),
		state:      idleState(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.defaultCategory == "" && len(m.categories) > 0 {
		m.defaultCategory = m.categories[0]
	}
	return m
}

// Categories returns the selectable categories in menu order.
func (m *Machine) Categories() []catalog.Category {
	return append([]catalog.Category(nil), m.categories...)
}

// Start activates the screen: it selects the default category and enters
// Loading immediately. Fetches run under ctx until Stop.
func (m *Machine) Start(ctx context.Context) (Request, error) {
	if m.defaultCategory == "" {
		return Request{}, ErrNoCategories
	}

	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return Request{}, ErrStopped
	}
	if m.cancel != nil {
		m.cancel()
	}
	m.ctx, m.cancel = context.WithCancel(ctx)
	m.mu.Unlock()

	m.log.Infof("List screen activated, default category %q", m.defaultCategory)
	return m.SelectCategory(m.defaultCategory)
}

// SelectCategory makes c the active category, clears any error, enters
// Loading and issues a fresh fetch for c. Selecting the active category
// again reloads it.
func (m *Machine) SelectCategory(c catalog.Category) (Request, error) {
	m.transitions.Lock()
	defer m.transitions.Unlock()

	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return Request{}, ErrStopped
	}
	if m.ctx == nil {
		m.mu.Unlock()
		return Request{}, ErrNotStarted
	}

	req := Request{
		ID:         uuid.New(),
		Generation: m.latest.Generation + 1,
		Category:   c,
	}
	m.latest = req
	m.category = c
	m.state = loadingState()
	view := m.viewLocked()
	ctx := m.ctx
	m.inflight.Add(1)
	m.mu.Unlock()

	m.requestLog(req).Info("Category selected, loading")
	m.notify(view)

	go m.run(ctx, req)
	return req, nil
}

func (m *Machine) run(ctx context.Context, req Request) {
	defer m.inflight.Done()

	items, err := m.fetcher.Fetch(ctx, req.Category)
	m.dispatch(func() {
		if err != nil {
			m.OnLoadFailure(req, err)
			return
		}
		m.OnLoadSuccess(req, items)
	})
}

// OnLoadSuccess applies Loaded(items) if req is still the latest request.
// It reports whether the result was applied.
func (m *Machine) OnLoadSuccess(req Request, items []catalog.Item) bool {
	m.transitions.Lock()
	defer m.transitions.Unlock()

	m.mu.Lock()
	if !m.currentLocked(req) {
		m.mu.Unlock()
		m.requestLog(req).Debug("Discarding stale result")
		return false
	}
	m.state = loadedState(items)
	view := m.viewLocked()
	m.mu.Unlock()

	m.requestLog(req).Infof("Loaded %d items", len(items))
	m.notify(view)
	return true
}

// OnLoadFailure applies Failed(FailureMessage) if req is still the latest
// request. The cause is logged, never shown. No retry is attempted.
func (m *Machine) OnLoadFailure(req Request, err error) bool {
	m.transitions.Lock()
	defer m.transitions.Unlock()

	m.mu.Lock()
	if !m.currentLocked(req) {
		m.mu.Unlock()
		m.requestLog(req).WithError(err).Debug("Discarding stale failure")
		return false
	}
	m.state = failedState(FailureMessage)
	view := m.viewLocked()
	m.mu.Unlock()

	m.requestLog(req).WithError(err).Warn("Load failed")
	m.notify(view)
	return true
}

// View returns a snapshot for rendering.
func (m *Machine) View() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viewLocked()
}

// Wait blocks until every issued fetch has finished and handed its result
// to the dispatcher.
func (m *Machine) Wait() {
	m.inflight.Wait()
}

// Stopped reports whether Stop has been called.
func (m *Machine) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// Stop deactivates the screen. Pending fetches are cancelled and any result
// that still arrives is discarded.
func (m *Machine) Stop() {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	m.stopped = true
	if m.cancel != nil {
		m.cancel()
	}
	m.mu.Unlock()

	m.inflight.Wait()
	m.log.Info("List screen stopped")
}

func (m *Machine) currentLocked(req Request) bool {
	return !m.stopped && req.Generation == m.latest.Generation
}

func (m *Machine) viewLocked() View {
	state := m.state
	if state.Items != nil {
		state.Items = append([]catalog.Item(nil), state.Items...)
	}
	return View{Category: m.category, State: state}
}

func (m *Machine) notify(v View) {
	if m.observer != nil {
		m.observer(v)
	}
}

func (m *Machine) requestLog(req Request) *logrus.Entry {
	return m.log.WithFields(logrus.Fields{
		"request_id": req.ID.String(),
		"generation": req.Generation,
		"category":   req.Category,
	})
}
