package listview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdlms/donut-shop/internal/catalog"
)

// pendingFetch is a fetch the test resolves by hand.
type pendingFetch struct {
	category catalog.Category
	result   chan fetchResult
}

type fetchResult struct {
	items []catalog.Item
	err   error
}

func (p *pendingFetch) succeed(items []catalog.Item) {
	p.result <- fetchResult{items: items}
}

func (p *pendingFetch) fail(err error) {
	p.result <- fetchResult{err: err}
}

// manualFetcher hands every Fetch call to the test and blocks until the
// test resolves it or the context ends.
type manualFetcher struct {
	calls chan *pendingFetch
}

func newManualFetcher() *manualFetcher {
	return &manualFetcher{calls: make(chan *pendingFetch, 16)}
}

func (f *manualFetcher) Fetch(ctx context.Context, c catalog.Category) ([]catalog.Item, error) {
	p := &pendingFetch{category: c, result: make(chan fetchResult, 1)}
	f.calls <- p

	select {
	case r := <-p.result:
		return r.items, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *manualFetcher) next(t *testing.T) *pendingFetch {
	t.Helper()
	select {
	case p := <-f.calls:
		return p
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a fetch")
		return nil
	}
}

// recorder collects every View the machine publishes.
type recorder struct {
	mu    sync.Mutex
	views []View
}

func (r *recorder) observe(v View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, v)
}

func (r *recorder) phases() []Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Phase, 0, len(r.views))
	for _, v := range r.views {
		out = append(out, v.State.Phase)
	}
	return out
}

func (r *recorder) loadedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, v := range r.views {
		if v.State.Phase == Loaded {
			n++
		}
	}
	return n
}

type harness struct {
	fetcher   *manualFetcher
	rec       *recorder
	delivered chan struct{}
}

func (h *harness) waitDelivered(t *testing.T) {
	t.Helper()
	select {
	case <-h.delivered:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a completion")
	}
}

func newTestMachine(t *testing.T) (*Machine, *harness) {
	t.Helper()
	h := &harness{
		fetcher:   newManualFetcher(),
		rec:       &recorder{},
		delivered: make(chan struct{}, 16),
	}
	ds := catalog.DefaultDataset()
	m := New(h.fetcher, ds.Categories(),
		WithObserver(h.rec.observe),
		WithDispatcher(func(f func()) {
			f()
			h.delivered <- struct{}{}
		}),
	)
	t.Cleanup(m.Stop)
	return m, h
}

func TestMachineIdleBeforeStart(t *testing.T) {
	m, _ := newTestMachine(t)

	assert.Equal(t, Idle, m.View().State.Phase)

	_, err := m.SelectCategory(catalog.CategoryDonut)
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestMachineStartWithoutCategories(t *testing.T) {
	m := New(newManualFetcher(), nil)

	_, err := m.Start(context.Background())
	assert.ErrorIs(t, err, ErrNoCategories)
}

func TestMachineMountLoadsDefaultCategory(t *testing.T) {
	ds := catalog.DefaultDataset()
	loader := catalog.NewLoader(ds, catalog.WithDelay(20*time.Millisecond))
	m := New(loader, ds.Categories())
	defer m.Stop()

	req, err := m.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryDonut, req.Category)

	view := m.View()
	assert.True(t, view.Loading())
	assert.Empty(t, view.Items())
	assert.Equal(t, catalog.CategoryDonut, view.Category)

	m.Wait()

	view = m.View()
	assert.Equal(t, Loaded, view.State.Phase)
	require.Len(t, view.Items(), 2)
	assert.Equal(t, ds.Items(catalog.CategoryDonut), view.Items())
	assert.Empty(t, view.Error())
}

func TestMachineStartUsesDefaultCategory(t *testing.T) {
	ds := catalog.DefaultDataset()
	fetcher := newManualFetcher()
	m := New(fetcher, ds.Categories(), WithDefaultCategory(catalog.CategoryFloating))
	defer m.Stop()

	req, err := m.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryFloating, req.Category)
	assert.Equal(t, catalog.CategoryFloating, fetcher.next(t).category)
}

func TestMachineLatestSelectionWins(t *testing.T) {
	ds := catalog.DefaultDataset()
	pink := ds.Items(catalog.CategoryPinkDonut)
	donuts := ds.Items(catalog.CategoryDonut)

	t.Run("earlier request resolves last", func(t *testing.T) {
		m, h := newTestMachine(t)
		fetcher, rec := h.fetcher, h.rec

		_, err := m.Start(context.Background())
		require.NoError(t, err)
		first := fetcher.next(t)

		_, err = m.SelectCategory(catalog.CategoryPinkDonut)
		require.NoError(t, err)
		second := fetcher.next(t)

		second.succeed(pink)
		first.succeed(donuts)
		m.Wait()

		view := m.View()
		assert.Equal(t, catalog.CategoryPinkDonut, view.Category)
		assert.Equal(t, pink, view.Items())
		assert.Equal(t, 1, rec.loadedCount())
	})

	t.Run("earlier request resolves first", func(t *testing.T) {
		m, h := newTestMachine(t)
		fetcher, rec := h.fetcher, h.rec

		_, err := m.Start(context.Background())
		require.NoError(t, err)
		first := fetcher.next(t)

		_, err = m.SelectCategory(catalog.CategoryPinkDonut)
		require.NoError(t, err)
		second := fetcher.next(t)

		first.succeed(donuts)
		h.waitDelivered(t)

		// The stale donut result must not end the pink load.
		assert.True(t, m.View().Loading())
		assert.Equal(t, catalog.CategoryPinkDonut, m.View().Category)

		second.succeed(pink)
		m.Wait()

		assert.Equal(t, pink, m.View().Items())
		assert.Equal(t, 1, rec.loadedCount())
	})
}

func TestMachineReselectActiveCategoryReloads(t *testing.T) {
	m, h := newTestMachine(t)
	fetcher, rec := h.fetcher, h.rec
	donuts := catalog.DefaultDataset().Items(catalog.CategoryDonut)

	_, err := m.Start(context.Background())
	require.NoError(t, err)
	fetcher.next(t).succeed(donuts)
	m.Wait()
	require.Equal(t, Loaded, m.View().State.Phase)

	_, err = m.SelectCategory(catalog.CategoryDonut)
	require.NoError(t, err)
	assert.True(t, m.View().Loading())

	fetcher.next(t).succeed(donuts)
	m.Wait()

	assert.Equal(t, []Phase{Loading, Loaded, Loading, Loaded}, rec.phases())
	assert.Equal(t, donuts, m.View().Items())
}

func TestMachineDoubleSelectAppliesOnce(t *testing.T) {
	m, h := newTestMachine(t)
	fetcher, rec := h.fetcher, h.rec
	floating := catalog.DefaultDataset().Items(catalog.CategoryFloating)

	_, err := m.Start(context.Background())
	require.NoError(t, err)
	initial := fetcher.next(t)

	first, err := m.SelectCategory(catalog.CategoryFloating)
	require.NoError(t, err)
	second, err := m.SelectCategory(catalog.CategoryFloating)
	require.NoError(t, err)
	assert.Greater(t, second.Generation, first.Generation)
	assert.NotEqual(t, first.ID, second.ID)

	view := m.View()
	assert.True(t, view.Loading())
	assert.Equal(t, catalog.CategoryFloating, view.Category)

	a := fetcher.next(t)
	b := fetcher.next(t)
	initial.succeed(nil)
	a.succeed(floating)
	b.succeed(floating)
	m.Wait()

	assert.Equal(t, floating, m.View().Items())
	assert.Equal(t, 1, rec.loadedCount())
}

func TestMachineFailure(t *testing.T) {
	m, h := newTestMachine(t)
	fetcher := h.fetcher
	donuts := catalog.DefaultDataset().Items(catalog.CategoryDonut)

	_, err := m.Start(context.Background())
	require.NoError(t, err)
	fetcher.next(t).fail(catalog.ErrLoadFailure)
	m.Wait()

	view := m.View()
	assert.Equal(t, Failed, view.State.Phase)
	assert.Equal(t, FailureMessage, view.Error())
	assert.Nil(t, view.Items())

	// Selecting any category again clears the error and reloads.
	_, err = m.SelectCategory(catalog.CategoryDonut)
	require.NoError(t, err)
	assert.True(t, m.View().Loading())
	assert.Empty(t, m.View().Error())

	fetcher.next(t).succeed(donuts)
	m.Wait()
	assert.Equal(t, donuts, m.View().Items())
}

func TestMachineStaleFailureDiscarded(t *testing.T) {
	m, h := newTestMachine(t)
	fetcher := h.fetcher
	pink := catalog.DefaultDataset().Items(catalog.CategoryPinkDonut)

	_, err := m.Start(context.Background())
	require.NoError(t, err)
	first := fetcher.next(t)

	_, err = m.SelectCategory(catalog.CategoryPinkDonut)
	require.NoError(t, err)
	second := fetcher.next(t)

	first.fail(errors.New("boom"))
	second.succeed(pink)
	m.Wait()

	assert.Equal(t, Loaded, m.View().State.Phase)
	assert.Equal(t, pink, m.View().Items())
}

func TestMachineGuardRejectsOldRequests(t *testing.T) {
	m, h := newTestMachine(t)
	fetcher := h.fetcher

	old, err := m.Start(context.Background())
	require.NoError(t, err)
	current, err := m.SelectCategory(catalog.CategoryFloating)
	require.NoError(t, err)

	assert.False(t, m.OnLoadSuccess(old, nil))
	assert.False(t, m.OnLoadFailure(old, catalog.ErrLoadFailure))
	assert.True(t, m.View().Loading())

	assert.True(t, m.OnLoadSuccess(current, []catalog.Item{{ID: "x"}}))
	assert.Equal(t, []catalog.Item{{ID: "x"}}, m.View().Items())

	fetcher.next(t).succeed(nil)
	fetcher.next(t).succeed(nil)
	m.Wait()
}

func TestMachineUnknownCategoryLoadsEmpty(t *testing.T) {
	ds := catalog.DefaultDataset()
	m := New(catalog.NewLoader(ds, catalog.WithDelay(0)), ds.Categories())
	defer m.Stop()

	_, err := m.Start(context.Background())
	require.NoError(t, err)
	_, err = m.SelectCategory("Bagel")
	require.NoError(t, err)
	m.Wait()

	view := m.View()
	assert.Equal(t, Loaded, view.State.Phase)
	assert.Empty(t, view.Items())
	assert.Empty(t, view.Error())
}

func TestMachineStop(t *testing.T) {
	m, h := newTestMachine(t)
	fetcher, rec := h.fetcher, h.rec

	_, err := m.Start(context.Background())
	require.NoError(t, err)
	fetcher.next(t)

	assert.False(t, m.Stopped())
	m.Stop()
	assert.True(t, m.Stopped())

	// The pending fetch was cancelled; its failure is not applied.
	assert.Equal(t, []Phase{Loading}, rec.phases())

	_, err = m.SelectCategory(catalog.CategoryDonut)
	assert.ErrorIs(t, err, ErrStopped)

	_, err = m.Start(context.Background())
	assert.ErrorIs(t, err, ErrStopped)
}

func TestMachineDispatcherDeliversCompletions(t *testing.T) {
	ds := catalog.DefaultDataset()
	queue := make(chan func(), 4)
	m := New(
		catalog.NewLoader(ds, catalog.WithDelay(0)),
		ds.Categories(),
		WithDispatcher(func(f func()) { queue <- f }),
	)
	defer m.Stop()

	_, err := m.Start(context.Background())
	require.NoError(t, err)
	m.Wait()

	// Nothing is applied until the UI thread drains its queue.
	assert.True(t, m.View().Loading())

	(<-queue)()
	assert.Equal(t, ds.Items(catalog.CategoryDonut), m.View().Items())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Loading", Loading.String())
	assert.Equal(t, "Loaded", Loaded.String())
	assert.Equal(t, "Failed", Failed.String())
	assert.Equal(t, "Unknown", Phase(42).String())
}
