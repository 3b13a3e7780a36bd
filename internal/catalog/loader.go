package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultDelay is the simulated network latency of a fetch.
const DefaultDelay = time.Second

// ErrLoadFailure is the single error kind a fetch can produce.
var ErrLoadFailure = errors.New("load failure")

// Loader resolves a category to its items after a fixed simulated delay.
// It keeps no per-call state, so concurrent Fetch calls are independent.
type Loader struct {
	dataset *Dataset
	delay   time.Duration
	outage  bool
	log     *logrus.Entry
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithDelay overrides the simulated latency. Negative values are treated as zero.
func WithDelay(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d < 0 {
			d = 0
		}
		l.delay = d
	}
}

// WithOutage makes every fetch fail once the delay has elapsed.
func WithOutage(outage bool) LoaderOption {
	return func(l *Loader) {
		l.outage = outage
	}
}

// WithLogger sets the logger used for fetch tracing.
func WithLogger(log *logrus.Entry) LoaderOption {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLoader creates a loader over ds.
func NewLoader(ds *Dataset, opts ...LoaderOption) *Loader {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	l := &Loader{
		dataset: ds,
		delay:   DefaultDelay,
		log:     logrus.NewEntry(discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Delay reports the configured simulated latency.
func (l *Loader) Delay() time.Duration {
	return l.delay
}

// Fetch waits for the simulated delay and returns the items registered for
// c, in registration order. An unknown category is not an error: it yields
// an empty slice. The returned error, if any, wraps ErrLoadFailure.
func (l *Loader) Fetch(ctx context.Context, c Category) ([]Item, error) {
	log := l.log.WithField("category", c)
	log.Debugf("Fetching items (delay %s)", l.delay)

	timer := time.NewTimer(l.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		log.Debugf("Fetch abandoned: %v", ctx.Err())
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, ctx.Err())
	case <-timer.C:
	}

	if l.outage {
		log.Warn("Simulated outage, failing fetch")
		return nil, fmt.Errorf("%w: simulated outage", ErrLoadFailure)
	}

	items := l.dataset.Items(c)
	if !l.dataset.Has(c) {
		log.Info("Unknown category, returning no items")
	}
	log.Debugf("Fetched %d items", len(items))
	return items, nil
}
