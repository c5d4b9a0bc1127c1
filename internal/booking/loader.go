package booking

import (
	"bistro/pkg/logger"
	"bistro/pkg/model"
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Source is where availability comes from.
type Source interface {
	Bookings(ctx context.Context, start, end string) ([]model.BookingEntry, error)
	OneOffEvents(ctx context.Context, start, end string) ([]model.Event, error)
	RecurringEvents(ctx context.Context, end string) ([]model.Event, error)
}

// Loader fetches the three availability feeds together and builds an Index
// from them. A load either produces a complete index or nothing.
//
// Loads are numbered as they start. A load that finishes after a newer one
// has started is dropped with ErrStaleLoad, whether or not the newer one
// succeeds.
type Loader struct {
	src Source
	log *logger.Logger

	mu      sync.Mutex
	issued  uint64
	applied uint64
}

func NewLoader(src Source, log *logger.Logger) *Loader {
	return &Loader{src: src, log: log.Component("availability_loader")}
}

// Load fetches availability for r and hands the index to apply unless a
// newer load has started since. apply runs under the loader's lock, so
// applications happen in load order.
func (l *Loader) Load(ctx context.Context, r DateRange, apply func(*Index)) error {
	l.mu.Lock()
	l.issued++
	seq := l.issued
	l.mu.Unlock()

	start, end := r.StartDate(), r.EndDate()

	var (
		bookings  []model.BookingEntry
		oneOff    []model.Event
		recurring []model.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = l.src.Bookings(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		oneOff, err = l.src.OneOffEvents(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		recurring, err = l.src.RecurringEvents(gctx, end)
		return err
	})
	if err := g.Wait(); err != nil {
		l.log.Warn("availability load failed", "seq", seq, "start", start, "end", end, "error", err)
		return err
	}

	idx, skipped := Build(bookings, oneOff, recurring, r)
	for _, err := range skipped {
		l.log.Warn("skipping unreadable availability entry", "seq", seq, "error", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq < l.issued {
		l.log.Debug("dropping stale availability load", "seq", seq, "issued", l.issued, "applied", l.applied)
		return ErrStaleLoad
	}
	l.applied = seq
	apply(idx)

	l.log.Debug("availability loaded",
		"seq", seq,
		"bookings", len(bookings),
		"one_off_events", len(oneOff),
		"recurring_events", len(recurring),
		"occupied", idx.Len(),
	)
	return nil
}
