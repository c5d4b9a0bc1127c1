package booking

import (
	"bistro/internal/quantity"
	"bistro/pkg/config"
	apperrors "bistro/pkg/errors"
	"bistro/pkg/logger"
	"bistro/pkg/model"
	"bistro/pkg/notify"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
)

// ReservationSubmitter sends a reservation to the restaurant.
type ReservationSubmitter interface {
	SubmitReservation(ctx context.Context, reservation model.Reservation) error
}

type TableView struct {
	ID     int
	Booked bool
	Chosen bool
}

// View is what a renderer needs to draw the booking form.
type View struct {
	Date   string
	Hour   string
	Table  int // 0 when no table is chosen
	Tables []TableView
}

// Session is one customer's table booking form. Refresh may complete on
// another goroutine, so all state is guarded by a mutex. Notifications are
// delivered after the lock is released; subscribe before the session is
// shared.
type Session struct {
	cfg       config.Engine
	loader    *Loader
	submitter ReservationSubmitter
	log       *logger.Logger
	now       func() time.Time

	mu         sync.Mutex
	date       string
	hour       float64
	table      int
	phone      string
	address    string
	starters   []string
	index      *Index
	submitting bool

	hours  *quantity.Widget
	people *quantity.Widget

	Updated notify.Notifier[View]
}

type Option func(*Session)

// WithClock replaces time.Now for choosing today's date.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func NewSession(cfg config.Engine, src Source, submitter ReservationSubmitter, log *logger.Logger, opts ...Option) *Session {
	s := &Session{
		cfg:       cfg,
		loader:    NewLoader(src, log),
		submitter: submitter,
		log:       log.Component("booking_session"),
		now:       time.Now,
		hour:      cfg.OpenHour,
		index:     NewIndex(),
		hours:     quantity.New(cfg.Amount),
		people:    quantity.New(cfg.Amount),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.date = FormatDate(s.now())
	return s
}

// Window is the range of dates a customer may book.
func (s *Session) Window() DateRange {
	return Window(s.now(), s.cfg.BookingWindowDays)
}

// Refresh reloads availability for the booking window. On failure the
// previous index stays in place.
func (s *Session) Refresh(ctx context.Context) error {
	err := s.loader.Load(ctx, s.Window(), func(idx *Index) {
		s.mu.Lock()
		s.index = idx
		if s.table != 0 && s.index.IsOccupied(s.date, s.hour, s.table) {
			s.table = 0
		}
		s.mu.Unlock()
	})
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// SetDate moves the form to another day and clears the table choice.
func (s *Session) SetDate(date string) error {
	if _, err := ParseDate(date); err != nil {
		return apperrors.InvalidInput(err.Error())
	}
	if !s.Window().Contains(date) {
		return apperrors.InvalidInput(fmt.Sprintf("%s: %s", ErrDateOutOfRange, date))
	}

	s.mu.Lock()
	s.date = date
	s.table = 0
	s.mu.Unlock()

	s.notify()
	return nil
}

// SetHour moves the form to another half hour and clears the table choice.
func (s *Session) SetHour(hour string) error {
	h, err := HourToNumber(hour)
	if err != nil {
		return apperrors.InvalidInput(err.Error())
	}
	if h < s.cfg.OpenHour || h >= s.cfg.CloseHour {
		return apperrors.InvalidInput(fmt.Sprintf("%s: %s", ErrHourOutOfRange, hour))
	}

	s.mu.Lock()
	s.hour = h
	s.table = 0
	s.mu.Unlock()

	s.notify()
	return nil
}

// ChooseTable applies a click on a table. A booked table is refused and
// any previous choice is dropped. Clicking the chosen table unchooses it.
// Any other free table becomes the only choice.
func (s *Session) ChooseTable(id int) error {
	if !slices.Contains(s.cfg.Tables, id) {
		return apperrors.InvalidInput(fmt.Sprintf("%s: %d", ErrUnknownTable, id))
	}

	s.mu.Lock()
	var err error
	switch {
	case s.index.IsOccupied(s.date, s.hour, id):
		s.table = 0
		err = ErrTableBooked
	case s.table == id:
		s.table = 0
	default:
		s.table = id
	}
	s.mu.Unlock()

	s.notify()
	return err
}

func (s *Session) Hours() *quantity.Widget {
	return s.hours
}

func (s *Session) People() *quantity.Widget {
	return s.people
}

func (s *Session) SetPhone(phone string) {
	s.mu.Lock()
	s.phone = phone
	s.mu.Unlock()
}

func (s *Session) SetAddress(address string) {
	s.mu.Lock()
	s.address = address
	s.mu.Unlock()
}

// SetStarters replaces the selected starters.
func (s *Session) SetStarters(starters ...string) {
	s.mu.Lock()
	s.starters = slices.Clone(starters)
	s.mu.Unlock()
}

// Table returns the chosen table, or 0.
func (s *Session) Table() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

// IsOccupied looks a slot up in the current index.
func (s *Session) IsOccupied(date string, hour float64, table int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.IsOccupied(date, hour, table)
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	v := View{
		Date:   s.date,
		Hour:   NumberToHour(s.hour),
		Table:  s.table,
		Tables: make([]TableView, 0, len(s.cfg.Tables)),
	}
	for _, id := range s.cfg.Tables {
		v.Tables = append(v.Tables, TableView{
			ID:     id,
			Booked: s.index.IsOccupied(s.date, s.hour, id),
			Chosen: id == s.table,
		})
	}
	return v
}

// Reservation builds the payload for the current form.
func (s *Session) Reservation() (model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reservationLocked()
}

func (s *Session) reservationLocked() (model.Reservation, error) {
	if s.table == 0 {
		return model.Reservation{}, apperrors.BookingIncomplete("choose a table before booking")
	}
	starters := s.starters
	if starters == nil {
		starters = []string{}
	}
	return model.Reservation{
		Date:     s.date,
		Hour:     NumberToHour(s.hour),
		Table:    s.table,
		Duration: s.hours.Value(),
		People:   s.people.Value(),
		Starters: slices.Clone(starters),
		Phone:    s.phone,
		Address:  s.address,
	}, nil
}

// Submit sends the reservation. Without a chosen table it fails with
// BOOKING_INCOMPLETE and nothing is sent. Once the restaurant accepts, the
// slot is marked occupied locally without refetching and the now booked
// table is unchosen.
func (s *Session) Submit(ctx context.Context) (model.Reservation, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return model.Reservation{}, apperrors.SubmitInProgress("reservation")
	}
	reservation, err := s.reservationLocked()
	if err != nil {
		s.mu.Unlock()
		return model.Reservation{}, err
	}
	start := s.hour
	s.submitting = true
	s.mu.Unlock()

	err = s.submitter.SubmitReservation(ctx, reservation)

	s.mu.Lock()
	s.submitting = false
	if err != nil {
		s.mu.Unlock()
		s.log.Warn("reservation submission failed", "date", reservation.Date, "hour", reservation.Hour, "table", reservation.Table, "error", err)
		return model.Reservation{}, err
	}
	s.index.mark(reservation.Date, start, float64(reservation.Duration), reservation.Table)
	if s.index.IsOccupied(s.date, s.hour, s.table) {
		s.table = 0
	}
	s.mu.Unlock()

	s.log.Info("reservation submitted",
		"date", reservation.Date,
		"hour", reservation.Hour,
		"table", reservation.Table,
		"duration", reservation.Duration,
		"people", reservation.People,
	)
	s.notify()
	return reservation, nil
}

func (s *Session) notify() {
	s.Updated.Notify(s.View())
}
