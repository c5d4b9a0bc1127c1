package service

import (
	"context"
	"errors"

	reservationserrors "bistro/internal/reservations/errors"
	"bistro/internal/reservations/repository"
	"bistro/internal/reservations/validator"
	"bistro/pkg/config"
	apperrors "bistro/pkg/errors"
	"bistro/pkg/events"
	"bistro/pkg/model"
	"bistro/pkg/sanitizer"
	"bistro/pkg/validation"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ReservationService interface {
	CreateBooking(ctx context.Context, reservation *model.Reservation) error
	ListBookings(ctx context.Context, start, end string) ([]model.BookingEntry, error)
	CreateEvent(ctx context.Context, event *model.Event) error
	ListOneOffEvents(ctx context.Context, start, end string) ([]model.Event, error)
	ListRecurringEvents(ctx context.Context, end string) ([]model.Event, error)
	Availability(ctx context.Context, start, end string) (*Availability, error)
}

// Availability is everything that occupies a table within a date range.
type Availability struct {
	Bookings  []model.BookingEntry `json:"bookings"`
	OneOff    []model.Event        `json:"eventsCurrent"`
	Recurring []model.Event        `json:"eventsRepeat"`
}

type reservationService struct {
	bookings  repository.BookingRepository
	events    repository.EventRepository
	validator *validator.ReservationValidator
	emitter   *events.Emitter
	cfg       *config.Config
}

func NewReservationService(
	bookings repository.BookingRepository,
	eventRepo repository.EventRepository,
	validator *validator.ReservationValidator,
	emitter *events.Emitter,
	cfg *config.Config,
) ReservationService {
	return &reservationService{
		bookings:  bookings,
		events:    eventRepo,
		validator: validator,
		emitter:   emitter,
		cfg:       cfg,
	}
}

// CreateBooking stores the reservation. Overlaps with existing bookings are
// not checked here; clients see occupancy before choosing a table.
func (s *reservationService) CreateBooking(ctx context.Context, reservation *model.Reservation) error {
	s.sanitize(reservation)
	if err := s.validator.Validate(reservation); err != nil {
		return validation.ToAppError(err, "Invalid reservation")
	}

	reservation.ID = uuid.NewString()
	if err := s.bookings.Create(ctx, reservation); err != nil {
		if errors.Is(err, reservationserrors.ErrDuplicateBooking) {
			return apperrors.Conflict("Booking already exists")
		}
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", reservation.ID,
		"date", reservation.Date,
		"hour", reservation.Hour,
		"table", reservation.Table,
		"duration", reservation.Duration,
	)
	s.emitter.Emit(ctx, events.BookingCreated, reservation.Date, reservation)
	return nil
}

func (s *reservationService) ListBookings(ctx context.Context, start, end string) ([]model.BookingEntry, error) {
	bookings, err := s.bookings.FindByDateRange(ctx, start, end)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "start", start, "end", end, "error", err)
		return nil, apperrors.Internal("Failed to list bookings", err)
	}
	return bookings, nil
}

func (s *reservationService) CreateEvent(ctx context.Context, event *model.Event) error {
	if err := s.validator.ValidateEvent(event); err != nil {
		return validation.ToAppError(err, "Invalid event")
	}

	if err := s.events.Create(ctx, event); err != nil {
		s.cfg.Log.Error("Failed to create event", "error", err)
		return apperrors.Internal("Failed to create event", err)
	}

	s.cfg.Log.Info("Event created successfully",
		"id", event.ID,
		"date", event.Date,
		"hour", event.Hour,
		"table", event.Table,
		"repeat", string(event.Repeat),
	)
	return nil
}

func (s *reservationService) ListOneOffEvents(ctx context.Context, start, end string) ([]model.Event, error) {
	found, err := s.events.FindOneOff(ctx, start, end)
	if err != nil {
		s.cfg.Log.Error("Failed to list events", "repeat", false, "error", err)
		return nil, apperrors.Internal("Failed to list events", err)
	}
	return found, nil
}

func (s *reservationService) ListRecurringEvents(ctx context.Context, end string) ([]model.Event, error) {
	found, err := s.events.FindRecurring(ctx, end)
	if err != nil {
		s.cfg.Log.Error("Failed to list events", "repeat", model.RepeatDaily, "error", err)
		return nil, apperrors.Internal("Failed to list events", err)
	}
	return found, nil
}

// Availability runs the three reads concurrently and fails as a whole if
// any of them fails.
func (s *reservationService) Availability(ctx context.Context, start, end string) (*Availability, error) {
	var result Availability
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		result.Bookings, err = s.ListBookings(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		result.OneOff, err = s.ListOneOffEvents(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		result.Recurring, err = s.ListRecurringEvents(gctx, end)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *reservationService) sanitize(r *model.Reservation) {
	r.Phone = sanitizer.NormalizePhone(r.Phone, s.cfg.PhoneRegion)
	r.Address = sanitizer.NormalizeAddress(r.Address)
	r.Starters = sanitizer.SanitizeStarters(r.Starters)
}
