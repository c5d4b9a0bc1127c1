package validator

import (
	"fmt"
	"slices"

	reservationserrors "bistro/internal/reservations/errors"
	"bistro/pkg/logger"
	"bistro/pkg/model"
	"bistro/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type ReservationValidator struct {
	validate *validator.Validate
	tables   []int
	logger   *logger.Logger
}

// NewReservationValidator accepts bookings and events for the given tables
// only.
func NewReservationValidator(tables []int, log *logger.Logger) *ReservationValidator {
	v := validation.New(log)
	log.Info("Reservation validator initialized successfully", "tables", tables)

	return &ReservationValidator{
		validate: v,
		tables:   tables,
		logger:   log,
	}
}

func (v *ReservationValidator) Validate(reservation *model.Reservation) error {
	if err := validation.Struct(v.validate, reservation); err != nil {
		return err
	}
	return v.validateTable(reservation.Table)
}

func (v *ReservationValidator) ValidateEvent(event *model.Event) error {
	if err := validation.Struct(v.validate, event); err != nil {
		return err
	}
	if event.Repeat != "" && !event.Repeat.IsDaily() {
		return validation.ValidationErrors{{
			Field:   "Repeat",
			Message: reservationserrors.ErrInvalidRepeat.Error(),
		}}
	}
	return v.validateTable(event.Table)
}

func (v *ReservationValidator) validateTable(table int) error {
	if !slices.Contains(v.tables, table) {
		return validation.ValidationErrors{{
			Field:   "Table",
			Message: fmt.Sprintf("%s: %d", reservationserrors.ErrUnknownTable, table),
		}}
	}
	return nil
}
