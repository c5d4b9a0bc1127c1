package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"bistro/internal/reservations/service"
	apperrors "bistro/pkg/errors"
	httputil "bistro/pkg/http"
	"bistro/pkg/logger"
	"bistro/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ReservationHandler struct {
	service service.ReservationService
	log     *logger.Logger
}

func NewReservationHandler(service service.ReservationService, log *logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log,
	}
}

func (h *ReservationHandler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var reservation model.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		h.writeError(w, "CreateBooking", apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.service.CreateBooking(r.Context(), &reservation); err != nil {
		h.writeError(w, "CreateBooking", err)
		return
	}

	if err := httputil.WriteCreated(w, reservation); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateBooking", "operation", "WriteCreated", "error", err)
	}
}

// ListBookings answers GET /bookings?start=&end=.
func (h *ReservationHandler) ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	start, end, err := httputil.ExtractDateRange(r, true)
	if err != nil {
		h.writeError(w, "ListBookings", err)
		return
	}

	bookings, err := h.service.ListBookings(r.Context(), formatDate(start), formatDate(end))
	if err != nil {
		h.writeError(w, "ListBookings", err)
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "ListBookings", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReservationHandler) CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var event model.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		h.writeError(w, "CreateEvent", apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.service.CreateEvent(r.Context(), &event); err != nil {
		h.writeError(w, "CreateEvent", err)
		return
	}

	if err := httputil.WriteCreated(w, event); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateEvent", "operation", "WriteCreated", "error", err)
	}
}

// ListEvents answers GET /events?repeat=false&start=&end= with one-off events
// in the range and GET /events?repeat=daily&end= with daily events that
// started by end.
func (h *ReservationHandler) ListEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var (
		found []model.Event
		err   error
	)

	switch repeat := r.URL.Query().Get("repeat"); repeat {
	case "false":
		var start, end time.Time
		if start, end, err = httputil.ExtractDateRange(r, true); err == nil {
			found, err = h.service.ListOneOffEvents(r.Context(), formatDate(start), formatDate(end))
		}
	case model.RepeatDaily:
		var end time.Time
		if end, err = httputil.ExtractDate(r, "end", true); err == nil {
			found, err = h.service.ListRecurringEvents(r.Context(), formatDate(end))
		}
	default:
		err = apperrors.InvalidInput("repeat parameter must be false or daily, got: " + repeat)
	}

	if err != nil {
		h.writeError(w, "ListEvents", err)
		return
	}

	if err := httputil.WriteSuccess(w, found); err != nil {
		h.log.Error("failed to write success response", "handler", "ListEvents", "operation", "WriteSuccess", "error", err)
	}
}

// Availability answers GET /availability?start=&end= with bookings, one-off
// and daily events in a single response.
func (h *ReservationHandler) Availability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	start, end, err := httputil.ExtractDateRange(r, true)
	if err != nil {
		h.writeError(w, "Availability", err)
		return
	}

	availability, err := h.service.Availability(r.Context(), formatDate(start), formatDate(end))
	if err != nil {
		h.writeError(w, "Availability", err)
		return
	}

	if err := httputil.WriteSuccess(w, availability); err != nil {
		h.log.Error("failed to write success response", "handler", "Availability", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReservationHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/bookings", h.CreateBooking)
	router.GET("/bookings", h.ListBookings)
	router.POST("/events", h.CreateEvent)
	router.GET("/events", h.ListEvents)
	router.GET("/availability", h.Availability)
}

func formatDate(d time.Time) string {
	return d.Format(httputil.DateLayout)
}
