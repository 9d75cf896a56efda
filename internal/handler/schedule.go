package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/booking-page/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string    `json:"name" validate:"required,min=3"`
		Email        string    `json:"email" validate:"required,email"`
		Observations *string   `json:"observations" validate:"omitempty,max=1000"`
		Date         time.Time `json:"date" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	host := r.Context().Value(HostCtx).(*domain.User)

	// slots are one hour long and stored in UTC
	date := req.Date.Truncate(time.Hour).UTC()
	if !date.After(time.Now()) {
		h.errorResponse(w, r, http.StatusBadRequest, "date is in the past")
		return
	}

	_, err := h.repository.GetBookingAt(r.Context(), host.ID, date)
	switch {
	case err == nil:
		h.conflict(w, r, "time slot is already booked")
		return
	case !errors.Is(err, sql.ErrNoRows):
		h.internalServerError(w, r, err)
		return
	}

	booking := &domain.Booking{
		UserID:       host.ID,
		Date:         date,
		Name:         req.Name,
		Email:        req.Email,
		Observations: req.Observations,
	}

	if err := h.repository.CreateBooking(r.Context(), booking); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "bookings_user_id_date_key":
			h.conflict(w, r, "time slot is already booked")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.createdResponse(w, r, "booking created", booking)

	h.notifyCalendar(host, booking)
}

// notifyCalendar is fire-and-forget, the booking stands even if the event is lost.
func (h *Handler) notifyCalendar(host *domain.User, booking *domain.Booking) {
	if h.calendar == nil {
		return
	}

	event := &domain.CalendarEvent{
		BookingID:     booking.ID,
		HostName:      host.Name,
		HostEmail:     host.Email,
		CalendarEmail: host.CalendarAddress(),
		AttendeeName:  booking.Name,
		AttendeeEmail: booking.Email,
		Start:         booking.Date,
		End:           booking.Date.Add(time.Hour),
	}
	if booking.Observations != nil {
		event.Observations = *booking.Observations
	}

	if err := h.calendar.Publish(event); err != nil {
		slog.Error("failed to publish calendar event", "booking", booking.ID, "error", err)
	}
}
