package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/booking-page/backend/internal/availability"
	"github.com/booking-page/backend/internal/domain"
)

// offsets reported by browsers range from UTC+14 to UTC-12
const (
	minTimezoneOffset = -14 * 60
	maxTimezoneOffset = 12 * 60
)

func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	host := r.Context().Value(HostCtx).(*domain.User)

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "date is required")
		return
	}

	date, err := time.ParseInLocation(time.DateOnly, dateParam, time.Local)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		return
	}

	var offsetMinutes *int
	if offsetParam := r.URL.Query().Get("timezoneOffset"); offsetParam != "" {
		offset, err := strconv.Atoi(offsetParam)
		if err != nil || offset < minTimezoneOffset || offset > maxTimezoneOffset {
			h.errorResponse(w, r, http.StatusBadRequest, "invalid timezone offset")
			return
		}
		offsetMinutes = &offset
	}

	day, err := h.availability.DailyAvailability(r.Context(), host.ID, date, offsetMinutes, time.Now())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "availability fetched", day)
}

func (h *Handler) GetBlockedDates(w http.ResponseWriter, r *http.Request) {
	host := r.Context().Value(HostCtx).(*domain.User)

	yearParam := r.URL.Query().Get("year")
	monthParam := r.URL.Query().Get("month")
	if yearParam == "" || monthParam == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "year and month are required")
		return
	}

	year, err := strconv.Atoi(yearParam)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "year must be a number")
		return
	}
	month, err := strconv.Atoi(monthParam)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "month must be a number")
		return
	}

	blackout, err := h.availability.MonthlyBlackout(r.Context(), host.ID, year, month)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidPeriod):
			h.errorResponse(w, r, http.StatusBadRequest, "invalid year or month")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "blocked dates fetched", blackout)
}
