package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/booking-page/backend/internal/domain"
	"github.com/booking-page/backend/internal/utils"
)

func (h *Handler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	h.successResponse(w, r, "user info fetched", myInfo)
}

func (h *Handler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Bio string `json:"bio" validate:"max=1000"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	myInfo.Bio = req.Bio

	h.saveMyInfo(w, r, myInfo, "profile updated")
}

// UpdateMyCalendar connects the calendar that receives booking invitations.
// An empty address disconnects it.
func (h *Handler) UpdateMyCalendar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CalendarEmail string `json:"calendarEmail" validate:"omitempty,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	if req.CalendarEmail == "" {
		myInfo.CalendarEmail = nil
	} else {
		myInfo.CalendarEmail = &req.CalendarEmail
	}

	h.saveMyInfo(w, r, myInfo, "calendar updated")
}

func (h *Handler) saveMyInfo(w http.ResponseWriter, r *http.Request, myInfo *domain.User, msg string) {
	if err := h.repository.UpdateUser(r.Context(), myInfo); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.conflict(w, r, "user was modified by another request, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, msg, myInfo)
}

func (h *Handler) GetMyTimeIntervals(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	intervals, err := h.repository.GetTimeIntervals(r.Context(), myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "time intervals fetched", intervals)
}

func (h *Handler) SetMyTimeIntervals(w http.ResponseWriter, r *http.Request) {
	type interval struct {
		WeekDay     *int `json:"weekDay" validate:"required,min=0,max=6"`
		StartMinute *int `json:"startTimeInMinutes" validate:"required,min=0,max=1440"`
		EndMinute   *int `json:"endTimeInMinutes" validate:"required,min=0,max=1440"`
	}
	var req struct {
		Intervals []interval `json:"intervals" validate:"required,min=1,max=7,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	intervals := make([]*domain.TimeInterval, 0, len(req.Intervals))
	for _, i := range req.Intervals {
		intervals = append(intervals, &domain.TimeInterval{
			UserID:      myInfo.ID,
			WeekDay:     *i.WeekDay,
			StartMinute: *i.StartMinute,
			EndMinute:   *i.EndMinute,
		})
	}

	if err := utils.ValidateTimeIntervals(intervals); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.ReplaceTimeIntervals(r.Context(), myInfo.ID, intervals); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "time intervals updated", intervals)
}
