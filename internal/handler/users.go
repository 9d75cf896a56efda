package handler

import (
	"errors"
	"net/http"

	"github.com/booking-page/backend/internal/domain"
	"github.com/booking-page/backend/internal/utils"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required,username"`
		Name     string `json:"name" validate:"required,min=3"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8,max=72"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	req.Username = utils.NormalizeUsername(req.Username)
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user := &domain.User{
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	if err := h.repository.CreateUser(r.Context(), user); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "users_username_key":
				h.conflict(w, r, "username already taken")
			case pgErr.ConstraintName == "users_email_key":
				h.conflict(w, r, "email already registered")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.createdResponse(w, r, "user created", user)
}

func (h *Handler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	host := r.Context().Value(HostCtx).(*domain.User)
	h.successResponse(w, r, "user profile fetched", host.PublicProfile())
}
