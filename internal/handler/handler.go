package handler

import (
	"github.com/booking-page/backend/internal/availability"
	"github.com/booking-page/backend/internal/config"
	"github.com/booking-page/backend/internal/domain"
	"github.com/booking-page/backend/internal/ratelimit"
	"github.com/booking-page/backend/internal/repository"
	"github.com/booking-page/backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// CalendarPublisher notifies the external calendar of confirmed bookings.
type CalendarPublisher interface {
	Publish(event *domain.CalendarEvent) error
}

type Handler struct {
	validate     *validator.Validate
	config       *config.Config
	repository   *repository.Repository
	availability *availability.Engine
	translator   ut.Translator
	calendar     CalendarPublisher
	limiter      *ratelimit.Limiter

	Mux *chi.Mux
}

// NewHandler wires the routes' dependencies. limiter may be nil to disable rate limiting.
func NewHandler(cfg *config.Config, repo *repository.Repository, calendar CalendarPublisher, limiter *ratelimit.Limiter) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}
	if err := registerUsernameValidation(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:     validate,
		config:       cfg,
		repository:   repo,
		availability: availability.NewEngine(repo),
		translator:   trans,
		calendar:     calendar,
		limiter:      limiter,

		Mux: chi.NewRouter(),
	}, nil
}

func registerUsernameValidation(validate *validator.Validate, trans ut.Translator) error {
	if err := validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return utils.IsValidUsername(fl.Field().String())
	}); err != nil {
		return err
	}

	return validate.RegisterTranslation("username", trans,
		func(ut ut.Translator) error {
			return ut.Add("username", "{0} must have at least 3 characters, only letters or hyphens", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("username", fe.Field())
			return t
		},
	)
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	h.Mux.Route("/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)

		// public booking page
		r.Route("/{username}", func(r chi.Router) {
			r.Use(h.rateLimit)
			r.Use(h.host)
			r.Get("/", h.GetUserProfile)
			r.Get("/availability", h.GetAvailability)
			r.Get("/blocked-dates", h.GetBlockedDates)
			r.Post("/schedule", h.CreateSchedule)
		})
	})

	// the routes below require a logged in user
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/profile", h.UpdateMyProfile)
			r.Patch("/calendar", h.UpdateMyCalendar)
			r.Route("/time-intervals", func(r chi.Router) {
				r.Get("/", h.GetMyTimeIntervals)
				r.Post("/", h.SetMyTimeIntervals)
			})
		})
	})
}
