package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formcheck/pkg/binder"
	"github.com/dmitrymomot/formcheck/pkg/httpserver"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/requestid"
	"github.com/dmitrymomot/formcheck/pkg/signup"
)

const defaultMaxBodyBytes int64 = 1 << 20

var (
	bindJSON = binder.JSON()
	bindForm = binder.Form()
)

// Option configures the Handler.
type Option func(*Handler)

// WithLogger sets the request logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithSignupOptions overrides the signup form rule parameters.
func WithSignupOptions(opts signup.Options) Option {
	return func(h *Handler) { h.signup = opts }
}

// WithMaxBodyBytes limits request body size. Non-positive values are ignored.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

// Handler serves the validation API.
type Handler struct {
	log      *slog.Logger
	validate *playground.Validate
	signup   signup.Options
	maxBody  int64
}

func New(opts ...Option) *Handler {
	h := &Handler{
		log:      logger.Discard(),
		validate: newRequestValidator(),
		maxBody:  defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router builds the chi router with all routes and middleware mounted.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(h.maxBody))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, ErrMethodNotAllowed)
	})

	r.Get("/health", httpserver.HealthCheckHandler(h.log))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/rules", h.listRules)
		r.Post("/rules/{rule}", h.checkRule)
		r.Post("/forms/signup", h.checkSignup)
	})

	return r
}

func (h *Handler) listRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"rules": Rules()})
}

func (h *Handler) checkRule(w http.ResponseWriter, r *http.Request) {
	rule := chi.URLParam(r, "rule")
	if _, ok := ruleSet[rule]; !ok {
		writeError(w, ErrUnknownRule.WithMessage(fmt.Sprintf("unknown rule %q", rule)))
		return
	}

	var req RuleRequest
	if err := bindJSON(r, &req); err != nil {
		writeError(w, bindError(err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, ErrBadRequest.WithMessage(describeValidation(err)))
		return
	}

	res, _ := Check(rule, req)
	h.log.DebugContext(r.Context(), "rule checked", logger.Rule(rule), logger.Valid(res.IsValid()))
	writeJSON(w, http.StatusOK, RuleResponse{Rule: rule, Result: res})
}

func (h *Handler) checkSignup(w http.ResponseWriter, r *http.Request) {
	form, err := decodeSignupForm(r)
	if err != nil {
		writeError(w, err)
		return
	}

	errs := form.ValidateWith(h.signup)
	h.log.InfoContext(r.Context(), "signup form checked",
		logger.Valid(errs.IsEmpty()),
		logger.Fields(errs.Fields()),
	)
	writeJSON(w, http.StatusOK, FormResponse{Valid: errs.IsEmpty(), Errors: errs.First()})
}

// decodeSignupForm binds JSON or urlencoded bodies. A missing Content-Type is
// read as JSON.
func decodeSignupForm(r *http.Request) (signup.Form, error) {
	var form signup.Form

	mt, err := binder.MediaType(r)
	if err != nil {
		return form, bindError(err)
	}

	bind := bindJSON
	if mt == binder.MIMEApplicationForm {
		bind = bindForm
	}
	if err := bind(r, &form); err != nil {
		return form, bindError(err)
	}
	return form, nil
}

// bindError maps binder failures onto HTTP errors.
func bindError(err error) error {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return ErrRequestEntityTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return ErrUnsupportedMediaType.WithMessage(err.Error())
	default:
		return ErrBadRequest.WithMessage(err.Error())
	}
}

// newRequestValidator reports struct validation failures by JSON field name.
func newRequestValidator() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func describeValidation(err error) string {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
	}
	return strings.Join(parts, "; ")
}
