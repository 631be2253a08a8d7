package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/swimcoach/internal/telemetry/metrics"
	"github.com/2beens/swimcoach/internal/telemetry/tracing"
	"github.com/2beens/swimcoach/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type authService interface {
	Register(ctx context.Context, name, email, password string) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, coachID int) (*Coach, error)
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Handler struct {
	service authService
	metrics *metrics.Manager
}

func NewHandler(service authService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.register")
	defer span.End()

	var req RegisterRequest
	if err := pkg.DecodeAndValidate(r, &req); err != nil {
		pkg.WriteError(w, err)
		return
	}

	session, err := h.service.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	log.Printf("coach %d registered", session.User.ID)
	pkg.WriteData(w, http.StatusCreated, session)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	var req LoginRequest
	if err := pkg.DecodeAndValidate(r, &req); err != nil {
		pkg.WriteError(w, err)
		return
	}

	session, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			h.metrics.CounterLoginAttempts.WithLabelValues("failure").Inc()
		}
		pkg.WriteError(w, err)
		return
	}

	h.metrics.CounterLoginAttempts.WithLabelValues("success").Inc()
	log.Tracef("login success for coach %d", session.User.ID)
	pkg.WriteData(w, http.StatusOK, session)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	token := BearerToken(r)
	if token == "" {
		pkg.WriteError(w, ErrInvalidToken)
		return
	}

	if err := h.service.Logout(ctx, token); err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteData(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.me")
	defer span.End()

	coachID, ok := CoachIDFromContext(ctx)
	if !ok {
		pkg.WriteError(w, ErrInvalidToken)
		return
	}

	coach, err := h.service.Me(ctx, coachID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteData(w, http.StatusOK, coach)
}
