package dashboard

import (
	"context"
	"net/http"

	"github.com/2beens/swimcoach/internal/auth"
	"github.com/2beens/swimcoach/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type dashboardService interface {
	Stats(ctx context.Context, coachID int) (*Stats, error)
	Metrics(ctx context.Context, coachID int) (*Metrics, error)
}

type Handler struct {
	service dashboardService
}

func NewHandler(service dashboardService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	coachID, err := auth.RequireCoachID(r.Context())
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	stats, err := h.service.Stats(r.Context(), coachID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusOK, stats)
}

func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	coachID, err := auth.RequireCoachID(r.Context())
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	metrics, err := h.service.Metrics(r.Context(), coachID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusOK, metrics)
}
