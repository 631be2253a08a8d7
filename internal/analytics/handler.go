package analytics

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/swimcoach/internal/auth"
	"github.com/2beens/swimcoach/internal/trainings"
	"github.com/2beens/swimcoach/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=analytics_test

type analyticsService interface {
	TimeEvolution(ctx context.Context, coachID, athleteID int, params TimeEvolutionParams) ([]TimeEvolutionPoint, error)
	PerformanceAlerts(ctx context.Context, coachID, athleteID int) ([]Alert, error)
	TimeSeriesMetrics(ctx context.Context, coachID, athleteID int) ([]MetricPoint, error)
	EfficiencyBySeries(ctx context.Context, coachID, athleteID int) ([]SeriesEfficiency, error)
	IntraSessionConsistency(ctx context.Context, coachID, athleteID int) ([]SeriesConsistency, error)
	LoadAndVolume(ctx context.Context, coachID, athleteID int) (*LoadAndVolume, error)
	GeneralConsistency(ctx context.Context, coachID, athleteID, weeks int) (*GeneralConsistency, error)
	VariabilityByDistance(ctx context.Context, coachID, athleteID, distance int) (*Variability, error)
}

type Handler struct {
	service analyticsService
}

func NewHandler(service analyticsService) *Handler {
	return &Handler{
		service: service,
	}
}

// coachAndAthlete resolves the authenticated coach and the {athleteId} route variable.
func coachAndAthlete(r *http.Request) (coachID, athleteID int, err error) {
	if coachID, err = auth.RequireCoachID(r.Context()); err != nil {
		return 0, 0, err
	}
	if athleteID, err = pkg.PathInt(r, "athleteId"); err != nil {
		return 0, 0, err
	}
	return coachID, athleteID, nil
}

func (h *Handler) HandleTimeEvolution(w http.ResponseWriter, r *http.Request) {
	coachID, athleteID, err := coachAndAthlete(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	var params TimeEvolutionParams
	if params.Distance, err = pkg.QueryIntPtr(r, "distance"); err != nil {
		pkg.WriteError(w, err)
		return
	}
	if style := r.URL.Query().Get("swimStyle"); style != "" {
		if !trainings.IsValidSwimStyle(style) {
			pkg.WriteError(w, pkg.NewInvalidInputError("swimStyle must be one of: "+strings.Join(trainings.SwimStyles, ", ")))
			return
		}
		params.SwimStyle = &style
	}
	if params.Months, err = pkg.QueryInt(r, "months", DefaultMonths); err != nil {
		pkg.WriteError(w, err)
		return
	}

	points, err := h.service.TimeEvolution(r.Context(), coachID, athleteID, params)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteList(w, points)
}

func (h *Handler) HandlePerformanceAlerts(w http.ResponseWriter, r *http.Request) {
	coachID, athleteID, err := coachAndAthlete(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	alerts, err := h.service.PerformanceAlerts(r.Context(), coachID, athleteID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteList(w, alerts)
}

func (h *Handler) HandleTimeSeriesMetrics(w http.ResponseWriter, r *http.Request) {
	coachID, athleteID, err := coachAndAthlete(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	points, err := h.service.TimeSeriesMetrics(r.Context(), coachID, athleteID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteList(w, points)
}

func (h *Handler) HandleEfficiency(w http.ResponseWriter, r *http.Request) {
	coachID, athleteID, err := coachAndAthlete(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	result, err := h.service.EfficiencyBySeries(r.Context(), coachID, athleteID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteList(w, result)
}

func (h *Handler) HandleConsistency(w http.ResponseWriter, r *http.Request) {
	coachID, athleteID, err := coachAndAthlete(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	result, err := h.service.IntraSessionConsistency(r.Context(), coachID, athleteID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteList(w, result)
}

func (h *Handler) HandleTotalLoad(w http.ResponseWriter, r *http.Request) {
	coachID, athleteID, err := coachAndAthlete(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	result, err := h.service.LoadAndVolume(r.Context(), coachID, athleteID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusOK, result)
}

func (h *Handler) HandleGeneralConsistency(w http.ResponseWriter, r *http.Request) {
	coachID, athleteID, err := coachAndAthlete(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	weeks, err := pkg.QueryInt(r, "weeks", DefaultWeeks)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	result, err := h.service.GeneralConsistency(r.Context(), coachID, athleteID, weeks)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusOK, result)
}

func (h *Handler) HandleVariability(w http.ResponseWriter, r *http.Request) {
	coachID, athleteID, err := coachAndAthlete(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	distance, err := pkg.QueryIntPtr(r, "distance")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	if distance == nil {
		pkg.WriteError(w, pkg.NewInvalidInputError("distance is required"))
		return
	}

	result, err := h.service.VariabilityByDistance(r.Context(), coachID, athleteID, *distance)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusOK, result)
}
