package trainings

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/swimcoach/internal/auth"
	"github.com/2beens/swimcoach/internal/telemetry/tracing"
	"github.com/2beens/swimcoach/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trainings_test

type trainingsService interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Get(ctx context.Context, id, coachID int) (*Training, error)
	Create(ctx context.Context, coachID int, req TrainingRequest) (*Training, error)
	Update(ctx context.Context, id, coachID int, req TrainingRequest) (*Training, error)
	UpdateStatus(ctx context.Context, id, coachID int, status string) (*Training, error)
	Delete(ctx context.Context, id, coachID int) error
	Upcoming(ctx context.Context, coachID, limit int) ([]Upcoming, error)
}

const defaultUpcomingLimit = 5

type DeleteTrainingResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service trainingsService
}

func NewHandler(service trainingsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trainingsHandler.list")
	defer span.End()

	coachID, err := auth.RequireCoachID(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	params, err := listParamsFromRequest(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	params.CoachID = coachID

	result, err := h.service.List(ctx, params)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	data := result.Trainings
	if data == nil {
		data = []Training{}
	}
	pkg.WriteJSON(w, http.StatusOK, pkg.Page{
		Success: true,
		Count:   len(data),
		Total:   result.Total,
		Page:    result.Page,
		Pages:   result.Pages(),
		Data:    data,
	})
}

func listParamsFromRequest(r *http.Request) (ListParams, error) {
	var (
		params ListParams
		err    error
	)
	q := r.URL.Query()

	if params.AthleteID, err = pkg.QueryIntPtr(r, "athleteId"); err != nil {
		return params, err
	}
	params.TrainingType = q.Get("trainingType")
	if params.TrainingType != "" && !IsValidTrainingType(params.TrainingType) {
		return params, pkg.NewInvalidInputError("trainingType must be one of: " + strings.Join(TrainingTypes, ", "))
	}
	if params.StartDate, err = pkg.QueryTimePtr(r, "startDate"); err != nil {
		return params, err
	}
	if params.EndDate, err = pkg.QueryTimePtr(r, "endDate"); err != nil {
		return params, err
	}
	if params.Page, err = pkg.QueryInt(r, "page", 1); err != nil {
		return params, err
	}
	if params.Limit, err = pkg.QueryInt(r, "limit", defaultPageLimit); err != nil {
		return params, err
	}
	params.Sort = q.Get("sort")
	params.Order = strings.ToLower(q.Get("order"))

	return params, nil
}

func (h *Handler) HandleUpcoming(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trainingsHandler.upcoming")
	defer span.End()

	coachID, err := auth.RequireCoachID(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	limit, err := pkg.QueryInt(r, "limit", defaultUpcomingLimit)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	upcoming, err := h.service.Upcoming(ctx, coachID, min(limit, maxPageLimit))
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteList(w, upcoming)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trainingsHandler.get")
	defer span.End()

	coachID, id, err := coachAndTrainingID(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	training, err := h.service.Get(ctx, id, coachID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusOK, training)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trainingsHandler.create")
	defer span.End()

	coachID, err := auth.RequireCoachID(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	var req TrainingRequest
	if err := pkg.DecodeAndValidate(r, &req); err != nil {
		pkg.WriteError(w, err)
		return
	}

	training, err := h.service.Create(ctx, coachID, req)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusCreated, training)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trainingsHandler.update")
	defer span.End()

	coachID, id, err := coachAndTrainingID(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	var req TrainingRequest
	if err := pkg.DecodeAndValidate(r, &req); err != nil {
		pkg.WriteError(w, err)
		return
	}

	training, err := h.service.Update(ctx, id, coachID, req)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusOK, training)
}

func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trainingsHandler.updateStatus")
	defer span.End()

	coachID, id, err := coachAndTrainingID(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	var req StatusRequest
	if err := pkg.DecodeAndValidate(r, &req); err != nil {
		pkg.WriteError(w, err)
		return
	}

	training, err := h.service.UpdateStatus(ctx, id, coachID, req.Status)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusOK, training)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "trainingsHandler.delete")
	defer span.End()

	coachID, id, err := coachAndTrainingID(r)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	if err := h.service.Delete(ctx, id, coachID); err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusOK, DeleteTrainingResponse{DeletedID: id})
}

func coachAndTrainingID(r *http.Request) (int, int, error) {
	coachID, err := auth.RequireCoachID(r.Context())
	if err != nil {
		return 0, 0, err
	}
	id, err := pkg.PathInt(r, "id")
	if err != nil {
		return 0, 0, err
	}
	return coachID, id, nil
}
