package athletes

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/swimcoach/internal/auth"
	"github.com/2beens/swimcoach/internal/telemetry/tracing"
	"github.com/2beens/swimcoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=athletes_test

type athletesRepo interface {
	List(ctx context.Context, coachID int) ([]Athlete, error)
	Get(ctx context.Context, id, coachID int) (*Athlete, error)
	Create(ctx context.Context, a Athlete) (*Athlete, error)
	Update(ctx context.Context, a Athlete) (*Athlete, error)
	Delete(ctx context.Context, id, coachID int) error
	Recent(ctx context.Context, coachID, limit int) ([]Athlete, error)
}

const defaultRecentLimit = 3

type DeleteAthleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo athletesRepo
	now  func() time.Time
}

func NewHandler(repo athletesRepo) *Handler {
	return &Handler{
		repo: repo,
		now:  time.Now,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "athletesHandler.list")
	defer span.End()

	coachID, err := auth.RequireCoachID(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	athletes, err := h.repo.List(ctx, coachID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteList(w, athletes)
}

func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "athletesHandler.recent")
	defer span.End()

	coachID, err := auth.RequireCoachID(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	limit, err := pkg.QueryInt(r, "limit", defaultRecentLimit)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	athletes, err := h.repo.Recent(ctx, coachID, limit)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteList(w, athletes)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "athletesHandler.get")
	defer span.End()

	coachID, err := auth.RequireCoachID(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	id, err := pkg.PathInt(r, "id")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	athlete, err := h.repo.Get(ctx, id, coachID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteData(w, http.StatusOK, athlete)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "athletesHandler.create")
	defer span.End()

	coachID, err := auth.RequireCoachID(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	var req AthleteRequest
	if err := pkg.DecodeAndValidate(r, &req); err != nil {
		pkg.WriteError(w, err)
		return
	}
	athlete, err := req.ToAthlete(coachID, h.now())
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	created, err := h.repo.Create(ctx, athlete)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	log.Debugf("coach %d created athlete %d", coachID, created.ID)
	pkg.WriteData(w, http.StatusCreated, created)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "athletesHandler.update")
	defer span.End()

	coachID, err := auth.RequireCoachID(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	id, err := pkg.PathInt(r, "id")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	var req AthleteRequest
	if err := pkg.DecodeAndValidate(r, &req); err != nil {
		pkg.WriteError(w, err)
		return
	}
	athlete, err := req.ToAthlete(coachID, h.now())
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	athlete.ID = id

	updated, err := h.repo.Update(ctx, athlete)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	pkg.WriteData(w, http.StatusOK, updated)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "athletesHandler.delete")
	defer span.End()

	coachID, err := auth.RequireCoachID(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	id, err := pkg.PathInt(r, "id")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	if err := h.repo.Delete(ctx, id, coachID); err != nil {
		pkg.WriteError(w, err)
		return
	}

	log.Debugf("coach %d deleted athlete %d", coachID, id)
	pkg.WriteData(w, http.StatusOK, DeleteAthleteResponse{DeletedID: id})
}
