package factors

import (
	"context"
	"net/http"

	"github.com/2beens/swimcoach/internal/auth"
	"github.com/2beens/swimcoach/internal/telemetry/tracing"
	"github.com/2beens/swimcoach/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=factors_test

type factorsService interface {
	List(ctx context.Context, coachID int) ([]Factor, error)
	Get(ctx context.Context, id, coachID int) (*Factor, error)
	Create(ctx context.Context, coachID int, req FactorRequest) (*Factor, error)
	Update(ctx context.Context, id, coachID int, req FactorRequest) (*Factor, error)
	Delete(ctx context.Context, id, coachID int) error
	ListByAthlete(ctx context.Context, athleteID, coachID int) ([]Factor, error)
	CreateForAthlete(ctx context.Context, athleteID, coachID int, req FactorRequest) (*Factor, error)
	ListByTraining(ctx context.Context, trainingID, coachID int) ([]Factor, error)
	CreateForTraining(ctx context.Context, trainingID, coachID int, req FactorRequest) (*Factor, error)
}

type DeleteFactorResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service factorsService
}

func NewHandler(service factorsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "factorsHandler.list")
	defer span.End()

	coachID, err := auth.RequireCoachID(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	factors, err := h.service.List(ctx, coachID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteList(w, factors)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "factorsHandler.get")
	defer span.End()

	coachID, id, err := coachAndPathID(r, "id")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	factor, err := h.service.Get(ctx, id, coachID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusOK, factor)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "factorsHandler.create")
	defer span.End()

	coachID, err := auth.RequireCoachID(ctx)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	var req FactorRequest
	if err := pkg.DecodeAndValidate(r, &req); err != nil {
		pkg.WriteError(w, err)
		return
	}

	factor, err := h.service.Create(ctx, coachID, req)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	log.Debugf("coach %d added external factor %d", coachID, factor.ID)
	pkg.WriteData(w, http.StatusCreated, factor)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "factorsHandler.update")
	defer span.End()

	coachID, id, err := coachAndPathID(r, "id")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	var req FactorRequest
	if err := pkg.DecodeAndValidate(r, &req); err != nil {
		pkg.WriteError(w, err)
		return
	}

	factor, err := h.service.Update(ctx, id, coachID, req)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusOK, factor)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "factorsHandler.delete")
	defer span.End()

	coachID, id, err := coachAndPathID(r, "id")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	if err := h.service.Delete(ctx, id, coachID); err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusOK, DeleteFactorResponse{DeletedID: id})
}

func (h *Handler) HandleListByAthlete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "factorsHandler.listByAthlete")
	defer span.End()

	coachID, athleteID, err := coachAndPathID(r, "athleteId")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	factors, err := h.service.ListByAthlete(ctx, athleteID, coachID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteList(w, factors)
}

func (h *Handler) HandleCreateForAthlete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "factorsHandler.createForAthlete")
	defer span.End()

	coachID, athleteID, err := coachAndPathID(r, "athleteId")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	var req FactorRequest
	if err := pkg.DecodeAndValidate(r, &req); err != nil {
		pkg.WriteError(w, err)
		return
	}

	factor, err := h.service.CreateForAthlete(ctx, athleteID, coachID, req)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusCreated, factor)
}

func (h *Handler) HandleListByTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "factorsHandler.listByTraining")
	defer span.End()

	coachID, trainingID, err := coachAndPathID(r, "trainingId")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}

	factors, err := h.service.ListByTraining(ctx, trainingID, coachID)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteList(w, factors)
}

func (h *Handler) HandleCreateForTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "factorsHandler.createForTraining")
	defer span.End()

	coachID, trainingID, err := coachAndPathID(r, "trainingId")
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	var req FactorRequest
	if err := pkg.DecodeAndValidate(r, &req); err != nil {
		pkg.WriteError(w, err)
		return
	}

	factor, err := h.service.CreateForTraining(ctx, trainingID, coachID, req)
	if err != nil {
		pkg.WriteError(w, err)
		return
	}
	pkg.WriteData(w, http.StatusCreated, factor)
}

func coachAndPathID(r *http.Request, key string) (coachID, id int, err error) {
	coachID, err = auth.RequireCoachID(r.Context())
	if err != nil {
		return 0, 0, err
	}
	id, err = pkg.PathInt(r, key)
	if err != nil {
		return 0, 0, err
	}
	return coachID, id, nil
}
