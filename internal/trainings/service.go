package trainings

import (
	"context"
	"time"

	"github.com/2beens/swimcoach/internal/telemetry/metrics"
	"github.com/2beens/swimcoach/internal/telemetry/tracing"
	"github.com/2beens/swimcoach/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=trainings_test

type trainingsRepo interface {
	List(ctx context.Context, params ListParams) ([]Training, int, error)
	Get(ctx context.Context, id, coachID int) (*Training, error)
	Create(ctx context.Context, t Training) (int, error)
	Update(ctx context.Context, t Training) error
	UpdateStatus(ctx context.Context, id, coachID int, status string) error
	Delete(ctx context.Context, id, coachID int) error
	Upcoming(ctx context.Context, coachID int, from time.Time, limit int) ([]Upcoming, error)
	AthleteOwned(ctx context.Context, athleteID, coachID int) (bool, error)
}

type ListResult struct {
	Trainings []Training
	Total     int
	Page      int
	Limit     int
}

// Pages is the number of pages of Limit items needed to hold Total.
func (r ListResult) Pages() int {
	if r.Limit <= 0 {
		return 0
	}
	return (r.Total + r.Limit - 1) / r.Limit
}

type Service struct {
	repo    trainingsRepo
	metrics *metrics.Manager
	now     func() time.Time
}

func NewService(repo trainingsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:    repo,
		metrics: metricsManager,
		now:     time.Now,
	}
}

func (s *Service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	params = params.Normalize()
	trainings, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Trainings: trainings,
		Total:     total,
		Page:      params.Page,
		Limit:     params.Limit,
	}, nil
}

func (s *Service) Get(ctx context.Context, id, coachID int) (*Training, error) {
	return s.repo.Get(ctx, id, coachID)
}

// Create stores a training for an athlete of the coach together with its
// details and factors, and returns it as stored.
func (s *Service) Create(ctx context.Context, coachID int, req TrainingRequest) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t, err := req.ToTraining(coachID)
	if err != nil {
		return nil, err
	}
	if t.AthleteID == 0 {
		return nil, pkg.NewInvalidInputError("athleteId is required")
	}
	if t.Status == "" {
		t.Status = StatusScheduled
	}
	if err := s.assertAthleteOwned(ctx, t.AthleteID, coachID); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("id", id))
	s.metrics.CounterTrainingsCreated.Inc()
	log.Debugf("coach %d created training %d with %d details", coachID, id, len(t.Details))

	return s.repo.Get(ctx, id, coachID)
}

// Update rewrites an owned training. A zero athleteId or empty status keeps the stored value.
func (s *Service) Update(ctx context.Context, id, coachID int, req TrainingRequest) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.update")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	current, err := s.repo.Get(ctx, id, coachID)
	if err != nil {
		return nil, err
	}

	t, err := req.ToTraining(coachID)
	if err != nil {
		return nil, err
	}
	t.ID = id
	if t.AthleteID == 0 {
		t.AthleteID = current.AthleteID
	}
	if t.Status == "" {
		t.Status = current.Status
	}
	if t.AthleteID != current.AthleteID {
		if err := s.assertAthleteOwned(ctx, t.AthleteID, coachID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, id, coachID)
}

func (s *Service) UpdateStatus(ctx context.Context, id, coachID int, status string) (*Training, error) {
	if !IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, coachID, status); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id, coachID)
}

func (s *Service) Delete(ctx context.Context, id, coachID int) error {
	return s.repo.Delete(ctx, id, coachID)
}

func (s *Service) Upcoming(ctx context.Context, coachID, limit int) ([]Upcoming, error) {
	return s.repo.Upcoming(ctx, coachID, s.now(), limit)
}

func (s *Service) assertAthleteOwned(ctx context.Context, athleteID, coachID int) error {
	owned, err := s.repo.AthleteOwned(ctx, athleteID, coachID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrAthleteNotFound
	}
	return nil
}
