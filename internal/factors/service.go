package factors

import (
	"context"

	"github.com/2beens/swimcoach/internal/telemetry/tracing"
	"github.com/2beens/swimcoach/pkg"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=factors_test

type factorsRepo interface {
	List(ctx context.Context, coachID int) ([]Factor, error)
	ListByAthlete(ctx context.Context, athleteID int) ([]Factor, error)
	ListByTraining(ctx context.Context, trainingID int) ([]Factor, error)
	Get(ctx context.Context, id, coachID int) (*Factor, error)
	Create(ctx context.Context, f Factor) (int, error)
	Update(ctx context.Context, f Factor) error
	Delete(ctx context.Context, id, coachID int) error
	AthleteOwned(ctx context.Context, athleteID, coachID int) (bool, error)
	TrainingAthlete(ctx context.Context, trainingID, coachID int) (int, error)
}

// Service enforces that every factor is reached through an athlete of the
// requesting coach, and that a referenced training belongs to that athlete.
type Service struct {
	repo factorsRepo
}

func NewService(repo factorsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context, coachID int) ([]Factor, error) {
	return s.repo.List(ctx, coachID)
}

func (s *Service) Get(ctx context.Context, id, coachID int) (*Factor, error) {
	return s.repo.Get(ctx, id, coachID)
}

func (s *Service) Create(ctx context.Context, coachID int, req FactorRequest) (_ *Factor, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.factors.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	f, err := req.ToFactor()
	if err != nil {
		return nil, err
	}
	if f.AthleteID == 0 {
		return nil, pkg.NewInvalidInputError("athleteId is required")
	}
	if err := s.assertAthleteOwned(ctx, f.AthleteID, coachID); err != nil {
		return nil, err
	}
	if f.TrainingID != nil {
		if err := s.assertTrainingOfAthlete(ctx, *f.TrainingID, f.AthleteID, coachID); err != nil {
			return nil, err
		}
	}

	id, err := s.repo.Create(ctx, f)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("id", id))

	return s.repo.Get(ctx, id, coachID)
}

// Update replaces the factor's fields. A zero athleteId or a missing
// trainingId keeps the current value.
func (s *Service) Update(ctx context.Context, id, coachID int, req FactorRequest) (_ *Factor, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.factors.update")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	current, err := s.repo.Get(ctx, id, coachID)
	if err != nil {
		return nil, err
	}

	f, err := req.ToFactor()
	if err != nil {
		return nil, err
	}
	f.ID = id
	if f.AthleteID == 0 {
		f.AthleteID = current.AthleteID
	}
	if f.TrainingID == nil {
		f.TrainingID = current.TrainingID
	}

	athleteChanged := f.AthleteID != current.AthleteID
	if athleteChanged {
		if err := s.assertAthleteOwned(ctx, f.AthleteID, coachID); err != nil {
			return nil, err
		}
	}
	trainingChanged := f.TrainingID != nil &&
		(current.TrainingID == nil || *current.TrainingID != *f.TrainingID)
	if f.TrainingID != nil && (athleteChanged || trainingChanged) {
		if err := s.assertTrainingOfAthlete(ctx, *f.TrainingID, f.AthleteID, coachID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, id, coachID)
}

func (s *Service) Delete(ctx context.Context, id, coachID int) error {
	return s.repo.Delete(ctx, id, coachID)
}

func (s *Service) ListByAthlete(ctx context.Context, athleteID, coachID int) ([]Factor, error) {
	if err := s.assertAthleteOwned(ctx, athleteID, coachID); err != nil {
		return nil, err
	}
	return s.repo.ListByAthlete(ctx, athleteID)
}

func (s *Service) CreateForAthlete(ctx context.Context, athleteID, coachID int, req FactorRequest) (*Factor, error) {
	req.AthleteID = athleteID
	return s.Create(ctx, coachID, req)
}

func (s *Service) ListByTraining(ctx context.Context, trainingID, coachID int) ([]Factor, error) {
	if _, err := s.repo.TrainingAthlete(ctx, trainingID, coachID); err != nil {
		return nil, err
	}
	return s.repo.ListByTraining(ctx, trainingID)
}

// CreateForTraining attaches a factor to a training; the athlete is taken from the training.
func (s *Service) CreateForTraining(ctx context.Context, trainingID, coachID int, req FactorRequest) (*Factor, error) {
	athleteID, err := s.repo.TrainingAthlete(ctx, trainingID, coachID)
	if err != nil {
		return nil, err
	}
	req.AthleteID = athleteID
	req.TrainingID = &trainingID
	return s.Create(ctx, coachID, req)
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

func (s *Service) assertTrainingOfAthlete(ctx context.Context, trainingID, athleteID, coachID int) error {
	trainingAthleteID, err := s.repo.TrainingAthlete(ctx, trainingID, coachID)
	if err != nil {
		return err
	}
	if trainingAthleteID != athleteID {
		return ErrTrainingMismatch
	}
	return nil
}
