package dashboard

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard_test

type dashboardRepo interface {
	Stats(ctx context.Context, coachID int, w Window) (*Stats, error)
	Metrics(ctx context.Context, coachID int) (*Metrics, error)
}

type Service struct {
	repo dashboardRepo
	now  func() time.Time
}

func NewService(repo dashboardRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Stats counts today's and this month's trainings in server local time.
func (s *Service) Stats(ctx context.Context, coachID int) (*Stats, error) {
	return s.repo.Stats(ctx, coachID, WindowAt(s.now()))
}

func (s *Service) Metrics(ctx context.Context, coachID int) (*Metrics, error) {
	return s.repo.Metrics(ctx, coachID)
}
