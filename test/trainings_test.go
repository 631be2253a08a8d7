//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/swimcoach/internal/factors"
	"github.com/2beens/swimcoach/internal/trainings"
	"github.com/2beens/swimcoach/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestTrainings_RoundTripWithDetails() {
	t := s.T()
	coach := s.registerCoach(t)
	athleteID := s.createAthlete(t, coach.Token)

	details := []detailBody{
		{Distance: 100, SwimStyle: "freestyle", TimeSeconds: 61.4, SeriesNumber: pkg.Ptr(1)},
		{Distance: 100, SwimStyle: "freestyle", TimeSeconds: 62.1, SeriesNumber: pkg.Ptr(1)},
		{Distance: 200, SwimStyle: "backstroke", TimeSeconds: 150.8, SeriesNumber: pkg.Ptr(2)},
	}
	trainingID := s.createTraining(t, coach.Token, athleteID, "2026-02-10", 75, details...)

	status, env := s.apiCall(t, http.MethodGet, fmt.Sprintf("/api/trainings/%d", trainingID), coach.Token, nil)
	require.Equal(t, http.StatusOK, status, env.Error)
	training := decodeData[trainings.Training](t, env)

	assert.Equal(t, trainingID, training.ID)
	assert.Equal(t, athleteID, training.AthleteID)
	require.Len(t, training.Details, 3)
	seen := make(map[int]bool)
	for i, d := range training.Details {
		assert.Greater(t, d.ID, 0)
		assert.False(t, seen[d.ID], "detail ids are unique")
		seen[d.ID] = true
		assert.Equal(t, trainingID, d.TrainingID)
		assert.Equal(t, details[i].Distance, d.Distance)
		assert.Equal(t, details[i].SwimStyle, d.SwimStyle)
		assert.InDelta(t, details[i].TimeSeconds, d.TimeSeconds, 1e-9)
		assert.Equal(t, *details[i].SeriesNumber, *d.SeriesNumber)
	}
}

func (s *IntegrationTestSuite) TestTrainings_UpdateReplacesDetails() {
	t := s.T()
	coach := s.registerCoach(t)
	athleteID := s.createAthlete(t, coach.Token)
	trainingID := s.createTraining(t, coach.Token, athleteID, "2026-02-10", 60,
		detailBody{Distance: 50, SwimStyle: "butterfly", TimeSeconds: 31},
		detailBody{Distance: 50, SwimStyle: "butterfly", TimeSeconds: 32},
	)

	status, env := s.apiCall(t, http.MethodPut, fmt.Sprintf("/api/trainings/%d", trainingID), coach.Token, map[string]any{
		"athleteId":    athleteID,
		"date":         "2026-02-10",
		"trainingType": "technique",
		"details": []detailBody{
			{Distance: 400, SwimStyle: "medley", TimeSeconds: 330},
		},
	})
	require.Equal(t, http.StatusOK, status, env.Error)

	training := decodeData[trainings.Training](t, env)
	assert.Equal(t, "technique", training.TrainingType)
	require.Len(t, training.Details, 1)
	assert.Equal(t, 400, training.Details[0].Distance)
	assert.Equal(t, 1, s.countRows("training_details"))
}

func (s *IntegrationTestSuite) TestTrainings_CreateIsAtomic() {
	t := s.T()
	ctx := context.Background()
	coach := s.registerCoach(t)
	athleteID := s.createAthlete(t, coach.Token)

	repo := trainings.NewRepo(s.pool, factors.NewRepo(s.pool))
	_, err := repo.Create(ctx, trainings.Training{
		AthleteID:    athleteID,
		CoachID:      coach.User.ID,
		Status:       trainings.StatusCompleted,
		Date:         time.Now(),
		TrainingType: "mixed",
		Details: []trainings.Detail{
			{Distance: 100, SwimStyle: "freestyle", TimeSeconds: 60},
			// violates the distance check constraint
			{Distance: -100, SwimStyle: "freestyle", TimeSeconds: 60},
		},
	})
	require.Error(t, err)
	assert.True(t, pkg.IsCheckViolationError(err), err.Error())

	assert.Equal(t, 0, s.countRows("trainings"))
	assert.Equal(t, 0, s.countRows("training_details"))
	assert.Equal(t, 0, s.countRows("external_factors"))
}

func (s *IntegrationTestSuite) TestTrainings_CreateWithFactorsAndStatus() {
	t := s.T()
	coach := s.registerCoach(t)
	athleteID := s.createAthlete(t, coach.Token)

	status, env := s.apiCall(t, http.MethodPost, "/api/trainings", coach.Token, map[string]any{
		"athleteId":    athleteID,
		"date":         "2026-03-02",
		"trainingType": "resistance",
		"externalFactors": []map[string]any{
			{"factorType": "fatigue", "description": "late exam night", "startDate": "2026-03-01", "severity": 6},
		},
	})
	require.Equal(t, http.StatusCreated, status, env.Error)
	training := decodeData[trainings.Training](t, env)
	assert.Equal(t, trainings.StatusScheduled, training.Status)
	require.Len(t, training.ExternalFactors, 1)
	require.NotNil(t, training.ExternalFactors[0].TrainingID)
	assert.Equal(t, training.ID, *training.ExternalFactors[0].TrainingID)
	assert.Equal(t, athleteID, training.ExternalFactors[0].AthleteID)

	status, env = s.apiCall(t, http.MethodPatch, fmt.Sprintf("/api/trainings/%d/status", training.ID), coach.Token,
		map[string]string{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, status, env.Error)

	status, env = s.apiCall(t, http.MethodPatch, fmt.Sprintf("/api/trainings/%d/status", training.ID), coach.Token,
		map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, status, env.Error)

	status, _ = s.apiCall(t, http.MethodDelete, fmt.Sprintf("/api/trainings/%d", training.ID), coach.Token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, s.countRows("external_factors"))
}

func (s *IntegrationTestSuite) TestOwnership_AcrossCoaches() {
	t := s.T()
	owner := s.registerCoach(t)
	other := s.registerCoach(t)

	athleteID := s.createAthlete(t, owner.Token)
	trainingID := s.createTraining(t, owner.Token, athleteID, "2026-02-10", 60,
		detailBody{Distance: 100, SwimStyle: "freestyle", TimeSeconds: 60, SeriesNumber: pkg.Ptr(1)},
	)

	paths := []string{
		fmt.Sprintf("/api/athletes/%d", athleteID),
		fmt.Sprintf("/api/trainings/%d", trainingID),
		fmt.Sprintf("/api/athletes/%d/external-factors", athleteID),
		fmt.Sprintf("/api/trainings/%d/external-factors", trainingID),
	}
	for _, report := range []string{
		"time-evolution", "performance-alerts", "time-series-metrics", "consistency",
		"total-load", "efficiency", "general-consistency", "variability?distance=100",
	} {
		paths = append(paths, fmt.Sprintf("/api/analytics/athlete/%d/%s", athleteID, report))
	}

	for _, path := range paths {
		status, env := s.apiCall(t, http.MethodGet, path, other.Token, nil)
		assert.Equal(t, http.StatusNotFound, status, path)
		assert.False(t, env.Success, path)
		assert.Empty(t, env.Data, path)
	}

	// writes through another coach's athlete are rejected too
	status, _ := s.apiCall(t, http.MethodPost, "/api/trainings", other.Token, map[string]any{
		"athleteId":    athleteID,
		"date":         "2026-02-11",
		"trainingType": "speed",
	})
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.apiCall(t, http.MethodDelete, fmt.Sprintf("/api/athletes/%d", athleteID), other.Token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	assert.Equal(t, 1, s.countRows("trainings"))
}
