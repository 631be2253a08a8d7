package dashboard

import (
	"context"
	"fmt"

	"github.com/2beens/swimcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Stats(ctx context.Context, coachID int, w Window) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("coachId", coachID))

	var s Stats
	if err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM athletes WHERE coach_id = $1),
			(SELECT COUNT(*) FROM trainings WHERE coach_id = $1 AND date >= $2 AND date < $3),
			(SELECT COUNT(*) FROM trainings WHERE coach_id = $1 AND date >= $4 AND date < $5),
			(SELECT COUNT(*) FROM athletes WHERE coach_id = $1 AND created_at >= $6)`,
		coachID, w.DayStart, w.DayEnd, w.MonthStart, w.MonthEnd, w.NewSince,
	).Scan(
		&s.TotalAthletes,
		&s.TodayTrainings,
		&s.MonthlyTrainings,
		&s.NewAthletesLastWeek,
	); err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}

	return &s, nil
}

// Metrics sends the totals and both breakdowns in one batch.
// Incidents are external factors linked to one of the coach's trainings.
func (r *Repo) Metrics(ctx context.Context, coachID int) (_ *Metrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.metrics")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("coachId", coachID))

	batch := &pgx.Batch{}
	batch.Queue(`
		SELECT
			(SELECT COUNT(*) FROM athletes WHERE coach_id = $1),
			(SELECT COUNT(*) FROM trainings WHERE coach_id = $1),
			(SELECT COUNT(*) FROM external_factors ef
				JOIN trainings t ON t.id = ef.training_id
				WHERE t.coach_id = $1)`,
		coachID,
	)
	batch.Queue(`
		SELECT status, COUNT(*) FROM trainings
		WHERE coach_id = $1
		GROUP BY status`,
		coachID,
	)
	batch.Queue(`
		SELECT ef.factor_type, COUNT(*) FROM external_factors ef
		JOIN trainings t ON t.id = ef.training_id
		WHERE t.coach_id = $1
		GROUP BY ef.factor_type`,
		coachID,
	)

	results := r.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close batch: %w", closeErr)
		}
	}()

	m := Metrics{}
	if err := results.QueryRow().Scan(&m.TotalAthletes, &m.TotalTrainings, &m.TotalIncidents); err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}
	if m.TrainingsByStatus, err = collectCounts(results); err != nil {
		return nil, fmt.Errorf("query trainings by status: %w", err)
	}
	if m.IncidentsByType, err = collectCounts(results); err != nil {
		return nil, fmt.Errorf("query incidents by type: %w", err)
	}

	return &m, nil
}

func collectCounts(results pgx.BatchResults) (map[string]int, error) {
	rows, err := results.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			key   string
			count int
		)
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		counts[key] = count
	}
	return counts, rows.Err()
}
