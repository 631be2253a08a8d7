package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/swimcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// DetailQuery selects training detail rows of one athlete. Nil fields do not filter.
type DetailQuery struct {
	AthleteID int
	Distance  *int
	SwimStyle *string
	// From is compared against the training date.
	From *time.Time
}

func (q DetailQuery) args() []any {
	return []any{q.AthleteID, q.Distance, q.SwimStyle, q.From}
}

// DetailRow is a training detail joined with the date of its training.
type DetailRow struct {
	ID           int
	TrainingID   int
	TrainingDate time.Time
	Distance     int
	SwimStyle    string
	TimeSeconds  float64
	SeriesNumber *int
	Efficiency   *float64
	CreatedAt    time.Time
}

// SessionRow is the per-training projection used by the session based reports.
type SessionRow struct {
	TrainingID          int
	Date                time.Time
	DurationMinutes     *int
	WeightBefore        *float64
	HeartRateRest       *int
	HeartRateDuring     *int
	HeartRateAfter      *int
	PhysicalStateRating *int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Details returns matching rows ordered by training date, then creation order.
func (r *Repo) Details(ctx context.Context, q DetailQuery) (_ []DetailRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.details")
	span.SetAttributes(attribute.Int("athleteId", q.AthleteID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT d.id, d.training_id, t.date, d.distance, d.swim_style, d.time_seconds,
			d.series_number, d.efficiency, d.created_at
		FROM training_details d
			JOIN trainings t ON t.id = d.training_id
		WHERE t.athlete_id = $1
			AND ($2::int IS NULL OR d.distance = $2)
			AND ($3::text IS NULL OR d.swim_style = $3)
			AND ($4::timestamptz IS NULL OR t.date >= $4)
		ORDER BY t.date ASC, d.created_at ASC, d.id ASC`,
		q.args()...,
	)
	if err != nil {
		return nil, fmt.Errorf("query details: %w", err)
	}
	defer rows.Close()

	var details []DetailRow
	for rows.Next() {
		var d DetailRow
		if err := rows.Scan(
			&d.ID, &d.TrainingID, &d.TrainingDate, &d.Distance, &d.SwimStyle, &d.TimeSeconds,
			&d.SeriesNumber, &d.Efficiency, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}

// Sessions returns the athlete's trainings ordered by date; from may be nil.
func (r *Repo) Sessions(ctx context.Context, athleteID int, from *time.Time) (_ []SessionRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.sessions")
	span.SetAttributes(attribute.Int("athleteId", athleteID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, date, duration_minutes, weight_before, heart_rate_rest,
			heart_rate_during, heart_rate_after, physical_state_rating
		FROM trainings
		WHERE athlete_id = $1
			AND ($2::timestamptz IS NULL OR date >= $2)
		ORDER BY date ASC, id ASC`,
		athleteID, from,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionRow
	for rows.Next() {
		var s SessionRow
		if err := rows.Scan(
			&s.TrainingID, &s.Date, &s.DurationMinutes, &s.WeightBefore, &s.HeartRateRest,
			&s.HeartRateDuring, &s.HeartRateAfter, &s.PhysicalStateRating,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
