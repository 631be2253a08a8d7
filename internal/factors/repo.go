package factors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/swimcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const selectFactors = `
	SELECT f.id, f.athlete_id, f.training_id, f.factor_type, f.description, f.severity,
		f.start_date, f.end_date, f.performance_impact, f.notes, f.created_at, f.updated_at,
		a.first_name, a.last_name, a.category,
		t.id, t.date, t.title, t.training_type
	FROM external_factors f
		JOIN athletes a ON a.id = f.athlete_id
		LEFT JOIN trainings t ON t.id = f.training_id`

const insertFactorSQL = `
	INSERT INTO external_factors
		(athlete_id, training_id, factor_type, description, severity, start_date, end_date, performance_impact, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id`

// QueueInsert adds an insert of f to a batch. Used by training writes
// so factors land in the same transaction as their training.
func QueueInsert(batch *pgx.Batch, f Factor) {
	batch.Queue(insertFactorSQL,
		f.AthleteID, f.TrainingID, f.FactorType, f.Description, f.Severity,
		f.StartDate, f.EndDate, f.PerformanceImpact, f.Notes,
	)
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns every factor of every athlete of the coach.
func (r *Repo) List(ctx context.Context, coachID int) (_ []Factor, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.factors.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, selectFactors+`
		WHERE a.coach_id = $1
		ORDER BY f.start_date DESC, f.id DESC`,
		coachID,
	)
	if err != nil {
		return nil, fmt.Errorf("query factors: %w", err)
	}
	return rows2factors(rows)
}

func (r *Repo) ListByAthlete(ctx context.Context, athleteID int) (_ []Factor, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.factors.listByAthlete")
	span.SetAttributes(attribute.Int("athleteId", athleteID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, selectFactors+`
		WHERE f.athlete_id = $1
		ORDER BY f.start_date DESC, f.id DESC`,
		athleteID,
	)
	if err != nil {
		return nil, fmt.Errorf("query athlete factors: %w", err)
	}
	return rows2factors(rows)
}

func (r *Repo) ListByTraining(ctx context.Context, trainingID int) (_ []Factor, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.factors.listByTraining")
	span.SetAttributes(attribute.Int("trainingId", trainingID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, selectFactors+`
		WHERE f.training_id = $1
		ORDER BY f.start_date DESC, f.id DESC`,
		trainingID,
	)
	if err != nil {
		return nil, fmt.Errorf("query training factors: %w", err)
	}
	return rows2factors(rows)
}

// Get returns the factor when its athlete belongs to the coach.
func (r *Repo) Get(ctx context.Context, id, coachID int) (_ *Factor, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.factors.get")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	f, err := scanFactor(r.db.QueryRow(ctx, selectFactors+`
		WHERE f.id = $1 AND a.coach_id = $2`,
		id, coachID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFactorNotFound
		}
		return nil, fmt.Errorf("get factor: %w", err)
	}
	return f, nil
}

func (r *Repo) Create(ctx context.Context, f Factor) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.factors.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	if err := r.db.QueryRow(ctx, insertFactorSQL,
		f.AthleteID, f.TrainingID, f.FactorType, f.Description, f.Severity,
		f.StartDate, f.EndDate, f.PerformanceImpact, f.Notes,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert factor: %w", err)
	}
	return id, nil
}

// Update rewrites the factor. Ownership of the current row and of the
// referenced athlete and training is checked by the service beforehand.
func (r *Repo) Update(ctx context.Context, f Factor) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.factors.update")
	span.SetAttributes(attribute.Int("id", f.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE external_factors SET
			athlete_id = $2, training_id = $3, factor_type = $4, description = $5, severity = $6,
			start_date = $7, end_date = $8, performance_impact = $9, notes = $10,
			updated_at = now()
		WHERE id = $1`,
		f.ID, f.AthleteID, f.TrainingID, f.FactorType, f.Description, f.Severity,
		f.StartDate, f.EndDate, f.PerformanceImpact, f.Notes,
	)
	if err != nil {
		return fmt.Errorf("update factor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFactorNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id, coachID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.factors.delete")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM external_factors f
		USING athletes a
		WHERE f.id = $1 AND a.id = f.athlete_id AND a.coach_id = $2`,
		id, coachID,
	)
	if err != nil {
		return fmt.Errorf("delete factor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFactorNotFound
	}
	return nil
}

func (r *Repo) AthleteOwned(ctx context.Context, athleteID, coachID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.factors.athleteOwned")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var owned bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM athletes WHERE id = $1 AND coach_id = $2)`,
		athleteID, coachID,
	).Scan(&owned); err != nil {
		return false, fmt.Errorf("check athlete owner: %w", err)
	}
	return owned, nil
}

// TrainingAthlete returns the athlete of a training owned by the coach.
func (r *Repo) TrainingAthlete(ctx context.Context, trainingID, coachID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.factors.trainingAthlete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var athleteID int
	if err := r.db.QueryRow(ctx,
		`SELECT athlete_id FROM trainings WHERE id = $1 AND coach_id = $2`,
		trainingID, coachID,
	).Scan(&athleteID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrTrainingNotFound
		}
		return 0, fmt.Errorf("get training athlete: %w", err)
	}
	return athleteID, nil
}

func rows2factors(rows pgx.Rows) ([]Factor, error) {
	defer rows.Close()

	var factors []Factor
	for rows.Next() {
		f, err := scanFactor(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		factors = append(factors, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return factors, nil
}

func scanFactor(row pgx.Row) (*Factor, error) {
	var (
		f             Factor
		athlete       AthleteRef
		trainingID    *int
		trainingDate  *time.Time
		trainingTitle *string
		trainingType  *string
	)
	if err := row.Scan(
		&f.ID, &f.AthleteID, &f.TrainingID, &f.FactorType, &f.Description, &f.Severity,
		&f.StartDate, &f.EndDate, &f.PerformanceImpact, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
		&athlete.FirstName, &athlete.LastName, &athlete.Category,
		&trainingID, &trainingDate, &trainingTitle, &trainingType,
	); err != nil {
		return nil, err
	}

	athlete.ID = f.AthleteID
	f.Athlete = &athlete
	if trainingID != nil {
		f.Training = &TrainingRef{
			ID:    *trainingID,
			Title: trainingTitle,
		}
		if trainingDate != nil {
			f.Training.Date = *trainingDate
		}
		if trainingType != nil {
			f.Training.TrainingType = *trainingType
		}
	}
	return &f, nil
}
