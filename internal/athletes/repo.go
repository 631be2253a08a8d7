package athletes

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

const athleteColumns = `id, coach_id, first_name, last_name, date_of_birth, category,
	height, weight, gender, phone, email, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, coachID int) (_ []Athlete, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+athleteColumns+`
		FROM athletes
		WHERE coach_id = $1
		ORDER BY last_name, first_name, id`,
		coachID,
	)
	if err != nil {
		return nil, fmt.Errorf("query athletes: %w", err)
	}
	return r.rows2athletes(rows)
}

// Get returns the athlete only when it belongs to the coach.
func (r *Repo) Get(ctx context.Context, id, coachID int) (_ *Athlete, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.get")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	a, err := scanAthlete(r.db.QueryRow(ctx, `
		SELECT `+athleteColumns+`
		FROM athletes
		WHERE id = $1 AND coach_id = $2`,
		id, coachID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAthleteNotFound
		}
		return nil, fmt.Errorf("get athlete: %w", err)
	}
	return a, nil
}

func (r *Repo) Create(ctx context.Context, a Athlete) (_ *Athlete, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	created, err := scanAthlete(r.db.QueryRow(ctx, `
		INSERT INTO athletes
			(coach_id, first_name, last_name, date_of_birth, category, height, weight, gender, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+athleteColumns,
		a.CoachID, a.FirstName, a.LastName, a.DateOfBirth, a.Category,
		a.Height, a.Weight, a.Gender, a.Phone, a.Email,
	))
	if err != nil {
		return nil, fmt.Errorf("insert athlete: %w", err)
	}
	return created, nil
}

// Update overwrites every editable field of an owned athlete.
func (r *Repo) Update(ctx context.Context, a Athlete) (_ *Athlete, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.update")
	span.SetAttributes(attribute.Int("id", a.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	updated, err := scanAthlete(r.db.QueryRow(ctx, `
		UPDATE athletes SET
			first_name = $3, last_name = $4, date_of_birth = $5, category = $6,
			height = $7, weight = $8, gender = $9, phone = $10, email = $11,
			updated_at = now()
		WHERE id = $1 AND coach_id = $2
		RETURNING `+athleteColumns,
		a.ID, a.CoachID, a.FirstName, a.LastName, a.DateOfBirth, a.Category,
		a.Height, a.Weight, a.Gender, a.Phone, a.Email,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAthleteNotFound
		}
		return nil, fmt.Errorf("update athlete: %w", err)
	}
	return updated, nil
}

// Delete removes the athlete; trainings and external factors cascade.
func (r *Repo) Delete(ctx context.Context, id, coachID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.delete")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM athletes WHERE id = $1 AND coach_id = $2`, id, coachID)
	if err != nil {
		return fmt.Errorf("delete athlete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAthleteNotFound
	}
	return nil
}

// Recent returns the most recently created athletes of the coach.
func (r *Repo) Recent(ctx context.Context, coachID, limit int) (_ []Athlete, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.recent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT `+athleteColumns+`
		FROM athletes
		WHERE coach_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		coachID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent athletes: %w", err)
	}
	return r.rows2athletes(rows)
}

func (r *Repo) Count(ctx context.Context, coachID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM athletes WHERE coach_id = $1`, coachID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count athletes: %w", err)
	}
	return count, nil
}

func (r *Repo) CountCreatedSince(ctx context.Context, coachID int, since time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.countCreatedSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM athletes WHERE coach_id = $1 AND created_at >= $2`, coachID, since,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count new athletes: %w", err)
	}
	return count, nil
}

func (r *Repo) rows2athletes(rows pgx.Rows) ([]Athlete, error) {
	defer rows.Close()

	var athletes []Athlete
	for rows.Next() {
		a, err := scanAthlete(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		athletes = append(athletes, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return athletes, nil
}

func scanAthlete(row pgx.Row) (*Athlete, error) {
	a := &Athlete{}
	if err := row.Scan(
		&a.ID, &a.CoachID, &a.FirstName, &a.LastName, &a.DateOfBirth, &a.Category,
		&a.Height, &a.Weight, &a.Gender, &a.Phone, &a.Email, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return a, nil
}
