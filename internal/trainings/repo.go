package trainings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/swimcoach/internal/factors"
	"github.com/2beens/swimcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const trainingColumns = `t.id, t.athlete_id, t.coach_id, t.title, t.description, t.location, t.status,
	t.date, t.start_time, t.end_time, t.training_type, t.duration_minutes, t.is_outdoor,
	t.temperature, t.humidity, t.weather_condition, t.heart_rate_rest, t.heart_rate_during,
	t.heart_rate_after, t.weight_before, t.weight_after, t.breathing_pattern,
	t.physical_state_rating, t.pain_reported, t.swimsuit_type, t.equipment_used, t.notes,
	t.created_at, t.updated_at, a.first_name, a.last_name, a.category`

const listFilter = `
	WHERE t.coach_id = $1
		AND ($2::int IS NULL OR t.athlete_id = $2)
		AND ($3::text = '' OR t.training_type = $3)
		AND ($4::timestamptz IS NULL OR t.date >= $4)
		AND ($5::timestamptz IS NULL OR t.date <= $5)`

var detailCopyColumns = []string{
	"training_id", "distance", "swim_style", "time_seconds", "series_number",
	"repetition_number", "rest_interval_seconds", "stroke_count", "efficiency", "notes",
}

type factorsLister interface {
	ListByTraining(ctx context.Context, trainingID int) ([]factors.Factor, error)
}

type Repo struct {
	db      *pgxpool.Pool
	factors factorsLister
}

func NewRepo(db *pgxpool.Pool, factorsRepo factorsLister) *Repo {
	return &Repo{
		db:      db,
		factors: factorsRepo,
	}
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Training, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	params = params.Normalize()
	args := []any{params.CoachID, params.AthleteID, params.TrainingType, params.StartDate, params.EndDate}

	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM trainings t`+listFilter,
		args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count trainings: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+trainingColumns+`
		FROM trainings t
			JOIN athletes a ON a.id = t.athlete_id`+listFilter+`
		ORDER BY `+params.orderBy()+`
		LIMIT $6 OFFSET $7`,
		append(args, params.Limit, params.Offset())...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query trainings: %w", err)
	}
	defer rows.Close()

	var trainings []Training
	for rows.Next() {
		t, err := scanTraining(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("rows scan: %w", err)
		}
		trainings = append(trainings, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return trainings, total, nil
}

// Get returns an owned training with its details and external factors.
func (r *Repo) Get(ctx context.Context, id, coachID int) (_ *Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.get")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t, err := scanTraining(r.db.QueryRow(ctx, `
		SELECT `+trainingColumns+`
		FROM trainings t
			JOIN athletes a ON a.id = t.athlete_id
		WHERE t.id = $1 AND t.coach_id = $2`,
		id, coachID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTrainingNotFound
		}
		return nil, fmt.Errorf("get training: %w", err)
	}

	if t.Details, err = r.details(ctx, id); err != nil {
		return nil, err
	}
	if t.ExternalFactors, err = r.factors.ListByTraining(ctx, id); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *Repo) details(ctx context.Context, trainingID int) ([]Detail, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, training_id, distance, swim_style, time_seconds, series_number,
			repetition_number, rest_interval_seconds, stroke_count, efficiency, notes, created_at
		FROM training_details
		WHERE training_id = $1
		ORDER BY series_number NULLS LAST, repetition_number NULLS LAST, id`,
		trainingID,
	)
	if err != nil {
		return nil, fmt.Errorf("query details: %w", err)
	}
	defer rows.Close()

	var details []Detail
	for rows.Next() {
		var d Detail
		if err := rows.Scan(
			&d.ID, &d.TrainingID, &d.Distance, &d.SwimStyle, &d.TimeSeconds, &d.SeriesNumber,
			&d.RepetitionNumber, &d.RestIntervalSeconds, &d.StrokeCount, &d.Efficiency, &d.Notes, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// Create writes the training, its details and its factors in one transaction.
func (r *Repo) Create(ctx context.Context, t Training) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		err = finishTx(ctx, tx, err)
	}()

	var id int
	if err := tx.QueryRow(ctx, `
		INSERT INTO trainings (
			athlete_id, coach_id, title, description, location, status, date, start_time, end_time,
			training_type, duration_minutes, is_outdoor, temperature, humidity, weather_condition,
			heart_rate_rest, heart_rate_during, heart_rate_after, weight_before, weight_after,
			breathing_pattern, physical_state_rating, pain_reported, swimsuit_type, equipment_used, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26
		)
		RETURNING id`,
		t.AthleteID, t.CoachID, t.Title, t.Description, t.Location, t.Status, t.Date, t.StartTime, t.EndTime,
		t.TrainingType, t.DurationMinutes, t.IsOutdoor, t.Temperature, t.Humidity, t.WeatherCondition,
		t.HeartRateRest, t.HeartRateDuring, t.HeartRateAfter, t.WeightBefore, t.WeightAfter,
		t.BreathingPattern, t.PhysicalStateRating, t.PainReported, t.SwimsuitType, t.EquipmentUsed, t.Notes,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert training: %w", err)
	}
	span.SetAttributes(attribute.Int("id", id))

	if err := insertDetails(ctx, tx, id, t.Details); err != nil {
		return 0, err
	}
	if err := insertFactors(ctx, tx, id, t.AthleteID, t.ExternalFactors); err != nil {
		return 0, err
	}

	return id, nil
}

// Update rewrites the training row. Details and factors are replaced
// wholesale only when the corresponding slice is non-nil.
func (r *Repo) Update(ctx context.Context, t Training) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.update")
	span.SetAttributes(attribute.Int("id", t.ID))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		err = finishTx(ctx, tx, err)
	}()

	tag, err := tx.Exec(ctx, `
		UPDATE trainings SET
			athlete_id = $3, title = $4, description = $5, location = $6, status = $7, date = $8,
			start_time = $9, end_time = $10, training_type = $11, duration_minutes = $12,
			is_outdoor = $13, temperature = $14, humidity = $15, weather_condition = $16,
			heart_rate_rest = $17, heart_rate_during = $18, heart_rate_after = $19,
			weight_before = $20, weight_after = $21, breathing_pattern = $22,
			physical_state_rating = $23, pain_reported = $24, swimsuit_type = $25,
			equipment_used = $26, notes = $27, updated_at = now()
		WHERE id = $1 AND coach_id = $2`,
		t.ID, t.CoachID, t.AthleteID, t.Title, t.Description, t.Location, t.Status, t.Date,
		t.StartTime, t.EndTime, t.TrainingType, t.DurationMinutes,
		t.IsOutdoor, t.Temperature, t.Humidity, t.WeatherCondition,
		t.HeartRateRest, t.HeartRateDuring, t.HeartRateAfter,
		t.WeightBefore, t.WeightAfter, t.BreathingPattern,
		t.PhysicalStateRating, t.PainReported, t.SwimsuitType,
		t.EquipmentUsed, t.Notes,
	)
	if err != nil {
		return fmt.Errorf("update training: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainingNotFound
	}

	if t.Details != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM training_details WHERE training_id = $1`, t.ID); err != nil {
			return fmt.Errorf("delete details: %w", err)
		}
		if err := insertDetails(ctx, tx, t.ID, t.Details); err != nil {
			return err
		}
	}

	if t.ExternalFactors == nil {
		// kept factors follow the training to its (possibly new) athlete
		if _, err := tx.Exec(ctx,
			`UPDATE external_factors SET athlete_id = $2 WHERE training_id = $1 AND athlete_id <> $2`,
			t.ID, t.AthleteID,
		); err != nil {
			return fmt.Errorf("reassign factors: %w", err)
		}
	} else {
		if _, err := tx.Exec(ctx, `DELETE FROM external_factors WHERE training_id = $1`, t.ID); err != nil {
			return fmt.Errorf("delete factors: %w", err)
		}
		if err := insertFactors(ctx, tx, t.ID, t.AthleteID, t.ExternalFactors); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repo) UpdateStatus(ctx context.Context, id, coachID int, status string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.updateStatus")
	span.SetAttributes(attribute.Int("id", id), attribute.String("status", status))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE trainings SET status = $3, updated_at = now()
		WHERE id = $1 AND coach_id = $2`,
		id, coachID, status,
	)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainingNotFound
	}
	return nil
}

// Delete removes the training; details and factors cascade.
func (r *Repo) Delete(ctx context.Context, id, coachID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.delete")
	span.SetAttributes(attribute.Int("id", id))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM trainings WHERE id = $1 AND coach_id = $2`, id, coachID)
	if err != nil {
		return fmt.Errorf("delete training: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainingNotFound
	}
	return nil
}

func (r *Repo) Upcoming(ctx context.Context, coachID int, from time.Time, limit int) (_ []Upcoming, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.upcoming")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.title, t.date, t.start_time, t.training_type, t.status,
			a.id, a.first_name || ' ' || a.last_name
		FROM trainings t
			JOIN athletes a ON a.id = t.athlete_id
		WHERE t.coach_id = $1 AND t.date >= $2
		ORDER BY t.date ASC, t.id ASC
		LIMIT $3`,
		coachID, from, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query upcoming: %w", err)
	}
	defer rows.Close()

	var upcoming []Upcoming
	for rows.Next() {
		var u Upcoming
		if err := rows.Scan(
			&u.ID, &u.Title, &u.Date, &u.StartTime, &u.TrainingType, &u.Status, &u.AthleteID, &u.AthleteName,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		upcoming = append(upcoming, u)
	}
	return upcoming, rows.Err()
}

func (r *Repo) AthleteOwned(ctx context.Context, athleteID, coachID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.athleteOwned")
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

func insertDetails(ctx context.Context, tx pgx.Tx, trainingID int, details []Detail) error {
	if len(details) == 0 {
		return nil
	}
	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"training_details"},
		detailCopyColumns,
		pgx.CopyFromSlice(len(details), func(i int) ([]any, error) {
			d := details[i]
			return []any{
				trainingID, d.Distance, d.SwimStyle, d.TimeSeconds, d.SeriesNumber,
				d.RepetitionNumber, d.RestIntervalSeconds, d.StrokeCount, d.Efficiency, d.Notes,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy details: %w", err)
	}
	if int(copied) != len(details) {
		return fmt.Errorf("copy details: wrote %d of %d rows", copied, len(details))
	}
	return nil
}

func insertFactors(ctx context.Context, tx pgx.Tx, trainingID, athleteID int, list []factors.Factor) error {
	if len(list) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, f := range list {
		f.AthleteID = athleteID
		f.TrainingID = &trainingID
		factors.QueueInsert(batch, f)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert factors: %w", err)
	}
	return nil
}

func finishTx(ctx context.Context, tx pgx.Tx, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
		}
		return err
	}
	return tx.Commit(ctx)
}

func scanTraining(row pgx.Row) (*Training, error) {
	t := &Training{}
	athlete := &AthleteSummary{}
	if err := row.Scan(
		&t.ID, &t.AthleteID, &t.CoachID, &t.Title, &t.Description, &t.Location, &t.Status,
		&t.Date, &t.StartTime, &t.EndTime, &t.TrainingType, &t.DurationMinutes, &t.IsOutdoor,
		&t.Temperature, &t.Humidity, &t.WeatherCondition, &t.HeartRateRest, &t.HeartRateDuring,
		&t.HeartRateAfter, &t.WeightBefore, &t.WeightAfter, &t.BreathingPattern,
		&t.PhysicalStateRating, &t.PainReported, &t.SwimsuitType, &t.EquipmentUsed, &t.Notes,
		&t.CreatedAt, &t.UpdatedAt, &athlete.FirstName, &athlete.LastName, &athlete.Category,
	); err != nil {
		return nil, err
	}
	athlete.ID = t.AthleteID
	t.Athlete = athlete
	return t, nil
}
