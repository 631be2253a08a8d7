package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/swimcoach/internal/telemetry/tracing"
	"github.com/2beens/swimcoach/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CoachesRepo struct {
	db *pgxpool.Pool
}

func NewCoachesRepo(db *pgxpool.Pool) *CoachesRepo {
	return &CoachesRepo{db: db}
}

func (r *CoachesRepo) Add(ctx context.Context, name, email, passwordHash string) (_ *Coach, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coaches.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	c := &Coach{
		Name:         name,
		Email:        strings.ToLower(email),
		Role:         RoleCoach,
		PasswordHash: passwordHash,
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO coaches (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		c.Name, c.Email, c.PasswordHash, c.Role,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert coach: %w", err)
	}

	return c, nil
}

func (r *CoachesRepo) Get(ctx context.Context, id int) (_ *Coach, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coaches.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *CoachesRepo) GetByEmail(ctx context.Context, email string) (_ *Coach, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coaches.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getOne(ctx, `WHERE email = $1`, strings.ToLower(email))
}

func (r *CoachesRepo) getOne(ctx context.Context, where string, arg any) (*Coach, error) {
	c := &Coach{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, role, password_hash, created_at
		FROM coaches `+where, arg,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Role, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, fmt.Errorf("get coach: %w", err)
	}
	return c, nil
}
