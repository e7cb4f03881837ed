package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"goal-board/internal/domain"
)

// La tabla goals guarda una sola fila.
const singletonGoalID = 1

type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PgGoalRepository implementa GoalRepository usando pgxpool.
type PgGoalRepository struct {
	pool pgQuerier
}

func NewPgGoalRepository(pool *pgxpool.Pool) *PgGoalRepository {
	return &PgGoalRepository{pool: pool}
}

func (r *PgGoalRepository) Get(ctx context.Context) (domain.Goal, error) {
	const query = `
		SELECT text, updated_at
		FROM goals
		WHERE id = $1
	`
	var g domain.Goal
	err := r.pool.QueryRow(ctx, query, singletonGoalID).Scan(
		&g.Text,
		&g.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.DefaultGoal(), nil
	}
	return g, err
}

func (r *PgGoalRepository) Save(ctx context.Context, goal domain.Goal) error {
	const query = `
		INSERT INTO goals (id, text, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET text = EXCLUDED.text, updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		singletonGoalID,
		goal.Text,
		goal.UpdatedAt,
	)
	return err
}
