package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"goal-board/internal/domain"
)

type mockRow struct {
	text      string
	updatedAt time.Time
	err       error
}

func (r mockRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.text
	*dest[1].(*time.Time) = r.updatedAt
	return nil
}

type mockPgQuerier struct {
	row       mockRow
	lastSQL   string
	lastArgs  []any
	execErr   error
	queryArgs []any
}

func (m *mockPgQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.lastSQL = sql
	m.lastArgs = args
	if m.execErr != nil {
		return pgconn.CommandTag{}, m.execErr
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (m *mockPgQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	m.queryArgs = args
	return m.row
}

func TestPgGoalRepository_NoRowsYieldsDefault(t *testing.T) {
	mock := &mockPgQuerier{row: mockRow{err: pgx.ErrNoRows}}
	repo := &PgGoalRepository{pool: mock}

	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Text != domain.DefaultGoalText {
		t.Fatalf("expected default goal, got %q", got.Text)
	}
	if len(mock.queryArgs) != 1 || mock.queryArgs[0] != singletonGoalID {
		t.Fatalf("expected singleton id arg, got %+v", mock.queryArgs)
	}
}

func TestPgGoalRepository_Get(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := &mockPgQuerier{row: mockRow{text: "Learn SQL", updatedAt: now}}
	repo := &PgGoalRepository{pool: mock}

	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Text != "Learn SQL" || !got.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected goal: %+v", got)
	}

	mock.row = mockRow{err: errors.New("connection refused")}
	if _, err := repo.Get(context.Background()); err == nil {
		t.Fatalf("expected query error")
	}
}

func TestPgGoalRepository_SaveUpserts(t *testing.T) {
	mock := &mockPgQuerier{}
	repo := &PgGoalRepository{pool: mock}
	now := time.Now().UTC()

	if err := repo.Save(context.Background(), domain.Goal{Text: "Learn Rust", UpdatedAt: now}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.Contains(mock.lastSQL, "ON CONFLICT (id) DO UPDATE") {
		t.Fatalf("expected upsert, got %q", mock.lastSQL)
	}
	if len(mock.lastArgs) != 3 || mock.lastArgs[1] != "Learn Rust" {
		t.Fatalf("unexpected args: %+v", mock.lastArgs)
	}

	mock.execErr = errors.New("read only")
	if err := repo.Save(context.Background(), domain.Goal{Text: "x"}); err == nil {
		t.Fatalf("expected exec error")
	}
}
