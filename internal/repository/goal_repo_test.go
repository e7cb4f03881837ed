package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"goal-board/internal/domain"
)

func TestMemoryGoalRepository_DefaultAndSave(t *testing.T) {
	repo := NewMemoryGoalRepository()
	ctx := context.Background()

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Text != domain.DefaultGoalText {
		t.Fatalf("expected default goal, got %q", got.Text)
	}

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := repo.Save(ctx, domain.Goal{Text: "Learn Rust", UpdatedAt: now}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, _ = repo.Get(ctx)
	if got.Text != "Learn Rust" || !got.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected goal after save: %+v", got)
	}
}

func TestMemoryGoalRepository_ConcurrentAccess(t *testing.T) {
	repo := NewMemoryGoalRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = repo.Save(ctx, domain.Goal{Text: "Learn Go"})
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.Get(ctx)
		}()
	}
	wg.Wait()

	got, _ := repo.Get(ctx)
	if got.Text != "Learn Go" {
		t.Fatalf("expected last write to win, got %q", got.Text)
	}
}
