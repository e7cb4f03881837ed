package repository

import (
	"context"
	"sync"

	"goal-board/internal/domain"
)

// GoalRepository define el contrato de persistencia para la meta actual.
type GoalRepository interface {
	Get(ctx context.Context) (domain.Goal, error)
	Save(ctx context.Context, goal domain.Goal) error
}

// MemoryGoalRepository guarda la meta en memoria del proceso.
type MemoryGoalRepository struct {
	mu   sync.RWMutex
	goal domain.Goal
}

func NewMemoryGoalRepository() *MemoryGoalRepository {
	return &MemoryGoalRepository{goal: domain.DefaultGoal()}
}

func (r *MemoryGoalRepository) Get(_ context.Context) (domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.goal, nil
}

func (r *MemoryGoalRepository) Save(_ context.Context, goal domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.goal = goal
	return nil
}
