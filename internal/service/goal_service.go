package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"goal-board/internal/domain"
	"goal-board/internal/repository"
)

// GoalService coordina las reglas de negocio de la meta.
type GoalService struct {
	logger *zap.Logger
	goals  repository.GoalRepository
	now    func() time.Time
}

func NewGoalService(logger *zap.Logger, goals repository.GoalRepository) *GoalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoalService{
		logger: logger,
		goals:  goals,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Current devuelve la meta vigente.
func (s *GoalService) Current(ctx context.Context) (domain.Goal, error) {
	if s.goals == nil {
		return domain.Goal{}, errors.New("goal service not configured")
	}
	return s.goals.Get(ctx)
}

// Update valida el candidato y, si es valido, reemplaza la meta vigente.
// Ante un candidato invalido devuelve domain.ErrInvalidGoal sin tocar el store.
func (s *GoalService) Update(ctx context.Context, candidate string) (domain.Goal, error) {
	if s.goals == nil {
		return domain.Goal{}, errors.New("goal service not configured")
	}

	text, err := domain.NormalizeGoal(candidate)
	if err != nil {
		s.logger.Debug("goal rejected", zap.Int("length", len(candidate)))
		return domain.Goal{}, err
	}

	goal := domain.Goal{
		Text:      text,
		UpdatedAt: s.now(),
	}
	if err := s.goals.Save(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}
