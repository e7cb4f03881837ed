package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"goal-board/internal/domain"
)

const defaultRedisGoalKey = "goal:current"

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisGoalRepository implementa GoalRepository sobre una clave de Redis.
type RedisGoalRepository struct {
	client redisKV
	key    string
}

func NewRedisGoalRepository(client *redis.Client, key string) *RedisGoalRepository {
	return newRedisGoalRepository(client, key)
}

func newRedisGoalRepository(client redisKV, key string) *RedisGoalRepository {
	key = strings.TrimSpace(key)
	if key == "" {
		key = defaultRedisGoalKey
	}
	return &RedisGoalRepository{client: client, key: key}
}

func (r *RedisGoalRepository) Get(ctx context.Context) (domain.Goal, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DefaultGoal(), nil
	}
	if err != nil {
		return domain.Goal{}, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	var goal domain.Goal
	if err := json.Unmarshal(raw, &goal); err != nil {
		return domain.Goal{}, fmt.Errorf("decode goal: %w", err)
	}
	return goal, nil
}

func (r *RedisGoalRepository) Save(ctx context.Context, goal domain.Goal) error {
	payload, err := json.Marshal(goal)
	if err != nil {
		return fmt.Errorf("encode goal: %w", err)
	}
	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}
