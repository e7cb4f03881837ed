package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"goal-board/internal/config"
	"goal-board/internal/db"
	apihttp "goal-board/internal/http"
	"goal-board/internal/repository"
	"goal-board/internal/service"
	"goal-board/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	goalRepo, closeStore, err := newGoalRepository(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("goal store init", zap.String("store", cfg.GoalStore), zap.Error(err))
	}
	defer closeStore()

	files, err := staticFiles(cfg)
	if err != nil {
		logger.Fatal("static files", zap.Error(err))
	}

	goalSvc := service.NewGoalService(logger, goalRepo)
	goalHandler := apihttp.NewGoalHandler(logger, goalSvc)
	staticHandler := apihttp.NewStaticHandler(logger, files)
	router := apihttp.NewRouter(logger, goalHandler, staticHandler, cfg.IsDevelopment())

	server := &http.Server{
		Addr:              cfg.ServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	logger.Info("server listening",
		zap.Int("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
		zap.String("store", cfg.GoalStore),
	)

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Fatal("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}

func newLogger(cfg *config.Config) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newGoalRepository construye el backend elegido en GOAL_STORE y su funcion de cierre.
func newGoalRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.GoalRepository, func(), error) {
	switch cfg.GoalStore {
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(ctxPing).Err(); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repository.NewRedisGoalRepository(client, cfg.RedisKey), func() { _ = client.Close() }, nil

	case config.StorePostgres:
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repository.NewPgGoalRepository(pool), pool.Close, nil

	default:
		logger.Debug("using in-memory goal store")
		return repository.NewMemoryGoalRepository(), func() {}, nil
	}
}

func staticFiles(cfg *config.Config) (http.FileSystem, error) {
	if cfg.StaticDir != "" {
		return http.Dir(cfg.StaticDir), nil
	}
	return web.PublicFS()
}
