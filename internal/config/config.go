package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Backends aceptados en GOAL_STORE.
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// EnvDevelopment habilita stack traces en las paginas de error.
const EnvDevelopment = "development"

// Config centraliza la configuración del servicio.
type Config struct {
	Host            string        `env:"HOST"`
	Port            int           `env:"PORT" envDefault:"3000"`
	AppEnv          string        `env:"APP_ENV" envDefault:"production"`
	StaticDir       string        `env:"STATIC_DIR"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	GoalStore     string `env:"GOAL_STORE" envDefault:"memory"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisKey      string `env:"REDIS_KEY" envDefault:"goal:current"`
	DatabaseURL   string `env:"DATABASE_URL"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	cfg.GoalStore = strings.ToLower(strings.TrimSpace(cfg.GoalStore))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate rechaza configuraciones con las que el servidor no puede arrancar.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	switch c.GoalStore {
	case StoreMemory:
	case StoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("GOAL_STORE=redis requires REDIS_ADDR")
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("GOAL_STORE=postgres requires DATABASE_URL")
		}
	default:
		return fmt.Errorf("unknown goal store %q", c.GoalStore)
	}
	return nil
}

// IsDevelopment indica si las paginas de error pueden mostrar el stack trace.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

// ServerAddress devuelve la direccion de escucha.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
