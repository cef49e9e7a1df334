package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	// EnableDemoBootstrap exposes POST /v1/bootstrap/demo-users.
	// Keep disabled outside demo environments.
	EnableDemoBootstrap bool `env:"ENABLE_DEMO_BOOTSTRAP, default=false"`

	Mongo MongoConfig
	Redis RedisConfig
	Fipe  FipeConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=emplacadora"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type FipeConfig struct {
	BaseURL  string        `env:"FIPE_BASE_URL,  default=https://parallelum.com.br/fipe/api/v1"`
	CacheTTL time.Duration `env:"FIPE_CACHE_TTL, default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
