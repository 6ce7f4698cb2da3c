package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs session tokens. The default matches the historical
	// deployment; override it anywhere that matters.
	JWTSecret string        `env:"JWT_SECRET, default=b54b56e3b1e3ff241f9e049ecdcf5d6c15bbbcd8ee180d588d13dd45245a845a"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=30m"`

	BriefsDir string `env:"BRIEFS_DIR, default=./static/briefs"`
	StaticDir string `env:"STATIC_DIR, default=./static"`

	Admin  AdminConfig
	OpenAI OpenAIConfig
}

// AdminConfig is the single static credential. The default hash is bcrypt
// of "password".
type AdminConfig struct {
	Username     string `env:"ADMIN_USERNAME,      default=admin"`
	PasswordHash string `env:"ADMIN_PASSWORD_HASH, default=$2b$12$rWzW3P./DORcuiqzRCYZPufvQzXVr7bCrXDD55k6UO4veR/6FcQpe"`
}

type OpenAIConfig struct {
	APIKey  string        `env:"OPENAI_API_KEY"`
	BaseURL string        `env:"OPENAI_BASE_URL"`
	Model   string        `env:"OPENAI_MODEL,   default=gpt-4o-mini"`
	Timeout time.Duration `env:"OPENAI_TIMEOUT, default=60s"`
}

// Load reads configuration from environment variables using go-envconfig.
// In development a local .env file is applied first, when present.
func Load() (*Config, error) {
	if os.Getenv("ENV") != "production" {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
