package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"required"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"pvp-track" validate:"required"`
	Version     string `env:"VERSION" envDefault:"dev"`

	DataDir      string `env:"DATA_DIR" envDefault:"." validate:"required"`
	ManifestPath string `env:"MANIFEST_PATH"`
	OutputDir    string `env:"OUTPUT_DIR" envDefault:"." validate:"required"`
	CDNPrefix    string `env:"CDN_PREFIX" envDefault:"https://cdn.nw-buddy.de/nw-data/live/" validate:"required,url"`

	MinLevel int `env:"MIN_LEVEL" envDefault:"0" validate:"gte=0"`
	MaxLevel int `env:"MAX_LEVEL" envDefault:"230" validate:"gtefield=MinLevel"`

	Port            int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	MetricsTextfile string `env:"METRICS_TEXTFILE"`
	NameCacheSize   int    `env:"NAME_CACHE_SIZE" envDefault:"4096" validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
