package mpin

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg  Config
	once sync.Once
)

// Config carries process-level settings for classifier construction.
type Config struct {
	// ReferenceYear pins the processing year used for two-digit-year century
	// pivots. Zero means use the wall clock. Setting it keeps classification
	// of date-adjacent PINs reproducible across runs.
	ReferenceYear int `env:"MPIN_REFERENCE_YEAR" envDefault:"0"`
}

// LoadConfig loads the configuration from the environment once per process.
func LoadConfig() (Config, error) {
	configLoadFunc := func() (Config, error) {
		var cfg Config
		if err := env.Parse(&cfg); err != nil {
			return Config{}, err
		}
		if cfg.ReferenceYear < 0 {
			return Config{}, errors.Join(ErrInvalidConfig, errors.New("MPIN_REFERENCE_YEAR must be non-negative"))
		}
		return cfg, nil
	}

	var err error
	once.Do(func() {
		cfg, err = configLoadFunc()
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a Classifier honoring cfg: a pinned reference year
// when set, the wall clock otherwise.
func NewFromConfig(cfg Config) *Classifier {
	if cfg.ReferenceYear > 0 {
		return New(WithReferenceYear(cfg.ReferenceYear))
	}
	return New(WithTimeFunc(time.Now))
}
