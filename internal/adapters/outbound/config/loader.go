// Package config loads the sweep configuration: an optional .env
// file, an optional ordersweep.yaml store roster, and per-store API
// keys from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/ordersweep/ordersweep/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the default roster file looked up in the working
// directory.
const FileName = "ordersweep.yaml"

// Loader resolves the sweep configuration.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads the roster from path (FileName when empty). A missing
// roster file falls back to the built-in default roster; a present
// but malformed one is an error. API keys are resolved from the
// environment after a best-effort .env load, so a store whose key
// variable is unset simply ends up unconfigured and is skipped at
// run time.
func (l *Loader) Load(path string) (domain.SweepConfig, error) {
	// Missing .env is the common case in scheduled deployments where
	// keys arrive through the real environment.
	_ = godotenv.Load()

	if path == "" {
		path = FileName
	}

	cfg := domain.DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// keep defaults
	case err != nil:
		return domain.SweepConfig{}, fmt.Errorf("reading %s: %w", path, err)
	default:
		cfg = domain.SweepConfig{}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.SweepConfig{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	cfg = cfg.WithDefaults()
	for i, store := range cfg.Stores {
		if store.APIKeyEnv != "" {
			cfg.Stores[i].APIKey = os.Getenv(store.APIKeyEnv)
		}
	}
	return cfg, nil
}
