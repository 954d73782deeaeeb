package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when no path is given and LITHUANINGO_CONFIG is unset.
const DefaultPath = "./lithuaningo.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The file is path, else LITHUANINGO_CONFIG, else DefaultPath. A missing
// file is an error only when it was named explicitly.
func Load(path string) (*Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = os.Getenv("LITHUANINGO_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
