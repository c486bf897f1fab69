// Package config loads training configuration from the environment.
//
// Settings come from environment variables, optionally supplied through a
// .env file discovered in the current or parent directories.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// TrainConfig holds the settings for a training run.
type TrainConfig struct {
	Steps   int     // MIKRO_STEPS: optimization steps (default 100)
	LR      float64 // MIKRO_LR: base learning rate (default 1.0)
	LRDecay float64 // MIKRO_LR_DECAY: linear LR decay per step (default 0.009)
	Samples int     // MIKRO_SAMPLES: dataset size (default 100)
	Hidden  []int   // MIKRO_HIDDEN: hidden layer sizes, comma-separated (default "16,16")
}

// Train loads the training configuration from environment variables,
// attempting to find a .env file in the current or parent directories
// first. Malformed values are an error, never silently defaulted.
func Train() (*TrainConfig, error) {
	_ = loadEnvFile()

	cfg := &TrainConfig{
		Steps:   100,
		LR:      1.0,
		LRDecay: 0.009,
		Samples: 100,
		Hidden:  []int{16, 16},
	}

	var err error
	if cfg.Steps, err = intEnv("MIKRO_STEPS", cfg.Steps); err != nil {
		return nil, err
	}
	if cfg.LR, err = floatEnv("MIKRO_LR", cfg.LR); err != nil {
		return nil, err
	}
	if cfg.LRDecay, err = floatEnv("MIKRO_LR_DECAY", cfg.LRDecay); err != nil {
		return nil, err
	}
	if cfg.Samples, err = intEnv("MIKRO_SAMPLES", cfg.Samples); err != nil {
		return nil, err
	}
	if cfg.Hidden, err = intsEnv("MIKRO_HIDDEN", cfg.Hidden); err != nil {
		return nil, err
	}
	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return v, nil
}

func intsEnv(key string, fallback []int) ([]int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	parts := strings.Split(raw, ",")
	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", key, err)
		}
		values[i] = v
	}
	return values, nil
}

// loadEnvFile looks upward from the working directory until it finds a
// .env file, up to five levels.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil
}
