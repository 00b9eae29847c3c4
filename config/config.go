// Package config loads mazewalk settings from defaults, an optional YAML file,
// an optional .env file and MAZEWALK_* environment variables, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazewalk/grid"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the application's configuration values.
type Config struct {
	Rows            int           `yaml:"rows"`             // grid rows
	Cols            int           `yaml:"cols"`             // grid columns
	WallProbability float64       `yaml:"wall_probability"` // chance a generated cell is a wall
	StepDelay       time.Duration `yaml:"step_delay"`       // animation delay per expanded cell
	Seed            int64         `yaml:"seed"`             // 0 picks a time-based seed
	Layout          string        `yaml:"layout"`           // optional text layout file; overrides generation
	LogLevel        string        `yaml:"log_level"`        // debug, info, warn, error
	LogFormat       string        `yaml:"log_format"`       // text or json
	HTTPAddr        string        `yaml:"http_addr"`        // listen address for serve
	GinMode         string        `yaml:"gin_mode"`         // release, debug, test
}

// Environment variable names.
const (
	EnvRows            = "MAZEWALK_ROWS"
	EnvCols            = "MAZEWALK_COLS"
	EnvWallProbability = "MAZEWALK_WALL_PROBABILITY"
	EnvStepDelay       = "MAZEWALK_STEP_DELAY"
	EnvSeed            = "MAZEWALK_SEED"
	EnvLayout          = "MAZEWALK_LAYOUT"
	EnvLogLevel        = "MAZEWALK_LOG_LEVEL"
	EnvLogFormat       = "MAZEWALK_LOG_FORMAT"
	EnvHTTPAddr        = "MAZEWALK_HTTP_ADDR"
	EnvGinMode         = "GIN_MODE"
)

// Default returns the reference configuration: a 15×20 maze, one wall in
// three, 50ms per step.
func Default() Config {
	return Config{
		Rows:            15,
		Cols:            20,
		WallProbability: grid.DefaultWallProbability,
		StepDelay:       50 * time.Millisecond,
		LogLevel:        "info",
		LogFormat:       "text",
		HTTPAddr:        ":8080",
		GinMode:         "release",
	}
}

// Load builds a Config from Default, then path (YAML, skipped when empty),
// then a .env file in the working directory if present, then the process
// environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	// .env never overrides variables already set in the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// applyEnv overrides fields from the environment.
func (c *Config) applyEnv() error {
	var err error
	if v, ok := os.LookupEnv(EnvRows); ok {
		if c.Rows, err = strconv.Atoi(v); err != nil {
			return envError(EnvRows, err)
		}
	}
	if v, ok := os.LookupEnv(EnvCols); ok {
		if c.Cols, err = strconv.Atoi(v); err != nil {
			return envError(EnvCols, err)
		}
	}
	if v, ok := os.LookupEnv(EnvWallProbability); ok {
		if c.WallProbability, err = strconv.ParseFloat(v, 64); err != nil {
			return envError(EnvWallProbability, err)
		}
	}
	if v, ok := os.LookupEnv(EnvStepDelay); ok {
		if c.StepDelay, err = time.ParseDuration(v); err != nil {
			return envError(EnvStepDelay, err)
		}
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return envError(EnvSeed, err)
		}
	}
	stringEnv(EnvLayout, &c.Layout)
	stringEnv(EnvLogLevel, &c.LogLevel)
	stringEnv(EnvLogFormat, &c.LogFormat)
	stringEnv(EnvHTTPAddr, &c.HTTPAddr)
	stringEnv(EnvGinMode, &c.GinMode)

	return nil
}

func stringEnv(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func envError(key string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case c.WallProbability < 0 || c.WallProbability > 1:
		return fmt.Errorf("%w: wall_probability %v outside [0,1]", ErrInvalidConfig, c.WallProbability)
	case c.StepDelay < 0:
		return fmt.Errorf("%w: step_delay cannot be negative (%s)", ErrInvalidConfig, c.StepDelay)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	case c.GinMode != "release" && c.GinMode != "debug" && c.GinMode != "test":
		return fmt.Errorf("%w: gin_mode must be release, debug or test, got %q", ErrInvalidConfig, c.GinMode)
	}
	return nil
}
