package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/nanoteck137/thumbgen/thumbnail"
	"github.com/nanoteck137/thumbgen/utils"
	"github.com/rs/zerolog"
)

const (
	EnvMode        = "THUMBGEN_MODE"
	EnvChmodTarget = "THUMBGEN_CHMOD_TARGET"
	EnvFilter      = "THUMBGEN_FILTER"
	EnvJPEGQuality = "THUMBGEN_JPEG_QUALITY"
	EnvLogLevel    = "THUMBGEN_LOG_LEVEL"
)

// Config holds the defaults for the command line flags.
type Config struct {
	Mode        string
	ChmodTarget string
	Filter      string
	JPEGQuality int
	LogLevel    string
}

// DefaultEnvFile is loaded when Load is given no env files. Unlike files
// named explicitly, it may be missing.
const DefaultEnvFile = ".env"

// Load reads the env files and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		err := godotenv.Load(DefaultEnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", DefaultEnvFile, err)
		}
	}

	for _, f := range envFiles {
		err := godotenv.Load(f)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	c := &Config{
		Mode:        getEnv(EnvMode, thumbnail.DefaultMode),
		ChmodTarget: getEnv(EnvChmodTarget, thumbnail.ChmodDirectory.String()),
		Filter:      getEnv(EnvFilter, thumbnail.DefaultFilter),
		LogLevel:    getEnv(EnvLogLevel, zerolog.InfoLevel.String()),
	}

	q := getEnv(EnvJPEGQuality, "")
	if q != "" {
		v, err := strconv.Atoi(q)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvJPEGQuality, err)
		}
		c.JPEGQuality = v
	}

	err := c.Validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) Validate() error {
	if _, err := utils.ParseFileMode(c.Mode); err != nil {
		return fmt.Errorf("mode: %w", err)
	}

	if _, err := thumbnail.ParseChmodTarget(c.ChmodTarget); err != nil {
		return fmt.Errorf("chmod target: %w", err)
	}

	if _, err := thumbnail.ParseFilter(c.Filter); err != nil {
		return fmt.Errorf("filter: %w", err)
	}

	if c.JPEGQuality < 0 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality %d out of range 1-100", c.JPEGQuality)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	return nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
