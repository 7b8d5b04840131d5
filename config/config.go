package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/shu-go/opac/opacity"
)

const (
	DefaultTarget   = "Code"
	DefaultPercent  = 80
	DefaultInterval = time.Second

	// TargetEnv overrides the target in the file.
	TargetEnv = "OPAC_TARGET"
)

type Config struct {
	Target   string        `yaml:"target"`
	Percent  int           `yaml:"percent"`
	Interval time.Duration `yaml:"interval"`
}

func Default() *Config {
	return &Config{
		Target:   DefaultTarget,
		Percent:  DefaultPercent,
		Interval: DefaultInterval,
	}
}

func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "opac", "config.yaml"), nil
}

// Load reads path over the defaults, then applies envFile (a dotenv file)
// and the process environment. Missing files are not errors.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read %s: %w", path, err)
		default:
			if err := decode(bytes.NewReader(data), cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if envFile != "" {
		// existing environment wins over the file
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if t := strings.TrimSpace(os.Getenv(TargetEnv)); t != "" {
		cfg.Target = t
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Target) == "" {
		return fmt.Errorf("target must not be empty")
	}
	if err := opacity.ValidatePercent(c.Percent); err != nil {
		return fmt.Errorf("percent: %w", err)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	return nil
}
