/*
Package config loads and validates the generator configuration.

PURPOSE:
  Parses the YAML configuration document into a validated Config struct.
  The config is the single source of randomness (seed) and shape (orgs,
  jobs, paycodes, horizon) for a generation run.

CONFIGURATION FILE:
  seed:     integer, seeds every RNG stream
  days:     integer >= 1, simulation horizon in calendar days
  orgs:     ordered list of slash-delimited org paths
  jobs:     department -> list of {job_code, job_title, job_family}
  paycodes: list of valid paycode strings

FAIL-FAST POLICY:
  Malformed configuration is not a recoverable condition. Missing keys,
  wrong types, and empty required lists all fail at load time with a
  descriptive error. There are no defaults for required fields.

PATH RESOLUTION:
  The CLI takes no flags. Paths are fixed but overridable through the
  environment (optionally via a .env file):
    CONFIG_PATH  default "config.yaml"
    OUT_DIR      default "data/synthetic_raw"

SEE ALSO:
  - cmd/generate/main.go: the only production caller of Load
  - workforce/: consumes Config for all three generators
*/
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default locations used when the environment does not override them.
const (
	DefaultConfigPath = "config.yaml"
	DefaultOutDir     = "data/synthetic_raw"
)

// Job is one entry in a department's job catalog.
type Job struct {
	Code   string `yaml:"job_code"`
	Title  string `yaml:"job_title"`
	Family string `yaml:"job_family"`
}

// Config holds everything a generation run needs.
type Config struct {
	Seed     int64            `yaml:"seed"`
	Days     int              `yaml:"days"`
	Orgs     []string         `yaml:"orgs"`
	Jobs     map[string][]Job `yaml:"jobs"`
	Paycodes []string         `yaml:"paycodes"`
}

// rawConfig uses pointers for scalar fields so a missing key can be told
// apart from an explicit zero.
type rawConfig struct {
	Seed     *int64           `yaml:"seed"`
	Days     *int             `yaml:"days"`
	Orgs     []string         `yaml:"orgs"`
	Jobs     map[string][]Job `yaml:"jobs"`
	Paycodes []string         `yaml:"paycodes"`
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a raw YAML document.
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if raw.Seed == nil {
		return nil, fmt.Errorf("config: missing required field %q", "seed")
	}
	if raw.Days == nil {
		return nil, fmt.Errorf("config: missing required field %q", "days")
	}

	cfg := &Config{
		Seed:     *raw.Seed,
		Days:     *raw.Days,
		Orgs:     raw.Orgs,
		Jobs:     raw.Jobs,
		Paycodes: raw.Paycodes,
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Days < 1 {
		return fmt.Errorf("config: days must be >= 1, got %d", c.Days)
	}
	if len(c.Orgs) == 0 {
		return fmt.Errorf("config: orgs must not be empty")
	}
	for _, org := range c.Orgs {
		if strings.TrimSpace(org) == "" {
			return fmt.Errorf("config: orgs contains an empty path")
		}
	}
	if len(c.Paycodes) == 0 {
		return fmt.Errorf("config: paycodes must not be empty")
	}
	for dept, jobs := range c.Jobs {
		for i, job := range jobs {
			if strings.TrimSpace(job.Code) == "" {
				return fmt.Errorf("config: jobs[%s][%d] has an empty job_code", dept, i)
			}
		}
	}
	return nil
}

// ConfigPath returns the config file location, honoring CONFIG_PATH.
func ConfigPath() string {
	return getEnvOrDefault("CONFIG_PATH", DefaultConfigPath)
}

// OutDir returns the output directory, honoring OUT_DIR.
func OutDir() string {
	return getEnvOrDefault("OUT_DIR", DefaultOutDir)
}

func getEnvOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
