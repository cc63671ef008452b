// SPDX-License-Identifier: MIT

// Package config loads sociograph settings.
//
// Sources, later overriding earlier:
//
//  1. Default()
//  2. an optional YAML file
//  3. a .env file (default ".env" in the working directory, optional)
//  4. SOCIOGRAPH_* process environment variables
//
// The result is validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sociograph/analytics"
	"github.com/katalvlaran/sociograph/dimension"
	"github.com/katalvlaran/sociograph/logger"
	"github.com/katalvlaran/sociograph/profile"
	"github.com/katalvlaran/sociograph/report"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvEnv                     = "SOCIOGRAPH_ENV"
	EnvLogLevel                = "SOCIOGRAPH_LOG_LEVEL"
	EnvLargeNetworkSize        = "SOCIOGRAPH_LARGE_NETWORK_SIZE"
	EnvHighDiversityEntropy    = "SOCIOGRAPH_HIGH_DIVERSITY_ENTROPY"
	EnvHighStrength            = "SOCIOGRAPH_HIGH_STRENGTH"
	EnvHighConnectivityDensity = "SOCIOGRAPH_HIGH_CONNECTIVITY_DENSITY"
	EnvPageRankDamping         = "SOCIOGRAPH_PAGERANK_DAMPING"
	EnvPageRankTolerance       = "SOCIOGRAPH_PAGERANK_TOLERANCE"
	EnvPageRankMaxIterations   = "SOCIOGRAPH_PAGERANK_MAX_ITERATIONS"
	EnvEigenTolerance          = "SOCIOGRAPH_EIGEN_TOLERANCE"
)

const defaultEnvFile = ".env"

// Thresholds holds the classification cut-offs.
type Thresholds struct {
	LargeNetworkSize        int     `yaml:"large_network_size"`
	HighDiversityEntropy    float64 `yaml:"high_diversity_entropy"`
	HighStrength            float64 `yaml:"high_strength"`
	HighConnectivityDensity float64 `yaml:"high_connectivity_density"`
}

// Centrality holds the numeric parameters of the graph algorithms.
type Centrality struct {
	PageRankDamping       float64 `yaml:"pagerank_damping"`
	PageRankTolerance     float64 `yaml:"pagerank_tolerance"`
	PageRankMaxIterations int     `yaml:"pagerank_max_iterations"`
	EigenTolerance        float64 `yaml:"eigen_tolerance"`
}

// Config holds all application configuration.
type Config struct {
	Env        string     `yaml:"env"`
	LogLevel   string     `yaml:"log_level"`
	Thresholds Thresholds `yaml:"thresholds"`
	Centrality Centrality `yaml:"centrality"`
}

// Default returns the built-in configuration.
func Default() *Config {
	pt := profile.DefaultThresholds()
	ao := analytics.DefaultOptions()

	return &Config{
		Env:      logger.EnvDevelopment,
		LogLevel: "info",
		Thresholds: Thresholds{
			LargeNetworkSize:        pt.LargeNetworkSize,
			HighDiversityEntropy:    pt.HighDiversityEntropy,
			HighStrength:            pt.HighStrength,
			HighConnectivityDensity: dimension.DefaultHighConnectivityDensity,
		},
		Centrality: Centrality{
			PageRankDamping:       ao.Damping,
			PageRankTolerance:     ao.Tolerance,
			PageRankMaxIterations: ao.MaxIterations,
			EigenTolerance:        ao.EigenTol,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// empty) and the environment. envFiles name .env files to read; with none,
// ".env" is read if it exists. Process variables win over .env values.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	dotenv, err := readEnvFiles(envFiles)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(lookup(dotenv)); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readEnvFiles parses .env files without touching the process environment.
func readEnvFiles(files []string) (map[string]string, error) {
	if len(files) == 0 {
		if _, err := os.Stat(defaultEnvFile); err != nil {
			return nil, nil
		}
		files = []string{defaultEnvFile}
	}
	vals, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("config: read env files: %w", err)
	}

	return vals, nil
}

// lookup resolves a key from the process environment, then from dotenv.
func lookup(dotenv map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]

		return v, ok && v != ""
	}
}

func (c *Config) applyEnv(get func(string) (string, bool)) error {
	if v, ok := get(EnvEnv); ok {
		c.Env = v
	}
	if v, ok := get(EnvLogLevel); ok {
		c.LogLevel = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvLargeNetworkSize, &c.Thresholds.LargeNetworkSize},
		{EnvPageRankMaxIterations, &c.Centrality.PageRankMaxIterations},
	}
	for _, f := range ints {
		v, ok := get(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", f.key, v, err)
		}
		*f.dst = n
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvHighDiversityEntropy, &c.Thresholds.HighDiversityEntropy},
		{EnvHighStrength, &c.Thresholds.HighStrength},
		{EnvHighConnectivityDensity, &c.Thresholds.HighConnectivityDensity},
		{EnvPageRankDamping, &c.Centrality.PageRankDamping},
		{EnvPageRankTolerance, &c.Centrality.PageRankTolerance},
		{EnvEigenTolerance, &c.Centrality.EigenTolerance},
	}
	for _, f := range floats {
		v, ok := get(f.key)
		if !ok {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", f.key, v, err)
		}
		*f.dst = x
	}

	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Env != logger.EnvProduction && c.Env != logger.EnvDevelopment {
		return fmt.Errorf("%w: env %q (want %s or %s)", ErrInvalid, c.Env, logger.EnvProduction, logger.EnvDevelopment)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	if err := c.ProfileThresholds().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.DimensionThresholds().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Algorithms(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// IsProduction reports whether Env is production.
func (c *Config) IsProduction() bool { return c.Env == logger.EnvProduction }

// ProfileThresholds maps the threshold section onto profile.Thresholds.
func (c *Config) ProfileThresholds() profile.Thresholds {
	return profile.Thresholds{
		LargeNetworkSize:     c.Thresholds.LargeNetworkSize,
		HighDiversityEntropy: c.Thresholds.HighDiversityEntropy,
		HighStrength:         c.Thresholds.HighStrength,
	}
}

// DimensionThresholds maps the threshold section onto dimension.Thresholds.
func (c *Config) DimensionThresholds() dimension.Thresholds {
	return dimension.Thresholds{HighConnectivityDensity: c.Thresholds.HighConnectivityDensity}
}

// Algorithms builds the analytics Toolkit from the centrality section.
func (c *Config) Algorithms() (*analytics.Toolkit, error) {
	return analytics.New(
		analytics.WithDamping(c.Centrality.PageRankDamping),
		analytics.WithTolerance(c.Centrality.PageRankTolerance),
		analytics.WithMaxIterations(c.Centrality.PageRankMaxIterations),
		analytics.WithEigenTolerance(c.Centrality.EigenTolerance),
	)
}

// ReportOptions returns the report options this configuration implies.
func (c *Config) ReportOptions(log *zap.Logger) ([]report.Option, error) {
	algo, err := c.Algorithms()
	if err != nil {
		return nil, err
	}

	return []report.Option{
		report.WithLogger(log),
		report.WithAlgorithms(algo),
		report.WithThresholds(c.ProfileThresholds()),
		report.WithDimensionThresholds(c.DimensionThresholds()),
	}, nil
}
