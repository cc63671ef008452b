// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sociograph/config"
	"github.com/katalvlaran/sociograph/logger"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	configPath string
	envFile    string
	logLevel   string

	cfg *config.Config
	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "sociograph",
	Short: "Personal network analysis",
	Long: `sociograph aggregates a roster of contacts, builds their acquaintance graph,
computes structural metrics and classifies the network into one of eight
social-capital profiles with three dimension ratings.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { logger.Sync(log) },
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file with SOCIOGRAPH_* overrides (default .env if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads configuration and builds the logger before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	loaded, err := config.Load(configPath, envFiles...)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.LogLevel = logLevel
	}
	l, err := logger.New(loaded.Env, loaded.LogLevel)
	if err != nil {
		return err
	}
	cfg, log = loaded, l
	log.Debug("configuration loaded", zap.String("command", cmd.Name()), zap.String("config", configPath))

	return nil
}

// encode writes v to w in the requested format.
func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatJSON, FormatYAML)
	}
}
