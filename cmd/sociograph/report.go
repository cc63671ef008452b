// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sociograph/roster"
	"github.com/katalvlaran/sociograph/session"
)

var reportFormat string

// rosterFile is the on-disk input: rows, explicit edges and groups whose
// members all know each other. JSON input parses as YAML.
type rosterFile struct {
	Contacts []roster.RawEntry `yaml:"contacts"`
	Edges    []roster.Edge     `yaml:"edges"`
	Groups   [][]string        `yaml:"groups"`
}

var reportCmd = &cobra.Command{
	Use:   "report <roster-file>",
	Short: "Analyse a roster file",
	Long: `Analyse a roster file and print the report.

The file lists contacts (name, domain, tie_strength 1-5, valence), edges (a, b)
and groups (lists of names that all know each other). Use "sociograph sample"
for an example.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", FormatJSON, "output format (json or yaml)")
}

func runReport(cmd *cobra.Command, args []string) error {
	in, err := readRosterFile(args[0])
	if err != nil {
		return err
	}

	s := session.New(session.WithLogger(log))
	if _, err := s.Finalize(in.Contacts); err != nil {
		return err
	}
	for _, e := range in.Edges {
		if out := s.AddEdge(e.A, e.B); out != session.EdgeAdded {
			log.Warn("edge not added", zap.Stringer("edge", e), zap.Stringer("outcome", out))
		}
	}
	for i, g := range in.Groups {
		if _, err := s.AddEdgesForGroup(g); err != nil {
			return fmt.Errorf("group %d: %w", i, err)
		}
	}

	opts, err := cfg.ReportOptions(log)
	if err != nil {
		return err
	}
	rep, err := s.Report(opts...)
	if err != nil {
		return err
	}

	return encode(cmd.OutOrStdout(), reportFormat, rep)
}

func readRosterFile(path string) (*rosterFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	var in rosterFile
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}

	return &in, nil
}
