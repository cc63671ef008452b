// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sociograph/profile"
)

var profilesFormat string

// profileRow pairs an archetype with the booleans that select it.
type profileRow struct {
	Large   bool            `json:"large" yaml:"large"`
	Diverse bool            `json:"diverse" yaml:"diverse"`
	Strong  bool            `json:"strong" yaml:"strong"`
	Profile profile.Profile `json:"profile" yaml:"profile"`
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the eight network profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return encode(cmd.OutOrStdout(), profilesFormat, profileTable())
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.Flags().StringVarP(&profilesFormat, "format", "f", FormatYAML, "output format (json or yaml)")
}

func profileTable() []profileRow {
	rows := make([]profileRow, 0, 8)
	for _, large := range []bool{true, false} {
		for _, diverse := range []bool{true, false} {
			for _, strong := range []bool{true, false} {
				rows = append(rows, profileRow{large, diverse, strong, profile.Lookup(large, diverse, strong)})
			}
		}
	}

	return rows
}
