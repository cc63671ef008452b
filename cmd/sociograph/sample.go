// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sociograph/builder"
	"github.com/katalvlaran/sociograph/roster"
)

var (
	sampleSeed   int64
	sampleFormat string
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a demo roster file",
	Long: `Print a demo roster file: a close-knit family circle, a work star, a loose
hobby cluster and one contact seen in two domains.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fx, err := sampleFixture(sampleSeed)
		if err != nil {
			return err
		}
		return encode(cmd.OutOrStdout(), sampleFormat, fx)
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 1, "seed for the random hobby cluster")
	sampleCmd.Flags().StringVarP(&sampleFormat, "format", "f", FormatYAML, "output format (json or yaml)")
}

func sampleFixture(seed int64) (*builder.Fixture, error) {
	return builder.Build([]builder.BuilderOption{builder.WithSeed(seed)},
		builder.Scoped([]builder.BuilderOption{
			builder.WithPrefixIDs("family-"),
			builder.WithDomain(roster.FamilyFriends),
			builder.WithStrength(5),
		}, builder.Complete(4)),
		builder.Scoped([]builder.BuilderOption{
			builder.WithPrefixIDs("work-"),
			builder.WithDomain(roster.WorkProfessional),
			builder.WithStrengthFn(builder.UniformStrengthFn(2, 4)),
			builder.WithValenceFn(builder.CyclingValenceFn(roster.Positive, roster.Neutral)),
		}, builder.Star(5)),
		builder.Scoped([]builder.BuilderOption{
			builder.WithPrefixIDs("hobby-"),
			builder.WithDomain(roster.HobbiesRecreational),
			builder.WithStrengthFn(builder.UniformStrengthFn(1, 3)),
			builder.WithValence(roster.Neutral),
		}, builder.RandomSparse(4, 0.5)),
		// The work hub also volunteers and knows the family circle.
		builder.Entry(roster.RawEntry{
			Name: "work-4", Domain: roster.CommunityVolunteering, TieStrength: 4, Valence: roster.Positive,
		}),
		builder.Link("work-4", "family-0"),
		builder.Link("hobby-9", "family-1"),
	)
}
