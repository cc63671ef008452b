// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sociograph/profile"
	"github.com/katalvlaran/sociograph/report"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())

	return out.String()
}

func TestCommands_Definition(t *testing.T) {
	t.Run("report", func(t *testing.T) {
		assert.Equal(t, "report <roster-file>", reportCmd.Use)
		f := reportCmd.Flags().Lookup("format")
		require.NotNil(t, f)
		assert.Equal(t, "f", f.Shorthand)
		assert.Equal(t, FormatJSON, f.DefValue)
		assert.Error(t, reportCmd.Args(reportCmd, nil))
	})
	t.Run("sample", func(t *testing.T) {
		require.NotNil(t, sampleCmd.Flags().Lookup("seed"))
		assert.Equal(t, "1", sampleCmd.Flags().Lookup("seed").DefValue)
	})
	t.Run("persistent flags", func(t *testing.T) {
		for _, name := range []string{"config", "env-file", "log-level"} {
			assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
		}
	})
}

func TestProfilesCommand(t *testing.T) {
	out := run(t, "profiles", "--format", "json")
	var rows []profileRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 8)
	assert.Equal(t, profile.CosmopolitanLinchpin, rows[0].Profile.Name)
	assert.Equal(t, profile.InsularOutpost, rows[7].Profile.Name)
}

func TestSampleThenReport(t *testing.T) {
	sample := run(t, "sample", "--seed", "5", "--format", "yaml")
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	var in rosterFile
	require.NoError(t, yaml.Unmarshal([]byte(sample), &in))
	assert.Len(t, in.Contacts, 14)

	out := run(t, "report", path, "--format", "json")
	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.False(t, rep.Insufficient)
	assert.Len(t, rep.Contacts, 13)
	require.NotNil(t, rep.Profile)
	assert.True(t, rep.Profile.LargeNetwork)
	assert.True(t, rep.Profile.HighDiversity)
	assert.Equal(t, 1, rep.Metrics.DomainCounts["Community/Volunteering"])
}

func TestReportCommand_Groups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "contacts": [
    {"name": "Ana", "domain": "Family/Friends", "tie_strength": 4, "valence": "Positive"},
    {"name": "Ben", "domain": "Family/Friends", "tie_strength": 4, "valence": "Positive"},
    {"name": "Cy",  "domain": "Family/Friends", "tie_strength": 4, "valence": "Positive"}
  ],
  "edges": [{"a": "Ana", "b": "Ana"}],
  "groups": [["Ana", "Ben", "Cy"]]
}`), 0o600))

	out := run(t, "report", path, "--format", "yaml")
	var rep map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	metrics := rep["metrics"].(map[string]interface{})
	assert.Equal(t, 3, metrics["edge_count"])
	assert.EqualValues(t, 1, metrics["density"])
	prof := rep["profile"].(map[string]interface{})["profile"].(map[string]interface{})
	assert.Equal(t, profile.LoyalCore, prof["name"])
}

func TestEncode_UnknownFormat(t *testing.T) {
	assert.Error(t, encode(&bytes.Buffer{}, "xml", struct{}{}))
}
