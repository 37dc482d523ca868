package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/epitrend/internal/config"
	"github.com/sartorproj/epitrend/internal/output"
)

// writeRegion writes a JSON region whose cases double every two days.
func writeRegion(t *testing.T, dir, name string, days int) string {
	t.Helper()

	confirmed := make([]string, 0, days)
	deaths := make([]string, 0, days)
	for i := 0; i < days; i++ {
		date := fmt.Sprintf("03/%02d/2020", i+1)
		cases := math.Round(10 * math.Pow(2, float64(i)/2))
		confirmed = append(confirmed, fmt.Sprintf("%q: %v", date, cases))
		deaths = append(deaths, fmt.Sprintf("%q: %v", date, math.Floor(cases/20)))
	}
	doc := fmt.Sprintf(`{"Name": %q, "Confirmed": {%s}, "Death": {%s}}`,
		name, strings.Join(confirmed, ", "), strings.Join(deaths, ", "))

	path := filepath.Join(dir, strings.ToLower(name)+".json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

// run executes the root command with a colorless config and fresh flags.
func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	return runWithConfig(t, "", args...)
}

// runWithConfig is run with extra YAML appended to the config file.
func runWithConfig(t *testing.T, extra string, args ...string) (string, string, int) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), ".epitrend.yaml")
	content := "output:\n  colors: false\ncache:\n  ttl: 0s\n" + extra
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	require.NoError(t, rootCmd.PersistentFlags().Set("quiet", "false"))
	require.NoError(t, rootCmd.PersistentFlags().Set("verbose", "false"))
	require.NoError(t, rootCmd.PersistentFlags().Set("color", "never"))
	for _, cmd := range []*cobraFlags{
		{reportCmd.Flags().Set, map[string]string{"output": "", "chart": chartAll, "jobs": "0"}},
		{summaryCmd.Flags().Set, map[string]string{"output": "", "jobs": "0"}},
		{versionCmd.Flags().Set, map[string]string{"short": "false", "json": "false"}},
	} {
		for name, value := range cmd.defaults {
			require.NoError(t, cmd.set(name, value))
		}
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	code := Execute(context.Background())
	return stdout.String(), stderr.String(), code
}

type cobraFlags struct {
	set      func(name, value string) error
	defaults map[string]string
}

func TestSummaryTable(t *testing.T) {
	dir := t.TempDir()
	king := writeRegion(t, dir, "King", 12)
	pierce := writeRegion(t, dir, "Pierce", 3)

	stdout, _, code := run(t, "summary", king, pierce)
	require.Equal(t, output.ExitSuccess, code)

	assert.Contains(t, stdout, "Region")
	assert.Contains(t, stdout, "King")
	assert.Contains(t, stdout, "Pierce")
	assert.Contains(t, stdout, "03/12/2020")
	assert.Less(t, strings.Index(stdout, "King"), strings.Index(stdout, "Pierce"))
}

func TestSummaryJSON(t *testing.T) {
	dir := t.TempDir()
	king := writeRegion(t, dir, "King", 12)

	stdout, _, code := run(t, "summary", "-o", "json", king)
	require.Equal(t, output.ExitSuccess, code)

	var summaries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "King", summaries[0]["name"])
	assert.InDelta(t, math.Round(10*math.Pow(2, 5.5)), summaries[0]["confirmed"], 1e-9)
	assert.InDelta(t, 2.0, summaries[0]["daysToDouble"], 0.1)
}

func TestReportTable(t *testing.T) {
	king := writeRegion(t, t.TempDir(), "King", 12)

	stdout, _, code := run(t, "report", king)
	require.Equal(t, output.ExitSuccess, code)

	assert.Contains(t, stdout, "King (doubling)")
	assert.Contains(t, stdout, "New Cases")
	assert.Contains(t, stdout, "Cases Days to Double")
	assert.Contains(t, stdout, "03/01")
	assert.Contains(t, stdout, "03/12")
}

func TestReportJSONDailyOnly(t *testing.T) {
	king := writeRegion(t, t.TempDir(), "King", 12)

	stdout, _, code := run(t, "report", "--output", "json", "--chart", "daily", king)
	require.Equal(t, output.ExitSuccess, code)

	var reports []struct {
		Name     string           `json:"name"`
		Daily    []map[string]any `json:"daily"`
		Doubling []map[string]any `json:"doubling"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "King", reports[0].Name)
	assert.Len(t, reports[0].Daily, 12)
	assert.Empty(t, reports[0].Doubling)
	assert.Equal(t, 10.0, reports[0].Daily[0]["Cases"])
	assert.Contains(t, reports[0].Daily[0], "timestamp")
}

func TestReportYAMLDoubling(t *testing.T) {
	king := writeRegion(t, t.TempDir(), "King", 12)

	stdout, _, code := run(t, "report", "-o", "yaml", "--chart", "doubling", "-j", "1", king)
	require.Equal(t, output.ExitSuccess, code)

	var reports []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &reports))
	require.Len(t, reports, 1)
	assert.Len(t, reports[0]["doubling"], 12-7)
	assert.NotContains(t, reports[0], "daily")
}

func TestSummaryCSVLayoutFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snohomish.csv")
	csvData := "day;cases;fatalities\n2020/03/01;5;0\n2020/03/02;8;1\n"
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o600))

	layout := `csv:
  date_column: day
  confirmed_column: cases
  deaths_column: fatalities
  date_format: "2006/01/02"
  delimiter: ";"
`
	stdout, _, code := runWithConfig(t, layout, "summary", "-o", "json", path)
	require.Equal(t, output.ExitSuccess, code)

	var summaries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "snohomish", summaries[0]["name"])
	assert.Equal(t, 8.0, summaries[0]["confirmed"])
	assert.Equal(t, 1.0, summaries[0]["deaths"])

	_, stderr, code := run(t, "summary", path)
	assert.Equal(t, output.ExitDataError, code)
	assert.Contains(t, stderr, "cannot load region file")
}

func TestReportErrors(t *testing.T) {
	king := writeRegion(t, t.TempDir(), "King", 12)

	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"missing file", []string{"report", filepath.Join(t.TempDir(), "none.json")}, output.ExitDataError, "cannot load region file"},
		{"unsupported file", []string{"summary", strings.TrimSuffix(king, ".json") + ".txt"}, output.ExitDataError, "cannot load region file"},
		{"unknown format", []string{"report", "-o", "csv", king}, output.ExitUsageError, "unknown output format"},
		{"unknown chart", []string{"report", "--chart", "weekly", king}, output.ExitUsageError, "unknown chart"},
		{"no files", []string{"summary"}, output.ExitGeneral, "requires at least 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := run(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestVersion(t *testing.T) {
	SetBuildInfo("abc1234", "2026-02-06T07:16:38Z")

	stdout, _, code := run(t, "version")
	require.Equal(t, output.ExitSuccess, code)
	for _, field := range []string{"epitrend version", "commit:", "built:", "go version:", "platform:"} {
		assert.Contains(t, stdout, field)
	}

	stdout, _, code = run(t, "version", "--short")
	require.Equal(t, output.ExitSuccess, code)
	assert.Equal(t, version, strings.TrimSpace(stdout))

	stdout, _, code = run(t, "version", "--json")
	require.Equal(t, output.ExitSuccess, code)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, "abc1234", info["commit"])
}

func TestNewLogger(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	l := newLogger(&buf, config.LoggingConfig{Level: "warn", Format: "text"}, false)
	assert.False(t, l.Enabled(ctx, slog.LevelInfo))
	assert.True(t, l.Enabled(ctx, slog.LevelWarn))

	l = newLogger(&buf, config.LoggingConfig{Level: "warn", Format: "json"}, true)
	assert.True(t, l.Enabled(ctx, slog.LevelDebug))
	l.Debug("loaded", "region", "King")
	assert.Contains(t, buf.String(), `"region":"King"`)
}
