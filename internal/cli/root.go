// Package cli contains the epitrend commands
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sartorproj/epitrend/internal/config"
	"github.com/sartorproj/epitrend/internal/output"
)

var (
	cfgFile   string
	verbose   bool
	quiet     bool
	colorMode string
	cfg       *config.Config
	logger    *slog.Logger
	version   = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "epitrend",
	Short: "Epidemic growth and trend reports",
	Long: `epitrend reads cumulative case counts per region and reports daily
changes, smoothed averages, doubling intervals and trend extrapolations.

Region files are JSON documents ({"Confirmed": {"MM/DD/YYYY": n}, "Death": ...})
or CSV files with date, confirmed, deaths and optional recovered columns.

Example usage:
  epitrend summary data/*.json          # Latest figures per region
  epitrend report king.json             # Daily and doubling tables
  epitrend report -o json king.json     # Same report as JSON`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd.ErrOrStderr())
	},
}

// Execute runs the command line and returns the process exit code.
// Cancelling ctx aborts region loading.
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return output.ExitSuccess
	}

	printer := newPrinter(rootCmd)
	var cliErr *output.CLIError
	if errors.As(err, &cliErr) {
		printer.FormatError(cliErr)
		return cliErr.ExitCode
	}
	printer.Error("%s", err)
	return output.ExitGeneral
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .epitrend.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress headers and warnings")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "color output: auto, always, or never")
}

// initConfig loads the configuration and sets up the logger.
func initConfig(stderr io.Writer) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return &output.CLIError{
			Summary:    "invalid configuration",
			Detail:     err.Error(),
			Suggestion: "Check .epitrend.yaml syntax or use --config flag",
			ExitCode:   output.ExitConfigError,
		}
	}

	logger = newLogger(stderr, cfg.Logging, verbose)
	slog.SetDefault(logger)

	logger.Debug("configuration loaded",
		"config_file", cfgFile,
		"output_format", cfg.Output.Format,
		"regression_window", cfg.Analysis.RegressionWindow,
		"cache_ttl", cfg.Cache.TTL,
	)
	return nil
}

func newLogger(w io.Writer, logging config.LoggingConfig, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// newPrinter builds a printer on the command's writers honoring --color,
// --quiet and output.colors.
func newPrinter(cmd *cobra.Command) *output.Printer {
	mode, err := output.ParseColorMode(colorMode)
	if err != nil {
		mode = output.ColorAuto
	}
	configColors := cfg == nil || cfg.Output.Colors
	return output.NewPrinterWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.PrinterOptions{
		ColorMode:    mode,
		ConfigColors: configColors,
		Quiet:        quiet,
	})
}

// outputFormat resolves the --output flag against output.format.
func outputFormat(cmd *cobra.Command) (output.Format, error) {
	name, _ := cmd.Flags().GetString("output")
	if name == "" {
		name = cfg.Output.Format
	}
	format, err := output.ParseFormat(name)
	if err != nil {
		return "", &output.CLIError{
			Summary:  fmt.Sprintf("unknown output format: %s", name),
			ExitCode: output.ExitUsageError,
		}
	}
	return format, nil
}
