package cli

import (
	"github.com/spf13/cobra"

	"github.com/sartorproj/epitrend/dataset"
	"github.com/sartorproj/epitrend/internal/output"
	"github.com/sartorproj/epitrend/timeseries"
)

var summaryCmd = &cobra.Command{
	Use:   "summary FILE...",
	Short: "Print the latest figures per region",
	Long: `Print one line per region file with the latest cumulative and new cases,
deaths, the days for cases to double and the trend model fitted to new cases.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringP("output", "o", "", "output format: table, json, or yaml (default from config)")
	summaryCmd.Flags().IntP("jobs", "j", 0, "files loaded in parallel (default GOMAXPROCS)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	regions, err := loadRegions(cmd.Context(), newLoader(), args, jobs)
	if err != nil {
		return err
	}

	opts := cfg.AnalysisOptions()
	summaries := make([]dataset.Summary, 0, len(regions))
	for _, data := range regions {
		summaries = append(summaries, data.Region(opts).Summary())
	}

	if format != output.FormatTable {
		return output.Encode(cmd.OutOrStdout(), format, summaries)
	}

	printer := newPrinter(cmd)
	table := output.NewTable(printer.Out(), []string{
		"Region", "Date", "Cases", "New", "New %", "Deaths", "New Deaths", "Days to Double", "Trend",
	})
	for _, s := range summaries {
		date := ""
		if !s.Date.IsZero() {
			date = s.Date.Format(timeseries.DateKeyLayout)
		}
		doubling := cell(s.DaysToDouble, output.Number)
		if s.DaysToDouble != nil {
			doubling = printer.Growth(doubling, *s.DaysToDouble)
		}
		table.AddRow([]string{
			s.Name,
			date,
			cell(s.Confirmed, output.Number),
			cell(s.NewCases, output.Number),
			cell(s.NewPercent, output.Percent),
			cell(s.Deaths, output.Number),
			cell(s.NewDeaths, output.Number),
			doubling,
			s.TrendModel,
		})
	}
	return table.Render()
}

func cell(v *float64, format func(float64) string) string {
	if v == nil {
		return "-"
	}
	return format(*v)
}
