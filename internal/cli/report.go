package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/epitrend/dataset"
	"github.com/sartorproj/epitrend/internal/output"
	"github.com/sartorproj/epitrend/timeseries"
)

const (
	chartDaily    = "daily"
	chartDoubling = "doubling"
	chartAll      = "all"
)

// regionReport is the encoded form of one region's charts
type regionReport struct {
	Name     string           `json:"name" yaml:"name"`
	Daily    []timeseries.Row `json:"daily,omitempty" yaml:"daily,omitempty"`
	Doubling []timeseries.Row `json:"doubling,omitempty" yaml:"doubling,omitempty"`
}

var reportCmd = &cobra.Command{
	Use:   "report FILE...",
	Short: "Print daily and doubling charts per region",
	Long: `Print, for each region file, the daily chart (new cases, their trend and
moving average, cumulative cases, active, recovered, new deaths, deaths) and
the doubling chart (days for cases and deaths to double).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringP("output", "o", "", "output format: table, json, or yaml (default from config)")
	reportCmd.Flags().String("chart", chartAll, "charts to print: daily, doubling, or all")
	reportCmd.Flags().IntP("jobs", "j", 0, "files loaded in parallel (default GOMAXPROCS)")
}

func runReport(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	chart, _ := cmd.Flags().GetString("chart")
	switch chart {
	case chartDaily, chartDoubling, chartAll:
	default:
		return &output.CLIError{
			Summary:  fmt.Sprintf("unknown chart: %s", chart),
			ExitCode: output.ExitUsageError,
		}
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	regions, err := loadRegions(cmd.Context(), newLoader(), args, jobs)
	if err != nil {
		return err
	}

	opts := cfg.AnalysisOptions()
	reports := make([]regionReport, 0, len(regions))
	tables := make([][2]*timeseries.Table, 0, len(regions))
	for _, data := range regions {
		region := data.Region(opts)

		daily, doubling, err := regionCharts(region, chart)
		if err != nil {
			return fmt.Errorf("charting %s: %w", region.Name, err)
		}

		report := regionReport{Name: region.Name}
		if daily != nil {
			report.Daily = daily.Rows
		}
		if doubling != nil {
			report.Doubling = doubling.Rows
		}
		reports = append(reports, report)
		tables = append(tables, [2]*timeseries.Table{daily, doubling})
	}

	if format != output.FormatTable {
		return output.Encode(cmd.OutOrStdout(), format, reports)
	}

	printer := newPrinter(cmd)
	for i, report := range reports {
		daily, doubling := tables[i][0], tables[i][1]
		if daily != nil {
			printer.Header(report.Name)
			if err := renderChart(printer, daily, false); err != nil {
				return err
			}
		}
		if doubling != nil {
			printer.Header(report.Name + " (doubling)")
			if err := renderChart(printer, doubling, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// regionCharts flattens the requested overlays. Charts that were not
// requested are nil.
func regionCharts(region *dataset.Region, chart string) (daily, doubling *timeseries.Table, err error) {
	if chart != chartDoubling {
		daily, err = timeseries.Flatten(region.DailyOverlays()...)
		if err != nil {
			return nil, nil, err
		}
	}
	if chart != chartDaily {
		doubling, err = timeseries.Flatten(region.DoublingOverlays()...)
		if err != nil {
			return nil, nil, err
		}
	}
	return daily, doubling, nil
}

// renderChart writes a flattened chart as a table keyed by date. Days
// without a value for a series are left blank.
func renderChart(printer *output.Printer, chart *timeseries.Table, growth bool) error {
	if len(chart.Rows) == 0 {
		printer.Warning("not enough data")
		return nil
	}

	table := output.NewTable(printer.Out(), append([]string{"Date"}, chart.Labels...))
	for _, row := range chart.Rows {
		cells := make([]string, 0, len(chart.Labels)+1)
		cells = append(cells, chart.TimestampFormatter(row.Timestamp))
		for _, label := range chart.Labels {
			v, ok := row.Value(label)
			switch {
			case !ok:
				cells = append(cells, "")
			case growth:
				cells = append(cells, printer.Growth(output.Number(v), v))
			default:
				cells = append(cells, output.Number(v))
			}
		}
		table.AddRow(cells)
	}
	return table.Render()
}
