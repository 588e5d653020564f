package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"univar/adapters/chart"
	"univar/adapters/tabular"
	"univar/app"
	"univar/domain/dataset"
	"univar/domain/summary"
	"univar/internal"
	"univar/internal/config"
	"univar/ports"

	"github.com/spf13/cobra"
)

func newColumnsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "columns FILE",
		Short: "List the columns of a file and how each is summarised",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}
			service := app.NewAnalysisService(cliLogger(cfg))
			return printColumns(cmd.OutOrStdout(), ds, service.Columns(ds))
		},
	}
}

func newDescribeCmd(cfg *config.Config) *cobra.Command {
	var column string
	var categorical bool
	var bins int
	var asJSON bool
	var chartsDir string

	cmd := &cobra.Command{
		Use:   "describe FILE",
		Short: "Summarise one column the way the web page does",
		Long: `Summarise one column of a CSV, TSV or XLSX file.

Categorical columns get a frequency table. Numeric columns get descriptive
statistics, or a binned frequency table with --categorical.

Example: univar-cli describe people.csv --column age --categorical --bins 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if bins < 1 || bins > cfg.Analysis.MaxBins {
				return fmt.Errorf("--bins must be between 1 and %d", cfg.Analysis.MaxBins)
			}

			ds, err := loadDataset(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}
			if column == "" {
				if len(ds.Columns) == 0 {
					return fmt.Errorf("%s has no columns", args[0])
				}
				column = ds.Columns[0].Name
			}

			logger := cliLogger(cfg)
			report, err := app.NewAnalysisService(logger).Analyze(ds, app.AnalysisRequest{
				Column:             column,
				TreatAsCategorical: categorical,
				Bins:               bins,
			})
			if err != nil {
				return err
			}

			if chartsDir != "" {
				renderer := chart.NewRenderer(cfg.Chart.Width, cfg.Chart.Height, logger)
				if err := writeCharts(chartsDir, renderer, report); err != nil {
					return err
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			return printReport(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "Column to summarise (default: first column)")
	cmd.Flags().BoolVar(&categorical, "categorical", false, "Treat a numeric column as categorical by binning it")
	cmd.Flags().IntVar(&bins, "bins", cfg.Analysis.DefaultBins, "Number of bins for --categorical")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().StringVar(&chartsDir, "charts", "", "Write the report's charts as PNG files into this directory")

	return cmd
}

// cliLogger stays quiet below warnings unless LOG_LEVEL asks otherwise
func cliLogger(cfg *config.Config) *internal.Logger {
	if os.Getenv("LOG_LEVEL") == "" {
		return internal.NewLogger(internal.LogLevelWarn)
	}
	return internal.NewLogger(cfg.Logging.Level)
}

func loadDataset(ctx context.Context, cfg *config.Config, path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() > cfg.Upload.MaxBytes() {
		return nil, fmt.Errorf("%s is larger than %dMB", path, cfg.Upload.MaxMB)
	}

	return tabular.NewReader(cliLogger(cfg)).Read(ctx, filepath.Base(path), f)
}

func printColumns(w io.Writer, ds *dataset.Dataset, columns []app.ColumnInfo) error {
	fmt.Fprintf(w, "%s: %d rows\n\n", ds.Name, ds.RowCount)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tKIND\tMISSING")
	for _, c := range columns {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", c.Name, c.Kind, c.MissingCount)
	}
	return tw.Flush()
}

func printReport(w io.Writer, report *app.Report) error {
	fmt.Fprintf(w, "Column: %s (%s, %d rows, %d missing)\n\n",
		report.Column, report.Kind, report.RowCount, report.MissingCount)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	switch report.Mode {
	case summary.ModeCategorical, summary.ModeBinned:
		fmt.Fprintln(w, "Frequency Distribution")
		fmt.Fprintln(tw, "Unique Values\tFrequencies\tRelative Frequencies\tCumulative Relative Frequencies\t")
		for _, row := range report.Frequencies.Rows {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t\n", row.Value, row.Frequency,
				formatFloat(row.RelativeFrequency, 6), formatFloat(row.CumulativeRelativeFrequency, 6))
		}
	case summary.ModeNumeric:
		fmt.Fprintln(w, "Descriptive Statistics")
		for _, row := range report.Describe.Rows() {
			fmt.Fprintf(tw, "%s\t%s\t\n", row.Label, formatFloat(row.Value, 6))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if report.Box != nil && len(report.Box.Outliers) > 0 {
		fmt.Fprintf(w, "\nOutliers: %s\n", joinFloats(report.Box.Outliers))
	}
	return nil
}

// writeCharts saves every drawable chart of report as <column>_<chart>.png
func writeCharts(dir string, renderer ports.ChartRenderer, report *app.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	charts, err := app.RenderCharts(renderer, report)
	if err != nil {
		return err
	}

	base := safeFileName(report.Column)
	files := map[string]*ports.Image{
		"bar":       charts.Bar,
		"histogram": charts.Histogram,
		"boxplot":   charts.BoxPlot,
		"density":   charts.Density,
	}
	for name, img := range files {
		if img == nil {
			continue
		}
		path := filepath.Join(dir, base+"_"+name+".png")
		if err := os.WriteFile(path, img.PNG, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

func safeFileName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if cleaned == "" {
		return "column"
	}
	return cleaned
}

func formatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func joinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
