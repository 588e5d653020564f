package app

import (
	"errors"
	"fmt"
	"time"

	"univar/domain/core"
	"univar/domain/dataset"
	"univar/domain/summary"
	"univar/internal"
	"univar/internal/analysis/univariate"
	"univar/ports"
)

// AnalysisService summarises one column of a dataset at a time
type AnalysisService struct {
	densityPoints int
	logger        *internal.Logger
}

// AnalysisRequest selects the column and how to treat it
type AnalysisRequest struct {
	Column             string
	TreatAsCategorical bool
	Bins               int
}

// ColumnInfo describes a column for the selector
type ColumnInfo struct {
	Name         string             `json:"name"`
	Kind         dataset.ColumnKind `json:"kind"`
	MissingCount int                `json:"missing_count"`
}

// Report is everything shown for the selected column. Exactly one of
// Frequencies or Describe is set; the numeric plots accompany Describe.
type Report struct {
	Column       string             `json:"column"`
	Kind         dataset.ColumnKind `json:"kind"`
	Mode         summary.Mode       `json:"mode"`
	Bins         int                `json:"bins,omitempty"`
	RowCount     int                `json:"row_count"`
	MissingCount int                `json:"missing_count"`

	Frequencies *summary.FrequencyTable `json:"frequencies,omitempty"`
	Describe    *summary.Descriptive    `json:"describe,omitempty"`
	Histogram   *summary.Histogram      `json:"histogram,omitempty"`
	Box         *summary.BoxStats       `json:"boxplot,omitempty"`
	Density     *summary.DensityCurve   `json:"density,omitempty"`
}

// NewAnalysisService creates an analysis service
func NewAnalysisService(logger *internal.Logger) *AnalysisService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &AnalysisService{
		densityPoints: univariate.DefaultDensityPoints,
		logger:        logger.WithComponent("Analysis"),
	}
}

// Columns lists the dataset's columns in header order
func (s *AnalysisService) Columns(ds *dataset.Dataset) []ColumnInfo {
	if ds == nil {
		return nil
	}
	infos := make([]ColumnInfo, len(ds.Columns))
	for i, c := range ds.Columns {
		infos[i] = ColumnInfo{Name: c.Name, Kind: c.Kind, MissingCount: c.MissingCount()}
	}
	return infos
}

// Analyze computes the summary for req.Column. Categorical columns always
// get a frequency table; numeric ones get binned frequencies when
// TreatAsCategorical is set and descriptive statistics otherwise.
func (s *AnalysisService) Analyze(ds *dataset.Dataset, req AnalysisRequest) (*Report, error) {
	if ds == nil {
		return nil, core.ErrNoDataset
	}
	col, err := ds.Column(req.Column)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	report := &Report{
		Column:       col.Name,
		Kind:         col.Kind,
		RowCount:     col.Len(),
		MissingCount: col.MissingCount(),
	}

	switch {
	case !col.IsNumeric():
		report.Mode = summary.ModeCategorical
		table := univariate.Frequencies(col.Values())
		report.Frequencies = &table

	case req.TreatAsCategorical:
		report.Mode = summary.ModeBinned
		report.Bins = req.Bins
		table, err := univariate.BinnedFrequencies(col.Numbers(), req.Bins)
		if err != nil {
			return nil, err
		}
		report.Frequencies = &table

	default:
		report.Mode = summary.ModeNumeric
		numbers := col.Numbers()
		describe := univariate.Describe(numbers)
		hist := univariate.AutoHistogram(numbers)
		box := univariate.BoxPlot(numbers)
		density := univariate.Density(numbers, s.densityPoints)
		report.Describe = &describe
		report.Histogram = &hist
		report.Box = &box
		report.Density = &density
	}

	s.logger.Debug("column %q summarised as %s in %s", col.Name, report.Mode, time.Since(start))
	return report, nil
}

// Charts holds the rendered images for a report. Charts with no data to
// draw are left nil.
type Charts struct {
	Bar       *ports.Image
	Histogram *ports.Image
	BoxPlot   *ports.Image
	Density   *ports.Image
}

// IsEmpty reports whether no chart was rendered
func (c Charts) IsEmpty() bool {
	return c.Bar == nil && c.Histogram == nil && c.BoxPlot == nil && c.Density == nil
}

// RenderCharts draws the charts that go with the report. Render failures
// are collected and returned together; successful charts are still set.
func RenderCharts(renderer ports.ChartRenderer, report *Report) (Charts, error) {
	var charts Charts
	var errs []error

	keep := func(dst **ports.Image, img ports.Image, err error) {
		switch {
		case err == nil:
			*dst = &img
		case errors.Is(err, ports.ErrNothingToDraw):
		default:
			errs = append(errs, err)
		}
	}

	if report.Frequencies != nil {
		img, err := renderer.Bar("Bar Chart", *report.Frequencies)
		keep(&charts.Bar, img, err)
	}
	if report.Histogram != nil {
		img, err := renderer.Histogram("Histogram", *report.Histogram)
		keep(&charts.Histogram, img, err)
	}
	if report.Box != nil {
		img, err := renderer.BoxPlot("Boxplot", *report.Box)
		keep(&charts.BoxPlot, img, err)
	}
	if report.Density != nil {
		img, err := renderer.Density("Density Plot", *report.Density)
		keep(&charts.Density, img, err)
	}

	if len(errs) > 0 {
		return charts, fmt.Errorf("rendering charts for %q: %w", report.Column, errors.Join(errs...))
	}
	return charts, nil
}
