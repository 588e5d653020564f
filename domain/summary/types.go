package summary

import (
	"encoding/json"
	"math"
)

// Mode says how a column was summarised.
type Mode string

const (
	ModeCategorical Mode = "categorical"
	ModeBinned      Mode = "binned"
	ModeNumeric     Mode = "numeric"
)

// FrequencyRow is one line of a frequency table.
type FrequencyRow struct {
	Value                       string  `json:"value"`
	Frequency                   int     `json:"frequency"`
	RelativeFrequency           float64 `json:"relative_frequency"`
	CumulativeRelativeFrequency float64 `json:"cumulative_relative_frequency"`
}

// Bin is a right-closed interval (Lower, Upper]. The first bin of a binned
// table also contains its lower edge.
type Bin struct {
	Lower        float64 `json:"lower"`
	Upper        float64 `json:"upper"`
	IncludeLower bool    `json:"include_lower"`
	Label        string  `json:"label"`
}

// Contains reports whether v falls in the bin.
func (b Bin) Contains(v float64) bool {
	if b.IncludeLower && v == b.Lower {
		return true
	}
	return v > b.Lower && v <= b.Upper
}

// FrequencyTable holds the rows of a frequency table in display order.
// Bins is set only for tables built from numeric intervals.
type FrequencyTable struct {
	Rows  []FrequencyRow `json:"rows"`
	Bins  []Bin          `json:"bins,omitempty"`
	Total int            `json:"total"`
}

// Len returns the number of rows.
func (t FrequencyTable) Len() int { return len(t.Rows) }

// IsEmpty is true when the table has no rows.
func (t FrequencyTable) IsEmpty() bool { return len(t.Rows) == 0 }

// Descriptive is the classic count/mean/std/min/quartiles/max summary.
// Undefined values are NaN.
type Descriptive struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// StatRow is a labelled value for display.
type StatRow struct {
	Label string
	Value float64
}

// Rows lists the statistics in the order they are shown.
func (d Descriptive) Rows() []StatRow {
	return []StatRow{
		{Label: "count", Value: float64(d.Count)},
		{Label: "mean", Value: d.Mean},
		{Label: "std", Value: d.Std},
		{Label: "min", Value: d.Min},
		{Label: "25%", Value: d.Q25},
		{Label: "50%", Value: d.Median},
		{Label: "75%", Value: d.Q75},
		{Label: "max", Value: d.Max},
	}
}

// MarshalJSON writes undefined statistics as null.
func (d Descriptive) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Count  int      `json:"count"`
		Mean   *float64 `json:"mean"`
		Std    *float64 `json:"std"`
		Min    *float64 `json:"min"`
		Q25    *float64 `json:"q25"`
		Median *float64 `json:"median"`
		Q75    *float64 `json:"q75"`
		Max    *float64 `json:"max"`
	}{
		Count:  d.Count,
		Mean:   nullable(d.Mean),
		Std:    nullable(d.Std),
		Min:    nullable(d.Min),
		Q25:    nullable(d.Q25),
		Median: nullable(d.Median),
		Q75:    nullable(d.Q75),
		Max:    nullable(d.Max),
	})
}

// HistogramBin is a half-open bin [Lower, Upper); the last bin of a
// histogram is closed on both ends.
type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Histogram is an automatically binned histogram of a numeric column.
type Histogram struct {
	Bins []HistogramBin `json:"bins"`
}

// Total is the number of values counted.
func (h Histogram) Total() int {
	total := 0
	for _, b := range h.Bins {
		total += b.Count
	}
	return total
}

// BoxStats carries the five numbers of a Tukey boxplot plus its outliers.
type BoxStats struct {
	Count        int       `json:"count"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	LowerWhisker float64   `json:"lower_whisker"`
	UpperWhisker float64   `json:"upper_whisker"`
	Outliers     []float64 `json:"outliers"`
}

// IQR is the interquartile range.
func (b BoxStats) IQR() float64 { return b.Q3 - b.Q1 }

// MarshalJSON writes undefined statistics as null.
func (b BoxStats) MarshalJSON() ([]byte, error) {
	outliers := b.Outliers
	if outliers == nil {
		outliers = []float64{}
	}
	return json.Marshal(struct {
		Count        int       `json:"count"`
		Q1           *float64  `json:"q1"`
		Median       *float64  `json:"median"`
		Q3           *float64  `json:"q3"`
		LowerWhisker *float64  `json:"lower_whisker"`
		UpperWhisker *float64  `json:"upper_whisker"`
		Outliers     []float64 `json:"outliers"`
	}{
		Count:        b.Count,
		Q1:           nullable(b.Q1),
		Median:       nullable(b.Median),
		Q3:           nullable(b.Q3),
		LowerWhisker: nullable(b.LowerWhisker),
		UpperWhisker: nullable(b.UpperWhisker),
		Outliers:     outliers,
	})
}

// DensityPoint is one sample of an estimated density.
type DensityPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DensityCurve is a kernel density estimate sampled on an even grid.
// It is empty when the data has fewer than two distinct values.
type DensityCurve struct {
	Bandwidth float64        `json:"bandwidth"`
	Points    []DensityPoint `json:"points"`
}

// IsEmpty reports whether the curve has no samples.
func (c DensityCurve) IsEmpty() bool { return len(c.Points) == 0 }

func nullable(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
