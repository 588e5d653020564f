package univariate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	d := Describe([]float64{5, 1, 4, 2, 3})

	assert.Equal(t, 5, d.Count)
	assert.InDelta(t, 3.0, d.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), d.Std, 1e-12)
	assert.Equal(t, 1.0, d.Min)
	assert.InDelta(t, 2.0, d.Q25, 1e-12)
	assert.InDelta(t, 3.0, d.Median, 1e-12)
	assert.InDelta(t, 4.0, d.Q75, 1e-12)
	assert.Equal(t, 5.0, d.Max)
}

func TestDescribe_Interpolates(t *testing.T) {
	d := Describe([]float64{1, 2, 3, 4})

	assert.InDelta(t, 1.75, d.Q25, 1e-12)
	assert.InDelta(t, 2.5, d.Median, 1e-12)
	assert.InDelta(t, 3.25, d.Q75, 1e-12)
}

func TestDescribe_Degenerate(t *testing.T) {
	empty := Describe(nil)
	assert.Equal(t, 0, empty.Count)
	for _, row := range empty.Rows()[1:] {
		assert.True(t, math.IsNaN(row.Value), row.Label)
	}

	single := Describe([]float64{7})
	assert.Equal(t, 1, single.Count)
	assert.True(t, math.IsNaN(single.Std))
	assert.Equal(t, 7.0, single.Mean)
	assert.Equal(t, 7.0, single.Min)
	assert.Equal(t, 7.0, single.Median)
	assert.Equal(t, 7.0, single.Max)
}

func TestDescribe_Ordered(t *testing.T) {
	samples := [][]float64{
		{3},
		{2, 2, 2},
		{-10, 0, 10},
		{0.1, 0.4, 0.2, 9.9, 3.3, 3.3, 1.1},
		{1e6, -1e6, 42, 7, 7, 7, 99, -3},
	}
	for _, s := range samples {
		d := Describe(s)
		assert.LessOrEqual(t, d.Min, d.Q25)
		assert.LessOrEqual(t, d.Q25, d.Median)
		assert.LessOrEqual(t, d.Median, d.Q75)
		assert.LessOrEqual(t, d.Q75, d.Max)
	}
}

func TestQuantile(t *testing.T) {
	data := []float64{10, 20, 30, 40, 50}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{0.1, 14},
		{0.5, 30},
		{0.9, 46},
		{1, 50},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Quantile(data, tt.p), 1e-12, "p=%v", tt.p)
	}
	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
	assert.InDelta(t, -5e307, Quantile([]float64{1e308, -1e308}, 0.25), 1e293)
	// The input must not be reordered.
	assert.Equal(t, []float64{10, 20, 30, 40, 50}, data)
}

func TestDescribe_RowLabels(t *testing.T) {
	labels := []string{}
	for _, r := range Describe([]float64{1, 2}).Rows() {
		labels = append(labels, r.Label)
	}
	assert.Equal(t, []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}, labels)
}
