package univariate

import (
	"math"
	"sort"

	"univar/domain/summary"

	"github.com/montanaflynn/stats"
)

// Describe computes count, mean, sample standard deviation, extremes and
// quartiles. Quartiles use linear interpolation between order statistics.
// With no values everything but Count is NaN; with a single value the
// standard deviation is NaN.
func Describe(numbers []float64) summary.Descriptive {
	nan := math.NaN()
	d := summary.Descriptive{
		Count: len(numbers),
		Mean:  nan, Std: nan, Min: nan, Q25: nan, Median: nan, Q75: nan, Max: nan,
	}
	if len(numbers) == 0 {
		return d
	}

	d.Mean, _ = stats.Mean(numbers)
	d.Min, _ = stats.Min(numbers)
	d.Max, _ = stats.Max(numbers)
	if len(numbers) > 1 {
		d.Std, _ = stats.StandardDeviationSample(numbers)
	}

	sorted := sortedCopy(numbers)
	d.Q25 = quantileSorted(sorted, 0.25)
	d.Median = quantileSorted(sorted, 0.5)
	d.Q75 = quantileSorted(sorted, 0.75)
	return d
}

// Quantile returns the p-quantile of numbers, p in [0, 1], interpolating
// linearly between the two nearest order statistics.
func Quantile(numbers []float64, p float64) float64 {
	if len(numbers) == 0 {
		return math.NaN()
	}
	return quantileSorted(sortedCopy(numbers), p)
}

func quantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 || math.IsNaN(p) {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}
	frac := h - lo
	if d := sorted[i+1] - sorted[i]; !math.IsInf(d, 0) {
		return sorted[i] + frac*d
	}
	return sorted[i]*(1-frac) + sorted[i+1]*frac
}

func sortedCopy(numbers []float64) []float64 {
	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)
	return sorted
}
