package univariate

import (
	"math"

	"univar/domain/summary"

	"gonum.org/v1/gonum/stat"
)

// MaxAutoBins bounds the number of bins the automatic rule may choose.
const MaxAutoBins = 200

// AutoHistogram bins numbers with the smaller of the Sturges and
// Freedman-Diaconis bin widths. Bins are half-open except the last, which
// also holds the maximum. A constant column gets one bin of width one
// centred on the value.
func AutoHistogram(numbers []float64) summary.Histogram {
	if len(numbers) == 0 {
		return summary.Histogram{Bins: []summary.HistogramBin{}}
	}

	sorted := sortedCopy(numbers)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		return summary.Histogram{Bins: []summary.HistogramBin{
			{Lower: lo - 0.5, Upper: hi + 0.5, Count: len(sorted)},
		}}
	}

	k := autoBinCount(sorted)
	dividers := span(make([]float64, k+1), lo, hi)

	// stat.Histogram wants every value strictly below the last divider.
	last := dividers[k]
	dividers[k] = math.Nextafter(last, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)
	dividers[k] = last

	h := summary.Histogram{Bins: make([]summary.HistogramBin, k)}
	for i := range h.Bins {
		h.Bins[i] = summary.HistogramBin{
			Lower: dividers[i],
			Upper: dividers[i+1],
			Count: int(counts[i]),
		}
	}
	return h
}

// autoBinCount picks the bin count for sorted, non-constant data.
func autoBinCount(sorted []float64) int {
	n := float64(len(sorted))
	// Widths are computed at half scale so spreads near the float64 limit
	// stay finite. Halving is exact, so the ratio below is unchanged.
	span := sorted[len(sorted)-1]/2 - sorted[0]/2

	sturges := span / (math.Log2(n) + 1)
	iqr := quantileSorted(sorted, 0.75)/2 - quantileSorted(sorted, 0.25)/2
	fd := 2 * (iqr / math.Cbrt(n))

	width := sturges
	if fd > 0 && fd < sturges {
		width = fd
	}
	k := int(math.Ceil(span / width))
	if k < 1 {
		k = 1
	}
	if k > MaxAutoBins {
		k = MaxAutoBins
	}
	return k
}
