package univariate

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"univar/domain/core"
	"univar/domain/summary"

	"gonum.org/v1/gonum/floats"
)

const (
	// edgeAdjust widens the range so that the minimum lands inside the
	// first right-closed interval.
	edgeAdjust = 0.001
	// labelPrecision is the starting number of significant decimals in
	// interval labels.
	labelPrecision = 3
	maxPrecision   = 20
)

// BinEdges splits the range of numbers into k equal-width intervals and
// returns the k+1 edges. The lowest edge sits 0.1% of the range below the
// minimum. A constant column is widened by 0.1% of its value on both sides.
func BinEdges(numbers []float64, k int) ([]float64, error) {
	if k < 1 {
		return nil, core.NewInvalidBinCountError(k)
	}
	if len(numbers) == 0 {
		return nil, nil
	}

	lo, hi := floats.Min(numbers), floats.Max(numbers)
	edges := make([]float64, k+1)
	if lo == hi {
		if lo != 0 {
			lo -= edgeAdjust * math.Abs(lo)
			hi += edgeAdjust * math.Abs(hi)
		} else {
			lo, hi = -edgeAdjust, edgeAdjust
		}
		return span(edges, lo, hi), nil
	}

	span(edges, lo, hi)
	adj := (hi - lo) * edgeAdjust
	if math.IsInf(adj, 0) {
		adj = hi*edgeAdjust - lo*edgeAdjust
	}
	edges[0] -= adj
	return edges, nil
}

// BinnedFrequencies groups numbers into k equal-width right-closed
// intervals and counts each one. Every interval is listed in ascending
// order, including empty ones.
func BinnedFrequencies(numbers []float64, k int) (summary.FrequencyTable, error) {
	edges, err := BinEdges(numbers, k)
	if err != nil {
		return summary.FrequencyTable{}, err
	}
	if len(edges) == 0 {
		return summary.FrequencyTable{Rows: []summary.FrequencyRow{}}, nil
	}

	bins := makeBins(edges)
	freqs := make([]int, len(bins))
	for _, v := range numbers {
		freqs[binIndex(edges, v)]++
	}

	labels := make([]string, len(bins))
	for i, b := range bins {
		labels[i] = b.Label
	}
	table := buildTable(labels, freqs, len(numbers))
	table.Bins = bins
	return table, nil
}

// span fills dst with evenly spaced values and pins both ends exactly.
func span(dst []float64, lo, hi float64) []float64 {
	if math.IsInf(hi-lo, 0) {
		// The step would overflow, so interpolate between the ends instead.
		n := float64(len(dst) - 1)
		for i := range dst {
			t := float64(i) / n
			dst[i] = lo*(1-t) + hi*t
		}
	} else {
		floats.Span(dst, lo, hi)
	}
	dst[0], dst[len(dst)-1] = lo, hi
	return dst
}

// binIndex finds the right-closed interval holding v. Values at or below
// the lowest edge belong to the first interval and values above the top
// edge to the last.
func binIndex(edges []float64, v float64) int {
	i := sort.SearchFloat64s(edges, v) - 1
	if i < 0 {
		return 0
	}
	if i > len(edges)-2 {
		return len(edges) - 2
	}
	return i
}

func makeBins(edges []float64) []summary.Bin {
	precision := inferPrecision(edges)
	rounded := make([]float64, len(edges))
	for i, e := range edges {
		rounded[i] = roundFrac(e, precision)
	}
	// The displayed lower edge of the first interval is nudged down so the
	// minimum visibly falls inside it.
	firstLower := rounded[0] - math.Pow(10, -float64(precision))

	bins := make([]summary.Bin, len(edges)-1)
	for i := range bins {
		lower := rounded[i]
		if i == 0 {
			lower = firstLower
		}
		bins[i] = summary.Bin{
			Lower:        edges[i],
			Upper:        edges[i+1],
			IncludeLower: i == 0,
			Label:        "(" + formatEdge(lower) + ", " + formatEdge(rounded[i+1]) + "]",
		}
	}
	return bins
}

// inferPrecision returns the smallest precision, starting at three, at
// which every rounded edge is still distinct.
func inferPrecision(edges []float64) int {
	for p := labelPrecision; p < maxPrecision; p++ {
		seen := make(map[float64]struct{}, len(edges))
		for _, e := range edges {
			seen[roundFrac(e, p)] = struct{}{}
		}
		if len(seen) == len(edges) {
			return p
		}
	}
	return maxPrecision
}

// roundFrac keeps precision decimals of x, counted from the first
// significant digit when x has no integer part.
func roundFrac(x float64, precision int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	whole, frac := math.Modf(x)
	digits := precision
	if whole == 0 {
		digits = -int(math.Floor(math.Log10(math.Abs(frac)))) - 1 + precision
	}
	return roundTo(x, digits)
}

func roundTo(x float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	r := math.RoundToEven(x*scale) / scale
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return x
	}
	return r
}

// formatEdge prints an edge the way interval labels show floats, always
// with a decimal point.
func formatEdge(v float64) string {
	// Strip binary noise such as 0.9949999999999999.
	v = roundTo(v, 12)
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.Abs(v) >= 1e16 {
		s = strconv.FormatFloat(v, 'e', -1, 64)
	}
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	if s == "-0.0" {
		s = "0.0"
	}
	return s
}
