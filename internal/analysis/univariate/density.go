package univariate

import (
	"math"

	"univar/domain/summary"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultDensityPoints is the grid size used when callers pass zero.
	DefaultDensityPoints = 200
	// densityCut is how many bandwidths the grid extends past the data.
	densityCut = 3
)

// Density estimates the probability density of numbers with a Gaussian
// kernel and Scott's rule bandwidth, sampled at points evenly spaced
// values. The curve is empty for fewer than two distinct values, or when
// the grid would run past the float64 range.
func Density(numbers []float64, points int) summary.DensityCurve {
	if points <= 1 {
		points = DefaultDensityPoints
	}
	if len(numbers) < 2 {
		return summary.DensityCurve{}
	}
	lo, hi := floats.Min(numbers), floats.Max(numbers)
	if lo == hi {
		return summary.DensityCurve{}
	}

	bw := ScottBandwidth(numbers)
	if bw <= 0 || math.IsNaN(bw) || math.IsInf(bw, 0) {
		return summary.DensityCurve{}
	}
	from, to := lo-densityCut*bw, hi+densityCut*bw
	if math.IsInf(from, 0) || math.IsInf(to, 0) {
		return summary.DensityCurve{}
	}

	kernels := make([]distuv.Normal, len(numbers))
	for i, x := range numbers {
		kernels[i] = distuv.Normal{Mu: x, Sigma: bw}
	}

	xs := floats.Span(make([]float64, points), from, to)
	curve := summary.DensityCurve{
		Bandwidth: bw,
		Points:    make([]summary.DensityPoint, points),
	}
	n := float64(len(numbers))
	for i, x := range xs {
		var sum float64
		for _, k := range kernels {
			sum += k.Prob(x)
		}
		curve.Points[i] = summary.DensityPoint{X: x, Y: sum / n}
	}
	return curve
}

// ScottBandwidth is the sample standard deviation scaled by n^(-1/5).
func ScottBandwidth(numbers []float64) float64 {
	if len(numbers) < 2 {
		return 0
	}
	sd := stat.StdDev(numbers, nil)
	return sd * math.Pow(float64(len(numbers)), -0.2)
}
