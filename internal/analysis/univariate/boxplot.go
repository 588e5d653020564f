package univariate

import (
	"math"

	"univar/domain/summary"
)

// whiskerFactor is the multiple of the IQR beyond which a value is an
// outlier.
const whiskerFactor = 1.5

// BoxPlot computes quartiles, whiskers and outliers. Whiskers reach the
// most extreme values within 1.5 IQR of the box; values beyond are
// outliers, listed in input order.
func BoxPlot(numbers []float64) summary.BoxStats {
	nan := math.NaN()
	b := summary.BoxStats{
		Count: len(numbers),
		Q1:    nan, Median: nan, Q3: nan, LowerWhisker: nan, UpperWhisker: nan,
		Outliers: []float64{},
	}
	if len(numbers) == 0 {
		return b
	}

	sorted := sortedCopy(numbers)
	b.Q1 = quantileSorted(sorted, 0.25)
	b.Median = quantileSorted(sorted, 0.5)
	b.Q3 = quantileSorted(sorted, 0.75)

	iqr := b.Q3 - b.Q1
	lowerBound := b.Q1 - whiskerFactor*iqr
	upperBound := b.Q3 + whiskerFactor*iqr

	b.LowerWhisker, b.UpperWhisker = math.Inf(1), math.Inf(-1)
	for _, x := range numbers {
		if x < lowerBound || x > upperBound {
			b.Outliers = append(b.Outliers, x)
			continue
		}
		b.LowerWhisker = math.Min(b.LowerWhisker, x)
		b.UpperWhisker = math.Max(b.UpperWhisker, x)
	}
	return b
}
