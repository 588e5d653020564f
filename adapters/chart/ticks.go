package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// padRange widens [lo, hi] by 5% on each side, or by 10% of the value
// around a single value, so the axis never collapses.
func padRange(lo, hi float64) (float64, float64) {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := hi - lo
	if span == 0 {
		pad := math.Abs(lo) * 0.1
		if pad == 0 {
			pad = 1
		}
		return lo - pad, hi + pad
	}
	pad := span * 0.05
	if math.IsInf(span, 0) {
		pad = (hi/2 - lo/2) * 0.1
	}
	return math.Max(lo-pad, -math.MaxFloat64), math.Min(hi+pad, math.MaxFloat64)
}

// countMax is the top of a frequency axis: a little headroom, never below one.
func countMax(maxCount int) float64 {
	head := int(math.Ceil(float64(maxCount) * 0.05))
	if head < 1 {
		head = 1
	}
	return float64(maxCount + head)
}

// niceStep picks a 1, 2, 2.5 or 5 times a power of ten step giving about
// n ticks over span.
func niceStep(span float64, n int) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	return bestStep
}

// niceTicks generates up to n tick marks between [min, max] using nice increments.
func niceTicks(min, max float64, n int) []gochart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	if span := max - min; !math.IsInf(span, 0) {
		return ticksWithStep(min, max, niceStep(span, n), n)
	}
	return ticksWithStep(min, max, 2*niceStep(max/2-min/2, n), n)
}

// countTicks is niceTicks restricted to whole-number steps.
func countTicks(max float64, n int) []gochart.Tick {
	if max <= 0 {
		max = 1
	}
	return ticksWithStep(0, max, math.Max(1, math.Round(niceStep(max, n))), n)
}

func ticksWithStep(min, max, step float64, n int) []gochart.Tick {
	var ticks []gochart.Tick
	for v := math.Ceil(min/step) * step; v <= max+step*1e-9; v += step {
		ticks = append(ticks, gochart.Tick{Value: v, Label: formatTick(v, step)})
		if len(ticks) > 2*n+2 {
			break
		}
	}
	return ticks
}

// formatTick prints v with as many decimals as the tick step carries.
func formatTick(v, step float64) string {
	if math.Abs(v) < step*1e-9 {
		return "0"
	}
	if math.Abs(v) >= 1e6 {
		return fmt.Sprintf("%.3g", v)
	}
	decimals := 0
	if s := strconv.FormatFloat(step, 'f', -1, 64); strings.Contains(s, ".") {
		decimals = len(s) - strings.Index(s, ".") - 1
		if decimals > 8 {
			decimals = 8
		}
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
