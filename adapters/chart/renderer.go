// Package chart draws summary charts as PNG images with go-chart.
package chart

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"univar/domain/summary"
	"univar/internal"
	"univar/ports"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNothingToDraw is returned for summaries with no data.
var ErrNothingToDraw = ports.ErrNothingToDraw

var (
	fillColor   = drawing.ColorFromHex("4C72B0")
	strokeColor = drawing.ColorFromHex("2F4B7C")
	dotColor    = drawing.ColorFromHex("C44E52")
)

// Renderer renders charts at a fixed size
type Renderer struct {
	width  int
	height int
	logger *internal.Logger
}

var _ ports.ChartRenderer = (*Renderer)(nil)

// NewRenderer creates a renderer producing width x height images
func NewRenderer(width, height int, logger *internal.Logger) *Renderer {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Renderer{width: width, height: height, logger: logger.WithComponent("Chart")}
}

// Bar draws one bar per table row, labels rotated under the axis.
func (r *Renderer) Bar(title string, table summary.FrequencyTable) (ports.Image, error) {
	if table.IsEmpty() {
		return ports.Image{}, ErrNothingToDraw
	}

	bars := make([]gochart.Value, len(table.Rows))
	maxFreq := 0
	for i, row := range table.Rows {
		bars[i] = gochart.Value{
			Value: float64(row.Frequency),
			Label: row.Value,
			Style: gochart.Style{FillColor: fillColor, StrokeColor: strokeColor, StrokeWidth: 1},
		}
		if row.Frequency > maxFreq {
			maxFreq = row.Frequency
		}
	}

	yMax := countMax(maxFreq)
	bc := gochart.BarChart{
		Title:      title,
		Width:      r.width,
		Height:     r.height,
		BarWidth:   r.barWidth(len(bars)),
		BarSpacing: 4,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.Style{TextRotationDegrees: 45},
		YAxis: gochart.YAxis{
			Name:  "Frequency",
			Range: &gochart.ContinuousRange{Min: 0, Max: yMax},
			Ticks: countTicks(yMax, 5),
		},
		Bars: bars,
	}
	return r.render(title, r.height, bc.Render)
}

// Histogram draws adjacent bars over a numeric axis.
func (r *Renderer) Histogram(title string, h summary.Histogram) (ports.Image, error) {
	if len(h.Bins) == 0 {
		return ports.Image{}, ErrNothingToDraw
	}

	xs := make([]float64, 0, 4*len(h.Bins))
	ys := make([]float64, 0, 4*len(h.Bins))
	maxCount := 0
	for _, b := range h.Bins {
		c := float64(b.Count)
		xs = append(xs, b.Lower, b.Lower, b.Upper, b.Upper)
		ys = append(ys, 0, c, c, 0)
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	xMin, xMax := padRange(h.Bins[0].Lower, h.Bins[len(h.Bins)-1].Upper)
	yMax := countMax(maxCount)
	ch := gochart.Chart{
		Title:      title,
		Width:      r.width,
		Height:     r.height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks: niceTicks(xMin, xMax, 6),
		},
		YAxis: gochart.YAxis{
			Name:  "Frequency",
			Range: &gochart.ContinuousRange{Min: 0, Max: yMax},
			Ticks: countTicks(yMax, 5),
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: strokeColor,
					StrokeWidth: 1,
					FillColor:   fillColor.WithAlpha(200),
				},
			},
		},
	}
	return r.render(title, r.height, ch.Render)
}

// BoxPlot draws a horizontal Tukey boxplot with outliers as dots.
func (r *Renderer) BoxPlot(title string, b summary.BoxStats) (ports.Image, error) {
	if b.Count == 0 || math.IsNaN(b.Median) {
		return ports.Image{}, ErrNothingToDraw
	}

	const (
		boxLow, boxHigh = 0.3, 0.7
		capLow, capHigh = 0.4, 0.6
		mid             = 0.5
	)
	// Line series fill down to the axis, so the box is drawn as an outline.
	boxStyle := gochart.Style{StrokeColor: strokeColor, StrokeWidth: 2}
	lineStyle := gochart.Style{StrokeColor: strokeColor, StrokeWidth: 1.5}

	segment := func(x0, y0, x1, y1 float64, style gochart.Style) gochart.ContinuousSeries {
		return gochart.ContinuousSeries{XValues: []float64{x0, x1}, YValues: []float64{y0, y1}, Style: style}
	}

	series := []gochart.Series{
		gochart.ContinuousSeries{
			XValues: []float64{b.Q1, b.Q3, b.Q3, b.Q1, b.Q1},
			YValues: []float64{boxLow, boxLow, boxHigh, boxHigh, boxLow},
			Style:   boxStyle,
		},
		segment(b.Median, boxLow, b.Median, boxHigh, gochart.Style{StrokeColor: drawing.ColorBlack, StrokeWidth: 2}),
		segment(b.LowerWhisker, mid, b.Q1, mid, lineStyle),
		segment(b.Q3, mid, b.UpperWhisker, mid, lineStyle),
		segment(b.LowerWhisker, capLow, b.LowerWhisker, capHigh, lineStyle),
		segment(b.UpperWhisker, capLow, b.UpperWhisker, capHigh, lineStyle),
	}

	lo, hi := b.LowerWhisker, b.UpperWhisker
	if len(b.Outliers) > 0 {
		ys := make([]float64, len(b.Outliers))
		for i, o := range b.Outliers {
			ys[i] = mid
			lo = math.Min(lo, o)
			hi = math.Max(hi, o)
		}
		series = append(series, gochart.ContinuousSeries{
			XValues: b.Outliers,
			YValues: ys,
			Style:   pointStyle(dotColor),
		})
	}

	xMin, xMax := padRange(lo, hi)
	ch := gochart.Chart{
		Title:      title,
		Width:      r.width,
		Height:     r.height / 2,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks: niceTicks(xMin, xMax, 6),
		},
		YAxis: gochart.YAxis{
			Style: gochart.Style{Hidden: true},
			Range: &gochart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: series,
	}
	return r.render(title, ch.Height, ch.Render)
}

// Density draws the estimated density as a shaded curve.
func (r *Renderer) Density(title string, c summary.DensityCurve) (ports.Image, error) {
	if c.IsEmpty() {
		return ports.Image{}, ErrNothingToDraw
	}

	xs := make([]float64, len(c.Points))
	ys := make([]float64, len(c.Points))
	yMax := 0.0
	for i, p := range c.Points {
		xs[i], ys[i] = p.X, p.Y
		yMax = math.Max(yMax, p.Y)
	}
	if yMax <= 0 {
		yMax = 1
	}
	yMax *= 1.05

	xMin, xMax := padRange(xs[0], xs[len(xs)-1])
	ch := gochart.Chart{
		Title:      title,
		Width:      r.width,
		Height:     r.height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks: niceTicks(xMin, xMax, 6),
		},
		YAxis: gochart.YAxis{
			Name:  "Density",
			Range: &gochart.ContinuousRange{Min: 0, Max: yMax},
			Ticks: niceTicks(0, yMax, 5),
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: strokeColor,
					StrokeWidth: 2,
					FillColor:   fillColor.WithAlpha(90),
				},
			},
		},
	}
	return r.render(title, r.height, ch.Render)
}

func (r *Renderer) render(title string, height int, draw func(gochart.RendererProvider, io.Writer) error) (ports.Image, error) {
	var buf bytes.Buffer
	if err := draw(gochart.PNG, &buf); err != nil {
		r.logger.Warn("render %q failed: %v", title, err)
		return ports.Image{}, fmt.Errorf("render %s: %w", title, err)
	}
	return ports.Image{PNG: buf.Bytes(), Width: r.width, Height: height}, nil
}

// barWidth shares the plot width between n bars.
func (r *Renderer) barWidth(n int) int {
	w := (r.width-120)/n - 4
	if w < 3 {
		return 3
	}
	if w > 60 {
		return 60
	}
	return w
}

// pointStyle renders points only, with no connecting line
func pointStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeWidth: 0,
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    4,
		DotColor:    col,
	}
}
