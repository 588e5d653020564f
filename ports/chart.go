package ports

import (
	"encoding/base64"
	"errors"

	"univar/domain/summary"
)

// ErrNothingToDraw is returned by renderers for summaries with no data
var ErrNothingToDraw = errors.New("nothing to draw")

// Image is a rendered PNG chart
type Image struct {
	PNG    []byte
	Width  int
	Height int
}

// DataURI embeds the image for an <img src>
func (i Image) DataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(i.PNG)
}

// ChartRenderer draws the charts that accompany each summary
type ChartRenderer interface {
	Bar(title string, table summary.FrequencyTable) (Image, error)
	Histogram(title string, h summary.Histogram) (Image, error)
	BoxPlot(title string, b summary.BoxStats) (Image, error)
	Density(title string, c summary.DensityCurve) (Image, error)
}
