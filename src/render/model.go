package render

import (
	"fmt"
	"image"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rhaas80/MCMC-BHPIRE/src/visdata"
)

var (
	colorData  = drawing.Color{R: 70, G: 70, B: 70, A: 255}
	colorModel = drawing.Color{R: 255, G: 0, B: 0, A: 255}
	colorRefit = drawing.Color{R: 0, G: 150, B: 60, A: 255}
)

// ModelChart overlays the observed visibility amplitudes (capped error
// bars) and the fitter's model predictions (bare markers) against
// baseline length, on a logarithmic amplitude axis. refit, when
// non-nil, is a third per-observation series of amplitudes recomputed
// from a chain sample.
func ModelChart(t *visdata.Table, refit []float64, width, height int) (image.Image, error) {
	if err := t.ValidatePositive(); err != nil {
		return nil, err
	}
	if refit != nil && len(refit) != t.Len() {
		return nil, fmt.Errorf("refit series has %d values for %d observations", len(refit), t.Len())
	}

	// log-axis bounds: smallest positive extent of any plotted value
	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	consider := func(v float64) {
		if v <= 0 {
			return
		}
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	minX := math.MaxFloat64
	maxX := -math.MaxFloat64
	for i := 0; i < t.Len(); i++ {
		consider(t.VisAmp[i] - t.Sigma[i])
		consider(t.VisAmp[i] + t.Sigma[i])
		consider(t.Model[i])
		if refit != nil {
			consider(refit[i])
		}
		if t.Baseline[i] < minX {
			minX = t.Baseline[i]
		}
		if t.Baseline[i] > maxX {
			maxX = t.Baseline[i]
		}
	}

	dataStyle := chart.Style{StrokeWidth: 1.0, StrokeColor: colorData}
	series := []chart.Series{
		ErrorBarSeries{
			Name:     "data",
			Style:    dataStyle,
			XValues:  t.Baseline,
			YValues:  t.VisAmp,
			YErrors:  t.Sigma,
			CapWidth: 3,
		},
	}
	modelStyle := pointStyle(colorModel)
	modelStyle.DotWidth = 3
	series = append(series, chart.ContinuousSeries{
		Name:    "model",
		XValues: t.Baseline,
		YValues: t.Model,
		Style:   modelStyle,
	})
	if refit != nil {
		refitStyle := pointStyle(colorRefit)
		refitStyle.DotWidth = 3
		series = append(series, chart.ContinuousSeries{
			Name:    "refit",
			XValues: t.Baseline,
			YValues: refit,
			Style:   refitStyle,
		})
	}

	xMin, xMax := niceAxisBounds(minX, maxX)
	ch := chart.Chart{
		Title:      "Visibility Amplitude vs Baseline",
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		Width:      width,
		Height:     height,
		XAxis: chart.XAxis{
			Name:  "Baseline length",
			Ticks: niceTicks(xMin, xMax, 8),
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  "Visibility Amplitude",
			Range: &chart.LogarithmicRange{Min: minY * 0.5, Max: maxY * 2},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return toImage(&ch)
}
