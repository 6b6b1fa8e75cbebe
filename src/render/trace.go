package render

import (
	"fmt"
	"image"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/rhaas80/MCMC-BHPIRE/src/mcmc"
)

// TraceChart renders every chain column normalized by its final value
// as an overlaid line series, so converged parameters all end at 1.
// The matrix needs at least two rows to show a trend.
func TraceChart(m *mcmc.Matrix, width, height int) (image.Image, error) {
	if m.Rows < 2 {
		return nil, fmt.Errorf("chain matrix has %d row(s); need at least 2 for a trace", m.Rows)
	}

	xs := make([]float64, m.Rows)
	for i := range xs {
		xs[i] = float64(i)
	}

	series := make([]chart.Series, 0, m.Cols)
	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	for c := 0; c < m.Cols; c++ {
		ys, err := mcmc.NormalizeToLast(m.Column(c))
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", c, err)
		}
		for _, v := range ys {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    strconv.Itoa(c),
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: 1.5},
		})
	}

	yMin, yMax := niceAxisBounds(minY, maxY)
	ch := chart.Chart{
		Title:      "Chain Trace",
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		Width:      width,
		Height:     height,
		XAxis: chart.XAxis{
			Name:  "Chain Number",
			Ticks: niceTicks(0, float64(m.Rows-1), 8),
			Range: &chart.ContinuousRange{Min: 0, Max: float64(m.Rows - 1)},
		},
		YAxis: chart.YAxis{
			Name:  "Normalized Parameter Value",
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks: niceTicks(yMin, yMax, 6),
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return toImage(&ch)
}
