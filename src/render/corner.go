package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rhaas80/MCMC-BHPIRE/src/mcmc"
)

// CornerLabels are the fixed parameter names of the two-Gaussian fit,
// in chain column order.
var CornerLabels = []string{"F1", "sigma1", "x2", "y2", "F2", "sigma2"}

const (
	panelWidth  = 300
	panelHeight = 260
)

// CornerPlot renders the lower-triangular pairwise-posterior grid:
// binned marginal histograms on the diagonal (titled with the median
// and 68% interval) and binned density panels off the diagonal. The
// matrix column count must match the label count exactly.
func CornerPlot(m *mcmc.Matrix, labels []string, bins int) (image.Image, error) {
	if m.Cols != len(labels) {
		return nil, fmt.Errorf("chain matrix has %d columns but %d parameter labels are defined", m.Cols, len(labels))
	}
	if bins < 1 {
		return nil, fmt.Errorf("corner plot needs at least one bin, got %d", bins)
	}

	n := len(labels)
	grid := image.NewRGBA(image.Rect(0, 0, n*panelWidth, n*panelHeight))
	draw.Draw(grid, grid.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i := 0; i < n; i++ {
		ys := m.Column(i)
		for j := 0; j <= i; j++ {
			var panel image.Image
			var err error
			if i == j {
				panel, err = histPanel(ys, labels[i], bins, i == n-1)
			} else {
				panel, err = densityPanel(m.Column(j), ys, bins, labels[j], labels[i], i == n-1, j == 0)
			}
			if err != nil {
				return nil, fmt.Errorf("panel %s/%s: %w", labels[j], labels[i], err)
			}
			dst := image.Rect(j*panelWidth, i*panelHeight, (j+1)*panelWidth, (i+1)*panelHeight)
			draw.Draw(grid, dst, panel, panel.Bounds().Min, draw.Src)
		}
	}

	drawCaption(grid, fmt.Sprintf("%d samples, %d bins", m.Rows, bins))
	return grid, nil
}

// histPanel renders one marginal histogram as a step outline.
func histPanel(samples []float64, label string, bins int, labelX bool) (image.Image, error) {
	edges, counts, err := mcmc.Histogram1D(samples, bins)
	if err != nil {
		return nil, err
	}
	xs := make([]float64, 0, 2*bins)
	ysv := make([]float64, 0, 2*bins)
	maxCount := 0.0
	for b := 0; b < bins; b++ {
		xs = append(xs, edges[b], edges[b+1])
		ysv = append(ysv, counts[b], counts[b])
		if counts[b] > maxCount {
			maxCount = counts[b]
		}
	}

	xMin, xMax := niceAxisBounds(edges[0], edges[bins])
	xName := ""
	if labelX {
		xName = label
	}
	ch := chart.Chart{
		Title:      mcmc.Summarize(samples).Title(label),
		TitleStyle: chart.Style{FontSize: 9},
		Background: chart.Style{Padding: chart.Box{Top: 10, Left: 8, Right: 8, Bottom: 14}},
		Width:      panelWidth,
		Height:     panelHeight,
		XAxis: chart.XAxis{
			Name:  xName,
			Ticks: niceTicks(xMin, xMax, 4),
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxCount * 1.1},
			Ticks: niceTicks(0, maxCount*1.1, 4),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ysv,
				Style:   chart.Style{StrokeWidth: 1.5, StrokeColor: chart.ColorBlue},
			},
		},
	}
	return toImage(&ch)
}

// densityPanel renders one pairwise panel: bin the samples on a
// bins x bins grid and draw occupied bin centres as dots whose opacity
// tracks the bin count (four density levels).
func densityPanel(xsamples, ysamples []float64, bins int, xLabel, yLabel string, labelX, labelY bool) (image.Image, error) {
	xe, ye, counts, err := mcmc.Histogram2D(xsamples, ysamples, bins)
	if err != nil {
		return nil, err
	}
	maxCount := 0.0
	for _, row := range counts {
		for _, c := range row {
			if c > maxCount {
				maxCount = c
			}
		}
	}

	const levels = 4
	levelXs := make([][]float64, levels)
	levelYs := make([][]float64, levels)
	for iy := 0; iy < bins; iy++ {
		cy := (ye[iy] + ye[iy+1]) / 2
		for ix := 0; ix < bins; ix++ {
			c := counts[iy][ix]
			if c == 0 {
				continue
			}
			lvl := int(c / maxCount * float64(levels))
			if lvl >= levels {
				lvl = levels - 1
			}
			cx := (xe[ix] + xe[ix+1]) / 2
			levelXs[lvl] = append(levelXs[lvl], cx)
			levelYs[lvl] = append(levelYs[lvl], cy)
		}
	}
	alphas := []uint8{60, 120, 185, 255}
	series := make([]chart.Series, 0, levels)
	for lvl := 0; lvl < levels; lvl++ {
		if len(levelXs[lvl]) == 0 {
			continue
		}
		st := pointStyle(chart.ColorBlue.WithAlpha(alphas[lvl]))
		st.DotWidth = 3
		series = append(series, chart.ContinuousSeries{
			XValues: levelXs[lvl],
			YValues: levelYs[lvl],
			Style:   st,
		})
	}

	xMin, xMax := niceAxisBounds(xe[0], xe[bins])
	yMin, yMax := niceAxisBounds(ye[0], ye[bins])
	xName, yName := "", ""
	if labelX {
		xName = xLabel
	}
	if labelY {
		yName = yLabel
	}
	ch := chart.Chart{
		Background: chart.Style{Padding: chart.Box{Top: 10, Left: 8, Right: 8, Bottom: 14}},
		Width:      panelWidth,
		Height:     panelHeight,
		XAxis: chart.XAxis{
			Name:  xName,
			Ticks: niceTicks(xMin, xMax, 4),
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  yName,
			Ticks: niceTicks(yMin, yMax, 4),
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
		},
		Series: series,
	}
	return toImage(&ch)
}

// drawCaption draws a small annotation near the top-right of the grid,
// in the empty upper triangle.
func drawCaption(rgba *image.RGBA, text string) {
	b := rgba.Bounds()
	face := basicfont.Face7x13
	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(color.RGBA{R: 60, G: 60, B: 60, A: 255}),
		Face: face,
	}
	tw := dr.MeasureString(text).Ceil()
	x := b.Max.X - tw - 12
	y := b.Min.Y + face.Metrics().Ascent.Ceil() + 8
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
}
