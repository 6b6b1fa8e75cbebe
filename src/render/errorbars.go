package render

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
)

// ErrorBarSeries draws capped vertical error bars around each
// (x, y±err) point, with no connecting line or marker. It implements
// chart.Series the same way the built-in series do, and exposes its
// bar extents through GetBoundedValues so axis ranges include the
// full bars.
type ErrorBarSeries struct {
	Name  string
	Style chart.Style
	YAxis chart.YAxisType

	XValues []float64
	YValues []float64
	YErrors []float64

	// CapWidth is the half-width of the bar caps in pixels.
	CapWidth int
}

// GetName implements chart.Series.
func (es ErrorBarSeries) GetName() string { return es.Name }

// GetStyle implements chart.Series.
func (es ErrorBarSeries) GetStyle() chart.Style { return es.Style }

// GetYAxis implements chart.Series.
func (es ErrorBarSeries) GetYAxis() chart.YAxisType { return es.YAxis }

// Len implements chart.ValuesProvider.
func (es ErrorBarSeries) Len() int { return len(es.XValues) }

// GetValues implements chart.ValuesProvider.
func (es ErrorBarSeries) GetValues(index int) (float64, float64) {
	return es.XValues[index], es.YValues[index]
}

// GetBoundedValues implements chart.BoundedValuesProvider.
func (es ErrorBarSeries) GetBoundedValues(index int) (x, y1, y2 float64) {
	return es.XValues[index], es.YValues[index] + es.YErrors[index], es.YValues[index] - es.YErrors[index]
}

// Validate implements chart.Series.
func (es ErrorBarSeries) Validate() error {
	if len(es.XValues) == 0 {
		return fmt.Errorf("error bar series must have at least one value")
	}
	if len(es.YValues) != len(es.XValues) || len(es.YErrors) != len(es.XValues) {
		return fmt.Errorf("error bar series length mismatch: x=%d y=%d err=%d", len(es.XValues), len(es.YValues), len(es.YErrors))
	}
	return nil
}

// Render implements chart.Series.
func (es ErrorBarSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := es.Style.InheritFrom(defaults)
	r.SetStrokeColor(style.GetStrokeColor())
	r.SetStrokeWidth(style.GetStrokeWidth(1.0))

	capW := es.CapWidth
	if capW <= 0 {
		capW = 3
	}
	for i := range es.XValues {
		x := canvasBox.Left + xrange.Translate(es.XValues[i])
		hi := es.YValues[i] + es.YErrors[i]
		lo := es.YValues[i] - es.YErrors[i]
		// keep the lower cap inside the plotted range (log axes
		// cannot translate values at or below the range floor)
		if lo < yrange.GetMin() {
			lo = yrange.GetMin()
		}
		if hi > yrange.GetMax() {
			hi = yrange.GetMax()
		}
		yTop := canvasBox.Bottom - yrange.Translate(hi)
		yBot := canvasBox.Bottom - yrange.Translate(lo)

		r.MoveTo(x, yTop)
		r.LineTo(x, yBot)
		r.Stroke()
		r.MoveTo(x-capW, yTop)
		r.LineTo(x+capW, yTop)
		r.Stroke()
		r.MoveTo(x-capW, yBot)
		r.LineTo(x+capW, yBot)
		r.Stroke()
	}
}
