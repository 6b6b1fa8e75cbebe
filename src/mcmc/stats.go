package mcmc

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary captures the marginal posterior of one parameter. Q16 and
// Q84 bracket the central 68% credible interval around the median.
type Summary struct {
	Mean   float64
	StdDev float64
	Q16    float64
	Median float64
	Q84    float64
}

// Title formats the summary the way corner-plot panel titles are
// conventionally written: median with the +/- distances to the 84th
// and 16th percentiles, three decimals.
func (s Summary) Title(label string) string {
	return fmt.Sprintf("%s = %.3f (+%.3f / -%.3f)", label, s.Median, s.Q84-s.Median, s.Median-s.Q16)
}

// Summarize computes the marginal summary of one parameter's samples.
func Summarize(samples []float64) Summary {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	return Summary{
		Mean:   stat.Mean(sorted, nil),
		StdDev: stat.StdDev(sorted, nil),
		Q16:    stat.Quantile(0.16, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.50, stat.Empirical, sorted, nil),
		Q84:    stat.Quantile(0.84, stat.Empirical, sorted, nil),
	}
}

// binEdges returns bins+1 evenly spaced dividers spanning the samples.
// The top edge is padded slightly so the maximum lands inside the last
// bin; a degenerate (constant) sample set gets a unit-wide span.
func binEdges(min, max float64, bins int) []float64 {
	if max <= min {
		max = min + 1
	}
	pad := (max - min) * 1e-9
	edges := make([]float64, bins+1)
	floats.Span(edges, min, max+pad)
	// the top divider must be strictly above the largest sample
	edges[bins] = math.Nextafter(edges[bins], math.Inf(1))
	return edges
}

// Histogram1D bins samples into the given number of equal-width bins.
// It returns the bins+1 bin edges and the per-bin counts.
func Histogram1D(samples []float64, bins int) (edges, counts []float64, err error) {
	if bins < 1 {
		return nil, nil, fmt.Errorf("histogram needs at least one bin, got %d", bins)
	}
	if len(samples) == 0 {
		return nil, nil, fmt.Errorf("histogram of empty sample set")
	}
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	edges = binEdges(sorted[0], sorted[len(sorted)-1], bins)
	counts = stat.Histogram(nil, edges, sorted, nil)
	return edges, counts, nil
}

// Histogram2D bins the paired samples (xs[i], ys[i]) onto a bins x bins
// grid. counts[iy][ix] is the number of pairs in y-row iy, x-column ix.
func Histogram2D(xs, ys []float64, bins int) (xedges, yedges []float64, counts [][]float64, err error) {
	if len(xs) != len(ys) {
		return nil, nil, nil, fmt.Errorf("mismatched sample lengths: %d vs %d", len(xs), len(ys))
	}
	if bins < 1 {
		return nil, nil, nil, fmt.Errorf("histogram needs at least one bin, got %d", bins)
	}
	if len(xs) == 0 {
		return nil, nil, nil, fmt.Errorf("histogram of empty sample set")
	}
	xedges = binEdges(floats.Min(xs), floats.Max(xs), bins)
	yedges = binEdges(floats.Min(ys), floats.Max(ys), bins)
	counts = make([][]float64, bins)
	for i := range counts {
		counts[i] = make([]float64, bins)
	}
	xw := (xedges[bins] - xedges[0]) / float64(bins)
	yw := (yedges[bins] - yedges[0]) / float64(bins)
	for i := range xs {
		ix := int((xs[i] - xedges[0]) / xw)
		iy := int((ys[i] - yedges[0]) / yw)
		if ix >= bins {
			ix = bins - 1
		}
		if iy >= bins {
			iy = bins - 1
		}
		counts[iy][ix]++
	}
	return xedges, yedges, counts, nil
}
