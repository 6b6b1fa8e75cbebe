package mcmc

import (
	"fmt"
	"math"
)

// radPerMuarcsec converts microarcseconds to radians.
const radPerMuarcsec = 4.8481368110954e-12

// TwoGaussianParams are the six parameters of the fitted sky model: a
// zero-centred circular Gaussian (flux F1, width Sigma1) plus a second
// Gaussian (flux F2, width Sigma2) offset by (X2, Y2). Widths and
// offsets are in microarcseconds.
type TwoGaussianParams struct {
	F1, Sigma1, X2, Y2, F2, Sigma2 float64
}

// ParamsFromSample interprets one chain row as a parameter vector.
func ParamsFromSample(row []float64) (TwoGaussianParams, error) {
	if len(row) != 6 {
		return TwoGaussianParams{}, fmt.Errorf("two-Gaussian model has 6 parameters, sample has %d", len(row))
	}
	return TwoGaussianParams{
		F1: row[0], Sigma1: row[1],
		X2: row[2], Y2: row[3],
		F2: row[4], Sigma2: row[5],
	}, nil
}

// Amplitude evaluates the visibility amplitude of the two-Gaussian
// model at baseline coordinates (u, v), in the raw (unscaled) units
// the fitter uses. The first component is real (zero-centred); the
// second picks up a phase from its offset.
func (p TwoGaussianParams) Amplitude(u, v float64) float64 {
	aux := 2 * math.Pi * math.Pi
	b02 := (u*u + v*v) * radPerMuarcsec * radPerMuarcsec

	vr1 := p.F1 * math.Exp(-aux*p.Sigma1*p.Sigma1*b02)

	v2 := p.F2 * math.Exp(-aux*p.Sigma2*p.Sigma2*b02)
	phase2 := -2 * math.Pi * (u*p.X2 + v*p.Y2) * radPerMuarcsec
	vr2 := v2 * math.Cos(phase2)
	vi2 := v2 * math.Sin(phase2)

	return math.Sqrt((vr1+vr2)*(vr1+vr2) + vi2*vi2)
}
