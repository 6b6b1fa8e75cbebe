package mcmc

import (
	"math"
	"testing"
)

func TestAmplitudeZeroBaseline(t *testing.T) {
	p := TwoGaussianParams{F1: 0.6, Sigma1: 20, X2: 15, Y2: -10, F2: 0.4, Sigma2: 8}
	// at zero baseline both components contribute their full flux in phase
	got := p.Amplitude(0, 0)
	if math.Abs(got-1.0) > 1e-12 {
		t.Fatalf("Amplitude(0,0)=%v want F1+F2=1.0", got)
	}
}

func TestAmplitudeDecaysWithBaseline(t *testing.T) {
	p := TwoGaussianParams{F1: 1.0, Sigma1: 30}
	// single zero-centred Gaussian: amplitude must fall monotonically
	prev := p.Amplitude(0, 0)
	for _, u := range []float64{1e9, 2e9, 4e9, 8e9} {
		cur := p.Amplitude(u, 0)
		if cur >= prev {
			t.Fatalf("amplitude did not decay at u=%g: %v >= %v", u, cur, prev)
		}
		prev = cur
	}
}

func TestParamsFromSample(t *testing.T) {
	p, err := ParamsFromSample([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	if p.F1 != 1 || p.Sigma1 != 2 || p.X2 != 3 || p.Y2 != 4 || p.F2 != 5 || p.Sigma2 != 6 {
		t.Fatalf("unexpected mapping: %+v", p)
	}
	if _, err := ParamsFromSample([]float64{1, 2, 3}); err == nil {
		t.Fatalf("short sample must fail")
	}
}
