package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rhaas80/MCMC-BHPIRE/src/mcmc"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// synthetic chain: 6 parameters drifting toward distinct targets,
// deterministic so renders are reproducible
func syntheticChain(t *testing.T, rows int) *mcmc.Matrix {
	t.Helper()
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		frac := float64(r+1) / float64(rows)
		for c := 0; c < 6; c++ {
			target := 0.5 + 0.3*float64(c)
			v := target*frac + 0.05*math.Sin(float64(r)*0.7+float64(c))
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.6f", v)
		}
		sb.WriteByte('\n')
	}
	m, err := mcmc.LoadMatrix(writeFixture(t, "chains.dat", sb.String()))
	if err != nil {
		t.Fatalf("load synthetic chain: %v", err)
	}
	return m
}

func TestTraceChartSize(t *testing.T) {
	m := syntheticChain(t, 50)
	img, err := TraceChart(m, 900, 400)
	if err != nil {
		t.Fatalf("trace chart: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 900 || b.Dy() != 400 {
		t.Fatalf("image size %dx%d, want 900x400", b.Dx(), b.Dy())
	}
}

func TestTraceChartSingleRow(t *testing.T) {
	m, err := mcmc.LoadMatrix(writeFixture(t, "chains.dat", "1 2 3\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := TraceChart(m, 800, 400); err == nil {
		t.Fatalf("single-row chain must be rejected")
	}
}

func TestTraceChartTwoRows(t *testing.T) {
	m, err := mcmc.LoadMatrix(writeFixture(t, "chains.dat", "1 2\n2 4\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := TraceChart(m, 800, 400); err != nil {
		t.Fatalf("two-row chain must render: %v", err)
	}
}

func TestTraceChartZeroFinalValue(t *testing.T) {
	m, err := mcmc.LoadMatrix(writeFixture(t, "chains.dat", "1 1\n2 0\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	_, err = TraceChart(m, 800, 400)
	if err == nil {
		t.Fatalf("zero final value must be rejected, not rendered as Inf")
	}
	if !strings.Contains(err.Error(), "parameter 1") {
		t.Fatalf("error should name the parameter: %v", err)
	}
}
