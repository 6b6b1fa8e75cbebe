package mcmc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// helper to write a chain fixture
func writeChain(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chains.dat")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadMatrixShape(t *testing.T) {
	path := writeChain(t, "1 2 3\n4 5 6\n\n# trailing comment\n7 8 9\n")
	m, err := LoadMatrix(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Rows != 3 || m.Cols != 3 {
		t.Fatalf("expected 3x3, got %dx%d", m.Rows, m.Cols)
	}
	if m.At(2, 1) != 8 {
		t.Fatalf("At(2,1)=%v want 8", m.At(2, 1))
	}
	col := m.Column(2)
	if col[0] != 3 || col[1] != 6 || col[2] != 9 {
		t.Fatalf("unexpected column: %v", col)
	}
}

func TestLoadMatrixRaggedRow(t *testing.T) {
	path := writeChain(t, "1 2\n3 4 5\n")
	if _, err := LoadMatrix(path); err == nil {
		t.Fatalf("expected error for ragged row")
	}
}

func TestLoadMatrixNonNumeric(t *testing.T) {
	path := writeChain(t, "1 2\n3 x\n")
	_, err := LoadMatrix(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "column 1") {
		t.Fatalf("error should name the column: %v", err)
	}
}

func TestLoadMatrixMissingFile(t *testing.T) {
	if _, err := LoadMatrix(filepath.Join(t.TempDir(), "nope.dat")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadMatrixEmpty(t *testing.T) {
	path := writeChain(t, "\n# only a comment\n")
	if _, err := LoadMatrix(path); err == nil {
		t.Fatalf("expected error for empty matrix")
	}
}

func TestNormalizeToLast(t *testing.T) {
	path := writeChain(t, "1 2\n2 4\n4 8\n")
	m, err := LoadMatrix(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []float64{0.25, 0.5, 1.0}
	for c := 0; c < m.Cols; c++ {
		got, err := NormalizeToLast(m.Column(c))
		if err != nil {
			t.Fatalf("normalize col %d: %v", c, err)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("col %d: got %v want %v", c, got, want)
			}
		}
		if got[len(got)-1] != 1.0 {
			t.Fatalf("col %d: final normalized value %v, want exactly 1", c, got[len(got)-1])
		}
	}
}

func TestNormalizeToLastTwoRows(t *testing.T) {
	got, err := NormalizeToLast([]float64{3, 6})
	if err != nil {
		t.Fatalf("two-row chain must normalize: %v", err)
	}
	if got[0] != 0.5 || got[1] != 1.0 {
		t.Fatalf("got %v", got)
	}
}

func TestNormalizeToLastZeroFinal(t *testing.T) {
	if _, err := NormalizeToLast([]float64{1, 2, 0}); err == nil {
		t.Fatalf("zero final value must be rejected")
	}
}

func TestDiscard(t *testing.T) {
	path := writeChain(t, "1 1\n2 2\n3 3\n4 4\n")
	m, _ := LoadMatrix(path)

	kept, err := m.Discard(2)
	if err != nil {
		t.Fatalf("discard: %v", err)
	}
	if kept.Rows != 2 || kept.At(0, 0) != 3 {
		t.Fatalf("unexpected remainder: rows=%d first=%v", kept.Rows, kept.At(0, 0))
	}

	if _, err := m.Discard(4); err == nil {
		t.Fatalf("discarding every row must fail")
	}
	if _, err := m.Discard(-1); err == nil {
		t.Fatalf("negative burn-in must fail")
	}
	same, err := m.Discard(0)
	if err != nil || same.Rows != 4 {
		t.Fatalf("zero burn-in should be a no-op: %v", err)
	}
}
