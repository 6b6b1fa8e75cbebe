// Package visdata loads the model-comparison table the MCMC fitter
// writes next to its chains: one row per interferometric observation,
// with baseline coordinates, the measured visibility amplitude and its
// uncertainty, and the best-fit model prediction.
package visdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// Required header fields, case-sensitive.
var requiredColumns = []string{"uCo", "vCo", "VisAmp", "Sigma", "Model"}

// coordScale converts the raw baseline coordinates (wavelengths) to
// gigalambda for the plot axis.
const coordScale = 1e-9

// Table holds the model-comparison data column-wise. U and V keep the
// raw coordinates (the sky model is evaluated in raw units); Baseline
// is the Euclidean length of the scaled coordinates. VisAmp is the
// magnitude of the measured visibility.
type Table struct {
	U, V     []float64
	Baseline []float64
	VisAmp   []float64
	Sigma    []float64
	Model    []float64
}

// Len returns the number of observations.
func (t *Table) Len() int { return len(t.Baseline) }

// Load reads a comma-delimited model table with a header row. All of
// uCo, vCo, VisAmp, Sigma and Model must be present (exact,
// case-sensitive names); extra columns are ignored.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", path, err)
	}
	colIdx := map[string]int{}
	for i, name := range header {
		colIdx[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := colIdx[name]; !ok {
			return nil, fmt.Errorf("%s: missing required column %q (have %v)", path, name, header)
		}
	}

	t := &Table{}
	rowNo := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: read row %d: %w", path, rowNo+1, err)
		}
		rowNo++
		get := func(name string) (float64, error) {
			v, err := strconv.ParseFloat(rec[colIdx[name]], 64)
			if err != nil {
				return 0, fmt.Errorf("%s:%d: column %q: %w", path, rowNo, name, err)
			}
			return v, nil
		}
		u, err := get("uCo")
		if err != nil {
			return nil, err
		}
		v, err := get("vCo")
		if err != nil {
			return nil, err
		}
		vis, err := get("VisAmp")
		if err != nil {
			return nil, err
		}
		sig, err := get("Sigma")
		if err != nil {
			return nil, err
		}
		model, err := get("Model")
		if err != nil {
			return nil, err
		}
		us, vs := u*coordScale, v*coordScale
		t.U = append(t.U, u)
		t.V = append(t.V, v)
		t.Baseline = append(t.Baseline, math.Sqrt(us*us+vs*vs))
		t.VisAmp = append(t.VisAmp, math.Abs(vis))
		t.Sigma = append(t.Sigma, sig)
		t.Model = append(t.Model, model)
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	return t, nil
}

// ValidatePositive checks the precondition for a logarithmic amplitude
// axis: every observed and model amplitude must be strictly positive.
func (t *Table) ValidatePositive() error {
	for i := range t.Baseline {
		if t.VisAmp[i] <= 0 {
			return fmt.Errorf("row %d: visibility amplitude %g is not positive; cannot plot on a log axis", i+1, t.VisAmp[i])
		}
		if t.Model[i] <= 0 {
			return fmt.Errorf("row %d: model amplitude %g is not positive; cannot plot on a log axis", i+1, t.Model[i])
		}
	}
	return nil
}
