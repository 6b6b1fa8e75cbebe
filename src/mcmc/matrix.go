// Package mcmc loads and summarizes the output of the interferometric
// MCMC fitter: chain matrices (one row per iteration, one column per
// model parameter) written by the sampler as plain whitespace-delimited
// ASCII.
package mcmc

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Matrix is a dense, row-major numeric matrix.
type Matrix struct {
	Rows, Cols int
	data       []float64
}

// LoadMatrix reads a whitespace-delimited numeric matrix from path.
// Every row must carry the same number of fields; blank lines and
// full-line # comments are skipped.
func LoadMatrix(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chain file: %w", err)
	}
	defer f.Close()

	m := &Matrix{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if m.Cols == 0 {
			m.Cols = len(fields)
		} else if len(fields) != m.Cols {
			return nil, fmt.Errorf("%s:%d: expected %d columns, found %d", path, lineNo, m.Cols, len(fields))
		}
		for ci, fv := range fields {
			v, err := strconv.ParseFloat(fv, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: column %d: %w", path, lineNo, ci, err)
			}
			m.data = append(m.data, v)
		}
		m.Rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read chain file: %w", err)
	}
	if m.Rows == 0 {
		return nil, fmt.Errorf("%s: no numeric rows", path)
	}
	return m, nil
}

// At returns the element at row r, column c.
func (m *Matrix) At(r, c int) float64 { return m.data[r*m.Cols+c] }

// Column returns a copy of column c.
func (m *Matrix) Column(c int) []float64 {
	out := make([]float64, m.Rows)
	for r := 0; r < m.Rows; r++ {
		out[r] = m.data[r*m.Cols+c]
	}
	return out
}

// Row returns a copy of row r.
func (m *Matrix) Row(r int) []float64 {
	out := make([]float64, m.Cols)
	copy(out, m.data[r*m.Cols:(r+1)*m.Cols])
	return out
}

// Discard drops the first n rows (burn-in) and returns the remainder.
// At least one row must survive.
func (m *Matrix) Discard(n int) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("burn-in must be non-negative, got %d", n)
	}
	if n >= m.Rows {
		return nil, fmt.Errorf("burn-in %d leaves no samples (matrix has %d rows)", n, m.Rows)
	}
	if n == 0 {
		return m, nil
	}
	return &Matrix{
		Rows: m.Rows - n,
		Cols: m.Cols,
		data: m.data[n*m.Cols:],
	}, nil
}

// NormalizeToLast divides every element of col by its final element so
// a converged chain ends at exactly 1. A zero final value cannot be
// used as a reference and is rejected rather than producing Inf.
func NormalizeToLast(col []float64) ([]float64, error) {
	if len(col) == 0 {
		return nil, fmt.Errorf("empty column")
	}
	last := col[len(col)-1]
	if last == 0 {
		return nil, fmt.Errorf("final chain value is zero; cannot normalize")
	}
	out := make([]float64, len(col))
	for i, v := range col {
		out[i] = v / last
	}
	return out, nil
}
