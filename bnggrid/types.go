package bnggrid

import "fmt"

// Matrix is an immutable rectangular grid of reference labels. Rows grow
// southward, columns eastward. The zero value is an empty matrix; useful
// matrices come from Letters, Matrix100km, Matrix5km and Window.
type Matrix struct {
	rows, cols int
	cells      [][]string
}

// newMatrix wraps pre-built storage. Callers hand over ownership; the
// matrix is never mutated afterwards.
func newMatrix(cells [][]string) Matrix {
	if len(cells) == 0 {
		return Matrix{}
	}
	return Matrix{rows: len(cells), cols: len(cells[0]), cells: cells}
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// InBounds reports whether (row, col) lies within the matrix.
func (m Matrix) InBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// At returns the label at (row, col), or ErrIndex when out of range.
func (m Matrix) At(row, col int) (string, error) {
	if !m.InBounds(row, col) {
		return "", fmt.Errorf("%w: (%d, %d) in %dx%d", ErrIndex, row, col, m.rows, m.cols)
	}
	return m.cells[row][col], nil
}

// Row returns a copy of the given row, or nil when out of range.
func (m Matrix) Row(row int) []string {
	if row < 0 || row >= m.rows {
		return nil
	}
	out := make([]string, m.cols)
	copy(out, m.cells[row])
	return out
}

// Index addresses a matrix cell: Row grows southward, Col eastward.
type Index struct {
	Row, Col int
}

// Window is a rectangular slice of the 5 km matrix. Origin is the index
// of the window's (0,0) cell within the full matrix.
type Window struct {
	Matrix Matrix
	Origin Index
}

// Locate returns the window-relative index of a 5 km reference, or
// ErrIndex when the reference falls outside the window.
func (w Window) Locate(ref string) (Index, error) {
	idx, err := Locate5km(ref)
	if err != nil {
		return Index{}, err
	}
	rel := Index{Row: idx.Row - w.Origin.Row, Col: idx.Col - w.Origin.Col}
	if !w.Matrix.InBounds(rel.Row, rel.Col) {
		return Index{}, fmt.Errorf("%w: %s outside window", ErrIndex, ref)
	}
	return rel, nil
}
