// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/randcheck/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		m, err := matrix.NewDense(tc.rows, tc.cols)
		if err != nil {
			t.Fatalf("NewDense(%d,%d): %v", tc.rows, tc.cols, err)
		}
		// Immediately after creation all elements must be 0.
		var i, j int // loop iterators
		for i = 0; i < tc.rows; i++ {
			for j = 0; j < tc.cols; j++ {
				v, err := m.At(i, j)
				if err != nil {
					t.Fatalf("At(%d,%d): %v", i, j, err)
				}
				if v != 0 {
					t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
				}
			}
		}
	}
}

func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{0, 0},
		{-1, 2},
	} {
		if _, err := matrix.NewDense(tc.rows, tc.cols); !errors.Is(err, matrix.ErrInvalidDimensions) {
			t.Fatalf("NewDense(%d,%d): want ErrInvalidDimensions, got %v", tc.rows, tc.cols, err)
		}
	}
}

func TestFromRowsRoundTrip(t *testing.T) {
	rows := [][]int64{
		{1, 2, 3},
		{4, 5, 6},
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", m.Rows(), m.Cols())
	}
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 3; j++ {
			v, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if v != rows[i][j] {
				t.Fatalf("At(%d,%d) = %d, want %d", i, j, v, rows[i][j])
			}
		}
	}
}

func TestFromRowsCopiesInput(t *testing.T) {
	rows := [][]int64{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	rows[0][0] = 99 // mutate caller data after construction
	v, err := m.At(0, 0)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if v != 1 {
		t.Fatalf("Dense aliased caller slice: At(0,0) = %d, want 1", v)
	}
}

func TestFromRowsRejectsRagged(t *testing.T) {
	_, err := matrix.FromRows([][]int64{{1, 2}, {3}})
	if !errors.Is(err, matrix.ErrRaggedRows) {
		t.Fatalf("want ErrRaggedRows, got %v", err)
	}
}

func TestFromRowsRejectsEmpty(t *testing.T) {
	for _, rows := range [][][]int64{nil, {}, {{}}} {
		if _, err := matrix.FromRows(rows); !errors.Is(err, matrix.ErrInvalidDimensions) {
			t.Fatalf("FromRows(%v): want ErrInvalidDimensions, got %v", rows, err)
		}
	}
}

func TestAtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for _, tc := range []struct{ i, j int }{
		{-1, 0}, {0, -1}, {2, 0}, {0, 2},
	} {
		if _, err := m.At(tc.i, tc.j); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("At(%d,%d): want ErrOutOfRange, got %v", tc.i, tc.j, err)
		}
		if err := m.Set(tc.i, tc.j, 1); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("Set(%d,%d): want ErrOutOfRange, got %v", tc.i, tc.j, err)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	c := m.Clone()
	if err := c.Set(0, 0, 42); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := m.At(0, 0)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if v != 1 {
		t.Fatalf("Clone shares storage with the original: At(0,0) = %d, want 1", v)
	}
}

func TestStringRendering(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{1, 2}, {-3, 4}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	want := "[1 2]\n[-3 4]\n"
	if got := m.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
