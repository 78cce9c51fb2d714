// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All functions return these sentinels and tests check
// them via errors.Is. No function panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Sentinels are returned wrapped with an operation
// tag (fmt.Errorf("Op: %w", ErrX)); callers match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: non-square input where square is required, unequal shapes
	// across a verification triple, or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows indicates that FromRows received rows of unequal
	// length; all rows of a matrix must have uniform length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrBadEntry indicates an entry outside the domain a caller declared,
	// e.g. a non-0/1 value in a bipartite adjacency matrix.
	ErrBadEntry = errors.New("matrix: entry outside expected domain")
)
