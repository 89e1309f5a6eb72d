// SPDX-License-Identifier: MIT
// Package matrix - Matrix type and read-only helpers.

package matrix

import "strings"

// Cell values of an adjacency matrix.
const (
	Disconnected = 0
	Connected    = 1
)

// Matrix is a square grid of 0/1 cells, row-major: m[i][j] == Connected iff
// an edge (i,j) or (j,i) was present when the matrix was built.
type Matrix [][]int

// New allocates an n×n zero matrix. Negative n yields an empty matrix.
// Complexity: O(n²).
func New(n int) Matrix {
	if n < 0 {
		n = 0
	}
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]int, n)
	}

	return m
}

// filled allocates an n×n matrix with every cell set to v.
func filled(n, v int) Matrix {
	m := New(n)
	if v == 0 {
		return m
	}
	for i := range m {
		for j := range m[i] {
			m[i][j] = v
		}
	}

	return m
}

// Size returns the row count (equal to the column count for square input).
func (m Matrix) Size() int { return len(m) }

// Has reports whether cell (i,j) is Connected. Out-of-range indices report false.
func (m Matrix) Has(i, j int) bool {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[i]) {
		return false
	}

	return m[i][j] == Connected
}

// Clone returns a deep copy; rows never alias the receiver's rows.
// Complexity: O(n²).
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}

	return out
}

// Equal reports cell-wise equality of two matrices of the same shape.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(o[i]) {
			return false
		}
		for j := range m[i] {
			if m[i][j] != o[i][j] {
				return false
			}
		}
	}

	return true
}

// IsSymmetric reports whether m[i][j] == m[j][i] for all i, j.
// Scans the upper triangle only. Non-square input reports false.
func (m Matrix) IsSymmetric() bool {
	if err := validateSquare(m); err != nil {
		return false
	}
	for i := 0; i < len(m); i++ {
		for j := i + 1; j < len(m); j++ {
			if m[i][j] != m[j][i] {
				return false
			}
		}
	}

	return true
}

// String renders one row per line, cells separated by spaces.
func (m Matrix) String() string {
	var b strings.Builder
	for _, row := range m {
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			if v == Connected {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
