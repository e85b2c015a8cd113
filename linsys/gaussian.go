// SPDX-License-Identifier: MIT

package linsys

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/numeth/matrix"
)

// Gaussian solves the system by elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: build the augmented matrix [A | b].
//   - Stage 2: for each column i pick the row r ≥ i with the largest |a_ri|
//     (the first one on ties), swap it into row i, fail when |a_ii| is below
//     PivotTolerance, and eliminate the entries below the pivot.
//   - Stage 3: back substitution from the last row up:
//     x_i = (b_i - Σ_{j>i} a_ij·x_j) / a_ii.
//
// With WithLogger, every pivot step is logged at debug level.
//
// Errors:
//   - ErrSingularMatrix.
//
// Complexity: O(n³) time, O(n²) space.
func Gaussian(sys System, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	n := sys.N()

	// Stage 1: augmented working copy.
	aug, err := matrix.NewDense(n, n+1)
	if err != nil {
		return nil, linsysErrorf(opGaussian, err)
	}
	var (
		i, j, k int
		v       float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = sys.a.At(i, j)
			_ = aug.Set(i, j, v)
		}
		_ = aug.Set(i, n, sys.b[i])
	}
	at := func(r, c int) float64 {
		x, _ := aug.At(r, c)
		return x
	}

	// Stage 2: forward elimination.
	for i = 0; i < n; i++ {
		maxRow := i
		for k = i + 1; k < n; k++ {
			if math.Abs(at(k, i)) > math.Abs(at(maxRow, i)) {
				maxRow = k
			}
		}
		if err = aug.SwapRows(i, maxRow); err != nil {
			return nil, linsysErrorf(opGaussian, err)
		}

		pivot := at(i, i)
		if math.Abs(pivot) < PivotTolerance {
			return nil, linsysErrorf(opGaussian, fmt.Errorf("zero pivot in column %d: %w", i, ErrSingularMatrix))
		}
		for j = i + 1; j < n; j++ {
			factor := at(j, i) / pivot
			for k = i; k <= n; k++ {
				_ = aug.Set(j, k, at(j, k)-factor*at(i, k))
			}
		}

		if o.log.Enabled(context.Background(), slog.LevelDebug) {
			o.log.Debug("gaussian pivot step",
				slog.Int("step", i),
				slog.Int("pivot_row", maxRow),
				slog.Float64("pivot", pivot),
				slog.Any("augmented", aug.RawRows()))
		}
	}

	// Stage 3: back substitution.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum := at(i, n)
		for j = i + 1; j < n; j++ {
			sum -= at(i, j) * x[j]
		}
		x[i] = sum / at(i, i)
	}

	return x, nil
}
