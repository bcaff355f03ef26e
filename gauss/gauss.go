// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lintrace/latex"
	"github.com/katalvlaran/lintrace/matrix"
	"github.com/katalvlaran/lintrace/rational"
	"github.com/katalvlaran/lintrace/trace"
)

// eliminator holds the private working state of one Eliminate call.
type eliminator struct {
	rows   [][]rational.Rational // working copy, mutated in place
	n      int
	swaps  int
	log    *trace.Log
	logger *zap.Logger
}

// Eliminate reduces a copy of m to upper triangular form and returns its
// determinant together with the full step trace.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); copy m into a private working set of rows.
//   - Stage 2: record the initial matrix.
//   - Stage 3: for each column k, secure a nonzero pivot (swap or stop), then
//     clear every nonzero entry below it, recording each swap and row operation.
//   - Stage 4: record the triangular form and the signed diagonal product.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (wrapped with "Eliminate").
//
// Determinism:
//   - First-nonzero-below pivot choice and fixed i→j loops; identical inputs
//     always produce identical traces.
//
// Complexity:
//   - Time O(n³), Space O(n²) per snapshot.
func Eliminate(m *matrix.Dense, opts ...Option) (Result, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEliminate, err)
	}
	o := gatherOptions(opts)

	e := &eliminator{
		rows:   m.ToRows(),
		n:      m.Rows(),
		log:    trace.New(),
		logger: o.logger,
	}
	e.logger.Debug("elimination started", zap.Int("n", e.n))

	if err := e.record(descInitial); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEliminate, err)
	}

	var (
		k, i, j, p int
		pivot      rational.Rational
		factor     rational.Rational
		err        error
	)
	for k = 0; k < e.n; k++ {
		// Secure a nonzero pivot at (k,k).
		if e.rows[k][k].IsZero() {
			p = e.firstNonzeroBelow(k)
			if p < 0 {
				if err = e.record(fmt.Sprintf(descNoPivot, k+1)); err != nil {
					return Result{}, fmt.Errorf("%s: %w", opEliminate, err)
				}

				return e.finish(rational.Zero(), true)
			}
			e.rows[k], e.rows[p] = e.rows[p], e.rows[k]
			e.swaps++
			if err = e.record(fmt.Sprintf(descSwap, k+1, p+1)); err != nil {
				return Result{}, fmt.Errorf("%s: %w", opEliminate, err)
			}
		}
		pivot = e.rows[k][k]

		// Clear column k below the pivot.
		for i = k + 1; i < e.n; i++ {
			if e.rows[i][k].IsZero() {
				continue
			}
			if factor, err = e.rows[i][k].Div(pivot); err != nil {
				return Result{}, fmt.Errorf("%s: %w", opEliminate, err)
			}
			// columns left of k are already zero
			for j = k; j < e.n; j++ {
				e.rows[i][j] = e.rows[i][j].Sub(factor.Mul(e.rows[k][j]))
			}
			if err = e.record(fmt.Sprintf(descRowOp, i+1, i+1, factor, k+1)); err != nil {
				return Result{}, fmt.Errorf("%s: %w", opEliminate, err)
			}
		}
	}

	diag := rational.One()
	for k = 0; k < e.n; k++ {
		diag = diag.Mul(e.rows[k][k])
	}
	det := diag
	if e.swaps%2 != 0 {
		det = det.Neg()
	}

	if err = e.record(fmt.Sprintf(descTriangular, diag, e.swaps, det)); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEliminate, err)
	}
	if err = e.record(fmt.Sprintf(descDet, det)); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEliminate, err)
	}

	return e.finish(det, false)
}

// firstNonzeroBelow returns the first row index p > k with a nonzero entry in
// column k, or -1 if there is none.
func (e *eliminator) firstNonzeroBelow(k int) int {
	var i int
	for i = k + 1; i < e.n; i++ {
		if !e.rows[i][k].IsZero() {
			return i
		}
	}

	return -1
}

// record snapshots the working rows and appends a step.
func (e *eliminator) record(description string) error {
	snap, err := matrix.FromRows(e.rows)
	if err != nil {
		return err
	}
	idx := e.log.Append(description, snap, latex.Display(latex.Matrix(snap)))
	e.logger.Debug("step recorded",
		zap.Int("step", idx+1),
		zap.String("description", description),
	)

	return nil
}

// finish packages the working state into a Result.
func (e *eliminator) finish(det rational.Rational, singular bool) (Result, error) {
	reduced, err := matrix.FromRows(e.rows)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEliminate, err)
	}
	e.logger.Info("elimination finished",
		zap.Stringer("determinant", det),
		zap.Int("swaps", e.swaps),
		zap.Bool("singular", singular),
		zap.Int("steps", e.log.Len()),
	)

	return Result{
		Determinant: det,
		Swaps:       e.swaps,
		Singular:    singular,
		Reduced:     reduced,
		Trace:       e.log,
	}, nil
}
