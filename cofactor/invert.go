// SPDX-License-Identifier: MIT

package cofactor

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lintrace/latex"
	"github.com/katalvlaran/lintrace/matrix"
	"github.com/katalvlaran/lintrace/rational"
	"github.com/katalvlaran/lintrace/trace"
)

// inverter holds the state of one Invert call.
type inverter struct {
	name   string
	log    *trace.Log
	logger *zap.Logger
}

// record appends a step and emits a debug entry for it.
func (v *inverter) record(description string, m *matrix.Dense, content string) {
	idx := v.log.Append(description, m, content)
	v.logger.Debug("step recorded",
		zap.Int("step", idx+1),
		zap.String("description", description),
	)
}

// Invert computes det(m), every minor and cofactor, the adjugate and, when m is
// nonsingular, the inverse, recording each stage as a trace step.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); work on a private copy of the entries.
//   - Stage 2: record the original matrix and det(m). Stop after a
//     "Singular matrix" step if det(m) == 0.
//   - Stage 3: for each (i,j) in row-major order, build M_ij, det(M_ij) and
//     C_ij, one step per cell.
//   - Stage 4: record C, adj = Cᵀ, the formula (1/det)·adj and the evaluated inverse.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (wrapped with "Invert"); no trace.
//
// Determinism:
//   - Fixed row-major cell order; identical inputs give identical traces.
//
// Complexity:
//   - Time O(n²·(n−1)!) from the per-cell cofactor expansions.
func Invert(m *matrix.Dense, opts ...Option) (Result, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opInvert, err)
	}
	o := gatherOptions(opts)

	v := &inverter{name: o.name, log: trace.New(), logger: o.logger}
	a := m.Clone()
	rows := a.ToRows()
	n := len(rows)
	v.logger.Debug("inversion started", zap.Int("n", n))

	// Stage 2: original matrix and determinant.
	v.record(descOriginal, a, latex.Display(v.name+` \;=\; `+latex.Matrix(a)))

	det := detRows(rows)
	v.record(descDet, nil, latex.Display(`\det(`+v.name+`) \;=\; `+latex.Rational(det)))

	if det.IsZero() {
		v.record(descSingular, nil,
			`The matrix is singular: \(\det(`+v.name+`)=0\). No inverse exists.`)
		v.logger.Info("inversion finished",
			zap.Stringer("determinant", det),
			zap.Bool("singular", true),
			zap.Int("steps", v.log.Len()),
		)

		return Result{Determinant: det, Singular: true, Trace: v.log}, nil
	}

	// Stage 3: minors and cofactors, one step per cell.
	cof := make([][]rational.Rational, n)
	var (
		i, j     int
		minor    *matrix.Dense
		minorDet rational.Rational
		err      error
	)
	for i = 0; i < n; i++ {
		cof[i] = make([]rational.Rational, n)
		for j = 0; j < n; j++ {
			minor = nil // 1×1 input: the minor is empty
			if n > 1 {
				if minor, err = matrix.Minor(a, i, j); err != nil {
					return Result{}, fmt.Errorf("%s: %w", opInvert, err)
				}
			}
			minorDet = detRows(minorRows(rows, i, j))
			cof[i][j] = signed(i+j, minorDet)

			v.record(fmt.Sprintf(descMinor, i+1, j+1, i+1, j+1), minor,
				cellContent(i+1, j+1, minor, minorDet, cof[i][j]))
		}
	}

	// Stage 4: cofactor matrix, adjugate, formula, inverse.
	cofM, err := matrix.FromRows(cof)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opInvert, err)
	}
	v.record(descCofactors, cofM, latex.Display(`C \;=\; `+latex.Matrix(cofM)))

	adj, err := matrix.Transpose(cofM)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opInvert, err)
	}
	v.record(fmt.Sprintf(descAdjugate, v.name), adj,
		latex.Display(`\operatorname{adj}(`+v.name+`) \;=\; C^{T} \;=\; `+latex.Matrix(adj)))

	v.record(descFormula, nil, latex.Display(
		v.name+`^{-1} \;=\; \frac{1}{\det(`+v.name+`)}\,\operatorname{adj}(`+v.name+`) \;=\; `+
			`\frac{1}{`+latex.Rational(det)+`}\,`+latex.Matrix(adj)))

	invDet, err := det.Inv()
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opInvert, err)
	}
	inv, err := matrix.Scale(adj, invDet)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opInvert, err)
	}
	v.record(descInverse, inv, latex.Display(v.name+`^{-1} \;=\; `+latex.Matrix(inv)))

	v.logger.Info("inversion finished",
		zap.Stringer("determinant", det),
		zap.Bool("singular", false),
		zap.Int("steps", v.log.Len()),
	)

	return Result{
		Determinant: det,
		Cofactors:   cofM,
		Adjugate:    adj,
		Inverse:     inv,
		Trace:       v.log,
	}, nil
}

// cellContent renders one minor/cofactor step. r and c are 1-based.
func cellContent(r, c int, minor *matrix.Dense, minorDet, cof rational.Rational) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `\textbf{Minor} $M_{%d,%d}$`+"\n", r, c)
	sb.WriteString(latex.Display(latex.Matrix(minor)))
	sb.WriteByte('\n')
	sb.WriteString(latex.Display(fmt.Sprintf(
		`\begin{aligned}\det(M_{%d,%d}) &= %s \\[4pt] C_{%d,%d} &= (-1)^{%d+%d}\det(M_{%d,%d}) = %s\end{aligned}`,
		r, c, latex.Rational(minorDet), r, c, r, c, r, c, latex.Rational(cof))))

	return sb.String()
}
