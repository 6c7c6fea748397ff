package poly

import (
	"math/big"

	"github.com/katalvlaran/polyset/mat"
)

// EliminateVars projects away the variables in columns
// [first, first+n) (0-based over the full variable layout) using
// Fourier-Motzkin elimination. The columns remain in the row layout
// but end up unconstrained. b is consumed and returned.
//
// Steps, per eliminated column:
//  1. If an equality mentions the column, substitute it everywhere and
//     drop it.
//  2. Otherwise combine every (positive, negative) inequality pair on
//     the column with positive multipliers and keep the rest.
//
// Complexity: worst case O(n_ineq^2) new rows per column; Simplify is
// run once at the end to clear duplicates.
func (b *BasicSet) EliminateVars(first, n int) (*BasicSet, error) {
	total := b.Total()
	if first < 0 || n < 0 || first+n > total {
		return nil, ErrOutOfRange
	}
	if b.IsEmptyFlag() || n == 0 {
		return b, nil
	}
	width := 1 + total
	for col := first; col < first+n; col++ {
		pos := 1 + col
		// 1) Equality pivot.
		k := -1
		for r := range b.Eq {
			if b.Eq[r][pos].Sign() != 0 {
				k = r
				break
			}
		}
		if k >= 0 {
			piv := b.Eq[k]
			for r := range b.Eq {
				if r != k {
					mat.Elim(b.Eq[r], piv, pos, width)
				}
			}
			for r := range b.Ineq {
				mat.ElimSigned(b.Ineq[r], piv, pos, width)
			}
			b.Eq = append(b.Eq[:k], b.Eq[k+1:]...)
			continue
		}
		// 2) Fourier-Motzkin combination.
		var lower, upper, rest []mat.Vec
		for _, row := range b.Ineq {
			switch row[pos].Sign() {
			case 1:
				lower = append(lower, row)
			case -1:
				upper = append(upper, row)
			default:
				rest = append(rest, row)
			}
		}
		next := rest
		a := new(big.Int)
		f := new(big.Int)
		for _, lo := range lower {
			for _, up := range upper {
				row := mat.NewVec(width)
				a.Neg(up[pos])
				f.Set(lo[pos])
				mat.Combine(row, a, lo, f, up, width)
				next = append(next, row)
			}
		}
		b.Ineq = next
	}
	b.clearComputed()

	return b.Simplify(), nil
}

// RemoveDims eliminates n set dimensions starting at dim index first
// (relative to the set dimensions, after the parameters) and drops the
// corresponding columns. b must have no divs. b is consumed and
// returned.
func (b *BasicSet) RemoveDims(first, n int) (*BasicSet, error) {
	if len(b.Divs) != 0 {
		return nil, ErrHasDivs
	}
	if first < 0 || n < 0 || first+n > b.Space.Dim() {
		return nil, ErrOutOfRange
	}
	col := b.Space.Param + first
	b, err := b.EliminateVars(col, n)
	if err != nil {
		return nil, err
	}
	drop := func(rows []mat.Vec) {
		for i, row := range rows {
			rows[i] = append(row[:1+col], row[1+col+n:]...)
		}
	}
	drop(b.Eq)
	drop(b.Ineq)
	b.Space.Out -= n

	return b, nil
}

// RemoveDivs eliminates all div columns of b and drops the div
// definitions. b is consumed and returned.
func (b *BasicSet) RemoveDivs() (*BasicSet, error) {
	nDiv := len(b.Divs)
	if nDiv == 0 {
		return b, nil
	}
	first := b.Space.Total()
	b, err := b.EliminateVars(first, nDiv)
	if err != nil {
		return nil, err
	}
	for i, row := range b.Eq {
		b.Eq[i] = row[:1+first]
	}
	for i, row := range b.Ineq {
		b.Ineq[i] = row[:1+first]
	}
	b.Divs = nil

	return b, nil
}
