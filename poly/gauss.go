package poly

import (
	"math/big"

	"github.com/katalvlaran/polyset/mat"
)

// Gauss performs integer Gaussian elimination on the equalities of b
// and substitutes them into the inequalities and div definitions.
//
// Steps:
//  1. Bring the equality rows into echelon form with positive pivots,
//     eliminating each pivot variable from every other constraint.
//  2. Reduce each equality by the gcd of its entries.
//  3. A leftover row 0 = c with c != 0, or an integer equality whose
//     coefficient gcd does not divide the constant, proves emptiness.
//
// b is consumed and returned.
// Complexity: O(n_eq * (n_eq + n_ineq) * Total) big-integer ops.
func (b *BasicSet) Gauss() *BasicSet {
	if b.IsEmptyFlag() || len(b.Eq) == 0 {
		return b
	}
	total := b.Total()
	width := 1 + total

	done := 0
	for col := 0; col < total && done < len(b.Eq); col++ {
		k := -1
		for r := done; r < len(b.Eq); r++ {
			if b.Eq[r][1+col].Sign() != 0 {
				k = r
				break
			}
		}
		if k < 0 {
			continue
		}
		b.Eq[done], b.Eq[k] = b.Eq[k], b.Eq[done]
		if b.Eq[done][1+col].Sign() < 0 {
			mat.Neg(b.Eq[done], b.Eq[done], width)
		}
		if !b.normalizeEq(b.Eq[done], width) {
			return b.SetToEmpty()
		}
		for r := range b.Eq {
			if r == done {
				continue
			}
			mat.Elim(b.Eq[r], b.Eq[done], 1+col, width)
		}
		for r := range b.Ineq {
			mat.ElimSigned(b.Ineq[r], b.Eq[done], 1+col, width)
		}
		for r := range b.Divs {
			if b.Divs[r].Row[1+col].Sign() != 0 {
				mat.ElimSigned(b.Divs[r].Row, b.Eq[done], 1+col, width)
			}
		}
		done++
	}

	// Leftover rows have all-zero coefficients.
	for r := done; r < len(b.Eq); r++ {
		if b.Eq[r][0].Sign() != 0 {
			return b.SetToEmpty()
		}
	}
	b.Eq = b.Eq[:done]
	for r := range b.Eq {
		if !b.normalizeEq(b.Eq[r], width) {
			return b.SetToEmpty()
		}
	}

	return b
}

// normalizeEq reduces an equality row by the gcd of all its entries and
// reports whether the row remains satisfiable. For integer sets a
// coefficient gcd that does not divide the constant proves emptiness.
func (b *BasicSet) normalizeEq(row mat.Vec, width int) bool {
	g := mat.AbsGCD(row, width)
	if g.Sign() != 0 {
		mat.ScaleDownExact(row, g, width)
	}
	if b.IsRational() {
		return true
	}
	gc := mat.AbsGCD(row[1:], width-1)
	if gc.Sign() == 0 {
		return true
	}
	rem := new(big.Int).Mod(row[0], gc)

	return rem.Sign() == 0
}

// NormalizeConstraints reduces every constraint row by the gcd of its
// variable coefficients. Rational rows divide exactly (the gcd is
// extended with the constant); integer rows tighten the constant by
// flooring. b is consumed and returned.
func (b *BasicSet) NormalizeConstraints() *BasicSet {
	if b.IsEmptyFlag() {
		return b
	}
	width := 1 + b.Total()
	for _, row := range b.Eq {
		if !b.normalizeEq(row, width) {
			return b.SetToEmpty()
		}
	}
	for _, row := range b.Ineq {
		g := mat.AbsGCD(row[1:], width-1)
		if g.Sign() == 0 || g.Cmp(bigOne) == 0 {
			continue
		}
		if b.IsRational() {
			if row[0].Sign() != 0 {
				g.GCD(nil, nil, g, new(big.Int).Abs(row[0]))
			}
			mat.ScaleDownExact(row, g, width)
			continue
		}
		mat.ScaleDownExact(row[1:], g, width-1)
		floorDiv(row[0], g)
	}

	return b
}

// floorDiv replaces c with floor(c/g) for positive g.
func floorDiv(c, g *big.Int) {
	m := new(big.Int)
	c.DivMod(c, g, m)
}

// Simplify brings b to a reduced form: Gauss elimination, constraint
// normalization, removal of trivial and duplicate inequalities, and
// detection of opposite inequality pairs (which become equalities, or
// prove emptiness when contradictory). Repeats until stable.
// b is consumed and returned.
func (b *BasicSet) Simplify() *BasicSet {
	for {
		if b.IsEmptyFlag() {
			return b
		}
		b = b.Gauss().NormalizeConstraints()
		if b.IsEmptyFlag() {
			return b
		}
		progress, empty := b.reduceIneqs()
		if empty {
			return b.SetToEmpty()
		}
		if !progress {
			return b
		}
	}
}

// reduceIneqs drops trivial and duplicate inequalities and promotes
// opposite pairs with zero slack to equalities. It reports whether a
// promotion happened (requiring another Gauss pass) and whether a
// contradiction was found.
func (b *BasicSet) reduceIneqs() (progress, empty bool) {
	width := 1 + b.Total()
	kept := b.Ineq[:0]
	index := make(map[string]mat.Vec, len(b.Ineq))
	sum := new(big.Int)
	for _, row := range b.Ineq {
		if mat.FirstNonZero(row[1:], width-1) == -1 {
			if row[0].Sign() < 0 {
				return false, true
			}
			continue
		}
		key, negated := mat.DirKey(row[1:], width-1)
		if prev, ok := index[key]; ok {
			_, prevNegated := mat.DirKey(prev[1:], width-1)
			if negated == prevNegated {
				// Same direction: keep the tighter constant.
				if row[0].Cmp(prev[0]) < 0 {
					prev[0].Set(row[0])
				}
				continue
			}
			// Opposite pair: c0 + a*x >= 0 and c0' - a*x >= 0.
			sum.Add(prev[0], row[0])
			switch sum.Sign() {
			case -1:
				return false, true
			case 0:
				b.Eq = append(b.Eq, prev.Clone())
				// Both rows are now implied by the equality.
				delete(index, key)
				dropRow(&kept, prev)
				progress = true
				continue
			}
			// Slack remains: keep both rows.
		} else {
			index[key] = row
		}
		kept = append(kept, row)
	}
	b.Ineq = kept

	return progress, false
}

func dropRow(rows *[]mat.Vec, row mat.Vec) {
	for i := range *rows {
		if &(*rows)[i][0] == &row[0] {
			*rows = append((*rows)[:i], (*rows)[i+1:]...)
			return
		}
	}
}

var bigOne = big.NewInt(1)
