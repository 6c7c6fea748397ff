package lp

import (
	"math/big"

	"github.com/katalvlaran/polyset/mat"
)

// Min minimizes obj[0] + Σ obj[i]*x[i] over the feasible region of p.
//
// Steps:
//  1. Rewrite in standard form: each free variable becomes the
//     difference of two nonnegative ones, each inequality gains a
//     surplus variable, each row an artificial variable.
//  2. Phase 1: minimize the sum of artificials; a positive optimum
//     proves infeasibility (StatusEmpty).
//  3. Drive leftover artificials out of the basis (or drop their rows
//     as redundant).
//  4. Phase 2: minimize the real objective; a missing ratio-test pivot
//     proves unboundedness (StatusUnbounded).
//
// Bland's rule is used in both phases, so the method terminates on all
// inputs. All arithmetic is exact.
// Complexity: exponential worst case, polynomial in practice; each
// pivot is O(rows * cols) big.Rat operations.
func Min(p Problem, obj mat.Vec) (*big.Rat, Status, error) {
	sx, err := newSimplex(p)
	if err != nil {
		return nil, StatusOK, err
	}
	if len(obj) != 1+p.NVar {
		return nil, StatusOK, ErrBadProblem
	}

	if feasible := sx.phase1(); !feasible {
		return nil, StatusEmpty, nil
	}
	opt, ok := sx.phase2(obj)
	if !ok {
		return nil, StatusUnbounded, nil
	}
	opt.Add(opt, new(big.Rat).SetInt(obj[0]))

	return opt, StatusOK, nil
}

// simplex is a dense exact tableau. Variable layout: for each free
// variable i the pair (u_i, w_i) with x_i = u_i - w_i, then one
// surplus per inequality, then one artificial per row.
type simplex struct {
	nVar  int // free variables of the original problem
	rows  int
	cols  int // structural + surplus columns (artificials follow)
	art   int // first artificial column == cols
	a     [][]*big.Rat
	b     []*big.Rat
	basis []int
	d     []*big.Rat // reduced costs, length cols+rows
	val   *big.Rat   // objective value at the current basis
}

func newSimplex(p Problem) (*simplex, error) {
	if p.NVar < 0 {
		return nil, ErrBadProblem
	}
	n := p.NVar
	rows := len(p.Eq) + len(p.Ineq)
	cols := 2*n + len(p.Ineq)
	sx := &simplex{
		nVar: n,
		rows: rows,
		cols: cols,
		art:  cols,
		a:    make([][]*big.Rat, rows),
		b:    make([]*big.Rat, rows),
	}

	// 1) Standard form rows.
	r := 0
	addRow := func(row mat.Vec, surplus int) error {
		if len(row) != 1+n {
			return ErrBadProblem
		}
		ar := make([]*big.Rat, cols+rows)
		for j := range ar {
			ar[j] = new(big.Rat)
		}
		for i := 0; i < n; i++ {
			ar[2*i].SetInt(row[1+i])
			ar[2*i+1].Neg(ar[2*i])
		}
		if surplus >= 0 {
			ar[2*n+surplus].SetInt64(-1)
		}
		rhs := new(big.Rat).SetInt(row[0])
		rhs.Neg(rhs)
		if rhs.Sign() < 0 {
			rhs.Neg(rhs)
			for j := range ar {
				ar[j].Neg(ar[j])
			}
		}
		ar[cols+r].SetInt64(1)
		sx.a[r] = ar
		sx.b[r] = rhs
		r++

		return nil
	}
	for _, row := range p.Eq {
		if err := addRow(row, -1); err != nil {
			return nil, err
		}
	}
	for i, row := range p.Ineq {
		if err := addRow(row, i); err != nil {
			return nil, err
		}
	}

	sx.basis = make([]int, rows)
	for i := range sx.basis {
		sx.basis[i] = cols + i
	}

	return sx, nil
}

// phase1 minimizes the artificial sum and reports feasibility.
func (sx *simplex) phase1() bool {
	// Reduced costs: c is 1 on artificials, 0 elsewhere; with the
	// artificial basis, d_j = -Σ_r a[r][j] for structural columns.
	sx.d = make([]*big.Rat, sx.cols+sx.rows)
	for j := range sx.d {
		sx.d[j] = new(big.Rat)
	}
	sx.val = new(big.Rat)
	for r := 0; r < sx.rows; r++ {
		for j := 0; j < sx.cols; j++ {
			sx.d[j].Sub(sx.d[j], sx.a[r][j])
		}
		sx.val.Add(sx.val, sx.b[r])
	}
	sx.iterate(sx.cols)

	if sx.val.Sign() != 0 {
		return false
	}
	sx.driveOutArtificials()

	return true
}

// driveOutArtificials pivots zero-valued artificial basics onto
// structural columns, dropping rows that prove redundant.
func (sx *simplex) driveOutArtificials() {
	for r := 0; r < sx.rows; r++ {
		if sx.basis[r] < sx.art {
			continue
		}
		piv := -1
		for j := 0; j < sx.cols; j++ {
			if sx.a[r][j].Sign() != 0 {
				piv = j
				break
			}
		}
		if piv < 0 {
			sx.dropRow(r)
			r--
			continue
		}
		sx.pivot(r, piv)
	}
}

func (sx *simplex) dropRow(r int) {
	sx.a = append(sx.a[:r], sx.a[r+1:]...)
	sx.b = append(sx.b[:r], sx.b[r+1:]...)
	sx.basis = append(sx.basis[:r], sx.basis[r+1:]...)
	sx.rows--
}

// phase2 installs the real objective and minimizes it. It reports the
// optimum and whether one exists (false means unbounded below).
func (sx *simplex) phase2(obj mat.Vec) (*big.Rat, bool) {
	cost := make([]*big.Rat, sx.cols+sx.rows)
	for j := range cost {
		cost[j] = new(big.Rat)
	}
	for i := 0; i < sx.nVar; i++ {
		cost[2*i].SetInt(obj[1+i])
		cost[2*i+1].Neg(cost[2*i])
	}
	for j := range sx.d {
		sx.d[j].Set(cost[j])
	}
	sx.val.SetInt64(0)
	t := new(big.Rat)
	for r := 0; r < sx.rows; r++ {
		cb := cost[sx.basis[r]]
		if cb.Sign() == 0 {
			continue
		}
		for j := range sx.d {
			sx.d[j].Sub(sx.d[j], t.Mul(cb, sx.a[r][j]))
		}
		sx.val.Add(sx.val, t.Mul(cb, sx.b[r]))
	}
	if !sx.iterate(sx.art) {
		return nil, false
	}

	return new(big.Rat).Set(sx.val), true
}

// iterate runs Bland-rule pivots until optimality. Entering columns
// are restricted to indexes below limit (phase 2 excludes
// artificials). It reports false when the objective is unbounded.
func (sx *simplex) iterate(limit int) bool {
	ratio := new(big.Rat)
	best := new(big.Rat)
	for {
		enter := -1
		for j := 0; j < limit; j++ {
			if sx.d[j].Sign() < 0 {
				enter = j
				break
			}
		}
		if enter < 0 {
			return true
		}
		leave := -1
		for r := 0; r < sx.rows; r++ {
			if sx.a[r][enter].Sign() <= 0 {
				continue
			}
			ratio.Quo(sx.b[r], sx.a[r][enter])
			if leave < 0 || ratio.Cmp(best) < 0 ||
				(ratio.Cmp(best) == 0 && sx.basis[r] < sx.basis[leave]) {
				leave = r
				best.Set(ratio)
			}
		}
		if leave < 0 {
			return false
		}
		sx.pivot(leave, enter)
	}
}

// pivot makes column enter basic in row r.
func (sx *simplex) pivot(r, enter int) {
	inv := new(big.Rat).Inv(sx.a[r][enter])
	for j := range sx.a[r] {
		sx.a[r][j].Mul(sx.a[r][j], inv)
	}
	sx.b[r].Mul(sx.b[r], inv)

	t := new(big.Rat)
	for i := 0; i < sx.rows; i++ {
		if i == r || sx.a[i][enter].Sign() == 0 {
			continue
		}
		f := new(big.Rat).Set(sx.a[i][enter])
		for j := range sx.a[i] {
			sx.a[i][j].Sub(sx.a[i][j], t.Mul(f, sx.a[r][j]))
		}
		sx.b[i].Sub(sx.b[i], t.Mul(f, sx.b[r]))
	}
	if sx.d[enter].Sign() != 0 {
		f := new(big.Rat).Set(sx.d[enter])
		for j := range sx.d {
			sx.d[j].Sub(sx.d[j], t.Mul(f, sx.a[r][j]))
		}
		// The entering variable takes the value b_r, moving the
		// objective by d_enter * b_r (non-positive in a minimization).
		sx.val.Add(sx.val, t.Mul(f, sx.b[r]))
	}
	sx.basis[r] = enter
}
