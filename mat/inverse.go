package mat

import "math/big"

// RightInverse computes, for a full-row-rank k-by-n matrix m (k <= n),
// a square n-by-n integer matrix U such that
//
//	m * U = [ d*I | 0 ]
//
// for a single positive integer d. The trailing n-k columns of U span
// the integer kernel of m. For square m this makes U a scaled inverse,
// so U commutes with m up to the factor d.
//
// Steps:
//  1. Column-reduce a working copy of m, mirroring every elementary
//     column operation on U (initially the identity).
//  2. Keep pivots positive; gcd-normalize each touched column pair.
//  3. Rescale pivot columns so all diagonal entries equal their lcm.
//
// Returns ErrSingular when a row is linearly dependent on the others.
// Complexity: O(k*n^2) big-integer operations.
func RightInverse(m *Mat) (*Mat, error) {
	k, n := m.Rows, m.Cols
	if k <= 0 || n <= 0 || k > n {
		return nil, ErrBadShape
	}
	a := m.Clone()
	u, err := Identity(n)
	if err != nil {
		return nil, err
	}

	p := new(big.Int)
	q := new(big.Int)
	t := new(big.Int)
	w := new(big.Int)
	for i := 0; i < k; i++ {
		// 1) Pivot search among columns i..n-1.
		piv := -1
		for j := i; j < n; j++ {
			if a.Row[i][j].Sign() != 0 {
				piv = j
				break
			}
		}
		if piv < 0 {
			return nil, ErrSingular
		}
		swapCols(a, u, i, piv)
		if a.Row[i][i].Sign() < 0 {
			negCol(a, u, i)
		}

		// 2) Eliminate the rest of row i via column combinations.
		for j := 0; j < n; j++ {
			if j == i || a.Row[i][j].Sign() == 0 {
				continue
			}
			p.Set(a.Row[i][i])
			q.Set(a.Row[i][j])
			for r := 0; r < k; r++ {
				t.Mul(p, a.Row[r][j])
				w.Mul(q, a.Row[r][i])
				a.Row[r][j].Sub(t, w)
			}
			for r := 0; r < n; r++ {
				t.Mul(p, u.Row[r][j])
				w.Mul(q, u.Row[r][i])
				u.Row[r][j].Sub(t, w)
			}
			normalizeCol(a, u, j)
		}
	}

	// 3) Make the diagonal uniform: scale pivot columns to lcm(d_i).
	l := big.NewInt(1)
	for i := 0; i < k; i++ {
		t.GCD(nil, nil, l, a.Row[i][i])
		l.Div(w.Mul(l, a.Row[i][i]), t)
	}
	for i := 0; i < k; i++ {
		if a.Row[i][i].Cmp(l) == 0 {
			continue
		}
		f := new(big.Int).Quo(l, a.Row[i][i])
		for r := 0; r < k; r++ {
			a.Row[r][i].Mul(a.Row[r][i], f)
		}
		for r := 0; r < n; r++ {
			u.Row[r][i].Mul(u.Row[r][i], f)
		}
	}

	return u, nil
}

func swapCols(a, u *Mat, i, j int) {
	if i == j {
		return
	}
	for r := 0; r < a.Rows; r++ {
		a.Row[r][i], a.Row[r][j] = a.Row[r][j], a.Row[r][i]
	}
	for r := 0; r < u.Rows; r++ {
		u.Row[r][i], u.Row[r][j] = u.Row[r][j], u.Row[r][i]
	}
}

func negCol(a, u *Mat, j int) {
	for r := 0; r < a.Rows; r++ {
		a.Row[r][j].Neg(a.Row[r][j])
	}
	for r := 0; r < u.Rows; r++ {
		u.Row[r][j].Neg(u.Row[r][j])
	}
}

// normalizeCol divides column j of both a and u by the gcd of all its
// entries across the two matrices, keeping the invariant m*U = A exact.
func normalizeCol(a, u *Mat, j int) {
	g := new(big.Int)
	abs := new(big.Int)
	for r := 0; r < a.Rows; r++ {
		if a.Row[r][j].Sign() != 0 {
			g.GCD(nil, nil, g, abs.Abs(a.Row[r][j]))
		}
	}
	for r := 0; r < u.Rows; r++ {
		if u.Row[r][j].Sign() != 0 {
			g.GCD(nil, nil, g, abs.Abs(u.Row[r][j]))
		}
	}
	if g.Sign() == 0 || g.Cmp(intOne) == 0 {
		return
	}
	for r := 0; r < a.Rows; r++ {
		a.Row[r][j].Quo(a.Row[r][j], g)
	}
	for r := 0; r < u.Rows; r++ {
		u.Row[r][j].Quo(u.Row[r][j], g)
	}
}
