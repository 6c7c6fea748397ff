package mat

import (
	"math/big"
	"strings"
)

// Vec is a row of exact integers. Constraint rows store the constant
// term in column 0, so a row (c0, c1, ..., cd) reads
//
//	c0 + c1*x1 + ... + cd*xd >= 0   (or = 0 for an equality).
type Vec []*big.Int

// NewVec returns a zero vector of length n.
// Complexity: O(n).
func NewVec(n int) Vec {
	v := make(Vec, n)
	for i := range v {
		v[i] = new(big.Int)
	}

	return v
}

// Clone returns a deep copy of v.
func (v Vec) Clone() Vec {
	w := make(Vec, len(v))
	for i := range v {
		w[i] = new(big.Int).Set(v[i])
	}

	return w
}

// Cpy copies src into dst over the first n positions.
func Cpy(dst, src Vec, n int) {
	for i := 0; i < n; i++ {
		dst[i].Set(src[i])
	}
}

// Clr sets the first n positions of v to zero.
func Clr(v Vec, n int) {
	for i := 0; i < n; i++ {
		v[i].SetInt64(0)
	}
}

// Neg writes -src into dst over the first n positions.
func Neg(dst, src Vec, n int) {
	for i := 0; i < n; i++ {
		dst[i].Neg(src[i])
	}
}

// Scale writes f*src into dst over the first n positions.
func Scale(dst, src Vec, f *big.Int, n int) {
	for i := 0; i < n; i++ {
		dst[i].Mul(src[i], f)
	}
}

// Combine writes m*a + f*b into dst over the first n positions.
// dst may alias a or b.
func Combine(dst Vec, m *big.Int, a Vec, f *big.Int, b Vec, n int) {
	t := new(big.Int)
	u := new(big.Int)
	for i := 0; i < n; i++ {
		t.Mul(m, a[i])
		u.Mul(f, b[i])
		dst[i].Add(t, u)
	}
}

// FirstNonZero returns the index of the first non-zero entry among the
// first n positions of v, or -1 if all are zero.
func FirstNonZero(v Vec, n int) int {
	for i := 0; i < n; i++ {
		if v[i].Sign() != 0 {
			return i
		}
	}

	return -1
}

// AbsGCD returns the gcd of the absolute values of the first n entries
// of v. The result is zero when all entries are zero.
func AbsGCD(v Vec, n int) *big.Int {
	g := new(big.Int)
	for i := 0; i < n; i++ {
		if v[i].Sign() == 0 {
			continue
		}
		g.GCD(nil, nil, g, new(big.Int).Abs(v[i]))
		if g.Cmp(intOne) == 0 {
			break
		}
	}

	return g
}

// ScaleDownExact divides the first n entries of v by g.
// The caller guarantees that g divides every entry.
func ScaleDownExact(v Vec, g *big.Int, n int) {
	if g.Sign() == 0 || g.Cmp(intOne) == 0 {
		return
	}
	for i := 0; i < n; i++ {
		v[i].Quo(v[i], g)
	}
}

// Eq reports whether the first n entries of a and b are equal.
func Eq(a, b Vec, n int) bool {
	for i := 0; i < n; i++ {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}

	return true
}

// IsNeg reports whether the first n entries of a equal the negation of
// the corresponding entries of b.
func IsNeg(a, b Vec, n int) bool {
	t := new(big.Int)
	for i := 0; i < n; i++ {
		if a[i].Cmp(t.Neg(b[i])) != 0 {
			return false
		}
	}

	return true
}

// Elim performs one integer Gaussian elimination step: it replaces dst
// with src[pos]*dst - dst[pos]*src over the first n positions, so that
// dst[pos] becomes zero. The caller guarantees src[pos] != 0.
// The sign of the resulting row is unspecified; use ElimSigned when the
// row orientation (an inequality) must be preserved.
func Elim(dst, src Vec, pos, n int) {
	if dst[pos].Sign() == 0 {
		return
	}
	a := new(big.Int).Set(src[pos])
	b := new(big.Int).Set(dst[pos])
	t := new(big.Int)
	u := new(big.Int)
	for i := 0; i < n; i++ {
		t.Mul(a, dst[i])
		u.Mul(b, src[i])
		dst[i].Sub(t, u)
	}
}

// ElimSigned eliminates position pos of dst using row src while keeping
// the orientation of dst: dst is multiplied by |src[pos]| (a positive
// factor), so an inequality row stays an inequality in the same
// direction. The caller guarantees src[pos] != 0.
func ElimSigned(dst, src Vec, pos, n int) {
	if dst[pos].Sign() == 0 {
		return
	}
	a := new(big.Int).Abs(src[pos])
	b := new(big.Int).Set(dst[pos])
	if src[pos].Sign() < 0 {
		b.Neg(b)
	}
	t := new(big.Int)
	u := new(big.Int)
	for i := 0; i < n; i++ {
		t.Mul(a, dst[i])
		u.Mul(b, src[i])
		dst[i].Sub(t, u)
	}
}

// Key returns a hash key for the first n entries of v.
// Keys are exact: two rows share a key iff the entries are equal.
func Key(v Vec, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(v[i].String())
		sb.WriteByte(',')
	}

	return sb.String()
}

// DirKey returns an orientation-invariant hash key for the first n
// entries of v: v and -v produce the same key. The second return value
// reports whether v was negated to reach the canonical orientation.
func DirKey(v Vec, n int) (string, bool) {
	neg := false
	for i := 0; i < n; i++ {
		if s := v[i].Sign(); s != 0 {
			neg = s < 0
			break
		}
	}
	if !neg {
		return Key(v, n), false
	}
	var sb strings.Builder
	t := new(big.Int)
	for i := 0; i < n; i++ {
		sb.WriteString(t.Neg(v[i]).String())
		sb.WriteByte(',')
	}

	return sb.String(), true
}

var intOne = big.NewInt(1)
