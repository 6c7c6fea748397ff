package poly

import (
	"github.com/katalvlaran/polyset/mat"
)

// Preimage substitutes [1; x] = T * [1; z] into every constraint of b,
// moving it to the space of the z variables (T.Cols-1 dimensions).
// The first row of T must be of the form [d 0 ... 0] with d > 0 so the
// homogeneous coordinate stays positive; the transforms produced by
// mat.RightInverse have this shape. b must have no divs. b is consumed
// and the transformed basic set returned.
func (b *BasicSet) Preimage(t *mat.Mat) (*BasicSet, error) {
	if len(b.Divs) != 0 {
		return nil, ErrHasDivs
	}
	if t.Rows != 1+b.Total() {
		return nil, ErrBadTransform
	}
	if b.IsEmptyFlag() {
		return EmptyBasicSet(SetSpace(b.Space.Param, t.Cols-1-b.Space.Param)), nil
	}
	for i, row := range b.Eq {
		nr, err := mat.VecProduct(row, t)
		if err != nil {
			return nil, err
		}
		b.Eq[i] = nr
	}
	for i, row := range b.Ineq {
		nr, err := mat.VecProduct(row, t)
		if err != nil {
			return nil, err
		}
		b.Ineq[i] = nr
	}
	b.Space = SetSpace(b.Space.Param, t.Cols-1-b.Space.Param)
	b.clearComputed()

	return b.Simplify(), nil
}

// RemoveEqualities computes the change of coordinates that eliminates
// the equalities of an affine hull. For a basic set whose description
// is a system of n_eq equalities over d pure dimensions it returns
// matrices T ((1+d) x (1+d-n_eq)) and T2 ((1+d-n_eq) x (1+d)) with
//
//	[1; x] = T * [1; z]    parameterizing the affine hull, and
//	[1; z] = T2 * [1; x]   mapping a point back.
//
// b itself is not modified.
func (b *BasicSet) RemoveEqualities() (t, t2 *mat.Mat, err error) {
	if len(b.Divs) != 0 || b.Space.Param != 0 {
		return nil, nil, ErrHasDivs
	}
	d := b.Total()
	nEq := len(b.Eq)
	m, err := mat.New(1+nEq, 1+d)
	if err != nil {
		return nil, nil, err
	}
	m.Row[0][0].SetInt64(1)
	for i, e := range b.Eq {
		mat.Cpy(m.Row[1+i], e, 1+d)
	}
	u, err := mat.RightInverse(m)
	if err != nil {
		return nil, nil, err
	}
	q, err := mat.RightInverse(u.Clone())
	if err != nil {
		return nil, nil, err
	}
	// On the affine hull the coordinates 1..n_eq vanish: drop them.
	if err = u.DropCols(1, nEq); err != nil {
		return nil, nil, err
	}
	if err = q.DropRows(1, nEq); err != nil {
		return nil, nil, err
	}

	return u, q, nil
}
