package hull

import (
	"sort"

	"github.com/katalvlaran/polyset/lp"
	"github.com/katalvlaran/polyset/mat"
	"github.com/katalvlaran/polyset/poly"
)

// ConstraintIsRedundant decides whether the inequality c is implied by
// the constraints of b. The (possibly updated) basic set is returned
// alongside the verdict: an LP-proven empty b comes back in canonical
// empty form.
//
// Fast path: if c bounds some variable in a direction no inequality of
// b bounds, it cannot be redundant and no LP is needed.
func ConstraintIsRedundant(b *poly.BasicSet, c mat.Vec) (bool, *poly.BasicSet, error) {
	total := b.Total()
	for i := 0; i < total; i++ {
		if c[1+i].Sign() == 0 {
			continue
		}
		sign := c[1+i].Sign()
		covered := false
		for _, row := range b.Ineq {
			if row[1+i].Sign() == sign {
				covered = true
				break
			}
		}
		if !covered {
			return false, b, nil
		}
	}

	opt, st, err := lp.Min(b.Problem(), c)
	if err != nil {
		return false, b, err
	}
	switch st {
	case lp.StatusUnbounded:
		return false, b, nil
	case lp.StatusEmpty:
		return false, b.SetToEmpty(), nil
	}

	return opt.Sign() >= 0, b, nil
}

// BasicHull removes the redundant constraints of a single basic set:
// the result describes the same solution set with implicit equalities
// made explicit and no implied inequality left.
//
// Steps:
//  1. Gauss-eliminate the equalities; bail out early when the set is
//     empty, already reduced, or has at most one inequality.
//  2. Detect implicit equalities via the LP oracle and promote them.
//  3. Detect redundant inequalities via the LP oracle and drop them.
//
// b is consumed. When step 1 bails out it is returned as Gauss left it;
// otherwise it is returned with NoImplicit and NoRedundant set.
func BasicHull(b *poly.BasicSet) (*poly.BasicSet, error) {
	b = b.Gauss()
	if b.IsEmptyFlag() || b.Flags&poly.FlagNoRedundant != 0 || len(b.Ineq) <= 1 {
		return b, nil
	}

	implicit, st, err := lp.DetectImplicit(b.Problem())
	if err != nil {
		return nil, err
	}
	if st == lp.StatusEmpty {
		return b.SetToEmpty(), nil
	}
	if len(implicit) > 0 {
		for _, i := range implicit {
			b.Eq = append(b.Eq, b.Ineq[i])
		}
		dropIneqs(b, implicit)
		b = b.Gauss()
		if b.IsEmptyFlag() {
			return b, nil
		}
	}

	redundant, st, err := lp.DetectRedundant(b.Problem())
	if err != nil {
		return nil, err
	}
	if st == lp.StatusEmpty {
		return b.SetToEmpty(), nil
	}
	dropIneqs(b, redundant)
	b.Flags |= poly.FlagNoImplicit | poly.FlagNoRedundant

	return b, nil
}

// dropIneqs removes the inequalities at the given indexes.
func dropIneqs(b *poly.BasicSet, idx []int) {
	if len(idx) == 0 {
		return
	}
	sorted := append([]int(nil), idx...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, i := range sorted {
		b.DropIneq(i)
	}
}

// BasicHullMap is BasicHull on a basic map.
func BasicHullMap(b *poly.BasicMap) (*poly.BasicMap, error) {
	res, err := BasicHull(&b.BasicSet)
	if err != nil {
		return nil, err
	}

	return &poly.BasicMap{BasicSet: *res}, nil
}
