package hull

import (
	"math/big"

	"github.com/katalvlaran/polyset/lp"
	"github.com/katalvlaran/polyset/mat"
	"github.com/katalvlaran/polyset/poly"
)

// usetIsBound checks whether the pure set s is bounded in the
// direction of the affine constraint c. If so, c's constant is updated
// to make c a bounding constraint (a supporting hyperplane) for the
// whole set, and true is returned. Parts proven empty along the way
// are rewritten in place.
func usetIsBound(s *poly.Set, c mat.Vec) (bool, error) {
	width := 1 + s.Dim()
	first := true
	num := new(big.Int)
	for _, part := range s.P {
		if part.IsEmptyFlag() {
			continue
		}
		opt, st, err := lp.Min(part.Problem(), c)
		if err != nil {
			return false, err
		}
		switch st {
		case lp.StatusUnbounded:
			return false, nil
		case lp.StatusEmpty:
			part.SetToEmpty()
			continue
		}
		if opt.Denom().Cmp(bigOne) != 0 {
			// Scale c integrally; the scaled minimum is the numerator.
			mat.Scale(c, c, opt.Denom(), width)
		}
		num.Set(opt.Num())
		if first || num.Sign() < 0 {
			c[0].Sub(c[0], num)
		}
		first = false
	}

	return true, nil
}

// isIndependentBound checks whether the direction of c is linearly
// independent of the first n rows of dirs. If so, and if s is bounded
// along it, the direction is stored (insertion-sorted by leading
// coefficient position) with the negated global minimum as constant,
// so the row is a bounding hyperplane of s.
func isIndependentBound(s *poly.Set, c mat.Vec, dirs *mat.Mat, n int) (bool, error) {
	d := dirs.Cols - 1
	mat.Cpy(dirs.Row[n][1:], c[1:], d)
	i := 0
	if n != 0 {
		pos := mat.FirstNonZero(dirs.Row[n][1:], d)
		if pos < 0 {
			return false, nil
		}
		for ; i < n; i++ {
			posI := mat.FirstNonZero(dirs.Row[i][1:], d)
			if posI < pos {
				continue
			}
			if posI > pos {
				break
			}
			mat.Elim(dirs.Row[n][1:], dirs.Row[i][1:], pos, d)
			pos = mat.FirstNonZero(dirs.Row[n][1:], d)
			if pos < 0 {
				return false, nil
			}
		}
	}

	isBound, err := usetIsBound(s, dirs.Row[n])
	if err != nil || !isBound {
		return false, err
	}
	if i < n {
		t := dirs.Row[n]
		copy(dirs.Row[i+1:n+1], dirs.Row[i:n])
		dirs.Row[i] = t
	}

	return true, nil
}

// independentBounds collects a maximal set of linearly independent
// bounding hyperplanes of s, drawn from the constraints of its parts.
func independentBounds(s *poly.Set) (*mat.Mat, error) {
	dim := s.Dim()
	dirs, err := mat.New(dim, 1+dim)
	if err != nil {
		return nil, err
	}
	n := 0
	for _, part := range s.P {
		for _, eq := range part.Eq {
			if n >= dim {
				break
			}
			ok, err := isIndependentBound(s, eq, dirs, n)
			if err != nil {
				return nil, err
			}
			if ok {
				n++
			}
		}
		for _, ineq := range part.Ineq {
			if n >= dim {
				break
			}
			ok, err := isIndependentBound(s, ineq, dirs, n)
			if err != nil {
				return nil, err
			}
			if ok {
				n++
			}
		}
		if n >= dim {
			break
		}
	}
	dirs.Rows = n
	dirs.Row = dirs.Row[:n]

	return dirs, nil
}

// wrapProblem builds the wrapping LP over the transformed set: one
// block of 1+d variables (a_k, x_k) per part k, with the homogenized
// part constraints, a_k >= 0 per part and Σ_k x_{k,1} = 1.
func wrapProblem(s *poly.Set) lp.Problem {
	dim := 1 + s.Dim()
	n := len(s.P)
	width := 1 + dim*n
	p := lp.Problem{NVar: dim * n}

	row := mat.NewVec(width)
	row[0].SetInt64(-1)
	for i := 0; i < n; i++ {
		row[1+dim*i+1].SetInt64(1)
	}
	p.Eq = append(p.Eq, row)

	for i, part := range s.P {
		row = mat.NewVec(width)
		row[1+dim*i].SetInt64(1)
		p.Ineq = append(p.Ineq, row)

		for _, e := range part.Eq {
			row = mat.NewVec(width)
			for t := 0; t < dim; t++ {
				row[1+dim*i+t].Set(e[t])
			}
			p.Eq = append(p.Eq, row)
		}
		for _, q := range part.Ineq {
			row = mat.NewVec(width)
			for t := 0; t < dim; t++ {
				row[1+dim*i+t].Set(q[t])
			}
			p.Ineq = append(p.Ineq, row)
		}
	}

	return p
}

// wrapFacet rotates the supporting hyperplane facet around the ridge
// until it touches the union again, writing the adjacent facet
// constraint into facet in place.
//
// The set is transformed so facet becomes x_1 >= 0 and, on x_1 = 0,
// ridge becomes x_2 >= 0. In the transformed space the wrapping LP
// minimizes Σ_k x_{k,2} subject to Σ_k x_{k,1} = 1 over the dilated
// part cones; an optimum n/d yields the combination
//
//	-n*facet + d*ridge
//
// in the original space. An unbounded LP means the adjacent facet is
// unbounded through this ridge and facet is left unchanged.
func wrapFacet(s *poly.Set, facet, ridge mat.Vec) error {
	s = s.Clone()
	width := 1 + s.Dim()
	t, err := mat.New(3, width)
	if err != nil {
		return err
	}
	t.Row[0][0].SetInt64(1)
	mat.Cpy(t.Row[1], facet, width)
	mat.Cpy(t.Row[2], ridge, width)
	u, err := mat.RightInverse(t)
	if err != nil {
		return err
	}
	s, err = s.Preimage(u)
	if err != nil {
		return err
	}

	problem := wrapProblem(s)
	dim := 1 + s.Dim()
	obj := mat.NewVec(1 + problem.NVar)
	for i := range s.P {
		obj[1+dim*i+2].SetInt64(1)
	}
	opt, st, err := lp.Min(problem, obj)
	if err != nil {
		return err
	}
	switch st {
	case lp.StatusOK:
		num := new(big.Int).Neg(opt.Num())
		mat.Combine(facet, num, facet, opt.Denom(), ridge, width)
		return nil
	case lp.StatusUnbounded:
		return nil
	default:
		return ErrLPFailure
	}
}

// initialFacetConstraint turns a maximal system of bounding
// hyperplanes into a single facet constraint by repeatedly
// intersecting with the first bound's hyperplane and wrapping around
// the remaining ones; the surviving first row is a facet of the hull.
// bounds is consumed and returned with the facet in row 0.
func initialFacetConstraint(s *poly.Set, bounds *mat.Mat) (*mat.Mat, error) {
	dim := s.Dim()
	if len(s.P) == 0 || bounds.Rows != dim {
		return nil, ErrPrecondition
	}

	for bounds.Rows > 1 {
		slice := s.Clone().AddEquality(bounds.Row[0])
		face, err := slice.AffineHull()
		if err != nil {
			return nil, err
		}
		if face.IsEmptyFlag() {
			return nil, ErrPrecondition
		}
		nEq := len(face.Eq)
		if nEq == 1 {
			break
		}
		m, err := mat.New(1+nEq, 1+dim)
		if err != nil {
			return nil, err
		}
		m.Row[0][0].SetInt64(1)
		for i, e := range face.Eq {
			mat.Cpy(m.Row[1+i], e, 1+dim)
		}
		u, err := mat.RightInverse(m)
		if err != nil {
			return nil, err
		}
		q, err := mat.RightInverse(u.Clone())
		if err != nil {
			return nil, err
		}
		// Keep only the components along the face normals.
		if err = u.DropCols(1+nEq, dim-nEq); err != nil {
			return nil, err
		}
		if err = q.DropRows(1+nEq, dim-nEq); err != nil {
			return nil, err
		}
		if err = u.DropCols(0, 1); err != nil {
			return nil, err
		}
		if err = q.DropRows(0, 1); err != nil {
			return nil, err
		}
		bounds, err = mat.Product(bounds, u)
		if err != nil {
			return nil, err
		}
		bounds, err = mat.Product(bounds, q)
		if err != nil {
			return nil, err
		}
		for mat.FirstNonZero(bounds.Row[bounds.Rows-1], bounds.Cols) == -1 {
			if err = bounds.DropRows(bounds.Rows-1, 1); err != nil {
				return nil, err
			}
			if bounds.Rows <= 1 {
				return nil, ErrPrecondition
			}
		}
		if err = wrapFacet(s, bounds.Row[0], bounds.Row[bounds.Rows-1]); err != nil {
			return nil, err
		}
		if err = bounds.DropRows(bounds.Rows-1, 1); err != nil {
			return nil, err
		}
	}

	return bounds, nil
}

// computeFacet computes the hyperplane description of the facet of the
// hull of s supported by the constraint c: the set is rotated so c
// becomes the first coordinate, the hull is computed one dimension
// down (recursively) and the result is rotated back.
func computeFacet(s *poly.Set, c mat.Vec) (*poly.BasicSet, error) {
	s = s.Clone()
	dim := s.Dim()
	m, err := mat.New(2, 1+dim)
	if err != nil {
		return nil, err
	}
	m.Row[0][0].SetInt64(1)
	mat.Cpy(m.Row[1], c, 1+dim)
	u, err := mat.RightInverse(m)
	if err != nil {
		return nil, err
	}
	q, err := mat.RightInverse(u.Clone())
	if err != nil {
		return nil, err
	}
	if err = u.DropCols(1, 1); err != nil {
		return nil, err
	}
	if err = q.DropRows(1, 1); err != nil {
		return nil, err
	}
	s, err = s.Preimage(u)
	if err != nil {
		return nil, err
	}
	facet, err := usetConvexHullWrapBounded(s)
	if err != nil {
		return nil, err
	}
	facet, err = facet.Preimage(q)
	if err != nil {
		return nil, err
	}
	if len(facet.Eq) != 0 {
		return nil, ErrPrecondition
	}

	return facet, nil
}

// extend grows the hull from its initial facet constraint(s): for each
// facet found so far it computes the ridges (the facets of the facet),
// and wraps around every ridge not already shared with the current
// hull approximation, producing the adjacent facets.
//
// Complexity: one recursive facet computation plus one wrapping LP per
// (facet, new ridge) pair.
func extend(hull *poly.BasicSet, s *poly.Set) (*poly.BasicSet, error) {
	if len(s.P) == 0 {
		return nil, ErrPrecondition
	}
	dim := s.Dim()
	width := 1 + dim

	for i := 0; i < len(hull.Ineq); i++ {
		facet, err := computeFacet(s, hull.Ineq[i])
		if err != nil {
			return nil, err
		}
		facet = facet.AddEquality(hull.Ineq[i]).Gauss().NormalizeConstraints()
		hullFacet := hull.Clone().AddEquality(hull.Ineq[i]).Gauss().NormalizeConstraints()

		for _, ridge := range facet.Ineq {
			known := false
			for _, f := range hullFacet.Ineq {
				if mat.Eq(ridge, f, width) {
					known = true
					break
				}
			}
			if known {
				continue
			}
			next := hull.Ineq[i].Clone()
			if err = wrapFacet(s, next, ridge); err != nil {
				return nil, err
			}
			hull.AddIneq(next)
		}
	}

	return BasicHull(hull.SetRational())
}

// commonConstraints scans for inequalities of the part with the fewest
// constraints whose (possibly more stringent) translates appear in
// every other part; such constraints are facets of the hull and are
// added to hull. If some part turns out to consist of exactly these
// constraints, it already is the hull and isHull is reported true.
func commonConstraints(hull *poly.BasicSet, s *poly.Set) (*poly.BasicSet, bool, error) {
	total := s.Dim()

	best := -1
	for i, p := range s.P {
		if len(p.Eq) != 0 {
			continue
		}
		if best < 0 || len(p.Ineq) < len(s.P[best].Ineq) {
			best = i
		}
	}
	if best < 0 {
		return hull, false, nil
	}

	type maxConstraint struct {
		c     mat.Vec
		count int
		ineq  bool
	}
	table := make(map[string][]*maxConstraint, len(s.P[best].Ineq))
	var all []*maxConstraint
	for _, row := range s.P[best].Ineq {
		mc := &maxConstraint{c: row.Clone(), ineq: true}
		key := mat.Key(mc.c[1:], total)
		table[key] = append(table[key], mc)
		all = append(all, mc)
	}

	update := func(con mat.Vec, n int, ineq bool) {
		key := mat.Key(con[1:], total)
		bucket := table[key]
		for bi, mc := range bucket {
			if !mat.Eq(mc.c[1:], con[1:], total) {
				continue
			}
			if mc.count < n {
				table[key] = append(bucket[:bi], bucket[bi+1:]...)
				return
			}
			mc.count++
			cmp := mc.c[0].Cmp(con[0])
			if cmp > 0 {
				return
			}
			if cmp == 0 {
				if ineq {
					mc.ineq = ineq
				}
				return
			}
			mc.c[0].Set(con[0])
			mc.ineq = ineq
			return
		}
	}

	n := 0
	neg := mat.NewVec(1 + total)
	for si, part := range s.P {
		if si == best {
			continue
		}
		for _, eq := range part.Eq {
			update(eq, n, false)
			mat.Neg(neg, eq, 1+total)
			update(neg, n, false)
		}
		for _, ineq := range part.Ineq {
			update(ineq, n, len(part.Eq) == 0)
		}
		n++
	}

	has := func(con mat.Vec) bool {
		for _, mc := range table[mat.Key(con[1:], total)] {
			if mc.count >= n && mat.Eq(mc.c[1:], con[1:], total) &&
				mc.c[0].Cmp(con[0]) == 0 {
				return true
			}
		}
		return false
	}

	for _, mc := range all {
		if mc.count < n || !mc.ineq {
			continue
		}
		hull.AddIneq(mc.c.Clone())
	}

	isHull := false
	for _, part := range s.P {
		if len(part.Eq) != 0 || len(part.Ineq) != len(hull.Ineq) {
			continue
		}
		matched := true
		for _, ineq := range part.Ineq {
			if !has(ineq) {
				matched = false
				break
			}
		}
		if matched {
			isHull = true
		}
	}

	return hull, isHull, nil
}

// protoHull seeds the hull template with the facet constraints the
// parts already share.
func protoHull(s *poly.Set) (*poly.BasicSet, bool, error) {
	hull := poly.NewBasicSet(s.Space).SetRational()

	return commonConstraints(hull, s)
}

// initialHull equips the proto-hull with one genuine facet constraint,
// derived from a maximal independent system of bounding hyperplanes.
func initialHull(hull *poly.BasicSet, s *poly.Set) (*poly.BasicSet, error) {
	bounds, err := independentBounds(s)
	if err != nil {
		return nil, err
	}
	if bounds.Rows != s.Dim() {
		return nil, ErrPrecondition
	}
	bounds, err = initialFacetConstraint(s, bounds)
	if err != nil {
		return nil, err
	}
	if bounds.Cols != 1+s.Dim() {
		return nil, ErrPrecondition
	}
	hull.AddIneq(bounds.Row[0].Clone())

	return hull, nil
}

// usetConvexHullWrap runs the wrapping kernel on a pure, bounded,
// rational set with at least two parts and two dimensions.
func usetConvexHullWrap(s *poly.Set) (*poly.BasicSet, error) {
	hull, isHull, err := protoHull(s)
	if err != nil {
		return nil, err
	}
	if isHull {
		return hull, nil
	}
	if len(hull.Ineq) == 0 {
		if hull, err = initialHull(hull, s); err != nil {
			return nil, err
		}
	}

	return extend(hull, s)
}

// usetConvexHullWrapBounded is the recursive core: the convex hull of
// a pure set whose hull is known to be bounded and full-dimensional.
// The recursion in computeFacet strictly decreases the dimension.
func usetConvexHullWrapBounded(s *poly.Set) (*poly.BasicSet, error) {
	if s.Dim() == 0 {
		return poly.NewBasicSet(s.Space).SetRational(), nil
	}
	s = s.SetRational().Normalize()
	if len(s.P) == 0 {
		return poly.EmptyBasicSet(s.Space), nil
	}
	if len(s.P) == 1 {
		return s.P[0], nil
	}
	if s.Dim() == 1 {
		return convexHull1D(s)
	}

	return usetConvexHullWrap(s)
}

var bigOne = big.NewInt(1)
