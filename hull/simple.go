package hull

import (
	"math/big"

	"github.com/katalvlaran/polyset/lp"
	"github.com/katalvlaran/polyset/mat"
	"github.com/katalvlaran/polyset/poly"
)

// constraint tables used by the simple hull: buckets keyed by the
// exact coefficient vector, holding the actual rows so callers can
// compare orientation and constants. The key is orientation-sensitive:
// an inequality is reachable only under its own direction, while an
// equality is inserted under both directions (pointing at the same
// row), so a lookup can meet it with either sign.
type ineqTable map[string][]mat.Vec

func (t ineqTable) insertIneq(row mat.Vec, total int) {
	t[mat.Key(row[1:], total)] = append(t[mat.Key(row[1:], total)], row)
}

func (t ineqTable) insertEq(row mat.Vec, total int) {
	t[mat.Key(row[1:], total)] = append(t[mat.Key(row[1:], total)], row)
	neg := mat.NewVec(1 + total)
	mat.Neg(neg, row, 1+total)
	t[mat.Key(neg[1:], total)] = append(t[mat.Key(neg[1:], total)], row)
}

// lookup returns the first row stored under probe's direction; the row
// itself may be the negation of probe (an equality met sign-reversed).
func (t ineqTable) lookup(probe mat.Vec, total int) (mat.Vec, bool) {
	for _, row := range t[mat.Key(probe[1:], total)] {
		if mat.Eq(row[1:], probe[1:], total) || mat.IsNeg(row[1:], probe[1:], total) {
			return row, true
		}
	}

	return nil, false
}

// hashBasicSet fills a table with the constraints of b.
func hashBasicSet(t ineqTable, b *poly.BasicSet, total int) {
	for _, eq := range b.Eq {
		t.insertEq(eq, total)
	}
	for _, ineq := range b.Ineq {
		t.insertIneq(ineq, total)
	}
}

// shData carries the per-call state of a simple hull computation: the
// hash table of constraints already in the hull and, per part, the
// part's own constraint table and a lazily built LP tab.
type shData struct {
	n         int
	hullTable ineqTable
	p         []shEntry
}

type shEntry struct {
	table ineqTable
	tab   *lp.Tab
}

func newShData(s *poly.Set, total int) *shData {
	data := &shData{
		n:         len(s.P),
		hullTable: make(ineqTable),
		p:         make([]shEntry, len(s.P)),
	}
	for i, part := range s.P {
		data.p[i].table = make(ineqTable)
		hashBasicSet(data.p[i].table, part, total)
	}

	return data
}

// isBound checks whether ineq is, or can be relaxed (by increasing the
// constant) to become, a bound for part j. A necessary relaxation is
// applied to ineq in place, flooring the minimum so integer rows stay
// integer. A part proven empty is rewritten in place and bounds
// everything vacuously.
func (data *shData) isBound(s *poly.Set, j int, ineq mat.Vec) (bool, error) {
	if s.P[j].IsEmptyFlag() {
		return true, nil
	}
	if data.p[j].tab == nil {
		data.p[j].tab = lp.NewTab(s.P[j].Problem())
	}
	opt, st, err := data.p[j].tab.Min(ineq)
	if err != nil {
		return false, err
	}
	switch st {
	case lp.StatusUnbounded:
		return false, nil
	case lp.StatusEmpty:
		s.P[j].SetToEmpty()
		return true, nil
	}
	if opt.Sign() < 0 {
		floor := new(big.Int)
		floor.Div(opt.Num(), opt.Denom())
		ineq[0].Sub(ineq[0], floor)
	}

	return true, nil
}

// addBound tries to turn the constraint ineq of part i into a bound on
// the whole set and, on success, appends the (relaxed) constraint to
// hull.
//
// Steps:
//  1. Skip when the hull, or any earlier part, already carries a
//     translate of the constraint.
//  2. For earlier parts, LP-relax the constant; roll back when some
//     part is unbounded along the direction.
//  3. For later parts, a translate in the part's own description
//     yields the maximum constant directly without an LP; otherwise
//     LP-probe as above.
func addBound(hull *poly.BasicSet, data *shData, s *poly.Set, i int, ineq mat.Vec) error {
	total := hull.Total()

	if _, ok := data.hullTable.lookup(ineq, total); ok {
		return nil
	}
	for j := 0; j < i; j++ {
		if _, ok := data.p[j].table.lookup(ineq, total); ok {
			return nil
		}
	}

	cand := ineq.Clone()
	for j := 0; j < i; j++ {
		bound, err := data.isBound(s, j, cand)
		if err != nil {
			return err
		}
		if !bound {
			return nil
		}
	}
	neg := new(big.Int)
	for j := i + 1; j < data.n; j++ {
		if row, ok := data.p[j].table.lookup(cand, total); ok {
			c0 := row[0]
			if mat.IsNeg(row[1:], cand[1:], total) {
				c0 = neg.Neg(row[0])
			}
			if c0.Cmp(cand[0]) > 0 {
				cand[0].Set(c0)
			}
			continue
		}
		bound, err := data.isBound(s, j, cand)
		if err != nil {
			return err
		}
		if !bound {
			return nil
		}
	}

	hull.AddIneq(cand)
	data.hullTable.insertIneq(cand, total)

	return nil
}

// addBounds feeds every constraint of part i through addBound;
// equalities are probed in both orientations.
func addBounds(hull *poly.BasicSet, data *shData, s *poly.Set, i int) error {
	total := hull.Total()
	for _, eq := range s.P[i].Eq {
		if err := addBound(hull, data, s, i, eq); err != nil {
			return err
		}
		negated := mat.NewVec(1 + total)
		mat.Neg(negated, eq, 1+total)
		if err := addBound(hull, data, s, i, negated); err != nil {
			return err
		}
	}
	for _, ineq := range s.P[i].Ineq {
		if err := addBound(hull, data, s, i, ineq); err != nil {
			return err
		}
	}

	return nil
}

// usetSimpleHull computes the simple hull of a pure set: the affine
// hull plus every input constraint that is (after relaxation) a bound
// on the whole union, canonicalized by BasicHull. s is consumed.
func usetSimpleHull(s *poly.Set) (*poly.BasicSet, error) {
	hull, err := s.AffineHull()
	if err != nil {
		return nil, err
	}
	if hull.IsEmptyFlag() {
		return hull, nil
	}
	total := hull.Total()

	data := newShData(s, total)
	hashBasicSet(data.hullTable, hull, total)

	for i := range s.P {
		if err = addBounds(hull, data, s, i); err != nil {
			return nil, err
		}
	}

	return BasicHull(hull)
}

// SimpleHullMap computes a superset of the convex hull of m described
// only by translates of the constraints of its parts. m is consumed.
func SimpleHullMap(m *poly.Map) (*poly.BasicMap, error) {
	if len(m.P) == 0 {
		return poly.EmptyBasicMap(m.Space), nil
	}
	if len(m.P) == 1 {
		return m.P[0].Clone(), nil
	}
	m, err := m.AlignDivs()
	if err != nil {
		return nil, err
	}
	model := m.P[0].Clone()
	s := m.UnderlyingSet()

	bset, err := usetSimpleHull(s)
	if err != nil {
		return nil, err
	}

	return poly.OverlyingSet(bset, model), nil
}

// SimpleHull computes a superset of the convex hull of s described
// only by translates of the constraints of its parts. s is consumed.
func SimpleHull(s *poly.Set) (*poly.BasicSet, error) {
	res, err := SimpleHullMap(poly.SetAsMap(s))
	if err != nil {
		return nil, err
	}

	return poly.MapAsSet(res), nil
}
