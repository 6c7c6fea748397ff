package poly

import "github.com/katalvlaran/polyset/mat"

// BasicMap is a single convex piece of a relation: a basic set whose
// dimensions are split into inputs and outputs by its Space.
type BasicMap struct {
	BasicSet
}

// Map is a finite union of basic maps.
type Map struct {
	Space Space
	P     []*BasicMap
}

// NewBasicMap returns a universe basic map in the given space.
func NewBasicMap(space Space) *BasicMap {
	return &BasicMap{BasicSet: *NewBasicSet(space)}
}

// EmptyBasicMap returns the canonical empty basic map.
func EmptyBasicMap(space Space) *BasicMap {
	return &BasicMap{BasicSet: *EmptyBasicSet(space)}
}

// Clone returns a deep copy of b.
func (b *BasicMap) Clone() *BasicMap {
	return &BasicMap{BasicSet: *b.BasicSet.Clone()}
}

// NewMap returns an empty map (no parts) in the given space.
func NewMap(space Space) *Map {
	return &Map{Space: space}
}

// Add appends a part to the union. The part is taken over.
func (m *Map) Add(b *BasicMap) *Map {
	m.P = append(m.P, b)

	return m
}

// Clone returns a deep copy of m.
func (m *Map) Clone() *Map {
	c := &Map{Space: m.Space, P: make([]*BasicMap, len(m.P))}
	for i, p := range m.P {
		c.P[i] = p.Clone()
	}

	return c
}

// AlignDivs gives every part the same ordered div list: the distinct
// div definitions of all parts, in order of first appearance. Each
// part's div columns are moved to their place in that list, and the
// divs a part lacks get zero columns. Div definitions may not
// reference other divs. m is consumed and returned.
func (m *Map) AlignDivs() (*Map, error) {
	if len(m.P) <= 1 {
		return m, nil
	}
	aligned := true
	for _, p := range m.P[1:] {
		if !sameDivs(m.P[0].Divs, p.Divs, m.Space.Total()) {
			aligned = false
			break
		}
	}
	if aligned {
		return m, nil
	}

	// Combined div list: every distinct definition across the parts.
	base := m.Space.Total()
	var combined []DivDef
	for _, p := range m.P {
		for _, d := range p.Divs {
			if mat.FirstNonZero(d.Row[1+base:], len(d.Row)-1-base) != -1 {
				return nil, ErrHasDivs
			}
			if findDiv(combined, d, base) < 0 {
				nd := d.Clone()
				nd.Row = nd.Row[:1+base]
				combined = append(combined, nd)
			}
		}
	}

	for _, p := range m.P {
		perm := make([]int, len(p.Divs))
		for i, d := range p.Divs {
			perm[i] = findDiv(combined, d, base)
		}
		expandDivs(&p.BasicSet, combined, perm, base)
	}

	return m, nil
}

// expandDivs rewrites the rows of b from its own div columns (mapped
// through perm) to the combined div layout.
func expandDivs(b *BasicSet, combined []DivDef, perm []int, base int) {
	newW := 1 + base + len(combined)
	remap := func(rows []mat.Vec) {
		for i, row := range rows {
			nr := mat.NewVec(newW)
			mat.Cpy(nr, row, 1+base)
			for j := 0; j < len(perm); j++ {
				nr[1+base+perm[j]].Set(row[1+base+j])
			}
			rows[i] = nr
		}
	}
	remap(b.Eq)
	remap(b.Ineq)
	b.Divs = make([]DivDef, len(combined))
	for i, d := range combined {
		nd := d.Clone()
		nd.Row = append(nd.Row, mat.NewVec(newW-len(nd.Row))...)
		b.Divs[i] = nd
	}
}

func sameDivs(a, b []DivDef, base int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Den.Cmp(b[i].Den) != 0 ||
			!mat.Eq(a[i].Row, b[i].Row, 1+base) {
			return false
		}
	}

	return true
}

func findDiv(list []DivDef, d DivDef, base int) int {
	for i := range list {
		if list[i].Den.Cmp(d.Den) == 0 &&
			mat.Eq(list[i].Row, d.Row, 1+base) {
			return i
		}
	}

	return -1
}

// UnderlyingSet reinterprets every variable of the aligned map
// (params, inputs, outputs and divs) as an anonymous set dimension.
// The parts share their rows with m; m should not be used afterwards.
func (m *Map) UnderlyingSet() *Set {
	nDiv := 0
	if len(m.P) > 0 {
		nDiv = len(m.P[0].Divs)
	}
	flat := m.Space.Flat(nDiv)
	s := NewSet(flat)
	for _, p := range m.P {
		bs := &BasicSet{
			Space: flat,
			Eq:    p.Eq,
			Ineq:  p.Ineq,
			Flags: p.Flags,
		}
		s.Add(bs)
	}

	return s
}

// OverlyingSet reattaches the structure of model (space and divs) to a
// flat basic set produced from an underlying set computation.
// bset is consumed.
func OverlyingSet(bset *BasicSet, model *BasicMap) *BasicMap {
	res := &BasicMap{BasicSet: BasicSet{
		Space: model.Space,
		Eq:    bset.Eq,
		Ineq:  bset.Ineq,
		Flags: bset.Flags,
	}}
	res.Divs = make([]DivDef, len(model.Divs))
	for i, d := range model.Divs {
		res.Divs[i] = d.Clone()
	}

	return res
}

// SetAsMap views a plain set as a map with zero input dimensions.
// Parts share their rows with s.
func SetAsMap(s *Set) *Map {
	m := NewMap(s.Space)
	for _, p := range s.P {
		m.Add(&BasicMap{BasicSet: *p})
	}

	return m
}

// MapAsSet views the result of a map computation back as a set piece.
func MapAsSet(b *BasicMap) *BasicSet {
	return &b.BasicSet
}
