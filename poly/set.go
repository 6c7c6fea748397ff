package poly

import (
	"github.com/katalvlaran/polyset/mat"
)

// Set is a finite union of basic sets; an empty part list denotes the
// empty set.
type Set struct {
	Space Space
	P     []*BasicSet
}

// NewSet returns an empty set (no parts) in the given space.
func NewSet(space Space) *Set {
	return &Set{Space: space}
}

// SetFromBasicSets builds a union from the given parts, which are
// taken over, not copied.
func SetFromBasicSets(space Space, parts ...*BasicSet) *Set {
	return &Set{Space: space, P: parts}
}

// Clone returns a deep copy of s.
func (s *Set) Clone() *Set {
	c := &Set{Space: s.Space, P: make([]*BasicSet, len(s.P))}
	for i, p := range s.P {
		c.P[i] = p.Clone()
	}

	return c
}

// Add appends a part to the union. The part is taken over.
func (s *Set) Add(b *BasicSet) *Set {
	s.P = append(s.P, b)

	return s
}

// RemoveEmptyParts drops parts that are structurally marked empty.
// s is consumed and returned.
func (s *Set) RemoveEmptyParts() *Set {
	kept := s.P[:0]
	for _, p := range s.P {
		if !p.IsEmptyFlag() {
			kept = append(kept, p)
		}
	}
	s.P = kept

	return s
}

// Normalize simplifies every part and drops the ones that simplify to
// empty. s is consumed and returned.
func (s *Set) Normalize() *Set {
	for i, p := range s.P {
		s.P[i] = p.Simplify()
	}

	return s.RemoveEmptyParts()
}

// CopyBasicSet returns a copy of the first part.
func (s *Set) CopyBasicSet() *BasicSet {
	return s.P[0].Clone()
}

// DropBasicSet removes the part equal (by identity or by constraint
// rows) to b. s is consumed and returned.
func (s *Set) DropBasicSet(b *BasicSet) *Set {
	for i, p := range s.P {
		if p == b || sameDescription(p, b) {
			s.P = append(s.P[:i], s.P[i+1:]...)
			return s
		}
	}

	return s
}

// sameDescription reports whether two basic sets carry identical
// constraint rows in the same order.
func sameDescription(a, b *BasicSet) bool {
	if a.Total() != b.Total() ||
		len(a.Eq) != len(b.Eq) || len(a.Ineq) != len(b.Ineq) {
		return false
	}
	w := 1 + a.Total()
	for i := range a.Eq {
		if !mat.Eq(a.Eq[i], b.Eq[i], w) {
			return false
		}
	}
	for i := range a.Ineq {
		if !mat.Eq(a.Ineq[i], b.Ineq[i], w) {
			return false
		}
	}

	return true
}

// SetRational marks every part rational. s is consumed and returned.
func (s *Set) SetRational() *Set {
	for _, p := range s.P {
		p.SetRational()
	}

	return s
}

// AddEquality conjoins the equality c onto every part. s is consumed
// and returned.
func (s *Set) AddEquality(c mat.Vec) *Set {
	for i, p := range s.P {
		s.P[i] = p.AddEquality(c)
	}

	return s
}

// Preimage substitutes [1; x] = T * [1; z] into every part; see
// BasicSet.Preimage. s is consumed and the transformed set returned.
func (s *Set) Preimage(t *mat.Mat) (*Set, error) {
	for i, p := range s.P {
		np, err := p.Preimage(t)
		if err != nil {
			return nil, err
		}
		s.P[i] = np
	}
	s.Space = SetSpace(s.Space.Param, t.Cols-1-s.Space.Param)

	return s.RemoveEmptyParts(), nil
}

// EliminateDims projects away n set dimensions starting at first,
// leaving the columns unconstrained; see BasicSet.EliminateVars.
// s is consumed and returned.
func (s *Set) EliminateDims(first, n int) (*Set, error) {
	for i, p := range s.P {
		np, err := p.EliminateVars(p.Space.Param+first, n)
		if err != nil {
			return nil, err
		}
		s.P[i] = np
	}

	return s.RemoveEmptyParts(), nil
}

// RemoveDivs eliminates the div columns of every part. s is consumed
// and returned.
func (s *Set) RemoveDivs() (*Set, error) {
	for i, p := range s.P {
		np, err := p.RemoveDivs()
		if err != nil {
			return nil, err
		}
		s.P[i] = np
	}

	return s, nil
}

// IsEmpty decides emptiness of the union via per-part LP probes.
func (s *Set) IsEmpty() (bool, error) {
	for _, p := range s.P {
		empty, err := p.IsEmpty()
		if err != nil {
			return false, err
		}
		if !empty {
			return false, nil
		}
	}

	return true, nil
}

// Dim returns the number of set dimensions of the space.
func (s *Set) Dim() int { return s.Space.Dim() }
