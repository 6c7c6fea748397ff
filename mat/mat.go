package mat

import "math/big"

// Mat is a dense integer matrix, stored row-major.
type Mat struct {
	Rows, Cols int
	Row        []Vec
}

// New returns a zero matrix of the given shape.
// Complexity: O(rows*cols).
func New(rows, cols int) (*Mat, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	m := &Mat{Rows: rows, Cols: cols, Row: make([]Vec, rows)}
	for i := range m.Row {
		m.Row[i] = NewVec(cols)
	}

	return m, nil
}

// Identity returns the n-by-n identity matrix.
func Identity(n int) (*Mat, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.Row[i][i].SetInt64(1)
	}

	return m, nil
}

// Clone returns a deep copy of m.
func (m *Mat) Clone() *Mat {
	c := &Mat{Rows: m.Rows, Cols: m.Cols, Row: make([]Vec, m.Rows)}
	for i := range m.Row {
		c.Row[i] = m.Row[i].Clone()
	}

	return c
}

// Product returns a*b.
// Complexity: O(a.Rows * a.Cols * b.Cols).
func Product(a, b *Mat) (*Mat, error) {
	if a.Cols != b.Rows {
		return nil, ErrDimensionMismatch
	}
	p, err := New(a.Rows, b.Cols)
	if err != nil {
		return nil, err
	}
	t := new(big.Int)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			s := p.Row[i][j]
			for k := 0; k < a.Cols; k++ {
				if a.Row[i][k].Sign() == 0 || b.Row[k][j].Sign() == 0 {
					continue
				}
				t.Mul(a.Row[i][k], b.Row[k][j])
				s.Add(s, t)
			}
		}
	}

	return p, nil
}

// VecProduct returns v*m for a row vector v of length m.Rows.
func VecProduct(v Vec, m *Mat) (Vec, error) {
	if len(v) != m.Rows {
		return nil, ErrDimensionMismatch
	}
	p := NewVec(m.Cols)
	t := new(big.Int)
	for j := 0; j < m.Cols; j++ {
		for k := 0; k < m.Rows; k++ {
			if v[k].Sign() == 0 || m.Row[k][j].Sign() == 0 {
				continue
			}
			t.Mul(v[k], m.Row[k][j])
			p[j].Add(p[j], t)
		}
	}

	return p, nil
}

// DropRows removes n rows starting at row first.
func (m *Mat) DropRows(first, n int) error {
	if first < 0 || n < 0 || first+n > m.Rows {
		return ErrOutOfRange
	}
	m.Row = append(m.Row[:first], m.Row[first+n:]...)
	m.Rows -= n

	return nil
}

// DropCols removes n columns starting at column first.
func (m *Mat) DropCols(first, n int) error {
	if first < 0 || n < 0 || first+n > m.Cols {
		return ErrOutOfRange
	}
	for i := range m.Row {
		m.Row[i] = append(m.Row[i][:first], m.Row[i][first+n:]...)
	}
	m.Cols -= n

	return nil
}

// SubRows returns a new matrix holding a deep copy of n rows of m
// starting at row first.
func (m *Mat) SubRows(first, n int) (*Mat, error) {
	if first < 0 || n < 0 || first+n > m.Rows {
		return nil, ErrOutOfRange
	}
	s := &Mat{Rows: n, Cols: m.Cols, Row: make([]Vec, n)}
	for i := 0; i < n; i++ {
		s.Row[i] = m.Row[first+i].Clone()
	}

	return s, nil
}
