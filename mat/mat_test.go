package mat_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/polyset/mat"
)

func vec(vals ...int64) mat.Vec {
	v := make(mat.Vec, len(vals))
	for i, x := range vals {
		v[i] = big.NewInt(x)
	}

	return v
}

func fill(m *mat.Mat, rows ...mat.Vec) *mat.Mat {
	for i, r := range rows {
		m.Row[i] = r
	}

	return m
}

// VecSuite exercises the row helpers.
type VecSuite struct {
	suite.Suite
}

func (s *VecSuite) TestCombine() {
	a := vec(1, 2, 3)
	b := vec(0, 1, -1)
	dst := mat.NewVec(3)
	mat.Combine(dst, big.NewInt(2), a, big.NewInt(3), b, 3)
	require.True(s.T(), mat.Eq(dst, vec(2, 7, 3), 3))
}

func (s *VecSuite) TestCombineAliased() {
	a := vec(1, 2, 3)
	b := vec(0, 1, -1)
	mat.Combine(a, big.NewInt(2), a, big.NewInt(3), b, 3)
	require.True(s.T(), mat.Eq(a, vec(2, 7, 3), 3))
}

func (s *VecSuite) TestElimClearsPosition() {
	dst := vec(5, 3, 1)
	src := vec(0, 2, 4)
	mat.Elim(dst, src, 1, 3)
	require.Equal(s.T(), 0, dst[1].Sign())
	// 2*(5,3,1) - 3*(0,2,4) = (10, 0, -10)
	require.True(s.T(), mat.Eq(dst, vec(10, 0, -10), 3))
}

func (s *VecSuite) TestElimSignedKeepsOrientation() {
	// Eliminating with a negative pivot must still multiply dst by a
	// positive factor.
	dst := vec(1, 1, 1)
	src := vec(0, -2, 4)
	mat.ElimSigned(dst, src, 1, 3)
	require.Equal(s.T(), 0, dst[1].Sign())
	// |src[1]|*dst - (dst[1]*sgn(src[1]))*src = 2*(1,1,1) + 1*(0,-2,4)
	require.True(s.T(), mat.Eq(dst, vec(2, 0, 6), 3))
}

func (s *VecSuite) TestAbsGCD() {
	require.Equal(s.T(), int64(6), mat.AbsGCD(vec(-12, 18, 6), 3).Int64())
	require.Equal(s.T(), int64(0), mat.AbsGCD(vec(0, 0), 2).Int64())
}

func (s *VecSuite) TestDirKey() {
	a := vec(0, 2, -3)
	b := vec(0, -2, 3)
	ka, na := mat.DirKey(a, 3)
	kb, nb := mat.DirKey(b, 3)
	require.Equal(s.T(), ka, kb)
	require.False(s.T(), na)
	require.True(s.T(), nb)

	kc, _ := mat.DirKey(vec(0, 2, 3), 3)
	require.NotEqual(s.T(), ka, kc)
}

func (s *VecSuite) TestIsNeg() {
	require.True(s.T(), mat.IsNeg(vec(1, -2), vec(-1, 2), 2))
	require.False(s.T(), mat.IsNeg(vec(1, -2), vec(-1, 3), 2))
	require.True(s.T(), mat.IsNeg(vec(0, 0), vec(0, 0), 2))
}

func TestVecSuite(t *testing.T) {
	suite.Run(t, new(VecSuite))
}

// MatSuite exercises matrix construction and products.
type MatSuite struct {
	suite.Suite
}

func (s *MatSuite) TestProduct() {
	a, err := mat.New(2, 3)
	require.NoError(s.T(), err)
	fill(a, vec(1, 2, 3), vec(0, 1, 0))
	b, err := mat.New(3, 2)
	require.NoError(s.T(), err)
	fill(b, vec(1, 0), vec(0, 1), vec(1, 1))

	p, err := mat.Product(a, b)
	require.NoError(s.T(), err)
	require.True(s.T(), mat.Eq(p.Row[0], vec(4, 5), 2))
	require.True(s.T(), mat.Eq(p.Row[1], vec(0, 1), 2))
}

func (s *MatSuite) TestProductShapeMismatch() {
	a, _ := mat.New(2, 3)
	b, _ := mat.New(2, 2)
	_, err := mat.Product(a, b)
	require.ErrorIs(s.T(), err, mat.ErrDimensionMismatch)
}

func (s *MatSuite) TestDropColsRows() {
	m, _ := mat.New(3, 4)
	fill(m, vec(1, 2, 3, 4), vec(5, 6, 7, 8), vec(9, 10, 11, 12))
	require.NoError(s.T(), m.DropCols(1, 2))
	require.Equal(s.T(), 2, m.Cols)
	require.True(s.T(), mat.Eq(m.Row[0], vec(1, 4), 2))
	require.NoError(s.T(), m.DropRows(0, 1))
	require.Equal(s.T(), 2, m.Rows)
	require.True(s.T(), mat.Eq(m.Row[0], vec(5, 8), 2))
}

func (s *MatSuite) TestVecProduct() {
	m, _ := mat.New(2, 2)
	fill(m, vec(1, 2), vec(3, 4))
	p, err := mat.VecProduct(vec(1, 1), m)
	require.NoError(s.T(), err)
	require.True(s.T(), mat.Eq(p, vec(4, 6), 2))
}

func TestMatSuite(t *testing.T) {
	suite.Run(t, new(MatSuite))
}

// RightInverseSuite checks the defining identity m*U = [d*I | 0].
type RightInverseSuite struct {
	suite.Suite
}

// checkIdentity verifies m*U = [d*I | 0] with a single positive d.
func (s *RightInverseSuite) checkIdentity(m, u *mat.Mat) {
	p, err := mat.Product(m, u)
	require.NoError(s.T(), err)
	d := p.Row[0][0]
	require.Positive(s.T(), d.Sign())
	for i := 0; i < p.Rows; i++ {
		for j := 0; j < p.Cols; j++ {
			if i == j {
				require.Zero(s.T(), p.Row[i][j].Cmp(d), "diagonal not uniform at %d", i)
			} else {
				require.Zero(s.T(), p.Row[i][j].Sign(), "nonzero off-diagonal at %d,%d", i, j)
			}
		}
	}
}

func (s *RightInverseSuite) TestSquare() {
	m, _ := mat.New(3, 3)
	fill(m, vec(1, 0, 0), vec(2, 1, -1), vec(0, 3, 1))
	u, err := mat.RightInverse(m)
	require.NoError(s.T(), err)
	s.checkIdentity(m, u)
}

func (s *RightInverseSuite) TestWide() {
	m, _ := mat.New(2, 4)
	fill(m, vec(1, 0, 0, 0), vec(3, 2, -1, 5))
	u, err := mat.RightInverse(m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, u.Rows)
	require.Equal(s.T(), 4, u.Cols)
	s.checkIdentity(m, u)
}

func (s *RightInverseSuite) TestHomogeneousFirstRow() {
	// Engine transforms always start with the row [1 0 ... 0]; the
	// inverse must then have first row [d 0 ... 0].
	m, _ := mat.New(3, 3)
	fill(m, vec(1, 0, 0), vec(1, -1, -1), vec(0, 0, 1))
	u, err := mat.RightInverse(m)
	require.NoError(s.T(), err)
	s.checkIdentity(m, u)
	require.Positive(s.T(), u.Row[0][0].Sign())
	require.Zero(s.T(), u.Row[0][1].Sign())
	require.Zero(s.T(), u.Row[0][2].Sign())
}

func (s *RightInverseSuite) TestSingular() {
	m, _ := mat.New(2, 3)
	fill(m, vec(1, 2, 3), vec(2, 4, 6))
	_, err := mat.RightInverse(m)
	require.ErrorIs(s.T(), err, mat.ErrSingular)
}

func (s *RightInverseSuite) TestKernelColumns() {
	// Kernel columns of U must be annihilated by m.
	m, _ := mat.New(2, 3)
	fill(m, vec(1, 0, 0), vec(0, 1, 1))
	u, err := mat.RightInverse(m)
	require.NoError(s.T(), err)
	s.checkIdentity(m, u)
	ker := mat.Vec{u.Row[0][2], u.Row[1][2], u.Row[2][2]}
	p, err := mat.VecProduct(ker, &mat.Mat{Rows: 3, Cols: 2, Row: []mat.Vec{
		{m.Row[0][0], m.Row[1][0]},
		{m.Row[0][1], m.Row[1][1]},
		{m.Row[0][2], m.Row[1][2]},
	}})
	require.NoError(s.T(), err)
	require.Equal(s.T(), -1, mat.FirstNonZero(p, 2))
}

func TestRightInverseSuite(t *testing.T) {
	suite.Run(t, new(RightInverseSuite))
}
