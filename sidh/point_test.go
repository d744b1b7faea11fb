package sidh

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePointIdempotent(t *testing.T) {
	f := mustField(t, 23)
	p := Point{X: elem(f, 9, 3), Z: elem(f, 2, 1)}

	once, inf1 := f.NormalizePoint(p)
	require.False(t, inf1)
	twice, inf2 := f.NormalizePoint(once)
	require.False(t, inf2)

	require.True(t, f.Equal(once.X, twice.X))
	require.True(t, f.Equal(once.Z, twice.Z))
}

func TestNormalizePointAtInfinity(t *testing.T) {
	f := mustField(t, 23)
	p := Point{X: elem(f, 5, 0), Z: f.Zero()}
	n, isInf := f.NormalizePoint(p)
	require.True(t, isInf)
	require.True(t, f.IsZero(n.X))
	require.True(t, f.IsZero(n.Z))
}

func TestPointsEqualIgnoresScale(t *testing.T) {
	f := mustField(t, 23)
	lambda := elem(f, 3, 0)
	p := Point{X: elem(f, 5, 0), Z: f.One()}
	scaled := Point{X: f.Mul(p.X, lambda), Z: f.Mul(p.Z, lambda)}
	require.True(t, f.PointsEqual(p, scaled))
}

// P=(1:1) on curve (0,1) over F_7 is a genuine curve point (1^3+1=2=3^2
// mod 7), so scalar multiplication composes as a true group homomorphism
// regardless of P's order: [m]([n]P) = [mn]P.
func TestLadderComposesScalars(t *testing.T) {
	f := mustField(t, 7)
	base := CurveAC{A: f.Zero(), C: f.One()}
	aplusC := f.ToAplusC(base)
	p := f.Affine(elem(f, 1, 0))

	mn := f.Ladder(p, big.NewInt(6), aplusC)
	nested := f.Ladder(f.Ladder(p, big.NewInt(2), aplusC), big.NewInt(3), aplusC)

	require.Equal(t, f.NormalizeX(mn).String(), f.NormalizeX(nested).String())
}
