package sidh

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// Known values on the curve y^2 = x^3 + x over F_7, P = (1:1).
func TestKnownValuesP7(t *testing.T) {
	f := mustField(t, 7)
	base := CurveAC{A: f.Zero(), C: f.One()}
	aplusC := f.ToAplusC(base)
	aplusAminus := f.ToAplusAminus(base)

	p := f.Affine(elem(f, 1, 0))

	dbl := f.XDBL(p, aplusC)
	require.Equal(t, elem(f, 0, 0).String(), f.NormalizeX(dbl).String())

	tpl := f.XTPL(p, aplusAminus)
	require.Equal(t, elem(f, 1, 0).String(), f.NormalizeX(tpl).String())

	laddered := f.Ladder(p, big.NewInt(7), aplusC)
	require.Equal(t, elem(f, 1, 0).String(), f.NormalizeX(laddered).String())

	j, err := f.JInvariant(base)
	require.NoError(t, err)
	require.Equal(t, elem(f, 6, 0).String(), j.String())
}

// Differential addition and the three-point ladder over F_7,
// P = (1:1), Q = (5:1), P-Q = (3:1).
func TestAdditionAndLadder3ptP7(t *testing.T) {
	f := mustField(t, 7)
	base := CurveAC{A: f.Zero(), C: f.One()}

	xP := elem(f, 1, 0)
	xQ := elem(f, 5, 0)
	xPMinusQ := elem(f, 3, 0)

	p := f.Affine(xP)
	q := f.Affine(xQ)

	cc := f.CrissCross(p, q)
	require.Equal(t, elem(f, 6, 0).String(), cc.X.String())
	require.Equal(t, elem(f, 3, 0).String(), cc.Z.String())

	diff := f.Affine(xPMinusQ)
	sum := f.XADD(p, q, diff)
	require.Equal(t, elem(f, 5, 0).String(), f.NormalizeX(sum).String())

	ladder3, err := f.Ladder3pt(big.NewInt(7), xP, xQ, xPMinusQ, base)
	require.NoError(t, err)
	require.Equal(t, elem(f, 3, 0).String(), f.NormalizeX(ladder3).String())
}

// A degree-5 isogeny over F_19: curve (0,1), kernel generator G = (5:1)
// of order 5 (d = 2).
func TestKernelAndOddIsogenyP19(t *testing.T) {
	f := mustField(t, 19)
	base := CurveAC{A: f.Zero(), C: f.One()}
	aplusC := f.ToAplusC(base)

	g := f.Affine(elem(f, 5, 0))
	ker := f.KernelPoints(2, g, aplusC)
	require.Len(t, ker, 2)
	require.Equal(t, elem(f, 5, 0).String(), f.NormalizeX(ker[0]).String())
	require.Equal(t, elem(f, 9, 0).String(), f.NormalizeX(ker[1]).String())

	// Reshape the normalized kernel so the expected constants stay
	// small; the evaluator is insensitive to per-point scaling.
	for i := range ker {
		ker[i], _ = f.NormalizePoint(ker[i])
	}
	reshaped := f.KernelReshape(ker)
	require.Equal(t, elem(f, 6, 0).String(), reshaped[0].X.String())
	require.Equal(t, elem(f, 4, 0).String(), reshaped[0].Z.String())
	require.Equal(t, elem(f, 10, 0).String(), reshaped[1].X.String())
	require.Equal(t, elem(f, 8, 0).String(), reshaped[1].Z.String())

	p := f.Affine(elem(f, 3, 0))
	img := f.OddIsogeny(reshaped, p)
	require.Equal(t, elem(f, 18, 0).String(), f.NormalizeX(img).String())

	// The kernel generator maps to the identity; the 2-torsion point
	// (i:1) maps to 16+7i.
	beta := f.Affine(elem(f, 0, 1))
	carries := [3]Point{p, p, p}
	newR, newBeta, images := f.SimultaneousOddIsogeny(g, beta, carries, g, aplusC, 2)
	infPt, isInf := f.NormalizePoint(newR)
	require.True(t, isInf)
	require.True(t, f.IsZero(infPt.X))
	require.Equal(t, elem(f, 16, 7).String(), f.NormalizeX(newBeta).String())
	require.Equal(t, elem(f, 18, 0).String(), f.NormalizeX(images[1]).String())
}

// The 4-isogeny over F_23: curve (0,1), Q = (4i:1) of order 4.
func TestFourIsogenyP23(t *testing.T) {
	f := mustField(t, 23)
	base := CurveAC{A: f.Zero(), C: f.One()}
	aplusC := f.ToAplusC(base)

	q := f.Affine(elem(f, 0, 4))
	dbl := f.XDBL(q, aplusC)
	require.Equal(t, elem(f, 0, 22).String(), f.NormalizeX(dbl).String())

	_, codomain := f.NewIsogeny4(q)
	require.Equal(t, elem(f, 12, 0).String(), codomain.A.String())
	require.Equal(t, elem(f, 4, 0).String(), codomain.C.String())
}

// The 3-isogeny over F_23: kernel generator G = (5:1) of order 3.
func TestThreeIsogenyP23(t *testing.T) {
	f := mustField(t, 23)
	g := f.Affine(elem(f, 5, 0))

	iso, codomain := f.NewIsogeny3(g)

	amInv, err := f.Inv(codomain.Am)
	require.NoError(t, err)
	require.Equal(t, elem(f, 21, 0).String(), f.Mul(codomain.Ap, amInv).String())

	q := f.Affine(elem(f, 0, 4))
	img := iso.Evaluate(f, q)
	require.Equal(t, elem(f, 3, 20).String(), f.NormalizeX(img).String())
}
