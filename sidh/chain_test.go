package sidh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// xDBLe must match repeated xDBL, and xTPLe must match repeated xTPL.
func TestXDBLeMatchesRepeatedXDBL(t *testing.T) {
	f := mustField(t, 23)
	base := CurveAC{A: f.Zero(), C: f.One()}
	aplusC := f.ToAplusC(base)
	p := f.Affine(elem(f, 0, 4))

	viaE := f.XDBLe(p, aplusC, 3)

	r := p
	for i := 0; i < 3; i++ {
		r = f.XDBL(r, aplusC)
	}

	require.Equal(t, f.NormalizeX(viaE).String(), f.NormalizeX(r).String())
}

func TestXTPLeMatchesRepeatedXTPL(t *testing.T) {
	f := mustField(t, 23)
	base := CurveAC{A: f.Zero(), C: f.One()}
	aplusAminus := f.ToAplusAminus(base)
	p := f.Affine(elem(f, 5, 0))

	viaE := f.XTPLe(p, aplusAminus, 2)

	r := p
	for i := 0; i < 2; i++ {
		r = f.XTPL(r, aplusAminus)
	}

	require.Equal(t, f.NormalizeX(viaE).String(), f.NormalizeX(r).String())
}

// TwoPowerChainSimple applied for e2=2 must produce the same codomain as a
// single direct 4-isogeny built from the order-4 kernel point itself.
func TestTwoPowerChainSimpleSingleStep(t *testing.T) {
	f := mustField(t, 23)
	base := CurveAC{A: f.Zero(), C: f.One()}
	aplusC := f.ToAplusC(base)
	ker := f.Affine(elem(f, 0, 4))

	viaChain, _ := f.TwoPowerChainSimple(aplusC, ker, 2)

	_, direct := f.NewIsogeny4(ker)

	require.True(t, f.Equal(viaChain.A, direct.A))
	require.True(t, f.Equal(viaChain.C, direct.C))
}

// ThreePowerChainSimple applied for e3=1 must produce the same codomain as
// a single direct 3-isogeny.
func TestThreePowerChainSimpleSingleStep(t *testing.T) {
	f := mustField(t, 23)
	base := CurveAC{A: f.Zero(), C: f.One()}
	aplusAminus := f.ToAplusAminus(base)
	ker := f.Affine(elem(f, 5, 0))

	viaChain, _ := f.ThreePowerChainSimple(aplusAminus, ker, 1)
	_, direct := f.NewIsogeny3(ker)

	require.True(t, f.Equal(viaChain.Ap, direct.Ap))
	require.True(t, f.Equal(viaChain.Am, direct.Am))
}
