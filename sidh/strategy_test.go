package sidh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The strategy-driven chain and the naive chain compute the same
// codomain (up to projective scaling) and the same carry images. The
// kernel generator (423+60i : 1) has order 27 on y^2 = x^3 + x over
// F_431, so e3 = 3 and the all-ones strategy describes the full
// depth-first traversal.
func TestThreePowerChainWithStrategyMatchesNaiveChain(t *testing.T) {
	f := mustField(t, 431)
	base := CurveAC{A: f.Zero(), C: f.One()}
	aplusAminus := f.ToAplusAminus(base)

	g := f.Affine(elem(f, 423, 60))
	carries := [3]Point{
		f.Affine(elem(f, 68, 43)),
		f.Affine(elem(f, 288, 333)),
		f.Affine(elem(f, 7, 11)),
	}

	naive, _, naiveImages := f.ThreePowerChain(aplusAminus, g, carries, 3)

	viaStrategy, images, err := f.ThreePowerChainWithStrategy(aplusAminus, g, carries, 3, []int{1, 1})
	require.NoError(t, err)

	// The two paths evaluate the intermediate kernels through
	// differently-scaled representatives, so compare projectively.
	require.True(t, f.Equal(f.Mul(naive.Ap, viaStrategy.Am), f.Mul(viaStrategy.Ap, naive.Am)))
	for i := range images {
		require.Equal(t, f.NormalizeX(naiveImages[i]).String(), f.NormalizeX(images[i]).String())
	}
}

func TestThreePowerChainWithStrategyRejectsWrongLength(t *testing.T) {
	f := mustField(t, 431)
	base := CurveAC{A: f.Zero(), C: f.One()}
	aplusAminus := f.ToAplusAminus(base)
	g := f.Affine(elem(f, 423, 60))
	carries := [3]Point{g, g, g}

	_, _, err := f.ThreePowerChainWithStrategy(aplusAminus, g, carries, 3, []int{1, 1, 1})
	require.ErrorIs(t, err, ErrInvalidStrategy)
}

func TestThreePowerChainWithStrategyRejectsOutOfRangeSplit(t *testing.T) {
	f := mustField(t, 431)
	base := CurveAC{A: f.Zero(), C: f.One()}
	aplusAminus := f.ToAplusAminus(base)
	g := f.Affine(elem(f, 423, 60))
	carries := [3]Point{g, g, g}

	_, _, err := f.ThreePowerChainWithStrategy(aplusAminus, g, carries, 3, []int{5, 1})
	require.ErrorIs(t, err, ErrInvalidStrategy)
}
