package sidh

// TwoPowerChain walks a naive 2^e2-isogeny chain from curve (AplusC
// encoding) with kernel generator s of order 2^e2, two isogenies at a
// time (a 4-isogeny), carrying three auxiliary points along for the ride.
// e2 must be even.
func (f *Field) TwoPowerChain(curve CurveAplusC, s Point, carries [3]Point, e2 int) (CurveAplusC, Point, [3]Point) {
	g := curve
	ker := s
	out := carries
	for e := e2 - 2; e >= 0; e -= 2 {
		t := f.XDBLe(ker, g, e)
		iso, codomain := f.NewIsogeny4(t)
		g = codomain
		ker = iso.Evaluate(f, ker)
		for i := range out {
			out[i] = iso.Evaluate(f, out[i])
		}
	}
	return g, ker, out
}

// TwoPowerChainSimple is TwoPowerChain without carry points, used by the
// isoex_two side which only needs the codomain curve.
func (f *Field) TwoPowerChainSimple(curve CurveAplusC, s Point, e2 int) (CurveAplusC, Point) {
	g := curve
	ker := s
	for e := e2 - 2; e >= 0; e -= 2 {
		t := f.XDBLe(ker, g, e)
		iso, codomain := f.NewIsogeny4(t)
		g = codomain
		ker = iso.Evaluate(f, ker)
	}
	return g, ker
}

// ThreePowerChain walks a naive 3^e3-isogeny chain from curve
// (AplusAminus encoding) with kernel generator s of order 3^e3, one
// 3-isogeny at a time, carrying three auxiliary points along for the ride.
func (f *Field) ThreePowerChain(curve CurveAplusAminus, s Point, carries [3]Point, e3 int) (CurveAplusAminus, Point, [3]Point) {
	g := curve
	ker := s
	out := carries
	for e := e3 - 1; e >= 0; e-- {
		t := f.XTPLe(ker, g, e)
		iso, codomain := f.NewIsogeny3(t)
		g = codomain
		ker = iso.Evaluate(f, ker)
		for i := range out {
			out[i] = iso.Evaluate(f, out[i])
		}
	}
	return g, ker, out
}

// ThreePowerChainSimple is ThreePowerChain without carry points, used by
// the isoex_three side which only needs the codomain curve.
func (f *Field) ThreePowerChainSimple(curve CurveAplusAminus, s Point, e3 int) (CurveAplusAminus, Point) {
	g := curve
	ker := s
	for e := e3 - 1; e >= 0; e-- {
		t := f.XTPLe(ker, g, e)
		iso, codomain := f.NewIsogeny3(t)
		g = codomain
		ker = iso.Evaluate(f, ker)
	}
	return g, ker
}
