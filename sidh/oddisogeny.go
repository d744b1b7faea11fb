package sidh

// KernelPoints enumerates d = (ord(g)-1)/2 points ker[0..d-1] spanning the
// kernel of the cyclic isogeny generated by g, where ker[0] = g,
// ker[1] = 2g (if d >= 2), and ker[i] = ker[i-1] + g (via xADD) for i >= 2.
// Storing only d of the 2d nonzero kernel points is correct because a
// point and its negation share the same x-coordinate.
func (f *Field) KernelPoints(d int, g Point, curve CurveAplusC) []Point {
	ker := make([]Point, d)
	ker[0] = g
	if d >= 2 {
		ker[1] = f.XDBL(g, curve)
	}
	for i := 3; i <= d; i++ {
		ker[i-1] = f.XADD(ker[i-2], g, ker[i-3])
	}
	return ker
}

// KernelReshape replaces each kernel point (X,Z) with (X+Z, X-Z), the
// form the odd-degree image evaluator consumes.
func (f *Field) KernelReshape(ker []Point) []Point {
	out := make([]Point, len(ker))
	for i, k := range ker {
		out[i] = Point{X: f.Add(k.X, k.Z), Z: f.Sub(k.X, k.Z)}
	}
	return out
}

// OddIsogeny evaluates the image of p under the odd-degree isogeny whose
// (already reshaped) kernel is ker, via repeated criss-cross products
// followed by one squaring and one multiply per coordinate.
func (f *Field) OddIsogeny(ker []Point, p Point) Point {
	hat := Point{X: f.Add(p.X, p.Z), Z: f.Sub(p.X, p.Z)}
	t := f.CrissCross(ker[0], hat)
	for i := 1; i < len(ker); i++ {
		u := f.CrissCross(ker[i], hat)
		t = Point{X: f.Mul(u.X, t.X), Z: f.Mul(u.Z, t.Z)}
	}
	tx := f.Sqr(t.X)
	tz := f.Sqr(t.Z)
	tx = f.Mul(p.X, tx)
	tz = f.Mul(p.Z, tz)
	return Point{X: tx, Z: tz}
}

// SimultaneousOddIsogeny builds the kernel generated by g (order 2d+1) on
// curve, then applies the resulting isogeny to r, beta, and all three
// carry points, sharing the one kernel reshape across every evaluation.
func (f *Field) SimultaneousOddIsogeny(r, beta Point, carries [3]Point, g Point, curve CurveAplusC, d int) (Point, Point, [3]Point) {
	ker := f.KernelReshape(f.KernelPoints(d, g, curve))
	newR := f.OddIsogeny(ker, r)
	newBeta := f.OddIsogeny(ker, beta)
	var newCarries [3]Point
	for i, c := range carries {
		newCarries[i] = f.OddIsogeny(ker, c)
	}
	return newR, newBeta, newCarries
}

// SimultaneousOddIsogenyWithoutPoints is SimultaneousOddIsogeny without
// the carry points, used by the isoex_* side of the generalised exchange
// which never needs basis-point images.
func (f *Field) SimultaneousOddIsogenyWithoutPoints(r, beta Point, g Point, curve CurveAplusC, d int) (Point, Point) {
	ker := f.KernelReshape(f.KernelPoints(d, g, curve))
	return f.OddIsogeny(ker, r), f.OddIsogeny(ker, beta)
}
