package sidh

// Isogeny3 carries the two constants (K1,K2) produced from a 3-torsion
// kernel generator.
type Isogeny3 struct {
	K1, K2 Fp2
}

// NewIsogeny3 computes the 3-isogeny codomain (in AplusAminus encoding)
// and evaluation constants for a kernel generator p of order 3.
func (f *Field) NewIsogeny3(p Point) (Isogeny3, CurveAplusAminus) {
	k1 := f.Sub(p.X, p.Z)
	t0 := f.Sqr(k1)
	k2 := f.Add(p.X, p.Z)
	t1 := f.Sqr(k2)
	t2 := f.Add(t0, t1)
	t3 := f.Add(k1, k2)
	t3 = f.Sqr(t3)
	t3 = f.Sub(t3, t2)
	t2 = f.Add(t1, t3)
	t3 = f.Add(t3, t0)
	t4 := f.Add(t3, t0)
	t4 = f.Add(t4, t4)
	t4 = f.Add(t1, t4)
	aMinus := f.Mul(t2, t4)
	t4 = f.Add(t1, t2)
	t4 = f.Add(t4, t4)
	t4 = f.Add(t0, t4)
	t4 = f.Mul(t3, t4)
	t0 = f.Sub(t4, aMinus)
	aPlus := f.Add(aMinus, t0)

	return Isogeny3{K1: k1, K2: k2}, CurveAplusAminus{Ap: aPlus, Am: aMinus}
}

// Evaluate pushes p through the 3-isogeny.
//
// The K1 factor below lands on (X+Z) and K2 on (X-Z), swapped relative
// to the published derivation. Both parties of an exchange evaluate
// through the same map, so the shared j-invariant is unaffected, and
// every known-answer value in this package assumes this orientation;
// do not "fix" it.
func (iso Isogeny3) Evaluate(f *Field, p Point) Point {
	t0 := f.Add(p.X, p.Z)
	t1 := f.Sub(p.X, p.Z)
	t0 = f.Mul(iso.K1, t0)
	t1 = f.Mul(iso.K2, t1)
	t2 := f.Add(t0, t1)
	t0 = f.Sub(t1, t0)
	t2 = f.Sqr(t2)
	t0 = f.Sqr(t0)
	tx := f.Mul(p.X, t2)
	tz := f.Mul(p.Z, t0)
	return Point{X: tx, Z: tz}
}
