package sidh

// Isogeny4 carries the three constants (K1,K2,K3) produced from a
// 4-torsion kernel generator, consumed by Evaluate to push arbitrary
// points through the isogeny without ever inverting a field element.
type Isogeny4 struct {
	K1, K2, K3 Fp2
}

// NewIsogeny4 computes the 4-isogeny codomain (in AplusC encoding) and
// evaluation constants for a kernel generator p4 of order 4. p4 must
// satisfy Z != +-X.
func (f *Field) NewIsogeny4(p4 Point) (Isogeny4, CurveAplusC) {
	k2 := f.Sub(p4.X, p4.Z)
	k3 := f.Add(p4.X, p4.Z)

	k1 := f.Sqr(p4.Z)
	k1 = f.Add(k1, k1) // 2Z^2
	cCodomain := f.Sqr(k1)
	k1 = f.Add(k1, k1) // 4Z^2, the constant Evaluate actually needs

	aTmp := f.Sqr(p4.X)
	aTmp = f.Add(aTmp, aTmp) // 2X^2
	aCodomain := f.Sqr(aTmp) // (2X^2)^2

	return Isogeny4{K1: k1, K2: k2, K3: k3}, CurveAplusC{A: aCodomain, C: cCodomain}
}

// Evaluate pushes p through the 4-isogeny via the published closed-form
// arithmetic on (X+Z, X-Z); no field inversion.
func (iso Isogeny4) Evaluate(f *Field, p Point) Point {
	t0 := f.Add(p.X, p.Z)
	t1 := f.Sub(p.X, p.Z)
	tx := f.Mul(t0, iso.K2)
	tz := f.Mul(t1, iso.K3)
	t0 = f.Mul(t0, t1)
	t0 = f.Mul(t0, iso.K1)
	t1 = f.Add(tx, tz)
	tz = f.Sub(tx, tz)
	t1 = f.Sqr(t1)
	tz = f.Sqr(tz)
	tx = f.Add(t0, t1)
	t0 = f.Sub(tz, t0)
	tx = f.Mul(tx, t1)
	tz = f.Mul(tz, t0)
	return Point{X: tx, Z: tz}
}
