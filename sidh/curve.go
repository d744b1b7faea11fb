package sidh

// The Montgomery curve y^2 = x^3 + a*x^2 + x, a = A/C, is carried in four
// distinct encodings rather than one (A,C) struct with a convention
// comment, so the compiler enforces which ladder/isogeny formula a given
// value may be fed into.

// CurveAC is the canonical (A:C) encoding.
type CurveAC struct{ A, C Fp2 }

// CurveAplusC is the (A+2C : 4C) encoding required by xDBL, xDBLe, Ladder
// and the 4-isogeny formulas.
type CurveAplusC struct{ A, C Fp2 }

// CurveAplusAminus is the (A+2C : A-2C) encoding required by xTPL, xTPLe
// and the 3-isogeny formulas.
type CurveAplusAminus struct{ Ap, Am Fp2 }

// CurveAplus is the ((A+2C)/4C : 1) encoding required by xDBLADD and
// Ladder3ptWithoutConversion. C is implicitly one, so only the ratio is
// carried.
type CurveAplus struct{ Value Fp2 }

// ToAplusC computes (A,C) -> (A+2C, 4C).
func (f *Field) ToAplusC(e CurveAC) CurveAplusC {
	twoC := f.Add(e.C, e.C)
	fourC := f.Add(twoC, twoC)
	aPlus := f.Add(e.A, twoC)
	return CurveAplusC{A: aPlus, C: fourC}
}

// ToAplusAminus computes (A,C) -> (A+2C, A-2C).
func (f *Field) ToAplusAminus(e CurveAC) CurveAplusAminus {
	twoC := f.Add(e.C, e.C)
	ap := f.Add(e.A, twoC)
	am := f.Sub(e.A, twoC)
	return CurveAplusAminus{Ap: ap, Am: am}
}

// ToAplus divides an AplusC-encoded pair, producing ((A+2C)/4C : 1). This
// is the same division NormalizeCurve performs; it is named separately
// here because the caller is dividing a pair that was never a canonical
// (A,C) to begin with (see CurveFromAlpha/CurveFromBeta below).
func (c CurveAplusC) ToAplus(f *Field) (CurveAplus, error) {
	if f.IsZero(c.C) {
		return CurveAplus{}, ErrDegenerateInverse
	}
	inv, err := f.Inv(c.C)
	if err != nil {
		return CurveAplus{}, err
	}
	return CurveAplus{Value: f.Mul(c.A, inv)}, nil
}

// ToAplus computes (A,C) -> ((A+2C)/4C : 1) directly, requiring 4C != 0.
func (f *Field) ToAplus(e CurveAC) (CurveAplus, error) {
	return f.ToAplusC(e).ToAplus(f)
}

// NormalizeCurve computes (A,C) -> (A/C : 1). Unlike every other
// degenerate-inversion case in this package, a curve with C = 0 is
// rejected outright rather than silently returning a zero curve.
func (f *Field) NormalizeCurve(e CurveAC) (CurveAC, error) {
	if f.IsZero(e.C) {
		return CurveAC{}, ErrDegenerateInverse
	}
	inv, err := f.Inv(e.C)
	if err != nil {
		return CurveAC{}, err
	}
	return CurveAC{A: f.Mul(e.A, inv), C: f.One()}, nil
}

// AsRawAC reinterprets an AplusC-encoded pair's two components directly as
// a canonical (A:C) pair, with no conversion at all. The generalised
// exchange feeds CurveFromBeta's output straight into JInvariant without
// converting back to a textbook (A,C); both parties apply the same
// reinterpretation, so the j-invariants they land on still agree.
func (c CurveAplusC) AsRawAC() CurveAC {
	return CurveAC{A: c.A, C: c.C}
}

// JInvariant computes j = 256*(A^2-3C^2)^3 / (C^4*(A^2-4C^2)) for a
// canonical (A:C) curve, requiring one field inversion.
func (f *Field) JInvariant(e CurveAC) (Fp2, error) {
	aSq := f.Sqr(e.A)
	cSq := f.Sqr(e.C)
	twoCSq := f.Add(cSq, cSq)
	aSqMinus2CSq := f.Sub(aSq, twoCSq)
	aSqMinus3CSq := f.Sub(aSqMinus2CSq, cSq)
	aSqMinus4CSq := f.Sub(aSqMinus3CSq, cSq)
	cFour := f.Sqr(cSq)

	cube := f.Mul(f.Mul(aSqMinus3CSq, aSqMinus3CSq), aSqMinus3CSq)
	c256 := f.FromInt64(256, 0)
	numer := f.Mul(c256, cube)
	denom := f.Mul(aSqMinus4CSq, cFour)

	denomInv, err := f.Inv(denom)
	if err != nil {
		return f.Zero(), err
	}
	return f.Mul(numer, denomInv), nil
}

// GetA recovers the Montgomery A coefficient (with C = 1) of the unique
// curve carrying three given x-coordinates, via the published closed
// form. Requires one field inversion.
func (f *Field) GetA(xP, xQ, xQminusP Fp2) (Fp2, error) {
	t1 := f.Add(xP, xQ)
	t0 := f.Mul(xP, xQ)
	t := f.Mul(xQminusP, t1)
	t = f.Add(t, t0)
	t0 = f.Mul(t0, xQminusP)
	one := f.One()
	t = f.Sub(t, one)
	t0 = f.Add(t0, t0)
	t1 = f.Add(t1, xQminusP)
	t0 = f.Add(t0, t0)
	t = f.Mul(t, t)
	t0Inv, err := f.Inv(t0)
	if err != nil {
		return f.Zero(), err
	}
	t = f.Mul(t, t0Inv)
	t = f.Sub(t, t1)
	return t, nil
}

// CrissCross computes the Costello-Hisil product used throughout the
// odd-degree isogeny formulas: ((X_P,Z_P),(X_Q,Z_Q)) -> (X_P*Z_Q + Z_P*X_Q,
// X_P*Z_Q - Z_P*X_Q).
func (f *Field) CrissCross(p, q Point) Point {
	t1 := f.Mul(p.X, q.Z)
	t2 := f.Mul(p.Z, q.X)
	return Point{X: f.Add(t1, t2), Z: f.Sub(t1, t2)}
}

// CurveFromAlpha builds, in AplusC encoding, the curve having alpha as the
// x-coordinate of a 2-torsion point. This deliberately differs from the
// published paper's ((A-2C)/4, C); every downstream caller in this
// package expects exactly this AplusC-shaped pair.
func (f *Field) CurveFromAlpha(alpha Fp2) CurveAplusC {
	one := f.One()
	t1 := f.Sub(alpha, one)
	t1 = f.Sqr(t1)
	t2 := f.Add(alpha, one)
	t2 = f.Sqr(t2)
	t2 = f.Sub(t1, t2)
	return CurveAplusC{A: t1, C: t2}
}

// CurveFromBeta is CurveFromAlpha generalized to a projective 2-torsion
// point Beta = (X:Z) instead of a bare affine alpha, used once per step of
// the generalised odd-ell chain to rebuild the current curve from the
// tracked Beta point.
func (f *Field) CurveFromBeta(beta Point) CurveAplusC {
	t1 := f.Sub(beta.X, beta.Z)
	t1 = f.Sqr(t1)
	t2 := f.Add(beta.X, beta.Z)
	t2 = f.Sqr(t2)
	t2 = f.Sub(t1, t2)
	return CurveAplusC{A: t1, C: t2}
}
