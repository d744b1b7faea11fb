package sidh

import "math/big"

// IsogenTwo is the regular 2^eA-side key generation: start from the fixed
// curve (A,C) = (0,1), find the kernel generator via a three-point ladder
// on the A-side basis, walk the 2^eA chain carrying the B-side basis, and
// publish its images.
func IsogenTwo(sk SecretKey, params *Parameters) (PublicKey, error) {
	f := params.Field
	base := CurveAC{A: f.Zero(), C: f.One()}
	aplusC := f.ToAplusC(base)

	carries := [3]Point{
		f.Affine(params.XPB),
		f.Affine(params.XQB),
		f.Affine(params.XRB),
	}

	kernel, err := f.Ladder3pt(sk.Scalar, params.XPA, params.XQA, params.XRA, base)
	if err != nil {
		return PublicKey{}, err
	}

	_, _, images := f.TwoPowerChain(aplusC, kernel, carries, params.EA)

	return PublicKey{
		X1: f.NormalizeX(images[0]),
		X2: f.NormalizeX(images[1]),
		X3: f.NormalizeX(images[2]),
	}, nil
}

// IsogenThree is the regular 3^eB-side key generation, symmetric to
// IsogenTwo.
func IsogenThree(sk SecretKey, params *Parameters) (PublicKey, error) {
	f := params.Field
	base := CurveAC{A: f.Zero(), C: f.One()}
	aplusAminus := f.ToAplusAminus(base)

	carries := [3]Point{
		f.Affine(params.XPA),
		f.Affine(params.XQA),
		f.Affine(params.XRA),
	}

	kernel, err := f.Ladder3pt(sk.Scalar, params.XPB, params.XQB, params.XRB, base)
	if err != nil {
		return PublicKey{}, err
	}

	_, _, images := f.ThreePowerChain(aplusAminus, kernel, carries, params.EB)

	return PublicKey{
		X1: f.NormalizeX(images[0]),
		X2: f.NormalizeX(images[1]),
		X3: f.NormalizeX(images[2]),
	}, nil
}

// twoSideCurveAC recovers the remote curve's A coefficient from a
// counterparty public key's three basis images, as a canonical (A:C)
// curve with C = 1.
func twoSideCurveAC(f *Field, pk PublicKey) (CurveAC, error) {
	a, err := f.GetA(pk.X1, pk.X2, pk.X3)
	if err != nil {
		return CurveAC{}, err
	}
	return CurveAC{A: a, C: f.One()}, nil
}

// IsoexTwo is the regular 2^eA-side key exchange: rebuild the
// counterparty's curve from their published basis images, find the
// scalar-dependent kernel on it, walk the 2^eA chain without carries, and
// report the resulting j-invariant.
func IsoexTwo(sk SecretKey, pk PublicKey, params *Parameters) (Fp2, error) {
	f := params.Field
	curve, err := twoSideCurveAC(f, pk)
	if err != nil {
		return Fp2{}, err
	}

	kernel, err := f.Ladder3pt(sk.Scalar, pk.X1, pk.X2, pk.X3, curve)
	if err != nil {
		return Fp2{}, err
	}

	working := f.ToAplusC(curve)
	final, _ := f.TwoPowerChainSimple(working, kernel, params.EA)

	// (A,C) = (4*Aplus - 2*C, C).
	twoC := f.Add(final.C, final.C)
	fourAplus := f.Add(f.Add(final.A, final.A), f.Add(final.A, final.A))
	recovered := CurveAC{A: f.Sub(fourAplus, twoC), C: final.C}

	return f.JInvariant(recovered)
}

// IsoexThree is the regular 3^eB-side key exchange, symmetric to
// IsoexTwo.
func IsoexThree(sk SecretKey, pk PublicKey, params *Parameters) (Fp2, error) {
	f := params.Field
	curve, err := twoSideCurveAC(f, pk)
	if err != nil {
		return Fp2{}, err
	}

	kernel, err := f.Ladder3pt(sk.Scalar, pk.X1, pk.X2, pk.X3, curve)
	if err != nil {
		return Fp2{}, err
	}

	working := f.ToAplusAminus(curve)
	final, _ := f.ThreePowerChainSimple(working, kernel, params.EB)

	// (A,C) = (2*(Ap+Am), Ap-Am).
	sum := f.Add(final.Ap, final.Am)
	recovered := CurveAC{A: f.Add(sum, sum), C: f.Sub(final.Ap, final.Am)}

	return f.JInvariant(recovered)
}

// basis is a party's torsion basis (x_P, x_Q, x_{Q-P}). The Alice and
// Bob sides of the generalised flavour differ only in which basis is
// "own" and which is "other", so both share one parameterised routine.
type basis struct {
	XP, XQ, XR Fp2
}

// isogenGeneralized is the generalised odd-ell key generation shared by
// IsogenAlice and IsogenBob: track a 2-torsion point Beta across the
// chain, rebuilding the current curve from it at every step.
func (f *Field) isogenGeneralized(sk SecretKey, pSide, eSide int, own, other basis, alpha Fp2) (PublicKey, error) {
	beta := f.Affine(alpha)
	carries := [3]Point{f.Affine(other.XP), f.Affine(other.XQ), f.Affine(other.XR)}

	baseAplusC := f.CurveFromAlpha(alpha)
	baseAplus, err := baseAplusC.ToAplus(f)
	if err != nil {
		return PublicKey{}, err
	}

	running := f.Ladder3ptWithoutConversion(sk.Scalar, own.XP, own.XQ, own.XR, baseAplus)

	pSideBig := big.NewInt(int64(pSide))
	d := (pSide - 1) / 2
	for i := eSide - 1; i >= 0; i-- {
		curve := f.CurveFromBeta(beta)
		q := new(big.Int).Exp(pSideBig, big.NewInt(int64(i)), nil)
		step := f.Ladder(running, q, curve)
		running, beta, carries = f.SimultaneousOddIsogeny(running, beta, carries, step, curve, d)
	}

	return PublicKey{
		Beta: f.NormalizeX(beta),
		X1:   f.NormalizeX(carries[0]),
		X2:   f.NormalizeX(carries[1]),
		X3:   f.NormalizeX(carries[2]),
	}, nil
}

// isoexGeneralized implements the exchange side of the generalised
// odd-ell chain shared by IsoexAlice and IsoexBob.
func (f *Field) isoexGeneralized(sk SecretKey, counterparty PublicKey, pSide, eSide int) (Fp2, error) {
	beta := f.Affine(counterparty.Beta)

	baseAplusC := f.CurveFromBeta(beta)
	baseAplus, err := baseAplusC.ToAplus(f)
	if err != nil {
		return Fp2{}, err
	}

	running := f.Ladder3ptWithoutConversion(sk.Scalar, counterparty.X1, counterparty.X2, counterparty.X3, baseAplus)

	pSideBig := big.NewInt(int64(pSide))
	d := (pSide - 1) / 2
	for i := eSide - 1; i >= 0; i-- {
		curve := f.CurveFromBeta(beta)
		q := new(big.Int).Exp(pSideBig, big.NewInt(int64(i)), nil)
		step := f.Ladder(running, q, curve)
		running, beta = f.SimultaneousOddIsogenyWithoutPoints(running, beta, step, curve, d)
	}

	finalCurve := f.CurveFromBeta(beta)
	// Fed raw into JInvariant, not converted back to a canonical (A,C):
	// see CurveAplusC.AsRawAC.
	return f.JInvariant(finalCurve.AsRawAC())
}

// IsogenAlice is the generalised odd-p_A-side key generation.
func IsogenAlice(sk SecretKey, params *Parameters) (PublicKey, error) {
	f := params.Field
	own := basis{params.XPA, params.XQA, params.XRA}
	other := basis{params.XPB, params.XQB, params.XRB}
	return f.isogenGeneralized(sk, params.PA, params.EA, own, other, params.Alpha)
}

// IsogenBob is the generalised odd-p_B-side key generation.
func IsogenBob(sk SecretKey, params *Parameters) (PublicKey, error) {
	f := params.Field
	own := basis{params.XPB, params.XQB, params.XRB}
	other := basis{params.XPA, params.XQA, params.XRA}
	return f.isogenGeneralized(sk, params.PB, params.EB, own, other, params.Alpha)
}

// IsoexAlice is the generalised odd-p_A-side key exchange.
func IsoexAlice(sk SecretKey, counterparty PublicKey, params *Parameters) (Fp2, error) {
	return params.Field.isoexGeneralized(sk, counterparty, params.PA, params.EA)
}

// IsoexBob is the generalised odd-p_B-side key exchange.
func IsoexBob(sk SecretKey, counterparty PublicKey, params *Parameters) (Fp2, error) {
	return params.Field.isoexGeneralized(sk, counterparty, params.PB, params.EB)
}

// KeyGenAlice dispatches to the regular or generalised Alice-side key
// generation depending on regular.
func KeyGenAlice(sk SecretKey, params *Parameters, regular bool) (PublicKey, error) {
	if regular {
		return IsogenTwo(sk, params)
	}
	return IsogenAlice(sk, params)
}

// KeyGenBob dispatches to the regular or generalised Bob-side key
// generation depending on regular.
func KeyGenBob(sk SecretKey, params *Parameters, regular bool) (PublicKey, error) {
	if regular {
		return IsogenThree(sk, params)
	}
	return IsogenBob(sk, params)
}

// KeyExchangeAlice dispatches to the regular or generalised Alice-side
// key exchange depending on regular.
func KeyExchangeAlice(sk SecretKey, counterparty PublicKey, params *Parameters, regular bool) (Fp2, error) {
	if regular {
		return IsoexTwo(sk, counterparty, params)
	}
	return IsoexAlice(sk, counterparty, params)
}

// KeyExchangeBob dispatches to the regular or generalised Bob-side key
// exchange depending on regular.
func KeyExchangeBob(sk SecretKey, counterparty PublicKey, params *Parameters, regular bool) (Fp2, error) {
	if regular {
		return IsoexThree(sk, counterparty, params)
	}
	return IsoexBob(sk, counterparty, params)
}
