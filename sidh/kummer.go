package sidh

import "math/big"

// XADD computes P+Q given R = P-Q, the standard Montgomery differential
// addition. The result's Z is zero iff the x-coordinates collide in the
// doubling case, which is the caller's responsibility to avoid.
func (f *Field) XADD(p, q, diff Point) Point {
	t1 := f.Sub(p.X, p.Z)
	t2 := f.Add(q.X, q.Z)
	t3 := f.Mul(t1, t2)
	t1b := f.Add(p.X, p.Z)
	t2b := f.Sub(q.X, q.Z)
	t4 := f.Mul(t1b, t2b)
	sum := f.Add(t3, t4)
	sum = f.Sqr(sum)
	x := f.Mul(sum, diff.Z)
	difference := f.Sub(t3, t4)
	difference = f.Sqr(difference)
	z := f.Mul(difference, diff.X)
	return Point{X: x, Z: z}
}

// XDBL computes 2P on a curve in AplusC encoding.
func (f *Field) XDBL(p Point, curve CurveAplusC) Point {
	t0 := f.Sub(p.X, p.Z)
	t1 := f.Add(p.X, p.Z)
	t0 = f.Sqr(t0)
	t1 = f.Sqr(t1)
	z := f.Mul(curve.C, t0)
	x := f.Mul(z, t1)
	t1 = f.Sub(t1, t0)
	aT1 := f.Mul(curve.A, t1)
	z = f.Add(z, aT1)
	z = f.Mul(z, t1)
	return Point{X: x, Z: z}
}

// XDBLe computes 2^e * P by iterating XDBL e times.
func (f *Field) XDBLe(p Point, curve CurveAplusC, e int) Point {
	r := p
	for i := 0; i < e; i++ {
		r = f.XDBL(r, curve)
	}
	return r
}

// XDBLADD computes (2P, P+Q) simultaneously given Q-P, on a curve in
// aplus encoding.
func (f *Field) XDBLADD(p, q, qMinusP Point, curve CurveAplus) (twoP, pPlusQ Point) {
	t0 := f.Add(p.X, p.Z)
	t1 := f.Sub(p.X, p.Z)
	tx := f.Sqr(t0)
	t2 := f.Sub(q.X, q.Z)
	sx := f.Add(q.X, q.Z)
	t0 = f.Mul(t0, t2)
	tz := f.Sqr(t1)

	t1 = f.Mul(t1, sx)
	t2 = f.Sub(tx, tz)
	tx = f.Mul(tx, tz)
	sx = f.Mul(curve.Value, t2)
	sz := f.Sub(t0, t1)
	tz = f.Add(sx, tz)
	sx = f.Add(t0, t1)

	tz = f.Mul(tz, t2)
	sz = f.Sqr(sz)
	sx = f.Sqr(sx)
	sz = f.Mul(qMinusP.X, sz)
	sx = f.Mul(qMinusP.Z, sx)

	return Point{X: tx, Z: tz}, Point{X: sx, Z: sz}
}

// XTPL computes 3P on a curve in AplusAminus encoding.
func (f *Field) XTPL(p Point, curve CurveAplusAminus) Point {
	t0 := f.Sub(p.X, p.Z)
	t2 := f.Sqr(t0)
	t1 := f.Add(p.X, p.Z)
	t3 := f.Sqr(t1)
	t4 := f.Add(t1, t0)
	t0 = f.Sub(t1, t0)

	t1 = f.Sqr(t4)
	t1 = f.Sub(t1, t3)
	t1 = f.Sub(t1, t2)
	t5 := f.Mul(t3, curve.Ap)
	t3 = f.Mul(t5, t3)
	t6 := f.Mul(t2, curve.Am)

	t2 = f.Mul(t2, t6)
	t3 = f.Sub(t2, t3)
	t2 = f.Sub(t5, t6)
	t1 = f.Mul(t2, t1)
	t2 = f.Add(t3, t1)
	t2 = f.Sqr(t2)

	rx := f.Mul(t2, t4)
	t1 = f.Sub(t3, t1)
	t1 = f.Sqr(t1)
	rz := f.Mul(t1, t0)

	return Point{X: rx, Z: rz}
}

// XTPLe computes 3^e * P by iterating XTPL e times.
func (f *Field) XTPLe(p Point, curve CurveAplusAminus, e int) Point {
	r := p
	for i := 0; i < e; i++ {
		r = f.XTPL(r, curve)
	}
	return r
}

// Ladder computes [m]P via the standard Montgomery ladder on a curve in
// AplusC encoding. The loop scans the bits of m from the second-most
// significant down to the least significant, maintaining the invariant
// R1 - R0 = P; the initial state R0 = P, R1 = 2P absorbs the top bit, so
// the loop itself runs one bit short of the full bit length.
func (f *Field) Ladder(p Point, m *big.Int, curve CurveAplusC) Point {
	r0 := p
	r1 := f.XDBL(p, curve)
	l := m.BitLen()
	for i := l - 2; i >= 0; i-- {
		if m.Bit(i) == 1 {
			newR0 := f.XADD(r1, r0, p)
			newR1 := f.XDBL(r1, curve)
			r0, r1 = newR0, newR1
		} else {
			newR1 := f.XADD(r1, r0, p)
			newR0 := f.XDBL(r0, curve)
			r0, r1 = newR0, newR1
		}
	}
	return r0
}

func (f *Field) ladder3ptCore(m *big.Int, xP, xQ, xQminusP Fp2, curve CurveAplus) Point {
	one := f.One()
	p0 := Point{X: xQ, Z: one}
	p1 := Point{X: xP, Z: one}
	p2 := Point{X: xQminusP, Z: one}
	l := m.BitLen()
	for i := 0; i < l; i++ {
		if m.Bit(i) == 1 {
			p0, p1 = f.XDBLADD(p0, p1, p2, curve)
		} else {
			p0, p2 = f.XDBLADD(p0, p2, p1, curve)
		}
	}
	return p1
}

// Ladder3pt computes P + [m]Q from the x-coordinates of P, Q and Q-P, on
// a curve given in canonical (A:C) form. The curve is converted to aplus
// encoding internally.
func (f *Field) Ladder3pt(m *big.Int, xP, xQ, xQminusP Fp2, curve CurveAC) (Point, error) {
	aplus, err := f.ToAplus(curve)
	if err != nil {
		return Point{}, err
	}
	return f.ladder3ptCore(m, xP, xQ, xQminusP, aplus), nil
}

// Ladder3ptWithoutConversion is Ladder3pt for a curve the caller has
// already converted to aplus encoding.
func (f *Field) Ladder3ptWithoutConversion(m *big.Int, xP, xQ, xQminusP Fp2, curve CurveAplus) Point {
	return f.ladder3ptCore(m, xP, xQ, xQminusP, curve)
}
