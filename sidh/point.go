package sidh

// Point is a projective pair (X:Z) on the Kummer line, representing the
// affine x-coordinate X/Z. Z = 0 denotes the point at infinity. Points
// (X,Z) and (lambda*X, lambda*Z) for any non-zero lambda represent the
// same x and are interchangeable as far as every operation in this
// package is concerned.
type Point struct {
	X, Z Fp2
}

// Affine builds a Point with Z = 1 from a bare x-coordinate, the common
// case when a basis point or a published public-key coordinate is turned
// back into a Point for further arithmetic.
func (f *Field) Affine(x Fp2) Point {
	return Point{X: x, Z: f.One()}
}

// PointsEqual reports whether p and q name the same projective point,
// i.e. cross-multiply to the same x. It does not require either point to
// be normalized first.
func (f *Field) PointsEqual(p, q Point) bool {
	lhs := f.Mul(p.X, q.Z)
	rhs := f.Mul(q.X, p.Z)
	return f.Equal(lhs, rhs)
}

// NormalizePoint returns (X/Z : 1). If Z is zero (the point at infinity)
// it returns the flagged identity (0,0) rather than attempting the
// inversion.
func (f *Field) NormalizePoint(p Point) (Point, bool) {
	if f.IsZero(p.Z) {
		return Point{X: f.Zero(), Z: f.Zero()}, true
	}
	zInv, err := f.Inv(p.Z)
	if err != nil {
		return Point{X: f.Zero(), Z: f.Zero()}, true
	}
	return Point{X: f.Mul(p.X, zInv), Z: f.One()}, false
}

// NormalizeX returns just the normalized x-coordinate, the form public
// keys are published in.
func (f *Field) NormalizeX(p Point) Fp2 {
	np, _ := f.NormalizePoint(p)
	return np.X
}
