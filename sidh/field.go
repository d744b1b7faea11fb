package sidh

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrDegenerateInverse is returned whenever an F_p2 inverse or a curve
// normalization is attempted on a zero value. Point normalization does
// not return it: NormalizePoint flags the point at infinity through its
// boolean result instead.
var ErrDegenerateInverse = errors.New("sidh: degenerate inversion")

// Field is the arithmetic context for F_p and its quadratic extension
// F_p2 = F_p[i]/(i^2+1). Every Fp2 value produced by a Field method is
// already reduced into [0, p).
//
// Field arithmetic here is variable-time: the module targets arbitrary
// SIDH-shaped primes held in a big.Int, not one fixed hardware prime, so
// there is no fixed-width Montgomery-domain representation to fall back
// on.
type Field struct {
	p *big.Int
}

// NewField builds a Field over the given modulus. p must be a positive
// odd prime congruent to 3 mod 4; positivity, oddness and the residue mod
// 4 are checked eagerly since a malformed prime is caller-supplied data,
// not a programmer error. Primality itself is not checked.
func NewField(p *big.Int) (*Field, error) {
	if p.Sign() <= 0 {
		return nil, fmt.Errorf("sidh: modulus must be positive, got %s", p.String())
	}
	if p.Bit(0) == 0 {
		return nil, fmt.Errorf("sidh: modulus must be odd, got %s", p.String())
	}
	mod4 := new(big.Int).Mod(p, big.NewInt(4))
	if mod4.Int64() != 3 {
		return nil, fmt.Errorf("sidh: modulus must be congruent to 3 mod 4, got %s", p.String())
	}
	return &Field{p: new(big.Int).Set(p)}, nil
}

// Modulus returns a copy of the field's prime.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

func (f *Field) reduce(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, f.p)
}

// Fp2 is an element s0 + s1*i of F_p2.
type Fp2 struct {
	S0, S1 *big.Int
}

// String implements fmt.Stringer for test failure output.
func (x Fp2) String() string {
	return fmt.Sprintf("(%s + %s*i)", x.S0.String(), x.S1.String())
}

// Elem builds a reduced Fp2 element from arbitrary (possibly unreduced or
// negative) big.Int components.
func (f *Field) Elem(s0, s1 *big.Int) Fp2 {
	return Fp2{S0: f.reduce(s0), S1: f.reduce(s1)}
}

// FromInt64 is a small-integer convenience constructor, mainly useful in
// tests and for the fixed constants (0, 1, 2) the key-generation flows
// start from.
func (f *Field) FromInt64(s0, s1 int64) Fp2 {
	return f.Elem(big.NewInt(s0), big.NewInt(s1))
}

// Zero returns the additive identity.
func (f *Field) Zero() Fp2 { return f.FromInt64(0, 0) }

// One returns the multiplicative identity.
func (f *Field) One() Fp2 { return f.FromInt64(1, 0) }

// Add returns x+y.
func (f *Field) Add(x, y Fp2) Fp2 {
	return Fp2{
		S0: f.reduce(new(big.Int).Add(x.S0, y.S0)),
		S1: f.reduce(new(big.Int).Add(x.S1, y.S1)),
	}
}

// Sub returns x-y, implemented as x + (-y) with the reduction applied
// once at the end.
func (f *Field) Sub(x, y Fp2) Fp2 {
	neg := f.Neg(y)
	s0 := new(big.Int).Add(x.S0, neg.S0)
	s1 := new(big.Int).Add(x.S1, neg.S1)
	return Fp2{S0: f.reduce(s0), S1: f.reduce(s1)}
}

// Neg returns -x. Negation of zero is zero.
func (f *Field) Neg(x Fp2) Fp2 {
	zero := big.NewInt(0)
	return Fp2{
		S0: f.reduce(new(big.Int).Sub(zero, x.S0)),
		S1: f.reduce(new(big.Int).Sub(zero, x.S1)),
	}
}

// Mul returns x*y using the schoolbook (a+bi)(c+di) = (ac-bd) + (ad+bc)i
// expansion.
func (f *Field) Mul(x, y Fp2) Fp2 {
	ac := new(big.Int).Mul(x.S0, y.S0)
	bd := new(big.Int).Mul(x.S1, y.S1)
	ad := new(big.Int).Mul(x.S0, y.S1)
	bc := new(big.Int).Mul(x.S1, y.S0)
	s0 := new(big.Int).Sub(ac, bd)
	s1 := new(big.Int).Add(ad, bc)
	return Fp2{S0: f.reduce(s0), S1: f.reduce(s1)}
}

// Sqr returns x*x.
func (f *Field) Sqr(x Fp2) Fp2 { return f.Mul(x, x) }

// IsZero reports whether x is zero. It is a pure predicate: it reduces a
// private copy of x's components, never the receiver.
func (f *Field) IsZero(x Fp2) bool {
	s0 := f.reduce(x.S0)
	s1 := f.reduce(x.S1)
	return s0.Sign() == 0 && s1.Sign() == 0
}

// Equal reports whether x and y represent the same field element.
func (f *Field) Equal(x, y Fp2) bool {
	return f.reduce(x.S0).Cmp(f.reduce(y.S0)) == 0 && f.reduce(x.S1).Cmp(f.reduce(y.S1)) == 0
}

// Inv returns the multiplicative inverse of x, computed as
// (s0 - s1*i) / (s0^2 + s1^2) with the norm inverted via the extended
// Euclidean algorithm (big.Int.ModInverse). It fails only when x is
// zero.
func (f *Field) Inv(x Fp2) (Fp2, error) {
	if f.IsZero(x) {
		return f.Zero(), ErrDegenerateInverse
	}
	a2 := new(big.Int).Mul(x.S0, x.S0)
	b2 := new(big.Int).Mul(x.S1, x.S1)
	norm := f.reduce(new(big.Int).Add(a2, b2))
	normInv := new(big.Int).ModInverse(norm, f.p)
	if normInv == nil {
		// Unreachable for a prime modulus and non-zero x, kept as a
		// defensive error rather than a panic since it crosses a
		// library boundary.
		return f.Zero(), fmt.Errorf("sidh: norm %s has no inverse mod %s", norm, f.p)
	}
	s0 := f.reduce(new(big.Int).Mul(x.S0, normInv))
	negS1 := new(big.Int).Neg(x.S1)
	s1 := f.reduce(new(big.Int).Mul(negS1, normInv))
	return Fp2{S0: s0, S1: s1}, nil
}
