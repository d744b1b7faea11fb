package sidh

import (
	"fmt"
	"math/big"
)

// SecretKey is a single scalar. Producing one from a random source is
// the caller's job; this package only ever consumes an already-chosen
// scalar.
type SecretKey struct {
	Scalar *big.Int
}

// NewSecretKey copies secret into a SecretKey.
func NewSecretKey(secret *big.Int) SecretKey {
	return SecretKey{Scalar: new(big.Int).Set(secret)}
}

// PublicKey is the four F_p2 values a party publishes: beta (the image of
// the shared 2-torsion point, meaningful only in the generalised
// flavour) and the images x1, x2, x3 of the counterparty's basis
// (x_P, x_Q, x_{Q-P}).
type PublicKey struct {
	Beta, X1, X2, X3 Fp2
}

// String implements fmt.Stringer: all four published coordinates on a
// single line.
func (pk PublicKey) String() string {
	return fmt.Sprintf("beta=%s x1=%s x2=%s x3=%s", pk.Beta, pk.X1, pk.X2, pk.X3)
}

// Verification reports whether the two independently-computed
// j-invariants agree, i.e. whether the exchange succeeded.
func Verification(f *Field, jA, jB Fp2) bool {
	return f.Equal(jA, jB)
}
