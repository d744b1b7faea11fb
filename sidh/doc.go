// Package sidh implements the arithmetic core of a generalised
// Supersingular-Isogeny Diffie-Hellman key exchange: quadratic extension
// field arithmetic, x-only projective Montgomery-curve arithmetic, small
// odd-degree isogeny formulas, chain composition over those formulas, and
// the regular (2,3) and generalised odd-degree key generation/exchange
// flows built on top of them.
//
// The field layer is backed by math/big and is deliberately variable-time:
// this package targets arbitrary SIDH-shaped primes, not a single hardware
// prime, and carries none of the constant-time machinery a deployed TLS
// stack would need.
package sidh
