package sidh

import "math/big"

// Parameters is the public parameter set both parties agree on out of
// band: the prime, the shape exponents (p_A, e_A) and (p_B, e_B), and
// the two torsion bases (including the shared alpha used only by the
// generalised flavour). It is constructed programmatically with
// NewParameters/SetPoints; parsing parameter files is the caller's job.
type Parameters struct {
	Field *Field

	PA, PB int
	EA, EB int

	Alpha Fp2

	XPA, XQA, XRA Fp2
	XPB, XQB, XRB Fp2
}

// NewParameters validates the prime shape (via NewField) and records the
// small-prime degrees and exponents. Basis points are supplied separately
// through SetPoints once the field is available to build them from.
func NewParameters(p *big.Int, pA, pB, eA, eB int) (*Parameters, error) {
	field, err := NewField(p)
	if err != nil {
		return nil, err
	}
	return &Parameters{Field: field, PA: pA, PB: pB, EA: eA, EB: eB}, nil
}

// SetPoints records the shared 2-torsion alpha and both parties' torsion
// bases (x_P, x_Q, x_{Q-P}), all of which must lie on the reference curve
// (A,C) = (0,1).
func (params *Parameters) SetPoints(alpha, xPA, xQA, xRA, xPB, xQB, xRB Fp2) {
	params.Alpha = alpha
	params.XPA, params.XQA, params.XRA = xPA, xQA, xRA
	params.XPB, params.XQB, params.XRB = xPB, xQB, xRB
}
