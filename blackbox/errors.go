package blackbox

import "errors"

var (
	// ErrNotOnCurve is returned when an input coordinate pair is neither the
	// point-at-infinity encoding (0, 0) nor a solution of the curve equation.
	ErrNotOnCurve = errors.New("point not on curve")

	// ErrArityMismatch is returned when the lengths of the point and scalar
	// inputs of a multi scalar multiplication do not agree, or when the flat
	// input vector of a call does not have the shape the opcode requires.
	ErrArityMismatch = errors.New("input arity mismatch")

	// ErrScalarOutOfRange is returned when a scalar limb does not fit in 128
	// bits. Limbs are range-constrained in-circuit; the solver re-checks
	// rather than trusting the caller, since a silent truncation here would
	// mask a broken range constraint.
	ErrScalarOutOfRange = errors.New("scalar limb exceeds 128 bits")
)
