// Package acir defines the identifiers of ACIR blackbox functions.
//
// An ACIR circuit declares blackbox functions as named opcodes with empty
// bodies; the virtual machine resolves each name to a solver at witness
// generation time. Only the embedded-curve family is implemented by this
// module; the identifiers below are the subset of the ACIR opcode set it
// covers.
package acir

// BlackBoxFunc identifies a blackbox function opcode.
type BlackBoxFunc uint8

const (
	// MultiScalarMul computes ∑ sᵢ·Pᵢ over the embedded curve. Points are
	// passed as (x, y) coordinate pairs, scalars as (low, high) 128-bit limb
	// pairs with s = low + high·2^128.
	MultiScalarMul BlackBoxFunc = iota

	// EmbeddedCurveAdd adds two points of the embedded curve.
	EmbeddedCurveAdd

	// FixedBaseScalarMul multiplies the canonical generator by a scalar given
	// as a (low, high) limb pair. Legacy opcode; newer circuits emit
	// MultiScalarMul with the generator as input point.
	FixedBaseScalarMul
)

func (f BlackBoxFunc) String() string {
	switch f {
	case MultiScalarMul:
		return "multi_scalar_mul"
	case EmbeddedCurveAdd:
		return "embedded_curve_add"
	case FixedBaseScalarMul:
		return "fixed_base_scalar_mul"
	default:
		return "unknown"
	}
}
