// Package embedded solves the embedded-curve blackbox functions over
// Grumpkin.
//
// Grumpkin is the curve y² = x³ - 17 defined over the BN254 scalar field, so
// its point coordinates are native circuit field elements and its group law
// can be computed here, outside the constraint system, to fill in witness
// values. The package registers itself for the multi_scalar_mul,
// fixed_base_scalar_mul and embedded_curve_add opcodes on import.
package embedded

import (
	"fmt"

	"github.com/0xsisyfos/noir/blackbox"
	"github.com/0xsisyfos/noir/logger"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/grumpkin"
)

var g1Gen grumpkin.G1Affine

func init() {
	_, g1Gen = grumpkin.Generators()

	log := logger.Logger()
	log.Debug().
		Str("curve", "grumpkin").
		Str("gx", g1Gen.X.String()).
		Str("gy", g1Gen.Y.String()).
		Msg("embedded curve parameters loaded")
}

// Point is a point of the Grumpkin curve as seen by the circuit: either the
// identity or an affine point with coordinates in the BN254 scalar field.
//
// On the wire the identity travels as the coordinate pair (0, 0); Point keeps
// an explicit flag instead, so the group-law code never mistakes the sentinel
// for a genuine affine point. The zero value is the identity.
type Point struct {
	inner    grumpkin.G1Affine
	infinity bool
}

// Identity returns the neutral element of the group.
func Identity() Point {
	return Point{infinity: true}
}

// Generator returns the canonical Grumpkin generator.
func Generator() Point {
	return Point{inner: g1Gen}
}

// DecodePoint converts a circuit coordinate pair into a Point. The pair
// (0, 0) decodes to the identity; any other pair must satisfy the curve
// equation, else [blackbox.ErrNotOnCurve] is returned.
func DecodePoint(x, y fr_bn254.Element) (Point, error) {
	if x.IsZero() && y.IsZero() {
		return Point{infinity: true}, nil
	}
	var p grumpkin.G1Affine
	xb, yb := x.Bytes(), y.Bytes()
	p.X.SetBytes(xb[:])
	p.Y.SetBytes(yb[:])
	if !p.IsOnCurve() {
		return Point{}, fmt.Errorf("decode (%s, %s): %w", x.String(), y.String(), blackbox.ErrNotOnCurve)
	}
	return Point{inner: p}, nil
}

// Encode is the inverse of [DecodePoint]: the identity encodes to (0, 0), an
// affine point to its coordinates.
func (p Point) Encode() (x, y fr_bn254.Element) {
	if p.infinity {
		return x, y
	}
	xb, yb := p.inner.X.Bytes(), p.inner.Y.Bytes()
	x.SetBytes(xb[:])
	y.SetBytes(yb[:])
	return x, y
}

// IsInfinity reports whether p is the identity.
func (p Point) IsInfinity() bool {
	return p.infinity
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.inner.Equal(&q.inner)
}

// Neg returns -p.
func (p Point) Neg() Point {
	if p.infinity {
		return p
	}
	var r grumpkin.G1Affine
	r.Neg(&p.inner)
	return Point{inner: r}
}

func (p Point) String() string {
	if p.infinity {
		return "O"
	}
	return p.inner.String()
}

// affine returns the gnark-crypto representation of p. The identity maps to
// the zero-value G1Affine, which the library treats as the point at infinity.
func (p Point) affine() grumpkin.G1Affine {
	if p.infinity {
		return grumpkin.G1Affine{}
	}
	return p.inner
}

func fromAffine(a *grumpkin.G1Affine) Point {
	if a.IsInfinity() {
		return Point{infinity: true}
	}
	return Point{inner: *a}
}
