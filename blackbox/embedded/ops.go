package embedded

import (
	"fmt"
	"math/big"

	"github.com/0xsisyfos/noir/blackbox"
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/grumpkin"
	fr_grumpkin "github.com/consensys/gnark-crypto/ecc/grumpkin/fr"
)

// Add returns p1 + p2. The underlying formulas are complete: either operand
// may be the identity, the inverse of the other, or equal to the other, so
// doubling is Add(p, p).
func Add(p1, p2 Point) Point {
	a1, a2 := p1.affine(), p2.affine()
	var sum grumpkin.G1Jac
	sum.FromAffine(&a1)
	sum.AddMixed(&a2)
	var res grumpkin.G1Affine
	res.FromJacobian(&sum)
	return fromAffine(&res)
}

// ScalarMul returns s·p. s is reduced modulo the group order.
func ScalarMul(p Point, s *big.Int) Point {
	if p.infinity {
		return p
	}
	k := new(big.Int).Mod(s, fr_grumpkin.Modulus())
	var res grumpkin.G1Affine
	res.ScalarMultiplication(&p.inner, k)
	return fromAffine(&res)
}

// ScalarMulBase returns s·G for the canonical generator G, using the
// library's fixed-base precomputation. The result is identical to
// MultiExp([Generator()], [s]).
func ScalarMulBase(s *big.Int) Point {
	k := new(big.Int).Mod(s, fr_grumpkin.Modulus())
	var res grumpkin.G1Affine
	res.ScalarMultiplicationBase(k)
	return fromAffine(&res)
}

// MultiExp returns ∑ scalars[i]·points[i]. The scalars are reduced modulo the
// group order first. An empty input yields the identity; identity points and
// zero scalars contribute nothing.
func MultiExp(points []Point, scalars []*big.Int) (Point, error) {
	if len(points) != len(scalars) {
		return Point{}, fmt.Errorf("%d points, %d scalars: %w", len(points), len(scalars), blackbox.ErrArityMismatch)
	}
	n := len(points)
	if n == 0 {
		return Point{infinity: true}, nil
	}

	// drop the terms that cannot contribute before handing the rest to the
	// library's Pippenger implementation, which assumes non-trivial inputs
	reduced := make([]fr_grumpkin.Element, n)
	skip := bitset.New(uint(n))
	for i := range points {
		k := new(big.Int).Mod(scalars[i], fr_grumpkin.Modulus())
		if points[i].infinity || k.Sign() == 0 {
			skip.Set(uint(i))
			continue
		}
		reduced[i].SetBigInt(k)
	}

	kept := n - int(skip.Count())
	if kept == 0 {
		return Point{infinity: true}, nil
	}
	ps := make([]grumpkin.G1Affine, 0, kept)
	ss := make([]fr_grumpkin.Element, 0, kept)
	for i := uint(0); i < uint(n); i++ {
		if skip.Test(i) {
			continue
		}
		ps = append(ps, points[i].inner)
		ss = append(ss, reduced[i])
	}

	var res grumpkin.G1Affine
	if _, err := res.MultiExp(ps, ss, ecc.MultiExpConfig{}); err != nil {
		return Point{}, fmt.Errorf("multi exp: %w", err)
	}
	return fromAffine(&res), nil
}
