package embedded

import (
	"fmt"
	"math/big"

	"github.com/0xsisyfos/noir/blackbox"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	fr_grumpkin "github.com/consensys/gnark-crypto/ecc/grumpkin/fr"
)

// CombineLimbs rebuilds a Grumpkin scalar from its circuit representation.
//
// The Grumpkin scalar field is larger than the circuit field, so circuits
// carry a scalar as two field elements (low, high) with s = low + high·2^128
// and each limb range-constrained to 128 bits in-circuit. That constraint is
// re-checked here rather than trusted: an out-of-range limb returns
// [blackbox.ErrScalarOutOfRange] instead of being truncated, since truncation
// would mask a broken range check. The result is reduced modulo the group
// order.
func CombineLimbs(low, high fr_bn254.Element) (*big.Int, error) {
	var lo, hi big.Int
	low.BigInt(&lo)
	high.BigInt(&hi)
	if lo.BitLen() > 128 {
		return nil, fmt.Errorf("low limb %s: %w", low.String(), blackbox.ErrScalarOutOfRange)
	}
	if hi.BitLen() > 128 {
		return nil, fmt.Errorf("high limb %s: %w", high.String(), blackbox.ErrScalarOutOfRange)
	}
	s := hi.Lsh(&hi, 128)
	s.Add(s, &lo)
	return s.Mod(s, fr_grumpkin.Modulus()), nil
}
