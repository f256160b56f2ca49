package embedded

import (
	"fmt"
	"math/big"
	"runtime"

	"github.com/0xsisyfos/noir/acir"
	"github.com/0xsisyfos/noir/blackbox"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"
)

// above this many points, operand validation of a multi scalar multiplication
// runs in parallel
const parallelDecodeThreshold = 32

// Solver implements [blackbox.CurveSolver] over Grumpkin. The zero value is
// ready to use: Solver carries no state, every call is a pure function of its
// inputs and the fixed curve parameters, and all methods are safe for
// concurrent use.
type Solver struct{}

var _ blackbox.CurveSolver = Solver{}

// EmbeddedCurveAdd returns the coordinates of P1 + P2. Both operands are
// validated; a pair that is neither (0, 0) nor on the curve aborts the call
// with [blackbox.ErrNotOnCurve].
func (Solver) EmbeddedCurveAdd(x1, y1, x2, y2 fr_bn254.Element) (x, y fr_bn254.Element, err error) {
	p1, err := DecodePoint(x1, y1)
	if err != nil {
		return x, y, err
	}
	p2, err := DecodePoint(x2, y2)
	if err != nil {
		return x, y, err
	}
	x, y = Add(p1, p2).Encode()
	return x, y, nil
}

// FixedBaseScalarMul returns the coordinates of (low + high·2^128)·G for the
// canonical generator G.
func (Solver) FixedBaseScalarMul(low, high fr_bn254.Element) (x, y fr_bn254.Element, err error) {
	s, err := CombineLimbs(low, high)
	if err != nil {
		return x, y, err
	}
	x, y = ScalarMulBase(s).Encode()
	return x, y, nil
}

// MultiScalarMul returns the coordinates of ∑ sᵢ·Pᵢ. coords holds the N
// points as [x1, y1, ...], limbs the N scalars as [low1, high1, ...]; the two
// vectors must have the same (even) length. Every operand is validated before
// any arithmetic runs, and the first failure aborts the whole call.
func (Solver) MultiScalarMul(coords, limbs []fr_bn254.Element) (x, y fr_bn254.Element, err error) {
	if len(coords) != len(limbs) || len(coords)%2 != 0 {
		return x, y, fmt.Errorf("%d coordinates, %d scalar limbs: %w", len(coords), len(limbs), blackbox.ErrArityMismatch)
	}
	n := len(coords) / 2

	points := make([]Point, n)
	if n >= parallelDecodeThreshold {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := 0; i < n; i++ {
			g.Go(func() error {
				var err error
				points[i], err = DecodePoint(coords[2*i], coords[2*i+1])
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return x, y, err
		}
	} else {
		for i := 0; i < n; i++ {
			if points[i], err = DecodePoint(coords[2*i], coords[2*i+1]); err != nil {
				return x, y, err
			}
		}
	}

	scalars := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		if scalars[i], err = CombineLimbs(limbs[2*i], limbs[2*i+1]); err != nil {
			return x, y, err
		}
	}

	res, err := MultiExp(points, scalars)
	if err != nil {
		return x, y, err
	}
	x, y = res.Encode()
	return x, y, nil
}

func init() {
	var s Solver

	blackbox.Register(acir.MultiScalarMul, func(inputs, outputs []fr_bn254.Element) error {
		// flat layout: N (x, y) pairs followed by N (low, high) pairs
		if len(inputs)%4 != 0 || len(outputs) != 2 {
			return fmt.Errorf("multi_scalar_mul expects 4N inputs and 2 outputs, got %d and %d: %w",
				len(inputs), len(outputs), blackbox.ErrArityMismatch)
		}
		half := len(inputs) / 2
		x, y, err := s.MultiScalarMul(inputs[:half], inputs[half:])
		if err != nil {
			return err
		}
		outputs[0], outputs[1] = x, y
		return nil
	})

	blackbox.Register(acir.EmbeddedCurveAdd, func(inputs, outputs []fr_bn254.Element) error {
		if len(inputs) != 4 || len(outputs) != 2 {
			return fmt.Errorf("embedded_curve_add expects 4 inputs and 2 outputs, got %d and %d: %w",
				len(inputs), len(outputs), blackbox.ErrArityMismatch)
		}
		x, y, err := s.EmbeddedCurveAdd(inputs[0], inputs[1], inputs[2], inputs[3])
		if err != nil {
			return err
		}
		outputs[0], outputs[1] = x, y
		return nil
	})

	blackbox.Register(acir.FixedBaseScalarMul, func(inputs, outputs []fr_bn254.Element) error {
		if len(inputs) != 2 || len(outputs) != 2 {
			return fmt.Errorf("fixed_base_scalar_mul expects 2 inputs and 2 outputs, got %d and %d: %w",
				len(inputs), len(outputs), blackbox.ErrArityMismatch)
		}
		x, y, err := s.FixedBaseScalarMul(inputs[0], inputs[1])
		if err != nil {
			return err
		}
		outputs[0], outputs[1] = x, y
		return nil
	})
}
