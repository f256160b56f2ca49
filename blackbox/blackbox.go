// Package blackbox defines how blackbox function solvers are exposed to a
// circuit execution engine.
//
// A solver is a pure function of its inputs: the engine hands it the concrete
// field elements produced during witness generation and gets back the field
// elements of the result, which it can then check against the constraint
// system. Two surfaces are provided:
//
//   - [CurveSolver], a capability interface over the embedded-curve
//     operations, meant to be injected into an engine directly;
//   - a process-wide registry mapping ACIR opcode identifiers to [Function]
//     values, for engines that dispatch on opcode names.
//
// Both surfaces are backed by the same implementations; see the embedded
// subpackage, which registers itself on import.
package blackbox

import (
	"sync"

	"github.com/0xsisyfos/noir/acir"
	"github.com/0xsisyfos/noir/logger"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Function solves one blackbox opcode. Inputs and outputs are flat vectors of
// circuit field elements in the opcode's wire shape; outputs is allocated by
// the caller and filled by the function. A non-nil error means the witness
// assignment is invalid and no output was produced.
type Function func(inputs []fr.Element, outputs []fr.Element) error

// CurveSolver computes embedded-curve group operations on circuit field
// elements. All methods are safe for concurrent use; each call is a pure
// function of its inputs and the fixed curve parameters.
//
// The point at infinity is transmitted as the coordinate pair (0, 0) in both
// directions.
type CurveSolver interface {
	// EmbeddedCurveAdd returns the coordinates of P1 + P2.
	EmbeddedCurveAdd(x1, y1, x2, y2 fr.Element) (x, y fr.Element, err error)

	// FixedBaseScalarMul returns the coordinates of (low + high·2^128)·G for
	// the canonical generator G.
	FixedBaseScalarMul(low, high fr.Element) (x, y fr.Element, err error)

	// MultiScalarMul returns the coordinates of ∑ sᵢ·Pᵢ. coords holds the N
	// points as [x1, y1, x2, y2, ...]; limbs holds the N scalars as
	// [low1, high1, low2, high2, ...].
	MultiScalarMul(coords, limbs []fr.Element) (x, y fr.Element, err error)
}

var (
	registry  = make(map[acir.BlackBoxFunc]Function)
	registryM sync.RWMutex
)

// Register registers a solver function for an opcode in the global registry.
// If the opcode already has a solver the first registration wins.
func Register(id acir.BlackBoxFunc, fn Function) {
	registryM.Lock()
	defer registryM.Unlock()
	if _, ok := registry[id]; ok {
		log := logger.Logger()
		log.Debug().Stringer("func", id).Msg("function registered multiple times")
		return
	}
	registry[id] = fn
}

// Get returns the registered solver for an opcode.
func Get(id acir.BlackBoxFunc) (Function, bool) {
	registryM.RLock()
	defer registryM.RUnlock()
	fn, ok := registry[id]
	return fn, ok
}

// Registered returns the opcodes that currently have a solver.
func Registered() []acir.BlackBoxFunc {
	registryM.RLock()
	defer registryM.RUnlock()
	ret := make([]acir.BlackBoxFunc, 0, len(registry))
	for id := range registry {
		ret = append(ret, id)
	}
	return ret
}
