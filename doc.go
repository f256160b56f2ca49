// Package noir provides native Go solvers for the blackbox functions of an
// ACIR (Abstract Circuit Intermediate Representation) virtual machine.
//
// A circuit program invokes a blackbox function by name; its result is
// computed outside the constraint system's native arithmetic and supplied
// back as a witness value. This module implements the embedded-curve family
// of blackbox functions over Grumpkin, the curve whose base field is the
// BN254 scalar field:
//   - multi_scalar_mul
//   - fixed_base_scalar_mul
//   - embedded_curve_add
//
// See the blackbox and blackbox/embedded packages.
package noir

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
