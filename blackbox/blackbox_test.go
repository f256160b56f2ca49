package blackbox

import (
	"testing"

	"github.com/0xsisyfos/noir/acir"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	id := acir.BlackBoxFunc(0xf0)
	Register(id, func(inputs, outputs []fr.Element) error {
		outputs[0].SetUint64(1)
		return nil
	})

	fn, ok := Get(id)
	require.True(t, ok)

	outputs := make([]fr.Element, 1)
	require.NoError(t, fn(nil, outputs))
	require.True(t, outputs[0].IsOne())

	require.Contains(t, Registered(), id)
}

func TestRegisterKeepsFirst(t *testing.T) {
	id := acir.BlackBoxFunc(0xf1)
	Register(id, func(inputs, outputs []fr.Element) error {
		outputs[0].SetUint64(1)
		return nil
	})
	Register(id, func(inputs, outputs []fr.Element) error {
		outputs[0].SetUint64(2)
		return nil
	})

	fn, ok := Get(id)
	require.True(t, ok)

	outputs := make([]fr.Element, 1)
	require.NoError(t, fn(nil, outputs))
	require.True(t, outputs[0].IsOne(), "second registration must not override the first")
}

func TestGetUnregistered(t *testing.T) {
	_, ok := Get(acir.BlackBoxFunc(0xfe))
	require.False(t, ok)
}
