package embedded

import (
	"math/big"
	"testing"

	"github.com/0xsisyfos/noir/blackbox"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestPointRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("decode(encode(P)) == P", prop.ForAll(
		func(k uint64) bool {
			p := ScalarMulBase(new(big.Int).SetUint64(k))
			x, y := p.Encode()
			q, err := DecodePoint(x, y)
			return err == nil && p.Equal(q)
		},
		gen.UInt64(),
	))

	properties.Property("encode(decode(x, y)) == (x, y)", prop.ForAll(
		func(k uint64) bool {
			x, y := ScalarMulBase(new(big.Int).SetUint64(k)).Encode()
			p, err := DecodePoint(x, y)
			if err != nil {
				return false
			}
			x2, y2 := p.Encode()
			return x.Equal(&x2) && y.Equal(&y2)
		},
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestDecodeIdentity(t *testing.T) {
	var zero fr_bn254.Element
	p, err := DecodePoint(zero, zero)
	require.NoError(t, err)
	require.True(t, p.IsInfinity())

	x, y := p.Encode()
	require.True(t, x.IsZero())
	require.True(t, y.IsZero())
}

func TestDecodeRejectsOffCurve(t *testing.T) {
	var x, y fr_bn254.Element
	x.SetUint64(1)
	y.SetUint64(1)
	_, err := DecodePoint(x, y)
	require.ErrorIs(t, err, blackbox.ErrNotOnCurve)

	// valid x, corrupted y
	gx, gy := Generator().Encode()
	var one fr_bn254.Element
	one.SetOne()
	gy.Add(&gy, &one)
	_, err = DecodePoint(gx, gy)
	require.ErrorIs(t, err, blackbox.ErrNotOnCurve)
}

func TestDecodeGenerator(t *testing.T) {
	gx, gy := Generator().Encode()
	p, err := DecodePoint(gx, gy)
	require.NoError(t, err)
	require.True(t, p.Equal(Generator()))
}

func TestNeg(t *testing.T) {
	g := Generator()
	require.True(t, Add(g, g.Neg()).IsInfinity())
	require.True(t, Identity().Neg().IsInfinity())
}
