package acir

import "testing"

func TestBlackBoxFuncNames(t *testing.T) {
	cases := map[BlackBoxFunc]string{
		MultiScalarMul:     "multi_scalar_mul",
		EmbeddedCurveAdd:   "embedded_curve_add",
		FixedBaseScalarMul: "fixed_base_scalar_mul",
		BlackBoxFunc(0xff): "unknown",
	}
	for f, want := range cases {
		if got := f.String(); got != want {
			t.Errorf("BlackBoxFunc(%d).String() = %q, want %q", f, got, want)
		}
	}
}
