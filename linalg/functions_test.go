package linalg

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	v := Vector4[int16]{-2, -1, 1, 2}
	if got := MinScalar(v, 0); got != (Vector4[int16]{-2, -1, 0, 0}) {
		t.Errorf("MinScalar int16: got %v", got)
	}
	if got := MaxScalar(v, 0); got != (Vector4[int16]{0, 0, 1, 2}) {
		t.Errorf("MaxScalar int16: got %v", got)
	}

	a := NewVector3[float32](1, 5, -3)
	b := NewVector3[float32](2, 4, -3)
	if got := Min(a, b); got != NewVector3[float32](1, 4, -3) {
		t.Errorf("Min: got %v", got)
	}
	if got := Max(a, b); got != NewVector3[float32](2, 5, -3) {
		t.Errorf("Max: got %v", got)
	}
	if FMin(a, b) != Min(a, b) || FMax(a, b) != Max(a, b) {
		t.Errorf("FMin/FMax disagree with Min/Max")
	}

	nan := float32(math.NaN())
	if got := Min(NewVector2(nan, 1), NewVector2[float32](3, nan)); got != NewVector2[float32](3, 1) {
		t.Errorf("Min with NaN lanes: got %v, want Vector2(3, 1)", got)
	}
	if got := MaxScalar(NewVector2(nan, -1), 0); got != NewVector2[float32](0, 0) {
		t.Errorf("MaxScalar with NaN lane: got %v, want Vector2(0, 0)", got)
	}
}

func TestClamp(t *testing.T) {
	x := NewVector4(-5.0, 0.5, 5, math.NaN())
	if got := ClampScalar(x, 0, 1); got != NewVector4(0.0, 0.5, 1, 0) {
		t.Errorf("ClampScalar: got %v, want Vector4(0, 0.5, 1, 0)", got)
	}

	lo := NewVector4(-1.0, 1, 2, 3)
	hi := NewVector4(1.0, 2, 3, 4)
	if got := Clamp(x, lo, hi); got != NewVector4(-1.0, 1, 3, 3) {
		t.Errorf("Clamp: got %v, want Vector4(-1, 1, 3, 3)", got)
	}

	i := NewVector3(-100, 0, 100)
	if got := ClampScalar(i, -25, 25); got != NewVector3(-25, 0, 25) {
		t.Errorf("ClampScalar int: got %v", got)
	}
	if got := ClampScalar(Vector2[uint8]{3, 250}, 10, 200); got != (Vector2[uint8]{10, 200}) {
		t.Errorf("ClampScalar uint8: got %v", got)
	}
}

func TestAbsSign(t *testing.T) {
	x := NewVector4(-2.5, 0, 3, math.Inf(-1))
	if got := Abs(x); got != NewVector4(2.5, 0, 3, math.Inf(1)) {
		t.Errorf("Abs: got %v", got)
	}
	if got := Abs(NewVector2(math.Copysign(0, -1), -1)); math.Signbit(got[0]) {
		t.Errorf("Abs(-0): got negative zero")
	}

	s := Sign(NewVector4(-3, 0, 0.25, math.NaN()))
	if s != NewVector4(-1.0, 0, 1, 0) {
		t.Errorf("Sign: got %v, want Vector4(-1, 0, 1, 0)", s)
	}
}

func TestMix(t *testing.T) {
	x := NewVector3[float32](0, 10, -4)
	y := NewVector3[float32](10, 20, 4)

	if got := MixScalar(x, y, 0); got != x {
		t.Errorf("MixScalar t=0: got %v, want %v", got, x)
	}
	if got := MixScalar(x, y, 1); got != y {
		t.Errorf("MixScalar t=1: got %v, want %v", got, y)
	}
	if got := MixScalar(x, y, 0.5); got != NewVector3[float32](5, 15, 0) {
		t.Errorf("MixScalar t=0.5: got %v", got)
	}
	if got := MixScalar(x, y, 2); got != NewVector3[float32](20, 30, 12) {
		t.Errorf("MixScalar extrapolates: got %v", got)
	}

	tv := NewVector3[float32](0, 0.5, 1)
	if got := Mix(x, y, tv); got != NewVector3[float32](0, 15, 4) {
		t.Errorf("Mix: got %v", got)
	}
}

func TestRoundingFunctions(t *testing.T) {
	x := NewVector4(-1.5, -0.25, 0.75, 2)
	tests := []struct {
		name string
		got  Vector4[float64]
		want Vector4[float64]
	}{
		{"Floor", Floor(x), NewVector4(-2.0, -1, 0, 2)},
		{"Ceil", Ceil(x), NewVector4(-1.0, 0, 1, 2)},
		{"Trunc", Trunc(x), NewVector4(-1.0, 0, 0, 2)},
		{"Fract", Fract(x), NewVector4(0.5, 0.75, 0.75, 0)},
		{"Recip", Recip(x), NewVector4(-1/1.5, -4, 1/0.75, 0.5)},
		{"Rsqrt", Rsqrt(NewVector4(4.0, 16, 0.25, 1)), NewVector4(0.5, 0.25, 2, 1)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestFract(t *testing.T) {
	small := Fract(Splat2(-1e-10))
	if small[0] >= 1 || small[0] < 0 {
		t.Errorf("Fract(-1e-10) float64: got %v, want a value in [0, 1)", small[0])
	}
	tiny := Fract(Splat2(-1e-20))
	if want := math.Nextafter(1, 0); tiny[0] != want {
		t.Errorf("Fract(-1e-20) float64: got %v, want %v", tiny[0], want)
	}

	small32 := Fract(Splat3[float32](-1e-10))
	if want := math.Nextafter32(1, 0); small32[0] != want {
		t.Errorf("Fract(-1e-10) float32: got %v, want %v", small32[0], want)
	}

	for _, x := range []float64{-7.3, -1, -1e-300, 0, 1e-300, 0.999, 123.456} {
		f := Fract(Splat2(x))[0]
		if f < 0 || f >= 1 {
			t.Errorf("Fract(%v): got %v, want a value in [0, 1)", x, f)
		}
	}

	if got := Fract(Splat2(math.NaN())); !math.IsNaN(got[0]) {
		t.Errorf("Fract(NaN): got %v, want NaN", got[0])
	}
}

func TestStepSmoothstep(t *testing.T) {
	x := NewVector4[float32](-1, 0, 0.5, 2)
	if got := Step(x, Splat4[float32](0)); got != NewVector4[float32](0, 1, 1, 1) {
		t.Errorf("Step: got %v", got)
	}

	got := Smoothstep(x, Splat4[float32](0), Splat4[float32](1))
	if got != NewVector4[float32](0, 0, 0.5, 1) {
		t.Errorf("Smoothstep: got %v, want Vector4(0, 0, 0.5, 1)", got)
	}
	q := Smoothstep(Splat2(0.25), Splat2(0.0), Splat2(1.0))
	if want := 0.25 * 0.25 * 2.5; q[0] != want {
		t.Errorf("Smoothstep(0.25): got %v, want %v", q[0], want)
	}
}

func TestGeometry(t *testing.T) {
	x := NewVector3(1.0, 2, 3)
	y := NewVector3(4.0, -5, 6)

	require.Equal(t, 12.0, Dot(x, y))
	require.Equal(t, 14.0, LengthSquared(x))
	require.Equal(t, 5.0, Length(NewVector2(3.0, 4)))
	require.Equal(t, 6.0, NormOne(NewVector3(-1.0, 2, -3)))
	require.Equal(t, 3.0, NormInf(NewVector3(-1.0, 2, -3)))
	require.Equal(t, 7, NormInf(NewVector4(-7, 2, 3, 0)))
	require.True(t, math.IsNaN(NormInf(NewVector2(math.NaN(), 1))))
	require.True(t, math.IsNaN(NormInf(NewVector3(1, math.NaN(), 5))))
	require.True(t, math.IsNaN(float64(NormInf(NewVector4[float32](-9, 1, 2, float32(math.NaN()))))))
	require.Equal(t, math.Inf(1), NormInf(NewVector2(math.Inf(-1), 1)))
	require.Equal(t, 13, NormOne(NewVector2(-6, 7)))
	require.Equal(t, 9+49+9.0, DistanceSquared(x, y))
	require.Equal(t, 5.0, Distance(NewVector2(1.0, 1), NewVector2(4.0, 5)))
	require.Equal(t, int64(32), Dot(NewVector3[int64](1, 2, 3), NewVector3[int64](4, 5, 6)))

	if got := Project(NewVector2(3.0, 4), NewVector2(2.0, 0)); got != NewVector2(3.0, 0) {
		t.Errorf("Project: got %v, want Vector2(3, 0)", got)
	}
}

func TestNormalize(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-6)

	n := Normalize(NewVector3[float32](3, 0, 4))
	if diff := cmp.Diff(NewVector3[float32](0.6, 0, 0.8), n, approx); diff != "" {
		t.Errorf("Normalize (-want +got):\n%s", diff)
	}

	for _, v := range []Vector4[float64]{
		{1, 2, 3, 4},
		{-0.001, 0.002, 0, 0},
		{1e6, -3e5, 2, 7},
	} {
		u := Normalize(v)
		if diff := cmp.Diff(1.0, Length(u), approx); diff != "" {
			t.Errorf("Length(Normalize(%v)) (-want +got):\n%s", v, diff)
		}
		if Dot(u, v) < 0 {
			t.Errorf("Normalize(%v) points away from the input", v)
		}
	}

	z := Normalize(Vector2[float64]{})
	if !math.IsNaN(z[0]) || !math.IsNaN(z[1]) {
		t.Errorf("Normalize(0): got %v, want NaNs", z)
	}
}

func TestReflect(t *testing.T) {
	if got := Reflect(NewVector3(1.0, 2, 3), NewVector3(0.0, 0, 1)); got != NewVector3(1.0, 2, -3) {
		t.Errorf("Reflect: got %v, want Vector3(1, 2, -3)", got)
	}
	if got := Reflect(NewVector2[float32](1, -1), NewVector2[float32](0, 1)); got != NewVector2[float32](1, 1) {
		t.Errorf("Reflect 2D: got %v, want Vector2(1, 1)", got)
	}
}

func TestRefract(t *testing.T) {
	n := NewVector3(0.0, 0, 1)

	// Matching indices leave the direction unchanged.
	i := Normalize(NewVector3(1.0, 0, -1))
	if diff := cmp.Diff(i, Refract(i, n, 1), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Refract with eta=1 (-want +got):\n%s", diff)
	}

	// Head-on incidence passes straight through.
	down := NewVector3(0.0, 0, -1)
	if got := Refract(down, n, 0.75); got != down {
		t.Errorf("Refract head-on: got %v, want %v", got, down)
	}

	// Grazing incidence from the dense side reflects totally.
	grazing := Normalize(NewVector3(1.0, 0, -0.1))
	if got := Refract(grazing, n, 1.5); got != (Vector3[float64]{}) {
		t.Errorf("Refract under total internal reflection: got %v, want zero", got)
	}
}

func TestCross(t *testing.T) {
	if got := Cross(NewVector3(1, 0, 0), NewVector3(0, 1, 0)); got != NewVector3(0, 0, 1) {
		t.Errorf("Cross x y: got %v, want Vector3(0, 0, 1)", got)
	}
	if got := Cross(NewVector3(0, 1, 0), NewVector3(1, 0, 0)); got != NewVector3(0, 0, -1) {
		t.Errorf("Cross y x: got %v, want Vector3(0, 0, -1)", got)
	}

	a := NewVector3(2.0, -1, 3)
	b := NewVector3(0.5, 4, -2)
	c := Cross(a, b)
	if Dot(c, a) != 0 || Dot(c, b) != 0 {
		t.Errorf("Cross(%v, %v) = %v is not perpendicular to its inputs", a, b, c)
	}

	if got := Cross2(NewVector2(1, 2), NewVector2(3, 4)); got != NewVector3(0, 0, -2) {
		t.Errorf("Cross2: got %v, want Vector3(0, 0, -2)", got)
	}
}

func TestIntegerFunctions(t *testing.T) {
	a := Vector4[uint8]{0b1100, 0b1010, 0xff, 0}
	b := Vector4[uint8]{0b1010, 0b0110, 0x0f, 1}

	tests := []struct {
		name string
		got  Vector4[uint8]
		want Vector4[uint8]
	}{
		{"And", And(a, b), Vector4[uint8]{0b1000, 0b0010, 0x0f, 0}},
		{"Or", Or(a, b), Vector4[uint8]{0b1110, 0b1110, 0xff, 1}},
		{"Xor", Xor(a, b), Vector4[uint8]{0b0110, 0b1100, 0xf0, 1}},
		{"AndNot", AndNot(a, b), Vector4[uint8]{0b0100, 0b1000, 0xf0, 0}},
		{"Not", Not(a), Vector4[uint8]{0xf3, 0xf5, 0, 0xff}},
		{"ShiftLeft", ShiftLeft(a, 4), Vector4[uint8]{0xc0, 0xa0, 0xf0, 0}},
		{"ShiftRight", ShiftRight(a, 2), Vector4[uint8]{0b11, 0b10, 0x3f, 0}},
		{"WrappingAdd", WrappingAdd(a, b), Vector4[uint8]{22, 16, 14, 1}},
		{"WrappingSub", WrappingSub(b, a), Vector4[uint8]{254, 252, 16, 1}},
		{"WrappingMul", WrappingMul(a, b), Vector4[uint8]{120, 60, 241, 0}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if got := ShiftRight(NewVector2[int32](-8, 8), 2); got != NewVector2[int32](-2, 2) {
		t.Errorf("ShiftRight int32 is not arithmetic: got %v", got)
	}
	if got := WrappingAdd(Splat2[int8](127), Splat2[int8](1)); got != Splat2[int8](-128) {
		t.Errorf("WrappingAdd int8 overflow: got %v", got)
	}
}
