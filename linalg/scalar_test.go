package linalg

import (
	"math"
	"testing"
)

func TestRem(t *testing.T) {
	if got := Rem(7, 3); got != 1 {
		t.Errorf("Rem int: got %d, want 1", got)
	}
	if got := Rem(-7, 3); got != -1 {
		t.Errorf("Rem int negative dividend: got %d, want -1", got)
	}
	if got := Rem[uint8](250, 7); got != 5 {
		t.Errorf("Rem uint8: got %d, want 5", got)
	}
	if got := Rem[uint64](math.MaxUint64, 10); got != 5 {
		t.Errorf("Rem uint64: got %d, want 5", got)
	}
	if got := Rem(5.5, 2.0); got != 1.5 {
		t.Errorf("Rem float64: got %v, want 1.5", got)
	}
	if got := Rem[float32](-5.5, 2); got != -1.5 {
		t.Errorf("Rem float32 negative dividend: got %v, want -1.5", got)
	}
	if got := Rem(1.0, 0.0); !math.IsNaN(got) {
		t.Errorf("Rem float64 by zero: got %v, want NaN", got)
	}
}

func TestRemIntegerByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Rem int by zero: expected panic")
		}
	}()
	Rem(1, 0)
}

func TestMinMaxNum(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name     string
		x, y     float64
		min, max float64
	}{
		{"ordered", 1, 2, 1, 2},
		{"reversed", 2, 1, 1, 2},
		{"nan x", nan, 3, 3, 3},
		{"nan y", 3, nan, 3, 3},
		{"negative", -4, -5, -5, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minNum(tt.x, tt.y); got != tt.min {
				t.Errorf("minNum(%v, %v): got %v, want %v", tt.x, tt.y, got, tt.min)
			}
			if got := maxNum(tt.x, tt.y); got != tt.max {
				t.Errorf("maxNum(%v, %v): got %v, want %v", tt.x, tt.y, got, tt.max)
			}
		})
	}

	if got := minNum(nan, nan); !math.IsNaN(got) {
		t.Errorf("minNum(NaN, NaN): got %v, want NaN", got)
	}
	if got := maxNum[int16](-3, 7); got != 7 {
		t.Errorf("maxNum int16: got %d, want 7", got)
	}
}

func TestScalarKinds(t *testing.T) {
	if !isFloat[float32]() || !isFloat[float64]() {
		t.Errorf("isFloat: float types not detected")
	}
	if isFloat[int]() || isFloat[uint8]() {
		t.Errorf("isFloat: integer types reported as float")
	}
	if !isSigned[int8]() || !isSigned[float32]() {
		t.Errorf("isSigned: signed types not detected")
	}
	if isSigned[uint32]() {
		t.Errorf("isSigned: uint32 reported as signed")
	}

	type meters float64
	if !isFloat[meters]() {
		t.Errorf("isFloat: named float type not detected")
	}
}

func TestOneMinusULP(t *testing.T) {
	if got, want := oneMinusULP[float32](), math.Nextafter32(1, 0); got != want {
		t.Errorf("oneMinusULP float32: got %v, want %v", got, want)
	}
	if got, want := oneMinusULP[float64](), math.Nextafter(1, 0); got != want {
		t.Errorf("oneMinusULP float64: got %v, want %v", got, want)
	}
}
