package linalg

import (
	"reflect"
	"regexp"
	"testing"
)

var swizzleName = regexp.MustCompile(`^([XYZW]{2,4}|[RGBA]{2,4})$`)

// swizzleGetters returns the names of the generated swizzle getters of the
// vector type of v.
func swizzleGetters(v any) []string {
	typ := reflect.TypeOf(v)
	var names []string
	for i := range typ.NumMethod() {
		if name := typ.Method(i).Name; swizzleName.MatchString(name) {
			names = append(names, name)
		}
	}
	return names
}

func TestSwizzleCounts(t *testing.T) {
	tests := []struct {
		v    any
		want int
	}{
		{Vector2[float32]{}, 4},
		{Vector3[int]{}, 24},
		{Vector4[float64]{}, 120},
	}
	for _, tt := range tests {
		if got := len(swizzleGetters(tt.v)); got != tt.want {
			t.Errorf("%T: got %d swizzles, want %d", tt.v, got, tt.want)
		}
	}
}

func TestSwizzleSetterInvertsGetter(t *testing.T) {
	for _, v := range []any{
		Vector2[float32]{1, 2},
		Vector3[int]{1, 2, 3},
		Vector4[float64]{1, 2, 3, 4},
	} {
		src := reflect.ValueOf(v)
		for _, name := range swizzleGetters(v) {
			got := src.MethodByName(name).Call(nil)[0]

			dst := reflect.New(src.Type())
			dst.MethodByName("Set" + name).Call([]reflect.Value{got})
			back := dst.Elem().MethodByName(name).Call(nil)[0]
			if !reflect.DeepEqual(got.Interface(), back.Interface()) {
				t.Errorf("%T.Set%s: reading back gave %v, want %v", v, name, back, got)
			}
		}
	}
}

func TestNamedSwizzles(t *testing.T) {
	v := NewVector4(1, 2, 3, 4)
	if got := v.ZYX(); got != NewVector3(3, 2, 1) {
		t.Errorf("ZYX: got %v", got)
	}
	if got := v.WX(); got != NewVector2(4, 1) {
		t.Errorf("WX: got %v", got)
	}
	if got := v.BGRA(); got != NewVector4(3, 2, 1, 4) {
		t.Errorf("BGRA: got %v", got)
	}

	u := NewVector3[float32](1, 2, 3)
	if got := u.ZX(); got != NewVector2[float32](3, 1) {
		t.Errorf("ZX: got %v", got)
	}

	v.SetXZ(NewVector2(9, 8))
	if v != NewVector4(9, 2, 8, 4) {
		t.Errorf("SetXZ: got %v", v)
	}
	v.SetWZYX(NewVector4(5, 6, 7, 8))
	if v != NewVector4(8, 7, 6, 5) {
		t.Errorf("SetWZYX: got %v", v)
	}
	v.SetGR(NewVector2(0, -1))
	if v != NewVector4(-1, 0, 6, 5) {
		t.Errorf("SetGR: got %v", v)
	}
}

func TestIndexSwizzles(t *testing.T) {
	v := NewVector3(10, 20, 30)
	if got := v.Swizzle2(2, 2); got != NewVector2(30, 30) {
		t.Errorf("Swizzle2 with repeats: got %v", got)
	}
	if got := v.Swizzle4(0, 1, 0, 2); got != NewVector4(10, 20, 10, 30) {
		t.Errorf("Swizzle4 from Vector3: got %v", got)
	}

	w := NewVector2[uint16](7, 9)
	if got := w.Swizzle3(1, 0, 1); got != NewVector3[uint16](9, 7, 9) {
		t.Errorf("Swizzle3 from Vector2: got %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Swizzle2 out of range: expected panic")
		}
	}()
	w.Swizzle2(0, 2)
}
