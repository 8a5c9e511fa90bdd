package vec

import (
	"errors"
	"math"
	"testing"
)

func TestVector3_Arithmetic(t *testing.T) {
	a := V(1, 2, 3)
	b := V(4, 5, 6)

	if got := a.Add(b); got != V(5, 7, 9) {
		t.Errorf("Add failed: got %v", got)
	}
	if got := b.Sub(a); got != V(3, 3, 3) {
		t.Errorf("Sub failed: got %v", got)
	}
	if got := a.Scale(2); got != V(2, 4, 6) {
		t.Errorf("Scale failed: got %v", got)
	}
	if got := a.Mul(b); got != V(4, 10, 18) {
		t.Errorf("Mul failed: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot failed: got %v", got)
	}
	if got := UnitX.Cross(UnitY); got != UnitZ {
		t.Errorf("Cross failed: got %v", got)
	}
}

func TestVector3_Mag(t *testing.T) {
	tests := []struct {
		v        Vector3
		expected float64
	}{
		{V(3, 4, 0), 5},
		{V(0, 0, 0), 0},
		{V(1, 2, 2), 3},
	}

	for _, tt := range tests {
		if got := tt.v.Mag(); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Mag(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestVector3_SetMag(t *testing.T) {
	got := V(3, 4, 0).SetMag(10)
	if !got.ApproxEqual(V(6, 8, 0), 1e-12) {
		t.Errorf("SetMag kept wrong direction: got %v", got)
	}

	if got := Zero.SetMag(5); got != Zero {
		t.Errorf("zero vector should stay zero, got %v", got)
	}

	neg := V(0, 2, 0).SetMag(-3)
	if !neg.ApproxEqual(V(0, -3, 0), 1e-12) {
		t.Errorf("negative magnitude should flip direction, got %v", neg)
	}
}

func TestVector3_Rotate(t *testing.T) {
	got := UnitX.Rotate(math.Pi/2, UnitZ)
	if !got.ApproxEqual(UnitY, 1e-12) {
		t.Errorf("Rotate x by 90deg about z = %v, want %v", got, UnitY)
	}

	if got := UnitX.Rotate(1, Zero); got != UnitX {
		t.Errorf("rotation about zero axis should be identity, got %v", got)
	}
}

func TestVector3_Validate(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector3
		valid bool
	}{
		{"zeros", Zero, true},
		{"normal", V(1, -2, 3), true},
		{"with NaN", V(math.NaN(), 0, 0), false},
		{"with +Inf", V(0, math.Inf(1), 0), false},
		{"with -Inf", V(0, 0, math.Inf(-1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrNotFinite) {
				t.Errorf("Validate() = %v, want ErrNotFinite", err)
			}
		})
	}
}
