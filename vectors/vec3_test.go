package vectors

import (
	"math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y", New(1, 0, 0), New(0, 1, 0), New(0, 0, 1)},
		{"y cross x", New(0, 1, 0), New(1, 0, 0), New(0, 0, -1)},
		{"up cross forward", Up(), New(0, 0, -1), New(-1, 0, 0)},
		{"parallel", New(2, 0, 0), New(5, 0, 0), Zero()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cross(tt.b)
			if got.Add(tt.expected.Scale(-1)).Norm() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := New(3, 4, 12).Normalize()
	if math.Abs(v.Norm()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %v", v.Norm())
	}
	if got := Zero().Normalize(); got != Zero() {
		t.Errorf("Expected zero vector, got %v", got)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !New(1, -2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if New(math.NaN(), 0, 0).IsFinite() {
		t.Error("Expected NaN component to be reported")
	}
	if New(0, 0, math.Inf(-1)).IsFinite() {
		t.Error("Expected Inf component to be reported")
	}
}
