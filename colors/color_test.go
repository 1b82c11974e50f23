package colors

import (
	"image/color"
	"math"
	"testing"

	"github.com/echoflaresat/punter/vectors"
)

func TestFromDirection_ToNRGBA(t *testing.T) {
	tests := []struct {
		name     string
		dir      vectors.Vec3
		expected color.NRGBA
	}{
		{"forward", vectors.New(0, 0, -1), color.NRGBA{128, 128, 0, 255}},
		{"right", vectors.New(1, 0, 0), color.NRGBA{255, 128, 128, 255}},
		{"up", vectors.New(0, 1, 0), color.NRGBA{128, 255, 128, 255}},
		{"diagonal", vectors.New(-1, 0, -1).Normalize(), color.NRGBA{37, 128, 37, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromDirection(tt.dir).ToNRGBA()
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestToNRGBA_Clamps(t *testing.T) {
	got := New(-0.5, 1.5, math.Inf(1), 0.5).ToNRGBA()
	want := color.NRGBA{0, 255, 255, 128}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
