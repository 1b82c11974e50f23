package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNormalizeCoordinates(t *testing.T) {
	tests := []struct {
		name                       string
		column, row, width, height int
		nx, ny                     float64
	}{
		{"centre", 512, 384, 1024, 768, 0, 0},
		{"left edge", 0, 384, 1024, 768, -1, 0},
		{"top left", 0, 0, 1024, 768, -1, 0.75},
		{"bottom right", 1024, 768, 1024, 768, 1, -0.75},
		{"square top", 50, 0, 100, 100, 0, 1},
		{"odd centre", 3, 2, 7, 5, -1.0 / 7, 1.0 / 7},
		{"portrait top", 5, 0, 10, 40, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nx, ny := NormalizeCoordinates(tt.column, tt.row, tt.width, tt.height)
			if !mgl64.FloatEqualThreshold(nx, tt.nx, 1e-12) || !mgl64.FloatEqualThreshold(ny, tt.ny, 1e-12) {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.nx, tt.ny, nx, ny)
			}
		})
	}
}

func TestNormalizeCoordinates_CentreMapsToOrigin(t *testing.T) {
	for _, size := range [][2]int{{2, 2}, {1024, 768}, {640, 480}, {10, 1000}, {4096, 4096}} {
		w, h := size[0], size[1]
		nx, ny := NormalizeCoordinates(w/2, h/2, w, h)
		if nx != 0 || ny != 0 {
			t.Errorf("%dx%d: expected (0, 0), got (%v, %v)", w, h, nx, ny)
		}
	}
}
