package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/echoflaresat/punter/camera"
	"github.com/echoflaresat/punter/scene"
	"github.com/echoflaresat/punter/vectors"
)

var ErrInvalidDimensions = errors.New("invalid raster dimensions")

// Camera turns normalized screen coordinates into a primary ray.
type Camera interface {
	MakeRay(nx, ny float64) vectors.Ray
}

// Shot is one frame: a fixed camera looking at a scene through a raster of
// Width x Height pixels. The camera is shared read-only by every pixel.
type Shot struct {
	width  int
	height int
	camera Camera
	scene  scene.Scene
}

func NewShot(width, height int, cam Camera, sc scene.Scene) (*Shot, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if cam == nil {
		return nil, errors.New("shot has no camera")
	}
	if sc == nil {
		return nil, errors.New("shot has no scene")
	}
	return &Shot{width: width, height: height, camera: cam, scene: sc}, nil
}

func (s *Shot) Width() int  { return s.width }
func (s *Shot) Height() int { return s.height }

// Ray returns the primary ray through the top-left corner of pixel (column, row).
func (s *Shot) Ray(column, row int) vectors.Ray {
	nx, ny := camera.NormalizeCoordinates(column, row, s.width, s.height)
	return s.camera.MakeRay(nx, ny)
}

// RenderPixel returns the 8-bit colour of pixel (column, row).
func (s *Shot) RenderPixel(column, row int) color.NRGBA {
	return s.scene.Radiance(s.Ray(column, row)).ToNRGBA()
}
