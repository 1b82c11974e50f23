// Package scene is where scene content plugs into the renderer. Nothing here
// intersects geometry yet; the camera package does not import it.
package scene

import (
	"fmt"

	"github.com/echoflaresat/punter/colors"
	"github.com/echoflaresat/punter/vectors"
)

// Scene answers what colour a primary ray sees.
type Scene interface {
	Radiance(ray vectors.Ray) colors.Color4
}

// Empty is a scene with no objects. Every ray sees the background.
type Empty struct {
	Background colors.Color4
}

func (s Empty) Radiance(vectors.Ray) colors.Color4 {
	return s.Background
}

// Directions colours each ray by its direction, x, y and z as R, G and B.
// It is a debugging aid for checking camera orientation.
type Directions struct{}

func (Directions) Radiance(ray vectors.Ray) colors.Color4 {
	return colors.FromDirection(ray.Direction)
}

// ByName returns one of the built-in scenes: "directions" or "empty".
func ByName(name string) (Scene, error) {
	switch name {
	case "directions", "":
		return Directions{}, nil
	case "empty":
		return Empty{Background: colors.Black()}, nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}
