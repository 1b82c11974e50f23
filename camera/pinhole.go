package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/echoflaresat/punter/vectors"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/soniakeys/unit"
)

// ErrDegenerateGeometry is returned when the camera parameters do not define
// a screen basis: the aim direction is zero or parallel to the world up-axis,
// or a parameter is NaN or infinite.
var ErrDegenerateGeometry = errors.New("degenerate camera geometry")

// degenerateEpsilon bounds the horizontal component of the unit aim direction.
const degenerateEpsilon = 1e-9

// Pinhole is a perspective camera with no lens. It is immutable once built and
// safe for concurrent use.
type Pinhole struct {
	centre      vectors.Vec3
	direction   vectors.Vec3
	aspectRatio float64
	fieldOfView unit.Angle
	roll        unit.Angle

	screenX                  vectors.Vec3
	screenY                  vectors.Vec3
	inverseEffectiveDistance float64
}

// NewPinhole builds a camera at centre looking along direction. The direction
// need not be unit length. fieldOfView is the full horizontal angle and roll
// turns the image plane about the aim direction.
func NewPinhole(centre, direction vectors.Vec3, aspectRatio float64, fieldOfView, roll unit.Angle) (*Pinhole, error) {
	if !centre.IsFinite() {
		return nil, fmt.Errorf("%w: centre %v is not finite", ErrDegenerateGeometry, centre)
	}
	if !isFinite(aspectRatio) || !isFinite(fieldOfView.Rad()) || !isFinite(roll.Rad()) {
		return nil, fmt.Errorf("%w: aspect ratio %v, field of view %v and roll %v must be finite",
			ErrDegenerateGeometry, aspectRatio, fieldOfView.Rad(), roll.Rad())
	}

	aim, err := unitAim(direction)
	if err != nil {
		return nil, err
	}
	screenX, screenY := screenCoordinateSystem(aim, roll)

	return &Pinhole{
		centre:                   centre,
		direction:                aim,
		aspectRatio:              aspectRatio,
		fieldOfView:              fieldOfView,
		roll:                     roll,
		screenX:                  screenX,
		screenY:                  screenY,
		inverseEffectiveDistance: inverseEffectiveDistance(fieldOfView),
	}, nil
}

// PinholeFromPixelDimensions derives the aspect ratio (height / width) from the
// raster size and delegates to NewPinhole.
func PinholeFromPixelDimensions(centre, direction vectors.Vec3, widthPx, heightPx int, fieldOfView, roll unit.Angle) (*Pinhole, error) {
	if widthPx <= 0 || heightPx <= 0 {
		return nil, fmt.Errorf("%w: raster %dx%d has no area", ErrDegenerateGeometry, widthPx, heightPx)
	}
	return NewPinhole(centre, direction, float64(heightPx)/float64(widthPx), fieldOfView, roll)
}

// MakeRay returns the primary ray through normalized screen point (nx, ny).
// Values outside the nominal frame extrapolate beyond it.
func (c *Pinhole) MakeRay(nx, ny float64) vectors.Ray {
	s := c.inverseEffectiveDistance
	dir := c.direction.
		Add(c.screenX.Scale(nx * s)).
		Add(c.screenY.Scale(ny * s))

	return vectors.Ray{
		Origin:    c.centre,
		Direction: dir.Normalize(),
	}
}

// Centre returns the camera position.
func (c *Pinhole) Centre() vectors.Vec3 { return c.centre }

// Direction returns the unit aim direction.
func (c *Pinhole) Direction() vectors.Vec3 { return c.direction }

// AspectRatio returns height / width of the image plane.
func (c *Pinhole) AspectRatio() float64 { return c.aspectRatio }

// FieldOfView returns the full horizontal viewing angle.
func (c *Pinhole) FieldOfView() unit.Angle { return c.fieldOfView }

// Roll returns the rotation of the image plane about the aim direction.
func (c *Pinhole) Roll() unit.Angle { return c.roll }

// ScreenX returns the unit vector pointing right in the image plane.
func (c *Pinhole) ScreenX() vectors.Vec3 { return c.screenX }

// ScreenY returns the unit vector pointing up in the image plane.
func (c *Pinhole) ScreenY() vectors.Vec3 { return c.screenY }

// InverseEffectiveDistance returns tan(fov/2), the ray offset at the frame edge.
func (c *Pinhole) InverseEffectiveDistance() float64 { return c.inverseEffectiveDistance }

func inverseEffectiveDistance(fieldOfView unit.Angle) float64 {
	return math.Tan(fieldOfView.Rad() * 0.5)
}

// unitAim normalizes d after scaling by its largest component, so that
// direction survives when the squared norm would underflow or overflow.
func unitAim(d vectors.Vec3) (vectors.Vec3, error) {
	if !d.IsFinite() {
		return vectors.Vec3{}, fmt.Errorf("%w: direction %v is not finite", ErrDegenerateGeometry, d)
	}
	m := math.Max(math.Abs(d.X), math.Max(math.Abs(d.Y), math.Abs(d.Z)))
	if m == 0 {
		return vectors.Vec3{}, fmt.Errorf("%w: direction is the zero vector", ErrDegenerateGeometry)
	}

	aim := vectors.Vec3{X: d.X / m, Y: d.Y / m, Z: d.Z / m}.Normalize()
	if math.Hypot(aim.X, aim.Z) <= degenerateEpsilon {
		return vectors.Vec3{}, fmt.Errorf("%w: direction %v is parallel to %v", ErrDegenerateGeometry, d, vectors.Up())
	}
	return aim, nil
}

// unrotatedBasis returns d × up and (d × up) × d. With up = (0,1,0) these are
// (-d.z, 0, d.x) and (-d.x·d.y, d.x² + d.z², -d.z·d.y).
func unrotatedBasis(d vectors.Vec3) (vectors.Vec3, vectors.Vec3) {
	x := d.Cross(vectors.Up())
	y := x.Cross(d)
	return x, y
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// rotateBasis turns the pair (x, y) by roll inside the plane they span.
func rotateBasis(x, y vectors.Vec3, roll unit.Angle) (vectors.Vec3, vectors.Vec3) {
	m := mgl64.Rotate2D(roll.Rad())
	rx := x.Scale(m.At(0, 0)).Add(y.Scale(m.At(0, 1)))
	ry := x.Scale(m.At(1, 0)).Add(y.Scale(m.At(1, 1)))
	return rx, ry
}

func screenCoordinateSystem(aim vectors.Vec3, roll unit.Angle) (vectors.Vec3, vectors.Vec3) {
	ux, uy := unrotatedBasis(aim)
	x, y := rotateBasis(ux, uy, roll)
	return x.Normalize(), y.Normalize()
}
