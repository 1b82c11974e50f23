package vectors

// Ray is a half-line starting at Origin. Direction is unit length when the
// ray comes from a camera.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}
