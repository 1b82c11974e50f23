package camera

// NormalizeCoordinates maps raster (column, row) to normalized screen space.
// x runs from -1 at the left edge to +1 at the right edge; y is positive up.
// Both axes are divided by half the width so pixels stay square, which means
// y only spans [-1, 1] when width == height.
func NormalizeCoordinates(column, row, width, height int) (float64, float64) {
	halfWidth := float64(width) * 0.5
	halfHeight := float64(height) * 0.5

	nx := (float64(column) - halfWidth) / halfWidth
	ny := (halfHeight - float64(row)) / halfWidth
	return nx, ny
}
