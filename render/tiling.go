package render

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

var ErrInvalidTiling = errors.New("invalid tiling")

// Tiling splits a frame into Cols x Rows equal tiles and selects the one at
// Index, counted row-major from the top-left. The zero value is the whole
// frame.
type Tiling struct {
	Cols, Rows int
	Index      int
}

// ParseTiling parses a layout such as "4x2".
func ParseTiling(layout string, index int) (Tiling, error) {
	parts := strings.Split(layout, "x")
	if len(parts) != 2 {
		return Tiling{}, fmt.Errorf("%w: %q (expected NxM)", ErrInvalidTiling, layout)
	}
	cols, err := strconv.Atoi(parts[0])
	if err != nil {
		return Tiling{}, fmt.Errorf("%w: cols: %v", ErrInvalidTiling, err)
	}
	rows, err := strconv.Atoi(parts[1])
	if err != nil {
		return Tiling{}, fmt.Errorf("%w: rows: %v", ErrInvalidTiling, err)
	}
	return Tiling{Cols: cols, Rows: rows, Index: index}, nil
}

func (t Tiling) layout() (int, int) {
	if t.Cols == 0 && t.Rows == 0 {
		return 1, 1
	}
	return t.Cols, t.Rows
}

// Count returns the number of tiles in the layout.
func (t Tiling) Count() int {
	cols, rows := t.layout()
	return cols * rows
}

// Region returns the pixels of a width x height frame covered by the tile.
func (t Tiling) Region(width, height int) (image.Rectangle, error) {
	cols, rows := t.layout()
	if cols <= 0 || rows <= 0 {
		return image.Rectangle{}, fmt.Errorf("%w: %dx%d", ErrInvalidTiling, cols, rows)
	}
	if t.Index < 0 || t.Index >= cols*rows {
		return image.Rectangle{}, fmt.Errorf("%w: tile %d outside %dx%d", ErrInvalidTiling, t.Index, cols, rows)
	}
	if width%cols != 0 || height%rows != 0 {
		return image.Rectangle{}, fmt.Errorf("%w: %dx%d frame does not split into %dx%d tiles", ErrInvalidTiling, width, height, cols, rows)
	}

	tileW, tileH := width/cols, height/rows
	x := (t.Index % cols) * tileW
	y := (t.Index / cols) * tileH
	return image.Rect(x, y, x+tileW, y+tileH), nil
}
