package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/echoflaresat/tiff"
	"golang.org/x/exp/mmap"
	xtiff "golang.org/x/image/tiff"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrTileMismatch      = errors.New("tile size mismatch")
)

// WriteImage encodes img to path, choosing PNG, JPEG or TIFF by extension.
func WriteImage(path string, img image.Image) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	var encode func(io.Writer, image.Image) error
	switch ext {
	case ".png":
		encode = (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode
	case ".jpg", ".jpeg":
		encode = func(w io.Writer, m image.Image) error {
			return jpeg.Encode(w, m, &jpeg.Options{Quality: 95})
		}
	case ".tif", ".tiff":
		encode = func(w io.Writer, m image.Image) error {
			return xtiff.Encode(w, m, &xtiff.Options{Compression: xtiff.Deflate})
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, img)
}

// LoadImage decodes a rendered image. TIFF is tried first, then the
// registered image codecs. The file is unmapped before returning, so the
// result never reads from it.
func LoadImage(path string) (image.Image, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	section := func() *io.SectionReader {
		return io.NewSectionReader(reader, 0, int64(reader.Len()))
	}

	img, err := tiff.Decode(section())
	if err == nil {
		// Uncompressed TIFFs decode lazily and read pixels through reader.
		return copyNRGBA(img), nil
	}

	// fallback to image codecs
	img, _, err = image.Decode(section())
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func copyNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// MergeTiles lays out cols x rows tiles row-major into one image. Every tile
// must have the size of the first.
func MergeTiles(cols, rows int, tiles []image.Image) (*image.NRGBA, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTiling, cols, rows)
	}
	if len(tiles) != cols*rows {
		return nil, fmt.Errorf("%w: expected %d tiles, got %d", ErrInvalidTiling, cols*rows, len(tiles))
	}

	tileW := tiles[0].Bounds().Dx()
	tileH := tiles[0].Bounds().Dy()
	canvas := image.NewNRGBA(image.Rect(0, 0, cols*tileW, rows*tileH))

	for idx, tile := range tiles {
		b := tile.Bounds()
		if b.Dx() != tileW || b.Dy() != tileH {
			return nil, fmt.Errorf("%w: tile %d: expected %dx%d, got %dx%d",
				ErrTileMismatch, idx, tileW, tileH, b.Dx(), b.Dy())
		}

		x := (idx % cols) * tileW
		y := (idx / cols) * tileH
		draw.Draw(canvas, image.Rect(x, y, x+tileW, y+tileH), tile, b.Min, draw.Src)
	}
	return canvas, nil
}
