package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/echoflaresat/punter/render"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func writeTile(t *testing.T, dir string, idx int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, fmt.Sprintf("tile_%d.png", idx))
	if err := render.WriteImage(path, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	palette := []color.NRGBA{
		{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255},
		{255, 255, 0, 255}, {0, 255, 255, 255}, {255, 0, 255, 255},
	}
	var paths []string
	for i, c := range palette {
		paths = append(paths, writeTile(t, dir, i, c))
	}

	out := filepath.Join(dir, "merged.tiff")
	if err := run("3x2", out, paths, quietLogger); err != nil {
		t.Fatal(err)
	}

	merged, err := render.LoadImage(out)
	if err != nil {
		t.Fatal(err)
	}
	if merged.Bounds().Size() != image.Pt(12, 6) {
		t.Fatalf("Unexpected size %v", merged.Bounds())
	}
	for i, c := range palette {
		x, y := (i%3)*4+1, (i/3)*3+1
		if got := color.NRGBAModel.Convert(merged.At(x, y)); got != c {
			t.Errorf("tile %d at (%d,%d): expected %v, got %v", i, x, y, c, got)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	one := writeTile(t, dir, 0, color.NRGBA{A: 255})

	if err := run("2x1", filepath.Join(dir, "out.png"), []string{one}, quietLogger); err == nil {
		t.Error("Expected error for missing tile")
	}
	if err := run("nope", filepath.Join(dir, "out.png"), []string{one}, quietLogger); err == nil {
		t.Error("Expected error for bad layout")
	}
	if err := run("1x1", filepath.Join(dir, "out.png"), []string{filepath.Join(dir, "missing.png")}, quietLogger); err == nil {
		t.Error("Expected error for unreadable tile")
	}
}
