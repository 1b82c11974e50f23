// Command merge_tiles stitches tiles rendered with -tiles/-tile back into one
// frame.
package main

import (
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/echoflaresat/punter/render"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <cols>x<rows> <output.png> <tile0> <tile1> ...\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2], os.Args[3:], slog.Default()); err != nil {
		log.Fatal(err)
	}
}

func run(layout, output string, inputFiles []string, logger *slog.Logger) error {
	tiling, err := render.ParseTiling(layout, 0)
	if err != nil {
		return err
	}
	if len(inputFiles) != tiling.Count() {
		return fmt.Errorf("expected %d input files, got %d", tiling.Count(), len(inputFiles))
	}

	tiles := make([]image.Image, 0, len(inputFiles))
	for _, path := range inputFiles {
		logger.Info("loading tile", "path", path)
		tile, err := render.LoadImage(path)
		if err != nil {
			return fmt.Errorf("could not load tile %q: %w", path, err)
		}
		tiles = append(tiles, tile)
	}

	canvas, err := render.MergeTiles(tiling.Cols, tiling.Rows, tiles)
	if err != nil {
		return err
	}

	logger.Info("writing merged image", "path", output, "bounds", canvas.Bounds().String())
	return render.WriteImage(output, canvas)
}
