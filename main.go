package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/echoflaresat/punter/camera"
	"github.com/echoflaresat/punter/render"
	"github.com/echoflaresat/punter/scene"
	"github.com/echoflaresat/punter/vectors"
	"github.com/soniakeys/unit"
)

type config struct {
	pos, dir      *string
	fov, roll     *float64
	width, height *int
	workers       *int
	tiles         *string
	tile          *int
	sceneName     *string
	out           *string
	verbose       *bool
	showHelp      *bool
}

func defineFlags(fs *flag.FlagSet) config {
	return config{
		pos:  fs.String("pos", "0,0,0", "Camera position as x,y,z"),
		dir:  fs.String("dir", "0,0,-1", "Camera aim direction as x,y,z (must not be vertical)"),
		fov:  fs.Float64("fov", 90.0, "Horizontal field of view in degrees"),
		roll: fs.Float64("roll", 0.0, "Camera roll about the aim direction in degrees"),

		width:     fs.Int("width", 1024, "Output image width in pixels"),
		height:    fs.Int("height", 768, "Output image height in pixels"),
		workers:   fs.Int("workers", 0, "Rows rendered in parallel (0 = all CPUs)"),
		tiles:     fs.String("tiles", "1x1", "Split the frame into CxR tiles"),
		tile:      fs.Int("tile", 0, "Tile index to render, row-major"),
		sceneName: fs.String("scene", "directions", "Scene: directions or empty"),

		out: fs.String("out", "image.png", "Output image path (.png, .jpg or .tiff)"),

		verbose:  fs.Bool("v", false, "Log progress"),
		showHelp: fs.Bool("h", false, "Show this help message"),
	}
}

func printHelp(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), `Punter - Pinhole Camera Renderer

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup(fs, "Camera Options", []string{"pos", "dir", "fov", "roll"})
	printGroup(fs, "Rendering Options", []string{"width", "height", "workers", "tiles", "tile", "scene"})
	printGroup(fs, "Output", []string{"out"})
	printGroup(fs, "Misc", []string{"v", "h"})
}

func printGroup(fs *flag.FlagSet, title string, keys []string) {
	fmt.Fprintf(fs.Output(), "%s:\n", title)
	for _, name := range keys {
		if f := fs.Lookup(name); f != nil {
			fmt.Fprintf(fs.Output(), "  -%-8s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(fs.Output())
}

// settings is the validated form of config.
type settings struct {
	pos, dir      vectors.Vec3
	fov, roll     unit.Angle
	width, height int
	workers       int
	tiling        render.Tiling
	scene         scene.Scene
	out           string
}

func (c config) validate() (settings, error) {
	pos, err := parseVec3(*c.pos)
	if err != nil {
		return settings{}, fmt.Errorf("-pos: %w", err)
	}
	dir, err := parseVec3(*c.dir)
	if err != nil {
		return settings{}, fmt.Errorf("-dir: %w", err)
	}
	if !(*c.fov > 0 && *c.fov < 180) {
		return settings{}, fmt.Errorf("-fov: %v is outside (0, 180) degrees", *c.fov)
	}
	if math.IsNaN(*c.roll) || math.IsInf(*c.roll, 0) {
		return settings{}, fmt.Errorf("-roll: %v is not finite", *c.roll)
	}
	if *c.width <= 0 || *c.height <= 0 {
		return settings{}, fmt.Errorf("%w: %dx%d", render.ErrInvalidDimensions, *c.width, *c.height)
	}
	if *c.workers < 0 {
		return settings{}, errors.New("-workers must not be negative")
	}
	tiling, err := render.ParseTiling(*c.tiles, *c.tile)
	if err != nil {
		return settings{}, err
	}
	if _, err := tiling.Region(*c.width, *c.height); err != nil {
		return settings{}, err
	}
	sc, err := scene.ByName(*c.sceneName)
	if err != nil {
		return settings{}, err
	}

	return settings{
		pos:     pos,
		dir:     dir,
		fov:     unit.AngleFromDeg(*c.fov),
		roll:    unit.AngleFromDeg(*c.roll),
		width:   *c.width,
		height:  *c.height,
		workers: *c.workers,
		tiling:  tiling,
		scene:   sc,
		out:     *c.out,
	}, nil
}

func parseVec3(s string) (vectors.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vectors.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var xyz [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vectors.Vec3{}, err
		}
		xyz[i] = v
	}
	v := vectors.New(xyz[0], xyz[1], xyz[2])
	if !v.IsFinite() {
		return vectors.Vec3{}, fmt.Errorf("%q is not finite", s)
	}
	return v, nil
}

func main() {
	fs := flag.CommandLine
	cfg := defineFlags(fs)
	fs.Usage = func() { printHelp(fs) }
	flag.Parse()

	if *cfg.showHelp {
		printHelp(fs)
		return
	}

	level := slog.LevelInfo
	if *cfg.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s, err := cfg.validate()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, err := renderImage(ctx, s, slog.Default())
	if err != nil {
		log.Fatal(err)
	}

	if err := render.WriteImage(s.out, img); err != nil {
		log.Fatalf("Failed to write image: %v", err)
	}
	slog.Info("wrote image", "path", s.out)
}

// renderImage builds the camera once for the shot and renders it.
func renderImage(ctx context.Context, s settings, logger *slog.Logger) (image.Image, error) {
	cam, err := camera.PinholeFromPixelDimensions(s.pos, s.dir, s.width, s.height, s.fov, s.roll)
	if err != nil {
		return nil, fmt.Errorf("camera setup: %w", err)
	}

	shot, err := render.NewShot(s.width, s.height, cam, s.scene)
	if err != nil {
		return nil, err
	}

	return render.Render(ctx, shot, render.Options{
		Workers: s.workers,
		Tiling:  s.tiling,
		Logger:  logger,
	})
}
