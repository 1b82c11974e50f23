package render

import (
	"context"
	"image"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Options controls how a shot is rendered.
type Options struct {
	// Workers bounds the number of rows rendered at once. Zero means GOMAXPROCS.
	Workers int
	Tiling  Tiling
	Logger  *slog.Logger
}

// Render rasterises the shot, or the tile of it selected by opts.Tiling.
// Rows are rendered in parallel; the returned image starts at (0,0) even for
// tiles. A cancelled ctx stops the render and its error is returned.
func Render(ctx context.Context, shot *Shot, opts Options) (*image.NRGBA, error) {
	region, err := opts.Tiling.Region(shot.Width(), shot.Height())
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger.Info("rendering",
		"width", shot.Width(), "height", shot.Height(),
		"region", region.String(), "workers", workers)
	start := time.Now()

	img := image.NewNRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
	progress := newProgress(logger, region.Dy())

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for y := region.Min.Y; y < region.Max.Y; y++ {
		if groupCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			for x := region.Min.X; x < region.Max.X; x++ {
				img.SetNRGBA(x-region.Min.X, y-region.Min.Y, shot.RenderPixel(x, y))
			}
			progress.rowDone()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Info("render complete", "elapsed", time.Since(start))
	return img, nil
}

// progress logs every 10% of completed rows.
type progress struct {
	logger *slog.Logger
	total  int64
	done   atomic.Int64
}

func newProgress(logger *slog.Logger, total int) *progress {
	return &progress{logger: logger, total: int64(total)}
}

func (p *progress) rowDone() {
	done := p.done.Add(1)
	if done*10/p.total > (done-1)*10/p.total {
		p.logger.Debug("progress", "percent", done*100/p.total)
	}
}
