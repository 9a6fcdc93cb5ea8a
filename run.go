package chromacy

import (
	"image"
	"log/slog"
	"time"

	"github.com/32bitkid/chromacy/filter"
	"github.com/32bitkid/chromacy/imageio"
)

type Options struct {
	// Workers bounds the goroutines used to transform the image;
	// zero means one per CPU.
	Workers int
	Logger  *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Run executes job with masks from lib and returns the path written.
// Nothing is written unless every step succeeds.
func Run(job Job, lib Library, opts Options) (string, error) {
	log := opts.logger().With("mode", job.Mode.String())

	if err := job.Validate(); err != nil {
		return "", err
	}

	img, err := imageio.Load(job.Source)
	if err != nil {
		return "", err
	}
	log.Debug("loaded image", "path", job.Source, "bounds", img.Bounds())

	mask, err := lib.LoadMask(job.Mode.MaskKind(), job.Mask)
	if err != nil {
		return "", err
	}
	log.Debug("loaded mask", "kind", job.Mode.MaskKind(), "name", job.Mask, "bounds", mask.Bounds())

	t, err := job.Transform(mask)
	if err != nil {
		return "", err
	}

	start := time.Now()
	filter.Apply(img, t, opts.Workers)
	log.Debug("applied transform", "elapsed", time.Since(start))

	var out image.Image = img
	if job.Mode.Flatten() {
		out = imageio.Luma(img)
	}

	path := job.OutputPath()
	if err := imageio.Save(path, out); err != nil {
		return "", err
	}
	log.Info("wrote image", "path", path)
	return path, nil
}
