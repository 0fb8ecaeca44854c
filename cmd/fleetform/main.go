// Command fleetform renders a batch of sample incident forms into a
// local directory. It exercises the full rendering path: both form
// variants, multi-page pagination, embedded signatures and the
// derived decision box.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fleetform/fleetform/internal/export"
	"github.com/fleetform/fleetform/internal/fleetform"
	"github.com/fleetform/fleetform/internal/forms"
	"github.com/fleetform/fleetform/internal/render"
)

func main() {
	cfg, err := fleetform.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := fleetform.NewLogger(cfg)

	store, err := export.NewLocalStore(cfg.OutputDir)
	if err != nil {
		logger.Error("open output store", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, logger, store); err != nil {
		logger.Error("render samples", slog.Any("error", err))
		os.Exit(1)
	}
}

// run renders the sample batch concurrently; render calls are
// self-contained and safe to run in parallel.
func run(ctx context.Context, cfg *fleetform.Config, logger *slog.Logger, store export.Store) error {
	now := time.Now()
	opts := render.Options{Logger: logger, Watermark: cfg.Watermark}

	type job struct {
		name   string
		render func() (*render.Result, error)
		meta   export.Metadata
	}
	jobs := []job{
		{
			name: "released checkout",
			render: func() (*render.Result, error) {
				return render.CheckoutForm(mustValid(logger, sampleReleasedCheckout(now)), opts)
			},
			meta: export.Metadata{"form": "checkout", "vehicle": "E-4471"},
		},
		{
			name: "held checkout",
			render: func() (*render.Result, error) {
				return render.CheckoutForm(mustValid(logger, sampleHeldCheckout(now)), opts)
			},
			meta: export.Metadata{"form": "checkout", "vehicle": "WT-2208"},
		},
		{
			name: "vehicle list",
			render: func() (*render.Result, error) {
				return render.VehicleListForm(sampleInventory(now, 25), opts)
			},
			meta: export.Metadata{"form": "vehicle-list", "incident": "OR-WIF-220417"},
		},
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, j := range jobs {
		g.Go(func() error {
			res, err := j.render()
			if err != nil {
				return err
			}
			locator, err := store.Put(ctx, res.Filename, res.Buffer, res.ContentType(), j.meta)
			if err != nil {
				return err
			}
			logger.Info("rendered sample form",
				slog.String("job", j.name),
				slog.String("file", locator),
				slog.Int64("bytes", res.Size))
			return nil
		})
	}
	return g.Wait()
}

// mustValid runs the caller-side validation the intake layer would;
// sample data is expected to pass.
func mustValid(logger *slog.Logger, rec forms.Inspection) forms.Inspection {
	if err := rec.Validate(); err != nil {
		logger.Warn("sample record failed validation", slog.Any("error", err))
	}
	return rec
}
