// Package lint orchestrates a run: it takes the collected file set, executes
// every enabled detector against a shared issue store, and hands the finished
// store to the report layer.
package lint

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/hdl-tools/sv-lint/internal/checks"
	"github.com/hdl-tools/sv-lint/internal/config"
	"github.com/hdl-tools/sv-lint/internal/issues"
)

// Runner executes the detector set for one lint run.
type Runner struct {
	cfg    *config.Config
	logger *log.Logger
}

// NewRunner creates a runner for the given configuration.
func NewRunner(cfg *config.Config, logger *log.Logger) *Runner {
	return &Runner{cfg: cfg, logger: logger}
}

// Run executes all enabled detectors over the files and returns the finished
// store. Detector order is fixed in sequential mode; with
// analysis.maxParallelChecks > 1 detectors run concurrently, which changes
// only the order the store is filled in, not its contents.
func (r *Runner) Run(ctx context.Context, files []string) (*issues.Store, error) {
	store := issues.NewStore()
	checkCtx := &checks.Context{
		Files:         files,
		Store:         store,
		Log:           r.logger,
		MaxLineLength: r.cfg.Lint.MaxLineLength,
	}

	var enabled []checks.Detector
	for _, d := range checks.All() {
		if !r.cfg.IsRuleEnabled(d.Rule) {
			r.logger.Debug("rule disabled, skipping", "rule", d.Rule)
			continue
		}
		enabled = append(enabled, d)
	}
	r.logger.Info("running checks", "files", len(files), "checks", len(enabled))

	if r.cfg.Analysis.MaxParallelChecks > 1 {
		if err := r.runParallel(ctx, checkCtx, enabled); err != nil {
			return nil, err
		}
		return store, nil
	}

	for _, d := range enabled {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("lint run canceled: %w", err)
		}
		d.Run(checkCtx)
	}
	return store, nil
}

func (r *Runner) runParallel(ctx context.Context, checkCtx *checks.Context, enabled []checks.Detector) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Analysis.MaxParallelChecks)

	for _, d := range enabled {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("lint run canceled: %w", err)
			}
			d.Run(checkCtx)
			return nil
		})
	}
	return g.Wait()
}
