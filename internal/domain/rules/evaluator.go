package rules

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/phrazzld/kundli-api/internal/domain/chart"
)

// Evaluator runs catalogues against charts. A rule that fails or panics is
// logged and skipped; it never hides the findings of other rules.
type Evaluator struct {
	logger  *slog.Logger
	workers int
}

// NewEvaluator creates an evaluator. workers bounds how many rules run at
// once; values below 2 run rules sequentially. A nil logger uses
// slog.Default.
func NewEvaluator(logger *slog.Logger, workers int) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		logger:  logger.With("component", "rule_evaluator"),
		workers: workers,
	}
}

// Evaluate applies every rule in cat to c and returns the findings in
// registration order. Each rule contributes at most one finding. A
// cancelled context stops rules that have not started yet.
func (e *Evaluator) Evaluate(ctx context.Context, cat *Catalogue, c *chart.Chart) []Finding {
	rules := cat.rules
	results := make([]*Finding, len(rules))

	if e.workers <= 1 {
		for i, r := range rules {
			if ctx.Err() != nil {
				break
			}
			results[i] = e.apply(ctx, cat.name, r, c)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.workers)
		for i, r := range rules {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				results[i] = e.apply(gctx, cat.name, r, c)
				return nil
			})
		}
		_ = g.Wait()
	}

	findings := make([]Finding, 0, len(rules))
	for _, f := range results {
		if f != nil {
			findings = append(findings, *f)
		}
	}
	return findings
}

// apply runs one rule, converting a panic into a logged skip.
func (e *Evaluator) apply(ctx context.Context, catalogue string, r Rule, c *chart.Chart) (out *Finding) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.WarnContext(ctx, "rule panicked, skipping",
				"catalogue", catalogue,
				"rule", r.Name(),
				"panic", fmt.Sprint(rec))
			out = nil
		}
	}()

	f, ok, err := r.Apply(c)
	if err != nil {
		e.logger.WarnContext(ctx, "rule failed, skipping",
			"catalogue", catalogue,
			"rule", r.Name(),
			"error", err)
		return nil
	}
	if !ok {
		return nil
	}
	return &f
}
