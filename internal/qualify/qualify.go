// Package qualify runs the classifier over batches of scraped leads.
package qualify

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/lead-scraper/internal/classify"
	"github.com/sells-group/lead-scraper/internal/model"
	"github.com/sells-group/lead-scraper/internal/monitoring"
)

// Options configures a qualification run.
type Options struct {
	// Industry is the run-level target for leads without their own.
	Industry      string
	Concurrency   int
	OnlyQualified bool
	// RequireMatch drops leads whose listing has no keyword of their
	// target industry.
	RequireMatch bool
}

// Result holds the kept verdicts, in input order, and a summary over all
// evaluated leads.
type Result struct {
	Verdicts []model.Verdict
	Summary  monitoring.Snapshot
}

// Evaluate classifies one lead. The target industry is the lead's own,
// else runIndustry, else the one detected from the listing.
func Evaluate(c *classify.Classifier, lead model.Lead, runIndustry string) model.Verdict {
	listing := lead.Listing()
	detected := c.DetectIndustry(listing)

	target, source := NormalizeIndustry(lead.Industry), model.IndustryFromLead
	switch {
	case target != "":
	case NormalizeIndustry(runIndustry) != "":
		target, source = NormalizeIndustry(runIndustry), model.IndustryFromRun
	default:
		target, source = detected, model.IndustryFromDetected
	}

	v := model.Verdict{
		Lead:             lead,
		TargetIndustry:   target,
		IndustrySource:   source,
		DetectedIndustry: detected,
		IndustryMatch:    c.MatchesIndustry(listing, target),
		Qualified:        c.IsQualifiedProspect(listing, target),
	}
	if sig, ok := c.BusinessSignal(classify.CandidateName(listing)); ok {
		v.Signal = sig.Name
	}
	return v
}

// Run evaluates leads concurrently and returns verdicts in input order.
func Run(ctx context.Context, c *classify.Classifier, leads []model.Lead, opts Options) (*Result, error) {
	runID := uuid.NewString()
	log := zap.L().With(zap.String("phase", "qualify"), zap.String("run_id", runID))

	limit := opts.Concurrency
	if limit <= 0 {
		limit = 1
	}

	log.Info("qualifying leads",
		zap.Int("leads", len(leads)),
		zap.String("industry", opts.Industry),
		zap.Int("concurrency", limit),
	)

	verdicts := make([]model.Verdict, len(leads))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range leads {
		i := i
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			verdicts[i] = Evaluate(c, leads[i], opts.Industry)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "qualify: run")
	}
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "qualify: run")
	}

	tally := monitoring.NewTally(runID)
	kept := make([]model.Verdict, 0, len(verdicts))
	for _, v := range verdicts {
		tally.Add(v)
		if opts.OnlyQualified && !v.Qualified {
			continue
		}
		if opts.RequireMatch && !v.IndustryMatch {
			continue
		}
		kept = append(kept, v)
	}

	summary := tally.Snapshot()
	log.Info("qualify complete",
		zap.Int("total", summary.Total),
		zap.Int("qualified", summary.Qualified),
		zap.Int("rejected", summary.Rejected),
		zap.Int("kept", len(kept)),
	)

	return &Result{Verdicts: kept, Summary: summary}, nil
}

// NormalizeIndustry lower-cases and trims an industry key the way the
// catalog stores it.
func NormalizeIndustry(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
