// Package pipeline orchestrates a full acquisition run: it drives every
// configured source, resolves candidates through fetch, extraction,
// normalization and validation, and hands the accumulated records to the
// deduplicator.
package pipeline

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/stockwire/stockwire"
	"github.com/stockwire/stockwire/bloom"
	"golang.org/x/sync/errgroup"
)

// Runner drives the acquisition pipeline for one run. A run is stateless
// across invocations: no dedup history or fetch state is carried over.
type Runner struct {
	Sources    []stockwire.Source
	Fetcher    stockwire.Fetcher
	Extractor  stockwire.Extractor
	Normalizer stockwire.Normalizer
	Validator  stockwire.Validator
	Limiter    stockwire.Limiter
	Logger     *slog.Logger

	// Concurrency bounds per-candidate workers within a source.
	Concurrency int

	// SourceConcurrency bounds how many sources run at once.
	SourceConcurrency int
}

type sourceResult struct {
	report  stockwire.SourceReport
	records []stockwire.Record
}

// Run executes all sources and returns the deduplicated corpus plus
// per-source reports. Per-article and per-source failures are reported,
// never fatal; the only fatal condition here is an empty source list.
func (r *Runner) Run(ctx context.Context) (*stockwire.Corpus, []stockwire.SourceReport, error) {
	if len(r.Sources) == 0 {
		return nil, nil, stockwire.Errorf(stockwire.EINVALID, "no sources configured")
	}

	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	runID := uuid.NewString()
	logger.Info("run started", "run_id", runID, "sources", len(r.Sources))

	sourceConcurrency := r.SourceConcurrency
	if sourceConcurrency <= 0 {
		sourceConcurrency = 4
	}

	// Each source writes only its own slot, so the final concatenation
	// follows the configured source order regardless of completion order.
	results := make([]sourceResult, len(r.Sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sourceConcurrency)

	for i, src := range r.Sources {
		g.Go(func() error {
			results[i] = r.runSource(gctx, src, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var all []stockwire.Record
	reports := make([]stockwire.SourceReport, 0, len(r.Sources))
	for _, res := range results {
		all = append(all, res.records...)
		reports = append(reports, res.report)
	}

	unique := Dedupe(all)

	logger.Info("run finished",
		"run_id", runID,
		"collected", len(all),
		"unique", len(unique),
		"duplicates", len(all)-len(unique),
	)

	return &stockwire.Corpus{
		RunID:     runID,
		Sources:   len(r.Sources),
		Collected: len(all),
		Records:   unique,
	}, reports, nil
}

// runSource resolves one source end to end. A source-level failure
// yields zero records and a reason in the report; it never propagates.
func (r *Runner) runSource(ctx context.Context, src stockwire.Source, logger *slog.Logger) sourceResult {
	report := stockwire.SourceReport{Name: src.Name()}

	candidates, err := src.Discover(ctx)
	if err != nil {
		logger.Warn("source failed",
			"source", src.Name(),
			"code", stockwire.ErrorCode(err),
			"error", stockwire.ErrorMessage(err),
		)
		report.Err = err
		return sourceResult{report: report}
	}
	report.Candidates = len(candidates)

	// Collapse repeated URLs before dispatch so the politeness budget is
	// not spent refetching the same page.
	seen := bloom.NewSeenSet(uint(len(candidates))+1, 0.01)
	var work []stockwire.Candidate
	for _, c := range candidates {
		if c.URL == "" || seen.Seen(c.URL) {
			continue
		}
		work = append(work, c)
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	// Index-addressed slots keep candidate order deterministic under
	// concurrent resolution.
	resolved := make([]*stockwire.Record, len(work))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, c := range work {
		g.Go(func() error {
			rec, err := r.resolve(gctx, c)
			if err != nil {
				logCandidateFailure(logger, c, err)
				return nil
			}
			resolved[i] = rec
			return nil
		})
	}
	_ = g.Wait()

	// Sequential acceptance pass: skip extraction misses, validation
	// rejections (both nil), and exact-content duplicates in-source.
	contentSeen := make(map[uint64]bool, len(work))
	var records []stockwire.Record
	for _, rec := range resolved {
		if rec == nil {
			continue
		}
		if contentSeen[rec.ContentHash] {
			continue
		}
		contentSeen[rec.ContentHash] = true
		records = append(records, *rec)
	}
	report.Accepted = len(records)

	logger.Info("source finished",
		"source", src.Name(),
		"candidates", report.Candidates,
		"accepted", report.Accepted,
	)

	return sourceResult{report: report, records: records}
}

// resolve turns one candidate into a record. It returns (nil, nil) for
// the expected non-error outcomes: extraction miss and validation
// rejection.
func (r *Runner) resolve(ctx context.Context, c stockwire.Candidate) (*stockwire.Record, error) {
	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx, domainOf(c.URL)); err != nil {
			return nil, err
		}
	}

	rawHTML, err := r.Fetcher.Fetch(ctx, c.URL)
	if err != nil {
		return nil, err
	}

	content, ok := r.Extractor.Extract(c.URL, rawHTML)
	if !ok {
		return nil, nil
	}

	clean := r.Normalizer.Normalize(content)
	if !r.Validator.Valid(c.Title, clean) {
		return nil, nil
	}

	return &stockwire.Record{
		Title:       strings.TrimSpace(c.Title),
		Content:     clean,
		Source:      c.Source,
		ContentHash: xxhash.Sum64String(clean),
	}, nil
}

// logCandidateFailure logs a failed candidate. Access errors get their
// own line since they may indicate a blocked scraper rather than a
// flaky network.
func logCandidateFailure(logger *slog.Logger, c stockwire.Candidate, err error) {
	code := stockwire.ErrorCode(err)
	if code == stockwire.EFORBIDDEN || code == stockwire.ENOTFOUND {
		logger.Warn("access error",
			"source", c.Source,
			"url", c.URL,
			"code", code,
			"error", stockwire.ErrorMessage(err),
		)
		return
	}
	logger.Debug("candidate failed",
		"source", c.Source,
		"url", c.URL,
		"code", code,
		"error", stockwire.ErrorMessage(err),
	)
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
