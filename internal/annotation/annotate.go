// Package annotation runs the full highlighting pipeline: evidence extraction,
// fallback detection, ranking, location, overlap resolution and rendering.
package annotation

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/writing-highlighter/internal/detection"
	"github.com/jonathan/writing-highlighter/internal/extraction"
	"github.com/jonathan/writing-highlighter/internal/locating"
	"github.com/jonathan/writing-highlighter/internal/logging"
	"github.com/jonathan/writing-highlighter/internal/merging"
	"github.com/jonathan/writing-highlighter/internal/observability"
	"github.com/jonathan/writing-highlighter/internal/parsing"
	"github.com/jonathan/writing-highlighter/internal/ranking"
	"github.com/jonathan/writing-highlighter/internal/rendering"
	"github.com/jonathan/writing-highlighter/internal/types"
)

// Annotator highlights writing samples against scored criteria. It is safe for concurrent use.
type Annotator struct {
	logger      logging.Logger
	metrics     *observability.Metrics
	detector    *detection.Detector
	policy      detection.Policy
	rankOpts    ranking.Options
	concurrency int
}

// Result is the outcome of one annotation run
type Result struct {
	HTML  string
	Spans []types.MergedSpan
	// Candidates holds every ranked candidate in location order, labelled with its criterion.
	Candidates []types.EvidenceCandidate
	Reports    []types.CriterionReport
}

// New creates an Annotator with the default policy and ranking options.
func New(opts ...Option) *Annotator {
	a := &Annotator{
		logger:      logging.NewNop(),
		detector:    detection.New(nil),
		policy:      detection.DefaultPolicy(),
		rankOpts:    ranking.DefaultOptions(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Policy returns the fallback policy in use.
func (a *Annotator) Policy() detection.Policy {
	return a.policy
}

// criterionResult is the evidence gathered for one criterion
type criterionResult struct {
	candidates []types.EvidenceCandidate
	report     types.CriterionReport
}

// Annotate highlights text against records. The only error is ctx cancellation; any
// other problem yields fewer highlights.
func (a *Annotator) Annotate(ctx context.Context, text string, records []types.CriterionRecord) (*Result, error) {
	start := time.Now()
	criteria := parsing.NormalizeCriteria(records)

	if strings.TrimSpace(text) == "" || len(criteria) == 0 {
		return &Result{HTML: rendering.EscapeHTML(text)}, nil
	}

	results := make([]criterionResult, len(criteria))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, c := range criteria {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = a.gather(text, i, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var all []types.EvidenceCandidate
	reports := make([]types.CriterionReport, len(results))
	for i, r := range results {
		all = append(all, r.candidates...)
		reports[i] = r.report
	}
	ranking.Order(all)

	matches := locating.Locate(text, all)
	for _, m := range matches {
		reports[m.CriterionIndex].Matches++
	}

	spans := merging.Merge(matches)
	if err := rendering.CheckSpans(text, spans); err != nil {
		a.logger.Warn("merged spans rejected by renderer", logging.Err(err))
	}
	html := rendering.Render(text, spans)

	a.metrics.ObserveCandidates(all)
	a.metrics.ObserveAnnotation(time.Since(start), len(spans))
	a.logger.Debug("annotation complete",
		logging.Int("criteria", len(criteria)),
		logging.Int("candidates", len(all)),
		logging.Int("matches", len(matches)),
		logging.Int("spans", len(spans)),
		logging.Duration("elapsed", time.Since(start)),
	)

	return &Result{HTML: html, Spans: spans, Candidates: all, Reports: reports}, nil
}

// gather collects and ranks the evidence for one criterion.
func (a *Annotator) gather(text string, idx int, c types.Criterion) criterionResult {
	cat := detection.Classify(c.Name)
	report := types.CriterionReport{Criterion: c.Name, Score: c.Score}
	if cat != detection.CategoryNone {
		report.Category = string(cat)
	}

	cands := extraction.Extract(c.Justification)
	cands = append(cands, extraction.MatchPhrases(c.Justification, text)...)

	if len(cands) == 0 {
		fb := a.detector.Fallback(text, c.Name, a.policy)
		if fb.Withheld {
			report.Withheld = true
			a.metrics.ObserveWithheld(string(fb.Category))
			a.logger.Debug("fallback withheld",
				logging.String("criterion", c.Name),
				logging.String("category", string(fb.Category)),
				logging.Int("findings", len(fb.Findings)),
			)
		}
		cands = fb.Candidates()
	}

	ranked := ranking.Rank(cands, a.rankOpts)
	for i := range ranked {
		ranked[i].Criterion = c.Name
		ranked[i].Score = c.Score
		ranked[i].CriterionIndex = idx
	}
	report.Candidates = len(ranked)

	a.logger.Debug("evidence ranked",
		logging.String("criterion", c.Name),
		logging.Int("score", c.Score),
		logging.Int("candidates", len(ranked)),
	)
	return criterionResult{candidates: ranked, report: report}
}

// AnnotateHTML highlights text with the default Annotator and returns only the markup.
func AnnotateHTML(text string, records []types.CriterionRecord) string {
	res, err := defaultAnnotator.Annotate(context.Background(), text, records)
	if err != nil {
		return rendering.EscapeHTML(text)
	}
	return res.HTML
}

var defaultAnnotator = New()
