package annotation

import (
	"github.com/jonathan/writing-highlighter/internal/detection"
	"github.com/jonathan/writing-highlighter/internal/logging"
	"github.com/jonathan/writing-highlighter/internal/observability"
	"github.com/jonathan/writing-highlighter/internal/ranking"
)

// DefaultConcurrency bounds how many criteria are processed at once.
const DefaultConcurrency = 4

// Option configures an Annotator
type Option func(*Annotator)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger logging.Logger) Option {
	return func(a *Annotator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithMetrics records annotation runs on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(a *Annotator) {
		a.metrics = m
	}
}

// WithPolicy sets which fallback categories may render auto-detected evidence.
func WithPolicy(p detection.Policy) Option {
	return func(a *Annotator) {
		a.policy = p
	}
}

// WithRankOptions overrides the heuristic thinning options.
func WithRankOptions(opts ranking.Options) Option {
	return func(a *Annotator) {
		a.rankOpts = opts
	}
}

// WithConcurrency sets how many criteria are processed in parallel. Values below 1 mean 1.
func WithConcurrency(n int) Option {
	return func(a *Annotator) {
		a.concurrency = max(n, 1)
	}
}

// WithDetector replaces the fallback detector, e.g. one built from a custom lexicon.
func WithDetector(d *detection.Detector) Option {
	return func(a *Annotator) {
		if d != nil {
			a.detector = d
		}
	}
}

// With returns a copy of the Annotator with opts applied on top of its settings.
func (a *Annotator) With(opts ...Option) *Annotator {
	cp := *a
	for _, opt := range opts {
		opt(&cp)
	}
	return &cp
}
