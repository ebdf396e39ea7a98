package main

import (
	"fmt"
	"os"

	"github.com/jonathan/writing-highlighter/internal/annotation"
	"github.com/jonathan/writing-highlighter/internal/config"
	"github.com/jonathan/writing-highlighter/internal/detection"
	"github.com/jonathan/writing-highlighter/internal/logging"
	"github.com/jonathan/writing-highlighter/internal/observability"
)

// loadConfig resolves configuration: defaults, then the optional file, then the environment.
func loadConfig(path string) (config.Config, error) {
	cfg := config.Defaults()
	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadDetector builds the fallback detector, reading a custom lexicon when one is configured.
func loadDetector(path string) (*detection.Detector, error) {
	if path == "" {
		return detection.New(nil), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	defer func() { _ = f.Close() }()

	lex, err := detection.LoadLexicon(f)
	if err != nil {
		return nil, err
	}
	return detection.New(lex), nil
}

// newAnnotator wires an Annotator from configuration.
func newAnnotator(cfg config.Config, logger logging.Logger, metrics *observability.Metrics) (*annotation.Annotator, error) {
	detector, err := loadDetector(cfg.LexiconPath)
	if err != nil {
		return nil, err
	}
	return annotation.New(
		annotation.WithLogger(logger),
		annotation.WithMetrics(metrics),
		annotation.WithDetector(detector),
		annotation.WithPolicy(cfg.Policy()),
		annotation.WithRankOptions(cfg.RankOptions()),
		annotation.WithConcurrency(cfg.Concurrency),
	), nil
}
