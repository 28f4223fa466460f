// Package analyzer reports the script composition of a text.
package analyzer

import (
	"context"

	"github.com/baditaflorin/go_japanese_text/internal/adapters/logger"
	"github.com/baditaflorin/go_japanese_text/internal/core/classify"
	"github.com/baditaflorin/go_japanese_text/internal/core/domain"
	"github.com/baditaflorin/go_japanese_text/internal/ports"
	"github.com/baditaflorin/l"
)

// Analyzer tallies character types and names the dominant category.
type Analyzer struct {
	logger ports.Logger
}

// Option defines a functional option for configuring an Analyzer.
type Option func(*config)

type config struct {
	logger ports.Logger
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger.FromExisting(lg)
	}
}

// New creates a new Analyzer.
func New(opts ...Option) (*Analyzer, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		var err error
		cfg.logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	return &Analyzer{logger: cfg.logger}, nil
}

// Analyze scans the text once and returns the per-category tally together
// with the dominant category. Ties go to the category listed first in the
// counting priority order; empty input has no dominant category.
func (a *Analyzer) Analyze(ctx context.Context, text string) domain.Analysis {
	a.logger.Debug("Starting analysis", "input", text)

	details := make(map[string]interface{})

	select {
	case <-ctx.Done():
		a.logger.Error("Analysis cancelled", "error", ctx.Err())
		details["error"] = "analysis cancelled"
		return domain.Analysis{Details: details}
	default:
	}

	counts := classify.Count(text)
	total := counts.Total()

	buckets := []struct {
		name  string
		count int
	}{
		{"hiragana", counts.Hiragana},
		{"katakana", counts.Katakana},
		{"half_width_katakana", counts.HalfWidthKatakana},
		{"kanji", counts.Kanji},
		{"ascii", counts.ASCII},
		{"full_width", counts.FullWidth},
		{"other", counts.Other},
	}

	dominant := ""
	max := 0
	for _, b := range buckets {
		if b.count > max {
			dominant = b.name
			max = b.count
		}
		details[b.name] = b.count
	}

	a.logger.Debug("Analysis complete",
		"total", total,
		"dominant", dominant,
	)

	return domain.Analysis{
		Counts:   counts,
		Total:    total,
		Dominant: dominant,
		Details:  details,
	}
}
