// Package pipeline composes the individual text transformations into a
// configurable, ordered normalization pass.
package pipeline

import (
	"context"

	"github.com/baditaflorin/go_japanese_text/internal/adapters/logger"
	"github.com/baditaflorin/go_japanese_text/internal/adapters/normalizer"
	"github.com/baditaflorin/go_japanese_text/internal/core/classify"
	"github.com/baditaflorin/go_japanese_text/internal/core/domain"
	"github.com/baditaflorin/go_japanese_text/internal/ports"
	"github.com/baditaflorin/go_japanese_text/internal/warmup"
	"github.com/baditaflorin/l"
)

// Pipeline applies an ordered list of normalization steps to a text and
// reports what changed.
type Pipeline struct {
	steps  []ports.Step
	logger ports.Logger
	warmed bool
}

// Option defines a functional option for configuring a Pipeline.
type Option func(*config)

type config struct {
	steps        []ports.Step
	logger       ports.Logger
	warmUp       bool
	warmUpConfig warmup.Config
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger.FromExisting(lg)
	}
}

// WithSteps sets the built-in steps to apply, in order.
func WithSteps(stepTypes ...normalizer.StepType) Option {
	return func(cfg *config) {
		factory := normalizer.NewStepFactory()
		for _, t := range stepTypes {
			cfg.steps = append(cfg.steps, factory.Create(t))
		}
	}
}

// WithStep appends a custom step.
func WithStep(step ports.Step) Option {
	return func(cfg *config) {
		cfg.steps = append(cfg.steps, step)
	}
}

// WithOptimizedWhitespace appends the pooled single-pass whitespace step.
func WithOptimizedWhitespace() Option {
	return func(cfg *config) {
		cfg.steps = append(cfg.steps, normalizer.NewOptimizedWhitespace())
	}
}

// WithPooledKanaFold appends the pooled half-width katakana folding step.
func WithPooledKanaFold() Option {
	return func(cfg *config) {
		cfg.steps = append(cfg.steps, normalizer.NewPooledKanaFolder())
	}
}

// WithWarmUp enables warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.warmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(c warmup.Config) Option {
	return func(cfg *config) {
		cfg.warmUpConfig = c
		cfg.warmUp = true
	}
}

// New creates a new Pipeline. Without WithSteps the pipeline runs the
// canonicalization order used for search indexing: fold half-width katakana,
// unify prolonged-sound marks, expand iteration marks, collapse whitespace.
func New(opts ...Option) (*Pipeline, error) {
	cfg := &config{
		warmUpConfig: warmup.DefaultConfig(),
	}
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

	if len(cfg.steps) == 0 {
		factory := normalizer.NewStepFactory()
		cfg.steps = []ports.Step{
			factory.Create(normalizer.KanaFoldStep),
			factory.Create(normalizer.ProlongedSoundStep),
			factory.Create(normalizer.IterationMarkStep),
			factory.Create(normalizer.WhitespaceStep),
		}
	}

	p := &Pipeline{
		steps:  cfg.steps,
		logger: cfg.logger,
	}

	if cfg.warmUp {
		p.WarmUp(context.Background(), cfg.warmUpConfig)
	}

	return p, nil
}

// Normalize runs every step in order and returns the result together with
// before/after character-type tallies.
func (p *Pipeline) Normalize(ctx context.Context, text string) domain.Result {
	p.logger.Debug("Starting normalization", "input", text, "steps", len(p.steps))

	details := make(map[string]interface{})
	before := classify.Count(text)

	output := text
	applied := make([]string, 0, len(p.steps))
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Error("Normalization cancelled", "error", ctx.Err(), "completed_steps", applied)
			details["error"] = "normalization cancelled"
			return domain.Result{
				Input:   text,
				Output:  output,
				Steps:   applied,
				Before:  before,
				After:   classify.Count(output),
				Details: details,
			}
		default:
		}

		output = step.Normalize(output)
		applied = append(applied, step.Name())
	}

	after := classify.Count(output)
	details["input_runes"] = before.Total()
	details["output_runes"] = after.Total()

	p.logger.Debug("Normalization complete",
		"output", output,
		"applied", applied,
	)

	return domain.Result{
		Input:   text,
		Output:  output,
		Steps:   applied,
		Before:  before,
		After:   after,
		Details: details,
	}
}

// WarmUp runs warm-up passes over the pipeline and its steps.
func (p *Pipeline) WarmUp(ctx context.Context, config warmup.Config) {
	if p.warmed {
		p.logger.Debug("Already warmed up, skipping")
		return
	}

	mgr := warmup.NewManager(p.logger, config)
	for _, step := range p.steps {
		mgr.RegisterNormalizer(step)
	}
	mgr.RegisterPipeline(p)

	mgr.WarmUp(ctx)
	p.warmed = true
}
