package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_japanese_text/internal/ports"
)

// Config defines configuration for warming up normalizers and pipelines
// before serving traffic.
type Config struct {
	// Number of concurrent warmup routines to run.
	Concurrency int
	// Number of iterations per routine.
	Iterations int
	// Approximate sample text size in runes.
	SampleTextSize int
	// Warmup duration (0 means no time limit).
	Duration time.Duration
	// Whether to perform GC after warmup.
	ForceGC bool
}

// DefaultConfig returns the default warmup configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency:    runtime.NumCPU(),
		Iterations:     1000,
		SampleTextSize: 1000,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Manager runs warmup passes over registered components so lookup tables,
// pools and branch predictors are hot before the first real call.
type Manager struct {
	logger      ports.Logger
	normalizers []ports.Normalizer
	pipelines   []ports.TextPipeline
	config      Config
}

// NewManager creates a new warmup manager.
func NewManager(logger ports.Logger, config Config) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterNormalizer adds a normalizer to be warmed up.
func (m *Manager) RegisterNormalizer(n ports.Normalizer) {
	m.normalizers = append(m.normalizers, n)
}

// RegisterPipeline adds a pipeline to be warmed up.
func (m *Manager) RegisterPipeline(p ports.TextPipeline) {
	m.pipelines = append(m.pipelines, p)
}

// WarmUp runs the warmup process for all registered components.
func (m *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	m.logger.Info("Starting warmup",
		"components", len(m.normalizers)+len(m.pipelines),
		"concurrency", m.config.Concurrency,
		"iterations", m.config.Iterations,
	)

	warmupCtx := ctx
	if m.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, m.config.Duration)
		defer cancel()
	}

	sample := sampleText(m.config.SampleTextSize)

	m.warmUpNormalizers(warmupCtx, sample)
	m.warmUpPipelines(warmupCtx, sample)

	if m.config.ForceGC {
		m.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	m.logger.Info("Warmup completed", "duration", time.Since(startTime))
}

func (m *Manager) warmUpNormalizers(ctx context.Context, sample string) {
	if len(m.normalizers) == 0 {
		return
	}
	m.logger.Debug("Warming up normalizers", "count", len(m.normalizers))

	var wg sync.WaitGroup
	for i := 0; i < m.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < m.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				for _, n := range m.normalizers {
					_ = n.Normalize(sample)
				}
			}
		}()
	}
	wg.Wait()
}

func (m *Manager) warmUpPipelines(ctx context.Context, sample string) {
	if len(m.pipelines) == 0 {
		return
	}
	m.logger.Debug("Warming up pipelines", "count", len(m.pipelines))

	var wg sync.WaitGroup
	for i := 0; i < m.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Fewer iterations for full pipelines.
			for j := 0; j < m.config.Iterations/10; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				for _, p := range m.pipelines {
					_ = p.Normalize(ctx, sample)
				}
			}
		}()
	}
	wg.Wait()
}

// sampleText generates mixed-script Japanese sample text of roughly the
// given rune count, exercising every transformation path.
func sampleText(size int) string {
	fragments := []string{
		"ＡＢＣ１２３",
		"Hello World",
		"カタカナ",
		"こんにちは",
		"ｷﾞｮｳｻﾞ",
		"ﾊﾟｿｺﾝ",
		"コ〜ヒ〜",
		"いろゝ",
		"漢字混じり　テキスト",
	}

	var sb strings.Builder
	runes := 0
	for i := 0; runes < size; i++ {
		fragment := fragments[i%len(fragments)]
		sb.WriteString(fragment)
		sb.WriteByte(' ')
		runes += len([]rune(fragment)) + 1
	}
	return sb.String()
}
