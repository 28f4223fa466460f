package normalizer

import (
	"github.com/baditaflorin/go_japanese_text/internal/core/kana"
	"github.com/baditaflorin/go_japanese_text/internal/pool"
	"github.com/baditaflorin/go_japanese_text/internal/ports"
)

// PooledKanaFolder performs the same half-width katakana folding as the core
// transform but reuses pooled rune and builder buffers across calls. The
// lookahead scan needs a materialized rune slice, which is the allocation
// worth pooling on hot paths.
type PooledKanaFolder struct {
	runePool    *pool.RuneBufferPool
	builderPool *pool.StringBuilderPool
}

// NewPooledKanaFolder creates a new pooled kana folding step.
func NewPooledKanaFolder() ports.Step {
	return &PooledKanaFolder{
		runePool:    pool.NewRuneBufferPool(4096),
		builderPool: pool.NewStringBuilderPool(),
	}
}

// Name implements ports.Step.
func (f *PooledKanaFolder) Name() string { return "kana_fold" }

// Normalize folds half-width katakana to full-width, combining voicing marks.
func (f *PooledKanaFolder) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	buf := f.runePool.Get()
	defer f.runePool.Put(buf)
	runes := *buf
	for _, r := range text {
		runes = append(runes, r)
	}
	*buf = runes

	sb := f.builderPool.Get()
	defer f.builderPool.Put(sb)
	sb.Grow(len(text))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if i+1 < len(runes) {
			switch runes[i+1] {
			case 0xFF9E: // ﾞ
				if v, ok := kana.VoicedForm(r); ok {
					sb.WriteRune(v)
					i++
					continue
				}
			case 0xFF9F: // ﾟ
				if v, ok := kana.SemiVoicedForm(r); ok {
					sb.WriteRune(v)
					i++
					continue
				}
			}
		}
		sb.WriteRune(kana.FullWidthForm(r))
	}

	return sb.String()
}
