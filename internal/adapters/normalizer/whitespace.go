package normalizer

import (
	"unicode"

	"github.com/baditaflorin/go_japanese_text/internal/core/whitespace"
	"github.com/baditaflorin/go_japanese_text/internal/pool"
	"github.com/baditaflorin/go_japanese_text/internal/ports"
)

// DefaultWhitespace implements the two-phase whitespace normalization from
// the core package as a named step.
type DefaultWhitespace struct{}

// NewDefaultWhitespace creates a new default whitespace normalizer.
func NewDefaultWhitespace() ports.Step {
	return DefaultWhitespace{}
}

// Name implements ports.Step.
func (DefaultWhitespace) Name() string { return "whitespace" }

// Normalize collapses all whitespace to single ASCII spaces.
func (DefaultWhitespace) Normalize(text string) string {
	return whitespace.Normalize(text)
}

// OptimizedWhitespace produces the same output as DefaultWhitespace in a
// single pass, with a pre-computed ASCII decision table and pooled buffers.
type OptimizedWhitespace struct {
	// asciiSpace marks ASCII bytes that count as whitespace.
	asciiSpace [128]bool

	bytePool *pool.BufferPool
}

// NewOptimizedWhitespace creates a new optimized whitespace normalizer.
func NewOptimizedWhitespace() ports.Step {
	n := &OptimizedWhitespace{
		bytePool: pool.NewBufferPool(8192),
	}
	for i := 0; i < 128; i++ {
		n.asciiSpace[i] = unicode.IsSpace(rune(i))
	}
	return n
}

// Name implements ports.Step.
func (n *OptimizedWhitespace) Name() string { return "whitespace" }

// Normalize collapses whitespace runs and trims the ends in one scan.
// Leading runs are skipped by starting in the pending-space state with an
// empty buffer; a trailing run is dropped because the pending space is only
// written once a non-space rune follows it.
func (n *OptimizedWhitespace) Normalize(text string) string {
	if len(text) == 0 {
		return ""
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)
	if cap(*buffer) < len(text) {
		*buffer = make([]byte, 0, len(text))
	}
	*buffer = (*buffer)[:0]

	pendingSpace := false
	for _, r := range text {
		isSpace := false
		if r < 128 {
			isSpace = n.asciiSpace[r]
		} else {
			isSpace = unicode.IsSpace(r) || r == 0x3000
		}

		if isSpace {
			if len(*buffer) > 0 {
				pendingSpace = true
			}
			continue
		}
		if pendingSpace {
			*buffer = append(*buffer, ' ')
			pendingSpace = false
		}
		if r < 128 {
			*buffer = append(*buffer, byte(r))
		} else {
			*buffer = append(*buffer, []byte(string(r))...)
		}
	}

	return string(*buffer)
}
