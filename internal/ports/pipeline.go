package ports

import (
	"context"
	"github.com/baditaflorin/go_japanese_text/internal/core/domain"
)

// TextPipeline defines the interface for running a full normalization pass over a text.
type TextPipeline interface {
	Normalize(ctx context.Context, text string) domain.Result
}
