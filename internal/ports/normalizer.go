package ports

// Normalizer defines the interface for a single text normalization strategy.
type Normalizer interface {
	Normalize(text string) string
}

// Step is a named Normalizer. Pipelines use the name when logging and when
// reporting which transformations were applied.
type Step interface {
	Normalizer
	Name() string
}
