package ai

import "context"

// Describer produces a short textual description of an image, suitable for
// alt text. The accessibility stage calls it only when an image has neither
// existing alt text nor a caption; implementations that cannot describe the
// image should return an empty string so the caller falls back to its fixed
// type-based defaults.
type Describer interface {
	Describe(ctx context.Context, imagePath string) (string, error)
}

// Noop is the default Describer: it never supplies a description, so the
// accessibility stage always uses its built-in fallbacks.
type Noop struct{}

func (Noop) Describe(ctx context.Context, imagePath string) (string, error) { return "", nil }
