package builder

import (
	"context"
	"io"
	"log/slog"

	"github.com/rezonia/zugferd/internal/profile"
	"github.com/rezonia/zugferd/internal/ram"
)

type builderConfig struct {
	logger *slog.Logger
	strict bool
}

// Option configures a Builder
type Option func(*builderConfig)

// WithLogger sets the logger for lifecycle and skip records
func WithLogger(logger *slog.Logger) Option {
	return func(c *builderConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStrict reports values the profile cannot hold as errors instead of
// dropping them.
func WithStrict(strict bool) Option {
	return func(c *builderConfig) {
		c.strict = strict
	}
}

// Serializer turns a finalized document into its wire form.
type Serializer interface {
	Serialize(ctx context.Context, doc *ram.CrossIndustryInvoice, p profile.Profile) ([]byte, error)
}

// SerializerFunc adapts a function to Serializer
type SerializerFunc func(ctx context.Context, doc *ram.CrossIndustryInvoice, p profile.Profile) ([]byte, error)

func (f SerializerFunc) Serialize(ctx context.Context, doc *ram.CrossIndustryInvoice, p profile.Profile) ([]byte, error) {
	return f(ctx, doc, p)
}

// Embedder combines a serialized document with a visual source document into
// a hybrid container such as PDF/A-3.
type Embedder interface {
	Embed(ctx context.Context, xml []byte, source io.Reader, dst io.Writer) error
}
