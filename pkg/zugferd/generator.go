package zugferd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rezonia/zugferd/internal/builder"
	"github.com/rezonia/zugferd/internal/docspec"
	"github.com/rezonia/zugferd/internal/output"
)

// GeneratorOptions configures document generation from descriptions
type GeneratorOptions struct {
	// Profile overrides the profile named in each description
	Profile string
	// Strict rejects descriptions that carry values the profile cannot hold
	Strict bool
	// Format is the output format, json or yaml
	Format string
	Logger *slog.Logger
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Format: "json",
	}
}

// Result holds one generated document
type Result struct {
	Profile  Profile
	Document []byte
	// Skipped lists the values the profile dropped, in call order
	Skipped []Skip
}

// Generator turns YAML document descriptions into serialized documents
type Generator struct {
	options    GeneratorOptions
	serializer Serializer
}

// NewGenerator creates a generator with the given options
func NewGenerator(opts GeneratorOptions) (*Generator, error) {
	if opts.Format == "" {
		opts.Format = "json"
	}
	s, err := output.New(opts.Format)
	if err != nil {
		return nil, err
	}
	return &Generator{options: opts, serializer: s}, nil
}

// Generate reads one description from r and returns the serialized document
func (g *Generator) Generate(ctx context.Context, r io.Reader) (*Result, error) {
	d, err := docspec.Load(r)
	if err != nil {
		return nil, err
	}
	return g.generate(ctx, d)
}

// GenerateFile reads a description file. Attachments resolve relative to it.
func (g *Generator) GenerateFile(ctx context.Context, path string) (*Result, error) {
	d, err := docspec.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return g.generate(ctx, d)
}

// GenerateBatch generates several descriptions concurrently. Results keep
// input order; the first error cancels the remaining work.
func (g *Generator) GenerateBatch(ctx context.Context, inputs []io.Reader) ([]*Result, error) {
	results := make([]*Result, len(inputs))
	group, ctx := errgroup.WithContext(ctx)

	for i, input := range inputs {
		group.Go(func() error {
			result, err := g.Generate(ctx, input)
			if err != nil {
				return fmt.Errorf("description %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (g *Generator) generate(ctx context.Context, d *docspec.Description) (*Result, error) {
	opts := []builder.Option{builder.WithStrict(g.options.Strict)}
	if g.options.Logger != nil {
		opts = append(opts, builder.WithLogger(g.options.Logger))
	}

	b, err := d.Build(g.options.Profile, opts...)
	if err != nil {
		return nil, err
	}
	data, err := b.Serialize(ctx, g.serializer)
	if err != nil {
		return nil, err
	}

	return &Result{
		Profile:  b.Profile(),
		Document: data,
		Skipped:  b.Skipped(),
	}, nil
}
