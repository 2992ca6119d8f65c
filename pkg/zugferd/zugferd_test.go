package zugferd_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/zugferd/pkg/zugferd"
)

const description = `
profile: EN16931
document:
  number: RE-1
  type_code: "380"
  date: "2026-03-09"
  currency: EUR
  notes:
    - content: Thanks
seller:
  name: Acme
buyer:
  name: Globex
`

func TestNewBuilder(t *testing.T) {
	doc, err := zugferd.New(zugferd.EN16931).
		SetDocumentInformation(zugferd.DocumentInformation{
			Number:   "RE-1",
			TypeCode: "380",
			Date:     time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			Currency: "EUR",
		}).
		SetSeller(zugferd.PartyDetails{Name: "Acme"}).
		Finalize()
	require.NoError(t, err)
	require.NotNil(t, doc)
}

func TestFinalizedBuilderRejectsChanges(t *testing.T) {
	b := zugferd.New(zugferd.Basic)
	_, err := b.Finalize()
	require.NoError(t, err)
	assert.Equal(t, zugferd.Finalized, b.State())

	b.SetSeller(zugferd.PartyDetails{Name: "Acme"})
	assert.ErrorIs(t, b.Err(), zugferd.ErrFinalized)
}

func TestParseProfile(t *testing.T) {
	p, err := zugferd.ParseProfile("basic wl")
	require.NoError(t, err)
	assert.Equal(t, zugferd.BasicWL, p)

	_, err = zugferd.ParseProfile("gold")
	assert.Error(t, err)
}

func TestProfilesAndFields(t *testing.T) {
	assert.Len(t, zugferd.Profiles(), 6)
	assert.Less(t, len(zugferd.Fields(zugferd.Minimum)), len(zugferd.Fields(zugferd.Extended)))

	for _, f := range zugferd.Fields(zugferd.Minimum) {
		assert.True(t, zugferd.Supports(zugferd.Extended, f), f.String())
	}
}

func TestDefaultGeneratorOptions(t *testing.T) {
	opts := zugferd.DefaultGeneratorOptions()
	assert.Equal(t, "json", opts.Format)
	assert.False(t, opts.Strict)
	assert.Empty(t, opts.Profile)
}

func TestNewGeneratorUnknownFormat(t *testing.T) {
	_, err := zugferd.NewGenerator(zugferd.GeneratorOptions{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")
}

func TestGenerate(t *testing.T) {
	gen, err := zugferd.NewGenerator(zugferd.DefaultGeneratorOptions())
	require.NoError(t, err)

	result, err := gen.Generate(context.Background(), strings.NewReader(description))
	require.NoError(t, err)

	assert.Equal(t, zugferd.EN16931, result.Profile)
	assert.Empty(t, result.Skipped)
	assert.Contains(t, string(result.Document), `"profile": "EN16931"`)
	assert.Contains(t, string(result.Document), "Globex")
}

func TestGenerateProfileOverride(t *testing.T) {
	opts := zugferd.DefaultGeneratorOptions()
	opts.Profile = "minimum"
	gen, err := zugferd.NewGenerator(opts)
	require.NoError(t, err)

	result, err := gen.Generate(context.Background(), strings.NewReader(description))
	require.NoError(t, err)

	assert.Equal(t, zugferd.Minimum, result.Profile)
	assert.NotEmpty(t, result.Skipped)
	assert.NotContains(t, string(result.Document), "Thanks")
}

func TestGenerateStrict(t *testing.T) {
	gen, err := zugferd.NewGenerator(zugferd.GeneratorOptions{Profile: "MINIMUM", Strict: true})
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), strings.NewReader(description))
	require.Error(t, err)

	var capErr *zugferd.CapabilityError
	assert.True(t, errors.As(err, &capErr))
}

func TestGenerateYAML(t *testing.T) {
	gen, err := zugferd.NewGenerator(zugferd.GeneratorOptions{Format: "yaml"})
	require.NoError(t, err)

	result, err := gen.Generate(context.Background(), strings.NewReader(description))
	require.NoError(t, err)
	assert.Contains(t, string(result.Document), "profile: EN16931")
}

func TestGenerateFile(t *testing.T) {
	gen, err := zugferd.NewGenerator(zugferd.DefaultGeneratorOptions())
	require.NoError(t, err)

	path := filepath.Join("..", "..", "internal", "docspec", "testdata", "invoice.yaml")
	result, err := gen.GenerateFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, zugferd.EN16931, result.Profile)
	assert.Contains(t, string(result.Document), "text/csv")
}

func TestGenerateBatch(t *testing.T) {
	gen, err := zugferd.NewGenerator(zugferd.DefaultGeneratorOptions())
	require.NoError(t, err)

	inputs := []io.Reader{
		strings.NewReader(description),
		strings.NewReader(strings.Replace(description, "RE-1", "RE-2", 1)),
		strings.NewReader(strings.Replace(description, "RE-1", "RE-3", 1)),
	}
	results, err := gen.GenerateBatch(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, want := range []string{"RE-1", "RE-2", "RE-3"} {
		assert.Contains(t, string(results[i].Document), want)
	}
}

func TestGenerateBatchError(t *testing.T) {
	gen, err := zugferd.NewGenerator(zugferd.DefaultGeneratorOptions())
	require.NoError(t, err)

	inputs := []io.Reader{
		strings.NewReader(description),
		strings.NewReader("profile: EN16931\nbogus: true\n"),
	}
	_, err = gen.GenerateBatch(context.Background(), inputs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description 1")
}
