// Package output renders built documents and capability data for the CLI.
package output

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/rezonia/zugferd/internal/builder"
	"github.com/rezonia/zugferd/internal/profile"
	"github.com/rezonia/zugferd/internal/ram"
)

// Envelope carries a document together with the profile it was built for.
type Envelope struct {
	Profile   profile.Profile           `json:"profile"`
	Guideline string                    `json:"guideline"`
	Document  *ram.CrossIndustryInvoice `json:"document"`
}

// JSONSerializer writes the document graph as JSON.
type JSONSerializer struct {
	Indent bool
}

// Serialize implements builder.Serializer
func (s JSONSerializer) Serialize(ctx context.Context, doc *ram.CrossIndustryInvoice, p profile.Profile) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := Envelope{Profile: p, Guideline: p.URN(), Document: doc}
	if s.Indent {
		return json.MarshalIndent(env, "", "  ")
	}
	return json.Marshal(env)
}

// YAMLSerializer writes the document graph as YAML. Field order follows the
// JSON form.
type YAMLSerializer struct{}

// Serialize implements builder.Serializer
func (YAMLSerializer) Serialize(ctx context.Context, doc *ram.CrossIndustryInvoice, p profile.Profile) ([]byte, error) {
	data, err := JSONSerializer{}.Serialize(ctx, doc, p)
	if err != nil {
		return nil, err
	}
	out, err := yaml.JSONToYAML(data)
	if err != nil {
		return nil, fmt.Errorf("convert document to yaml: %w", err)
	}
	return out, nil
}

// New returns the serializer for a format name.
func New(format string) (builder.Serializer, error) {
	switch format {
	case "json":
		return JSONSerializer{Indent: true}, nil
	case "yaml":
		return YAMLSerializer{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: %v)", format, Formats())
	}
}

// Formats lists the supported format names.
func Formats() []string {
	return []string{"json", "yaml"}
}
