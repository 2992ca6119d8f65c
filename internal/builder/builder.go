// Package builder provides the fluent façade that assembles a cross industry
// invoice for one conformance profile.
//
// Every method returns the builder so calls can be chained. Values the active
// profile does not define are dropped by the capability dispatcher, which lets
// one call sequence serve every profile. The first error is kept and turns all
// later mutations into no-ops; check it with Err or Finalize.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/shopspring/decimal"

	"github.com/rezonia/zugferd/internal/capability"
	"github.com/rezonia/zugferd/internal/model"
	"github.com/rezonia/zugferd/internal/profile"
	"github.com/rezonia/zugferd/internal/ram"
	"github.com/rezonia/zugferd/internal/udt"
)

// State is the lifecycle state of a Builder
type State int

const (
	// Building accepts mutations.
	Building State = iota
	// Finalized rejects mutations with model.ErrFinalized.
	Finalized
)

func (s State) String() string {
	if s == Finalized {
		return "finalized"
	}
	return "building"
}

// Builder owns one document graph. It is not safe for concurrent use.
type Builder struct {
	profile    profile.Profile
	logger     *slog.Logger
	strict     bool
	dispatcher *capability.Dispatcher

	doc      *ram.CrossIndustryInvoice
	position *ram.SupplyChainTradeLineItem
	state    State
	err      error

	// amounts follow the invoice currency, taxAmounts the tax currency
	amounts    *udt.CurrencyScope
	taxAmounts *udt.CurrencyScope
	// taxTotal waits for a tax currency when the summation comes first
	summation *ram.MonetarySummation
	taxTotal  decimal.NullDecimal
}

// New creates a builder for profile p with an empty document.
func New(p profile.Profile, opts ...Option) *Builder {
	cfg := &builderConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(cfg)
	}

	b := &Builder{
		profile: p,
		logger:  cfg.logger.With("component", "builder"),
		strict:  cfg.strict,
	}
	b.dispatcher = capability.NewDispatcher(p,
		capability.WithLogger(b.logger),
		capability.WithStrict(cfg.strict),
	)
	return b.InitNewDocument()
}

// InitNewDocument discards the current graph and starts a new one of the same
// profile. The error state and the skip log are cleared as well.
func (b *Builder) InitNewDocument() *Builder {
	b.doc = ram.NewCrossIndustryInvoice(b.profile)
	b.position = nil
	b.amounts = udt.NewCurrencyScope()
	b.taxAmounts = udt.NewCurrencyScope()
	b.summation = nil
	b.taxTotal = decimal.NullDecimal{}
	b.state = Building
	b.err = nil
	b.dispatcher.Reset()

	if !b.profile.Valid() {
		b.err = fmt.Errorf("new document: invalid profile %d", int(b.profile))
	}

	b.logger.Debug("document initialized", "profile", b.profile.String(), "strict", b.strict)
	return b
}

// Profile returns the active profile
func (b *Builder) Profile() profile.Profile {
	return b.profile
}

// State returns the lifecycle state
func (b *Builder) State() State {
	return b.state
}

// Err returns the first error recorded since the document was initialized.
func (b *Builder) Err() error {
	return b.err
}

// Skipped returns the values dropped because the profile lacks their field.
func (b *Builder) Skipped() []capability.Skip {
	return b.dispatcher.Skipped()
}

// Invoice gives read access to the document graph.
func (b *Builder) Invoice() *ram.CrossIndustryInvoice {
	return b.doc
}

// Finalize freezes the document and returns it together with the first
// recorded error.
func (b *Builder) Finalize() (*ram.CrossIndustryInvoice, error) {
	if b.state == Building {
		b.state = Finalized
		b.logger.Debug("document finalized",
			"profile", b.profile.String(),
			"skipped", len(b.dispatcher.Skipped()),
			"error", b.err,
		)
	}
	if b.err != nil {
		return nil, b.err
	}
	return b.doc, nil
}

// Serialize finalizes the document and hands it to s.
func (b *Builder) Serialize(ctx context.Context, s Serializer) ([]byte, error) {
	doc, err := b.Finalize()
	if err != nil {
		return nil, err
	}
	data, err := s.Serialize(ctx, doc, b.profile)
	if err != nil {
		return nil, fmt.Errorf("serialize %s document: %w", b.profile, err)
	}
	return data, nil
}

// mutable reports whether op may change the graph and records ErrFinalized
// when it may not.
func (b *Builder) mutable(op string) bool {
	if b.err != nil {
		return false
	}
	if b.state == Finalized {
		b.fail(fmt.Errorf("%s: %w", op, model.ErrFinalized))
		return false
	}
	return true
}

func (b *Builder) fail(err error) {
	if b.err != nil || err == nil {
		return
	}
	b.err = err
	b.logger.Debug("builder error recorded", "error", err)
}

// require records a RequiredFieldError when value is blank.
func (b *Builder) require(op, field, value string) bool {
	if isBlank(value) {
		b.fail(model.NewRequiredFieldError(op, field))
		return false
	}
	return true
}

// apply routes one assignment through the dispatcher and keeps its error.
func apply[E, V any](b *Builder, node *E, c capability.Capability[E, V], value *V) {
	if b.err != nil {
		return
	}
	if _, err := capability.Apply(b.dispatcher, node, c, value); err != nil {
		b.fail(err)
	}
}

// nonEmpty drops sub nodes that ended up without any value, so an
// unsupported or absent detail never leaves an empty element behind.
func nonEmpty[T any](n *T) *T {
	if n == nil || reflect.ValueOf(n).Elem().IsZero() {
		return nil
	}
	return n
}
