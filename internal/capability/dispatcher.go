package capability

import (
	"context"
	"log/slog"

	"github.com/rezonia/zugferd/internal/model"
	"github.com/rezonia/zugferd/internal/profile"
)

// Outcome is the result of one conditional assignment
type Outcome int

const (
	// OutcomeAbsent means the value was nil and nothing happened.
	OutcomeAbsent Outcome = iota
	// OutcomeApplied means the value was written to the node.
	OutcomeApplied
	// OutcomeSkipped means the active profile does not define the field.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "absent"
	}
}

// Skip records a value dropped because the profile lacks the field
type Skip struct {
	Profile profile.Profile `json:"profile"`
	Field   string          `json:"field"`
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithLogger sets the logger that receives skip records at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithStrict turns skips into CapabilityError results.
func WithStrict(strict bool) Option {
	return func(d *Dispatcher) {
		d.strict = strict
	}
}

// Dispatcher performs profile-conditional assignments for one document.
// It is not safe for concurrent use.
type Dispatcher struct {
	mask    Mask
	strict  bool
	logger  *slog.Logger
	skipped []Skip
}

// NewDispatcher creates a dispatcher for profile p
func NewDispatcher(p profile.Profile, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		mask:   MaskFor(p),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Profile returns the active profile
func (d *Dispatcher) Profile() profile.Profile {
	return d.mask.Profile()
}

// Strict reports whether skips are returned as errors
func (d *Dispatcher) Strict() bool {
	return d.strict
}

// Supports reports whether the active profile defines f
func (d *Dispatcher) Supports(f Field) bool {
	return d.mask.Has(f)
}

// Skipped returns the skips recorded so far, oldest first.
func (d *Dispatcher) Skipped() []Skip {
	out := make([]Skip, len(d.skipped))
	copy(out, d.skipped)
	return out
}

// Reset clears the skip log
func (d *Dispatcher) Reset() {
	d.skipped = nil
}

// Apply assigns value to node through capability c.
//
// A nil node is a LogicError whatever the value. A nil value is a no-op.
// If the profile lacks the field the call is skipped; in strict mode the
// skip is also returned as a CapabilityError. Scalar fields keep the last
// written value and list fields keep insertion order.
func Apply[E, V any](d *Dispatcher, node *E, c Capability[E, V], value *V) (Outcome, error) {
	f := c.field
	if node == nil {
		return OutcomeAbsent, model.NewLogicError(f.Node, f.Name)
	}
	if value == nil {
		return OutcomeAbsent, nil
	}
	if !d.mask.Has(f) {
		return OutcomeSkipped, d.skip(f)
	}

	c.assign(node, value)
	return OutcomeApplied, nil
}

func (d *Dispatcher) skip(f Field) error {
	p := d.Profile()
	d.skipped = append(d.skipped, Skip{Profile: p, Field: f.String()})

	if d.logger.Enabled(context.Background(), slog.LevelDebug) {
		d.logger.Debug("field not supported by profile, value dropped",
			"profile", p.String(),
			"field", f.String(),
			"since", f.Since.String(),
		)
	}

	if d.strict {
		return model.NewCapabilityError(p.String(), f.Node, f.Name)
	}
	return nil
}
