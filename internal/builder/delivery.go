package builder

import (
	"time"

	"github.com/rezonia/zugferd/internal/ram"
	"github.com/rezonia/zugferd/internal/udt"
)

// SetSupplyChainEvent sets the actual delivery date. A nil date is a no-op.
func (b *Builder) SetSupplyChainEvent(date *time.Time) *Builder {
	if !b.mutable("SetSupplyChainEvent") {
		return b
	}
	event := &ram.SupplyChainEvent{}
	apply(b, event, ram.EventOccurrenceDateTime, udt.NewDateTime(date))
	apply(b, b.doc.Delivery(), ram.DeliveryEvent, nonEmpty(event))
	return b
}
