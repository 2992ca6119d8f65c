package ram

import (
	"github.com/rezonia/zugferd/internal/capability"
	"github.com/rezonia/zugferd/internal/profile"
	"github.com/rezonia/zugferd/internal/udt"
)

// HeaderTradeDelivery holds where and when the goods or services went.
type HeaderTradeDelivery struct {
	ShipToTradeParty                  *TradeParty         `json:",omitempty"`
	UltimateShipToTradeParty          *TradeParty         `json:",omitempty"`
	ShipFromTradeParty                *TradeParty         `json:",omitempty"`
	ActualDeliverySupplyChainEvent    *SupplyChainEvent   `json:",omitempty"`
	DespatchAdviceReferencedDocument  *ReferencedDocument `json:",omitempty"`
	ReceivingAdviceReferencedDocument *ReferencedDocument `json:",omitempty"`
	DeliveryNoteReferencedDocument    *ReferencedDocument `json:",omitempty"`
}

type SupplyChainEvent struct {
	OccurrenceDateTime *udt.DateTime `json:",omitempty"`
}

var (
	DeliveryShipTo = capability.Scalar("HeaderTradeDelivery", "ShipToTradeParty", profile.BasicWL,
		func(n *HeaderTradeDelivery, v *TradeParty) { n.ShipToTradeParty = v })
	DeliveryUltimateShipTo = capability.Scalar("HeaderTradeDelivery", "UltimateShipToTradeParty", profile.Extended,
		func(n *HeaderTradeDelivery, v *TradeParty) { n.UltimateShipToTradeParty = v })
	DeliveryShipFrom = capability.Scalar("HeaderTradeDelivery", "ShipFromTradeParty", profile.Extended,
		func(n *HeaderTradeDelivery, v *TradeParty) { n.ShipFromTradeParty = v })
	DeliveryEvent = capability.Scalar("HeaderTradeDelivery", "ActualDeliverySupplyChainEvent", profile.BasicWL,
		func(n *HeaderTradeDelivery, v *SupplyChainEvent) { n.ActualDeliverySupplyChainEvent = v })
	DeliveryDespatchAdvice = capability.Scalar("HeaderTradeDelivery", "DespatchAdviceReferencedDocument", profile.BasicWL,
		func(n *HeaderTradeDelivery, v *ReferencedDocument) { n.DespatchAdviceReferencedDocument = v })
	DeliveryReceivingAdvice = capability.Scalar("HeaderTradeDelivery", "ReceivingAdviceReferencedDocument", profile.EN16931,
		func(n *HeaderTradeDelivery, v *ReferencedDocument) { n.ReceivingAdviceReferencedDocument = v })
	DeliveryNote = capability.Scalar("HeaderTradeDelivery", "DeliveryNoteReferencedDocument", profile.Extended,
		func(n *HeaderTradeDelivery, v *ReferencedDocument) { n.DeliveryNoteReferencedDocument = v })
)

var EventOccurrenceDateTime = capability.Scalar("SupplyChainEvent", "OccurrenceDateTime", profile.BasicWL,
	func(n *SupplyChainEvent, v *udt.DateTime) { n.OccurrenceDateTime = v })
