package ram

import (
	"github.com/rezonia/zugferd/internal/capability"
	"github.com/rezonia/zugferd/internal/profile"
	"github.com/rezonia/zugferd/internal/udt"
)

// SupplyChainTradeLineItem is one invoice position. Its sub nodes are
// created together with the position.
type SupplyChainTradeLineItem struct {
	AssociatedDocumentLineDocument *DocumentLineDocument
	SpecifiedTradeProduct          *TradeProduct
	SpecifiedLineTradeAgreement    *LineTradeAgreement
	SpecifiedLineTradeDelivery     *LineTradeDelivery
	SpecifiedLineTradeSettlement   *LineTradeSettlement
}

// NewLineItem creates an empty position
func NewLineItem() *SupplyChainTradeLineItem {
	return &SupplyChainTradeLineItem{
		AssociatedDocumentLineDocument: &DocumentLineDocument{},
		SpecifiedTradeProduct:          &TradeProduct{},
		SpecifiedLineTradeAgreement:    &LineTradeAgreement{},
		SpecifiedLineTradeDelivery:     &LineTradeDelivery{},
		SpecifiedLineTradeSettlement:   &LineTradeSettlement{},
	}
}

type DocumentLineDocument struct {
	LineID               *udt.ID   `json:",omitempty"`
	LineStatusCode       *udt.Code `json:",omitempty"`
	LineStatusReasonCode *udt.Code `json:",omitempty"`
	IncludedNote         []*Note   `json:",omitempty"`
}

type TradeProduct struct {
	GlobalID                  *udt.ID              `json:",omitempty"`
	SellerAssignedID          *udt.ID              `json:",omitempty"`
	BuyerAssignedID           *udt.ID              `json:",omitempty"`
	Name                      *udt.Text            `json:",omitempty"`
	Description               *udt.Text            `json:",omitempty"`
	IncludedReferencedProduct []*ReferencedProduct `json:",omitempty"`
}

type ReferencedProduct struct {
	GlobalID         *udt.ID       `json:",omitempty"`
	SellerAssignedID *udt.ID       `json:",omitempty"`
	BuyerAssignedID  *udt.ID       `json:",omitempty"`
	Name             *udt.Text     `json:",omitempty"`
	Description      *udt.Text     `json:",omitempty"`
	UnitQuantity     *udt.Quantity `json:",omitempty"`
}

type LineTradeAgreement struct {
	GrossPriceProductTradePrice *TradePrice `json:",omitempty"`
	NetPriceProductTradePrice   *TradePrice `json:",omitempty"`
}

type TradePrice struct {
	ChargeAmount  *udt.Amount   `json:",omitempty"`
	BasisQuantity *udt.Quantity `json:",omitempty"`
}

type LineTradeDelivery struct {
	BilledQuantity *udt.Quantity `json:",omitempty"`
}

type LineTradeSettlement struct {
	ApplicableTradeTax                            []*TradeTax            `json:",omitempty"`
	BillingSpecifiedPeriod                        *udt.Period            `json:",omitempty"`
	SpecifiedTradeSettlementLineMonetarySummation *LineMonetarySummation `json:",omitempty"`
}

type LineMonetarySummation struct {
	LineTotalAmount            *udt.Amount `json:",omitempty"`
	TotalAllowanceChargeAmount *udt.Amount `json:",omitempty"`
}

var (
	LineDocumentLineID = capability.Scalar("DocumentLineDocument", "LineID", profile.Basic,
		func(n *DocumentLineDocument, v *udt.ID) { n.LineID = v })
	LineDocumentStatusCode = capability.Scalar("DocumentLineDocument", "LineStatusCode", profile.Extended,
		func(n *DocumentLineDocument, v *udt.Code) { n.LineStatusCode = v })
	LineDocumentStatusReasonCode = capability.Scalar("DocumentLineDocument", "LineStatusReasonCode", profile.Extended,
		func(n *DocumentLineDocument, v *udt.Code) { n.LineStatusReasonCode = v })
	LineDocumentNote = capability.List("DocumentLineDocument", "IncludedNote", profile.Basic,
		func(n *DocumentLineDocument, v *Note) { n.IncludedNote = append(n.IncludedNote, v) })
)

var (
	ProductGlobalID = capability.Scalar("TradeProduct", "GlobalID", profile.Basic,
		func(n *TradeProduct, v *udt.ID) { n.GlobalID = v })
	ProductSellerAssignedID = capability.Scalar("TradeProduct", "SellerAssignedID", profile.EN16931,
		func(n *TradeProduct, v *udt.ID) { n.SellerAssignedID = v })
	ProductBuyerAssignedID = capability.Scalar("TradeProduct", "BuyerAssignedID", profile.EN16931,
		func(n *TradeProduct, v *udt.ID) { n.BuyerAssignedID = v })
	ProductName = capability.Scalar("TradeProduct", "Name", profile.Basic,
		func(n *TradeProduct, v *udt.Text) { n.Name = v })
	ProductDescription = capability.Scalar("TradeProduct", "Description", profile.EN16931,
		func(n *TradeProduct, v *udt.Text) { n.Description = v })
	ProductReferencedProduct = capability.List("TradeProduct", "IncludedReferencedProduct", profile.Extended,
		func(n *TradeProduct, v *ReferencedProduct) {
			n.IncludedReferencedProduct = append(n.IncludedReferencedProduct, v)
		})
)

var (
	ReferencedProductGlobalID = capability.Scalar("ReferencedProduct", "GlobalID", profile.Extended,
		func(n *ReferencedProduct, v *udt.ID) { n.GlobalID = v })
	ReferencedProductSellerAssignedID = capability.Scalar("ReferencedProduct", "SellerAssignedID", profile.Extended,
		func(n *ReferencedProduct, v *udt.ID) { n.SellerAssignedID = v })
	ReferencedProductBuyerAssignedID = capability.Scalar("ReferencedProduct", "BuyerAssignedID", profile.Extended,
		func(n *ReferencedProduct, v *udt.ID) { n.BuyerAssignedID = v })
	ReferencedProductName = capability.Scalar("ReferencedProduct", "Name", profile.Extended,
		func(n *ReferencedProduct, v *udt.Text) { n.Name = v })
	ReferencedProductDescription = capability.Scalar("ReferencedProduct", "Description", profile.Extended,
		func(n *ReferencedProduct, v *udt.Text) { n.Description = v })
	ReferencedProductUnitQuantity = capability.Scalar("ReferencedProduct", "UnitQuantity", profile.Extended,
		func(n *ReferencedProduct, v *udt.Quantity) { n.UnitQuantity = v })
)

var (
	LineAgreementGrossPrice = capability.Scalar("LineTradeAgreement", "GrossPriceProductTradePrice", profile.Basic,
		func(n *LineTradeAgreement, v *TradePrice) { n.GrossPriceProductTradePrice = v })
	LineAgreementNetPrice = capability.Scalar("LineTradeAgreement", "NetPriceProductTradePrice", profile.Basic,
		func(n *LineTradeAgreement, v *TradePrice) { n.NetPriceProductTradePrice = v })
	PriceChargeAmount = capability.Scalar("TradePrice", "ChargeAmount", profile.Basic,
		func(n *TradePrice, v *udt.Amount) { n.ChargeAmount = v })
	PriceBasisQuantity = capability.Scalar("TradePrice", "BasisQuantity", profile.Basic,
		func(n *TradePrice, v *udt.Quantity) { n.BasisQuantity = v })
	LineDeliveryBilledQuantity = capability.Scalar("LineTradeDelivery", "BilledQuantity", profile.Basic,
		func(n *LineTradeDelivery, v *udt.Quantity) { n.BilledQuantity = v })
)

var (
	LineSettlementTax = capability.List("LineTradeSettlement", "ApplicableTradeTax", profile.Basic,
		func(n *LineTradeSettlement, v *TradeTax) { n.ApplicableTradeTax = append(n.ApplicableTradeTax, v) })
	LineSettlementBillingPeriod = capability.Scalar("LineTradeSettlement", "BillingSpecifiedPeriod", profile.EN16931,
		func(n *LineTradeSettlement, v *udt.Period) { n.BillingSpecifiedPeriod = v })
	LineSettlementSummation = capability.Scalar("LineTradeSettlement", "SpecifiedTradeSettlementLineMonetarySummation", profile.Basic,
		func(n *LineTradeSettlement, v *LineMonetarySummation) {
			n.SpecifiedTradeSettlementLineMonetarySummation = v
		})
	LineSummationTotal = capability.Scalar("LineMonetarySummation", "LineTotalAmount", profile.Basic,
		func(n *LineMonetarySummation, v *udt.Amount) { n.LineTotalAmount = v })
	LineSummationAllowanceCharge = capability.Scalar("LineMonetarySummation", "TotalAllowanceChargeAmount", profile.Extended,
		func(n *LineMonetarySummation, v *udt.Amount) { n.TotalAllowanceChargeAmount = v })
)
