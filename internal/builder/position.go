package builder

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/zugferd/internal/model"
	"github.com/rezonia/zugferd/internal/ram"
	"github.com/rezonia/zugferd/internal/udt"
)

// AddNewPosition starts a new invoice line. Every position setter that
// follows applies to this line.
//
// Profiles without line items drop the line; the setters then act on the
// detached line and leave the document untouched.
func (b *Builder) AddNewPosition(lineID, statusCode, statusReasonCode string) *Builder {
	const op = "AddNewPosition"
	if !b.mutable(op) || !b.require(op, "LineID", lineID) {
		return b
	}

	item := ram.NewLineItem()
	line := item.AssociatedDocumentLineDocument
	apply(b, line, ram.LineDocumentLineID, udt.NewID(lineID, ""))
	apply(b, line, ram.LineDocumentStatusCode, udt.NewCode(statusCode))
	apply(b, line, ram.LineDocumentStatusReasonCode, udt.NewCode(statusReasonCode))

	apply(b, b.doc.SupplyChainTradeTransaction, ram.TransactionLineItem, item)
	b.position = item
	return b
}

// AddDocumentPositionNote appends a note to the current line
func (b *Builder) AddDocumentPositionNote(content, contentCode, subjectCode string) *Builder {
	const op = "AddDocumentPositionNote"
	item := b.currentPosition(op)
	if item == nil || !b.require(op, "Content", content) {
		return b
	}
	apply(b, item.AssociatedDocumentLineDocument, ram.LineDocumentNote, b.note(content, contentCode, subjectCode))
	return b
}

// SetDocumentPositionProductDetails describes the product of the current line
func (b *Builder) SetDocumentPositionProductDetails(d ProductDetails) *Builder {
	const op = "SetDocumentPositionProductDetails"
	item := b.currentPosition(op)
	if item == nil || !b.require(op, "Name", d.Name) {
		return b
	}
	product := item.SpecifiedTradeProduct
	apply(b, product, ram.ProductGlobalID, udt.NewID(d.GlobalID, d.GlobalIDScheme))
	apply(b, product, ram.ProductSellerAssignedID, udt.NewID(d.SellerAssignedID, ""))
	apply(b, product, ram.ProductBuyerAssignedID, udt.NewID(d.BuyerAssignedID, ""))
	apply(b, product, ram.ProductName, udt.NewText(d.Name))
	apply(b, product, ram.ProductDescription, udt.NewText(d.Description))
	return b
}

// AddDocumentPositionReferencedProduct appends a sub product to the current
// line's product.
func (b *Builder) AddDocumentPositionReferencedProduct(p ReferencedProduct) *Builder {
	const op = "AddDocumentPositionReferencedProduct"
	item := b.currentPosition(op)
	if item == nil || !b.require(op, "Name", p.Name) {
		return b
	}
	ref := &ram.ReferencedProduct{}
	apply(b, ref, ram.ReferencedProductGlobalID, udt.NewID(p.GlobalID, p.GlobalIDScheme))
	apply(b, ref, ram.ReferencedProductSellerAssignedID, udt.NewID(p.SellerAssignedID, ""))
	apply(b, ref, ram.ReferencedProductBuyerAssignedID, udt.NewID(p.BuyerAssignedID, ""))
	apply(b, ref, ram.ReferencedProductName, udt.NewText(p.Name))
	apply(b, ref, ram.ReferencedProductDescription, udt.NewText(p.Description))
	apply(b, ref, ram.ReferencedProductUnitQuantity, udt.NewQuantity(p.UnitQuantity, p.UnitCode))
	apply(b, item.SpecifiedTradeProduct, ram.ProductReferencedProduct, nonEmpty(ref))
	return b
}

// SetDocumentPositionNetPrice sets the net unit price of the current line
func (b *Builder) SetDocumentPositionNetPrice(amount decimal.Decimal, basisQuantity decimal.NullDecimal, unitCode string) *Builder {
	item := b.currentPosition("SetDocumentPositionNetPrice")
	if item == nil {
		return b
	}
	apply(b, item.SpecifiedLineTradeAgreement, ram.LineAgreementNetPrice, b.tradePrice(amount, basisQuantity, unitCode))
	return b
}

// SetDocumentPositionGrossPrice sets the gross unit price of the current line
func (b *Builder) SetDocumentPositionGrossPrice(amount decimal.Decimal, basisQuantity decimal.NullDecimal, unitCode string) *Builder {
	item := b.currentPosition("SetDocumentPositionGrossPrice")
	if item == nil {
		return b
	}
	apply(b, item.SpecifiedLineTradeAgreement, ram.LineAgreementGrossPrice, b.tradePrice(amount, basisQuantity, unitCode))
	return b
}

// SetDocumentPositionQuantity sets the billed quantity of the current line
func (b *Builder) SetDocumentPositionQuantity(quantity decimal.Decimal, unitCode string) *Builder {
	item := b.currentPosition("SetDocumentPositionQuantity")
	if item == nil {
		return b
	}
	apply(b, item.SpecifiedLineTradeDelivery, ram.LineDeliveryBilledQuantity,
		udt.NewQuantity(decimal.NewNullDecimal(quantity), unitCode))
	return b
}

// AddDocumentPositionTax appends a tax entry to the current line
func (b *Builder) AddDocumentPositionTax(categoryCode, typeCode string, ratePercent decimal.NullDecimal) *Builder {
	const op = "AddDocumentPositionTax"
	item := b.currentPosition(op)
	if item == nil {
		return b
	}
	if !b.require(op, "CategoryCode", categoryCode) || !b.require(op, "TypeCode", typeCode) {
		return b
	}
	tax := &ram.TradeTax{}
	apply(b, tax, ram.TaxTypeCode, udt.NewCode(typeCode))
	apply(b, tax, ram.TaxCategoryCode, udt.NewCode(categoryCode))
	apply(b, tax, ram.TaxRateApplicablePercent, udt.NewPercent(ratePercent))
	apply(b, item.SpecifiedLineTradeSettlement, ram.LineSettlementTax, nonEmpty(tax))
	return b
}

// SetDocumentPositionBillingPeriod sets the invoicing period of the current line
func (b *Builder) SetDocumentPositionBillingPeriod(start, end *time.Time) *Builder {
	item := b.currentPosition("SetDocumentPositionBillingPeriod")
	if item == nil {
		return b
	}
	apply(b, item.SpecifiedLineTradeSettlement, ram.LineSettlementBillingPeriod, udt.NewPeriod(start, end))
	return b
}

// SetDocumentPositionLineSummation sets the net total of the current line
func (b *Builder) SetDocumentPositionLineSummation(lineTotal decimal.Decimal, totalAllowanceCharge decimal.NullDecimal) *Builder {
	item := b.currentPosition("SetDocumentPositionLineSummation")
	if item == nil {
		return b
	}
	sum := &ram.LineMonetarySummation{}
	apply(b, sum, ram.LineSummationTotal, b.requiredAmount(lineTotal))
	apply(b, sum, ram.LineSummationAllowanceCharge, b.amount(totalAllowanceCharge))
	apply(b, item.SpecifiedLineTradeSettlement, ram.LineSettlementSummation, nonEmpty(sum))
	return b
}

// currentPosition returns the line started by AddNewPosition. Calling a
// position setter before any line exists is a LogicError.
func (b *Builder) currentPosition(op string) *ram.SupplyChainTradeLineItem {
	if !b.mutable(op) {
		return nil
	}
	if b.position == nil {
		b.fail(model.NewLogicError("SupplyChainTradeLineItem", op))
		return nil
	}
	return b.position
}

func (b *Builder) tradePrice(amount decimal.Decimal, basisQuantity decimal.NullDecimal, unitCode string) *ram.TradePrice {
	price := &ram.TradePrice{}
	apply(b, price, ram.PriceChargeAmount, udt.NewPrice(decimal.NewNullDecimal(amount), ""))
	apply(b, price, ram.PriceBasisQuantity, udt.NewQuantity(basisQuantity, unitCode))
	return nonEmpty(price)
}
