package builder

import (
	"time"

	"github.com/shopspring/decimal"

	money "github.com/rezonia/zugferd/internal/decimal"
	"github.com/rezonia/zugferd/internal/ram"
	"github.com/rezonia/zugferd/internal/udt"
)

// AddPaymentMeans appends a payment means with its optional card, accounts
// and institution.
func (b *Builder) AddPaymentMeans(pm PaymentMeans) *Builder {
	const op = "AddPaymentMeans"
	if !b.mutable(op) || !b.require(op, "TypeCode", pm.TypeCode) {
		return b
	}

	card := &ram.FinancialCard{}
	apply(b, card, ram.CardID, udt.NewID(pm.CardID, pm.CardScheme))
	apply(b, card, ram.CardholderName, udt.NewText(pm.CardholderName))

	debtor := &ram.DebtorFinancialAccount{}
	apply(b, debtor, ram.DebtorAccountIBAN, udt.NewID(pm.DebtorIBAN, ""))

	creditor := &ram.CreditorFinancialAccount{}
	apply(b, creditor, ram.CreditorAccountIBAN, udt.NewID(pm.CreditorIBAN, ""))
	apply(b, creditor, ram.CreditorAccountName, udt.NewText(pm.CreditorAccountName))
	apply(b, creditor, ram.CreditorAccountProprietaryID, udt.NewID(pm.CreditorProprietaryID, ""))

	institution := &ram.CreditorFinancialInstitution{}
	apply(b, institution, ram.CreditorInstitutionBIC, udt.NewID(pm.CreditorBIC, ""))

	means := &ram.PaymentMeans{}
	apply(b, means, ram.PaymentMeansTypeCode, udt.NewCode(pm.TypeCode))
	apply(b, means, ram.PaymentMeansInformation, udt.NewText(pm.Information))
	apply(b, means, ram.PaymentMeansCard, nonEmpty(card))
	apply(b, means, ram.PaymentMeansDebtorAccount, nonEmpty(debtor))
	apply(b, means, ram.PaymentMeansCreditorAccount, nonEmpty(creditor))
	apply(b, means, ram.PaymentMeansCreditorInstitution, nonEmpty(institution))

	apply(b, b.doc.Settlement(), ram.SettlementPaymentMeans, means)
	return b
}

// AddDocumentTax appends an entry to the document tax breakdown.
func (b *Builder) AddDocumentTax(t Tax) *Builder {
	const op = "AddDocumentTax"
	if !b.mutable(op) {
		return b
	}
	tax := b.tradeTax(op, t)
	if b.err != nil {
		return b
	}
	apply(b, b.doc.Settlement(), ram.SettlementTax, tax)
	return b
}

// AddDocumentTaxSimple appends a tax entry from plain numbers. A nil rate
// leaves the rate unset.
func (b *Builder) AddDocumentTaxSimple(categoryCode, typeCode string, basisAmount, calculatedAmount float64, ratePercent *float64) *Builder {
	return b.AddDocumentTax(Tax{
		CategoryCode:     categoryCode,
		TypeCode:         typeCode,
		BasisAmount:      decimal.NewFromFloat(basisAmount),
		CalculatedAmount: decimal.NewFromFloat(calculatedAmount),
		RatePercent:      money.FromFloatPtr(ratePercent),
	})
}

// SetDocumentBillingPeriod sets the invoicing period. It is a no-op when both
// bounds are nil.
func (b *Builder) SetDocumentBillingPeriod(start, end *time.Time) *Builder {
	if !b.mutable("SetDocumentBillingPeriod") {
		return b
	}
	apply(b, b.doc.Settlement(), ram.SettlementBillingPeriod, udt.NewPeriod(start, end))
	return b
}

// AddPaymentTerm appends payment terms, optionally with penalty terms.
func (b *Builder) AddPaymentTerm(pt PaymentTerm) *Builder {
	if !b.mutable("AddPaymentTerm") {
		return b
	}

	terms := &ram.PaymentTerms{}
	apply(b, terms, ram.TermsDescription, udt.NewText(pt.Description))
	apply(b, terms, ram.TermsDueDate, udt.NewDateTime(pt.DueDate))
	apply(b, terms, ram.TermsDirectDebitMandateID, udt.NewID(pt.DirectDebitMandateID, ""))
	apply(b, terms, ram.TermsPartialPaymentAmount, b.amount(pt.PartialPaymentAmount))
	if pt.Penalty != nil {
		apply(b, terms, ram.TermsPenalty, b.penaltyTerms(*pt.Penalty))
	}

	apply(b, b.doc.Settlement(), ram.SettlementPaymentTerms, nonEmpty(terms))
	return b
}

// SetDocumentSummation sets the document totals. GrandTotal and DuePayable
// are required. The tax total in tax currency is added once a tax currency
// is set, before or after this call.
func (b *Builder) SetDocumentSummation(s Summation) *Builder {
	const op = "SetDocumentSummation"
	if !b.mutable(op) {
		return b
	}
	if !s.GrandTotal.Valid {
		return b.requireFailed(op, "GrandTotal")
	}
	if !s.DuePayable.Valid {
		return b.requireFailed(op, "DuePayable")
	}

	sum := &ram.MonetarySummation{}
	apply(b, sum, ram.SummationLineTotal, b.amount(s.LineTotal))
	apply(b, sum, ram.SummationChargeTotal, b.amount(s.ChargeTotal))
	apply(b, sum, ram.SummationAllowanceTotal, b.amount(s.AllowanceTotal))
	apply(b, sum, ram.SummationTaxBasisTotal, b.amount(s.TaxBasisTotal))
	apply(b, sum, ram.SummationTaxTotal, b.amounts.TaggedAmount(s.TaxTotal))
	apply(b, sum, ram.SummationRounding, b.amount(s.Rounding))
	apply(b, sum, ram.SummationGrandTotal, b.amount(s.GrandTotal))
	apply(b, sum, ram.SummationTotalPrepaid, b.amount(s.TotalPrepaid))
	apply(b, sum, ram.SummationDuePayable, b.amount(s.DuePayable))

	b.summation = sum
	b.taxTotal = s.TaxTotalTaxCurrency
	if b.doc.Settlement().TaxCurrencyCode != nil {
		b.attachTaxCurrencyTotal()
	}

	apply(b, b.doc.Settlement(), ram.SettlementSummation, sum)
	return b
}

// attachTaxCurrencyTotal adds the pending tax total in tax currency to the
// last summation. It runs at most once per summation.
func (b *Builder) attachTaxCurrencyTotal() {
	if b.summation == nil || !b.taxTotal.Valid {
		return
	}
	apply(b, b.summation, ram.SummationTaxTotal, b.taxAmounts.TaggedAmount(b.taxTotal))
	b.taxTotal = decimal.NullDecimal{}
}

func (b *Builder) tradeTax(op string, t Tax) *ram.TradeTax {
	if !b.require(op, "CategoryCode", t.CategoryCode) || !b.require(op, "TypeCode", t.TypeCode) {
		return nil
	}

	tax := &ram.TradeTax{}
	apply(b, tax, ram.TaxCalculatedAmount, b.requiredAmount(t.CalculatedAmount))
	apply(b, tax, ram.TaxTypeCode, udt.NewCode(t.TypeCode))
	apply(b, tax, ram.TaxExemptionReason, udt.NewText(t.ExemptionReason))
	apply(b, tax, ram.TaxBasisAmount, b.requiredAmount(t.BasisAmount))
	apply(b, tax, ram.TaxLineTotalBasisAmount, b.amount(t.LineTotalBasisAmount))
	apply(b, tax, ram.TaxAllowanceChargeBasisAmount, b.amount(t.AllowanceChargeBasisAmount))
	apply(b, tax, ram.TaxCategoryCode, udt.NewCode(t.CategoryCode))
	apply(b, tax, ram.TaxExemptionReasonCode, udt.NewCode(t.ExemptionReasonCode))
	apply(b, tax, ram.TaxPointDate, udt.NewDateTime(t.TaxPointDate))
	apply(b, tax, ram.TaxDueDateTypeCode, udt.NewCode(t.DueDateTypeCode))
	apply(b, tax, ram.TaxRateApplicablePercent, udt.NewPercent(t.RatePercent))
	return tax
}

func (b *Builder) penaltyTerms(p PenaltyTerms) *ram.PaymentPenaltyTerms {
	penalty := &ram.PaymentPenaltyTerms{}
	apply(b, penalty, ram.PenaltyBasisDateTime, udt.NewDateTime(p.BasisDate))
	apply(b, penalty, ram.PenaltyBasisPeriodMeasure, udt.NewQuantity(p.BasisPeriod, p.BasisPeriodUnit))
	apply(b, penalty, ram.PenaltyBasisAmount, b.amount(p.BasisAmount))
	apply(b, penalty, ram.PenaltyCalculationPercent, udt.NewPercent(p.CalculationPercent))
	apply(b, penalty, ram.PenaltyActualAmount, b.amount(p.ActualAmount))
	return nonEmpty(penalty)
}

// amount wraps an untagged amount scaled to the invoice currency, whenever
// that currency is set.
func (b *Builder) amount(v decimal.NullDecimal) *udt.Amount {
	return b.amounts.Amount(v)
}

func (b *Builder) requiredAmount(v decimal.Decimal) *udt.Amount {
	return b.amounts.Amount(decimal.NewNullDecimal(v))
}
