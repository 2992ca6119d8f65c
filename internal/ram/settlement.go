package ram

import (
	"github.com/rezonia/zugferd/internal/capability"
	"github.com/rezonia/zugferd/internal/profile"
	"github.com/rezonia/zugferd/internal/udt"
)

// HeaderTradeSettlement holds currencies, payment data, taxes and totals.
type HeaderTradeSettlement struct {
	CreditorReferenceID                             *udt.ID            `json:",omitempty"`
	PaymentReference                                *udt.ID            `json:",omitempty"`
	TaxCurrencyCode                                 *udt.ID            `json:",omitempty"`
	InvoiceCurrencyCode                             *udt.ID            `json:",omitempty"`
	InvoicerTradeParty                              *TradeParty        `json:",omitempty"`
	InvoiceeTradeParty                              *TradeParty        `json:",omitempty"`
	PayeeTradeParty                                 *TradeParty        `json:",omitempty"`
	SpecifiedTradeSettlementPaymentMeans            []*PaymentMeans    `json:",omitempty"`
	ApplicableTradeTax                              []*TradeTax        `json:",omitempty"`
	BillingSpecifiedPeriod                          *udt.Period        `json:",omitempty"`
	SpecifiedTradePaymentTerms                      []*PaymentTerms    `json:",omitempty"`
	SpecifiedTradeSettlementHeaderMonetarySummation *MonetarySummation `json:",omitempty"`
}

type PaymentMeans struct {
	TypeCode                                   *udt.Code                     `json:",omitempty"`
	Information                                *udt.Text                     `json:",omitempty"`
	ApplicableTradeSettlementFinancialCard     *FinancialCard                `json:",omitempty"`
	PayerPartyDebtorFinancialAccount           *DebtorFinancialAccount       `json:",omitempty"`
	PayeePartyCreditorFinancialAccount         *CreditorFinancialAccount     `json:",omitempty"`
	PayeeSpecifiedCreditorFinancialInstitution *CreditorFinancialInstitution `json:",omitempty"`
}

type FinancialCard struct {
	ID             *udt.ID   `json:",omitempty"`
	CardholderName *udt.Text `json:",omitempty"`
}

type DebtorFinancialAccount struct {
	IBANID *udt.ID `json:",omitempty"`
}

type CreditorFinancialAccount struct {
	IBANID        *udt.ID   `json:",omitempty"`
	AccountName   *udt.Text `json:",omitempty"`
	ProprietaryID *udt.ID   `json:",omitempty"`
}

type CreditorFinancialInstitution struct {
	BICID *udt.ID `json:",omitempty"`
}

// TradeTax is one tax breakdown entry of the document or of a line.
type TradeTax struct {
	CalculatedAmount           *udt.Amount   `json:",omitempty"`
	TypeCode                   *udt.Code     `json:",omitempty"`
	ExemptionReason            *udt.Text     `json:",omitempty"`
	BasisAmount                *udt.Amount   `json:",omitempty"`
	LineTotalBasisAmount       *udt.Amount   `json:",omitempty"`
	AllowanceChargeBasisAmount *udt.Amount   `json:",omitempty"`
	CategoryCode               *udt.Code     `json:",omitempty"`
	ExemptionReasonCode        *udt.Code     `json:",omitempty"`
	TaxPointDate               *udt.DateTime `json:",omitempty"`
	DueDateTypeCode            *udt.Code     `json:",omitempty"`
	RateApplicablePercent      *udt.Percent  `json:",omitempty"`
}

type PaymentTerms struct {
	Description                        *udt.Text            `json:",omitempty"`
	DueDateDateTime                    *udt.DateTime        `json:",omitempty"`
	DirectDebitMandateID               *udt.ID              `json:",omitempty"`
	PartialPaymentAmount               *udt.Amount          `json:",omitempty"`
	ApplicableTradePaymentPenaltyTerms *PaymentPenaltyTerms `json:",omitempty"`
}

// PaymentPenaltyTerms describes late payment charges.
type PaymentPenaltyTerms struct {
	BasisDateTime       *udt.DateTime `json:",omitempty"`
	BasisPeriodMeasure  *udt.Quantity `json:",omitempty"`
	BasisAmount         *udt.Amount   `json:",omitempty"`
	CalculationPercent  *udt.Percent  `json:",omitempty"`
	ActualPenaltyAmount *udt.Amount   `json:",omitempty"`
}

type MonetarySummation struct {
	LineTotalAmount      *udt.Amount   `json:",omitempty"`
	ChargeTotalAmount    *udt.Amount   `json:",omitempty"`
	AllowanceTotalAmount *udt.Amount   `json:",omitempty"`
	TaxBasisTotalAmount  *udt.Amount   `json:",omitempty"`
	TaxTotalAmount       []*udt.Amount `json:",omitempty"`
	RoundingAmount       *udt.Amount   `json:",omitempty"`
	GrandTotalAmount     *udt.Amount   `json:",omitempty"`
	TotalPrepaidAmount   *udt.Amount   `json:",omitempty"`
	DuePayableAmount     *udt.Amount   `json:",omitempty"`
}

var (
	SettlementCreditorReferenceID = capability.Scalar("HeaderTradeSettlement", "CreditorReferenceID", profile.BasicWL,
		func(n *HeaderTradeSettlement, v *udt.ID) { n.CreditorReferenceID = v })
	SettlementPaymentReference = capability.Scalar("HeaderTradeSettlement", "PaymentReference", profile.BasicWL,
		func(n *HeaderTradeSettlement, v *udt.ID) { n.PaymentReference = v })
	SettlementTaxCurrency = capability.Scalar("HeaderTradeSettlement", "TaxCurrencyCode", profile.BasicWL,
		func(n *HeaderTradeSettlement, v *udt.ID) { n.TaxCurrencyCode = v })
	SettlementInvoiceCurrency = capability.Scalar("HeaderTradeSettlement", "InvoiceCurrencyCode", profile.Minimum,
		func(n *HeaderTradeSettlement, v *udt.ID) { n.InvoiceCurrencyCode = v })
	SettlementInvoicer = capability.Scalar("HeaderTradeSettlement", "InvoicerTradeParty", profile.Extended,
		func(n *HeaderTradeSettlement, v *TradeParty) { n.InvoicerTradeParty = v })
	SettlementInvoicee = capability.Scalar("HeaderTradeSettlement", "InvoiceeTradeParty", profile.Extended,
		func(n *HeaderTradeSettlement, v *TradeParty) { n.InvoiceeTradeParty = v })
	SettlementPayee = capability.Scalar("HeaderTradeSettlement", "PayeeTradeParty", profile.BasicWL,
		func(n *HeaderTradeSettlement, v *TradeParty) { n.PayeeTradeParty = v })
	SettlementPaymentMeans = capability.List("HeaderTradeSettlement", "SpecifiedTradeSettlementPaymentMeans", profile.BasicWL,
		func(n *HeaderTradeSettlement, v *PaymentMeans) {
			n.SpecifiedTradeSettlementPaymentMeans = append(n.SpecifiedTradeSettlementPaymentMeans, v)
		})
	SettlementTax = capability.List("HeaderTradeSettlement", "ApplicableTradeTax", profile.BasicWL,
		func(n *HeaderTradeSettlement, v *TradeTax) { n.ApplicableTradeTax = append(n.ApplicableTradeTax, v) })
	SettlementBillingPeriod = capability.Scalar("HeaderTradeSettlement", "BillingSpecifiedPeriod", profile.BasicWL,
		func(n *HeaderTradeSettlement, v *udt.Period) { n.BillingSpecifiedPeriod = v })
	SettlementPaymentTerms = capability.List("HeaderTradeSettlement", "SpecifiedTradePaymentTerms", profile.BasicWL,
		func(n *HeaderTradeSettlement, v *PaymentTerms) {
			n.SpecifiedTradePaymentTerms = append(n.SpecifiedTradePaymentTerms, v)
		})
	SettlementSummation = capability.Scalar("HeaderTradeSettlement", "SpecifiedTradeSettlementHeaderMonetarySummation", profile.Minimum,
		func(n *HeaderTradeSettlement, v *MonetarySummation) {
			n.SpecifiedTradeSettlementHeaderMonetarySummation = v
		})
)

var (
	PaymentMeansTypeCode = capability.Scalar("PaymentMeans", "TypeCode", profile.BasicWL,
		func(n *PaymentMeans, v *udt.Code) { n.TypeCode = v })
	PaymentMeansInformation = capability.Scalar("PaymentMeans", "Information", profile.EN16931,
		func(n *PaymentMeans, v *udt.Text) { n.Information = v })
	PaymentMeansCard = capability.Scalar("PaymentMeans", "ApplicableTradeSettlementFinancialCard", profile.EN16931,
		func(n *PaymentMeans, v *FinancialCard) { n.ApplicableTradeSettlementFinancialCard = v })
	PaymentMeansDebtorAccount = capability.Scalar("PaymentMeans", "PayerPartyDebtorFinancialAccount", profile.BasicWL,
		func(n *PaymentMeans, v *DebtorFinancialAccount) { n.PayerPartyDebtorFinancialAccount = v })
	PaymentMeansCreditorAccount = capability.Scalar("PaymentMeans", "PayeePartyCreditorFinancialAccount", profile.BasicWL,
		func(n *PaymentMeans, v *CreditorFinancialAccount) { n.PayeePartyCreditorFinancialAccount = v })
	PaymentMeansCreditorInstitution = capability.Scalar("PaymentMeans", "PayeeSpecifiedCreditorFinancialInstitution", profile.EN16931,
		func(n *PaymentMeans, v *CreditorFinancialInstitution) { n.PayeeSpecifiedCreditorFinancialInstitution = v })
)

var (
	CardID = capability.Scalar("FinancialCard", "ID", profile.EN16931,
		func(n *FinancialCard, v *udt.ID) { n.ID = v })
	CardholderName = capability.Scalar("FinancialCard", "CardholderName", profile.EN16931,
		func(n *FinancialCard, v *udt.Text) { n.CardholderName = v })
	DebtorAccountIBAN = capability.Scalar("DebtorFinancialAccount", "IBANID", profile.BasicWL,
		func(n *DebtorFinancialAccount, v *udt.ID) { n.IBANID = v })
	CreditorAccountIBAN = capability.Scalar("CreditorFinancialAccount", "IBANID", profile.BasicWL,
		func(n *CreditorFinancialAccount, v *udt.ID) { n.IBANID = v })
	CreditorAccountName = capability.Scalar("CreditorFinancialAccount", "AccountName", profile.EN16931,
		func(n *CreditorFinancialAccount, v *udt.Text) { n.AccountName = v })
	CreditorAccountProprietaryID = capability.Scalar("CreditorFinancialAccount", "ProprietaryID", profile.BasicWL,
		func(n *CreditorFinancialAccount, v *udt.ID) { n.ProprietaryID = v })
	CreditorInstitutionBIC = capability.Scalar("CreditorFinancialInstitution", "BICID", profile.EN16931,
		func(n *CreditorFinancialInstitution, v *udt.ID) { n.BICID = v })
)

var (
	TaxCalculatedAmount = capability.Scalar("TradeTax", "CalculatedAmount", profile.BasicWL,
		func(n *TradeTax, v *udt.Amount) { n.CalculatedAmount = v })
	TaxTypeCode = capability.Scalar("TradeTax", "TypeCode", profile.BasicWL,
		func(n *TradeTax, v *udt.Code) { n.TypeCode = v })
	TaxExemptionReason = capability.Scalar("TradeTax", "ExemptionReason", profile.BasicWL,
		func(n *TradeTax, v *udt.Text) { n.ExemptionReason = v })
	TaxBasisAmount = capability.Scalar("TradeTax", "BasisAmount", profile.BasicWL,
		func(n *TradeTax, v *udt.Amount) { n.BasisAmount = v })
	TaxLineTotalBasisAmount = capability.Scalar("TradeTax", "LineTotalBasisAmount", profile.Extended,
		func(n *TradeTax, v *udt.Amount) { n.LineTotalBasisAmount = v })
	TaxAllowanceChargeBasisAmount = capability.Scalar("TradeTax", "AllowanceChargeBasisAmount", profile.Extended,
		func(n *TradeTax, v *udt.Amount) { n.AllowanceChargeBasisAmount = v })
	TaxCategoryCode = capability.Scalar("TradeTax", "CategoryCode", profile.BasicWL,
		func(n *TradeTax, v *udt.Code) { n.CategoryCode = v })
	TaxExemptionReasonCode = capability.Scalar("TradeTax", "ExemptionReasonCode", profile.BasicWL,
		func(n *TradeTax, v *udt.Code) { n.ExemptionReasonCode = v })
	TaxPointDate = capability.Scalar("TradeTax", "TaxPointDate", profile.BasicWL,
		func(n *TradeTax, v *udt.DateTime) { n.TaxPointDate = v })
	TaxDueDateTypeCode = capability.Scalar("TradeTax", "DueDateTypeCode", profile.BasicWL,
		func(n *TradeTax, v *udt.Code) { n.DueDateTypeCode = v })
	TaxRateApplicablePercent = capability.Scalar("TradeTax", "RateApplicablePercent", profile.BasicWL,
		func(n *TradeTax, v *udt.Percent) { n.RateApplicablePercent = v })
)

var (
	TermsDescription = capability.Scalar("PaymentTerms", "Description", profile.BasicWL,
		func(n *PaymentTerms, v *udt.Text) { n.Description = v })
	TermsDueDate = capability.Scalar("PaymentTerms", "DueDateDateTime", profile.BasicWL,
		func(n *PaymentTerms, v *udt.DateTime) { n.DueDateDateTime = v })
	TermsDirectDebitMandateID = capability.Scalar("PaymentTerms", "DirectDebitMandateID", profile.BasicWL,
		func(n *PaymentTerms, v *udt.ID) { n.DirectDebitMandateID = v })
	TermsPartialPaymentAmount = capability.Scalar("PaymentTerms", "PartialPaymentAmount", profile.Extended,
		func(n *PaymentTerms, v *udt.Amount) { n.PartialPaymentAmount = v })
	TermsPenalty = capability.Scalar("PaymentTerms", "ApplicableTradePaymentPenaltyTerms", profile.Extended,
		func(n *PaymentTerms, v *PaymentPenaltyTerms) { n.ApplicableTradePaymentPenaltyTerms = v })
)

var (
	PenaltyBasisDateTime = capability.Scalar("PaymentPenaltyTerms", "BasisDateTime", profile.Extended,
		func(n *PaymentPenaltyTerms, v *udt.DateTime) { n.BasisDateTime = v })
	PenaltyBasisPeriodMeasure = capability.Scalar("PaymentPenaltyTerms", "BasisPeriodMeasure", profile.Extended,
		func(n *PaymentPenaltyTerms, v *udt.Quantity) { n.BasisPeriodMeasure = v })
	PenaltyBasisAmount = capability.Scalar("PaymentPenaltyTerms", "BasisAmount", profile.Extended,
		func(n *PaymentPenaltyTerms, v *udt.Amount) { n.BasisAmount = v })
	PenaltyCalculationPercent = capability.Scalar("PaymentPenaltyTerms", "CalculationPercent", profile.Extended,
		func(n *PaymentPenaltyTerms, v *udt.Percent) { n.CalculationPercent = v })
	PenaltyActualAmount = capability.Scalar("PaymentPenaltyTerms", "ActualPenaltyAmount", profile.Extended,
		func(n *PaymentPenaltyTerms, v *udt.Amount) { n.ActualPenaltyAmount = v })
)

var (
	SummationLineTotal = capability.Scalar("MonetarySummation", "LineTotalAmount", profile.BasicWL,
		func(n *MonetarySummation, v *udt.Amount) { n.LineTotalAmount = v })
	SummationChargeTotal = capability.Scalar("MonetarySummation", "ChargeTotalAmount", profile.BasicWL,
		func(n *MonetarySummation, v *udt.Amount) { n.ChargeTotalAmount = v })
	SummationAllowanceTotal = capability.Scalar("MonetarySummation", "AllowanceTotalAmount", profile.BasicWL,
		func(n *MonetarySummation, v *udt.Amount) { n.AllowanceTotalAmount = v })
	SummationTaxBasisTotal = capability.Scalar("MonetarySummation", "TaxBasisTotalAmount", profile.Minimum,
		func(n *MonetarySummation, v *udt.Amount) { n.TaxBasisTotalAmount = v })
	SummationTaxTotal = capability.List("MonetarySummation", "TaxTotalAmount", profile.Minimum,
		func(n *MonetarySummation, v *udt.Amount) { n.TaxTotalAmount = append(n.TaxTotalAmount, v) })
	SummationRounding = capability.Scalar("MonetarySummation", "RoundingAmount", profile.EN16931,
		func(n *MonetarySummation, v *udt.Amount) { n.RoundingAmount = v })
	SummationGrandTotal = capability.Scalar("MonetarySummation", "GrandTotalAmount", profile.Minimum,
		func(n *MonetarySummation, v *udt.Amount) { n.GrandTotalAmount = v })
	SummationTotalPrepaid = capability.Scalar("MonetarySummation", "TotalPrepaidAmount", profile.BasicWL,
		func(n *MonetarySummation, v *udt.Amount) { n.TotalPrepaidAmount = v })
	SummationDuePayable = capability.Scalar("MonetarySummation", "DuePayableAmount", profile.Minimum,
		func(n *MonetarySummation, v *udt.Amount) { n.DuePayableAmount = v })
)
