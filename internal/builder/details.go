package builder

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DocumentInformation is the document header. Number, TypeCode, Date and
// Currency are required.
type DocumentInformation struct {
	Number   string
	TypeCode string
	Date     time.Time
	Currency string
	Name     string
	// Language is a BCP 47 tag; empty adds no language entry.
	Language      string
	EffectiveDate *time.Time
}

// PartyDetails describes any trade party. Only Name is required.
type PartyDetails struct {
	Name              string
	ID                string
	GlobalID          string
	GlobalIDScheme    string
	Description       string
	Address           Address
	LegalOrganization LegalOrganization
	Contact           Contact
	ElectronicAddress string
	// ElectronicAddressScheme is an EAS code such as EM or 0204.
	ElectronicAddressScheme string
	TaxRegistrations        []TaxRegistration
}

type Address struct {
	LineOne     string
	LineTwo     string
	LineThree   string
	Postcode    string
	City        string
	Country     string
	SubDivision string
}

type LegalOrganization struct {
	ID          string
	Scheme      string
	TradingName string
}

type Contact struct {
	PersonName     string
	DepartmentName string
	Phone          string
	Fax            string
	Email          string
}

// TaxRegistration pairs a scheme (VA for VAT, FC for a local tax number) with
// the registered number.
type TaxRegistration struct {
	Scheme string
	ID     string
}

// ReferencedDocument describes an additional supporting document.
type ReferencedDocument struct {
	IssuerAssignedID  string
	URIID             string
	LineID            string
	TypeCode          string
	Names             []string
	ReferenceTypeCode string
	IssueDate         *time.Time
	Attachment        *Attachment
}

// Attachment is embedded into the referenced document as a binary object.
type Attachment struct {
	Filename string
	Data     []byte
}

// PaymentMeans describes one way of paying. TypeCode is required.
type PaymentMeans struct {
	TypeCode              string
	Information           string
	CardScheme            string
	CardID                string
	CardholderName        string
	DebtorIBAN            string
	CreditorIBAN          string
	CreditorAccountName   string
	CreditorProprietaryID string
	CreditorBIC           string
}

// Tax is one entry of the tax breakdown. CategoryCode and TypeCode are
// required.
type Tax struct {
	CategoryCode               string
	TypeCode                   string
	BasisAmount                decimal.Decimal
	CalculatedAmount           decimal.Decimal
	RatePercent                decimal.NullDecimal
	ExemptionReason            string
	ExemptionReasonCode        string
	LineTotalBasisAmount       decimal.NullDecimal
	AllowanceChargeBasisAmount decimal.NullDecimal
	TaxPointDate               *time.Time
	DueDateTypeCode            string
}

type PaymentTerm struct {
	Description          string
	DueDate              *time.Time
	DirectDebitMandateID string
	PartialPaymentAmount decimal.NullDecimal
	Penalty              *PenaltyTerms
}

// PenaltyTerms describes late payment charges. BasisPeriod is measured in
// BasisPeriodUnit (UN/ECE rec 20, e.g. DAY).
type PenaltyTerms struct {
	BasisDate          *time.Time
	BasisPeriod        decimal.NullDecimal
	BasisPeriodUnit    string
	BasisAmount        decimal.NullDecimal
	CalculationPercent decimal.NullDecimal
	ActualAmount       decimal.NullDecimal
}

// Summation holds the document totals. Tax totals are tagged with the
// invoice currency and the tax currency respectively.
type Summation struct {
	GrandTotal          decimal.NullDecimal
	DuePayable          decimal.NullDecimal
	LineTotal           decimal.NullDecimal
	ChargeTotal         decimal.NullDecimal
	AllowanceTotal      decimal.NullDecimal
	TaxBasisTotal       decimal.NullDecimal
	TaxTotal            decimal.NullDecimal
	TaxTotalTaxCurrency decimal.NullDecimal
	Rounding            decimal.NullDecimal
	TotalPrepaid        decimal.NullDecimal
}

type ProductDetails struct {
	Name             string
	Description      string
	SellerAssignedID string
	BuyerAssignedID  string
	GlobalID         string
	GlobalIDScheme   string
}

type ReferencedProduct struct {
	Name             string
	Description      string
	SellerAssignedID string
	BuyerAssignedID  string
	GlobalID         string
	GlobalIDScheme   string
	UnitQuantity     decimal.NullDecimal
	UnitCode         string
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
