// Package docspec loads YAML document descriptions and replays them on a
// builder. Amounts, quantities and dates are kept as strings until they are
// applied so that decimal precision is never lost to float parsing.
package docspec

// Description is the root of a document description file.
type Description struct {
	Profile  string   `yaml:"profile"`
	Document Document `yaml:"document"`

	Seller            *Party `yaml:"seller"`
	Buyer             *Party `yaml:"buyer"`
	BuyerReference    string `yaml:"buyer_reference"`
	TaxRepresentative *Party `yaml:"tax_representative"`
	ProductEndUser    *Party `yaml:"product_end_user"`
	ShipTo            *Party `yaml:"ship_to"`
	UltimateShipTo    *Party `yaml:"ultimate_ship_to"`
	ShipFrom          *Party `yaml:"ship_from"`
	Invoicer          *Party `yaml:"invoicer"`
	Invoicee          *Party `yaml:"invoicee"`
	Payee             *Party `yaml:"payee"`

	DeliveryTerms          string      `yaml:"delivery_terms"`
	SellerOrder            *Reference  `yaml:"seller_order"`
	BuyerOrder             *Reference  `yaml:"buyer_order"`
	Contract               *Reference  `yaml:"contract"`
	AdditionalDocuments    []Reference `yaml:"additional_documents"`
	ProcuringProject       *Project    `yaml:"procuring_project"`
	UltimateCustomerOrders []Reference `yaml:"ultimate_customer_orders"`
	DespatchAdvice         *Reference  `yaml:"despatch_advice"`
	ReceivingAdvice        *Reference  `yaml:"receiving_advice"`
	DeliveryNote           *Reference  `yaml:"delivery_note"`
	DeliveryDate           string      `yaml:"delivery_date"`

	BillingPeriod *Period       `yaml:"billing_period"`
	PaymentMeans  []PaymentMean `yaml:"payment_means"`
	Taxes         []Tax         `yaml:"taxes"`
	PaymentTerms  []PaymentTerm `yaml:"payment_terms"`
	Summation     *Summation    `yaml:"summation"`

	Lines []Line `yaml:"lines"`

	// baseDir resolves relative attachment paths
	baseDir string
}

type Document struct {
	Number            string `yaml:"number"`
	TypeCode          string `yaml:"type_code"`
	Date              string `yaml:"date"`
	Currency          string `yaml:"currency"`
	Name              string `yaml:"name"`
	Language          string `yaml:"language"`
	EffectiveDate     string `yaml:"effective_date"`
	Copy              bool   `yaml:"copy"`
	Test              bool   `yaml:"test"`
	BusinessProcess   string `yaml:"business_process"`
	CreditorReference string `yaml:"creditor_reference"`
	PaymentReference  string `yaml:"payment_reference"`
	TaxCurrency       string `yaml:"tax_currency"`
	Notes             []Note `yaml:"notes"`
}

type Note struct {
	Content     string `yaml:"content"`
	ContentCode string `yaml:"content_code"`
	SubjectCode string `yaml:"subject_code"`
}

type Party struct {
	Name                    string            `yaml:"name"`
	ID                      string            `yaml:"id"`
	GlobalID                string            `yaml:"global_id"`
	GlobalIDScheme          string            `yaml:"global_id_scheme"`
	Description             string            `yaml:"description"`
	Address                 Address           `yaml:"address"`
	LegalOrganization       LegalOrganization `yaml:"legal_organization"`
	Contact                 Contact           `yaml:"contact"`
	ElectronicAddress       string            `yaml:"electronic_address"`
	ElectronicAddressScheme string            `yaml:"electronic_address_scheme"`
	VATID                   string            `yaml:"vat_id"`
	TaxNumber               string            `yaml:"tax_number"`
}

type Address struct {
	LineOne     string `yaml:"line_one"`
	LineTwo     string `yaml:"line_two"`
	LineThree   string `yaml:"line_three"`
	Postcode    string `yaml:"postcode"`
	City        string `yaml:"city"`
	Country     string `yaml:"country"`
	SubDivision string `yaml:"subdivision"`
}

type LegalOrganization struct {
	ID          string `yaml:"id"`
	Scheme      string `yaml:"scheme"`
	TradingName string `yaml:"trading_name"`
}

type Contact struct {
	PersonName     string `yaml:"person_name"`
	DepartmentName string `yaml:"department_name"`
	Phone          string `yaml:"phone"`
	Fax            string `yaml:"fax"`
	Email          string `yaml:"email"`
}

// Reference describes a referenced document. Attachment is a file path,
// relative paths resolve against the description file.
type Reference struct {
	ID                string   `yaml:"id"`
	URI               string   `yaml:"uri"`
	LineID            string   `yaml:"line_id"`
	TypeCode          string   `yaml:"type_code"`
	Names             []string `yaml:"names"`
	ReferenceTypeCode string   `yaml:"reference_type_code"`
	Date              string   `yaml:"date"`
	Attachment        string   `yaml:"attachment"`
}

type Project struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type Period struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type PaymentMean struct {
	TypeCode              string `yaml:"type_code"`
	Information           string `yaml:"information"`
	CardScheme            string `yaml:"card_scheme"`
	CardID                string `yaml:"card_id"`
	CardholderName        string `yaml:"cardholder_name"`
	DebtorIBAN            string `yaml:"debtor_iban"`
	CreditorIBAN          string `yaml:"creditor_iban"`
	CreditorAccountName   string `yaml:"creditor_account_name"`
	CreditorProprietaryID string `yaml:"creditor_proprietary_id"`
	CreditorBIC           string `yaml:"creditor_bic"`
}

// Tax is one entry of the tax breakdown. A missing calculated amount is
// derived from basis and rate.
type Tax struct {
	CategoryCode               string `yaml:"category_code"`
	TypeCode                   string `yaml:"type_code"`
	BasisAmount                string `yaml:"basis_amount"`
	CalculatedAmount           string `yaml:"calculated_amount"`
	RatePercent                string `yaml:"rate_percent"`
	ExemptionReason            string `yaml:"exemption_reason"`
	ExemptionReasonCode        string `yaml:"exemption_reason_code"`
	LineTotalBasisAmount       string `yaml:"line_total_basis_amount"`
	AllowanceChargeBasisAmount string `yaml:"allowance_charge_basis_amount"`
	TaxPointDate               string `yaml:"tax_point_date"`
	DueDateTypeCode            string `yaml:"due_date_type_code"`
}

type PaymentTerm struct {
	Description          string   `yaml:"description"`
	DueDate              string   `yaml:"due_date"`
	DirectDebitMandateID string   `yaml:"direct_debit_mandate_id"`
	PartialPaymentAmount string   `yaml:"partial_payment_amount"`
	Penalty              *Penalty `yaml:"penalty"`
}

type Penalty struct {
	BasisDate          string `yaml:"basis_date"`
	BasisPeriod        string `yaml:"basis_period"`
	BasisPeriodUnit    string `yaml:"basis_period_unit"`
	BasisAmount        string `yaml:"basis_amount"`
	CalculationPercent string `yaml:"calculation_percent"`
	ActualAmount       string `yaml:"actual_amount"`
}

type Summation struct {
	LineTotal           string `yaml:"line_total"`
	ChargeTotal         string `yaml:"charge_total"`
	AllowanceTotal      string `yaml:"allowance_total"`
	TaxBasisTotal       string `yaml:"tax_basis_total"`
	TaxTotal            string `yaml:"tax_total"`
	TaxTotalTaxCurrency string `yaml:"tax_total_tax_currency"`
	Rounding            string `yaml:"rounding"`
	GrandTotal          string `yaml:"grand_total"`
	TotalPrepaid        string `yaml:"total_prepaid"`
	DuePayable          string `yaml:"due_payable"`
}

type Line struct {
	ID                   string              `yaml:"id"`
	StatusCode           string              `yaml:"status_code"`
	StatusReasonCode     string              `yaml:"status_reason_code"`
	Notes                []Note              `yaml:"notes"`
	Product              Product             `yaml:"product"`
	ReferencedProducts   []ReferencedProduct `yaml:"referenced_products"`
	GrossPrice           *Price              `yaml:"gross_price"`
	NetPrice             *Price              `yaml:"net_price"`
	Quantity             string              `yaml:"quantity"`
	Unit                 string              `yaml:"unit"`
	Taxes                []LineTax           `yaml:"taxes"`
	BillingPeriod        *Period             `yaml:"billing_period"`
	LineTotal            string              `yaml:"line_total"`
	AllowanceChargeTotal string              `yaml:"allowance_charge_total"`
}

type Product struct {
	Name             string `yaml:"name"`
	Description      string `yaml:"description"`
	SellerAssignedID string `yaml:"seller_assigned_id"`
	BuyerAssignedID  string `yaml:"buyer_assigned_id"`
	GlobalID         string `yaml:"global_id"`
	GlobalIDScheme   string `yaml:"global_id_scheme"`
}

type ReferencedProduct struct {
	Name             string `yaml:"name"`
	Description      string `yaml:"description"`
	SellerAssignedID string `yaml:"seller_assigned_id"`
	BuyerAssignedID  string `yaml:"buyer_assigned_id"`
	GlobalID         string `yaml:"global_id"`
	GlobalIDScheme   string `yaml:"global_id_scheme"`
	UnitQuantity     string `yaml:"unit_quantity"`
	UnitCode         string `yaml:"unit_code"`
}

type Price struct {
	Amount        string `yaml:"amount"`
	BasisQuantity string `yaml:"basis_quantity"`
	Unit          string `yaml:"unit"`
}

type LineTax struct {
	CategoryCode string `yaml:"category_code"`
	TypeCode     string `yaml:"type_code"`
	RatePercent  string `yaml:"rate_percent"`
}
