package docspec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/zugferd/internal/builder"
	money "github.com/rezonia/zugferd/internal/decimal"
	"github.com/rezonia/zugferd/internal/model"
	"github.com/rezonia/zugferd/internal/udt"
)

// Build creates a builder for the resolved profile and replays the
// description on it.
func (d *Description) Build(profileOverride string, opts ...builder.Option) (*builder.Builder, error) {
	p, err := d.ResolveProfile(profileOverride)
	if err != nil {
		return nil, err
	}
	b := builder.New(p, opts...)
	if err := d.Apply(b); err != nil {
		return b, err
	}
	return b, nil
}

// Apply replays the description on b in document order. The first parse
// error wins over builder errors.
func (d *Description) Apply(b *builder.Builder) error {
	c := &converter{baseDir: d.baseDir, currency: d.Document.Currency}

	d.applyHeader(c, b)
	d.applyParties(b)
	d.applyReferences(c, b)
	d.applySettlement(c, b)
	for i := range d.Lines {
		d.Lines[i].apply(c, b)
	}

	if c.err != nil {
		return c.err
	}
	return b.Err()
}

func (d *Description) applyHeader(c *converter, b *builder.Builder) {
	doc := d.Document
	b.SetDocumentInformation(builder.DocumentInformation{
		Number:        doc.Number,
		TypeCode:      doc.TypeCode,
		Date:          c.requiredDate("document.date", doc.Date),
		Currency:      doc.Currency,
		Name:          doc.Name,
		Language:      doc.Language,
		EffectiveDate: c.date("document.effective_date", doc.EffectiveDate),
	})
	if doc.Copy {
		b.SetIsDocumentCopy()
	}
	if doc.Test {
		b.SetIsTestDocument()
	}
	b.SetDocumentBusinessProcess(doc.BusinessProcess)
	b.SetDocumentGeneralPaymentInformation(doc.CreditorReference, doc.PaymentReference)
	b.SetDocumentTaxCurrency(doc.TaxCurrency)
	for _, n := range doc.Notes {
		b.AddDocumentNote(n.Content, n.ContentCode, n.SubjectCode)
	}
}

func (d *Description) applyParties(b *builder.Builder) {
	if d.Seller != nil {
		b.SetSeller(d.Seller.details())
	}
	if d.Buyer != nil {
		b.SetBuyer(d.Buyer.details(), d.BuyerReference)
	}
	parties := []struct {
		party *Party
		set   func(builder.PartyDetails) *builder.Builder
	}{
		{d.TaxRepresentative, b.SetSellerTaxRepresentativeTradeParty},
		{d.ProductEndUser, b.SetProductEndUserTradeParty},
		{d.ShipTo, b.SetShipTo},
		{d.UltimateShipTo, b.SetUltimateShipTo},
		{d.ShipFrom, b.SetShipFrom},
		{d.Invoicer, b.SetInvoicer},
		{d.Invoicee, b.SetInvoicee},
		{d.Payee, b.SetPayee},
	}
	for _, p := range parties {
		if p.party != nil {
			p.set(p.party.details())
		}
	}
}

func (d *Description) applyReferences(c *converter, b *builder.Builder) {
	b.SetDeliveryTerms(d.DeliveryTerms)
	if r := d.SellerOrder; r != nil {
		b.SetSellerOrderReferencedDocument(r.ID, c.date("seller_order.date", r.Date))
	}
	if r := d.BuyerOrder; r != nil {
		b.SetBuyerOrderReferencedDocument(r.ID, c.date("buyer_order.date", r.Date))
	}
	if r := d.Contract; r != nil {
		b.SetContractReferencedDocument(r.ID, c.date("contract.date", r.Date))
	}
	for i, r := range d.AdditionalDocuments {
		field := fmt.Sprintf("additional_documents[%d]", i)
		b.AddAdditionalReferencedDocument(builder.ReferencedDocument{
			IssuerAssignedID:  r.ID,
			URIID:             r.URI,
			LineID:            r.LineID,
			TypeCode:          r.TypeCode,
			Names:             r.Names,
			ReferenceTypeCode: r.ReferenceTypeCode,
			IssueDate:         c.date(field+".date", r.Date),
			Attachment:        c.attachment(field+".attachment", r.Attachment),
		})
	}
	if p := d.ProcuringProject; p != nil {
		b.SetProcuringProject(p.ID, p.Name)
	}
	for i, r := range d.UltimateCustomerOrders {
		b.AddUltimateCustomerOrderReferencedDocument(r.ID, c.date(fmt.Sprintf("ultimate_customer_orders[%d].date", i), r.Date))
	}
	if r := d.DespatchAdvice; r != nil {
		b.SetDespatchAdviceReferencedDocument(r.ID, r.LineID, c.date("despatch_advice.date", r.Date))
	}
	if r := d.ReceivingAdvice; r != nil {
		b.SetReceivingAdviceReferencedDocument(r.ID, r.LineID, c.date("receiving_advice.date", r.Date))
	}
	if r := d.DeliveryNote; r != nil {
		b.SetDeliveryNoteReferencedDocument(r.ID, r.LineID, c.date("delivery_note.date", r.Date))
	}
	b.SetSupplyChainEvent(c.date("delivery_date", d.DeliveryDate))
}

func (d *Description) applySettlement(c *converter, b *builder.Builder) {
	if p := d.BillingPeriod; p != nil {
		b.SetDocumentBillingPeriod(c.date("billing_period.start", p.Start), c.date("billing_period.end", p.End))
	}
	for _, pm := range d.PaymentMeans {
		b.AddPaymentMeans(builder.PaymentMeans(pm))
	}
	for i, t := range d.Taxes {
		b.AddDocumentTax(c.tax(fmt.Sprintf("taxes[%d]", i), t))
	}
	for i, t := range d.PaymentTerms {
		field := fmt.Sprintf("payment_terms[%d]", i)
		term := builder.PaymentTerm{
			Description:          t.Description,
			DueDate:              c.date(field+".due_date", t.DueDate),
			DirectDebitMandateID: t.DirectDebitMandateID,
			PartialPaymentAmount: c.optional(field+".partial_payment_amount", t.PartialPaymentAmount),
		}
		if p := t.Penalty; p != nil {
			term.Penalty = &builder.PenaltyTerms{
				BasisDate:          c.date(field+".penalty.basis_date", p.BasisDate),
				BasisPeriod:        c.optional(field+".penalty.basis_period", p.BasisPeriod),
				BasisPeriodUnit:    p.BasisPeriodUnit,
				BasisAmount:        c.optional(field+".penalty.basis_amount", p.BasisAmount),
				CalculationPercent: c.optional(field+".penalty.calculation_percent", p.CalculationPercent),
				ActualAmount:       c.optional(field+".penalty.actual_amount", p.ActualAmount),
			}
		}
		b.AddPaymentTerm(term)
	}
	if s := d.Summation; s != nil {
		b.SetDocumentSummation(builder.Summation{
			GrandTotal:          c.requiredNull("summation.grand_total", s.GrandTotal),
			DuePayable:          c.requiredNull("summation.due_payable", s.DuePayable),
			LineTotal:           c.optional("summation.line_total", s.LineTotal),
			ChargeTotal:         c.optional("summation.charge_total", s.ChargeTotal),
			AllowanceTotal:      c.optional("summation.allowance_total", s.AllowanceTotal),
			TaxBasisTotal:       c.optional("summation.tax_basis_total", s.TaxBasisTotal),
			TaxTotal:            c.optional("summation.tax_total", s.TaxTotal),
			TaxTotalTaxCurrency: c.optional("summation.tax_total_tax_currency", s.TaxTotalTaxCurrency),
			Rounding:            c.optional("summation.rounding", s.Rounding),
			TotalPrepaid:        c.optional("summation.total_prepaid", s.TotalPrepaid),
		})
	}
}

func (l Line) apply(c *converter, b *builder.Builder) {
	field := "lines[" + l.ID + "]"

	b.AddNewPosition(l.ID, l.StatusCode, l.StatusReasonCode)
	for _, n := range l.Notes {
		b.AddDocumentPositionNote(n.Content, n.ContentCode, n.SubjectCode)
	}
	b.SetDocumentPositionProductDetails(builder.ProductDetails(l.Product))
	for _, rp := range l.ReferencedProducts {
		b.AddDocumentPositionReferencedProduct(builder.ReferencedProduct{
			Name:             rp.Name,
			Description:      rp.Description,
			SellerAssignedID: rp.SellerAssignedID,
			BuyerAssignedID:  rp.BuyerAssignedID,
			GlobalID:         rp.GlobalID,
			GlobalIDScheme:   rp.GlobalIDScheme,
			UnitQuantity:     c.optional(field+".unit_quantity", rp.UnitQuantity),
			UnitCode:         rp.UnitCode,
		})
	}
	if p := l.GrossPrice; p != nil {
		b.SetDocumentPositionGrossPrice(c.required(field+".gross_price.amount", p.Amount),
			c.optional(field+".gross_price.basis_quantity", p.BasisQuantity), p.Unit)
	}
	if p := l.NetPrice; p != nil {
		b.SetDocumentPositionNetPrice(c.required(field+".net_price.amount", p.Amount),
			c.optional(field+".net_price.basis_quantity", p.BasisQuantity), p.Unit)
	}
	if l.Quantity != "" {
		b.SetDocumentPositionQuantity(c.required(field+".quantity", l.Quantity), l.Unit)
	}
	for _, t := range l.Taxes {
		b.AddDocumentPositionTax(t.CategoryCode, t.TypeCode, c.optional(field+".taxes.rate_percent", t.RatePercent))
	}
	if p := l.BillingPeriod; p != nil {
		b.SetDocumentPositionBillingPeriod(c.date(field+".billing_period.start", p.Start), c.date(field+".billing_period.end", p.End))
	}
	if l.LineTotal != "" {
		b.SetDocumentPositionLineSummation(c.required(field+".line_total", l.LineTotal),
			c.optional(field+".allowance_charge_total", l.AllowanceChargeTotal))
	}
}

func (p *Party) details() builder.PartyDetails {
	var regs []builder.TaxRegistration
	if p.VATID != "" {
		regs = append(regs, builder.TaxRegistration{Scheme: "VA", ID: p.VATID})
	}
	if p.TaxNumber != "" {
		regs = append(regs, builder.TaxRegistration{Scheme: "FC", ID: p.TaxNumber})
	}
	return builder.PartyDetails{
		Name:                    p.Name,
		ID:                      p.ID,
		GlobalID:                p.GlobalID,
		GlobalIDScheme:          p.GlobalIDScheme,
		Description:             p.Description,
		Address:                 builder.Address(p.Address),
		LegalOrganization:       builder.LegalOrganization(p.LegalOrganization),
		Contact:                 builder.Contact(p.Contact),
		ElectronicAddress:       p.ElectronicAddress,
		ElectronicAddressScheme: p.ElectronicAddressScheme,
		TaxRegistrations:        regs,
	}
}

// converter turns description strings into builder values and keeps the
// first failure.
type converter struct {
	baseDir  string
	currency string
	err      error
}

func (c *converter) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *converter) date(field, s string) *time.Time {
	dt, err := udt.ParseDateTime(field, s)
	if err != nil {
		c.fail(err)
		return nil
	}
	if dt == nil {
		return nil
	}
	t := dt.Value()
	return &t
}

// requiredDate leaves the zero time for a missing date so the builder
// reports the required field.
func (c *converter) requiredDate(field, s string) time.Time {
	if t := c.date(field, s); t != nil {
		return *t
	}
	return time.Time{}
}

func (c *converter) optional(field, s string) decimal.NullDecimal {
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := money.FromString(s)
	if err != nil {
		c.fail(model.NewConstructionError(field, s, "invalid number", err))
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func (c *converter) required(field, s string) decimal.Decimal {
	if s == "" {
		c.fail(model.NewRequiredFieldError("docspec", field))
		return decimal.Zero
	}
	return c.optional(field, s).Decimal
}

func (c *converter) requiredNull(field, s string) decimal.NullDecimal {
	if s == "" {
		c.fail(model.NewRequiredFieldError("docspec", field))
		return decimal.NullDecimal{}
	}
	return c.optional(field, s)
}

func (c *converter) tax(field string, t Tax) builder.Tax {
	basis := c.required(field+".basis_amount", t.BasisAmount)
	rate := c.optional(field+".rate_percent", t.RatePercent)

	var calculated decimal.Decimal
	switch {
	case t.CalculatedAmount != "":
		calculated = c.required(field+".calculated_amount", t.CalculatedAmount)
	case rate.Valid:
		calculated = money.CalculatePercentage(basis, rate.Decimal, c.currency)
	default:
		c.fail(model.NewRequiredFieldError("docspec", field+".calculated_amount"))
	}

	return builder.Tax{
		CategoryCode:               t.CategoryCode,
		TypeCode:                   t.TypeCode,
		BasisAmount:                basis,
		CalculatedAmount:           calculated,
		RatePercent:                rate,
		ExemptionReason:            t.ExemptionReason,
		ExemptionReasonCode:        t.ExemptionReasonCode,
		LineTotalBasisAmount:       c.optional(field+".line_total_basis_amount", t.LineTotalBasisAmount),
		AllowanceChargeBasisAmount: c.optional(field+".allowance_charge_basis_amount", t.AllowanceChargeBasisAmount),
		TaxPointDate:               c.date(field+".tax_point_date", t.TaxPointDate),
		DueDateTypeCode:            t.DueDateTypeCode,
	}
}

// attachment reads a file below the description's base directory. Absolute
// paths and paths leaving the directory are rejected, as are attachments
// on descriptions without a base directory.
func (c *converter) attachment(field, path string) *builder.Attachment {
	if path == "" {
		return nil
	}
	if c.baseDir == "" {
		c.fail(model.NewConstructionError(field, path, "attachments need a base directory", nil))
		return nil
	}
	if filepath.IsAbs(path) {
		c.fail(model.NewConstructionError(field, path, "attachment path must be relative", nil))
		return nil
	}
	data, err := readContained(c.baseDir, path)
	if err != nil {
		c.fail(model.NewConstructionError(field, path, "read attachment", err))
		return nil
	}
	return &builder.Attachment{Filename: filepath.Base(path), Data: data}
}

func readContained(dir, path string) ([]byte, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = root.Close()
	}()

	file, err := root.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return io.ReadAll(file)
}
