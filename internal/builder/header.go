package builder

import (
	"github.com/rezonia/zugferd/internal/ram"
	"github.com/rezonia/zugferd/internal/udt"
)

// SetDocumentInformation sets number, type, date, name, language and
// currency of the document.
func (b *Builder) SetDocumentInformation(info DocumentInformation) *Builder {
	const op = "SetDocumentInformation"
	if !b.mutable(op) {
		return b
	}
	if !b.require(op, "Number", info.Number) || !b.require(op, "TypeCode", info.TypeCode) ||
		!b.require(op, "Currency", info.Currency) {
		return b
	}
	if info.Date.IsZero() {
		return b.requireFailed(op, "Date")
	}

	currency, err := udt.ParseCurrency("InvoiceCurrencyCode", info.Currency)
	if err != nil {
		b.fail(err)
		return b
	}
	language, err := udt.ParseLanguage("LanguageID", info.Language)
	if err != nil {
		b.fail(err)
		return b
	}

	doc := b.doc.ExchangedDocument
	apply(b, doc, ram.DocumentID, udt.NewID(info.Number, ""))
	apply(b, doc, ram.DocumentName, udt.NewText(info.Name))
	apply(b, doc, ram.DocumentTypeCode, udt.NewCode(info.TypeCode))
	apply(b, doc, ram.DocumentIssueDateTime, udt.NewDateTime(&info.Date))
	apply(b, doc, ram.DocumentLanguageID, language)
	apply(b, doc, ram.DocumentEffectiveSpecifiedPeriod, udt.NewPeriod(info.EffectiveDate, nil))

	apply(b, b.doc.Settlement(), ram.SettlementInvoiceCurrency, currency)
	if b.err == nil {
		b.amounts.SetCurrency(currency.Value())
	}
	return b
}

// SetDocumentGeneralPaymentInformation sets the creditor reference and the
// remittance information.
func (b *Builder) SetDocumentGeneralPaymentInformation(creditorReferenceID, paymentReference string) *Builder {
	if !b.mutable("SetDocumentGeneralPaymentInformation") {
		return b
	}
	settlement := b.doc.Settlement()
	apply(b, settlement, ram.SettlementCreditorReferenceID, udt.NewID(creditorReferenceID, ""))
	apply(b, settlement, ram.SettlementPaymentReference, udt.NewID(paymentReference, ""))
	return b
}

// SetIsDocumentCopy marks the document as a copy
func (b *Builder) SetIsDocumentCopy() *Builder {
	if !b.mutable("SetIsDocumentCopy") {
		return b
	}
	apply(b, b.doc.ExchangedDocument, ram.DocumentCopyIndicator, udt.NewIndicator(true))
	return b
}

// SetIsTestDocument marks the document as a test document
func (b *Builder) SetIsTestDocument() *Builder {
	if !b.mutable("SetIsTestDocument") {
		return b
	}
	apply(b, b.doc.ExchangedDocumentContext, ram.ContextTestIndicator, udt.NewIndicator(true))
	return b
}

// AddDocumentNote appends a note to the document header.
func (b *Builder) AddDocumentNote(content, contentCode, subjectCode string) *Builder {
	const op = "AddDocumentNote"
	if !b.mutable(op) || !b.require(op, "Content", content) {
		return b
	}
	apply(b, b.doc.ExchangedDocument, ram.DocumentIncludedNote, b.note(content, contentCode, subjectCode))
	return b
}

// SetDocumentBusinessProcess sets the business process context (BT-23).
func (b *Builder) SetDocumentBusinessProcess(id string) *Builder {
	if !b.mutable("SetDocumentBusinessProcess") {
		return b
	}
	param := &ram.DocumentContextParameter{}
	apply(b, param, ram.ContextParameterID, udt.NewID(id, ""))
	apply(b, b.doc.ExchangedDocumentContext, ram.ContextBusinessProcess, nonEmpty(param))
	return b
}

// SetDocumentTaxCurrency sets the currency VAT is accounted in when it
// differs from the invoice currency.
func (b *Builder) SetDocumentTaxCurrency(code string) *Builder {
	if !b.mutable("SetDocumentTaxCurrency") {
		return b
	}
	currency, err := udt.ParseCurrency("TaxCurrencyCode", code)
	if err != nil {
		b.fail(err)
		return b
	}
	apply(b, b.doc.Settlement(), ram.SettlementTaxCurrency, currency)
	if tc := b.doc.Settlement().TaxCurrencyCode; tc != nil && b.err == nil {
		b.taxAmounts.SetCurrency(tc.Value())
		b.attachTaxCurrencyTotal()
	}
	return b
}

func (b *Builder) note(content, contentCode, subjectCode string) *ram.Note {
	n := &ram.Note{}
	apply(b, n, ram.NoteContent, udt.NewText(content))
	apply(b, n, ram.NoteContentCode, udt.NewCode(contentCode))
	apply(b, n, ram.NoteSubjectCode, udt.NewCode(subjectCode))
	return nonEmpty(n)
}

func (b *Builder) requireFailed(op, field string) *Builder {
	b.require(op, field, "")
	return b
}
