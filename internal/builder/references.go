package builder

import (
	"time"

	"github.com/rezonia/zugferd/internal/ram"
	"github.com/rezonia/zugferd/internal/udt"
)

// SetDeliveryTerms sets the Incoterms code. An empty code is a no-op.
func (b *Builder) SetDeliveryTerms(code string) *Builder {
	if !b.mutable("SetDeliveryTerms") {
		return b
	}
	terms := &ram.TradeDeliveryTerms{}
	apply(b, terms, ram.DeliveryTermsTypeCode, udt.NewCode(code))
	apply(b, b.doc.Agreement(), ram.AgreementDeliveryTerms, nonEmpty(terms))
	return b
}

// SetSellerOrderReferencedDocument references the seller's order confirmation
func (b *Builder) SetSellerOrderReferencedDocument(issuerAssignedID string, issueDate *time.Time) *Builder {
	return b.setReference("SetSellerOrderReferencedDocument", ReferencedDocument{
		IssuerAssignedID: issuerAssignedID,
		IssueDate:        issueDate,
	}, func(ref *ram.ReferencedDocument) {
		apply(b, b.doc.Agreement(), ram.AgreementSellerOrder, ref)
	})
}

// SetBuyerOrderReferencedDocument references the buyer's purchase order
func (b *Builder) SetBuyerOrderReferencedDocument(issuerAssignedID string, issueDate *time.Time) *Builder {
	return b.setReference("SetBuyerOrderReferencedDocument", ReferencedDocument{
		IssuerAssignedID: issuerAssignedID,
		IssueDate:        issueDate,
	}, func(ref *ram.ReferencedDocument) {
		apply(b, b.doc.Agreement(), ram.AgreementBuyerOrder, ref)
	})
}

// SetContractReferencedDocument references the underlying contract
func (b *Builder) SetContractReferencedDocument(issuerAssignedID string, issueDate *time.Time) *Builder {
	return b.setReference("SetContractReferencedDocument", ReferencedDocument{
		IssuerAssignedID: issuerAssignedID,
		IssueDate:        issueDate,
	}, func(ref *ram.ReferencedDocument) {
		apply(b, b.doc.Agreement(), ram.AgreementContract, ref)
	})
}

// AddAdditionalReferencedDocument appends a supporting document, optionally
// with an embedded attachment.
func (b *Builder) AddAdditionalReferencedDocument(doc ReferencedDocument) *Builder {
	return b.setReference("AddAdditionalReferencedDocument", doc, func(ref *ram.ReferencedDocument) {
		apply(b, b.doc.Agreement(), ram.AgreementAdditionalDocument, ref)
	})
}

// SetProcuringProject references the tender or lot. Both id and name are
// required.
func (b *Builder) SetProcuringProject(id, name string) *Builder {
	const op = "SetProcuringProject"
	if !b.mutable(op) || !b.require(op, "ID", id) || !b.require(op, "Name", name) {
		return b
	}
	project := &ram.ProcuringProject{}
	apply(b, project, ram.ProcuringProjectID, udt.NewID(id, ""))
	apply(b, project, ram.ProcuringProjectName, udt.NewText(name))
	apply(b, b.doc.Agreement(), ram.AgreementProcuringProject, nonEmpty(project))
	return b
}

// AddUltimateCustomerOrderReferencedDocument appends an order of the final
// customer. It writes the ultimate customer order list, which only EXTENDED
// carries, and not the additional referenced documents, so profiles below
// EXTENDED skip it.
func (b *Builder) AddUltimateCustomerOrderReferencedDocument(issuerAssignedID string, issueDate *time.Time) *Builder {
	return b.setReference("AddUltimateCustomerOrderReferencedDocument", ReferencedDocument{
		IssuerAssignedID: issuerAssignedID,
		IssueDate:        issueDate,
	}, func(ref *ram.ReferencedDocument) {
		apply(b, b.doc.Agreement(), ram.AgreementUltimateCustomerOrder, ref)
	})
}

// SetDespatchAdviceReferencedDocument references the despatch advice
func (b *Builder) SetDespatchAdviceReferencedDocument(issuerAssignedID, lineID string, issueDate *time.Time) *Builder {
	return b.setReference("SetDespatchAdviceReferencedDocument", ReferencedDocument{
		IssuerAssignedID: issuerAssignedID,
		LineID:           lineID,
		IssueDate:        issueDate,
	}, func(ref *ram.ReferencedDocument) {
		apply(b, b.doc.Delivery(), ram.DeliveryDespatchAdvice, ref)
	})
}

// SetReceivingAdviceReferencedDocument references the receiving advice
func (b *Builder) SetReceivingAdviceReferencedDocument(issuerAssignedID, lineID string, issueDate *time.Time) *Builder {
	return b.setReference("SetReceivingAdviceReferencedDocument", ReferencedDocument{
		IssuerAssignedID: issuerAssignedID,
		LineID:           lineID,
		IssueDate:        issueDate,
	}, func(ref *ram.ReferencedDocument) {
		apply(b, b.doc.Delivery(), ram.DeliveryReceivingAdvice, ref)
	})
}

// SetDeliveryNoteReferencedDocument references the delivery note
func (b *Builder) SetDeliveryNoteReferencedDocument(issuerAssignedID, lineID string, issueDate *time.Time) *Builder {
	return b.setReference("SetDeliveryNoteReferencedDocument", ReferencedDocument{
		IssuerAssignedID: issuerAssignedID,
		LineID:           lineID,
		IssueDate:        issueDate,
	}, func(ref *ram.ReferencedDocument) {
		apply(b, b.doc.Delivery(), ram.DeliveryNote, ref)
	})
}

func (b *Builder) setReference(op string, d ReferencedDocument, attach func(*ram.ReferencedDocument)) *Builder {
	if !b.mutable(op) || !b.require(op, "IssuerAssignedID", d.IssuerAssignedID) {
		return b
	}
	ref := b.referencedDocument(d)
	if b.err != nil {
		return b
	}
	attach(ref)
	return b
}

func (b *Builder) referencedDocument(d ReferencedDocument) *ram.ReferencedDocument {
	var attachment *udt.BinaryObject
	if d.Attachment != nil {
		obj, err := udt.NewBinaryObject(d.Attachment.Filename, d.Attachment.Data)
		if err != nil {
			b.fail(err)
			return nil
		}
		attachment = obj
	}

	ref := &ram.ReferencedDocument{}
	apply(b, ref, ram.ReferenceIssuerAssignedID, udt.NewID(d.IssuerAssignedID, ""))
	apply(b, ref, ram.ReferenceURIID, udt.NewID(d.URIID, ""))
	apply(b, ref, ram.ReferenceLineID, udt.NewID(d.LineID, ""))
	apply(b, ref, ram.ReferenceTypeCode, udt.NewCode(d.TypeCode))
	for _, name := range d.Names {
		apply(b, ref, ram.ReferenceName, udt.NewText(name))
	}
	apply(b, ref, ram.ReferenceAttachment, attachment)
	apply(b, ref, ram.ReferenceReferenceTypeCode, udt.NewCode(d.ReferenceTypeCode))
	apply(b, ref, ram.ReferenceIssueDateTime, udt.NewDateTime(d.IssueDate))
	return ref
}
