// Package ram holds the node types of the cross industry invoice graph.
//
// Each struct carries the field superset of every profile. Which fields a
// profile may populate is declared next to the type as capabilities; the
// builder never assigns a field directly but always through
// capability.Apply.
package ram

import (
	"github.com/rezonia/zugferd/internal/capability"
	"github.com/rezonia/zugferd/internal/profile"
	"github.com/rezonia/zugferd/internal/udt"
)

// CrossIndustryInvoice is the document root.
type CrossIndustryInvoice struct {
	ExchangedDocumentContext    *ExchangedDocumentContext
	ExchangedDocument           *ExchangedDocument
	SupplyChainTradeTransaction *SupplyChainTradeTransaction
}

// NewCrossIndustryInvoice creates an empty document for profile p with every
// head subtree in place and the guideline parameter stamped with the profile
// URN.
func NewCrossIndustryInvoice(p profile.Profile) *CrossIndustryInvoice {
	return &CrossIndustryInvoice{
		ExchangedDocumentContext: &ExchangedDocumentContext{
			GuidelineSpecifiedDocumentContextParameter: &DocumentContextParameter{
				ID: udt.NewID(p.URN(), ""),
			},
		},
		ExchangedDocument: &ExchangedDocument{},
		SupplyChainTradeTransaction: &SupplyChainTradeTransaction{
			ApplicableHeaderTradeAgreement:  &HeaderTradeAgreement{},
			ApplicableHeaderTradeDelivery:   &HeaderTradeDelivery{},
			ApplicableHeaderTradeSettlement: &HeaderTradeSettlement{},
		},
	}
}

// Agreement returns the agreement head subtree
func (c *CrossIndustryInvoice) Agreement() *HeaderTradeAgreement {
	return c.SupplyChainTradeTransaction.ApplicableHeaderTradeAgreement
}

// Delivery returns the delivery head subtree
func (c *CrossIndustryInvoice) Delivery() *HeaderTradeDelivery {
	return c.SupplyChainTradeTransaction.ApplicableHeaderTradeDelivery
}

// Settlement returns the settlement head subtree
func (c *CrossIndustryInvoice) Settlement() *HeaderTradeSettlement {
	return c.SupplyChainTradeTransaction.ApplicableHeaderTradeSettlement
}

type ExchangedDocumentContext struct {
	TestIndicator                                    *udt.Indicator            `json:",omitempty"`
	BusinessProcessSpecifiedDocumentContextParameter *DocumentContextParameter `json:",omitempty"`
	GuidelineSpecifiedDocumentContextParameter       *DocumentContextParameter `json:",omitempty"`
}

type DocumentContextParameter struct {
	ID *udt.ID `json:",omitempty"`
}

type ExchangedDocument struct {
	ID                       *udt.ID        `json:",omitempty"`
	Name                     *udt.Text      `json:",omitempty"`
	TypeCode                 *udt.Code      `json:",omitempty"`
	IssueDateTime            *udt.DateTime  `json:",omitempty"`
	CopyIndicator            *udt.Indicator `json:",omitempty"`
	LanguageID               []*udt.ID      `json:",omitempty"`
	IncludedNote             []*Note        `json:",omitempty"`
	EffectiveSpecifiedPeriod *udt.Period    `json:",omitempty"`
}

// Note is free text attached to the document or a line.
type Note struct {
	ContentCode *udt.Code `json:",omitempty"`
	Content     *udt.Text `json:",omitempty"`
	SubjectCode *udt.Code `json:",omitempty"`
}

type SupplyChainTradeTransaction struct {
	IncludedSupplyChainTradeLineItem []*SupplyChainTradeLineItem `json:",omitempty"`
	ApplicableHeaderTradeAgreement   *HeaderTradeAgreement
	ApplicableHeaderTradeDelivery    *HeaderTradeDelivery
	ApplicableHeaderTradeSettlement  *HeaderTradeSettlement
}

var (
	ContextTestIndicator = capability.Scalar("ExchangedDocumentContext", "TestIndicator", profile.Extended,
		func(n *ExchangedDocumentContext, v *udt.Indicator) { n.TestIndicator = v })
	ContextBusinessProcess = capability.Scalar("ExchangedDocumentContext", "BusinessProcessSpecifiedDocumentContextParameter", profile.Minimum,
		func(n *ExchangedDocumentContext, v *DocumentContextParameter) {
			n.BusinessProcessSpecifiedDocumentContextParameter = v
		})
	ContextParameterID = capability.Scalar("DocumentContextParameter", "ID", profile.Minimum,
		func(n *DocumentContextParameter, v *udt.ID) { n.ID = v })
)

var (
	DocumentID = capability.Scalar("ExchangedDocument", "ID", profile.Minimum,
		func(n *ExchangedDocument, v *udt.ID) { n.ID = v })
	DocumentName = capability.Scalar("ExchangedDocument", "Name", profile.Extended,
		func(n *ExchangedDocument, v *udt.Text) { n.Name = v })
	DocumentTypeCode = capability.Scalar("ExchangedDocument", "TypeCode", profile.Minimum,
		func(n *ExchangedDocument, v *udt.Code) { n.TypeCode = v })
	DocumentIssueDateTime = capability.Scalar("ExchangedDocument", "IssueDateTime", profile.Minimum,
		func(n *ExchangedDocument, v *udt.DateTime) { n.IssueDateTime = v })
	DocumentCopyIndicator = capability.Scalar("ExchangedDocument", "CopyIndicator", profile.Extended,
		func(n *ExchangedDocument, v *udt.Indicator) { n.CopyIndicator = v })
	DocumentLanguageID = capability.List("ExchangedDocument", "LanguageID", profile.Extended,
		func(n *ExchangedDocument, v *udt.ID) { n.LanguageID = append(n.LanguageID, v) })
	DocumentIncludedNote = capability.List("ExchangedDocument", "IncludedNote", profile.BasicWL,
		func(n *ExchangedDocument, v *Note) { n.IncludedNote = append(n.IncludedNote, v) })
	DocumentEffectiveSpecifiedPeriod = capability.Scalar("ExchangedDocument", "EffectiveSpecifiedPeriod", profile.Extended,
		func(n *ExchangedDocument, v *udt.Period) { n.EffectiveSpecifiedPeriod = v })
)

var (
	NoteContentCode = capability.Scalar("Note", "ContentCode", profile.Extended,
		func(n *Note, v *udt.Code) { n.ContentCode = v })
	NoteContent = capability.Scalar("Note", "Content", profile.BasicWL,
		func(n *Note, v *udt.Text) { n.Content = v })
	NoteSubjectCode = capability.Scalar("Note", "SubjectCode", profile.BasicWL,
		func(n *Note, v *udt.Code) { n.SubjectCode = v })
)

var TransactionLineItem = capability.List("SupplyChainTradeTransaction", "IncludedSupplyChainTradeLineItem", profile.Basic,
	func(n *SupplyChainTradeTransaction, v *SupplyChainTradeLineItem) {
		n.IncludedSupplyChainTradeLineItem = append(n.IncludedSupplyChainTradeLineItem, v)
	})
