package ram

import (
	"github.com/rezonia/zugferd/internal/capability"
	"github.com/rezonia/zugferd/internal/profile"
	"github.com/rezonia/zugferd/internal/udt"
)

// HeaderTradeAgreement holds the parties and the contractual references.
type HeaderTradeAgreement struct {
	BuyerReference                          *udt.Text             `json:",omitempty"`
	SellerTradeParty                        *TradeParty           `json:",omitempty"`
	BuyerTradeParty                         *TradeParty           `json:",omitempty"`
	SellerTaxRepresentativeTradeParty       *TradeParty           `json:",omitempty"`
	ProductEndUserTradeParty                *TradeParty           `json:",omitempty"`
	ApplicableTradeDeliveryTerms            *TradeDeliveryTerms   `json:",omitempty"`
	SellerOrderReferencedDocument           *ReferencedDocument   `json:",omitempty"`
	BuyerOrderReferencedDocument            *ReferencedDocument   `json:",omitempty"`
	ContractReferencedDocument              *ReferencedDocument   `json:",omitempty"`
	AdditionalReferencedDocument            []*ReferencedDocument `json:",omitempty"`
	SpecifiedProcuringProject               *ProcuringProject     `json:",omitempty"`
	UltimateCustomerOrderReferencedDocument []*ReferencedDocument `json:",omitempty"`
}

// ReferencedDocument points at an order, contract, advice or attachment.
type ReferencedDocument struct {
	IssuerAssignedID       *udt.ID           `json:",omitempty"`
	URIID                  *udt.ID           `json:",omitempty"`
	LineID                 *udt.ID           `json:",omitempty"`
	TypeCode               *udt.Code         `json:",omitempty"`
	Name                   []*udt.Text       `json:",omitempty"`
	AttachmentBinaryObject *udt.BinaryObject `json:",omitempty"`
	ReferenceTypeCode      *udt.Code         `json:",omitempty"`
	FormattedIssueDateTime *udt.DateTime     `json:",omitempty"`
}

type TradeDeliveryTerms struct {
	DeliveryTypeCode *udt.Code `json:",omitempty"`
}

type ProcuringProject struct {
	ID   *udt.ID   `json:",omitempty"`
	Name *udt.Text `json:",omitempty"`
}

var (
	AgreementBuyerReference = capability.Scalar("HeaderTradeAgreement", "BuyerReference", profile.Minimum,
		func(n *HeaderTradeAgreement, v *udt.Text) { n.BuyerReference = v })
	AgreementSeller = capability.Scalar("HeaderTradeAgreement", "SellerTradeParty", profile.Minimum,
		func(n *HeaderTradeAgreement, v *TradeParty) { n.SellerTradeParty = v })
	AgreementBuyer = capability.Scalar("HeaderTradeAgreement", "BuyerTradeParty", profile.Minimum,
		func(n *HeaderTradeAgreement, v *TradeParty) { n.BuyerTradeParty = v })
	AgreementSellerTaxRepresentative = capability.Scalar("HeaderTradeAgreement", "SellerTaxRepresentativeTradeParty", profile.BasicWL,
		func(n *HeaderTradeAgreement, v *TradeParty) { n.SellerTaxRepresentativeTradeParty = v })
	AgreementProductEndUser = capability.Scalar("HeaderTradeAgreement", "ProductEndUserTradeParty", profile.Extended,
		func(n *HeaderTradeAgreement, v *TradeParty) { n.ProductEndUserTradeParty = v })
	AgreementDeliveryTerms = capability.Scalar("HeaderTradeAgreement", "ApplicableTradeDeliveryTerms", profile.Extended,
		func(n *HeaderTradeAgreement, v *TradeDeliveryTerms) { n.ApplicableTradeDeliveryTerms = v })
	AgreementSellerOrder = capability.Scalar("HeaderTradeAgreement", "SellerOrderReferencedDocument", profile.EN16931,
		func(n *HeaderTradeAgreement, v *ReferencedDocument) { n.SellerOrderReferencedDocument = v })
	AgreementBuyerOrder = capability.Scalar("HeaderTradeAgreement", "BuyerOrderReferencedDocument", profile.Minimum,
		func(n *HeaderTradeAgreement, v *ReferencedDocument) { n.BuyerOrderReferencedDocument = v })
	AgreementContract = capability.Scalar("HeaderTradeAgreement", "ContractReferencedDocument", profile.BasicWL,
		func(n *HeaderTradeAgreement, v *ReferencedDocument) { n.ContractReferencedDocument = v })
	AgreementAdditionalDocument = capability.List("HeaderTradeAgreement", "AdditionalReferencedDocument", profile.EN16931,
		func(n *HeaderTradeAgreement, v *ReferencedDocument) {
			n.AdditionalReferencedDocument = append(n.AdditionalReferencedDocument, v)
		})
	AgreementProcuringProject = capability.Scalar("HeaderTradeAgreement", "SpecifiedProcuringProject", profile.EN16931,
		func(n *HeaderTradeAgreement, v *ProcuringProject) { n.SpecifiedProcuringProject = v })
	AgreementUltimateCustomerOrder = capability.List("HeaderTradeAgreement", "UltimateCustomerOrderReferencedDocument", profile.Extended,
		func(n *HeaderTradeAgreement, v *ReferencedDocument) {
			n.UltimateCustomerOrderReferencedDocument = append(n.UltimateCustomerOrderReferencedDocument, v)
		})
)

var (
	ReferenceIssuerAssignedID = capability.Scalar("ReferencedDocument", "IssuerAssignedID", profile.Minimum,
		func(n *ReferencedDocument, v *udt.ID) { n.IssuerAssignedID = v })
	ReferenceURIID = capability.Scalar("ReferencedDocument", "URIID", profile.EN16931,
		func(n *ReferencedDocument, v *udt.ID) { n.URIID = v })
	ReferenceLineID = capability.Scalar("ReferencedDocument", "LineID", profile.Extended,
		func(n *ReferencedDocument, v *udt.ID) { n.LineID = v })
	ReferenceTypeCode = capability.Scalar("ReferencedDocument", "TypeCode", profile.EN16931,
		func(n *ReferencedDocument, v *udt.Code) { n.TypeCode = v })
	ReferenceName = capability.List("ReferencedDocument", "Name", profile.EN16931,
		func(n *ReferencedDocument, v *udt.Text) { n.Name = append(n.Name, v) })
	ReferenceAttachment = capability.Scalar("ReferencedDocument", "AttachmentBinaryObject", profile.EN16931,
		func(n *ReferencedDocument, v *udt.BinaryObject) { n.AttachmentBinaryObject = v })
	ReferenceReferenceTypeCode = capability.Scalar("ReferencedDocument", "ReferenceTypeCode", profile.EN16931,
		func(n *ReferencedDocument, v *udt.Code) { n.ReferenceTypeCode = v })
	ReferenceIssueDateTime = capability.Scalar("ReferencedDocument", "FormattedIssueDateTime", profile.BasicWL,
		func(n *ReferencedDocument, v *udt.DateTime) { n.FormattedIssueDateTime = v })
)

var DeliveryTermsTypeCode = capability.Scalar("TradeDeliveryTerms", "DeliveryTypeCode", profile.Extended,
	func(n *TradeDeliveryTerms, v *udt.Code) { n.DeliveryTypeCode = v })

var (
	ProcuringProjectID = capability.Scalar("ProcuringProject", "ID", profile.EN16931,
		func(n *ProcuringProject, v *udt.ID) { n.ID = v })
	ProcuringProjectName = capability.Scalar("ProcuringProject", "Name", profile.EN16931,
		func(n *ProcuringProject, v *udt.Text) { n.Name = v })
)
