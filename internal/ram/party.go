package ram

import (
	"github.com/rezonia/zugferd/internal/capability"
	"github.com/rezonia/zugferd/internal/profile"
	"github.com/rezonia/zugferd/internal/udt"
)

// TradeParty is the shape shared by every party of the document: seller,
// buyer, tax representative, end user, ship-to/from, invoicer, invoicee and
// payee.
type TradeParty struct {
	ID                         *udt.ID                 `json:",omitempty"`
	GlobalID                   []*udt.ID               `json:",omitempty"`
	Name                       *udt.Text               `json:",omitempty"`
	Description                *udt.Text               `json:",omitempty"`
	SpecifiedLegalOrganization *LegalOrganization      `json:",omitempty"`
	DefinedTradeContact        *TradeContact           `json:",omitempty"`
	PostalTradeAddress         *TradeAddress           `json:",omitempty"`
	URIUniversalCommunication  *UniversalCommunication `json:",omitempty"`
	SpecifiedTaxRegistration   []*TaxRegistration      `json:",omitempty"`
}

type LegalOrganization struct {
	ID                  *udt.ID   `json:",omitempty"`
	TradingBusinessName *udt.Text `json:",omitempty"`
}

type TradeContact struct {
	PersonName                      *udt.Text               `json:",omitempty"`
	DepartmentName                  *udt.Text               `json:",omitempty"`
	TelephoneUniversalCommunication *UniversalCommunication `json:",omitempty"`
	FaxUniversalCommunication       *UniversalCommunication `json:",omitempty"`
	EmailURIUniversalCommunication  *UniversalCommunication `json:",omitempty"`
}

// UniversalCommunication is a phone number or an electronic address.
type UniversalCommunication struct {
	URIID          *udt.ID   `json:",omitempty"`
	CompleteNumber *udt.Text `json:",omitempty"`
}

type TradeAddress struct {
	PostcodeCode           *udt.Code `json:",omitempty"`
	LineOne                *udt.Text `json:",omitempty"`
	LineTwo                *udt.Text `json:",omitempty"`
	LineThree              *udt.Text `json:",omitempty"`
	CityName               *udt.Text `json:",omitempty"`
	CountryID              *udt.Code `json:",omitempty"`
	CountrySubDivisionName *udt.Text `json:",omitempty"`
}

// TaxRegistration carries a VAT (scheme VA) or local tax number (scheme FC).
type TaxRegistration struct {
	ID *udt.ID `json:",omitempty"`
}

var (
	PartyID = capability.Scalar("TradeParty", "ID", profile.BasicWL,
		func(n *TradeParty, v *udt.ID) { n.ID = v })
	PartyGlobalID = capability.List("TradeParty", "GlobalID", profile.BasicWL,
		func(n *TradeParty, v *udt.ID) { n.GlobalID = append(n.GlobalID, v) })
	PartyName = capability.Scalar("TradeParty", "Name", profile.Minimum,
		func(n *TradeParty, v *udt.Text) { n.Name = v })
	PartyDescription = capability.Scalar("TradeParty", "Description", profile.EN16931,
		func(n *TradeParty, v *udt.Text) { n.Description = v })
	PartyLegalOrganization = capability.Scalar("TradeParty", "SpecifiedLegalOrganization", profile.Minimum,
		func(n *TradeParty, v *LegalOrganization) { n.SpecifiedLegalOrganization = v })
	PartyContact = capability.Scalar("TradeParty", "DefinedTradeContact", profile.EN16931,
		func(n *TradeParty, v *TradeContact) { n.DefinedTradeContact = v })
	PartyPostalAddress = capability.Scalar("TradeParty", "PostalTradeAddress", profile.Minimum,
		func(n *TradeParty, v *TradeAddress) { n.PostalTradeAddress = v })
	PartyElectronicAddress = capability.Scalar("TradeParty", "URIUniversalCommunication", profile.BasicWL,
		func(n *TradeParty, v *UniversalCommunication) { n.URIUniversalCommunication = v })
	PartyTaxRegistration = capability.List("TradeParty", "SpecifiedTaxRegistration", profile.Minimum,
		func(n *TradeParty, v *TaxRegistration) {
			n.SpecifiedTaxRegistration = append(n.SpecifiedTaxRegistration, v)
		})
)

var (
	LegalOrganizationID = capability.Scalar("LegalOrganization", "ID", profile.Minimum,
		func(n *LegalOrganization, v *udt.ID) { n.ID = v })
	LegalOrganizationTradingName = capability.Scalar("LegalOrganization", "TradingBusinessName", profile.BasicWL,
		func(n *LegalOrganization, v *udt.Text) { n.TradingBusinessName = v })
)

var (
	ContactPersonName = capability.Scalar("TradeContact", "PersonName", profile.EN16931,
		func(n *TradeContact, v *udt.Text) { n.PersonName = v })
	ContactDepartmentName = capability.Scalar("TradeContact", "DepartmentName", profile.EN16931,
		func(n *TradeContact, v *udt.Text) { n.DepartmentName = v })
	ContactTelephone = capability.Scalar("TradeContact", "TelephoneUniversalCommunication", profile.EN16931,
		func(n *TradeContact, v *UniversalCommunication) { n.TelephoneUniversalCommunication = v })
	ContactFax = capability.Scalar("TradeContact", "FaxUniversalCommunication", profile.Extended,
		func(n *TradeContact, v *UniversalCommunication) { n.FaxUniversalCommunication = v })
	ContactEmail = capability.Scalar("TradeContact", "EmailURIUniversalCommunication", profile.EN16931,
		func(n *TradeContact, v *UniversalCommunication) { n.EmailURIUniversalCommunication = v })
)

var (
	CommunicationURIID = capability.Scalar("UniversalCommunication", "URIID", profile.BasicWL,
		func(n *UniversalCommunication, v *udt.ID) { n.URIID = v })
	CommunicationCompleteNumber = capability.Scalar("UniversalCommunication", "CompleteNumber", profile.EN16931,
		func(n *UniversalCommunication, v *udt.Text) { n.CompleteNumber = v })
)

var (
	AddressPostcode = capability.Scalar("TradeAddress", "PostcodeCode", profile.BasicWL,
		func(n *TradeAddress, v *udt.Code) { n.PostcodeCode = v })
	AddressLineOne = capability.Scalar("TradeAddress", "LineOne", profile.BasicWL,
		func(n *TradeAddress, v *udt.Text) { n.LineOne = v })
	AddressLineTwo = capability.Scalar("TradeAddress", "LineTwo", profile.BasicWL,
		func(n *TradeAddress, v *udt.Text) { n.LineTwo = v })
	AddressLineThree = capability.Scalar("TradeAddress", "LineThree", profile.BasicWL,
		func(n *TradeAddress, v *udt.Text) { n.LineThree = v })
	AddressCity = capability.Scalar("TradeAddress", "CityName", profile.BasicWL,
		func(n *TradeAddress, v *udt.Text) { n.CityName = v })
	AddressCountry = capability.Scalar("TradeAddress", "CountryID", profile.Minimum,
		func(n *TradeAddress, v *udt.Code) { n.CountryID = v })
	AddressSubDivision = capability.Scalar("TradeAddress", "CountrySubDivisionName", profile.BasicWL,
		func(n *TradeAddress, v *udt.Text) { n.CountrySubDivisionName = v })
)

var TaxRegistrationID = capability.Scalar("TaxRegistration", "ID", profile.Minimum,
	func(n *TaxRegistration, v *udt.ID) { n.ID = v })
