package builder

import (
	"github.com/rezonia/zugferd/internal/ram"
	"github.com/rezonia/zugferd/internal/udt"
)

// SetSeller sets the seller party
func (b *Builder) SetSeller(d PartyDetails) *Builder {
	return b.setParty("SetSeller", d, func(p *ram.TradeParty) {
		apply(b, b.doc.Agreement(), ram.AgreementSeller, p)
	})
}

// SetBuyer sets the buyer party together with the buyer reference (BT-10).
func (b *Builder) SetBuyer(d PartyDetails, buyerReference string) *Builder {
	return b.setParty("SetBuyer", d, func(p *ram.TradeParty) {
		agreement := b.doc.Agreement()
		apply(b, agreement, ram.AgreementBuyer, p)
		apply(b, agreement, ram.AgreementBuyerReference, udt.NewText(buyerReference))
	})
}

// SetSellerTaxRepresentativeTradeParty sets the seller's tax representative
func (b *Builder) SetSellerTaxRepresentativeTradeParty(d PartyDetails) *Builder {
	return b.setParty("SetSellerTaxRepresentativeTradeParty", d, func(p *ram.TradeParty) {
		apply(b, b.doc.Agreement(), ram.AgreementSellerTaxRepresentative, p)
	})
}

// SetProductEndUserTradeParty sets the party that finally uses the product
func (b *Builder) SetProductEndUserTradeParty(d PartyDetails) *Builder {
	return b.setParty("SetProductEndUserTradeParty", d, func(p *ram.TradeParty) {
		apply(b, b.doc.Agreement(), ram.AgreementProductEndUser, p)
	})
}

// SetShipTo sets the deliver-to party
func (b *Builder) SetShipTo(d PartyDetails) *Builder {
	return b.setParty("SetShipTo", d, func(p *ram.TradeParty) {
		apply(b, b.doc.Delivery(), ram.DeliveryShipTo, p)
	})
}

// SetUltimateShipTo sets the final recipient of the goods
func (b *Builder) SetUltimateShipTo(d PartyDetails) *Builder {
	return b.setParty("SetUltimateShipTo", d, func(p *ram.TradeParty) {
		apply(b, b.doc.Delivery(), ram.DeliveryUltimateShipTo, p)
	})
}

// SetShipFrom sets the dispatching party
func (b *Builder) SetShipFrom(d PartyDetails) *Builder {
	return b.setParty("SetShipFrom", d, func(p *ram.TradeParty) {
		apply(b, b.doc.Delivery(), ram.DeliveryShipFrom, p)
	})
}

// SetInvoicer sets the party issuing the invoice on behalf of the seller
func (b *Builder) SetInvoicer(d PartyDetails) *Builder {
	return b.setParty("SetInvoicer", d, func(p *ram.TradeParty) {
		apply(b, b.doc.Settlement(), ram.SettlementInvoicer, p)
	})
}

// SetInvoicee sets the party receiving the invoice on behalf of the buyer
func (b *Builder) SetInvoicee(d PartyDetails) *Builder {
	return b.setParty("SetInvoicee", d, func(p *ram.TradeParty) {
		apply(b, b.doc.Settlement(), ram.SettlementInvoicee, p)
	})
}

// SetPayee sets the party receiving the payment when it is not the seller
func (b *Builder) SetPayee(d PartyDetails) *Builder {
	return b.setParty("SetPayee", d, func(p *ram.TradeParty) {
		apply(b, b.doc.Settlement(), ram.SettlementPayee, p)
	})
}

func (b *Builder) setParty(op string, d PartyDetails, attach func(*ram.TradeParty)) *Builder {
	if !b.mutable(op) {
		return b
	}
	party := b.tradeParty(op, d)
	if b.err != nil {
		return b
	}
	attach(party)
	return b
}

// tradeParty builds the shared party shape on a detached node. Every field
// goes through the dispatcher so the result only holds what the profile
// defines.
func (b *Builder) tradeParty(op string, d PartyDetails) *ram.TradeParty {
	if !b.require(op, "Name", d.Name) {
		return nil
	}
	country, err := udt.ParseCountry("CountryID", d.Address.Country)
	if err != nil {
		b.fail(err)
		return nil
	}

	party := &ram.TradeParty{}
	apply(b, party, ram.PartyID, udt.NewID(d.ID, ""))
	apply(b, party, ram.PartyGlobalID, udt.NewID(d.GlobalID, d.GlobalIDScheme))
	apply(b, party, ram.PartyName, udt.NewText(d.Name))
	apply(b, party, ram.PartyDescription, udt.NewText(d.Description))
	apply(b, party, ram.PartyLegalOrganization, b.legalOrganization(d.LegalOrganization))
	apply(b, party, ram.PartyContact, b.contact(d.Contact))
	apply(b, party, ram.PartyPostalAddress, b.address(d.Address, country))
	apply(b, party, ram.PartyElectronicAddress, b.uriCommunication(d.ElectronicAddress, d.ElectronicAddressScheme))
	for _, reg := range d.TaxRegistrations {
		apply(b, party, ram.PartyTaxRegistration, b.taxRegistration(reg))
	}
	return party
}

func (b *Builder) address(a Address, country *udt.Code) *ram.TradeAddress {
	addr := &ram.TradeAddress{}
	apply(b, addr, ram.AddressPostcode, udt.NewCode(a.Postcode))
	apply(b, addr, ram.AddressLineOne, udt.NewText(a.LineOne))
	apply(b, addr, ram.AddressLineTwo, udt.NewText(a.LineTwo))
	apply(b, addr, ram.AddressLineThree, udt.NewText(a.LineThree))
	apply(b, addr, ram.AddressCity, udt.NewText(a.City))
	apply(b, addr, ram.AddressCountry, country)
	apply(b, addr, ram.AddressSubDivision, udt.NewText(a.SubDivision))
	return nonEmpty(addr)
}

func (b *Builder) legalOrganization(l LegalOrganization) *ram.LegalOrganization {
	org := &ram.LegalOrganization{}
	apply(b, org, ram.LegalOrganizationID, udt.NewID(l.ID, l.Scheme))
	apply(b, org, ram.LegalOrganizationTradingName, udt.NewText(l.TradingName))
	return nonEmpty(org)
}

func (b *Builder) contact(c Contact) *ram.TradeContact {
	tc := &ram.TradeContact{}
	apply(b, tc, ram.ContactPersonName, udt.NewText(c.PersonName))
	apply(b, tc, ram.ContactDepartmentName, udt.NewText(c.DepartmentName))
	apply(b, tc, ram.ContactTelephone, b.numberCommunication(c.Phone))
	apply(b, tc, ram.ContactFax, b.numberCommunication(c.Fax))
	apply(b, tc, ram.ContactEmail, b.uriCommunication(c.Email, ""))
	return nonEmpty(tc)
}

func (b *Builder) numberCommunication(number string) *ram.UniversalCommunication {
	uc := &ram.UniversalCommunication{}
	apply(b, uc, ram.CommunicationCompleteNumber, udt.NewText(number))
	return nonEmpty(uc)
}

func (b *Builder) uriCommunication(uri, scheme string) *ram.UniversalCommunication {
	uc := &ram.UniversalCommunication{}
	apply(b, uc, ram.CommunicationURIID, udt.NewID(uri, scheme))
	return nonEmpty(uc)
}

func (b *Builder) taxRegistration(r TaxRegistration) *ram.TaxRegistration {
	reg := &ram.TaxRegistration{}
	apply(b, reg, ram.TaxRegistrationID, udt.NewID(r.ID, r.Scheme))
	return nonEmpty(reg)
}
