package builder_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/rezonia/zugferd/internal/builder"
	"github.com/rezonia/zugferd/internal/capability"
	"github.com/rezonia/zugferd/internal/profile"
	"github.com/rezonia/zugferd/internal/ram"
)

// gatedOp is a builder call whose whole effect hangs on one field.
type gatedOp struct {
	name  string
	field capability.Field
	call  func(*builder.Builder)
}

var delivered = time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

var gatedOps = []gatedOp{
	{"SetIsTestDocument", ram.ContextTestIndicator.Field(), func(b *builder.Builder) { b.SetIsTestDocument() }},
	{"SetIsDocumentCopy", ram.DocumentCopyIndicator.Field(), func(b *builder.Builder) { b.SetIsDocumentCopy() }},
	{"AddDocumentNote", ram.DocumentIncludedNote.Field(), func(b *builder.Builder) { b.AddDocumentNote("note", "", "") }},
	{"SetDocumentTaxCurrency", ram.SettlementTaxCurrency.Field(), func(b *builder.Builder) { b.SetDocumentTaxCurrency("USD") }},
	{"SetShipTo", ram.DeliveryShipTo.Field(), func(b *builder.Builder) { b.SetShipTo(builder.PartyDetails{Name: "Dock 4"}) }},
	{"SetUltimateShipTo", ram.DeliveryUltimateShipTo.Field(), func(b *builder.Builder) { b.SetUltimateShipTo(builder.PartyDetails{Name: "Site"}) }},
	{"SetProductEndUserTradeParty", ram.AgreementProductEndUser.Field(), func(b *builder.Builder) {
		b.SetProductEndUserTradeParty(builder.PartyDetails{Name: "User"})
	}},
	{"SetSellerTaxRepresentativeTradeParty", ram.AgreementSellerTaxRepresentative.Field(), func(b *builder.Builder) {
		b.SetSellerTaxRepresentativeTradeParty(builder.PartyDetails{Name: "Rep"})
	}},
	{"SetInvoicer", ram.SettlementInvoicer.Field(), func(b *builder.Builder) { b.SetInvoicer(builder.PartyDetails{Name: "Invoicer"}) }},
	{"SetPayee", ram.SettlementPayee.Field(), func(b *builder.Builder) { b.SetPayee(builder.PartyDetails{Name: "Factor"}) }},
	{"SetDeliveryTerms", ram.AgreementDeliveryTerms.Field(), func(b *builder.Builder) { b.SetDeliveryTerms("EXW") }},
	{"SetSellerOrderReferencedDocument", ram.AgreementSellerOrder.Field(), func(b *builder.Builder) {
		b.SetSellerOrderReferencedDocument("SO-1", nil)
	}},
	{"SetContractReferencedDocument", ram.AgreementContract.Field(), func(b *builder.Builder) {
		b.SetContractReferencedDocument("CT-1", nil)
	}},
	{"AddAdditionalReferencedDocument", ram.AgreementAdditionalDocument.Field(), func(b *builder.Builder) {
		b.AddAdditionalReferencedDocument(builder.ReferencedDocument{IssuerAssignedID: "A-1"})
	}},
	{"SetProcuringProject", ram.AgreementProcuringProject.Field(), func(b *builder.Builder) { b.SetProcuringProject("P-1", "Project") }},
	{"AddUltimateCustomerOrderReferencedDocument", ram.AgreementUltimateCustomerOrder.Field(), func(b *builder.Builder) {
		b.AddUltimateCustomerOrderReferencedDocument("UC-1", nil)
	}},
	{"SetSupplyChainEvent", ram.DeliveryEvent.Field(), func(b *builder.Builder) { b.SetSupplyChainEvent(&delivered) }},
	{"SetDespatchAdviceReferencedDocument", ram.DeliveryDespatchAdvice.Field(), func(b *builder.Builder) {
		b.SetDespatchAdviceReferencedDocument("DA-1", "", nil)
	}},
	{"SetReceivingAdviceReferencedDocument", ram.DeliveryReceivingAdvice.Field(), func(b *builder.Builder) {
		b.SetReceivingAdviceReferencedDocument("RA-1", "", nil)
	}},
	{"SetDeliveryNoteReferencedDocument", ram.DeliveryNote.Field(), func(b *builder.Builder) {
		b.SetDeliveryNoteReferencedDocument("DN-1", "", nil)
	}},
	{"AddPaymentMeans", ram.SettlementPaymentMeans.Field(), func(b *builder.Builder) { b.AddPaymentMeans(builder.PaymentMeans{TypeCode: "58"}) }},
	{"AddDocumentTaxSimple", ram.SettlementTax.Field(), func(b *builder.Builder) { b.AddDocumentTaxSimple("S", "VAT", 100, 19, nil) }},
	{"SetDocumentBillingPeriod", ram.SettlementBillingPeriod.Field(), func(b *builder.Builder) { b.SetDocumentBillingPeriod(&delivered, nil) }},
	{"AddPaymentTerm", ram.SettlementPaymentTerms.Field(), func(b *builder.Builder) { b.AddPaymentTerm(builder.PaymentTerm{Description: "30 days"}) }},
	{"AddNewPosition", ram.TransactionLineItem.Field(), func(b *builder.Builder) { b.AddNewPosition("1", "", "") }},
}

func TestUnsupportedCallsLeaveDocumentUnchanged(t *testing.T) {
	for _, p := range profile.All() {
		for _, op := range gatedOps {
			t.Run(fmt.Sprintf("%s/%s", p, op.name), func(t *testing.T) {
				b := builder.New(p)
				before := snapshot(t, b)

				op.call(b)
				require.NoError(t, b.Err())

				if capability.Supports(p, op.field) {
					assert.NotEqual(t, before, snapshot(t, b))
					return
				}
				assert.Equal(t, before, snapshot(t, b))
				assert.NotEmpty(t, b.Skipped())
			})
		}
	}
}

func TestUnsupportedCallsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := rapid.SampledFrom(profile.All()).Draw(t, "profile")
		ops := rapid.SliceOfN(rapid.SampledFrom(gatedOps), 1, 20).Draw(t, "ops")

		b := builder.New(p)
		for _, op := range ops {
			before := snapshot(t, b)
			op.call(b)
			if b.Err() != nil {
				t.Fatalf("%s: %v", op.name, b.Err())
			}
			if !capability.Supports(p, op.field) && before != snapshot(t, b) {
				t.Fatalf("%s changed a %s document", op.name, p)
			}
		}
	})
}

func TestChainingMatchesSeparateCalls(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := rapid.SampledFrom(profile.All()).Draw(t, "profile")
		notes := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,12}`), 0, 8).Draw(t, "notes")
		reference := rapid.StringMatching(`[A-Z0-9-]{0,10}`).Draw(t, "reference")

		chained := builder.New(p)
		b := chained
		for _, n := range notes {
			b = b.AddDocumentNote(n, "", "")
		}
		b = b.SetBuyer(builder.PartyDetails{Name: "Globex"}, reference)
		if b != chained {
			t.Fatalf("chained call returned a different builder")
		}

		separate := builder.New(p)
		for _, n := range notes {
			separate.AddDocumentNote(n, "", "")
		}
		separate.SetBuyer(builder.PartyDetails{Name: "Globex"}, reference)

		if snapshot(t, chained) != snapshot(t, separate) {
			t.Fatalf("chained and separate documents differ")
		}
	})
}

func TestListOrderProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ids := rapid.SliceOfN(rapid.StringMatching(`[A-Z]{2}-[0-9]{1,4}`), 1, 10).Draw(t, "ids")

		b := builder.New(profile.Extended)
		for _, id := range ids {
			b.AddUltimateCustomerOrderReferencedDocument(id, nil)
		}

		got := b.Invoice().Agreement().UltimateCustomerOrderReferencedDocument
		if len(got) != len(ids) {
			t.Fatalf("got %d references, want %d", len(got), len(ids))
		}
		for i, id := range ids {
			if got[i].IssuerAssignedID.Value() != id {
				t.Fatalf("reference %d is %q, want %q", i, got[i].IssuerAssignedID.Value(), id)
			}
		}
	})
}

func TestSupportedValuesRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := rapid.SampledFrom(profile.All()).Draw(t, "profile")
		reference := rapid.StringMatching(`[A-Za-z0-9]{1,16}`).Draw(t, "reference")
		cents := rapid.Int64Range(0, 10_000_000).Draw(t, "cents")
		rate := rapid.SampledFrom([]int64{0, 7, 19}).Draw(t, "rate")

		basis := decimal.New(cents, -2)
		b := builder.New(p).
			SetDocumentInformation(documentInfo()).
			SetBuyer(builder.PartyDetails{Name: "Globex"}, reference).
			AddDocumentTax(builder.Tax{
				CategoryCode:     "S",
				TypeCode:         "VAT",
				BasisAmount:      basis,
				CalculatedAmount: basis.Mul(decimal.NewFromInt(rate)).Div(decimal.NewFromInt(100)),
				RatePercent:      decimal.NewNullDecimal(decimal.NewFromInt(rate)),
			})
		if b.Err() != nil {
			t.Fatalf("unexpected error: %v", b.Err())
		}

		if got := b.Invoice().Agreement().BuyerReference.Value(); got != reference {
			t.Fatalf("buyer reference %q, want %q", got, reference)
		}

		taxes := b.Invoice().Settlement().ApplicableTradeTax
		if !capability.Supports(p, ram.SettlementTax.Field()) {
			if len(taxes) != 0 {
				t.Fatalf("%s kept a tax breakdown", p)
			}
			return
		}
		if len(taxes) != 1 || !taxes[0].BasisAmount.Value().Equal(basis) {
			t.Fatalf("tax basis did not survive: %+v", taxes)
		}
		if !taxes[0].RateApplicablePercent.Value().Equal(decimal.NewFromInt(rate)) {
			t.Fatalf("tax rate did not survive")
		}
	})
}

func TestSkipLogProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := rapid.SampledFrom(profile.All()).Draw(t, "profile")
		ops := rapid.SliceOfN(rapid.SampledFrom(gatedOps), 0, 15).Draw(t, "ops")

		b := builder.New(p)
		for _, op := range ops {
			op.call(b)
		}
		for _, s := range b.Skipped() {
			if s.Profile != p {
				t.Fatalf("skip recorded for %s in a %s builder", s.Profile, p)
			}
			f, ok := capability.Lookup(s.Field)
			if !ok {
				t.Fatalf("skip names unknown field %q", s.Field)
			}
			if capability.Supports(p, f) {
				t.Fatalf("%s was skipped although %s supports it", s.Field, p)
			}
		}
	})
}
