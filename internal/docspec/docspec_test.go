package docspec_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/zugferd/internal/docspec"
	"github.com/rezonia/zugferd/internal/model"
	"github.com/rezonia/zugferd/internal/profile"
)

func TestLoadFile_BuildsEN16931Invoice(t *testing.T) {
	d, err := docspec.LoadFile("testdata/invoice.yaml")
	require.NoError(t, err)

	b, err := d.Build("")
	require.NoError(t, err)
	assert.Equal(t, profile.EN16931, b.Profile())

	doc := b.Invoice()
	assert.Equal(t, "RE-2026-0042", doc.ExchangedDocument.ID.Value())
	require.Len(t, doc.ExchangedDocument.IncludedNote, 2)
	assert.Equal(t, "AAI", doc.ExchangedDocument.IncludedNote[1].SubjectCode.Value())

	agreement := doc.Agreement()
	seller := agreement.SellerTradeParty
	assert.Equal(t, "Acme GmbH", seller.Name.Value())
	assert.Equal(t, "Berlin", seller.PostalTradeAddress.CityName.Value())
	require.Len(t, seller.SpecifiedTaxRegistration, 1)
	assert.Equal(t, "VA", seller.SpecifiedTaxRegistration[0].ID.SchemeID())
	assert.Equal(t, "EM", seller.URIUniversalCommunication.URIID.SchemeID())
	assert.Equal(t, "04011000-12345-34", agreement.BuyerReference.Value())
	assert.Equal(t, "AT", agreement.BuyerTradeParty.PostalTradeAddress.CountryID.Value())

	require.Len(t, agreement.AdditionalReferencedDocument, 1)
	attachment := agreement.AdditionalReferencedDocument[0].AttachmentBinaryObject
	require.NotNil(t, attachment)
	assert.Equal(t, "text/csv", attachment.MimeCode())
	assert.Equal(t, "timesheet.csv", attachment.Filename())

	taxes := doc.Settlement().ApplicableTradeTax
	require.Len(t, taxes, 1)
	assert.True(t, taxes[0].CalculatedAmount.Value().Equal(decimal.NewFromInt(190)),
		"calculated amount derived from basis and rate, got %s", taxes[0].CalculatedAmount.Value())

	lines := doc.SupplyChainTradeTransaction.IncludedSupplyChainTradeLineItem
	require.Len(t, lines, 1)
	assert.Equal(t, "Blue widget, 10 cm", lines[0].SpecifiedTradeProduct.Description.Value())
	assert.Equal(t, "H87", lines[0].SpecifiedLineTradeDelivery.BilledQuantity.UnitCode())

	assert.Empty(t, b.Skipped())
}

func TestBuild_ProfileOverride(t *testing.T) {
	d, err := docspec.LoadFile("testdata/invoice.yaml")
	require.NoError(t, err)

	b, err := d.Build("minimum")
	require.NoError(t, err)
	assert.Equal(t, profile.Minimum, b.Profile())

	doc := b.Invoice()
	assert.Empty(t, doc.SupplyChainTradeTransaction.IncludedSupplyChainTradeLineItem)
	assert.Empty(t, doc.ExchangedDocument.IncludedNote)
	assert.Empty(t, doc.Agreement().AdditionalReferencedDocument)
	assert.Equal(t, "PO-4711", doc.Agreement().BuyerOrderReferencedDocument.IssuerAssignedID.Value())
	assert.NotEmpty(t, b.Skipped())
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := docspec.Load(strings.NewReader("profile: BASIC\ndocument:\n  numbr: \"1\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode description YAML")
}

func TestApply_InvalidDate(t *testing.T) {
	d, err := docspec.Load(strings.NewReader(`
profile: BASIC
document:
  number: "1"
  type_code: "380"
  date: "09/03/2026"
  currency: EUR
`))
	require.NoError(t, err)

	_, err = d.Build("")
	var cErr *model.ConstructionError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "document.date", cErr.Field)
}

func TestApply_InvalidAmount(t *testing.T) {
	d, err := docspec.Load(strings.NewReader(`
profile: BASIC
document:
  number: "1"
  type_code: "380"
  date: "2026-03-09"
  currency: EUR
taxes:
  - category_code: S
    type_code: VAT
    basis_amount: "1.000,00"
    calculated_amount: "0"
`))
	require.NoError(t, err)

	_, err = d.Build("")
	var cErr *model.ConstructionError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "taxes[0].basis_amount", cErr.Field)
}

func TestApply_TaxWithoutAmountOrRate(t *testing.T) {
	d, err := docspec.Load(strings.NewReader(`
profile: BASIC
document:
  number: "1"
  type_code: "380"
  date: "2026-03-09"
  currency: EUR
taxes:
  - category_code: E
    type_code: VAT
    basis_amount: "100"
`))
	require.NoError(t, err)

	_, err = d.Build("")
	var reqErr *model.RequiredFieldError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "taxes[0].calculated_amount", reqErr.Field)
}

func TestApply_BuilderErrorSurfaces(t *testing.T) {
	d, err := docspec.Load(strings.NewReader(`
profile: EN16931
document:
  type_code: "380"
  date: "2026-03-09"
  currency: EUR
`))
	require.NoError(t, err)

	_, err = d.Build("")
	var reqErr *model.RequiredFieldError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "SetDocumentInformation", reqErr.Operation)
	assert.Equal(t, "Number", reqErr.Field)
}

func TestApply_MissingAttachment(t *testing.T) {
	d, err := docspec.Load(strings.NewReader(`
profile: EN16931
document:
  number: "1"
  type_code: "380"
  date: "2026-03-09"
  currency: EUR
additional_documents:
  - id: X
    attachment: does-not-exist.pdf
`))
	require.NoError(t, err)
	d.SetBaseDir(t.TempDir())

	_, err = d.Build("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "additional_documents[0].attachment")
}

func attachmentDescription(t *testing.T, path string) *docspec.Description {
	t.Helper()
	d, err := docspec.Load(strings.NewReader(`
profile: EN16931
document:
  number: "1"
  type_code: "380"
  date: "2026-03-09"
  currency: EUR
additional_documents:
  - id: X
    attachment: ` + strconv.Quote(path) + `
`))
	require.NoError(t, err)
	return d
}

func TestApply_AttachmentWithoutBaseDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.csv"), []byte("a,b\n"), 0o600))
	t.Chdir(dir)

	_, err := attachmentDescription(t, "notes.csv").Build("")
	var constructErr *model.ConstructionError
	require.ErrorAs(t, err, &constructErr)
	assert.Equal(t, "additional_documents[0].attachment", constructErr.Field)
}

func TestApply_AttachmentOutsideBaseDir(t *testing.T) {
	parent := t.TempDir()
	secret := filepath.Join(parent, "secret.csv")
	require.NoError(t, os.WriteFile(secret, []byte("token,hunter2\n"), 0o600))
	base := filepath.Join(parent, "descriptions")
	require.NoError(t, os.Mkdir(base, 0o700))

	for name, path := range map[string]string{
		"absolute": secret,
		"parent":   "../secret.csv",
		"nested":   "sub/../../secret.csv",
	} {
		t.Run(name, func(t *testing.T) {
			d := attachmentDescription(t, path)
			d.SetBaseDir(base)

			b, err := d.Build("")
			var constructErr *model.ConstructionError
			require.ErrorAs(t, err, &constructErr)
			assert.Equal(t, "additional_documents[0].attachment", constructErr.Field)
			for _, doc := range b.Invoice().Agreement().AdditionalReferencedDocument {
				assert.Nil(t, doc.AttachmentBinaryObject)
			}
		})
	}
}

func TestApply_AttachmentInsideBaseDir(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "files"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(base, "files", "hours.csv"), []byte("day,hours\n"), 0o600))

	d := attachmentDescription(t, "files/hours.csv")
	d.SetBaseDir(base)

	b, err := d.Build("")
	require.NoError(t, err)
	docs := b.Invoice().Agreement().AdditionalReferencedDocument
	require.Len(t, docs, 1)
	assert.Equal(t, "hours.csv", docs[0].AttachmentBinaryObject.Filename())
}

func TestResolveProfile(t *testing.T) {
	d := &docspec.Description{}
	_, err := d.ResolveProfile("")
	require.Error(t, err)

	p, err := d.ResolveProfile("xrechnung")
	require.NoError(t, err)
	assert.Equal(t, profile.XRechnung, p)

	d.Profile = "BASIC"
	p, err = d.ResolveProfile("")
	require.NoError(t, err)
	assert.Equal(t, profile.Basic, p)

	_, err = d.ResolveProfile("gold")
	assert.Error(t, err)
}
