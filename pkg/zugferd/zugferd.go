// Package zugferd provides a public API for assembling ZUGFeRD / Factur-X
// invoice documents.
//
// A Builder is created for one conformance profile. Every value handed to it
// is checked against that profile; values the profile cannot carry are
// dropped (or reported, in strict mode), so one call sequence serves every
// profile.
//
// Example usage:
//
//	b := zugferd.New(zugferd.EN16931).
//	    SetDocumentInformation(zugferd.DocumentInformation{
//	        Number: "RE-1", TypeCode: "380", Date: time.Now(), Currency: "EUR",
//	    }).
//	    SetSeller(zugferd.PartyDetails{Name: "Acme"})
//	doc, err := b.Finalize()
//	if err != nil {
//	    log.Fatal(err)
//	}
package zugferd

import (
	"github.com/rezonia/zugferd/internal/builder"
	"github.com/rezonia/zugferd/internal/capability"
	"github.com/rezonia/zugferd/internal/model"
	"github.com/rezonia/zugferd/internal/profile"
	"github.com/rezonia/zugferd/internal/ram"
)

// Re-export builder types for public API
type (
	Builder             = builder.Builder
	Option              = builder.Option
	State               = builder.State
	Serializer          = builder.Serializer
	SerializerFunc      = builder.SerializerFunc
	Embedder            = builder.Embedder
	DocumentInformation = builder.DocumentInformation
	PartyDetails        = builder.PartyDetails
	Address             = builder.Address
	LegalOrganization   = builder.LegalOrganization
	Contact             = builder.Contact
	TaxRegistration     = builder.TaxRegistration
	ReferencedDocument  = builder.ReferencedDocument
	Attachment          = builder.Attachment
	PaymentMeans        = builder.PaymentMeans
	Tax                 = builder.Tax
	PaymentTerm         = builder.PaymentTerm
	PenaltyTerms        = builder.PenaltyTerms
	Summation           = builder.Summation
	ProductDetails      = builder.ProductDetails
	ReferencedProduct   = builder.ReferencedProduct
)

// Re-export document and capability types
type (
	Document = ram.CrossIndustryInvoice
	Profile  = profile.Profile
	Field    = capability.Field
	Skip     = capability.Skip
)

// Re-export profiles
const (
	Minimum   = profile.Minimum
	BasicWL   = profile.BasicWL
	Basic     = profile.Basic
	EN16931   = profile.EN16931
	Extended  = profile.Extended
	XRechnung = profile.XRechnung
)

// Re-export lifecycle states
const (
	Building  = builder.Building
	Finalized = builder.Finalized
)

// Re-export error types
type (
	ConstructionError  = model.ConstructionError
	LogicError         = model.LogicError
	CapabilityError    = model.CapabilityError
	RequiredFieldError = model.RequiredFieldError
)

// Re-export sentinel errors
var (
	ErrFinalized   = model.ErrFinalized
	ErrNodeMissing = model.ErrNodeMissing
)

// New creates a builder for profile p
func New(p Profile, opts ...Option) *Builder {
	return builder.New(p, opts...)
}

// WithLogger sets the logger the builder reports lifecycle and skips to
var WithLogger = builder.WithLogger

// WithStrict turns unsupported values into CapabilityErrors
var WithStrict = builder.WithStrict

// ParseProfile resolves a profile by name, alias or URN
func ParseProfile(s string) (Profile, error) {
	return profile.Parse(s)
}

// Profiles returns every known profile
func Profiles() []Profile {
	return profile.All()
}

// Supports reports whether profile p defines field f
func Supports(p Profile, f Field) bool {
	return capability.Supports(p, f)
}

// Fields lists the fields profile p defines, ordered by node and name.
func Fields(p Profile) []Field {
	return capability.Fields(p)
}
