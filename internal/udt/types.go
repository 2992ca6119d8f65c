// Package udt holds the unqualified data types of the cross industry invoice:
// small immutable wrappers around primitive values. Constructors return nil
// for absent input so an unset optional primitive never reaches the document
// graph.
package udt

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat102 is the UN/CEFACT date format code for CCYYMMDD.
const DateFormat102 = "102"

// ID is an identifier with an optional scheme.
type ID struct {
	value    string
	schemeID string
}

func (v *ID) Value() string    { return v.value }
func (v *ID) SchemeID() string { return v.schemeID }

func (v *ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value    string `json:"value"`
		SchemeID string `json:"schemeID,omitempty"`
	}{v.value, v.schemeID})
}

// Code is a value from a code list.
type Code struct {
	value string
}

func (v *Code) Value() string { return v.value }

func (v *Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// Text is free text.
type Text struct {
	value string
}

func (v *Text) Value() string { return v.value }

func (v *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// Amount is a monetary value, optionally tagged with its currency.
type Amount struct {
	value      decimal.Decimal
	currencyID string
}

func (v *Amount) Value() decimal.Decimal { return v.value }
func (v *Amount) CurrencyID() string     { return v.currencyID }

func (v *Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value      decimal.Decimal `json:"value"`
		CurrencyID string          `json:"currencyID,omitempty"`
	}{v.value, v.currencyID})
}

// Quantity is a measured count with a UN/ECE rec 20 unit code.
type Quantity struct {
	value    decimal.Decimal
	unitCode string
}

func (v *Quantity) Value() decimal.Decimal { return v.value }
func (v *Quantity) UnitCode() string       { return v.unitCode }

func (v *Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value    decimal.Decimal `json:"value"`
		UnitCode string          `json:"unitCode,omitempty"`
	}{v.value, v.unitCode})
}

// Percent is a rate expressed in percent.
type Percent struct {
	value decimal.Decimal
}

func (v *Percent) Value() decimal.Decimal { return v.value }

func (v *Percent) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// Indicator is a boolean flag.
type Indicator struct {
	value bool
}

func (v *Indicator) Value() bool { return v.value }

func (v *Indicator) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// DateTime is a point in time carried with its format code.
type DateTime struct {
	value  time.Time
	format string
}

func (v *DateTime) Value() time.Time { return v.value }
func (v *DateTime) Format() string   { return v.format }

// String renders the value in its format code
func (v *DateTime) String() string {
	return v.value.Format("20060102")
}

func (v *DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value  string `json:"value"`
		Format string `json:"format"`
	}{v.String(), v.format})
}

// Period is a date range. Either bound may be missing.
type Period struct {
	start *DateTime
	end   *DateTime
}

func (v *Period) Start() *DateTime { return v.start }
func (v *Period) End() *DateTime   { return v.end }

func (v *Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start *DateTime `json:"start,omitempty"`
		End   *DateTime `json:"end,omitempty"`
	}{v.start, v.end})
}

// BinaryObject is an embedded attachment.
type BinaryObject struct {
	data     []byte
	mimeCode string
	filename string
}

// Data returns a copy of the attachment bytes.
func (v *BinaryObject) Data() []byte {
	out := make([]byte, len(v.data))
	copy(out, v.data)
	return out
}

func (v *BinaryObject) MimeCode() string { return v.mimeCode }
func (v *BinaryObject) Filename() string { return v.filename }

func (v *BinaryObject) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		MimeCode string `json:"mimeCode"`
		Filename string `json:"filename"`
		Size     int    `json:"size"`
	}{v.mimeCode, v.filename, len(v.data)})
}
