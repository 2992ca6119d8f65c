package udt

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/h2non/filetype"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	money "github.com/rezonia/zugferd/internal/decimal"
	"github.com/rezonia/zugferd/internal/model"
)

// attachmentTypes are the MIME codes EN16931 allows for embedded documents
var attachmentTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"text/csv":        true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.oasis.opendocument.spreadsheet":                    true,
}

var dateLayouts = []string{
	"2006-01-02",
	"20060102",
	"02.01.2006",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

func absent(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NewID wraps an identifier. An empty value yields nil.
func NewID(value, schemeID string) *ID {
	if absent(value) {
		return nil
	}
	return &ID{value: value, schemeID: strings.TrimSpace(schemeID)}
}

// NewCode wraps a code list value
func NewCode(value string) *Code {
	if absent(value) {
		return nil
	}
	return &Code{value: value}
}

// NewText wraps free text
func NewText(value string) *Text {
	if absent(value) {
		return nil
	}
	return &Text{value: value}
}

// NewAmount wraps an amount rounded to the minor unit of its currency.
func NewAmount(value decimal.Decimal, currencyID string) *Amount {
	return &Amount{
		value:      money.RoundCurrency(value, currencyID),
		currencyID: strings.ToUpper(strings.TrimSpace(currencyID)),
	}
}

// NewNullAmount wraps an optional amount
func NewNullAmount(value decimal.NullDecimal, currencyID string) *Amount {
	if !value.Valid {
		return nil
	}
	return NewAmount(value.Decimal, currencyID)
}

// NewAmountFromFloat wraps an optional float amount
func NewAmountFromFloat(value *float64, currencyID string) *Amount {
	return NewNullAmount(money.FromFloatPtr(value), currencyID)
}

// NewPrice wraps a unit price. Prices keep quantity precision rather than
// the currency minor unit.
func NewPrice(value decimal.NullDecimal, currencyID string) *Amount {
	if !value.Valid {
		return nil
	}
	return &Amount{
		value:      money.RoundQuantity(value.Decimal),
		currencyID: strings.ToUpper(strings.TrimSpace(currencyID)),
	}
}

// NewQuantity wraps an optional quantity
func NewQuantity(value decimal.NullDecimal, unitCode string) *Quantity {
	if !value.Valid {
		return nil
	}
	return &Quantity{value: money.RoundQuantity(value.Decimal), unitCode: strings.TrimSpace(unitCode)}
}

// NewPercent wraps an optional percentage
func NewPercent(value decimal.NullDecimal) *Percent {
	if !value.Valid {
		return nil
	}
	return &Percent{value: money.RoundPercent(value.Decimal)}
}

// NewIndicator wraps a flag
func NewIndicator(value bool) *Indicator {
	return &Indicator{value: value}
}

// NewDateTime wraps a date. Nil or zero times yield nil.
func NewDateTime(value *time.Time) *DateTime {
	if value == nil || value.IsZero() {
		return nil
	}
	return &DateTime{value: *value, format: DateFormat102}
}

// NewPeriod wraps a date range. It is nil only if both bounds are absent.
func NewPeriod(start, end *time.Time) *Period {
	s, e := NewDateTime(start), NewDateTime(end)
	if s == nil && e == nil {
		return nil
	}
	return &Period{start: s, end: e}
}

// NewBinaryObject wraps an attachment and detects its MIME code from content.
// Empty data yields nil.
func NewBinaryObject(filename string, data []byte) (*BinaryObject, error) {
	if len(data) == 0 {
		return nil, nil
	}

	mimeCode, err := detectMimeCode(filename, data)
	if err != nil {
		return nil, model.NewConstructionError("AttachmentBinaryObject", filename, "cannot detect attachment type", err)
	}
	if !attachmentTypes[mimeCode] {
		return nil, model.NewConstructionError("AttachmentBinaryObject", filename, "attachment type "+mimeCode+" is not allowed", nil)
	}

	stored := make([]byte, len(data))
	copy(stored, data)
	return &BinaryObject{data: stored, mimeCode: mimeCode, filename: filepath.Base(filename)}, nil
}

func detectMimeCode(filename string, data []byte) (string, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return "", err
	}
	if kind != filetype.Unknown {
		return kind.MIME.Value, nil
	}
	// CSV has no magic bytes
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return "text/csv", nil
	}
	return "application/octet-stream", nil
}

// ParseDateTime parses a date string. An empty string yields nil.
func ParseDateTime(field, s string) (*DateTime, error) {
	if absent(s) {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return NewDateTime(&t), nil
		}
	}
	return nil, model.NewConstructionError(field, s, "unparsable date", nil)
}

// ParseAmount parses a decimal string into an amount
func ParseAmount(field, s, currencyID string) (*Amount, error) {
	if absent(s) {
		return nil, nil
	}
	d, err := money.FromString(s)
	if err != nil {
		return nil, model.NewConstructionError(field, s, "invalid amount", err)
	}
	return NewAmount(d, currencyID), nil
}

// ParseQuantity parses a decimal string into a quantity
func ParseQuantity(field, s, unitCode string) (*Quantity, error) {
	if absent(s) {
		return nil, nil
	}
	d, err := money.FromString(s)
	if err != nil {
		return nil, model.NewConstructionError(field, s, "invalid quantity", err)
	}
	return NewQuantity(decimal.NewNullDecimal(d), unitCode), nil
}

// ParseCurrency validates an ISO 4217 currency code and wraps it as an ID
func ParseCurrency(field, s string) (*ID, error) {
	if absent(s) {
		return nil, nil
	}
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return nil, model.NewConstructionError(field, s, "unknown ISO 4217 currency", err)
	}
	return NewID(unit.String(), ""), nil
}

// ParseLanguage validates a BCP 47 language tag and wraps it as an ID
func ParseLanguage(field, s string) (*ID, error) {
	if absent(s) {
		return nil, nil
	}
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, model.NewConstructionError(field, s, "invalid language tag", err)
	}
	return NewID(tag.String(), ""), nil
}

// ParseCountry validates an ISO 3166-1 alpha-2 country code
func ParseCountry(field, s string) (*Code, error) {
	if absent(s) {
		return nil, nil
	}
	region, err := language.ParseRegion(strings.TrimSpace(s))
	if err != nil || !region.IsCountry() {
		return nil, model.NewConstructionError(field, s, "unknown ISO 3166 country", err)
	}
	return NewCode(region.String()), nil
}
