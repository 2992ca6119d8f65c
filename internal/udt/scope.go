package udt

import (
	"strings"

	"github.com/shopspring/decimal"

	money "github.com/rezonia/zugferd/internal/decimal"
)

// CurrencyScope issues amounts rounded to a currency that may be set later.
// Issued amounts keep the caller's value and SetCurrency rounds all of
// them again from it.
type CurrencyScope struct {
	currency string
	issued   []scoped
}

type scoped struct {
	amount *Amount
	raw    decimal.Decimal
	tagged bool
}

// NewCurrencyScope creates a scope without a currency
func NewCurrencyScope() *CurrencyScope {
	return &CurrencyScope{}
}

// Currency returns the current currency code
func (s *CurrencyScope) Currency() string {
	return s.currency
}

// Amount issues an untagged amount. An invalid value yields nil.
func (s *CurrencyScope) Amount(value decimal.NullDecimal) *Amount {
	return s.issue(value, false)
}

// TaggedAmount issues an amount carrying the scope's currency as its
// currencyID.
func (s *CurrencyScope) TaggedAmount(value decimal.NullDecimal) *Amount {
	return s.issue(value, true)
}

// SetCurrency changes the currency and rescales every issued amount.
func (s *CurrencyScope) SetCurrency(code string) {
	s.currency = strings.ToUpper(strings.TrimSpace(code))
	for _, sc := range s.issued {
		s.scale(sc)
	}
}

func (s *CurrencyScope) issue(value decimal.NullDecimal, tagged bool) *Amount {
	if !value.Valid {
		return nil
	}
	sc := scoped{amount: &Amount{}, raw: value.Decimal, tagged: tagged}
	s.scale(sc)
	s.issued = append(s.issued, sc)
	return sc.amount
}

func (s *CurrencyScope) scale(sc scoped) {
	sc.amount.value = money.RoundCurrency(sc.raw, s.currency)
	if sc.tagged {
		sc.amount.currencyID = s.currency
	}
}
