package decimal_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/zugferd/internal/decimal"
)

func TestFromString(t *testing.T) {
	d, err := decimal.FromString(" 123456.78 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.RequireFromString("123456.78")))

	_, err = decimal.FromString("not-a-number")
	require.Error(t, err)
}

func TestFromFloatPtr(t *testing.T) {
	assert.False(t, decimal.FromFloatPtr(nil).Valid)

	v := 19.0
	nd := decimal.FromFloatPtr(&v)
	require.True(t, nd.Valid)
	assert.True(t, nd.Decimal.Equal(dec.NewFromInt(19)))
}

func TestScaleFor(t *testing.T) {
	tests := []struct {
		currency string
		expected int32
	}{
		{"EUR", 2},
		{"eur", 2},
		{"", 2},
		{"JPY", 0},
		{"VND", 0},
		{"KWD", 3},
		{"CLF", 4},
		{"UYI", 0},
		{"QQQ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			assert.Equal(t, tt.expected, decimal.ScaleFor(tt.currency))
		})
	}
}

func TestRoundCurrency(t *testing.T) {
	d := dec.RequireFromString("123456.789")

	assert.True(t, decimal.RoundCurrency(d, "EUR").Equal(dec.RequireFromString("123456.79")))
	assert.True(t, decimal.RoundCurrency(d, "JPY").Equal(dec.NewFromInt(123457)))
	assert.True(t, decimal.RoundCurrency(d, "BHD").Equal(dec.RequireFromString("123456.789")))
}

func TestRoundQuantity(t *testing.T) {
	d := dec.RequireFromString("1.234567")
	assert.True(t, decimal.RoundQuantity(d).Equal(dec.RequireFromString("1.2346")))
}

func TestCalculatePercentage(t *testing.T) {
	amount := dec.NewFromInt(1000)
	percentage := dec.NewFromInt(19)

	// 19% of 1000 = 190
	result := decimal.CalculatePercentage(amount, percentage, "EUR")
	assert.True(t, result.Equal(dec.NewFromInt(190)))
}
