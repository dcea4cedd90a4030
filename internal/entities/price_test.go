package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice_Rounds(t *testing.T) {
	assert.Equal(t, "10.00", NewPrice(decimal.RequireFromString("9.999")).StringFixed(PriceScale))
	assert.Equal(t, "0.10", NewPrice(decimal.RequireFromString("0.1")).StringFixed(PriceScale))
}

func TestPrice_Fits(t *testing.T) {
	tests := []struct {
		price string
		fits  bool
	}{
		{"0", true},
		{"9999999999999999.99", true},
		{"-9999999999999999.99", true},
		{"9999999999999999.995", false},
		{"10000000000000000", false},
		{"1e30", false},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			p := Price{Decimal: decimal.RequireFromString(tt.price)}
			assert.Equal(t, tt.fits, p.Fits())
		})
	}
}

func TestPrice_ValueIsFixedText(t *testing.T) {
	v, err := NewPrice(decimal.RequireFromString("1234567890123456.78")).Value()
	require.NoError(t, err)
	assert.Equal(t, "1234567890123456.78", v)

	v, err = Price{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "0.00", v)
}

func TestPrice_ScanText(t *testing.T) {
	var p Price
	require.NoError(t, p.Scan("9999999999999999.99"))
	assert.Equal(t, "9999999999999999.99", p.StringFixed(PriceScale))
}
