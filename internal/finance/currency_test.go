package finance

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInputCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", ""},
		{"0", "0,00"},
		{"7", "0,07"},
		{"42", "0,42"},
		{"1234", "12,34"},
		{"000123", "1,23"}, // zeros à esquerda colapsam
		{"123456", "1.234,56"},
		{"123456789", "1.234.567,89"},
		{"1a2b3c4", "12,34"}, // não-dígitos são descartados
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatInputCurrency(tc.in), "input %q", tc.in)
	}
}

func TestParseCurrencyToNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12,34", "12.34"},
		{"1.234,56", "1234.56"},
		{"R$ 1.234,56", "1234.56"},
		{"0,42", "0.42"},
		{"", "0"},
		{"abc", "0"},
		{"--", "0"},
	}
	for _, tc := range cases {
		want := decimal.RequireFromString(tc.want)
		got := ParseCurrencyToNumber(tc.in)
		assert.True(t, got.Equal(want), "input %q: got %s, want %s", tc.in, got, want)
	}
}

// Para qualquer quantidade de centavos c, parse(format(c)) == c/100.
func TestCurrencyRoundTrip(t *testing.T) {
	cents := []int64{0, 1, 7, 99, 100, 101, 1234, 99999, 100000, 123456789, 999999999999}
	for _, c := range cents {
		formatted := FormatInputCurrency(fmt.Sprintf("%d", c))
		require.NotEmpty(t, formatted)

		got := ParseCurrencyToNumber(formatted)
		want := decimal.NewFromInt(c).Div(decimal.NewFromInt(100))
		assert.True(t, got.Equal(want), "cents %d: got %s, want %s", c, got, want)
	}
}
