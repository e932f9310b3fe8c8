package currencyutils

import (
	"errors"
	"strconv"
	"testing"

	"fjacquet/mt940/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMT940Amount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		exponent int32
	}{
		{"380115,12", "380115.12", -2},
		{"380115,1", "380115.1", -1},
		{"380115,", "380115", 0},
		{"0,12", "0.12", -2},
		{"00,12", "0.12", -2},
		{"001,12", "1.12", -2},
		{",5", "0.5", -1},
		{"54484,04", "54484.04", -2},
		{"999999999999999,99", "999999999999999.99", -2},
		{"12345678901234567890,12", "12345678901234567890.12", -2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMT940Amount(tt.input)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
			assert.Equal(t, tt.exponent, got.Exponent())
		})
	}
}

func TestParseMT940AmountTrailingZerosAreEqual(t *testing.T) {
	pairs := [][2]string{
		{"380115,1", "380115,10"},
		{"1,", "1,000"},
		{"0,5", "00,50"},
	}
	for _, p := range pairs {
		a, err := ParseMT940Amount(p[0])
		require.NoError(t, err)
		b, err := ParseMT940Amount(p[1])
		require.NoError(t, err)
		assert.True(t, a.Equal(b), "%s != %s", p[0], p[1])
	}
}

func TestParseMT940AmountErrors(t *testing.T) {
	tests := []struct {
		input  string
		reason parsererror.AmountReason
	}{
		{"100", parsererror.NoComma},
		{"", parsererror.NoComma},
		{"1,0,0", parsererror.TooManyCommas},
		{",,", parsererror.TooManyCommas},
		{"1a,00", parsererror.IntegerParseFailure},
		{"-1,00", parsererror.IntegerParseFailure},
		{",", parsererror.IntegerParseFailure},
		{"1, 00", parsererror.IntegerParseFailure},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseMT940Amount(tt.input)
			require.Error(t, err)

			var amountErr *parsererror.AmountError
			require.True(t, errors.As(err, &amountErr))
			assert.Equal(t, tt.reason, amountErr.Reason)
			assert.Equal(t, tt.input, amountErr.Value)
			if tt.reason == parsererror.IntegerParseFailure {
				assert.True(t, errors.Is(err, strconv.ErrSyntax))
			}
		})
	}
}
