// Package currencyutils decodes MT940 amounts into exact decimal values.
package currencyutils

import (
	"math/big"
	"strconv"
	"strings"

	"fjacquet/mt940/internal/parsererror"

	"github.com/shopspring/decimal"
)

// ParseMT940Amount decodes an MT940 amount such as "54484,04".
//
// MT940 amounts always use a comma as decimal separator, but the digits after it may be
// missing ("380115,"). The integer and fractional digits are concatenated into one integer
// whose scale is the number of fractional digits, so the result is exact.
func ParseMT940Amount(s string) (decimal.Decimal, error) {
	parts := strings.Split(s, ",")
	switch {
	case len(parts) == 1:
		return decimal.Zero, &parsererror.AmountError{Reason: parsererror.NoComma, Value: s}
	case len(parts) > 2:
		return decimal.Zero, &parsererror.AmountError{Reason: parsererror.TooManyCommas, Value: s}
	}

	intPart, fracPart := parts[0], parts[1]
	digits := intPart + fracPart
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return decimal.Zero, intParseFailure(s, digits)
	}

	// big.Int keeps 15 digit SWIFT amounts and longer inputs exact.
	whole, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return decimal.Zero, intParseFailure(s, digits)
	}
	return decimal.NewFromBigInt(whole, -int32(len(fracPart))), nil
}

func intParseFailure(value, digits string) *parsererror.AmountError {
	return &parsererror.AmountError{
		Reason: parsererror.IntegerParseFailure,
		Value:  value,
		Err:    &strconv.NumError{Func: "ParseInt", Num: digits, Err: strconv.ErrSyntax},
	}
}
