package payables

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeAmount parses a raw amount of unspecified source type into a
// positive fixed-point decimal scaled to two fraction digits.
//
// Numeric values are accepted directly. Textual values may use either "." or
// "," as the decimal separator; whichever of the two occurs last is taken as
// the decimal mark and every occurrence of the other is stripped as a
// grouping separator. A repeated single separator kind is all grouping
// ("1.234.567" reads as 1234567).
func NormalizeAmount(raw any) (decimal.Decimal, error) {
	var value decimal.Decimal

	switch v := raw.(type) {
	case nil:
		return decimal.Decimal{}, ErrAmountRequired
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, ErrInvalidAmount
		}
		value = decimal.NewFromFloat(v)
	case int:
		value = decimal.NewFromInt(int64(v))
	case int64:
		value = decimal.NewFromInt(v)
	case json.Number:
		parsed, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Decimal{}, ErrInvalidAmount
		}
		value = parsed
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return decimal.Decimal{}, ErrAmountRequired
		}
		parsed, err := decimal.NewFromString(canonicalizeAmount(s))
		if err != nil {
			return decimal.Decimal{}, ErrInvalidAmount
		}
		value = parsed
	default:
		return decimal.Decimal{}, ErrInvalidAmount
	}

	if !value.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return value.Round(2), nil
}

// canonicalizeAmount rewrites a textual amount into plain dot-decimal form.
func canonicalizeAmount(s string) string {
	lastDot := strings.LastIndexByte(s, '.')
	lastComma := strings.LastIndexByte(s, ',')

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			// pt-BR style: dots group, comma marks decimals.
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	return s
}
