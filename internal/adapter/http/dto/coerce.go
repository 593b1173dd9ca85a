package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceFloat converts a decoded JSON value (number, numeric string,
// or json.Number) to float64.
func CoerceFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		return n.Float64()
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("not a number")
	}
}

// CoerceDecimal converts a decoded JSON value to an arbitrary
// precision decimal. Nil yields zero, matching the default for
// absent reward fields.
func CoerceDecimal(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return decimal.Zero, fmt.Errorf("not a number: %q", n)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("not a number")
	}
}

// SanitizeStruct trims surrounding whitespace on every exported
// string field (including *string) of a struct pointer. Bodies are
// forwarded to the remote node verbatim otherwise.
func SanitizeStruct(v interface{}) {
	sanitizeValue(v)
}
