package normalize

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var poundInKilograms = decimal.RequireFromString("0.45359237")
var tonneInKilograms = decimal.NewFromInt(1000)

// Weight parses a weight and converts it to kilograms. unit may be empty, in which case a unit
// suffix in s is honoured and kilograms are assumed otherwise.
func Weight(s string, unit string, style Style) (decimal.Decimal, error) {
	value, err := Decimal(s, style)
	if err != nil {
		return decimal.Zero, err
	}
	if unit == "" {
		_, unit = splitUnit(s)
	}

	switch strings.ToUpper(strings.TrimSpace(unit)) {
	case "", "KGM", "KG", "KGS", "KILOS":
		return value, nil
	case "TNE", "TN", "T", "MT":
		return value.Mul(tonneInKilograms), nil
	case "LBR", "LB", "LBS":
		return value.Mul(poundInKilograms).Round(3), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown weight unit %q", unit)
	}
}
