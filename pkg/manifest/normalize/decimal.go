package normalize

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Style tells how '.' and ',' are read in a numeric string.
type Style int

const (
	// Auto disambiguates separators by position and count.
	Auto Style = iota
	// CommaDecimal reads ',' as the decimal mark and '.' as the thousands separator (1.234,5).
	// A string without a comma is read as Auto reads it.
	CommaDecimal
	// DotDecimal reads '.' as the decimal mark and ',' as the thousands separator (1,234.5).
	DotDecimal
)

var ErrNotANumber = errors.New("not a number")

var unitSuffixes = []string{"KGS", "KGM", "KG", "TNE", "TN", "MT", "M3", "MTQ", "LBS", "LB", "CBM"}

// Decimal parses a human written number.
func Decimal(s string, style Style) (decimal.Decimal, error) {
	cleaned, _ := splitUnit(s)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}

	var canonical string
	switch style {
	case CommaDecimal:
		canonical = commaCanonical(cleaned)
	case DotDecimal:
		canonical = strings.ReplaceAll(cleaned, ",", "")
	default:
		canonical = autoCanonical(cleaned)
	}

	d, err := decimal.NewFromString(canonical)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}
	return d, nil
}

// DecimalOrZero is Decimal for optional fields.
func DecimalOrZero(s string, style Style) decimal.Decimal {
	d, err := Decimal(s, style)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Int parses a count such as a package quantity. Fractions are truncated.
func Int(s string, style Style) (int, error) {
	d, err := Decimal(s, style)
	if err != nil {
		return 0, err
	}
	return int(d.IntPart()), nil
}

func IntOrZero(s string, style Style) int {
	n, _ := Int(s, style)
	return n
}

// commaCanonical reads ',' as the decimal mark. Without a comma the string may already be
// canonical (1234.5), so it is read as Auto reads it: a lone '.' is the decimal mark and
// repeated dots group thousands.
func commaCanonical(s string) string {
	if !strings.Contains(s, ",") {
		return autoCanonical(s)
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", ".")
}

func autoCanonical(s string) string {
	dots := strings.Count(s, ".")
	commas := strings.Count(s, ",")

	switch {
	case dots > 0 && commas > 0:
		lastDot := strings.LastIndex(s, ".")
		lastComma := strings.LastIndex(s, ",")
		if lastComma > lastDot {
			return strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", ".")
		}
		return strings.ReplaceAll(s, ",", "")
	case commas > 1:
		return strings.ReplaceAll(s, ",", "")
	case commas == 1:
		intPart, frac, _ := strings.Cut(s, ",")
		intDigits := strings.TrimLeft(intPart, "+-")
		if len(frac) == 3 && len(intDigits) >= 1 && len(intDigits) <= 3 && intDigits != "0" {
			return intPart + frac
		}
		return intPart + "." + frac
	case dots > 1:
		return strings.ReplaceAll(s, ".", "")
	default:
		return s
	}
}

// splitUnit strips blanks, currency signs and a trailing unit. The unit is returned upper case.
func splitUnit(s string) (string, string) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '$' {
			return -1
		}
		return r
	}, s)
	s = strings.TrimPrefix(s, "USD")

	unit := ""
	for _, suffix := range unitSuffixes {
		if strings.HasSuffix(s, suffix) {
			unit = suffix
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}
	if unit == "" {
		// A bare "T" is tonnes, anything else alphabetic is not a number.
		if strings.HasSuffix(s, "T") {
			unit = "T"
			s = strings.TrimSuffix(s, "T")
		}
	}
	return s, unit
}
