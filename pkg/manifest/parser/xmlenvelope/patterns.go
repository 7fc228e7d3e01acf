package xmlenvelope

import (
	"regexp"
	"strings"
)

var taxIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:CUIT|TAX ID|RUC|RUT|NIT)[:.\s#]*([0-9][0-9.\-]{5,14}[0-9])`),
	regexp.MustCompile(`\b(\d{2}-?\d{8}-?\d)\b`),
	regexp.MustCompile(`\b(\d{5,9}-\d)\b`),
	regexp.MustCompile(`\b(\d{12})\b`),
}

var commodityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)NCM[:\s]*(\d{4}\.\d{2}\.\d{2})`),
	regexp.MustCompile(`(?i)HS(?:\s*CODE)?[:\s]*(\d{4}(?:\.\d{2})?)`),
	regexp.MustCompile(`\b(\d{4}\.\d{2}\.\d{2})\b`),
	regexp.MustCompile(`\b(\d{4}\.\d{2})\b`),
}

// TaxID finds a CUIT, RUC, RUT or labelled tax id in free party text.
func TaxID(text string) string {
	for _, p := range taxIDPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.ReplaceAll(m[1], ".", "")
		}
	}
	return ""
}

// CommodityCode finds a tariff code in a cargo description.
func CommodityCode(text string) string {
	for _, p := range commodityPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}
