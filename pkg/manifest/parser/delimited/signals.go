package delimited

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
)

var (
	temperaturePattern = regexp.MustCompile(`(^|[^0-9])([-+]?\d{1,2}(?:[.,]\d+)?)\s*[°º]?\s*C([^A-Z]|$)`)
	reeferPattern      = regexp.MustCompile(`\b(REEFER|REFRIGERAD[OA]S?|CONGELAD[OA]S?|TEMP)\b`)
	certifications     = []string{"SENASA", "FITOSANITARIO", "ORGANIC", "HALAL", "KOSHER"}
)

// Signals are the hints found in a free text cargo description.
type Signals struct {
	Reefer         bool
	Temperature    *decimal.Decimal
	Certifications []string
	Destination    string
}

func (m *_Matcher) Signals(description string) Signals {
	text := strings.ToUpper(description)
	var s Signals
	if match := temperaturePattern.FindStringSubmatch(text); match != nil {
		if t, err := normalize.Decimal(match[2], normalize.Auto); err == nil {
			s.Temperature = &t
			s.Reefer = true
		}
	}
	if reeferPattern.MatchString(text) {
		s.Reefer = true
	}
	for _, c := range certifications {
		if strings.Contains(text, c) {
			s.Certifications = append(s.Certifications, c)
		}
	}
	s.Destination = m.Destination(text)
	return s
}
