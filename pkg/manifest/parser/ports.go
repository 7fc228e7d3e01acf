package parser

import (
	"regexp"
	"strings"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/assembler"
)

var locodePattern = regexp.MustCompile(`^[A-Z]{2}[A-Z2-9]{3}$`)

// PortInput reads a port written either as a UN/LOCODE or as a name.
func PortInput(value string) assembler.PortInput {
	v := strings.ToUpper(strings.TrimSpace(value))
	compact := strings.ReplaceAll(v, " ", "")
	if locodePattern.MatchString(compact) && len(v) <= 6 {
		return assembler.PortInput{Code: compact}
	}
	return assembler.PortInput{Name: strings.TrimSpace(value)}
}
