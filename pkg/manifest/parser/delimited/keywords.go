package delimited

import (
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/reference"
)

// Keyword weights. A carrier name is a stronger hint than a terminal, a terminal stronger than a
// port code that any trade document may carry.
const (
	CarrierWeight  = 3
	TerminalWeight = 2
	RouteWeight    = 1
)

type keyword struct {
	word    string
	weight  int
	pattern *regexp.Regexp
}

// _Matcher finds whole-word keyword hits in upper case text.
type _Matcher struct {
	version      int
	carriers     []keyword
	keywords     []keyword
	destinations []keyword
}

func newMatcher(kw reference.CSVKeywords) *_Matcher {
	compile := func(words []string, weight int) []keyword {
		return lo.Map(words, func(w string, _ int) keyword {
			w = strings.ToUpper(strings.TrimSpace(w))
			return keyword{word: w, weight: weight, pattern: regexp.MustCompile(`(^|[^A-Z0-9])` + regexp.QuoteMeta(w) + `($|[^A-Z0-9])`)}
		})
	}
	m := &_Matcher{
		version:      kw.Version,
		carriers:     compile(kw.Carriers, CarrierWeight),
		destinations: compile(kw.Destinations, 0),
	}
	m.keywords = append(append(append(m.keywords, m.carriers...), compile(kw.Terminals, TerminalWeight)...), compile(kw.Routes, RouteWeight)...)
	return m
}

// Score sums the weights of the distinct keywords found in text.
func (m *_Matcher) Score(text string) (int, []string) {
	text = strings.ToUpper(text)
	score := 0
	var hits []string
	for _, k := range m.keywords {
		if k.pattern.MatchString(text) {
			score += k.weight
			hits = append(hits, k.word)
		}
	}
	return score, hits
}

// Carrier returns the first carrier named in text, or "".
func (m *_Matcher) Carrier(text string) string {
	text = strings.ToUpper(text)
	for _, k := range m.carriers {
		if k.pattern.MatchString(text) {
			return k.word
		}
	}
	return ""
}

// Destination returns the first destination named in text, or "".
func (m *_Matcher) Destination(text string) string {
	text = strings.ToUpper(text)
	for _, k := range m.destinations {
		if k.pattern.MatchString(text) {
			return k.word
		}
	}
	return ""
}
