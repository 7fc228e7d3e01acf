package edi

import (
	"strings"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
)

// Delimiters of an interchange, either the defaults or the ones announced by UNA.
type Delimiters struct {
	Component byte
	Element   byte
	Decimal   byte
	Release   byte
	Segment   byte
}

var DefaultDelimiters = Delimiters{
	Component: ':',
	Element:   '+',
	Decimal:   '.',
	Release:   '?',
	Segment:   '\'',
}

// Segment is one tagged segment. Elements exclude the tag, so Elements[0] is the first data element.
type Segment struct {
	Tag      string
	Elements [][]string
	Index    int
}

// Value returns component c of element e, or "" when absent.
func (s Segment) Value(e, c int) string {
	if e < 0 || e >= len(s.Elements) {
		return ""
	}
	components := s.Elements[e]
	if c < 0 || c >= len(components) {
		return ""
	}
	return strings.TrimSpace(components[c])
}

// Joined returns the non-empty components of element e joined by a space.
func (s Segment) Joined(e int) string {
	if e < 0 || e >= len(s.Elements) {
		return ""
	}
	parts := make([]string, 0, len(s.Elements[e]))
	for _, c := range s.Elements[e] {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// Tokenize splits an interchange into segments. A service string advice (UNA) overrides the
// default delimiters. Line breaks terminate segments too.
func Tokenize(content string) ([]Segment, Delimiters, error) {
	delims := DefaultDelimiters
	content = strings.TrimLeft(content, " \t\r\n")
	if strings.HasPrefix(content, "UNA") {
		if len(content) < 9 {
			return nil, delims, model.NewValidationError("UNA segment is truncated")
		}
		delims = Delimiters{
			Component: content[3],
			Element:   content[4],
			Decimal:   content[5],
			Release:   content[6],
			Segment:   content[8],
		}
		content = content[9:]
	}

	var segments []Segment
	var elements [][]string
	var component strings.Builder
	components := []string{}
	released := false

	endComponent := func() {
		components = append(components, component.String())
		component.Reset()
	}
	endElement := func() {
		endComponent()
		elements = append(elements, components)
		components = []string{}
	}
	endSegment := func() error {
		endElement()
		tag := strings.TrimSpace(elements[0][0])
		rest := elements[1:]
		elements = nil
		if tag == "" && len(rest) == 0 {
			return nil
		}
		if len(tag) != 3 {
			return model.NewValidationError("segment %d: invalid tag %q", len(segments)+1, tag)
		}
		segments = append(segments, Segment{Tag: strings.ToUpper(tag), Elements: rest, Index: len(segments)})
		return nil
	}

	for i := 0; i < len(content); i++ {
		ch := content[i]
		if released {
			component.WriteByte(ch)
			released = false
			continue
		}
		switch ch {
		case delims.Release:
			released = true
		case delims.Component:
			endComponent()
		case delims.Element:
			endElement()
		case delims.Segment, '\n', '\r':
			if err := endSegment(); err != nil {
				return nil, delims, err
			}
		default:
			component.WriteByte(ch)
		}
	}
	if released {
		return nil, delims, model.NewValidationError("release character at end of interchange")
	}
	if err := endSegment(); err != nil {
		return nil, delims, err
	}
	if len(segments) == 0 {
		return nil, delims, model.NewValidationError("no segments found")
	}
	return segments, delims, nil
}
