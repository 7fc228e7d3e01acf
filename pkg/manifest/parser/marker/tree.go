package marker

import (
	"slices"
	"strings"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
)

const closePrefix = "FIN "

// Node is a section of a marker document. Nodes live in the arena of their Tree and refer to
// each other by index. Node 0 is the document root.
type Node struct {
	Name     string
	Parent   int
	Children []int
	Fields   map[string]string
	Line     int
	// Closed reports whether an explicit FIN marker closed the section.
	Closed bool
}

type Tree struct {
	Nodes []Node
}

// Parse reads marker text. "**NAME**" opens a section, "**FIN NAME**" closes it and
// "LABEL: /*value*/" sets a field of the innermost open section. Opening a section that is
// already open closes it first, together with everything opened inside it. Sections named in
// topLevel always open at the document root.
func Parse(content string, topLevel ...string) (*Tree, []error) {
	t := &Tree{Nodes: []Node{{Name: "", Parent: -1, Fields: map[string]string{}}}}
	stack := []int{0}
	var errs []error

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	for i := 0; i < len(lines); i++ {
		lineNo := i + 1
		line := strings.TrimSpace(lines[i])
		for line != "" {
			switch {
			case strings.HasPrefix(line, "**"):
				end := strings.Index(line[2:], "**")
				if end < 0 {
					errs = append(errs, model.NewValidationError("line %d: unterminated marker %q", lineNo, line))
					line = ""
					continue
				}
				name := normalizeName(line[2 : 2+end])
				line = strings.TrimSpace(line[2+end+2:])

				if strings.HasPrefix(name, closePrefix) {
					target := strings.TrimSpace(strings.TrimPrefix(name, closePrefix))
					pos := t.openPosition(stack, target)
					if pos < 0 {
						errs = append(errs, model.NewValidationError("line %d: **FIN %s** without matching **%s**", lineNo, target, target))
						continue
					}
					t.Nodes[stack[pos]].Closed = true
					stack = stack[:pos]
					continue
				}

				if slices.Contains(topLevel, name) {
					stack = stack[:1]
				} else if pos := t.openPosition(stack, name); pos > 0 {
					stack = stack[:pos]
				}
				parent := stack[len(stack)-1]
				t.Nodes = append(t.Nodes, Node{Name: name, Parent: parent, Fields: map[string]string{}, Line: lineNo})
				idx := len(t.Nodes) - 1
				t.Nodes[parent].Children = append(t.Nodes[parent].Children, idx)
				stack = append(stack, idx)

			default:
				label, rest, ok := strings.Cut(line, ":")
				rest = strings.TrimSpace(rest)
				if !ok || !strings.HasPrefix(rest, "/*") {
					// Free text between sections is ignored.
					line = ""
					continue
				}
				rest = rest[2:]
				value, after, found := strings.Cut(rest, "*/")
				for !found && i+1 < len(lines) {
					i++
					rest += "\n" + lines[i]
					value, after, found = strings.Cut(rest, "*/")
				}
				if !found {
					errs = append(errs, model.NewValidationError("line %d: value of %s is not terminated by */", lineNo, normalizeLabel(label)))
					line = ""
					continue
				}
				t.Nodes[stack[len(stack)-1]].Fields[normalizeLabel(label)] = strings.TrimSpace(value)
				line = strings.TrimSpace(after)
			}
		}
	}
	return t, errs
}

// openPosition returns the stack position of the innermost open section called name, or -1.
func (t *Tree) openPosition(stack []int, name string) int {
	for pos := len(stack) - 1; pos > 0; pos-- {
		if t.Nodes[stack[pos]].Name == name {
			return pos
		}
	}
	return -1
}

// Children lists the direct children of a node called name.
func (t *Tree) Children(idx int, name string) []int {
	var out []int
	for _, child := range t.Nodes[idx].Children {
		if t.Nodes[child].Name == name {
			out = append(out, child)
		}
	}
	return out
}

// Descendants lists the nodes reached from idx by following the section names of path.
func (t *Tree) Descendants(idx int, path ...string) []int {
	current := []int{idx}
	for _, name := range path {
		var next []int
		for _, n := range current {
			next = append(next, t.Children(n, name)...)
		}
		current = next
	}
	return current
}

// Field returns the value of a label in a node, or "".
func (t *Tree) Field(idx int, label string) string {
	return t.Nodes[idx].Fields[label]
}

func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}

func normalizeLabel(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), "")
}
