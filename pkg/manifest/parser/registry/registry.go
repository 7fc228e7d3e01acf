package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
)

// Registry selects the parser of a file. Parsers are consulted in registration order.
type Registry struct {
	parsers    []parser.Parser
	byName     map[string]parser.Parser
	extensions map[string][]parser.Parser
}

func New(parsers ...parser.Parser) *Registry {
	r := &Registry{
		byName:     map[string]parser.Parser{},
		extensions: map[string][]parser.Parser{},
	}
	for _, p := range parsers {
		info := p.Info()
		if _, ok := r.byName[info.Name]; ok {
			panic(fmt.Sprintf("format %q registered twice", info.Name))
		}
		r.parsers = append(r.parsers, p)
		r.byName[info.Name] = p
		for _, ext := range info.Extensions {
			ext = strings.ToLower(ext)
			r.extensions[ext] = append(r.extensions[ext], p)
		}
	}
	return r
}

// Select returns the first parser whose content predicate accepts the file. When none does, the
// first parser registered for the file extension is returned without further checks.
func (r *Registry) Select(path string) (parser.Parser, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %s%w", filepath.Base(path), err.Error(), model.ErrDetectionFailure)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%s: is a directory%w", filepath.Base(path), model.ErrDetectionFailure)
	}
	if stat.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), model.ErrEmptyFile)
	}

	for _, p := range r.parsers {
		if canParse(p, path) {
			logrus.Debugf("%s detected as %s", filepath.Base(path), p.Info().Name)
			return p, nil
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if candidates := r.extensions[ext]; len(candidates) > 0 {
		logrus.Debugf("%s falls back to %s by extension", filepath.Base(path), candidates[0].Info().Name)
		return candidates[0], nil
	}
	if ext == "" {
		ext = "(none)"
	}
	return nil, fmt.Errorf("%s (extension %s): %w", filepath.Base(path), ext, model.ErrNoParserFound)
}

// Lookup returns the parser registered under name.
func (r *Registry) Lookup(name string) (parser.Parser, error) {
	p, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%s (known: %s): %w", name, strings.Join(r.Names(), ", "), model.ErrUnknownFormat)
	}
	return p, nil
}

// Names lists the registered formats in priority order.
func (r *Registry) Names() []string {
	return lo.Map(r.parsers, func(p parser.Parser, _ int) string { return p.Info().Name })
}

// Formats lists the static information of every registered format in priority order.
func (r *Registry) Formats() []parser.FormatInfo {
	return lo.Map(r.parsers, func(p parser.Parser, _ int) parser.FormatInfo { return p.Info() })
}

// Candidates lists the formats registered for an extension.
func (r *Registry) Candidates(ext string) []string {
	return lo.Map(r.extensions[strings.ToLower(ext)], func(p parser.Parser, _ int) string { return p.Info().Name })
}

func canParse(p parser.Parser, path string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Warnf("%s detection panicked on %s: %v", p.Info().Name, filepath.Base(path), r)
			ok = false
		}
	}()
	return p.CanParse(path)
}
