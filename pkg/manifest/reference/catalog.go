package reference

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

const (
	DefaultPackagingType = "PK"
	DefaultCargoType     = "GENERAL"
)

type PortRef struct {
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	Country string `yaml:"country"`
	City    string `yaml:"city"`
}

type ContainerTypeRef struct {
	Code    string   `yaml:"code"`
	Size    int      `yaml:"size"`
	Reefer  bool     `yaml:"reefer"`
	Aliases []string `yaml:"aliases"`
}

type packagingTypeRef struct {
	Code    string   `yaml:"code"`
	Aliases []string `yaml:"aliases"`
}

type cargoTypeRef struct {
	Prefix string `yaml:"prefix"`
	Code   string `yaml:"code"`
}

// CSVKeywords is the versioned keyword table used to recognise delimited manifests.
type CSVKeywords struct {
	Version      int      `yaml:"version"`
	Carriers     []string `yaml:"carriers"`
	Terminals    []string `yaml:"terminals"`
	Routes       []string `yaml:"routes"`
	Destinations []string `yaml:"destinations"`
}

type document struct {
	Countries      []string           `yaml:"countries"`
	Ports          []PortRef          `yaml:"ports"`
	ContainerTypes []ContainerTypeRef `yaml:"container_types"`
	PackagingTypes []packagingTypeRef `yaml:"packaging_types"`
	CargoTypes     []cargoTypeRef     `yaml:"cargo_types"`
	CSVKeywords    CSVKeywords        `yaml:"csv_keywords"`
}

// Catalog is the read-only reference data lookup.
type Catalog struct {
	countries      map[string]bool
	ports          map[string]PortRef
	portList       []PortRef
	containerTypes map[string]ContainerTypeRef
	packagingTypes map[string]string
	cargoTypes     []cargoTypeRef
	csvKeywords    CSVKeywords
}

// Default returns the catalog shipped with the binary.
func Default() *Catalog {
	c, err := Parse(embeddedCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded reference catalog is invalid: %v", err))
	}
	return c
}

// LoadFile reads a catalog that replaces the embedded one.
func LoadFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(content)
}

func Parse(content []byte) (*Catalog, error) {
	var doc document
	if err := yaml.UnmarshalStrict(content, &doc); err != nil {
		return nil, fmt.Errorf("parse reference catalog: %w", err)
	}

	c := &Catalog{
		countries:      make(map[string]bool, len(doc.Countries)),
		ports:          make(map[string]PortRef, len(doc.Ports)),
		containerTypes: make(map[string]ContainerTypeRef),
		packagingTypes: make(map[string]string),
		cargoTypes:     doc.CargoTypes,
		csvKeywords:    doc.CSVKeywords,
	}
	for _, cc := range doc.Countries {
		c.countries[strings.ToUpper(cc)] = true
	}
	for _, p := range doc.Ports {
		p.Code = strings.ToUpper(p.Code)
		c.ports[p.Code] = p
		c.portList = append(c.portList, p)
	}
	for _, ct := range doc.ContainerTypes {
		c.containerTypes[normalizeLabel(ct.Code)] = ct
		for _, alias := range ct.Aliases {
			c.containerTypes[normalizeLabel(alias)] = ct
		}
	}
	for _, pt := range doc.PackagingTypes {
		c.packagingTypes[normalizeLabel(pt.Code)] = pt.Code
		for _, alias := range pt.Aliases {
			c.packagingTypes[normalizeLabel(alias)] = pt.Code
		}
	}
	return c, nil
}

func normalizeLabel(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '\'' || r == '/' || r == '.'
	}), "")
}

func (c *Catalog) Port(code string) (PortRef, bool) {
	p, ok := c.ports[strings.ToUpper(strings.TrimSpace(code))]
	return p, ok
}

// PortByName finds a port by its display name, then by city. Case is ignored.
func (c *Catalog) PortByName(name string) (PortRef, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return PortRef{}, false
	}
	for _, p := range c.portList {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	for _, p := range c.portList {
		if strings.EqualFold(p.City, name) {
			return p, true
		}
	}
	return PortRef{}, false
}

func (c *Catalog) CountryKnown(countryCode string) bool {
	return c.countries[strings.ToUpper(strings.TrimSpace(countryCode))]
}

// ContainerType resolves an ISO 6346 size-type code or a trade alias such as "40HC".
func (c *Catalog) ContainerType(label string) (ContainerTypeRef, bool) {
	ct, ok := c.containerTypes[normalizeLabel(label)]
	return ct, ok
}

// PackagingType maps a package label to its code. Unknown labels map to DefaultPackagingType.
func (c *Catalog) PackagingType(label string) string {
	key := normalizeLabel(label)
	if code, ok := c.packagingTypes[key]; ok {
		return code
	}
	// Plural forms and trailing qualifiers, e.g. "BOLSAS DE 50KG".
	for _, word := range strings.Fields(strings.ToUpper(label)) {
		if code, ok := c.packagingTypes[normalizeLabel(word)]; ok {
			return code
		}
	}
	return DefaultPackagingType
}

// CargoType classifies a commodity code by its longest matching prefix.
func (c *Catalog) CargoType(commodityCode string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, commodityCode)
	if digits == "" {
		return DefaultCargoType
	}

	best, bestLen := DefaultCargoType, 0
	for _, ct := range c.cargoTypes {
		if len(ct.Prefix) > bestLen && strings.HasPrefix(digits, ct.Prefix) {
			best, bestLen = ct.Code, len(ct.Prefix)
		}
	}
	return best
}

func (c *Catalog) CSVKeywords() CSVKeywords {
	return c.csvKeywords
}
