package marker

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/assembler"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/sniff"
)

const (
	FormatBL       = "marker_bl"
	FormatManifest = "marker_manifest"
)

var blInfo = parser.FormatInfo{
	Name:        FormatBL,
	Description: "Marker text bills of lading (**BL** blocks)",
	Extensions:  []string{".mbl", ".man"},
	Capabilities: []string{
		parser.CapabilityMultipleBills,
		parser.CapabilityContainers,
		parser.CapabilityParties,
	},
	DuplicatePolicy: assembler.SkipOnDuplicate,
}

var manifestInfo = parser.FormatInfo{
	Name:        FormatManifest,
	Description: "Marker text consolidated manifest (**CONOCIMIENTO** blocks)",
	Extensions:  []string{".mbl", ".man"},
	Capabilities: []string{
		parser.CapabilityMultipleBills,
		parser.CapabilityContainers,
		parser.CapabilityParties,
	},
	DuplicatePolicy: assembler.AbortOnDuplicate,
}

var (
	blPattern       = regexp.MustCompile(`\*\*\s*BL\s*\*\*`)
	manifestPattern = regexp.MustCompile(`\*\*\s*(CONOCIMIENTO|CABECERA)\s*\*\*`)
)

type _Parser struct {
	info       parser.FormatInfo
	dialect    Dialect
	detect     *regexp.Regexp
	sniffBytes int
}

type OptionFunc func(*_Parser)

func WithSniffBytes(n int) OptionFunc {
	return func(p *_Parser) {
		if n > 0 {
			p.sniffBytes = n
		}
	}
}

// NewBL handles files made of **BL** blocks. Duplicate bills are skipped.
func NewBL(options ...OptionFunc) parser.Parser {
	return newParser(blInfo, blDialect, blPattern, options)
}

// NewManifest handles consolidated manifests made of **CONOCIMIENTO** blocks under an optional
// **CABECERA**. A duplicate bill rejects the file.
func NewManifest(options ...OptionFunc) parser.Parser {
	return newParser(manifestInfo, manifestDialect, manifestPattern, options)
}

func newParser(info parser.FormatInfo, dialect Dialect, detect *regexp.Regexp, options []OptionFunc) parser.Parser {
	p := &_Parser{info: info, dialect: dialect, detect: detect, sniffBytes: sniff.DefaultHeadSize}
	for _, opt := range options {
		opt(p)
	}
	return parser.Adapt[*Document](p)
}

func (p *_Parser) Info() parser.FormatInfo {
	return p.info
}

func (p *_Parser) DefaultConfig() map[string]any {
	return map[string]any{
		"sniff_bytes":  p.sniffBytes,
		"strict_ports": false,
		"block":        p.dialect.Block,
	}
}

func (p *_Parser) CanParse(path string) bool {
	head, err := sniff.HeadText(path, p.sniffBytes)
	if err != nil {
		return false
	}
	return p.detect.MatchString(head)
}

func (p *_Parser) Extract(ctx context.Context, path string, opts parser.Options) (*Document, error) {
	content, err := sniff.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %s%w", path, err.Error(), model.ErrStructuralValidation)
	}
	tree, errs := Parse(content, p.dialect.topLevel()...)
	doc := p.dialect.Build(tree)
	doc.problems = append(errs, doc.problems...)
	return doc, nil
}

// Transform fills bill values a consolidated manifest declares once in its header.
func (p *_Parser) Transform(doc *Document) (*Document, error) {
	h := doc.Header
	for i := range doc.Bills {
		b := &doc.Bills[i]
		b.Vessel = lo.Ternary(b.Vessel == "", h.Vessel, b.Vessel)
		b.Voyage = lo.Ternary(b.Voyage == "", h.Voyage, b.Voyage)
		b.LoadingPort = lo.Ternary(b.LoadingPort == "", h.Origin, b.LoadingPort)
		b.DischargePort = lo.Ternary(b.DischargePort == "", h.Destination, b.DischargePort)
		if b.LoadingDate.IsZero() {
			b.LoadingDate = h.Date
		}
	}
	return doc, nil
}

// Validate reports every missing field of every block.
func (p *_Parser) Validate(doc *Document) []error {
	errs := append([]error{}, doc.problems...)
	d := p.dialect
	if len(doc.Bills) == 0 {
		return append(errs, model.NewValidationError("no **%s** section found", d.Block))
	}

	for i, b := range doc.Bills {
		owner := fmt.Sprintf("bill[%d] (%s)", i, b.Number)
		fail := func(format string, args ...any) {
			errs = append(errs, model.NewValidationError("%s: %s", owner, fmt.Sprintf(format, args...)))
		}
		failAt := func(at string, format string, args ...any) {
			errs = append(errs, model.NewValidationError("%s %s: %s", owner, at, fmt.Sprintf(format, args...)))
		}
		required := []struct{ label, value string }{
			{d.bill.Number, b.Number},
			{d.bill.Vessel, b.Vessel},
			{d.bill.Voyage, b.Voyage},
			{d.bill.Loading, b.LoadingPort},
			{d.bill.Discharge, b.DischargePort},
			{d.bill.Shipper, b.Shipper.Name},
			{d.bill.Consignee, b.Consignee.Name},
		}
		for _, r := range required {
			if r.value == "" {
				fail("missing %s", r.label)
			}
		}
		if d.needsClose && !b.Closed {
			fail("missing **FIN %s**", d.Block)
		}
		if len(b.Containers) == 0 {
			fail("missing **%s** section", d.Container)
		}
		for j, c := range b.Containers {
			at := fmt.Sprintf("container[%d] (%s)", j, c.Number)
			if c.Number == "" {
				failAt(at, "missing %s", d.container.Number)
			}
			if len(c.Lines) == 0 {
				failAt(at, "missing cargo line")
			}
			for k, l := range c.Lines {
				if l.Description == "" {
					failAt(fmt.Sprintf("%s line[%d]", at, k), "missing %s", d.line.Description)
				}
			}
		}
		for k, l := range b.Lines {
			if l.Description == "" {
				failAt(fmt.Sprintf("line[%d]", k), "missing %s", d.line.Description)
			}
		}
	}
	return errs
}

func (p *_Parser) Assemble(ctx context.Context, asm *assembler.Assembler, doc *Document, opts parser.Options) error {
	first := doc.Bills[0]
	vessel, err := parser.Vessel(ctx, asm, p.info, opts, assembler.VesselInput{Name: first.Vessel})
	if err != nil {
		return err
	}
	origin, err := asm.ResolvePort(ctx, parser.PortInput(first.LoadingPort), false)
	if err != nil {
		return err
	}
	destination, err := asm.ResolvePort(ctx, parser.PortInput(first.DischargePort), false)
	if err != nil {
		return err
	}

	for i := range doc.Bills {
		b := &doc.Bills[i]
		if b.LoadingDate.IsZero() {
			b.LoadingDate = asm.DatePlaceholder(p.dialect.bill.LoadingDate, "bill "+b.Number)
		}
	}
	voyage, err := asm.OpenVoyage(ctx, assembler.VoyageInput{
		Reference:   parser.VoyageReference(opts, first.Voyage, first.Number),
		Vessel:      vessel,
		Origin:      origin,
		Destination: destination,
		DepartureAt: doc.Bills[0].LoadingDate,
		ArrivalAt:   first.ArrivalDate,
	})
	if err != nil {
		return err
	}
	shipment, err := asm.OpenShipment(ctx, voyage, vessel, "")
	if err != nil {
		return err
	}

	for _, b := range doc.Bills {
		if err := p.assembleBill(ctx, asm, shipment, b); err != nil {
			if errors.Is(err, assembler.ErrSkipped) {
				continue
			}
			return err
		}
	}
	return nil
}

func (p *_Parser) assembleBill(ctx context.Context, asm *assembler.Assembler, shipment model.Shipment, b Bill) error {
	loading, err := asm.ResolvePort(ctx, parser.PortInput(b.LoadingPort), false)
	if err != nil {
		return err
	}
	discharge, err := asm.ResolvePort(ctx, parser.PortInput(b.DischargePort), false)
	if err != nil {
		return err
	}
	shipper, err := asm.ResolveParty(ctx, assembler.PartyInput{Name: b.Shipper.Name, TaxID: b.Shipper.TaxID})
	if err != nil {
		return err
	}
	consignee, err := asm.ResolveParty(ctx, assembler.PartyInput{Name: b.Consignee.Name, TaxID: b.Consignee.TaxID})
	if err != nil {
		return err
	}
	var notify *model.Party
	if b.Notify.Name != "" {
		n, err := asm.ResolveParty(ctx, assembler.PartyInput{Name: b.Notify.Name})
		if err != nil {
			return err
		}
		notify = &n
	}

	bill, err := asm.CreateBillOfLading(ctx, assembler.BillInput{
		Number:        b.Number,
		Shipment:      shipment,
		Shipper:       shipper,
		Consignee:     consignee,
		Notify:        notify,
		LoadingPort:   loading,
		DischargePort: discharge,
		IssueDate:     b.LoadingDate,
		LoadingDate:   b.LoadingDate,
		DischargeDate: b.ArrivalDate,
	}, p.info.DuplicatePolicy)
	if err != nil {
		return err
	}

	for _, c := range b.Containers {
		in := assembler.ContainerInput{
			Number:      c.Number,
			Type:        c.Type,
			TareWeight:  c.Tare,
			GrossWeight: c.Gross,
			Seals:       []string{c.Seal},
		}
		if c.Gross.IsZero() {
			in.NetWeight = sumWeights(c.Lines)
		}
		container, _, err := asm.ResolveContainer(ctx, in, false)
		if err != nil {
			return err
		}
		if err := addLines(ctx, asm, bill, &container, c.Lines); err != nil {
			return err
		}
	}
	if err := addLines(ctx, asm, bill, nil, b.Lines); err != nil {
		return err
	}
	_, err = asm.FinishBill(ctx, bill)
	return err
}

func addLines(ctx context.Context, asm *assembler.Assembler, bill model.BillOfLading, container *model.Container, lines []Line) error {
	for _, l := range lines {
		if _, err := asm.AddItem(ctx, bill, container, assembler.ItemInput{
			Description:   l.Description,
			PackageCount:  l.Packages,
			PackageType:   l.Packaging,
			GrossWeight:   l.Weight,
			Volume:        l.Volume,
			CommodityCode: l.Commodity,
		}); err != nil {
			return err
		}
	}
	return nil
}

func sumWeights(lines []Line) decimal.Decimal {
	return lo.Reduce(lines, func(sum decimal.Decimal, l Line, _ int) decimal.Decimal { return sum.Add(l.Weight) }, decimal.Zero)
}
