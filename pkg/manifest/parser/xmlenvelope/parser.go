package xmlenvelope

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/shopspring/decimal"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/assembler"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/sniff"
)

const FormatName = "xml_envelope"

var info = parser.FormatInfo{
	Name:        FormatName,
	Description: "XML manifest envelope with several bills of lading",
	Extensions:  []string{".xml"},
	Capabilities: []string{
		parser.CapabilityMultipleBills,
		parser.CapabilityContainers,
		parser.CapabilityParties,
	},
	DuplicatePolicy: assembler.SkipOnDuplicate,
}

var (
	rootPattern  = regexp.MustCompile(`<Manifiesto[\s>]`)
	childPattern = regexp.MustCompile(`<Conocimiento[\s>]`)
)

type _Parser struct {
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

func New(options ...OptionFunc) parser.Parser {
	p := &_Parser{sniffBytes: sniff.DefaultHeadSize}
	for _, opt := range options {
		opt(p)
	}
	return parser.Adapt[*Document](p)
}

func (p *_Parser) Info() parser.FormatInfo {
	return info
}

func (p *_Parser) DefaultConfig() map[string]any {
	return map[string]any{
		"sniff_bytes":  p.sniffBytes,
		"strict_ports": false,
	}
}

func (p *_Parser) CanParse(path string) bool {
	head, err := sniff.HeadText(path, p.sniffBytes)
	if err != nil {
		return false
	}
	return rootPattern.MatchString(head) && childPattern.MatchString(head)
}

func (p *_Parser) Extract(ctx context.Context, path string, opts parser.Options) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %s%w", path, err.Error(), model.ErrStructuralValidation)
	}
	root, err := xmlquery.Parse(sniff.XMLReader(content))
	if err != nil {
		return nil, model.NewValidationError("malformed XML: %s", err.Error())
	}
	manifest := xmlquery.FindOne(root, "/Manifiesto")
	if manifest == nil {
		return nil, model.NewValidationError("root element Manifiesto not found")
	}

	doc := &Document{}
	for _, node := range xmlquery.Find(manifest, "Conocimiento") {
		doc.Bills = append(doc.Bills, readBill(node))
	}
	return doc, nil
}

func readBill(node *xmlquery.Node) Bill {
	head := node.SelectElement("Encabezado")
	b := Bill{
		Number:        text(head, "NroConocimiento"),
		MasterNumber:  text(head, "ConocimientoMadre"),
		Vessel:        text(head, "Buque"),
		Voyage:        text(head, "Viaje"),
		LoadingPort:   text(head, "PuertoCarga"),
		DischargePort: text(head, "PuertoDescarga"),
		Permit:        text(head, "Permiso"),
		Shipper:       readParty(head, "Embarcador"),
		Consignee:     readParty(head, "Consignatario"),
		Notify:        readParty(head, "Notificar"),
	}
	b.IssueDate = b.date(head, "FechaEmision")
	b.LoadingDate = b.date(head, "FechaEmbarque")
	b.ArrivalDate = b.date(head, "FechaArribo")

	for j, line := range xmlquery.Find(node, "Detalle/Linea") {
		l := Line{
			Container:   normalize.ContainerNumber(text(line, "Contenedor")),
			Type:        text(line, "Tipo"),
			Seal:        text(line, "Precinto"),
			Packaging:   text(line, "Embalaje"),
			Description: joined(line, "Descripcion/Texto", " "),
		}
		if l.Description == "" {
			l.Description = text(line, "Descripcion")
		}
		l.Packages = int(b.number(line, "Bultos", j).IntPart())
		l.Gross = b.number(line, "PesoBruto", j)
		l.Net = b.number(line, "PesoNeto", j)
		l.Volume = b.number(line, "Volumen", j)
		b.Lines = append(b.Lines, l)
	}
	return b
}

func readParty(head *xmlquery.Node, name string) Party {
	if head == nil {
		return Party{}
	}
	node := head.SelectElement(name)
	if node == nil {
		return Party{}
	}
	address := joined(node, "Direccion/Linea", ", ")
	if address == "" {
		address = text(node, "Direccion")
	}
	return Party{Name: text(node, "Nombre"), Address: address}
}

func (b *Bill) date(parent *xmlquery.Node, name string) time.Time {
	raw := text(parent, name)
	if raw == "" {
		return time.Time{}
	}
	t, err := normalize.Date(raw)
	if err != nil {
		b.problems = append(b.problems, fmt.Sprintf("%s %q is not a date", name, raw))
	}
	return t
}

func (b *Bill) number(parent *xmlquery.Node, name string, line int) decimal.Decimal {
	raw := text(parent, name)
	if raw == "" {
		return decimal.Zero
	}
	d, err := normalize.Decimal(raw, normalize.Auto)
	if err != nil {
		b.problems = append(b.problems, fmt.Sprintf("line[%d]: %s %q is not a number", line, name, raw))
	}
	return d
}

func text(parent *xmlquery.Node, path string) string {
	if parent == nil {
		return ""
	}
	node := xmlquery.FindOne(parent, path)
	if node == nil {
		return ""
	}
	return normalize.Text(node.InnerText())
}

func joined(parent *xmlquery.Node, path string, sep string) string {
	var parts []string
	for _, node := range xmlquery.Find(parent, path) {
		if t := normalize.Text(node.InnerText()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, sep)
}

func (p *_Parser) Transform(doc *Document) (*Document, error) {
	for i := range doc.Bills {
		b := &doc.Bills[i]
		for _, party := range []*Party{&b.Shipper, &b.Consignee, &b.Notify} {
			party.TaxID = TaxID(party.Name + " " + party.Address)
		}
		for j := range b.Lines {
			l := &b.Lines[j]
			l.Commodity = CommodityCode(l.Description)
		}
	}
	return doc, nil
}

func (p *_Parser) Validate(doc *Document) []error {
	if len(doc.Bills) == 0 {
		return []error{model.NewValidationError("envelope holds no Conocimiento")}
	}
	var errs []error
	for i, b := range doc.Bills {
		prefix := fmt.Sprintf("bill[%d] (%s)", i, b.Number)
		fail := func(format string, args ...any) {
			errs = append(errs, model.NewValidationError("%s: %s", prefix, fmt.Sprintf(format, args...)))
		}
		for _, problem := range b.problems {
			fail("%s", problem)
		}
		required := []struct{ field, value string }{
			{"NroConocimiento", b.Number},
			{"Buque", b.Vessel},
			{"PuertoCarga", b.LoadingPort},
			{"PuertoDescarga", b.DischargePort},
			{"Embarcador", b.Shipper.Name},
			{"Consignatario", b.Consignee.Name},
		}
		for _, r := range required {
			if r.value == "" {
				fail("missing %s", r.field)
			}
		}
		if len(b.Lines) == 0 {
			fail("missing Detalle lines")
		}
		for j, l := range b.Lines {
			if l.Container == "" && l.Description == "" {
				fail("line[%d]: missing Contenedor and Descripcion", j)
			}
		}
	}
	return errs
}

func (p *_Parser) Assemble(ctx context.Context, asm *assembler.Assembler, doc *Document, opts parser.Options) error {
	first := doc.Bills[0]
	vessel, err := parser.Vessel(ctx, asm, info, opts, assembler.VesselInput{Name: first.Vessel, Type: model.VesselTypeContainer})
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
	departure := first.LoadingDate
	if departure.IsZero() {
		departure = asm.DatePlaceholder("FechaEmbarque", "bill "+first.Number)
	}
	voyage, err := asm.OpenVoyage(ctx, assembler.VoyageInput{
		Reference:   parser.VoyageReference(opts, first.Voyage, first.Number),
		Vessel:      vessel,
		Origin:      origin,
		Destination: destination,
		DepartureAt: departure,
		ArrivalAt:   first.ArrivalDate,
	})
	if err != nil {
		return err
	}
	shipment, err := asm.OpenShipment(ctx, voyage, vessel, "")
	if err != nil {
		return err
	}

	for i, b := range doc.Bills {
		if i == 0 {
			b.LoadingDate = departure
		}
		if err := assembleBill(ctx, asm, shipment, b); err != nil {
			if errors.Is(err, assembler.ErrSkipped) {
				continue
			}
			return err
		}
	}
	return nil
}

func assembleBill(ctx context.Context, asm *assembler.Assembler, shipment model.Shipment, b Bill) error {
	loading, err := asm.ResolvePort(ctx, parser.PortInput(b.LoadingPort), false)
	if err != nil {
		return err
	}
	discharge, err := asm.ResolvePort(ctx, parser.PortInput(b.DischargePort), false)
	if err != nil {
		return err
	}
	shipper, err := asm.ResolveParty(ctx, partyInput(b.Shipper))
	if err != nil {
		return err
	}
	consignee, err := asm.ResolveParty(ctx, partyInput(b.Consignee))
	if err != nil {
		return err
	}
	var notify *model.Party
	if b.Notify.Name != "" {
		n, err := asm.ResolveParty(ctx, partyInput(b.Notify))
		if err != nil {
			return err
		}
		notify = &n
	}

	loadingDate := b.LoadingDate
	if loadingDate.IsZero() {
		loadingDate = asm.DatePlaceholder("FechaEmbarque", "bill "+b.Number)
	}
	bill, err := asm.CreateBillOfLading(ctx, assembler.BillInput{
		Number:           b.Number,
		MasterBillNumber: b.MasterNumber,
		Shipment:         shipment,
		Shipper:          shipper,
		Consignee:        consignee,
		Notify:           notify,
		LoadingPort:      loading,
		DischargePort:    discharge,
		IssueDate:        b.IssueDate,
		LoadingDate:      loadingDate,
		DischargeDate:    b.ArrivalDate,
		PermitNumber:     b.Permit,
	}, info.DuplicatePolicy)
	if err != nil {
		return err
	}

	for _, l := range b.Lines {
		var container *model.Container
		if l.Container != "" {
			c, _, err := asm.ResolveContainer(ctx, assembler.ContainerInput{
				Number: l.Container,
				Type:   l.Type,
				Seals:  []string{l.Seal},
			}, false)
			if err != nil {
				return err
			}
			container = &c
		}
		if _, err := asm.AddItem(ctx, bill, container, assembler.ItemInput{
			Description:   l.Description,
			PackageCount:  l.Packages,
			PackageType:   l.Packaging,
			GrossWeight:   l.Gross,
			NetWeight:     l.Net,
			Volume:        l.Volume,
			CommodityCode: l.Commodity,
		}); err != nil {
			return err
		}
	}
	_, err = asm.FinishBill(ctx, bill)
	return err
}

func partyInput(p Party) assembler.PartyInput {
	return assembler.PartyInput{Name: p.Name, TaxID: p.TaxID, Address: p.Address}
}
