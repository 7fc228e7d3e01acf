package xmlbill

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/net/html/charset"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/assembler"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/sniff"
)

const FormatName = "xml_bill"

var info = parser.FormatInfo{
	Name:        FormatName,
	Description: "XML single bill of lading with container detail lines",
	Extensions:  []string{".xml"},
	Capabilities: []string{
		parser.CapabilityContainers,
		parser.CapabilityParties,
		parser.CapabilityDangerousGoods,
		parser.CapabilityReefer,
	},
	DuplicatePolicy: assembler.AbortOnDuplicate,
}

var (
	rootPattern     = regexp.MustCompile(`<ConocimientoEmbarque[\s>]`)
	envelopePattern = regexp.MustCompile(`<Manifiesto[\s>]`)
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
		"strict_ports": true,
	}
}

func (p *_Parser) CanParse(path string) bool {
	head, err := sniff.HeadText(path, p.sniffBytes)
	if err != nil {
		return false
	}
	return rootPattern.MatchString(head) && !envelopePattern.MatchString(head)
}

func (p *_Parser) Extract(ctx context.Context, path string, opts parser.Options) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %s%w", path, err.Error(), model.ErrStructuralValidation)
	}
	decoder := xml.NewDecoder(sniff.XMLReader(content))
	decoder.CharsetReader = charset.NewReaderLabel

	doc := &Document{}
	if err := decoder.Decode(doc); err != nil {
		return nil, model.NewValidationError("malformed bill of lading XML: %s", err.Error())
	}
	return doc, nil
}

func (p *_Parser) Transform(doc *Document) (*Document, error) {
	doc.Number = normalize.Upper(doc.Number)
	doc.Vessel = normalize.Text(doc.Vessel)
	doc.loadingAt = doc.date("FechaEmbarque", doc.LoadingDate)
	doc.arrivalAt = doc.date("FechaArribo", doc.ArrivalDate)

	for i := range doc.Lines {
		l := &doc.Lines[i]
		l.Container = normalize.ContainerNumber(l.Container)
		l.Type = normalize.Text(l.Type)
		l.Tare = doc.number(i, "Tara", l.TareRaw)
		l.Net = doc.number(i, "PesoNeto", l.NetRaw)
		l.Gross = doc.number(i, "PesoBruto", l.GrossRaw)
		l.VGM = doc.number(i, "VGM", l.VGMRaw)
		l.Packages = int(doc.number(i, "Bultos", l.PackagesRaw).IntPart())
		l.TempMin = doc.temperature(i, "TempMin", l.TempMinRaw)
		l.TempMax = doc.temperature(i, "TempMax", l.TempMaxRaw)
		l.Dangerous = yes(l.DangerRaw)
		l.NCM = lo.FilterMap(l.NCM, func(code string, _ int) (string, bool) {
			code = strings.TrimSpace(code)
			return code, code != ""
		})
	}
	return doc, nil
}

func (d *Document) date(field, raw string) time.Time {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}
	}
	t, err := normalize.Date(raw)
	if err != nil {
		d.problems = append(d.problems, model.NewValidationError("%s: %q is not a date", field, raw))
	}
	return t
}

func (d *Document) number(line int, field, raw string) decimal.Decimal {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero
	}
	v, err := normalize.Decimal(raw, normalize.Auto)
	if err != nil {
		d.problems = append(d.problems, model.NewValidationError("line[%d]: %s %q is not a number", line, field, raw))
	}
	return v
}

func (d *Document) temperature(line int, field, raw string) *decimal.Decimal {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	v := d.number(line, field, raw)
	return &v
}

func yes(raw string) bool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "S", "SI", "SÍ", "Y", "YES", "TRUE", "1":
		return true
	}
	return false
}

// Validate checks the header and every detail line. Any failure rejects the file.
func (p *_Parser) Validate(doc *Document) []error {
	errs := append([]error{}, doc.problems...)
	if err := doc.Validate(); err != nil {
		errs = append(errs, model.NewValidationError("bill %s: %s", doc.Number, err.Error()))
	}
	for i, l := range doc.Lines {
		if err := l.Validate(); err != nil {
			errs = append(errs, model.NewValidationError("line[%d] (%s): %s", i, l.Container, err.Error()))
		}
	}
	return errs
}

func (p *_Parser) Assemble(ctx context.Context, asm *assembler.Assembler, doc *Document, opts parser.Options) error {
	vessel, err := parser.Vessel(ctx, asm, info, opts, assembler.VesselInput{Name: doc.Vessel, Type: model.VesselTypeContainer})
	if err != nil {
		return err
	}
	origin, err := asm.ResolvePort(ctx, parser.PortInput(doc.LoadingPort), true)
	if err != nil {
		return err
	}
	destination, err := asm.ResolvePort(ctx, parser.PortInput(doc.DischargePort), true)
	if err != nil {
		return err
	}

	loadingAt := doc.loadingAt
	if loadingAt.IsZero() {
		loadingAt = asm.DatePlaceholder("FechaEmbarque", "bill "+doc.Number)
	}
	voyage, err := asm.OpenVoyage(ctx, assembler.VoyageInput{
		Reference:   parser.VoyageReference(opts, doc.Voyage, doc.Number),
		Vessel:      vessel,
		Origin:      origin,
		Destination: destination,
		DepartureAt: loadingAt,
		ArrivalAt:   doc.arrivalAt,
	})
	if err != nil {
		return err
	}
	shipment, err := asm.OpenShipment(ctx, voyage, vessel, "")
	if err != nil {
		return err
	}

	shipper, err := asm.ResolveParty(ctx, partyInput(doc.Shipper))
	if err != nil {
		return err
	}
	consignee, err := asm.ResolveParty(ctx, partyInput(doc.Consignee))
	if err != nil {
		return err
	}
	var notify *model.Party
	if doc.Notify.Name != "" {
		n, err := asm.ResolveParty(ctx, partyInput(doc.Notify))
		if err != nil {
			return err
		}
		notify = &n
	}

	codes := lo.Uniq(lo.FlatMap(doc.Lines, func(l Line, _ int) []string { return l.NCM }))
	bill, err := asm.CreateBillOfLading(ctx, assembler.BillInput{
		Number:        doc.Number,
		Shipment:      shipment,
		Shipper:       shipper,
		Consignee:     consignee,
		Notify:        notify,
		LoadingPort:   origin,
		DischargePort: destination,
		LoadingDate:   loadingAt,
		DischargeDate: doc.arrivalAt,
		Extra:         map[string]string{"ncm_codes": strings.Join(codes, ",")},
	}, info.DuplicatePolicy)
	if err != nil {
		return err
	}

	for _, l := range doc.Lines {
		container, _, err := asm.ResolveContainer(ctx, assembler.ContainerInput{
			Number:      l.Container,
			Type:        l.Type,
			TareWeight:  l.Tare,
			GrossWeight: l.Gross,
			NetWeight:   l.Net,
			VGM:         l.VGM,
			Seals:       l.Seals,
			TempMin:     l.TempMin,
			TempMax:     l.TempMax,
		}, false)
		if err != nil {
			return err
		}
		if _, err := asm.AddItem(ctx, bill, &container, assembler.ItemInput{
			Description:   l.Description,
			PackageCount:  l.Packages,
			PackageType:   l.Packaging,
			GrossWeight:   l.Net,
			NetWeight:     l.Net,
			CommodityCode: firstCode(l.NCM),
			TempMin:       l.TempMin,
			TempMax:       l.TempMax,
			Dangerous:     l.Dangerous,
		}); err != nil {
			return err
		}
	}
	_, err = asm.FinishBill(ctx, bill)
	return err
}

func firstCode(codes []string) string {
	if len(codes) == 0 {
		return ""
	}
	return codes[0]
}

func partyInput(p Party) assembler.PartyInput {
	return assembler.PartyInput{
		Name:        p.Name,
		TaxID:       p.TaxID,
		Address:     p.Address,
		CountryCode: p.Country,
	}
}
