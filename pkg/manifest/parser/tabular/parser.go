package tabular

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/assembler"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/sniff"
)

const (
	FormatConsolidated = "xlsx_consolidated"
	FormatConvoy       = "xlsx_convoy"
)

var consolidatedInfo = parser.FormatInfo{
	Name:        FormatConsolidated,
	Description: "Consolidated manifest workbook, one row per cargo line",
	Extensions:  []string{".xlsx"},
	Capabilities: []string{
		parser.CapabilityMultipleBills,
		parser.CapabilityContainers,
		parser.CapabilityParties,
		parser.CapabilityDangerousGoods,
		parser.CapabilityReefer,
	},
	DuplicatePolicy: assembler.AbortOnDuplicate,
	RequiresVessel:  true,
}

var convoyInfo = parser.FormatInfo{
	Name:        FormatConvoy,
	Description: "Barge convoy workbook, one shipment per barge",
	Extensions:  []string{".xlsx"},
	Capabilities: []string{
		parser.CapabilityMultipleBills,
		parser.CapabilityMultipleShipments,
		parser.CapabilityContainers,
		parser.CapabilityParties,
		parser.CapabilityDangerousGoods,
		parser.CapabilityReefer,
	},
	DuplicatePolicy: assembler.AbortOnDuplicate,
}

type _Parser struct {
	info   parser.FormatInfo
	layout Layout
	style  normalize.Style
}

type OptionFunc func(*_Parser)

// WithTextStyle sets how numbers typed as text are read. Defaults to CommaDecimal.
func WithTextStyle(style normalize.Style) OptionFunc {
	return func(p *_Parser) {
		p.style = style
	}
}

func NewConsolidated(options ...OptionFunc) parser.Parser {
	return newParser(consolidatedInfo, consolidatedLayout, options)
}

func NewConvoy(options ...OptionFunc) parser.Parser {
	return newParser(convoyInfo, convoyLayout, options)
}

func newParser(info parser.FormatInfo, layout Layout, options []OptionFunc) parser.Parser {
	p := &_Parser{info: info, layout: layout, style: normalize.CommaDecimal}
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
		"header_row":   p.layout.HeaderRow,
		"data_row":     p.layout.DataRow,
		"text_decimal": lo.Ternary(p.style == normalize.DotDecimal, "dot", "comma"),
		"strict_ports": true,
	}
}

func (p *_Parser) CanParse(path string) bool {
	if !sniff.IsXLSX(path) {
		return false
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return false
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return false
	}
	title, err := f.GetCellValue(sheets[0], "A1")
	if err != nil {
		return false
	}
	return p.layout.matchTitle(title)
}

func (p *_Parser) Extract(ctx context.Context, path string, opts parser.Options) (*Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %s%w", path, err.Error(), model.ErrStructuralValidation)
	}
	defer f.Close()

	s, err := openSheet(f, p.style)
	if err != nil {
		return nil, err
	}

	doc := &Document{Title: s.text(0, 1), Meta: map[string]string{}}
	for axis, key := range p.layout.Meta {
		col, row, ok := s.cell(axis)
		if !ok {
			continue
		}
		if key == MetaDeparture {
			doc.Departure = s.date("metadata "+axis, col, row)
			continue
		}
		doc.Meta[key] = s.text(col, row)
	}

	for row := p.layout.DataRow; row <= len(s.rows); row++ {
		if s.raw(columnIndex[FieldBillNumber], row) == "" {
			if lo.SomeBy(s.rows[row-1], func(v string) bool { return strings.TrimSpace(v) != "" }) {
				doc.Skipped = append(doc.Skipped, row)
			}
			continue
		}
		doc.Lines = append(doc.Lines, readLine(s, row))
	}
	doc.problems = s.problems
	return doc, nil
}

func readLine(s *_Sheet, row int) Line {
	text := func(field string) string { return s.text(columnIndex[field], row) }
	owner := fmt.Sprintf("row %d", row)
	party := func(name, taxID, address, country string) Party {
		return Party{Name: text(name), TaxID: text(taxID), Address: text(address), Country: normalize.Code(text(country))}
	}

	l := Line{
		Row:             row,
		Bill:            normalize.Upper(text(FieldBillNumber)),
		MasterBill:      text(FieldMasterBill),
		BillDate:        s.date(owner, columnIndex[FieldBillDate], row),
		LoadingPort:     text(FieldLoadingPort),
		DischargePort:   text(FieldDischargePort),
		Shipper:         party(FieldShipperName, FieldShipperTaxID, FieldShipperAddress, FieldShipperCountry),
		Consignee:       party(FieldConsigneeName, FieldConsigneeTaxID, FieldConsigneeAddress, FieldConsigneeCountry),
		Notify:          Party{Name: text(FieldNotifyName), TaxID: text(FieldNotifyTaxID), Address: text(FieldNotifyAddress)},
		Container:       normalize.ContainerNumber(text(FieldContainerNumber)),
		ContainerType:   text(FieldContainerType),
		ContainerStatus: normalize.Upper(text(FieldContainerStatus)),
		Tare:            s.weight(owner, columnIndex[FieldTareWeight], row),
		ContainerGross:  s.weight(owner, columnIndex[FieldContainerGross], row),
		VGM:             s.weight(owner, columnIndex[FieldVGM], row),
		Packages:        int(s.number(owner, columnIndex[FieldPackageCount], row).IntPart()),
		PackageType:     text(FieldPackageType),
		Description:     text(FieldDescription),
		Marks:           text(FieldMarks),
		Gross:           s.weight(owner, columnIndex[FieldGrossWeight], row),
		Net:             s.weight(owner, columnIndex[FieldNetWeight], row),
		Volume:          s.number(owner, columnIndex[FieldVolume], row),
		Commodity:       text(FieldCommodityCode),
		Dangerous:       flag(text(FieldDangerous)),
		Reefer:          flag(text(FieldReefer)),
		TempMin:         s.optional(owner, columnIndex[FieldTempMin], row),
		TempMax:         s.optional(owner, columnIndex[FieldTempMax], row),
		FreightTerms:    text(FieldFreightTerms),
		Permit:          text(FieldPermitNumber),
		LoadingDate:     s.date(owner, columnIndex[FieldLoadingDate], row),
		DischargeDate:   s.date(owner, columnIndex[FieldDischargeDate], row),
		Carrier:         text(FieldCarrierCode),
		Vessel:          text(FieldVesselName),
		Barge:           normalize.Upper(text(FieldBargeName)),
		BargeID:         text(FieldBargeRegistration),
		Voyage:          text(FieldVoyageNumber),
		Extra:           map[string]string{},
	}
	l.Seals = lo.Filter([]string{text(FieldSeal1), text(FieldSeal2), text(FieldSeal3)}, func(v string, _ int) bool { return v != "" })
	for _, field := range extraFields {
		if v := text(field); v != "" {
			l.Extra[field] = v
		}
	}
	return l
}

// Transform fills row values the workbook declares once in its metadata cells.
func (p *_Parser) Transform(doc *Document) (*Document, error) {
	for i := range doc.Lines {
		l := &doc.Lines[i]
		l.LoadingPort = lo.Ternary(l.LoadingPort == "", doc.Meta[MetaLoadingPort], l.LoadingPort)
		l.DischargePort = lo.Ternary(l.DischargePort == "", doc.Meta[MetaDischargePort], l.DischargePort)
		l.Carrier = lo.Ternary(l.Carrier == "", doc.Meta[MetaCarrier], l.Carrier)
		if l.LoadingDate.IsZero() {
			l.LoadingDate = doc.Departure
		}
	}
	return doc, nil
}

func (p *_Parser) Validate(doc *Document) []error {
	errs := append([]error{}, doc.problems...)
	if !p.layout.matchTitle(doc.Title) {
		errs = append(errs, model.NewValidationError("A1: unexpected title %q", doc.Title))
	}
	if len(doc.Lines) == 0 {
		return append(errs, model.NewValidationError("no data rows from row %d", p.layout.DataRow))
	}

	required := []string{FieldLoadingPort, FieldDischargePort, FieldShipperName, FieldConsigneeName, FieldDescription}
	if p.layout.GroupByBarge {
		required = append(required, FieldBargeName)
	}
	for _, l := range doc.Lines {
		values := map[string]string{
			FieldLoadingPort:   l.LoadingPort,
			FieldDischargePort: l.DischargePort,
			FieldShipperName:   l.Shipper.Name,
			FieldConsigneeName: l.Consignee.Name,
			FieldDescription:   l.Description,
			FieldBargeName:     l.Barge,
		}
		for _, field := range required {
			if values[field] == "" {
				errs = append(errs, model.NewValidationError("row %d (%s): missing %s (column %s)", l.Row, l.Bill, field, ColumnOf(field)))
			}
		}
		if l.Net.GreaterThan(l.Gross) && l.Gross.IsPositive() {
			errs = append(errs, model.NewValidationError("row %d (%s): net weight %s exceeds gross weight %s", l.Row, l.Bill, l.Net, l.Gross))
		}
	}
	return errs
}

func (p *_Parser) Assemble(ctx context.Context, asm *assembler.Assembler, doc *Document, opts parser.Options) error {
	first := doc.Lines[0]

	var vessel model.Vessel
	var err error
	switch {
	case !p.layout.GroupByBarge:
		vessel, err = parser.Vessel(ctx, asm, p.info, opts, assembler.VesselInput{Name: first.Vessel})
	case opts.VesselID != "":
		vessel, err = asm.VesselByID(ctx, opts.VesselID)
	case doc.Meta[MetaTug] != "":
		vessel, err = asm.ResolveVessel(ctx, assembler.VesselInput{Name: doc.Meta[MetaTug], Type: model.VesselTypePusher})
	}
	if err != nil {
		return err
	}

	origin, err := asm.ResolvePort(ctx, parser.PortInput(first.LoadingPort), true)
	if err != nil {
		return err
	}
	destination, err := asm.ResolvePort(ctx, parser.PortInput(first.DischargePort), true)
	if err != nil {
		return err
	}
	departure := first.LoadingDate
	if departure.IsZero() {
		departure = asm.DatePlaceholder("departure date", "voyage")
	}
	voyage, err := asm.OpenVoyage(ctx, assembler.VoyageInput{
		Reference:   parser.VoyageReference(opts, doc.Meta[MetaVoyage], first.Voyage, first.Bill),
		Vessel:      vessel,
		Origin:      origin,
		Destination: destination,
		DepartureAt: departure,
		ArrivalAt:   first.DischargeDate,
	})
	if err != nil {
		return err
	}

	b := &_Build{
		asm:        asm,
		info:       p.info,
		layout:     p.layout,
		voyage:     voyage,
		vessel:     vessel,
		shipments:  map[string]model.Shipment{},
		bills:      map[string]model.BillOfLading{},
		containers: map[string]model.Container{},
	}
	for _, l := range doc.Lines {
		if err := b.add(ctx, l); err != nil {
			return err
		}
	}
	for _, number := range b.order {
		if _, err := asm.FinishBill(ctx, b.bills[number]); err != nil {
			return err
		}
	}

	if len(doc.Skipped) > 0 {
		logrus.Debugf("%s: rows without bill number skipped: %v", p.info.Name, doc.Skipped)
		asm.Stat(model.StatSkippedRows, len(doc.Skipped))
	}
	return nil
}

// _Build keeps the entities already resolved for the rows of one workbook.
type _Build struct {
	asm        *assembler.Assembler
	info       parser.FormatInfo
	layout     Layout
	voyage     model.Voyage
	vessel     model.Vessel
	shipments  map[string]model.Shipment
	bills      map[string]model.BillOfLading
	order      []string
	containers map[string]model.Container
}

func (b *_Build) add(ctx context.Context, l Line) error {
	bill, err := b.bill(ctx, l)
	if err != nil {
		return err
	}

	var container *model.Container
	if l.Container != "" {
		c, err := b.container(ctx, l)
		if err != nil {
			return err
		}
		container = &c
	}

	_, err = b.asm.AddItem(ctx, bill, container, assembler.ItemInput{
		Description:   l.Description,
		PackageCount:  l.Packages,
		PackageType:   l.PackageType,
		GrossWeight:   l.Gross,
		NetWeight:     l.Net,
		Volume:        l.Volume,
		CommodityCode: l.Commodity,
		TempMin:       l.TempMin,
		TempMax:       l.TempMax,
		Dangerous:     l.Dangerous,
		Marks:         l.Marks,
	})
	return err
}

func (b *_Build) shipment(ctx context.Context, l Line) (model.Shipment, error) {
	key := lo.Ternary(b.layout.GroupByBarge, l.Barge, "")
	if s, ok := b.shipments[key]; ok {
		return s, nil
	}

	vessel := b.vessel
	if b.layout.GroupByBarge {
		barge, err := b.asm.ResolveVessel(ctx, assembler.VesselInput{Name: l.Barge, Registration: l.BargeID, Type: model.VesselTypeBarge})
		if err != nil {
			return model.Shipment{}, err
		}
		vessel = barge
	}
	s, err := b.asm.OpenShipment(ctx, b.voyage, vessel, l.Carrier)
	if err != nil {
		return model.Shipment{}, err
	}
	b.shipments[key] = s
	return s, nil
}

// bill creates a bill on its first row. Later rows of the same number add lines to it.
func (b *_Build) bill(ctx context.Context, l Line) (model.BillOfLading, error) {
	if bill, ok := b.bills[l.Bill]; ok {
		return bill, nil
	}

	shipment, err := b.shipment(ctx, l)
	if err != nil {
		return model.BillOfLading{}, err
	}
	loading, err := b.asm.ResolvePort(ctx, parser.PortInput(l.LoadingPort), true)
	if err != nil {
		return model.BillOfLading{}, err
	}
	discharge, err := b.asm.ResolvePort(ctx, parser.PortInput(l.DischargePort), true)
	if err != nil {
		return model.BillOfLading{}, err
	}
	shipper, err := b.asm.ResolveParty(ctx, partyInput(l.Shipper))
	if err != nil {
		return model.BillOfLading{}, err
	}
	consignee, err := b.asm.ResolveParty(ctx, partyInput(l.Consignee))
	if err != nil {
		return model.BillOfLading{}, err
	}
	var notify *model.Party
	if l.Notify.Name != "" {
		n, err := b.asm.ResolveParty(ctx, partyInput(l.Notify))
		if err != nil {
			return model.BillOfLading{}, err
		}
		notify = &n
	}

	owner := fmt.Sprintf("bill %s", l.Bill)
	loadingDate := l.LoadingDate
	if loadingDate.IsZero() {
		loadingDate = b.asm.DatePlaceholder("loading date", owner)
	}
	issueDate := l.BillDate
	if issueDate.IsZero() {
		issueDate = loadingDate
	}

	bill, err := b.asm.CreateBillOfLading(ctx, assembler.BillInput{
		Number:           l.Bill,
		MasterBillNumber: l.MasterBill,
		Shipment:         shipment,
		Shipper:          shipper,
		Consignee:        consignee,
		Notify:           notify,
		LoadingPort:      loading,
		DischargePort:    discharge,
		IssueDate:        issueDate,
		LoadingDate:      loadingDate,
		DischargeDate:    l.DischargeDate,
		PermitNumber:     l.Permit,
		FreightTerms:     l.FreightTerms,
		Extra:            l.Extra,
	}, b.info.DuplicatePolicy)
	if err != nil {
		return model.BillOfLading{}, fmt.Errorf("row %d: %w", l.Row, err)
	}
	b.bills[l.Bill] = bill
	b.order = append(b.order, l.Bill)
	return bill, nil
}

// container resolves a container on its first row. A container stored by an earlier import is
// reused and reported.
func (b *_Build) container(ctx context.Context, l Line) (model.Container, error) {
	if c, ok := b.containers[l.Container]; ok {
		return c, nil
	}
	in := assembler.ContainerInput{
		Number:      l.Container,
		Type:        l.ContainerType,
		TareWeight:  l.Tare,
		GrossWeight: l.ContainerGross,
		VGM:         l.VGM,
		Seals:       l.Seals,
		Status:      containerStatus(l.ContainerStatus),
		Reefer:      l.Reefer,
		TempMin:     l.TempMin,
		TempMax:     l.TempMax,
	}
	if in.GrossWeight.IsZero() && in.VGM.IsZero() {
		in.NetWeight = lo.Ternary(l.Net.IsPositive(), l.Net, l.Gross)
	}
	c, _, err := b.asm.ResolveContainer(ctx, in, true)
	if err != nil {
		return model.Container{}, err
	}
	b.containers[l.Container] = c
	return c, nil
}

func partyInput(p Party) assembler.PartyInput {
	return assembler.PartyInput{Name: p.Name, TaxID: p.TaxID, Address: p.Address, CountryCode: p.Country}
}

func containerStatus(s string) model.ContainerStatus {
	switch s {
	case "LCL", "CONSOLIDADO":
		return model.ContainerStatusLCL
	case "EMPTY", "VACIO", "MT":
		return model.ContainerStatusEmpty
	default:
		return model.ContainerStatusFull
	}
}

func flag(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S", "SI", "SÍ", "Y", "YES", "X", "1", "TRUE", "VERDADERO":
		return true
	default:
		return false
	}
}
