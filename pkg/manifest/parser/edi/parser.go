package edi

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/assembler"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/sniff"
)

const FormatName = "cuscar"

var info = parser.FormatInfo{
	Name:        FormatName,
	Description: "UN/EDIFACT CUSCAR customs cargo report",
	Extensions:  []string{".edi", ".txt", ".cus"},
	Capabilities: []string{
		parser.CapabilityContainers,
		parser.CapabilityParties,
		parser.CapabilityDangerousGoods,
		parser.CapabilityReefer,
	},
	DuplicatePolicy: assembler.AbortOnDuplicate,
}

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

// CanParse accepts an interchange whose prefix carries a UNA or UNB header and a CUSCAR message.
func (p *_Parser) CanParse(path string) bool {
	head, err := sniff.HeadText(path, p.sniffBytes)
	if err != nil {
		return false
	}
	head = strings.TrimLeft(head, " \t\r\n")
	if !strings.HasPrefix(head, "UNA") && !strings.HasPrefix(head, "UNB") && !strings.HasPrefix(head, "UNH") {
		return false
	}
	return sniff.ContainsFold(head, "CUSCAR")
}

func (p *_Parser) Extract(ctx context.Context, path string, opts parser.Options) (*Document, error) {
	content, err := sniff.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %s%w", path, err.Error(), model.ErrStructuralValidation)
	}
	segments, delims, err := Tokenize(content)
	if err != nil {
		return nil, err
	}
	return Scan(segments, delims), nil
}

func (p *_Parser) Transform(doc *Document) (*Document, error) {
	h := &doc.Header
	if h.BillNumber == "" {
		h.BillNumber = h.ManifestNumber
	}
	h.LoadingPort = strings.ToUpper(h.LoadingPort)
	h.DischargePort = strings.ToUpper(h.DischargePort)

	doc.Findings = nil
	for gi, g := range doc.Groups {
		for _, idx := range g.Items {
			if len(doc.Items[idx].Placements) == 0 {
				doc.Findings = append(doc.Findings, fmt.Sprintf("group %d (%s) item %s: no container, item ignored", gi+1, g.Number, doc.Items[idx].Number))
			}
		}
	}
	return doc, nil
}

func (p *_Parser) Validate(doc *Document) []error {
	errs := append([]error{}, doc.problems...)
	h := doc.Header
	if h.VesselName == "" {
		errs = append(errs, model.NewValidationError("TDT: vessel name is missing"))
	}
	if h.BillNumber == "" {
		errs = append(errs, model.NewValidationError("RFF+BM: bill of lading number is missing"))
	}
	if h.LoadingPort == "" {
		errs = append(errs, model.NewValidationError("LOC: port of loading is missing"))
	}
	if h.DischargePort == "" {
		errs = append(errs, model.NewValidationError("LOC: port of discharge is missing"))
	}
	if h.Shipper == nil || h.Shipper.Name == "" {
		errs = append(errs, model.NewValidationError("NAD+CZ: shipper is missing"))
	}
	if h.Consignee == nil || h.Consignee.Name == "" {
		errs = append(errs, model.NewValidationError("NAD+CN: consignee is missing"))
	}
	if len(doc.Groups) == 0 {
		errs = append(errs, model.NewValidationError("no goods items declared"))
	}
	for gi, g := range doc.Groups {
		if len(g.Items) == 0 {
			errs = append(errs, model.NewValidationError("group %d (%s): no goods items", gi+1, g.Number))
		}
	}
	return errs
}

func (p *_Parser) Assemble(ctx context.Context, asm *assembler.Assembler, doc *Document, opts parser.Options) error {
	h := doc.Header
	vessel, err := parser.Vessel(ctx, asm, info, opts, assembler.VesselInput{
		Name:         h.VesselName,
		Registration: h.VesselIMO,
		Type:         model.VesselTypeContainer,
	})
	if err != nil {
		return err
	}
	origin, err := asm.ResolvePort(ctx, assembler.PortInput{Code: h.LoadingPort}, true)
	if err != nil {
		return err
	}
	destination, err := asm.ResolvePort(ctx, assembler.PortInput{Code: h.DischargePort}, true)
	if err != nil {
		return err
	}

	owner := "bill " + h.BillNumber
	departure := h.DepartureAt
	if departure.IsZero() {
		departure = asm.DatePlaceholder("departure date", owner)
	}

	voyage, err := asm.OpenVoyage(ctx, assembler.VoyageInput{
		Reference:   parser.VoyageReference(opts, h.VoyageNumber, h.ManifestNumber),
		Vessel:      vessel,
		Origin:      origin,
		Destination: destination,
		DepartureAt: departure,
		ArrivalAt:   h.ArrivalAt,
	})
	if err != nil {
		return err
	}
	shipment, err := asm.OpenShipment(ctx, voyage, vessel, h.Carrier)
	if err != nil {
		return err
	}

	shipper, err := asm.ResolveParty(ctx, partyInput(h.Shipper))
	if err != nil {
		return err
	}
	consignee, err := asm.ResolveParty(ctx, partyInput(h.Consignee))
	if err != nil {
		return err
	}
	var notify *model.Party
	if h.Notify != nil && h.Notify.Name != "" {
		n, err := asm.ResolveParty(ctx, partyInput(h.Notify))
		if err != nil {
			return err
		}
		notify = &n
	}

	bill, err := asm.CreateBillOfLading(ctx, assembler.BillInput{
		Number:        h.BillNumber,
		Shipment:      shipment,
		Shipper:       shipper,
		Consignee:     consignee,
		Notify:        notify,
		LoadingPort:   origin,
		DischargePort: destination,
		IssueDate:     departure,
		LoadingDate:   departure,
		DischargeDate: h.ArrivalAt,
		Extra:         map[string]string{"manifest_number": h.ManifestNumber},
	}, info.DuplicatePolicy)
	if err != nil {
		return err
	}

	for _, finding := range doc.Findings {
		asm.Warn("%s", finding)
		asm.Stat(model.StatValidationFindings, 1)
	}

	cargo := cargoByContainer(doc)
	for _, g := range doc.Groups {
		for _, idx := range g.Items {
			item := doc.Items[idx]
			for pi, placement := range item.Placements {
				container, _, err := asm.ResolveContainer(ctx, containerInput(doc, placement.Container, item, cargo), false)
				if err != nil {
					return err
				}
				if _, err := asm.AddItem(ctx, bill, &container, itemShare(item, pi)); err != nil {
					return err
				}
			}
		}
	}

	_, err = asm.FinishBill(ctx, bill)
	return err
}

func partyInput(p *Party) assembler.PartyInput {
	if p == nil {
		return assembler.PartyInput{}
	}
	return assembler.PartyInput{
		Name:        p.Name,
		TaxID:       p.TaxID,
		Address:     strings.TrimSpace(p.Street + " " + p.PostCode),
		City:        p.City,
		CountryCode: p.Country,
	}
}

// itemShare is the part of a goods item loaded in its n-th container. Packages come from the
// placement when declared; otherwise packages and weights are split evenly.
func itemShare(item Item, n int) assembler.ItemInput {
	count := len(item.Placements)
	divisor := decimal.NewFromInt(int64(count))

	packages := item.Placements[n].Packages
	if packages == 0 {
		packages = item.Packages / count
		if n == 0 {
			packages += item.Packages % count
		}
	}

	in := assembler.ItemInput{
		Description:   strings.Join(item.Description, " "),
		PackageCount:  packages,
		PackageType:   item.PackageType,
		GrossWeight:   item.Gross,
		NetWeight:     item.Net,
		Volume:        item.Volume,
		CommodityCode: item.Commodity,
		Dangerous:     item.Dangerous,
	}
	if count > 1 {
		in.GrossWeight = item.Gross.DivRound(divisor, 3)
		in.NetWeight = item.Net.DivRound(divisor, 3)
		in.Volume = item.Volume.DivRound(divisor, 3)
	}
	if item.Temperature != nil {
		in.TempMin, in.TempMax = item.Temperature, item.Temperature
	}
	return in
}

// cargoByContainer sums the gross cargo weight loaded in each container.
func cargoByContainer(doc *Document) map[string]decimal.Decimal {
	cargo := map[string]decimal.Decimal{}
	for _, g := range doc.Groups {
		for _, idx := range g.Items {
			item := doc.Items[idx]
			for pi, placement := range item.Placements {
				cargo[placement.Container] = cargo[placement.Container].Add(itemShare(item, pi).GrossWeight)
			}
		}
	}
	return cargo
}

func containerInput(doc *Document, number string, item Item, cargo map[string]decimal.Decimal) assembler.ContainerInput {
	in := assembler.ContainerInput{Number: number}
	if eq := doc.equipment(number); eq != nil {
		in.Type = eq.Type
		in.Seals = eq.Seals
		in.GrossWeight = eq.Gross
		in.TareWeight = eq.Tare
		in.VGM = eq.VGM
		if eq.Empty {
			in.Status = model.ContainerStatusEmpty
		}
		if eq.Temperature != nil {
			in.TempMin, in.TempMax = eq.Temperature, eq.Temperature
		}
	}
	if in.GrossWeight.IsZero() && in.VGM.IsZero() {
		in.NetWeight = cargo[number]
	}
	if in.TempMin == nil && item.Temperature != nil {
		in.TempMin, in.TempMax = item.Temperature, item.Temperature
	}
	return in
}
