package edi

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
)

type scope int

const (
	scopeHeader scope = iota
	scopeGroup
	scopeItem
	scopeEquipment
)

// DefaultGroupNumber names the group created for goods items declared outside any CNI.
const DefaultGroupNumber = "DEFAULT"

type _Scanner struct {
	doc       *Document
	style     normalize.Style
	scope     scope
	pending   *Group
	item      int
	equipment int
}

// Scan builds a document from the segments of one interchange.
func Scan(segments []Segment, delims Delimiters) *Document {
	s := &_Scanner{
		doc: &Document{
			equipmentIndex: map[string]int{},
			grouped:        map[int]bool{},
		},
		style:     normalize.DotDecimal,
		item:      -1,
		equipment: -1,
	}
	if delims.Decimal == ',' {
		s.style = normalize.CommaDecimal
	}
	for _, seg := range segments {
		s.segment(seg)
	}
	s.finish()
	return s.doc
}

func (s *_Scanner) segment(seg Segment) {
	h := &s.doc.Header
	switch seg.Tag {
	case "UNH":
		if kind := seg.Value(1, 0); kind != "" && !strings.EqualFold(kind, "CUSCAR") {
			s.problem(seg, "message type %s is not CUSCAR", kind)
		}
	case "BGM":
		setOnce(&h.ManifestNumber, seg.Value(1, 0))
	case "RFF":
		if strings.EqualFold(seg.Value(0, 0), "BM") {
			setOnce(&h.BillNumber, seg.Value(0, 1))
		}
	case "TDT":
		setOnce(&h.VoyageNumber, seg.Value(1, 0))
		setOnce(&h.Carrier, seg.Value(4, 0))
		imo, name := seg.Value(7, 0), seg.Value(7, 3)
		if name == "" && imo != "" && normalize.Code(imo) != imo {
			name, imo = imo, ""
		}
		setOnce(&h.VesselIMO, imo)
		setOnce(&h.VesselName, name)
	case "LOC":
		switch seg.Value(0, 0) {
		case "5", "9":
			setOnce(&h.LoadingPort, seg.Value(1, 0))
		case "8", "11", "60":
			setOnce(&h.DischargePort, seg.Value(1, 0))
		}
	case "DTM":
		s.date(seg)
	case "NAD":
		s.party(seg)
	case "CNI":
		s.openGroup(seg.Value(0, 0))
	case "GID":
		s.openItem(seg)
	case "FTX":
		if s.scope == scopeItem && strings.EqualFold(seg.Value(0, 0), "AAA") {
			if text := normalize.Text(seg.Joined(3)); text != "" {
				it := &s.doc.Items[s.item]
				it.Description = append(it.Description, text)
			}
		}
	case "PIA":
		if s.scope == scopeItem {
			setOnce(&s.doc.Items[s.item].Commodity, seg.Value(1, 0))
		}
	case "SGP":
		s.placement(seg)
	case "MEA":
		s.measure(seg)
	case "EQD":
		s.openEquipment(seg)
	case "SEL":
		if s.scope == scopeEquipment {
			eq := &s.doc.Equipment[s.equipment]
			if seal := seg.Value(0, 0); seal != "" {
				eq.Seals = append(eq.Seals, seal)
			}
		}
	case "TMP":
		s.temperature(seg)
	case "DGS":
		if s.scope == scopeItem {
			s.doc.Items[s.item].Dangerous = true
		}
	}
}

func (s *_Scanner) date(seg Segment) {
	qualifier := seg.Value(0, 0)
	var target *time.Time
	switch qualifier {
	case "133", "137":
		target = &s.doc.Header.DepartureAt
	case "132", "178":
		target = &s.doc.Header.ArrivalAt
	default:
		return
	}
	if !target.IsZero() {
		return
	}
	t, err := normalize.EDIFACTDate(seg.Value(0, 1), seg.Value(0, 2))
	if err != nil {
		s.problem(seg, "DTM %s: %s", qualifier, err.Error())
		return
	}
	*target = t
}

func (s *_Scanner) party(seg Segment) {
	p := &Party{
		TaxID:    seg.Value(1, 0),
		Name:     normalize.Text(seg.Joined(2)),
		Street:   normalize.Text(seg.Joined(3)),
		City:     seg.Value(4, 0),
		PostCode: seg.Value(6, 0),
		Country:  seg.Value(7, 0),
	}
	h := &s.doc.Header
	switch strings.ToUpper(seg.Value(0, 0)) {
	case "CZ":
		if h.Shipper == nil {
			h.Shipper = p
		}
	case "CN":
		if h.Consignee == nil {
			h.Consignee = p
		}
	case "N1", "NI":
		if h.Notify == nil {
			h.Notify = p
		}
	}
}

func (s *_Scanner) openGroup(number string) {
	if s.pending != nil && len(s.pending.Items) > 0 {
		s.doc.Groups = append(s.doc.Groups, *s.pending)
		s.pending = nil
	}
	if s.pending == nil {
		s.pending = &Group{}
	}
	s.pending.Number = number
	s.scope = scopeGroup
	s.item = -1
	s.equipment = -1
}

func (s *_Scanner) openItem(seg Segment) {
	s.doc.Items = append(s.doc.Items, Item{
		Number:      seg.Value(0, 0),
		Packages:    normalize.IntOrZero(seg.Value(1, 0), s.style),
		PackageType: seg.Value(1, 1),
	})
	s.item = len(s.doc.Items) - 1
	if s.pending != nil {
		s.pending.Items = append(s.pending.Items, s.item)
		s.doc.grouped[s.item] = true
	}
	s.scope = scopeItem
	s.equipment = -1
}

func (s *_Scanner) placement(seg Segment) {
	number := normalize.ContainerNumber(seg.Value(0, 0))
	if number == "" {
		return
	}
	if s.item < 0 {
		s.problem(seg, "SGP %s outside a goods item", number)
		return
	}
	it := &s.doc.Items[s.item]
	it.Placements = append(it.Placements, Placement{
		Container: number,
		Packages:  normalize.IntOrZero(seg.Value(1, 0), s.style),
	})
}

func (s *_Scanner) openEquipment(seg Segment) {
	number := normalize.ContainerNumber(seg.Value(1, 0))
	if number == "" {
		s.scope = scopeHeader
		s.equipment = -1
		return
	}
	idx, ok := s.doc.equipmentIndex[number]
	if !ok {
		s.doc.Equipment = append(s.doc.Equipment, Equipment{Number: number})
		idx = len(s.doc.Equipment) - 1
		s.doc.equipmentIndex[number] = idx
	}
	eq := &s.doc.Equipment[idx]
	setOnce(&eq.Type, seg.Value(2, 0))
	if seg.Value(5, 0) == "4" {
		eq.Empty = true
	}
	s.scope = scopeEquipment
	s.equipment = idx
}

func (s *_Scanner) measure(seg Segment) {
	dimension := strings.ToUpper(seg.Value(1, 0))
	unit, raw := strings.ToUpper(seg.Value(2, 0)), seg.Value(2, 1)
	if raw == "" {
		return
	}

	if dimension == "AAW" || strings.EqualFold(seg.Value(0, 0), "VOL") {
		volume, err := normalize.Decimal(raw, s.style)
		if err != nil {
			s.problem(seg, "MEA volume: %s", err.Error())
			return
		}
		switch s.scope {
		case scopeItem:
			s.doc.Items[s.item].Volume = volume
		case scopeGroup:
			s.pending.Volume = volume
		}
		return
	}

	weight, err := normalize.Weight(raw, unit, s.style)
	if err != nil {
		s.problem(seg, "MEA weight: %s", err.Error())
		return
	}
	switch s.scope {
	case scopeItem:
		it := &s.doc.Items[s.item]
		switch dimension {
		case "G", "AAB":
			it.Gross = weight
		case "N", "AAL":
			it.Net = weight
		}
	case scopeEquipment:
		eq := &s.doc.Equipment[s.equipment]
		switch dimension {
		case "G", "AAB":
			eq.Gross = weight
		case "T":
			eq.Tare = weight
		case "VGM":
			eq.VGM = weight
		}
	case scopeGroup:
		if dimension == "G" || dimension == "AAB" {
			s.pending.Gross = weight
		}
	}
}

func (s *_Scanner) temperature(seg Segment) {
	raw := seg.Value(1, 0)
	if raw == "" {
		return
	}
	t, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		s.problem(seg, "TMP: %q is not a temperature", raw)
		return
	}
	switch s.scope {
	case scopeItem:
		s.doc.Items[s.item].Temperature = &t
	case scopeEquipment:
		s.doc.Equipment[s.equipment].Temperature = &t
	}
}

func (s *_Scanner) finish() {
	if s.pending != nil {
		s.doc.Groups = append(s.doc.Groups, *s.pending)
		s.pending = nil
	}
	var orphans []int
	for idx := range s.doc.Items {
		if !s.doc.grouped[idx] {
			orphans = append(orphans, idx)
		}
	}
	if len(orphans) > 0 {
		s.doc.Groups = append(s.doc.Groups, Group{Number: DefaultGroupNumber, Items: orphans})
	}
}

func (s *_Scanner) problem(seg Segment, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.doc.problems = append(s.doc.problems, model.NewValidationError("segment %d (%s): %s", seg.Index+1, seg.Tag, msg))
}

func setOnce(target *string, value string) {
	if *target == "" {
		*target = strings.TrimSpace(value)
	}
}
