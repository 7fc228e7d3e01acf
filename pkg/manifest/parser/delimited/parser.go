package delimited

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/assembler"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/sniff"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/reference"
)

const (
	FormatName      = "csv_lines"
	DefaultMinScore = 6
)

var info = parser.FormatInfo{
	Name:        FormatName,
	Description: "Delimited cargo lines recognised by carrier, terminal and route keywords",
	Extensions:  []string{".csv", ".txt"},
	Capabilities: []string{
		parser.CapabilityMultipleBills,
		parser.CapabilityMultipleShipments,
		parser.CapabilityContainers,
		parser.CapabilityParties,
		parser.CapabilityReefer,
	},
	DuplicatePolicy: assembler.SkipOnDuplicate,
	RequiresVessel:  true,
}

type _Parser struct {
	matcher    *_Matcher
	sniffBytes int
	minScore   int
}

type OptionFunc func(*_Parser)

func WithSniffBytes(n int) OptionFunc {
	return func(p *_Parser) {
		if n > 0 {
			p.sniffBytes = n
		}
	}
}

// WithMinScore sets the keyword score a file must reach to be recognised.
func WithMinScore(score int) OptionFunc {
	return func(p *_Parser) {
		if score > 0 {
			p.minScore = score
		}
	}
}

func New(keywords reference.CSVKeywords, options ...OptionFunc) parser.Parser {
	p := &_Parser{
		matcher:    newMatcher(keywords),
		sniffBytes: sniff.DefaultHeadSize,
		minScore:   DefaultMinScore,
	}
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
		"sniff_bytes":      p.sniffBytes,
		"csv_min_score":    p.minScore,
		"keywords_version": p.matcher.version,
		"strict_ports":     false,
	}
}

// CanParse accepts delimited text whose head mentions enough known carriers, terminals and
// routes. There is no structural marker to look for.
func (p *_Parser) CanParse(path string) bool {
	if !sniff.IsText(path) {
		return false
	}
	head, err := sniff.HeadText(path, p.sniffBytes)
	if err != nil {
		return false
	}
	header, _, _ := strings.Cut(head, "\n")
	delimiter := detectDelimiter(header)
	if len(strings.Split(header, string(delimiter))) < 2 {
		return false
	}
	score, _ := p.matcher.Score(head)
	return score >= p.minScore
}

func detectDelimiter(header string) rune {
	candidates := []rune{';', ',', '\t', '|'}
	return lo.MaxBy(candidates, func(a, b rune) bool {
		return strings.Count(header, string(a)) > strings.Count(header, string(b))
	})
}

func (p *_Parser) Extract(ctx context.Context, path string, opts parser.Options) (*Document, error) {
	content, err := sniff.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %s%w", path, err.Error(), model.ErrStructuralValidation)
	}
	header, _, _ := strings.Cut(content, "\n")
	doc := &Document{
		Delimiter:       detectDelimiter(header),
		Columns:         map[string]int{},
		KeywordsVersion: p.matcher.version,
	}
	doc.Score, doc.Hits = p.matcher.Score(content)

	r := csv.NewReader(strings.NewReader(content))
	r.Comma = doc.Delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	names, err := r.Read()
	if err != nil {
		return nil, model.NewValidationError("header: %s", err.Error())
	}
	for i, name := range names {
		if column, ok := columnOf(name); ok {
			if _, seen := doc.Columns[column]; !seen {
				doc.Columns[column] = i
			}
		}
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			doc.problems = append(doc.problems, model.NewValidationError("%s", err.Error()))
			continue
		}
		line, _ := r.FieldPos(0)
		if lo.EveryBy(record, func(v string) bool { return strings.TrimSpace(v) == "" }) {
			continue
		}
		doc.Rows = append(doc.Rows, p.readRow(doc, line, record))
	}
	return doc, nil
}

func columnOf(header string) (string, bool) {
	h := normalize.Upper(header)
	for column, aliases := range headerAliases {
		if lo.Contains(aliases, h) {
			return column, true
		}
	}
	return "", false
}

func (p *_Parser) readRow(doc *Document, line int, record []string) Row {
	get := func(column string) string {
		i, ok := doc.Columns[column]
		if !ok || i >= len(record) {
			return ""
		}
		return normalize.Text(record[i])
	}
	problem := func(column, value, what string) {
		doc.problems = append(doc.problems, model.NewValidationError("line %d: %s %q is not a %s", line, column, value, what))
	}

	row := Row{
		Line:        line,
		Carrier:     normalize.Upper(get(ColumnCarrier)),
		Bill:        normalize.Upper(get(ColumnBill)),
		Container:   normalize.ContainerNumber(get(ColumnContainer)),
		Type:        get(ColumnType),
		Description: get(ColumnDescription),
		Loading:     get(ColumnLoading),
		Discharge:   get(ColumnDischarge),
		Shipper:     get(ColumnShipper),
		Consignee:   get(ColumnConsignee),
		Terminal:    normalize.Upper(get(ColumnTerminal)),
		Seal:        get(ColumnSeal),
	}
	if v := get(ColumnPackages); v != "" {
		n, err := normalize.Int(v, normalize.Auto)
		if err != nil {
			problem(ColumnPackages, v, "number")
		}
		row.Packages = n
	}
	if v := get(ColumnWeight); v != "" {
		w, err := normalize.Weight(v, "", normalize.Auto)
		if err != nil {
			problem(ColumnWeight, v, "weight")
		}
		row.Weight = w
	}
	if v := get(ColumnDate); v != "" {
		d, err := normalize.Date(v)
		if err != nil {
			problem(ColumnDate, v, "date")
		}
		row.Date = d
	}
	return row
}

// Transform names the carrier of rows that leave the carrier column empty and reads the
// description signals.
func (p *_Parser) Transform(doc *Document) (*Document, error) {
	for i := range doc.Rows {
		r := &doc.Rows[i]
		if r.Carrier == "" {
			r.Carrier = p.matcher.Carrier(strings.Join([]string{r.Description, r.Shipper, r.Terminal}, " "))
		}
		r.Signals = p.matcher.Signals(r.Description)
	}
	return doc, nil
}

func (p *_Parser) Validate(doc *Document) []error {
	errs := append([]error{}, doc.problems...)
	if _, ok := doc.Columns[ColumnBill]; !ok {
		errs = append(errs, model.NewValidationError("header: no bill column (%s)", strings.Join(headerAliases[ColumnBill], "|")))
	}
	if len(doc.Rows) == 0 {
		return append(errs, model.NewValidationError("no data rows"))
	}
	for _, r := range doc.Rows {
		required := []struct{ column, value string }{
			{ColumnBill, r.Bill},
			{ColumnLoading, r.Loading},
			{ColumnDischarge, r.Discharge},
			{ColumnConsignee, r.Consignee},
		}
		for _, c := range required {
			if c.value == "" {
				errs = append(errs, model.NewValidationError("line %d (%s): missing %s", r.Line, r.Bill, c.column))
			}
		}
	}
	return errs
}

// _Group is the rows of one carrier, in file order, split by bill.
type _Group struct {
	carrier string
	bills   []string
	rows    map[string][]Row
}

func groupRows(rows []Row) []*_Group {
	var groups []*_Group
	index := map[string]*_Group{}
	for _, r := range rows {
		g, ok := index[r.Carrier]
		if !ok {
			g = &_Group{carrier: r.Carrier, rows: map[string][]Row{}}
			index[r.Carrier] = g
			groups = append(groups, g)
		}
		if _, ok := g.rows[r.Bill]; !ok {
			g.bills = append(g.bills, r.Bill)
		}
		g.rows[r.Bill] = append(g.rows[r.Bill], r)
	}
	return groups
}

func (p *_Parser) Assemble(ctx context.Context, asm *assembler.Assembler, doc *Document, opts parser.Options) error {
	first := doc.Rows[0]
	vessel, err := parser.Vessel(ctx, asm, info, opts, assembler.VesselInput{})
	if err != nil {
		return err
	}
	origin, err := asm.ResolvePort(ctx, parser.PortInput(first.Loading), false)
	if err != nil {
		return err
	}
	destination, err := asm.ResolvePort(ctx, parser.PortInput(first.Discharge), false)
	if err != nil {
		return err
	}
	departure := first.Date
	if departure.IsZero() {
		departure = asm.DatePlaceholder("departure date", "voyage")
	}
	voyage, err := asm.OpenVoyage(ctx, assembler.VoyageInput{
		Reference:   parser.VoyageReference(opts, first.Bill),
		Vessel:      vessel,
		Origin:      origin,
		Destination: destination,
		DepartureAt: departure,
	})
	if err != nil {
		return err
	}

	// A bill number belongs to the first carrier that lists it.
	owners := map[string]string{}
	for _, g := range groupRows(doc.Rows) {
		shipment, err := asm.OpenShipment(ctx, voyage, vessel, g.carrier)
		if err != nil {
			return err
		}
		for _, number := range g.bills {
			if owner, ok := owners[number]; ok {
				asm.Stat(model.StatSkippedBills, 1)
				asm.Warn("bill %s appears under carriers %q and %q, second occurrence skipped", number, owner, g.carrier)
				continue
			}
			owners[number] = g.carrier
			err := p.assembleBill(ctx, asm, shipment, departure, doc.KeywordsVersion, g.rows[number])
			if errors.Is(err, assembler.ErrSkipped) {
				continue
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *_Parser) assembleBill(ctx context.Context, asm *assembler.Assembler, shipment model.Shipment, departure time.Time, version int, rows []Row) error {
	r := rows[0]
	loading, err := asm.ResolvePort(ctx, parser.PortInput(r.Loading), false)
	if err != nil {
		return err
	}
	discharge, err := asm.ResolvePort(ctx, parser.PortInput(r.Discharge), false)
	if err != nil {
		return err
	}
	shipperName := r.Shipper
	if shipperName == "" {
		shipperName = lo.Ternary(r.Carrier == "", "UNKNOWN SHIPPER", r.Carrier)
		asm.Warn("bill %s: shipper missing, %s used", r.Bill, shipperName)
	}
	shipper, err := asm.ResolveParty(ctx, assembler.PartyInput{Name: shipperName})
	if err != nil {
		return err
	}
	consignee, err := asm.ResolveParty(ctx, assembler.PartyInput{Name: r.Consignee})
	if err != nil {
		return err
	}

	loadingDate := lo.Ternary(r.Date.IsZero(), departure, r.Date)
	bill, err := asm.CreateBillOfLading(ctx, assembler.BillInput{
		Number:        r.Bill,
		Shipment:      shipment,
		Shipper:       shipper,
		Consignee:     consignee,
		LoadingPort:   loading,
		DischargePort: discharge,
		IssueDate:     loadingDate,
		LoadingDate:   loadingDate,
		Extra:         billExtra(rows, version),
	}, info.DuplicatePolicy)
	if err != nil {
		return err
	}

	containers := map[string]model.Container{}
	for _, row := range rows {
		var container *model.Container
		if row.Container != "" {
			c, ok := containers[row.Container]
			if !ok {
				c, _, err = asm.ResolveContainer(ctx, assembler.ContainerInput{
					Number:    row.Container,
					Type:      row.Type,
					NetWeight: containerCargo(rows, row.Container),
					Seals:     []string{row.Seal},
					Reefer:    row.Signals.Reefer,
					TempMin:   row.Signals.Temperature,
					TempMax:   row.Signals.Temperature,
				}, false)
				if err != nil {
					return err
				}
				containers[row.Container] = c
			}
			container = &c
		}
		if _, err := asm.AddItem(ctx, bill, container, assembler.ItemInput{
			Description:  row.Description,
			PackageCount: row.Packages,
			GrossWeight:  row.Weight,
			TempMin:      row.Signals.Temperature,
			TempMax:      row.Signals.Temperature,
		}); err != nil {
			return err
		}
	}
	_, err = asm.FinishBill(ctx, bill)
	return err
}

// billExtra collects the certifications, destination and terminal hints of a bill's rows.
func billExtra(rows []Row, version int) map[string]string {
	certs := lo.Uniq(lo.FlatMap(rows, func(r Row, _ int) []string { return r.Signals.Certifications }))
	sort.Strings(certs)
	destinations := lo.Uniq(lo.FilterMap(rows, func(r Row, _ int) (string, bool) {
		return r.Signals.Destination, r.Signals.Destination != ""
	}))
	terminals := lo.Uniq(lo.FilterMap(rows, func(r Row, _ int) (string, bool) { return r.Terminal, r.Terminal != "" }))
	return map[string]string{
		"certifications":   strings.Join(certs, ","),
		"destination_hint": strings.Join(destinations, ","),
		"terminal":         strings.Join(terminals, ","),
		"keywords_version": strconv.Itoa(version),
	}
}

func containerCargo(rows []Row, number string) decimal.Decimal {
	return lo.Reduce(rows, func(sum decimal.Decimal, r Row, _ int) decimal.Decimal {
		if r.Container == number {
			return sum.Add(r.Weight)
		}
		return sum
	}, decimal.Zero)
}
