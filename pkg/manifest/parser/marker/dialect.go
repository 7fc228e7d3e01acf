package marker

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
)

type billLabels struct {
	Number      string
	Vessel      string
	Voyage      string
	Loading     string
	Discharge   string
	Shipper     string
	ShipperID   string
	Consignee   string
	ConsigneeID string
	Notify      string
	LoadingDate string
	ArrivalDate string
}

type containerLabels struct {
	Number, Type, Seal, Tare, Gross string
}

type lineLabels struct {
	Description, Packages, Packaging, Weight, Volume, Commodity string
}

type headerLabels struct {
	Vessel, Voyage, Origin, Destination, Date string
}

// Dialect maps section names and labels of one marker format onto a Document.
type Dialect struct {
	Block      string
	Header     string
	Wrapper    string
	Container  string
	Line       string
	bill       billLabels
	container  containerLabels
	line       lineLabels
	header     headerLabels
	needsClose bool
}

var blDialect = Dialect{
	Block:     "BL",
	Wrapper:   "CONTENEDORES",
	Container: "CONTENEDOR",
	Line:      "MERCADERIA",
	bill: billLabels{
		Number:      "NUMEROBL",
		Vessel:      "BUQUE",
		Voyage:      "VIAJE",
		Loading:     "PUERTOCARGA",
		Discharge:   "PUERTODESCARGA",
		Shipper:     "EMBARCADOR",
		ShipperID:   "EMBARCADORCUIT",
		Consignee:   "CONSIGNATARIO",
		ConsigneeID: "CONSIGNATARIOCUIT",
		Notify:      "NOTIFICAR",
		LoadingDate: "FECHAEMBARQUE",
		ArrivalDate: "FECHAARRIBO",
	},
	container:  containerLabels{Number: "NUMERO", Type: "TIPO", Seal: "PRECINTO", Tare: "TARA", Gross: "PESOBRUTO"},
	line:       lineLabels{Description: "DESCRIPCION", Packages: "BULTOS", Packaging: "EMBALAJE", Weight: "PESO", Volume: "VOLUMEN", Commodity: "NCM"},
	needsClose: true,
}

var manifestDialect = Dialect{
	Block:     "CONOCIMIENTO",
	Header:    "CABECERA",
	Container: "EQUIPO",
	Line:      "ITEM",
	bill: billLabels{
		Number:      "CONOCIMIENTO",
		Vessel:      "NAVE",
		Voyage:      "VIAJE",
		Loading:     "ORIGEN",
		Discharge:   "DESTINO",
		Shipper:     "REMITENTE",
		ShipperID:   "REMITENTEID",
		Consignee:   "DESTINATARIO",
		ConsigneeID: "DESTINATARIOID",
		LoadingDate: "FECHA",
	},
	container: containerLabels{Number: "SIGLA", Type: "TIPO", Seal: "SELLO", Tare: "TARA", Gross: "BRUTO"},
	line:      lineLabels{Description: "MERCADERIA", Packages: "CANTIDAD", Packaging: "ENVASE", Weight: "KILOS", Volume: "M3", Commodity: "POSICION"},
	header:    headerLabels{Vessel: "NAVE", Voyage: "VIAJE", Origin: "ORIGEN", Destination: "DESTINO", Date: "FECHA"},
}

func (d Dialect) topLevel() []string {
	if d.Header == "" {
		return []string{d.Block}
	}
	return []string{d.Header, d.Block}
}

// Build maps a parsed tree onto a Document. Value problems are kept for validation.
func (d Dialect) Build(t *Tree) *Document {
	b := &_Builder{tree: t, dialect: d, doc: &Document{}}
	if d.Header != "" {
		for _, h := range t.Children(0, d.Header) {
			b.readHeader(h)
		}
	}
	for i, block := range t.Children(0, d.Block) {
		b.doc.Bills = append(b.doc.Bills, b.readBill(i, block))
	}
	return b.doc
}

type _Builder struct {
	tree    *Tree
	dialect Dialect
	doc     *Document
}

func (b *_Builder) readHeader(idx int) {
	l := b.dialect.header
	h := &b.doc.Header
	h.Vessel = normalize.Text(b.tree.Field(idx, l.Vessel))
	h.Voyage = normalize.Text(b.tree.Field(idx, l.Voyage))
	h.Origin = normalize.Text(b.tree.Field(idx, l.Origin))
	h.Destination = normalize.Text(b.tree.Field(idx, l.Destination))
	h.Date = b.date("header", b.tree.Field(idx, l.Date))
}

func (b *_Builder) readBill(i, idx int) Bill {
	l := b.dialect.bill
	f := func(label string) string {
		if label == "" {
			return ""
		}
		return normalize.Text(b.tree.Field(idx, label))
	}
	bill := Bill{
		Number:        normalize.Upper(f(l.Number)),
		Vessel:        f(l.Vessel),
		Voyage:        f(l.Voyage),
		LoadingPort:   f(l.Loading),
		DischargePort: f(l.Discharge),
		Shipper:       Party{Name: f(l.Shipper), TaxID: f(l.ShipperID)},
		Consignee:     Party{Name: f(l.Consignee), TaxID: f(l.ConsigneeID)},
		Notify:        Party{Name: f(l.Notify)},
		Closed:        b.tree.Nodes[idx].Closed,
	}
	owner := fmt.Sprintf("bill[%d] (%s)", i, bill.Number)
	bill.LoadingDate = b.date(owner, f(l.LoadingDate))
	bill.ArrivalDate = b.date(owner, f(l.ArrivalDate))

	for _, c := range b.containerNodes(idx) {
		j := len(bill.Containers)
		bill.Containers = append(bill.Containers, b.readContainer(fmt.Sprintf("%s container[%d]", owner, j), c))
	}
	for k, ln := range b.tree.Children(idx, b.dialect.Line) {
		bill.Lines = append(bill.Lines, b.readLine(fmt.Sprintf("%s line[%d]", owner, k), ln))
	}
	return bill
}

// containerNodes lists the container sections of a bill. With a wrapper dialect, containers may
// also sit directly under the bill, and a wrapper that carries container fields but no
// container section is itself read as one container.
func (b *_Builder) containerNodes(bill int) []int {
	if b.dialect.Wrapper == "" {
		return b.tree.Children(bill, b.dialect.Container)
	}
	nodes := b.tree.Children(bill, b.dialect.Container)
	nodes = append(nodes, b.tree.Descendants(bill, b.dialect.Wrapper, b.dialect.Container)...)
	for _, w := range b.tree.Children(bill, b.dialect.Wrapper) {
		if len(b.tree.Children(w, b.dialect.Container)) == 0 && b.tree.Field(w, b.dialect.container.Number) != "" {
			nodes = append(nodes, w)
		}
	}
	return nodes
}

func (b *_Builder) readContainer(owner string, idx int) Container {
	l := b.dialect.container
	c := Container{
		Number: normalize.ContainerNumber(b.tree.Field(idx, l.Number)),
		Type:   normalize.Text(b.tree.Field(idx, l.Type)),
		Seal:   normalize.Text(b.tree.Field(idx, l.Seal)),
		Tare:   b.weight(owner, l.Tare, b.tree.Field(idx, l.Tare)),
		Gross:  b.weight(owner, l.Gross, b.tree.Field(idx, l.Gross)),
	}
	for k, ln := range b.tree.Children(idx, b.dialect.Line) {
		c.Lines = append(c.Lines, b.readLine(fmt.Sprintf("%s line[%d]", owner, k), ln))
	}
	return c
}

func (b *_Builder) readLine(owner string, idx int) Line {
	l := b.dialect.line
	return Line{
		Description: normalize.Text(b.tree.Field(idx, l.Description)),
		Packages:    int(b.number(owner, l.Packages, b.tree.Field(idx, l.Packages)).IntPart()),
		Packaging:   normalize.Text(b.tree.Field(idx, l.Packaging)),
		Weight:      b.weight(owner, l.Weight, b.tree.Field(idx, l.Weight)),
		Volume:      b.number(owner, l.Volume, b.tree.Field(idx, l.Volume)),
		Commodity:   normalize.Text(b.tree.Field(idx, l.Commodity)),
	}
}

func (b *_Builder) number(owner, label, raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	v, err := normalize.Decimal(raw, normalize.Auto)
	if err != nil {
		b.problem("%s: %s %q is not a number", owner, label, raw)
	}
	return v
}

func (b *_Builder) weight(owner, label, raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	v, err := normalize.Weight(raw, "", normalize.Auto)
	if err != nil {
		b.problem("%s: %s %q is not a weight", owner, label, raw)
	}
	return v
}

func (b *_Builder) date(owner, raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := normalize.Date(raw)
	if err != nil {
		b.problem("%s: %q is not a date", owner, raw)
	}
	return t
}

func (b *_Builder) problem(format string, args ...any) {
	b.doc.problems = append(b.doc.problems, model.NewValidationError(format, args...))
}
