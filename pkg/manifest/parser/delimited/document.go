package delimited

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canonical column names. Each accepts the header aliases listed in headerAliases.
const (
	ColumnCarrier     = "carrier"
	ColumnBill        = "bill"
	ColumnContainer   = "container"
	ColumnType        = "type"
	ColumnPackages    = "packages"
	ColumnWeight      = "weight"
	ColumnDescription = "description"
	ColumnLoading     = "pol"
	ColumnDischarge   = "pod"
	ColumnShipper     = "shipper"
	ColumnConsignee   = "consignee"
	ColumnTerminal    = "terminal"
	ColumnSeal        = "seal"
	ColumnDate        = "date"
)

var headerAliases = map[string][]string{
	ColumnCarrier:     {"LINEA", "CARRIER", "NAVIERA"},
	ColumnBill:        {"BL", "CONOCIMIENTO", "B/L"},
	ColumnContainer:   {"CONTENEDOR", "CONTAINER"},
	ColumnType:        {"TIPO", "TYPE"},
	ColumnPackages:    {"BULTOS", "PACKAGES"},
	ColumnWeight:      {"PESO", "WEIGHT", "KILOS"},
	ColumnDescription: {"DESCRIPCION", "DESCRIPTION", "MERCADERIA"},
	ColumnLoading:     {"POL", "ORIGEN"},
	ColumnDischarge:   {"POD", "DESTINO"},
	ColumnShipper:     {"EMBARCADOR", "SHIPPER"},
	ColumnConsignee:   {"CONSIGNATARIO", "CONSIGNEE"},
	ColumnTerminal:    {"TERMINAL"},
	ColumnSeal:        {"PRECINTO", "SEAL"},
	ColumnDate:        {"FECHA", "ETD", "DATE"},
}

type Document struct {
	Delimiter rune
	// Columns maps canonical column names to their position.
	Columns map[string]int
	Rows    []Row
	// Score and Hits are the keyword detection result over the whole file.
	Score           int
	Hits            []string
	KeywordsVersion int

	problems []error
}

// Row is one record. Line is the line number in the file.
type Row struct {
	Line        int
	Carrier     string
	Bill        string
	Container   string
	Type        string
	Packages    int
	Weight      decimal.Decimal
	Description string
	Loading     string
	Discharge   string
	Shipper     string
	Consignee   string
	Terminal    string
	Seal        string
	Date        time.Time
	Signals     Signals
}
