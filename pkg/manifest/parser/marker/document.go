package marker

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document is the normalized content of a marker file, whatever its dialect.
type Document struct {
	Header Header
	Bills  []Bill

	problems []error
}

// Header holds the values a consolidated manifest declares once for all its bills.
type Header struct {
	Vessel      string
	Voyage      string
	Origin      string
	Destination string
	Date        time.Time
}

type Bill struct {
	Number        string
	Vessel        string
	Voyage        string
	LoadingPort   string
	DischargePort string
	Shipper       Party
	Consignee     Party
	Notify        Party
	LoadingDate   time.Time
	ArrivalDate   time.Time
	Containers    []Container
	// Lines are cargo lines declared outside any container.
	Lines []Line
	// Closed reports whether the block ended with its FIN marker.
	Closed bool
}

type Party struct {
	Name  string
	TaxID string
}

type Container struct {
	Number string
	Type   string
	Seal   string
	Tare   decimal.Decimal
	Gross  decimal.Decimal
	Lines  []Line
}

type Line struct {
	Description string
	Packages    int
	Packaging   string
	Weight      decimal.Decimal
	Volume      decimal.Decimal
	Commodity   string
}
