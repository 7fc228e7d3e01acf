package tabular

import (
	"time"

	"github.com/shopspring/decimal"
)

type Document struct {
	Title string
	Meta  map[string]string
	// Departure comes from the metadata cells and may be zero.
	Departure time.Time
	Lines     []Line
	// Skipped lists the rows without a bill number.
	Skipped []int

	problems []error
}

type Party struct {
	Name    string
	TaxID   string
	Address string
	Country string
}

// Line is one data row. Each row becomes one cargo item.
type Line struct {
	Row int

	Bill          string
	MasterBill    string
	BillDate      time.Time
	LoadingPort   string
	DischargePort string
	Shipper       Party
	Consignee     Party
	Notify        Party

	Container       string
	ContainerType   string
	ContainerStatus string
	Seals           []string
	Tare            decimal.Decimal
	ContainerGross  decimal.Decimal
	VGM             decimal.Decimal

	Packages    int
	PackageType string
	Description string
	Marks       string
	Gross       decimal.Decimal
	Net         decimal.Decimal
	Volume      decimal.Decimal
	Commodity   string
	Dangerous   bool
	Reefer      bool
	TempMin     *decimal.Decimal
	TempMax     *decimal.Decimal

	FreightTerms  string
	Permit        string
	LoadingDate   time.Time
	DischargeDate time.Time
	Carrier       string
	Vessel        string
	Barge         string
	BargeID       string
	Voyage        string
	Extra         map[string]string
}
