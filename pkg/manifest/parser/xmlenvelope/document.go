package xmlenvelope

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document is a manifest envelope holding several bills.
type Document struct {
	Bills []Bill
}

type Bill struct {
	Number        string
	MasterNumber  string
	Vessel        string
	Voyage        string
	LoadingPort   string
	DischargePort string
	Permit        string
	IssueDate     time.Time
	LoadingDate   time.Time
	ArrivalDate   time.Time
	Shipper       Party
	Consignee     Party
	Notify        Party
	Lines         []Line

	problems []string
}

type Party struct {
	Name    string
	Address string
	TaxID   string
}

type Line struct {
	Container   string
	Type        string
	Seal        string
	Packages    int
	Packaging   string
	Gross       decimal.Decimal
	Net         decimal.Decimal
	Volume      decimal.Decimal
	Description string
	Commodity   string
}
