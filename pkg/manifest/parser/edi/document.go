package edi

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document is a CUSCAR interchange. Items live in one arena; groups refer to them by index.
type Document struct {
	Header    Header
	Groups    []Group
	Items     []Item
	Equipment []Equipment

	// Findings are non-fatal problems reported as warnings.
	Findings []string

	problems       []error
	equipmentIndex map[string]int
	grouped        map[int]bool
}

type Header struct {
	ManifestNumber string
	BillNumber     string
	VoyageNumber   string
	Carrier        string
	VesselName     string
	VesselIMO      string
	LoadingPort    string
	DischargePort  string
	DepartureAt    time.Time
	ArrivalAt      time.Time
	Shipper        *Party
	Consignee      *Party
	Notify         *Party
}

type Party struct {
	TaxID    string
	Name     string
	Street   string
	City     string
	PostCode string
	Country  string
}

// Group is a consignment (CNI) and the items declared under it.
type Group struct {
	Number string
	Items  []int
	Gross  decimal.Decimal
	Volume decimal.Decimal
}

// Item is a goods item (GID) with the containers it is split over.
type Item struct {
	Number      string
	Packages    int
	PackageType string
	Description []string
	Gross       decimal.Decimal
	Net         decimal.Decimal
	Volume      decimal.Decimal
	Commodity   string
	Temperature *decimal.Decimal
	Dangerous   bool
	Placements  []Placement
}

type Placement struct {
	Container string
	Packages  int
}

// Equipment is a container described by EQD and the segments following it.
type Equipment struct {
	Number      string
	Type        string
	Empty       bool
	Seals       []string
	Gross       decimal.Decimal
	Tare        decimal.Decimal
	VGM         decimal.Decimal
	Temperature *decimal.Decimal
}

func (d *Document) equipment(number string) *Equipment {
	if idx, ok := d.equipmentIndex[number]; ok {
		return &d.Equipment[idx]
	}
	return nil
}
