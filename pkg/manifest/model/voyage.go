package model

type CargoDirection string

const (
	CargoDirectionImport   CargoDirection = "import"
	CargoDirectionExport   CargoDirection = "export"
	CargoDirectionTransit  CargoDirection = "transit"
	CargoDirectionCabotage CargoDirection = "cabotage"
)

type VoyageStatus string

const (
	VoyageStatusPlanned    VoyageStatus = "planned"
	VoyageStatusInProgress VoyageStatus = "in_progress"
	VoyageStatusArrived    VoyageStatus = "arrived"
	VoyageStatusClosed     VoyageStatus = "closed"
)

// Voyage is a single transport movement between two ports.
// (CompanyID, Reference) is unique.
type Voyage struct {
	ID                 string         `json:"id"`
	CompanyID          string         `json:"company_id"`
	Reference          string         `json:"reference"`
	VesselID           string         `json:"vessel_id"`
	OriginPortID       string         `json:"origin_port_id"`
	DestinationPortID  string         `json:"destination_port_id"`
	OriginCountry      string         `json:"origin_country"`
	DestinationCountry string         `json:"destination_country"`
	DepartureAt        Date           `json:"departure_at"`
	ArrivalAt          Date           `json:"arrival_at"`
	Direction          CargoDirection `json:"direction"`
	Status             VoyageStatus   `json:"status"`
	CreatedAt          int64          `json:"created_at"`
	CreatedBy          string         `json:"created_by"`
}

type ShipmentStatus string

const (
	ShipmentStatusPending ShipmentStatus = "pending"
	ShipmentStatusLoaded  ShipmentStatus = "loaded"
)

// Shipment is one vessel's participation in a voyage.
type Shipment struct {
	ID           string         `json:"id"`
	VoyageID     string         `json:"voyage_id"`
	VesselID     string         `json:"vessel_id"`
	Sequence     int            `json:"sequence"` // 1-based position within the voyage.
	CarrierCode  string         `json:"carrier_code"`
	CapacityTons Decimal        `json:"capacity_tons"`
	CapacityTEU  int            `json:"capacity_teu"`
	Status       ShipmentStatus `json:"status"`
	CreatedAt    int64          `json:"created_at"`
	CreatedBy    string         `json:"created_by"`
}
