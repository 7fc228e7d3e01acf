package model

type VesselType string

const (
	VesselTypeBarge     VesselType = "barge"
	VesselTypePusher    VesselType = "pusher"
	VesselTypeContainer VesselType = "container_ship"
	VesselTypeUnknown   VesselType = "unknown"
)

// Vessel belongs to a company. (CompanyID, upper(Name)) is the natural key.
type Vessel struct {
	ID           string     `json:"id"`
	CompanyID    string     `json:"company_id"`
	Name         string     `json:"name"`
	Registration string     `json:"registration"` // IMO number or flag registry id.
	Type         VesselType `json:"type"`
	CapacityTons Decimal    `json:"capacity_tons"`
	CapacityTEU  int        `json:"capacity_teu"`
	CreatedAt    int64      `json:"created_at"`
	CreatedBy    string     `json:"created_by"`
}
