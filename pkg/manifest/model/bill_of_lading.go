package model

type BillOfLadingStatus string

const (
	BillOfLadingStatusDraft     BillOfLadingStatus = "draft"
	BillOfLadingStatusConfirmed BillOfLadingStatus = "confirmed"
)

// BillOfLading is the cargo document of one shipper->consignee movement within a Shipment.
// Number is globally unique in the store.
type BillOfLading struct {
	ID               string             `json:"id"`
	CompanyID        string             `json:"company_id"`
	ShipmentID       string             `json:"shipment_id"`
	Number           string             `json:"number"`
	MasterBillNumber string             `json:"master_bill_number,omitempty"`
	ShipperID        string             `json:"shipper_id"`
	ConsigneeID      string             `json:"consignee_id"`
	NotifyPartyID    string             `json:"notify_party_id,omitempty"`
	LoadingPortID    string             `json:"loading_port_id"`
	DischargePortID  string             `json:"discharge_port_id"`
	IssueDate        Date               `json:"issue_date"`
	LoadingDate      Date               `json:"loading_date"`
	DischargeDate    Date               `json:"discharge_date"`
	GrossWeight      Decimal            `json:"gross_weight"` // Kilograms.
	NetWeight        Decimal            `json:"net_weight"`   // Kilograms.
	Volume           Decimal            `json:"volume"`       // Cubic meters.
	PackageCount     int                `json:"package_count"`
	CargoDescription string             `json:"cargo_description"`
	PermitNumber     string             `json:"permit_number,omitempty"`
	FreightTerms     string             `json:"freight_terms,omitempty"`
	Extra            map[string]string  `json:"extra,omitempty"` // Format specific regulatory fields.
	Status           BillOfLadingStatus `json:"status"`
	CreatedAt        int64              `json:"created_at"`
	CreatedBy        string             `json:"created_by"`
}
