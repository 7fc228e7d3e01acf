package model

// Item is one cargo line of a bill of lading. LineNumber is unique per bill and starts at 1.
type Item struct {
	ID              string   `json:"id"`
	BillOfLadingID  string   `json:"bill_of_lading_id"`
	ContainerID     string   `json:"container_id,omitempty"`
	LineNumber      int      `json:"line_number"`
	Description     string   `json:"description"`
	PackageCount    int      `json:"package_count"`
	PackageTypeCode string   `json:"package_type_code"`
	GrossWeight     Decimal  `json:"gross_weight"`
	NetWeight       Decimal  `json:"net_weight"`
	Volume          Decimal  `json:"volume"`
	CommodityCode   string   `json:"commodity_code,omitempty"` // NCM/HS
	CargoTypeCode   string   `json:"cargo_type_code"`
	TempMin         *Decimal `json:"temp_min,omitempty"`
	TempMax         *Decimal `json:"temp_max,omitempty"`
	Dangerous       bool     `json:"dangerous"`
	Marks           string   `json:"marks,omitempty"`
	CreatedAt       int64    `json:"created_at"`
	CreatedBy       string   `json:"created_by"`
}
