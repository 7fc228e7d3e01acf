package model

// TaxIDMaxLength is the length limit of the party natural key.
const TaxIDMaxLength = 20

// Party is a shipper, consignee or notify party ("client").
type Party struct {
	ID             string `json:"id"`
	CompanyID      string `json:"company_id"`
	LegalName      string `json:"legal_name"`
	TaxID          string `json:"tax_id"`           // Natural key together with CompanyID.
	TaxIDSynthetic bool   `json:"tax_id_synthetic"` // True when the source had no tax id.
	Address        string `json:"address"`
	City           string `json:"city"`
	CountryCode    string `json:"country_code"`
	CreatedAt      int64  `json:"created_at"`
	CreatedBy      string `json:"created_by"`
}
