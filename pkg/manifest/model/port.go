package model

// Port is a code-addressed location. Code is the natural key (UN/LOCODE, e.g. PYASU).
type Port struct {
	ID          string `json:"id"`
	Code        string `json:"code"`         // UN/LOCODE
	Name        string `json:"name"`         // Display name of the port.
	CountryCode string `json:"country_code"` // ISO 3166-1 alpha-2
	City        string `json:"city"`
	CreatedAt   int64  `json:"created_at"`
	CreatedBy   string `json:"created_by"`
}
