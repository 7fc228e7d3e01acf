package model

type ContainerStatus string

const (
	ContainerStatusFull  ContainerStatus = "full"
	ContainerStatusEmpty ContainerStatus = "empty"
	ContainerStatusLCL   ContainerStatus = "lcl"
)

// Container is a physical transport unit. Number is the global natural key.
type Container struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`   // ISO 6346, upper case without separators.
	ISOType     string          `json:"iso_type"` // e.g. 22G1, 45G1, 45R1
	SizeFeet    int             `json:"size_feet"`
	TareWeight  Decimal         `json:"tare_weight"`
	GrossWeight Decimal         `json:"gross_weight"`
	NetWeight   Decimal         `json:"net_weight"`
	VGM         Decimal         `json:"vgm"`
	Seals       []string        `json:"seals,omitempty"`
	Status      ContainerStatus `json:"status"`
	Reefer      bool            `json:"reefer"`
	TempMin     *Decimal        `json:"temp_min,omitempty"` // Celsius.
	TempMax     *Decimal        `json:"temp_max,omitempty"` // Celsius.
	CreatedAt   int64           `json:"created_at"`
	CreatedBy   string          `json:"created_by"`
}
