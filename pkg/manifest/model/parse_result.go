package model

// Statistics keys reported in ParseResult.Stats.
const (
	StatProcessedBills      = "processed_bills"
	StatProcessedContainers = "processed_containers"
	StatProcessedItems      = "processed_items"
	StatCreatedBills        = "created_bills"
	StatSkippedBills        = "skipped_bills"
	StatCreatedContainers   = "created_containers"
	StatReusedContainers    = "reused_containers"
	StatCreatedItems        = "created_items"
	StatCreatedParties      = "created_parties"
	StatReusedParties       = "reused_parties"
	StatCreatedPorts        = "created_ports"
	StatCreatedVessels      = "created_vessels"
	StatCreatedShipments    = "created_shipments"
	StatSkippedRows         = "skipped_rows"
	StatDatePlaceholders    = "date_placeholders"
	StatWeightPlaceholders  = "weight_placeholders"
	StatValidationFindings  = "validation_findings"
)

// ParseResult is returned to the caller of an import. It is never persisted.
type ParseResult struct {
	Success        bool           `json:"success"`
	Format         string         `json:"format"`
	ImportRecordID string         `json:"import_record_id"`
	Voyage         *Voyage        `json:"voyage,omitempty"`
	Shipments      []Shipment     `json:"shipments"`
	BillsOfLading  []BillOfLading `json:"bills_of_lading"`
	Containers     []Container    `json:"containers"`
	Warnings       []string       `json:"warnings"`
	Errors         []string       `json:"errors"`
	ErrorKinds     []ErrorKind    `json:"error_kinds,omitempty"`
	Stats          map[string]int `json:"stats"`
}

func NewParseResult() ParseResult {
	return ParseResult{
		Shipments:     []Shipment{},
		BillsOfLading: []BillOfLading{},
		Containers:    []Container{},
		Warnings:      []string{},
		Errors:        []string{},
		Stats:         map[string]int{},
	}
}

func (r *ParseResult) Fail(err error) {
	r.Success = false
	r.Errors = append(r.Errors, err.Error())
	r.ErrorKinds = append(r.ErrorKinds, Classify(err))
}
