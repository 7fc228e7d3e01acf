package notify

import (
	"context"
)

// ImportCompleted is published once an import has been committed.
type ImportCompleted struct {
	ImportRecordID   string   `json:"import_record_id"`
	CompanyID        string   `json:"company_id"`
	Format           string   `json:"format"`
	FileHash         string   `json:"file_hash"`
	VoyageID         string   `json:"voyage_id,omitempty"`
	BillNumbers      []string `json:"bill_numbers"`
	ContainerNumbers []string `json:"container_numbers"`
	CompletedAt      int64    `json:"completed_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event ImportCompleted) error
	Close() error
}
