package model

type ImportStatus string

const (
	ImportStatusPending   ImportStatus = "pending"
	ImportStatusCompleted ImportStatus = "completed"
	ImportStatusFailed    ImportStatus = "failed"
)

// ImportRecord is the audit entry of one file import attempt.
// It is created as pending and moves to a terminal status exactly once.
type ImportRecord struct {
	ID             string              `json:"id"`
	CompanyID      string              `json:"company_id"`
	UserID         string              `json:"user_id"`
	FileName       string              `json:"file_name"`
	FileHash       string              `json:"file_hash"` // SHA-256 of the file content, hex encoded.
	FileSize       int64               `json:"file_size"`
	Format         string              `json:"format"`
	Options        map[string]any      `json:"options"`
	Status         ImportStatus        `json:"status"`
	Created        map[string][]string `json:"created"` // Entity kind -> ids created by the import.
	Errors         []string            `json:"errors"`
	WarningCount   int                 `json:"warning_count"`
	DurationMillis int64               `json:"duration_millis"`
	StartedAt      int64               `json:"started_at"`
	FinishedAt     int64               `json:"finished_at"`
}

func (r ImportRecord) IsTerminal() bool {
	return r.Status == ImportStatusCompleted || r.Status == ImportStatusFailed
}
