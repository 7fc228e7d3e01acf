package postgres

import (
	"context"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage"
)

func (s *_Storage) AddImportRecord(ctx context.Context, tx storage.Tx, record model.ImportRecord) error {
	const query = `
INSERT INTO import_record (id, company_id, file_hash, "status", import_record, started_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := tx.Exec(ctx, query, record.ID, record.CompanyID, record.FileHash, record.Status, record, record.StartedAt)
	if err != nil {
		return model.NewPersistenceError("add import record", err)
	}
	return nil
}

func (s *_Storage) GetImportRecord(ctx context.Context, tx storage.Tx, id string) (model.ImportRecord, error) {
	const query = `SELECT import_record FROM import_record WHERE id = $1`
	return scanOne[model.ImportRecord](tx.QueryRow(ctx, query, id), "get import record", model.ErrImportRecordNotFound)
}

func (s *_Storage) FinalizeImportRecord(ctx context.Context, tx storage.Tx, record model.ImportRecord) error {
	// Only a pending record can move to a terminal status.
	const query = `
UPDATE import_record SET
	"status" = $2,
	import_record = $3,
	finished_at = $4
WHERE id = $1 AND "status" = 'pending'`
	result, err := tx.Exec(ctx, query, record.ID, record.Status, record, record.FinishedAt)
	if err != nil {
		return model.NewPersistenceError("finalize import record", err)
	}
	if n, _ := result.RowsAffected(); n > 0 {
		return nil
	}

	if _, err := s.GetImportRecord(ctx, tx, record.ID); err != nil {
		return err
	}
	return model.ErrImportRecordFinalized
}

func (s *_Storage) FindCompletedImportByHash(ctx context.Context, tx storage.Tx, companyID, fileHash string) (model.ImportRecord, error) {
	const query = `
SELECT import_record FROM import_record
WHERE company_id = $1 AND file_hash = $2 AND "status" = 'completed'
ORDER BY finished_at DESC, rec_id DESC
LIMIT 1`
	return scanOne[model.ImportRecord](tx.QueryRow(ctx, query, companyID, fileHash), "find import record", model.ErrImportRecordNotFound)
}
