package memory

import (
	"context"
	"fmt"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage"
)

func (s *_Storage) AddImportRecord(ctx context.Context, tx storage.Tx, record model.ImportRecord) error {
	state, err := s.writeState(tx)
	if err != nil {
		return err
	}
	if _, ok := state.imports[record.ID]; ok {
		return model.NewPersistenceError("add import record", fmt.Errorf("duplicate id %q", record.ID))
	}
	state.imports[record.ID] = record
	return nil
}

func (s *_Storage) GetImportRecord(ctx context.Context, tx storage.Tx, id string) (model.ImportRecord, error) {
	state, err := s.readState(tx)
	if err != nil {
		return model.ImportRecord{}, err
	}
	record, ok := state.imports[id]
	if !ok {
		return model.ImportRecord{}, model.ErrImportRecordNotFound
	}
	return record, nil
}

func (s *_Storage) FinalizeImportRecord(ctx context.Context, tx storage.Tx, record model.ImportRecord) error {
	state, err := s.writeState(tx)
	if err != nil {
		return err
	}
	stored, ok := state.imports[record.ID]
	if !ok {
		return model.ErrImportRecordNotFound
	}
	if stored.IsTerminal() {
		return model.ErrImportRecordFinalized
	}
	state.imports[record.ID] = record
	return nil
}

func (s *_Storage) FindCompletedImportByHash(ctx context.Context, tx storage.Tx, companyID, fileHash string) (model.ImportRecord, error) {
	state, err := s.readState(tx)
	if err != nil {
		return model.ImportRecord{}, err
	}
	var found *model.ImportRecord
	for _, r := range state.imports {
		if r.CompanyID != companyID || r.FileHash != fileHash || r.Status != model.ImportStatusCompleted {
			continue
		}
		if found == nil || r.FinishedAt > found.FinishedAt {
			found = &r
		}
	}
	if found == nil {
		return model.ImportRecord{}, model.ErrImportRecordNotFound
	}
	return *found, nil
}
