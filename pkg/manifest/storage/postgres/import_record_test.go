package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage/postgres"
)

type ImportRecordStorageTestSuite struct {
	BaseTestSuite
	storage storage.ImportRecordStorage
}

func TestImportRecordStorage(t *testing.T) {
	suite.Run(t, new(ImportRecordStorageTestSuite))
}

func (s *ImportRecordStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)
}

func (s *ImportRecordStorageTestSuite) TearDownTest() {
	s.BaseTestSuite.TearDownTest()
}

func (s *ImportRecordStorageTestSuite) TestFinalizeImportRecord() {
	tx, _, err := s.storage.CreateTx(s.ctx, storage.ForImport()...)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(s.ctx) }()

	record, err := s.storage.GetImportRecord(s.ctx, tx, "import_2")
	s.Require().NoError(err)
	s.Equal(model.ImportStatusPending, record.Status)

	record.Status = model.ImportStatusFailed
	record.Errors = []string{"no parser can handle the file"}
	record.FinishedAt = 1704067301
	s.Require().NoError(s.storage.FinalizeImportRecord(s.ctx, tx, record))

	stored, err := s.storage.GetImportRecord(s.ctx, tx, "import_2")
	s.Require().NoError(err)
	s.Equal(record, stored)

	record.Status = model.ImportStatusCompleted
	s.ErrorIs(s.storage.FinalizeImportRecord(s.ctx, tx, record), model.ErrImportRecordFinalized)

	record.ID = "import_unknown"
	s.ErrorIs(s.storage.FinalizeImportRecord(s.ctx, tx, record), model.ErrImportRecordNotFound)
}

func (s *ImportRecordStorageTestSuite) TestAddAndFindByHash() {
	tx, _, err := s.storage.CreateTx(s.ctx, storage.ForImport()...)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(s.ctx) }()

	found, err := s.storage.FindCompletedImportByHash(s.ctx, tx, "company_1", "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08")
	s.Require().NoError(err)
	s.Equal("import_1", found.ID)

	_, err = s.storage.FindCompletedImportByHash(s.ctx, tx, "company_1", "60303ae22b998861bce3b28f33eec1be758a213c86c93c076dbe9f558c11c752")
	s.ErrorIs(err, model.ErrImportRecordNotFound)

	record := model.ImportRecord{
		ID:        "import_3",
		CompanyID: "company_1",
		UserID:    "user_1",
		FileName:  "convoy.xlsx",
		FileHash:  "abc",
		Options:   map[string]any{"vessel_id": "vessel_1"},
		Status:    model.ImportStatusPending,
		Created:   map[string][]string{},
		Errors:    []string{},
		StartedAt: 1704067400,
	}
	s.Require().NoError(s.storage.AddImportRecord(s.ctx, tx, record))
	stored, err := s.storage.GetImportRecord(s.ctx, tx, "import_3")
	s.Require().NoError(err)
	s.Equal(record, stored)
}
