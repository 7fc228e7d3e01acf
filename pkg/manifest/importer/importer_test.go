package importer_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/importer"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/notify"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/parsertest"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/registry"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/reference"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/session"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage/memory"
	mock_notify "github.com/Mardelherny-hub/app-cargas-sub007/test/mock/manifest/notify"
)

type ImporterTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	storage   storage.Storage
	publisher *mock_notify.MockPublisher
	importer  *importer.Importer
}

func TestImporter(t *testing.T) {
	suite.Run(t, new(ImporterTestSuite))
}

func (s *ImporterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = memory.NewStorage(memory.WithVessels(parsertest.Vessel))
	s.publisher = mock_notify.NewMockPublisher(s.ctrl)
	catalog := reference.Default()
	s.importer = importer.New(s.storage, registry.Default(catalog, registry.Config{}), catalog,
		importer.WithPublisher(s.publisher),
		importer.WithClock(func() time.Time { return parsertest.ImportTime }),
	)
}

func (s *ImporterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func fixture(format, name string) string {
	return filepath.Join("..", "parser", format, "testdata", name)
}

func (s *ImporterTestSuite) record(id string) model.ImportRecord {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()
	record, err := s.storage.GetImportRecord(ctx, tx, id)
	s.Require().NoError(err)
	return record
}

func (s *ImporterTestSuite) TestImportCuscar() {
	var event notify.ImportCompleted
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e notify.ImportCompleted) error {
		event = e
		return nil
	})

	result := s.importer.Parse(s.ctx, parsertest.Actor, fixture("edi", "scenario_a.edi"), parser.Options{})
	s.Require().True(result.Success, result.Errors)
	s.Equal("cuscar", result.Format)
	s.Empty(result.Errors)
	s.Equal([]string{"group 1 (1) item 2: no container, item ignored"}, result.Warnings)
	s.Equal(2, result.Stats[model.StatProcessedContainers])
	s.Require().NotNil(result.Voyage)
	s.Require().Len(result.BillsOfLading, 1)
	s.Len(result.Containers, 2)

	record := s.record(result.ImportRecordID)
	s.Equal(model.ImportStatusCompleted, record.Status)
	s.Equal("cuscar", record.Format)
	s.Equal("scenario_a.edi", record.FileName)
	s.Len(record.FileHash, 64)
	s.Equal(1, record.WarningCount)
	s.Equal(parsertest.ImportTime.Unix(), record.FinishedAt)
	s.Equal([]string{result.BillsOfLading[0].ID}, record.Created["bill_of_lading"])
	s.Len(record.Created["container"], 2)

	s.Equal(result.ImportRecordID, event.ImportRecordID)
	s.Equal("company-1", event.CompanyID)
	s.Equal(record.FileHash, event.FileHash)
	s.Equal(result.Voyage.ID, event.VoyageID)
	s.Equal([]string{"MSCAB123"}, event.BillNumbers)
	s.ElementsMatch([]string{"MSCU1234566", "TGHU7654320"}, event.ContainerNumbers)
}

func (s *ImporterTestSuite) TestReimportIsAtomic() {
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	first := s.importer.Parse(s.ctx, parsertest.Actor, fixture("edi", "scenario_a.edi"), parser.Options{})
	s.Require().True(first.Success)

	second := s.importer.Parse(s.ctx, parsertest.Actor, fixture("edi", "scenario_a.edi"), parser.Options{})
	s.False(second.Success)
	s.Equal([]model.ErrorKind{model.ErrorKindDuplicateNaturalKey}, second.ErrorKinds)
	s.Equal("same content already imported on 2024-05-10 (import "+first.ImportRecordID+")", second.Warnings[0])
	s.Nil(second.Voyage)
	s.Empty(second.BillsOfLading)
	s.Empty(second.Containers)
	s.Equal(1, second.Stats[model.StatProcessedBills])

	record := s.record(second.ImportRecordID)
	s.Equal(model.ImportStatusFailed, record.Status)
	s.Empty(record.Created)
	s.Equal(second.Errors, record.Errors)
}

func (s *ImporterTestSuite) TestSkippedDuplicateIsWarning() {
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first := s.importer.Parse(s.ctx, parsertest.Actor, fixture("xmlenvelope", "bill_two.xml"), parser.Options{})
	s.Require().True(first.Success, first.Errors)

	result := s.importer.Parse(s.ctx, parsertest.Actor, fixture("xmlenvelope", "three_bills.xml"), parser.Options{})
	s.Require().True(result.Success, result.Errors)
	s.Equal("xml_envelope", result.Format)
	s.Equal([]string{"bill ENV002 already exists, skipped"}, result.Warnings)
	s.Require().Len(result.BillsOfLading, 2)
	s.Equal("ENV001", result.BillsOfLading[0].Number)
	s.Equal("ENV003", result.BillsOfLading[1].Number)
}

func (s *ImporterTestSuite) TestValidationErrorsAreListed() {
	result := s.importer.Parse(s.ctx, parsertest.Actor, fixture("marker", "incomplete.mbl"), parser.Options{})
	s.False(result.Success)
	s.Greater(len(result.Errors), 1)
	s.Len(result.ErrorKinds, len(result.Errors))
	for _, kind := range result.ErrorKinds {
		s.Equal(model.ErrorKindStructuralValidation, kind)
	}
	s.Equal(len(result.Errors), result.Stats[model.StatValidationFindings])
}

func (s *ImporterTestSuite) TestContainerWithoutCargoLine() {
	result := s.importer.Parse(s.ctx, parsertest.Actor, fixture("marker", "scenario_b.mbl"), parser.Options{})
	s.False(result.Success)
	s.Equal("marker_bl", result.Format)
	s.Equal([]string{"bill[0] (AB123) container[0] (CSQU3054383): missing cargo line"}, result.Errors)
}

func (s *ImporterTestSuite) TestEmptyFile() {
	path := parsertest.WriteFile(s.T(), "empty.edi", nil)

	result := s.importer.Parse(s.ctx, parsertest.Actor, path, parser.Options{})
	s.False(result.Success)
	s.Equal([]model.ErrorKind{model.ErrorKindDetection}, result.ErrorKinds)
	s.Equal([]string{"empty.edi: file is empty"}, result.Errors)
	s.Equal(model.ImportStatusFailed, s.record(result.ImportRecordID).Status)
}

func (s *ImporterTestSuite) TestNoParser() {
	path := parsertest.WriteFile(s.T(), "notes.bin", []byte("nothing to see here\n"))

	result := s.importer.Parse(s.ctx, parsertest.Actor, path, parser.Options{})
	s.False(result.Success)
	s.Equal([]string{"notes.bin (extension .bin): no parser can handle the file"}, result.Errors)
	s.Equal([]model.ErrorKind{model.ErrorKindDetection}, result.ErrorKinds)
}

func (s *ImporterTestSuite) TestMissingFile() {
	result := s.importer.Parse(s.ctx, parsertest.Actor, filepath.Join(s.T().TempDir(), "gone.edi"), parser.Options{})
	s.False(result.Success)
	s.Equal([]model.ErrorKind{model.ErrorKindDetection}, result.ErrorKinds)
	s.NotEmpty(result.ImportRecordID)
	s.Equal(model.ImportStatusFailed, s.record(result.ImportRecordID).Status)
}

func (s *ImporterTestSuite) TestForcedFormat() {
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	result := s.importer.Parse(s.ctx, parsertest.Actor, fixture("edi", "scenario_a.edi"), parser.Options{Format: "cuscar"})
	s.True(result.Success, result.Errors)

	result = s.importer.Parse(s.ctx, parsertest.Actor, fixture("edi", "scenario_a.edi"), parser.Options{Format: "unknown"})
	s.False(result.Success)
	s.Equal([]model.ErrorKind{model.ErrorKindDetection}, result.ErrorKinds)
}

func (s *ImporterTestSuite) TestInvalidInvocation() {
	result := s.importer.Parse(s.ctx, parsertest.Actor, fixture("edi", "scenario_a.edi"), parser.Options{Format: "Not A Format"})
	s.False(result.Success)
	s.Equal([]model.ErrorKind{model.ErrorKindInvalidParameter}, result.ErrorKinds)
	s.Empty(result.ImportRecordID)

	result = s.importer.Parse(s.ctx, session.Actor{CompanyID: "company-1"}, fixture("edi", "scenario_a.edi"), parser.Options{})
	s.False(result.Success)
	s.Equal([]model.ErrorKind{model.ErrorKindInvalidParameter}, result.ErrorKinds)
}

func (s *ImporterTestSuite) TestDetect() {
	info, err := s.importer.Detect(fixture("marker", "consolidated.man"))
	s.Require().NoError(err)
	s.Equal("marker_manifest", info.Name)

	_, err = s.importer.Detect(parsertest.WriteFile(s.T(), "empty.csv", nil))
	s.ErrorIs(err, model.ErrEmptyFile)
}
