package importer_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/assembler"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/importer"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/notify"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/parsertest"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/registry"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/reference"
	mock_notify "github.com/Mardelherny-hub/app-cargas-sub007/test/mock/manifest/notify"
	mock_parser "github.com/Mardelherny-hub/app-cargas-sub007/test/mock/manifest/parser"
	mock_storage "github.com/Mardelherny-hub/app-cargas-sub007/test/mock/manifest/storage"
)

type PipelineTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	storage   *mock_storage.MockStorage
	parser    *mock_parser.MockParser
	publisher *mock_notify.MockPublisher
	importer  *importer.Importer

	path string
	hash string
	opts parser.Options
	doc  string
}

func TestPipeline(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func (s *PipelineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockStorage(s.ctrl)
	s.parser = mock_parser.NewMockParser(s.ctrl)
	s.publisher = mock_notify.NewMockPublisher(s.ctrl)

	s.parser.EXPECT().Info().Return(parser.FormatInfo{Name: "fake", Extensions: []string{".fak"}}).AnyTimes()
	s.importer = importer.New(s.storage, registry.New(s.parser), reference.Default(),
		importer.WithPublisher(s.publisher),
		importer.WithClock(func() time.Time { return parsertest.ImportTime }),
	)

	content := []byte("BL;FAKE\n")
	sum := sha256.Sum256(content)
	s.hash = hex.EncodeToString(sum[:])
	s.path = parsertest.WriteFile(s.T(), "manifest.fak", content)
	s.opts = parser.Options{VoyageReference: "V1"}
	s.doc = "document"
}

func (s *PipelineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectOpen expects the pending import record to be stored and committed.
func (s *PipelineTestSuite) expectOpen(record *model.ImportRecord) []*gomock.Call {
	tx := mock_storage.NewMockTx(s.ctrl)
	return []*gomock.Call{
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(tx, s.ctx, nil),
		s.storage.EXPECT().FindCompletedImportByHash(gomock.Any(), tx, "company-1", s.hash).Return(model.ImportRecord{}, model.ErrImportRecordNotFound),
		s.storage.EXPECT().AddImportRecord(gomock.Any(), tx, gomock.Any()).DoAndReturn(func(ctx context.Context, _ any, r model.ImportRecord) error {
			*record = r
			return nil
		}),
		tx.EXPECT().Commit(gomock.Any()).Return(nil),
		tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	}
}

// expectClose expects the import record to be finalized and committed.
func (s *PipelineTestSuite) expectClose(record *model.ImportRecord, finalizeErr error) []*gomock.Call {
	tx := mock_storage.NewMockTx(s.ctrl)
	calls := []*gomock.Call{
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(tx, s.ctx, nil),
		s.storage.EXPECT().FinalizeImportRecord(gomock.Any(), tx, gomock.Any()).DoAndReturn(func(ctx context.Context, _ any, r model.ImportRecord) error {
			*record = r
			return finalizeErr
		}),
	}
	if finalizeErr == nil {
		calls = append(calls, tx.EXPECT().Commit(gomock.Any()).Return(nil))
	}
	return append(calls, tx.EXPECT().Rollback(gomock.Any()).Return(nil))
}

func (s *PipelineTestSuite) TestSuccess() {
	var opened, closed model.ImportRecord
	var event notify.ImportCompleted
	tx := mock_storage.NewMockTx(s.ctrl)

	calls := s.expectOpen(&opened)
	calls = append(calls,
		s.parser.EXPECT().CanParse(s.path).Return(true),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(tx, s.ctx, nil),
		s.parser.EXPECT().Extract(gomock.Any(), s.path, s.opts).Return(s.doc, nil),
		s.parser.EXPECT().Transform(s.doc).Return(s.doc, nil),
		s.parser.EXPECT().Validate(s.doc).Return(nil),
		s.parser.EXPECT().Assemble(gomock.Any(), gomock.Any(), s.doc, s.opts).DoAndReturn(
			func(ctx context.Context, asm *assembler.Assembler, doc parser.Document, opts parser.Options) error {
				asm.Warn("bill %s: shipper missing, %s used", "BL1", "MSC")
				asm.Stat(model.StatCreatedBills, 1)
				return nil
			}),
		tx.EXPECT().Commit(gomock.Any()).Return(nil),
		tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)
	calls = append(calls, s.expectClose(&closed, nil)...)
	calls = append(calls, s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e notify.ImportCompleted) error {
		event = e
		return nil
	}))
	gomock.InOrder(calls...)

	result := s.importer.Parse(s.ctx, parsertest.Actor, s.path, s.opts)
	s.True(result.Success)
	s.Equal("fake", result.Format)
	s.Equal([]string{"bill BL1: shipper missing, MSC used"}, result.Warnings)
	s.Equal(1, result.Stats[model.StatCreatedBills])

	s.Equal(model.ImportStatusPending, opened.Status)
	s.Equal(s.hash, opened.FileHash)
	s.Equal(int64(8), opened.FileSize)
	s.Equal(map[string]any{"voyage_reference": "V1"}, opened.Options)
	s.Equal(opened.ID, result.ImportRecordID)

	s.Equal(opened.ID, closed.ID)
	s.Equal(model.ImportStatusCompleted, closed.Status)
	s.Equal("fake", closed.Format)
	s.Equal(1, closed.WarningCount)
	s.Empty(closed.Errors)

	s.Equal(opened.ID, event.ImportRecordID)
	s.Equal("fake", event.Format)
	s.Empty(event.BillNumbers)
}

func (s *PipelineTestSuite) TestValidationStopsBeforeAssembly() {
	var opened, closed model.ImportRecord
	tx := mock_storage.NewMockTx(s.ctrl)

	calls := s.expectOpen(&opened)
	calls = append(calls,
		s.parser.EXPECT().CanParse(s.path).Return(true),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(tx, s.ctx, nil),
		s.parser.EXPECT().Extract(gomock.Any(), s.path, s.opts).Return(s.doc, nil),
		s.parser.EXPECT().Transform(s.doc).Return(s.doc, nil),
		s.parser.EXPECT().Validate(s.doc).Return([]error{
			model.NewValidationError("line 2 (BL1): missing pol"),
			model.NewValidationError("line 3 (BL2): missing consignee"),
		}),
		tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)
	calls = append(calls, s.expectClose(&closed, nil)...)
	gomock.InOrder(calls...)

	result := s.importer.Parse(s.ctx, parsertest.Actor, s.path, s.opts)
	s.False(result.Success)
	s.Equal([]string{"line 2 (BL1): missing pol", "line 3 (BL2): missing consignee"}, result.Errors)
	s.Equal([]model.ErrorKind{model.ErrorKindStructuralValidation, model.ErrorKindStructuralValidation}, result.ErrorKinds)
	s.Equal(2, result.Stats[model.StatValidationFindings])

	s.Equal(model.ImportStatusFailed, closed.Status)
	s.Equal(result.Errors, closed.Errors)
	s.Empty(closed.Created)
}

func (s *PipelineTestSuite) TestPanicIsRecovered() {
	var opened, closed model.ImportRecord
	tx := mock_storage.NewMockTx(s.ctrl)

	calls := s.expectOpen(&opened)
	calls = append(calls,
		s.parser.EXPECT().CanParse(s.path).Return(true),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(tx, s.ctx, nil),
		s.parser.EXPECT().Extract(gomock.Any(), s.path, s.opts).DoAndReturn(func(ctx context.Context, path string, opts parser.Options) (parser.Document, error) {
			panic("index out of range")
		}),
		tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)
	calls = append(calls, s.expectClose(&closed, nil)...)
	gomock.InOrder(calls...)

	result := s.importer.Parse(s.ctx, parsertest.Actor, s.path, s.opts)
	s.False(result.Success)
	s.Equal([]string{"manifest.fak: unexpected failure during extract: index out of range"}, result.Errors)
	s.Equal([]model.ErrorKind{model.ErrorKindUnexpected}, result.ErrorKinds)
	s.Equal(model.ImportStatusFailed, closed.Status)
}

func (s *PipelineTestSuite) TestCommitFailure() {
	var opened, closed model.ImportRecord
	tx := mock_storage.NewMockTx(s.ctrl)

	calls := s.expectOpen(&opened)
	calls = append(calls,
		s.parser.EXPECT().CanParse(s.path).Return(true),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(tx, s.ctx, nil),
		s.parser.EXPECT().Extract(gomock.Any(), s.path, s.opts).Return(s.doc, nil),
		s.parser.EXPECT().Transform(s.doc).Return(s.doc, nil),
		s.parser.EXPECT().Validate(s.doc).Return(nil),
		s.parser.EXPECT().Assemble(gomock.Any(), gomock.Any(), s.doc, s.opts).Return(nil),
		tx.EXPECT().Commit(gomock.Any()).Return(errors.New("could not serialize access")),
		tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)
	calls = append(calls, s.expectClose(&closed, nil)...)
	gomock.InOrder(calls...)

	result := s.importer.Parse(s.ctx, parsertest.Actor, s.path, s.opts)
	s.False(result.Success)
	s.Equal([]string{"commit import: could not serialize access"}, result.Errors)
	s.Equal([]model.ErrorKind{model.ErrorKindPersistence}, result.ErrorKinds)
	s.Equal(model.ImportStatusFailed, closed.Status)
}

func (s *PipelineTestSuite) TestFinalizeAndPublishFailuresAreWarnings() {
	var opened, closed model.ImportRecord
	tx := mock_storage.NewMockTx(s.ctrl)

	calls := s.expectOpen(&opened)
	calls = append(calls,
		s.parser.EXPECT().CanParse(s.path).Return(true),
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(tx, s.ctx, nil),
		s.parser.EXPECT().Extract(gomock.Any(), s.path, s.opts).Return(s.doc, nil),
		s.parser.EXPECT().Transform(s.doc).Return(s.doc, nil),
		s.parser.EXPECT().Validate(s.doc).Return(nil),
		s.parser.EXPECT().Assemble(gomock.Any(), gomock.Any(), s.doc, s.opts).Return(nil),
		tx.EXPECT().Commit(gomock.Any()).Return(nil),
		tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)
	calls = append(calls, s.expectClose(&closed, model.ErrImportRecordFinalized)...)
	calls = append(calls, s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable")))
	gomock.InOrder(calls...)

	result := s.importer.Parse(s.ctx, parsertest.Actor, s.path, s.opts)
	s.True(result.Success)
	s.Equal([]string{
		"import record " + opened.ID + " not finalized: import record is already finalized",
		"import " + opened.ID + " committed but not announced: broker unavailable",
	}, result.Warnings)
}

func (s *PipelineTestSuite) TestRecordFailureStopsImport() {
	tx := mock_storage.NewMockTx(s.ctrl)
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(1)).Return(tx, s.ctx, nil),
		s.storage.EXPECT().FindCompletedImportByHash(gomock.Any(), tx, "company-1", s.hash).Return(model.ImportRecord{}, model.ErrImportRecordNotFound),
		s.storage.EXPECT().AddImportRecord(gomock.Any(), tx, gomock.Any()).Return(model.NewPersistenceError("add import record", errors.New("connection reset"))),
		tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result := s.importer.Parse(s.ctx, parsertest.Actor, s.path, s.opts)
	s.False(result.Success)
	s.Empty(result.ImportRecordID)
	s.Equal([]string{"add import record: connection reset"}, result.Errors)
	s.Equal([]model.ErrorKind{model.ErrorKindPersistence}, result.ErrorKinds)
}
