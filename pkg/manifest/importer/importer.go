package importer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime/debug"
	"time"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/assembler"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/notify"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/registry"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/reference"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/session"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/util"
)

// Stages an import goes through. They are reported in logs and errors of unexpected faults.
const (
	StageDetect    = "detect"
	StageExtract   = "extract"
	StageTransform = "transform"
	StageValidate  = "validate"
	StageAssemble  = "assemble"
	StageCommit    = "commit"
)

// Importer runs one file through detection, extraction, validation and assembly inside a single
// transaction of the entity store.
type Importer struct {
	storage   storage.Storage
	registry  *registry.Registry
	catalog   *reference.Catalog
	publisher notify.Publisher
	now       func() time.Time

	importCount  metric.Int64Counter
	failureCount metric.Int64Counter
}

type OptionFunc func(*Importer)

// WithPublisher announces every committed import.
func WithPublisher(publisher notify.Publisher) OptionFunc {
	return func(i *Importer) {
		i.publisher = publisher
	}
}

func WithClock(now func() time.Time) OptionFunc {
	return func(i *Importer) {
		i.now = now
	}
}

func New(store storage.Storage, reg *registry.Registry, catalog *reference.Catalog, options ...OptionFunc) *Importer {
	i := &Importer{
		storage:      store,
		registry:     reg,
		catalog:      catalog,
		now:          time.Now,
		importCount:  otlp_util.NewInt64Counter("manifest.import.count", metric.WithDescription("The total number of manifest files imported")),
		failureCount: otlp_util.NewInt64Counter("manifest.import.failure.count", metric.WithDescription("The total number of manifest imports that failed")),
	}
	for _, opt := range options {
		opt(i)
	}
	return i
}

// _Job carries the state of one Parse call.
type _Job struct {
	actor    session.Actor
	path     string
	fileName string
	opts     parser.Options
	digest   _Digest
	format   string
	stage    string
	asm      *assembler.Assembler
	started  time.Time
}

// Parse imports the file at path on behalf of actor. It never panics and never returns an error:
// every failure is reported in the result with Success set to false, and every write of a failed
// import is rolled back.
func (i *Importer) Parse(ctx context.Context, actor session.Actor, path string, opts parser.Options) model.ParseResult {
	job := &_Job{
		actor:    actor,
		path:     path,
		fileName: filepath.Base(path),
		opts:     opts,
		started:  i.now(),
	}
	ctx, span := otlp_util.Start(ctx, "manifest/importer.Parse",
		trace.WithAttributes(attribute.String("file", job.fileName), attribute.String("company_id", actor.CompanyID)),
	)
	defer span.End()

	result := model.NewParseResult()
	if err := actor.Validate(); err != nil {
		i.fail(ctx, job, &result, err)
		return result
	}
	if err := opts.Validate(); err != nil {
		i.fail(ctx, job, &result, err)
		return result
	}

	digest, digestErr := digestFile(path)
	job.digest = digest

	record, err := i.openRecord(ctx, job, &result)
	if err != nil {
		i.fail(ctx, job, &result, err)
		return result
	}
	result.ImportRecordID = record.ID

	if digestErr != nil {
		err = digestErr
	} else {
		err = i.execute(ctx, job)
	}
	result.Format = job.format
	span.SetAttributes(attribute.String("format", job.format))

	if err != nil {
		if job.asm != nil {
			job.asm.FillDiagnostics(&result)
		}
		i.fail(ctx, job, &result, err)
		i.closeRecord(ctx, job, record, &result, nil)
		return result
	}

	job.asm.Fill(&result)
	result.Success = true
	i.closeRecord(ctx, job, record, &result, job.asm.Created())
	i.importCount.Add(ctx, 1, metric.WithAttributes(attribute.String("format", job.format), attribute.String("status", string(model.ImportStatusCompleted))))
	logrus.Infof("%s imported as %s: %d bills, %d containers, %d warnings", job.fileName, job.format, len(result.BillsOfLading), len(result.Containers), len(result.Warnings))

	i.publish(ctx, job, &result)
	return result
}

// Detect returns the format the file would be imported as.
func (i *Importer) Detect(path string) (parser.FormatInfo, error) {
	p, err := i.registry.Select(path)
	if err != nil {
		return parser.FormatInfo{}, err
	}
	return p.Info(), nil
}

func (i *Importer) execute(ctx context.Context, job *_Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("%s: panic during %s: %v\n%s", job.fileName, job.stage, r, debug.Stack())
			err = fmt.Errorf("%s: unexpected failure during %s: %v%w", job.fileName, job.stage, r, model.ErrUnexpectedFault)
		}
	}()

	job.stage = StageDetect
	if job.digest.Size == 0 {
		return fmt.Errorf("%s: %w", job.fileName, model.ErrEmptyFile)
	}
	p, err := i.selectParser(job)
	if err != nil {
		return err
	}
	info := p.Info()
	job.format = info.Name
	logrus.Infof("%s detected as %s", job.fileName, info.Name)
	logrus.Debugf("%s options %s", job.fileName, util.LogJSON(job.opts))

	tx, ctx, err := i.storage.CreateTx(ctx, storage.ForImport()...)
	if err != nil {
		return model.NewPersistenceError("begin import", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	job.asm = assembler.New(i.storage, tx, i.catalog, job.actor, assembler.WithClock(i.now))

	job.stage = StageExtract
	doc, err := p.Extract(ctx, job.path, job.opts)
	if err != nil {
		return err
	}

	job.stage = StageTransform
	doc, err = p.Transform(doc)
	if err != nil {
		return err
	}

	job.stage = StageValidate
	if errs := p.Validate(doc); len(errs) > 0 {
		job.asm.Stat(model.StatValidationFindings, len(errs))
		return _Findings(errs)
	}

	job.stage = StageAssemble
	if err := p.Assemble(ctx, job.asm, doc, job.opts); err != nil {
		return err
	}

	job.stage = StageCommit
	if err := tx.Commit(ctx); err != nil {
		return model.NewPersistenceError("commit import", err)
	}
	return nil
}

func (i *Importer) selectParser(job *_Job) (parser.Parser, error) {
	if job.opts.Format != "" {
		return i.registry.Lookup(job.opts.Format)
	}
	return i.registry.Select(job.path)
}

// _Findings are the validation errors of a document. Each one is reported on its own.
type _Findings []error

func (f _Findings) Error() string {
	return errors.Join(f...).Error()
}

func (f _Findings) Unwrap() []error {
	return f
}

// fail reports err in the result.
func (i *Importer) fail(ctx context.Context, job *_Job, result *model.ParseResult, err error) {
	errs := []error{err}
	if findings, ok := err.(_Findings); ok {
		errs = findings
	}
	for _, e := range errs {
		result.Fail(e)
	}

	kinds := lo.Uniq(result.ErrorKinds)
	logrus.Errorf("import %s failed at %s (format %q, stats %v): %v", job.fileName, lo.Ternary(job.stage == "", "start", job.stage), job.format, result.Stats, err)
	i.failureCount.Add(ctx, 1, metric.WithAttributes(attribute.String("format", job.format), attribute.String("kind", string(kinds[0]))))
	i.importCount.Add(ctx, 1, metric.WithAttributes(attribute.String("format", job.format), attribute.String("status", string(model.ImportStatusFailed))))
}

func (i *Importer) publish(ctx context.Context, job *_Job, result *model.ParseResult) {
	if i.publisher == nil {
		return
	}
	event := notify.ImportCompleted{
		ImportRecordID:   result.ImportRecordID,
		CompanyID:        job.actor.CompanyID,
		Format:           result.Format,
		FileHash:         job.digest.Hash,
		BillNumbers:      lo.Map(result.BillsOfLading, func(b model.BillOfLading, _ int) string { return b.Number }),
		ContainerNumbers: lo.Map(result.Containers, func(c model.Container, _ int) string { return c.Number }),
		CompletedAt:      i.now().Unix(),
	}
	if result.Voyage != nil {
		event.VoyageID = result.Voyage.ID
	}
	if err := i.publisher.Publish(ctx, event); err != nil {
		msg := fmt.Sprintf("import %s committed but not announced: %v", result.ImportRecordID, err)
		logrus.Warn(msg)
		result.Warnings = append(result.Warnings, msg)
	}
}
