package importer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/util"
)

type _Digest struct {
	Hash string
	Size int64
}

func digestFile(path string) (_Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return _Digest{}, fmt.Errorf("%s%w", err.Error(), model.ErrDetectionFailure)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return _Digest{}, fmt.Errorf("%s%w", err.Error(), model.ErrDetectionFailure)
	}
	if stat.IsDir() {
		return _Digest{}, fmt.Errorf("%s: is a directory%w", stat.Name(), model.ErrDetectionFailure)
	}

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return _Digest{}, fmt.Errorf("%s%w", err.Error(), model.ErrDetectionFailure)
	}
	return _Digest{Hash: hex.EncodeToString(h.Sum(nil)), Size: size}, nil
}

// openRecord stores the pending import record in its own transaction so that it survives the
// rollback of a failed import. A completed import of the same content only raises a warning.
func (i *Importer) openRecord(ctx context.Context, job *_Job, result *model.ParseResult) (model.ImportRecord, error) {
	record := model.ImportRecord{
		ID:        util.NewID(),
		CompanyID: job.actor.CompanyID,
		UserID:    job.actor.UserID,
		FileName:  job.fileName,
		FileHash:  job.digest.Hash,
		FileSize:  job.digest.Size,
		Format:    job.opts.Format,
		Options:   job.opts.AsMap(),
		Status:    model.ImportStatusPending,
		StartedAt: job.started.Unix(),
	}

	tx, ctx, err := i.storage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		return model.ImportRecord{}, model.NewPersistenceError("begin import record", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if record.FileHash != "" {
		previous, err := i.storage.FindCompletedImportByHash(ctx, tx, record.CompanyID, record.FileHash)
		if err == nil {
			msg := fmt.Sprintf("same content already imported on %s (import %s)", time.Unix(previous.FinishedAt, 0).UTC().Format(time.DateOnly), previous.ID)
			logrus.Warnf("%s: %s", job.fileName, msg)
			result.Warnings = append(result.Warnings, msg)
		} else if !errors.Is(err, model.ErrImportRecordNotFound) {
			return model.ImportRecord{}, err
		}
	}

	if err := i.storage.AddImportRecord(ctx, tx, record); err != nil {
		return model.ImportRecord{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.ImportRecord{}, model.NewPersistenceError("commit import record", err)
	}
	return record, nil
}

// closeRecord moves the record to its terminal status. A failure here cannot undo the import, so
// it is reported as a warning.
func (i *Importer) closeRecord(ctx context.Context, job *_Job, record model.ImportRecord, result *model.ParseResult, created map[string][]string) {
	finished := i.now()
	record.Format = job.format
	record.Created = created
	if record.Created == nil {
		record.Created = map[string][]string{}
	}
	record.Errors = append([]string{}, result.Errors...)
	record.WarningCount = len(result.Warnings)
	record.DurationMillis = finished.Sub(job.started).Milliseconds()
	record.FinishedAt = finished.Unix()
	record.Status = model.ImportStatusFailed
	if result.Success {
		record.Status = model.ImportStatusCompleted
	}

	err := func() error {
		tx, ctx, err := i.storage.CreateTx(ctx, storage.TxOptionWithWrite(true))
		if err != nil {
			return model.NewPersistenceError("begin import record", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()

		if err := i.storage.FinalizeImportRecord(ctx, tx, record); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return model.NewPersistenceError("commit import record", err)
		}
		return nil
	}()
	if err != nil {
		msg := fmt.Sprintf("import record %s not finalized: %v", record.ID, err)
		logrus.Errorf("%s: %s", job.fileName, msg)
		result.Warnings = append(result.Warnings, msg)
	}
}
