package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage"
)

// SQLSTATE codes the import pipeline reacts to.
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// statementError classifies a failed statement. A unique violation means another import created
// the same natural key concurrently.
func statementError(query string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return fmt.Errorf("%s violates %s%w", statementName(query), pgErr.ConstraintName, model.ErrDuplicateNaturalKey)
	case pgSerializationFailure, pgDeadlockDetected:
		logrus.Warnf("%s: concurrent import conflict (%s)", statementName(query), pgErr.Code)
	}
	return err
}

// statementName is the first words of a query, for logs.
func statementName(query string) string {
	fields := strings.Fields(query)
	if len(fields) > 3 {
		fields = fields[:3]
	}
	return strings.ToLower(strings.Join(fields, " "))
}

func (tx *_TxWrapper) Commit(ctx context.Context) error {
	if err := tx.tx.Commit(ctx); err != nil {
		return model.NewPersistenceError("commit", statementError("commit", err))
	}
	return nil
}

// Rollback of a committed transaction is a no-op.
func (tx *_TxWrapper) Rollback(ctx context.Context) error {
	if err := tx.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

func (tx *_TxWrapper) Exec(ctx context.Context, query string, args ...any) (storage.Result, error) {
	result, err := tx.tx.Exec(ctx, query, args...)
	if err != nil {
		logrus.Debugf("%s failed: %v", statementName(query), err)
		return nil, statementError(query, err)
	}
	return &_ResultWrapper{result}, nil
}

func (tx *_TxWrapper) Query(ctx context.Context, query string, args ...any) (storage.Rows, error) {
	rows, err := tx.tx.Query(ctx, query, args...)
	if err != nil {
		logrus.Debugf("%s failed: %v", statementName(query), err)
		return nil, statementError(query, err)
	}
	return &_RowsWrapper{rows}, nil
}

func (tx *_TxWrapper) QueryRow(ctx context.Context, query string, args ...any) storage.Row {
	return &_RowWrapper{row: tx.tx.QueryRow(ctx, query, args...), query: query}
}

func (r *_ResultWrapper) RowsAffected() (int64, error) {
	return r.result.RowsAffected(), nil
}

func (r *_RowsWrapper) Close() {
	r.rows.Close()
}

func (r *_RowsWrapper) Err() error {
	return r.rows.Err()
}

func (r *_RowsWrapper) Next() bool {
	return r.rows.Next()
}

func (r *_RowsWrapper) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

// Scan keeps pgx.ErrNoRows recognisable so that lookups can report a miss.
func (r *_RowWrapper) Scan(dest ...any) error {
	if err := r.row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		return statementError(r.query, err)
	}
	return nil
}

// pgxTxOptions maps the storage options onto pgx. Imports ask for serializable read-write
// transactions; everything else defaults to read committed.
func pgxTxOptions(options []storage.CreateTxOption) pgx.TxOptions {
	sqlTxOption := sql.TxOptions{}
	for _, opt := range options {
		opt(&sqlTxOption)
	}

	txOption := pgx.TxOptions{AccessMode: pgx.ReadWrite, IsoLevel: pgx.ReadCommitted}
	if sqlTxOption.ReadOnly {
		txOption.AccessMode = pgx.ReadOnly
	}
	switch sqlTxOption.Isolation {
	case sql.LevelRepeatableRead, sql.LevelSnapshot:
		txOption.IsoLevel = pgx.RepeatableRead
	case sql.LevelSerializable, sql.LevelLinearizable:
		txOption.IsoLevel = pgx.Serializable
	}
	return txOption
}

func (s *_Storage) CreateTx(ctx context.Context, options ...storage.CreateTxOption) (storage.Tx, context.Context, error) {
	txOption := pgxTxOptions(options)
	tx, err := s.dbPool.BeginTx(ctx, txOption)
	if err != nil {
		logrus.Errorf("begin %s %s transaction: %v", txOption.AccessMode, txOption.IsoLevel, err)
		return nil, ctx, model.NewPersistenceError("begin transaction", err)
	}
	return &_TxWrapper{tx}, ctx, nil
}
