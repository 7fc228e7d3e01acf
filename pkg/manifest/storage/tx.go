package storage

import (
	"context"
	"database/sql"
)

// Tx is the unit of atomicity of an import. Rollback after Commit is a no-op so callers can
// always defer it.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	RowsAffected() (int64, error)
}

type CreateTxOption func(*sql.TxOptions)

type TransactionInterface interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
}

func TxOptionWithWrite(write bool) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.ReadOnly = !write
	}
}

func TxOptionWithIsolationLevel(level sql.IsolationLevel) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.Isolation = level
	}
}

// ForImport are the options of the transaction that holds a whole file: read-write and
// serializable, so that two imports of overlapping files cannot both create the same voyage,
// bill or container.
func ForImport() []CreateTxOption {
	return []CreateTxOption{TxOptionWithWrite(true), TxOptionWithIsolationLevel(sql.LevelSerializable)}
}
