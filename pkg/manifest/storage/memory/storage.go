package memory

import (
	"context"
	"database/sql"
	"errors"
	"maps"
	"sync"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage"
)

var errUnsupported = errors.New("raw statements are not supported by the memory store")
var errTxClosed = errors.New("transaction is already closed")

type _State struct {
	ports      map[string]model.Port // keyed by code
	vessels    map[string]model.Vessel
	parties    map[string]model.Party
	voyages    map[string]model.Voyage
	shipments  map[string]model.Shipment
	bills      map[string]model.BillOfLading
	containers map[string]model.Container
	items      map[string]model.Item
	imports    map[string]model.ImportRecord
}

func newState() *_State {
	return &_State{
		ports:      map[string]model.Port{},
		vessels:    map[string]model.Vessel{},
		parties:    map[string]model.Party{},
		voyages:    map[string]model.Voyage{},
		shipments:  map[string]model.Shipment{},
		bills:      map[string]model.BillOfLading{},
		containers: map[string]model.Container{},
		items:      map[string]model.Item{},
		imports:    map[string]model.ImportRecord{},
	}
}

func (s *_State) clone() *_State {
	return &_State{
		ports:      maps.Clone(s.ports),
		vessels:    maps.Clone(s.vessels),
		parties:    maps.Clone(s.parties),
		voyages:    maps.Clone(s.voyages),
		shipments:  maps.Clone(s.shipments),
		bills:      maps.Clone(s.bills),
		containers: maps.Clone(s.containers),
		items:      maps.Clone(s.items),
		imports:    maps.Clone(s.imports),
	}
}

// _Storage is a process local store. Each transaction works on a snapshot taken when it begins
// and publishes the snapshot on commit.
//
// Commit replaces the whole state, so overlapping write transactions do not merge: the last one
// to commit wins and the writes of the others are lost. Callers that need concurrent imports
// must serialize them or use the postgres store.
type _Storage struct {
	mtx   sync.Mutex
	state *_State
}

type _Tx struct {
	storage  *_Storage
	state    *_State
	readOnly bool
	closed   bool
}

type _Row struct {
	err error
}

type OptionFunc func(*_Storage)

// WithVessels seeds the store with existing vessels.
func WithVessels(vessels ...model.Vessel) OptionFunc {
	return func(s *_Storage) {
		for _, v := range vessels {
			s.state.vessels[v.ID] = v
		}
	}
}

// WithPorts seeds the store with existing ports.
func WithPorts(ports ...model.Port) OptionFunc {
	return func(s *_Storage) {
		for _, p := range ports {
			s.state.ports[p.Code] = p
		}
	}
}

func NewStorage(options ...OptionFunc) *_Storage {
	s := &_Storage{state: newState()}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *_Storage) CreateTx(ctx context.Context, options ...storage.CreateTxOption) (storage.Tx, context.Context, error) {
	txOptions := txOptionsFrom(options)

	s.mtx.Lock()
	defer s.mtx.Unlock()
	return &_Tx{
		storage:  s,
		state:    s.state.clone(),
		readOnly: txOptions.ReadOnly,
	}, ctx, nil
}

// Commit publishes the transaction's snapshot as the store state. Writes committed by other
// transactions since this one began are discarded.
func (tx *_Tx) Commit(ctx context.Context) error {
	if tx.closed {
		return errTxClosed
	}
	tx.closed = true
	if tx.readOnly {
		return nil
	}

	tx.storage.mtx.Lock()
	defer tx.storage.mtx.Unlock()
	tx.storage.state = tx.state
	return nil
}

func (tx *_Tx) Rollback(ctx context.Context) error {
	tx.closed = true
	return nil
}

func (tx *_Tx) Exec(ctx context.Context, sql string, arguments ...any) (storage.Result, error) {
	return nil, errUnsupported
}

func (tx *_Tx) Query(ctx context.Context, sql string, args ...any) (storage.Rows, error) {
	return nil, errUnsupported
}

func (tx *_Tx) QueryRow(ctx context.Context, sql string, args ...any) storage.Row {
	return &_Row{err: errUnsupported}
}

func (r *_Row) Scan(dest ...any) error {
	return r.err
}

func (s *_Storage) readState(tx storage.Tx) (*_State, error) {
	memTx, ok := tx.(*_Tx)
	if !ok || memTx.storage != s {
		return nil, model.NewPersistenceError("memory store", errors.New("foreign transaction"))
	}
	if memTx.closed {
		return nil, model.NewPersistenceError("memory store", errTxClosed)
	}
	return memTx.state, nil
}

func (s *_Storage) writeState(tx storage.Tx) (*_State, error) {
	state, err := s.readState(tx)
	if err != nil {
		return nil, err
	}
	if tx.(*_Tx).readOnly {
		return nil, model.NewPersistenceError("memory store", errors.New("write in read-only transaction"))
	}
	return state, nil
}

func txOptionsFrom(options []storage.CreateTxOption) sql.TxOptions {
	txOptions := sql.TxOptions{}
	for _, opt := range options {
		opt(&txOptions)
	}
	return txOptions
}
