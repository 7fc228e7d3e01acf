// Package parsertest runs parsers against an in-memory store.
package parsertest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/assembler"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/reference"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/session"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage/memory"
)

// ImportTime is the clock of every harness.
var ImportTime = time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

// Actor is the actor of every harness.
var Actor = session.Actor{CompanyID: "company-1", UserID: "user-1", HomeCountry: "PY"}

// Vessel is seeded in every harness store.
var Vessel = model.Vessel{ID: "vessel-1", CompanyID: "company-1", Name: "DON ALFREDO", Type: model.VesselTypeBarge, CapacityTEU: 48}

type Harness struct {
	t       testing.TB
	Ctx     context.Context
	Storage storage.Storage
	Catalog *reference.Catalog
}

func New(t testing.TB, vessels ...model.Vessel) *Harness {
	return &Harness{
		t:       t,
		Ctx:     context.Background(),
		Storage: memory.NewStorage(memory.WithVessels(append([]model.Vessel{Vessel}, vessels...)...)),
		Catalog: reference.Default(),
	}
}

// Import runs the whole parser pipeline in one transaction and commits it on success.
func (h *Harness) Import(p parser.Parser, path string, opts parser.Options) (model.ParseResult, error) {
	result := model.NewParseResult()
	result.Format = p.Info().Name

	tx, ctx, err := h.Storage.CreateTx(h.Ctx, storage.ForImport()...)
	require.NoError(h.t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	asm := assembler.New(h.Storage, tx, h.Catalog, Actor, assembler.WithClock(func() time.Time { return ImportTime }))
	err = run(ctx, p, asm, path, opts)
	asm.Fill(&result)
	if err != nil {
		result.Fail(err)
		return result, err
	}
	if err := tx.Commit(ctx); err != nil {
		result.Fail(err)
		return result, err
	}
	result.Success = true
	return result, nil
}

func run(ctx context.Context, p parser.Parser, asm *assembler.Assembler, path string, opts parser.Options) error {
	doc, err := p.Extract(ctx, path, opts)
	if err != nil {
		return err
	}
	if doc, err = p.Transform(doc); err != nil {
		return err
	}
	if errs := p.Validate(doc); len(errs) > 0 {
		return errors.Join(errs...)
	}
	return p.Assemble(ctx, asm, doc, opts)
}

// Items lists the stored items of a bill.
func (h *Harness) Items(billID string) []model.Item {
	tx, ctx, err := h.Storage.CreateTx(h.Ctx)
	require.NoError(h.t, err)
	defer func() { _ = tx.Rollback(ctx) }()
	items, err := h.Storage.ListItems(ctx, tx, billID)
	require.NoError(h.t, err)
	return items
}

// Bill reads a stored bill.
func (h *Harness) Bill(number string) (model.BillOfLading, error) {
	tx, ctx, err := h.Storage.CreateTx(h.Ctx)
	require.NoError(h.t, err)
	defer func() { _ = tx.Rollback(ctx) }()
	return h.Storage.GetBillOfLadingByNumber(ctx, tx, number)
}

// Container reads a stored container.
func (h *Harness) Container(number string) (model.Container, error) {
	tx, ctx, err := h.Storage.CreateTx(h.Ctx)
	require.NoError(h.t, err)
	defer func() { _ = tx.Rollback(ctx) }()
	return h.Storage.GetContainerByNumber(ctx, tx, number)
}

// WriteFile writes content to a temporary file named name.
func WriteFile(t testing.TB, name string, content []byte) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}
