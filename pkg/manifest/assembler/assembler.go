package assembler

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/reference"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/session"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage"
)

// DuplicatePolicy decides what happens when a bill number already exists in the store.
type DuplicatePolicy int

const (
	// AbortOnDuplicate fails the whole file.
	AbortOnDuplicate DuplicatePolicy = iota
	// SkipOnDuplicate skips the bill with a warning and carries on.
	SkipOnDuplicate
)

func (p DuplicatePolicy) String() string {
	if p == SkipOnDuplicate {
		return "skip"
	}
	return "abort"
}

func (p DuplicatePolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ErrSkipped is returned by CreateBillOfLading when a duplicate bill was skipped.
// Callers must ignore everything that belongs to the skipped bill.
var ErrSkipped = errors.New("skipped duplicate")

// Entity kinds used as keys of Created.
const (
	KindPort      = "port"
	KindVessel    = "vessel"
	KindParty     = "party"
	KindVoyage    = "voyage"
	KindShipment  = "shipment"
	KindBill      = "bill_of_lading"
	KindContainer = "container"
	KindItem      = "item"
)

// Assembler resolves and creates the canonical entities of one import inside one transaction.
// It is not safe for concurrent use.
type Assembler struct {
	storage storage.ManifestStorage
	tx      storage.Tx
	catalog *reference.Catalog
	actor   session.Actor
	now     func() time.Time

	voyage     *model.Voyage
	shipments  []model.Shipment
	bills      []model.BillOfLading
	billIndex  map[string]int
	containers []model.Container

	seenContainers    map[string]bool
	createdContainers map[string]bool

	warnings []string
	stats    map[string]int
	created  map[string][]string
}

type OptionFunc func(*Assembler)

func WithClock(now func() time.Time) OptionFunc {
	return func(a *Assembler) {
		a.now = now
	}
}

func New(store storage.ManifestStorage, tx storage.Tx, catalog *reference.Catalog, actor session.Actor, options ...OptionFunc) *Assembler {
	a := &Assembler{
		storage:           store,
		tx:                tx,
		catalog:           catalog,
		actor:             actor,
		now:               time.Now,
		billIndex:         map[string]int{},
		seenContainers:    map[string]bool{},
		createdContainers: map[string]bool{},
		stats:             map[string]int{},
		created:           map[string][]string{},
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

func (a *Assembler) Actor() session.Actor {
	return a.actor
}

func (a *Assembler) Catalog() *reference.Catalog {
	return a.catalog
}

// Warn records a non-fatal finding.
func (a *Assembler) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	logrus.Warnf("manifest import: %s", msg)
	a.warnings = append(a.warnings, msg)
}

// Stat adds delta to a statistics counter.
func (a *Assembler) Stat(key string, delta int) {
	a.stats[key] += delta
}

// ImportDate is the date every placeholder falls back to.
func (a *Assembler) ImportDate() time.Time {
	return model.NewDate(a.now()).Time()
}

// DatePlaceholder returns the import date for a missing date and records the gap.
func (a *Assembler) DatePlaceholder(field, owner string) time.Time {
	a.Stat(model.StatDatePlaceholders, 1)
	a.Warn("%s: %s missing, import date used", owner, field)
	return a.ImportDate()
}

// Warnings returns the warnings recorded so far.
func (a *Assembler) Warnings() []string {
	return a.warnings
}

// Created returns the ids of every entity created, grouped by kind.
func (a *Assembler) Created() map[string][]string {
	return a.created
}

// Fill copies the assembled graph, the warnings and the statistics into result.
func (a *Assembler) Fill(result *model.ParseResult) {
	if a.voyage != nil {
		v := *a.voyage
		result.Voyage = &v
	}
	result.Shipments = append(result.Shipments, a.shipments...)
	result.BillsOfLading = append(result.BillsOfLading, a.bills...)
	result.Containers = append(result.Containers, a.containers...)
	a.FillDiagnostics(result)
}

// FillDiagnostics copies only the warnings and the statistics, for imports that were rolled back.
func (a *Assembler) FillDiagnostics(result *model.ParseResult) {
	result.Warnings = append(result.Warnings, a.warnings...)
	for k, v := range a.stats {
		result.Stats[k] += v
	}
}

func (a *Assembler) markCreated(kind, id string) {
	a.created[kind] = append(a.created[kind], id)
}

func (a *Assembler) timestamp() int64 {
	return a.now().Unix()
}

// ContainerNumbers lists the container numbers touched by the import in first-seen order.
func (a *Assembler) ContainerNumbers() []string {
	return lo.Map(a.containers, func(c model.Container, _ int) string { return c.Number })
}
