package storage

import (
	"context"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
)

// ManifestStorage keeps the canonical manifest graph.
// Lookups return the matching model.ErrXNotFound when nothing matches; every other failure
// is wrapped in model.ErrPersistenceFault.
type ManifestStorage interface {
	TransactionInterface

	GetPortByCode(ctx context.Context, tx Tx, code string) (model.Port, error)
	AddPort(ctx context.Context, tx Tx, port model.Port) error

	GetVessel(ctx context.Context, tx Tx, id string) (model.Vessel, error)
	GetVesselByName(ctx context.Context, tx Tx, companyID, name string) (model.Vessel, error)
	AddVessel(ctx context.Context, tx Tx, vessel model.Vessel) error

	GetPartyByTaxID(ctx context.Context, tx Tx, companyID, taxID string) (model.Party, error)
	GetPartyByName(ctx context.Context, tx Tx, companyID, legalName string) (model.Party, error)
	AddParty(ctx context.Context, tx Tx, party model.Party) error

	GetVoyageByReference(ctx context.Context, tx Tx, companyID, reference string) (model.Voyage, error)
	AddVoyage(ctx context.Context, tx Tx, voyage model.Voyage) error

	CountShipments(ctx context.Context, tx Tx, voyageID string) (int, error)
	AddShipment(ctx context.Context, tx Tx, shipment model.Shipment) error

	GetBillOfLadingByNumber(ctx context.Context, tx Tx, number string) (model.BillOfLading, error)
	AddBillOfLading(ctx context.Context, tx Tx, bill model.BillOfLading) error
	UpdateBillOfLading(ctx context.Context, tx Tx, bill model.BillOfLading) error

	GetContainerByNumber(ctx context.Context, tx Tx, number string) (model.Container, error)
	AddContainer(ctx context.Context, tx Tx, container model.Container) error

	MaxItemLineNumber(ctx context.Context, tx Tx, billOfLadingID string) (int, error)
	AddItem(ctx context.Context, tx Tx, item model.Item) error
	ListItems(ctx context.Context, tx Tx, billOfLadingID string) ([]model.Item, error)
}

// ImportRecordStorage keeps the audit trail of import attempts.
type ImportRecordStorage interface {
	TransactionInterface

	AddImportRecord(ctx context.Context, tx Tx, record model.ImportRecord) error
	GetImportRecord(ctx context.Context, tx Tx, id string) (model.ImportRecord, error)
	// FinalizeImportRecord moves a pending record to its terminal status.
	// It returns model.ErrImportRecordFinalized when the stored record is already terminal.
	FinalizeImportRecord(ctx context.Context, tx Tx, record model.ImportRecord) error
	// FindCompletedImportByHash returns the latest completed import of the same content.
	FindCompletedImportByHash(ctx context.Context, tx Tx, companyID, fileHash string) (model.ImportRecord, error)
}

type Storage interface {
	ManifestStorage
	ImportRecordStorage
}
