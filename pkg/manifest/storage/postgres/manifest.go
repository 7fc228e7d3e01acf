package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage"
)

// scanOne scans a single JSONB document and maps a miss to notFound.
func scanOne[T any](row storage.Row, op string, notFound error) (T, error) {
	var doc T
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return doc, notFound
		}
		return doc, model.NewPersistenceError(op, err)
	}
	return doc, nil
}

func (s *_Storage) GetPortByCode(ctx context.Context, tx storage.Tx, code string) (model.Port, error) {
	const query = `SELECT port FROM port WHERE code = $1`
	return scanOne[model.Port](tx.QueryRow(ctx, query, code), "get port", model.ErrPortNotFound)
}

func (s *_Storage) AddPort(ctx context.Context, tx storage.Tx, port model.Port) error {
	const query = `INSERT INTO port (id, code, port, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := tx.Exec(ctx, query, port.ID, port.Code, port, port.CreatedAt); err != nil {
		return model.NewPersistenceError("add port", err)
	}
	return nil
}

func (s *_Storage) GetVessel(ctx context.Context, tx storage.Tx, id string) (model.Vessel, error) {
	const query = `SELECT vessel FROM vessel WHERE id = $1`
	return scanOne[model.Vessel](tx.QueryRow(ctx, query, id), "get vessel", model.ErrVesselNotFound)
}

func (s *_Storage) GetVesselByName(ctx context.Context, tx storage.Tx, companyID, name string) (model.Vessel, error) {
	const query = `SELECT vessel FROM vessel WHERE company_id = $1 AND name_key = $2`
	return scanOne[model.Vessel](tx.QueryRow(ctx, query, companyID, strings.ToUpper(name)), "get vessel", model.ErrVesselNotFound)
}

func (s *_Storage) AddVessel(ctx context.Context, tx storage.Tx, vessel model.Vessel) error {
	const query = `INSERT INTO vessel (id, company_id, name_key, vessel, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.Exec(ctx, query, vessel.ID, vessel.CompanyID, strings.ToUpper(vessel.Name), vessel, vessel.CreatedAt); err != nil {
		return model.NewPersistenceError("add vessel", err)
	}
	return nil
}

func (s *_Storage) GetPartyByTaxID(ctx context.Context, tx storage.Tx, companyID, taxID string) (model.Party, error) {
	const query = `SELECT party FROM party WHERE company_id = $1 AND tax_id = $2`
	return scanOne[model.Party](tx.QueryRow(ctx, query, companyID, taxID), "get party", model.ErrPartyNotFound)
}

func (s *_Storage) GetPartyByName(ctx context.Context, tx storage.Tx, companyID, legalName string) (model.Party, error) {
	const query = `SELECT party FROM party WHERE company_id = $1 AND name_key = $2 ORDER BY rec_id ASC LIMIT 1`
	return scanOne[model.Party](tx.QueryRow(ctx, query, companyID, strings.ToUpper(legalName)), "get party", model.ErrPartyNotFound)
}

func (s *_Storage) AddParty(ctx context.Context, tx storage.Tx, party model.Party) error {
	const query = `INSERT INTO party (id, company_id, tax_id, name_key, party, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, query, party.ID, party.CompanyID, party.TaxID, strings.ToUpper(party.LegalName), party, party.CreatedAt); err != nil {
		return model.NewPersistenceError("add party", err)
	}
	return nil
}

func (s *_Storage) GetVoyageByReference(ctx context.Context, tx storage.Tx, companyID, reference string) (model.Voyage, error) {
	const query = `SELECT voyage FROM voyage WHERE company_id = $1 AND reference = $2`
	return scanOne[model.Voyage](tx.QueryRow(ctx, query, companyID, reference), "get voyage", model.ErrVoyageNotFound)
}

func (s *_Storage) AddVoyage(ctx context.Context, tx storage.Tx, voyage model.Voyage) error {
	const query = `
INSERT INTO voyage (id, company_id, reference, voyage, created_at) VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (company_id, reference) DO NOTHING`
	result, err := tx.Exec(ctx, query, voyage.ID, voyage.CompanyID, voyage.Reference, voyage, voyage.CreatedAt)
	if err != nil {
		return model.NewPersistenceError("add voyage", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("voyage %s: %w", voyage.Reference, model.ErrVoyageExists)
	}
	return nil
}

func (s *_Storage) CountShipments(ctx context.Context, tx storage.Tx, voyageID string) (int, error) {
	const query = `SELECT COUNT(*) FROM shipment WHERE voyage_id = $1`
	var count int
	if err := tx.QueryRow(ctx, query, voyageID).Scan(&count); err != nil {
		return 0, model.NewPersistenceError("count shipments", err)
	}
	return count, nil
}

func (s *_Storage) AddShipment(ctx context.Context, tx storage.Tx, shipment model.Shipment) error {
	const query = `INSERT INTO shipment (id, voyage_id, "sequence", shipment, created_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.Exec(ctx, query, shipment.ID, shipment.VoyageID, shipment.Sequence, shipment, shipment.CreatedAt); err != nil {
		return model.NewPersistenceError("add shipment", err)
	}
	return nil
}

func (s *_Storage) GetBillOfLadingByNumber(ctx context.Context, tx storage.Tx, number string) (model.BillOfLading, error) {
	const query = `SELECT bill_of_lading FROM bill_of_lading WHERE "number" = $1`
	return scanOne[model.BillOfLading](tx.QueryRow(ctx, query, number), "get bill of lading", model.ErrBillOfLadingNotFound)
}

func (s *_Storage) AddBillOfLading(ctx context.Context, tx storage.Tx, bill model.BillOfLading) error {
	const query = `
INSERT INTO bill_of_lading (id, "number", shipment_id, bill_of_lading, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT ("number") DO NOTHING`
	result, err := tx.Exec(ctx, query, bill.ID, bill.Number, bill.ShipmentID, bill, bill.CreatedAt)
	if err != nil {
		return model.NewPersistenceError("add bill of lading", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("bill %s: %w", bill.Number, model.ErrBillOfLadingExists)
	}
	return nil
}

func (s *_Storage) UpdateBillOfLading(ctx context.Context, tx storage.Tx, bill model.BillOfLading) error {
	const query = `UPDATE bill_of_lading SET bill_of_lading = $2, updated_at = EXTRACT(EPOCH FROM NOW()) WHERE id = $1`
	result, err := tx.Exec(ctx, query, bill.ID, bill)
	if err != nil {
		return model.NewPersistenceError("update bill of lading", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return model.NewPersistenceError("update bill of lading", model.ErrBillOfLadingNotFound)
	}
	return nil
}

func (s *_Storage) GetContainerByNumber(ctx context.Context, tx storage.Tx, number string) (model.Container, error) {
	const query = `SELECT container FROM container WHERE "number" = $1`
	return scanOne[model.Container](tx.QueryRow(ctx, query, number), "get container", model.ErrContainerNotFound)
}

func (s *_Storage) AddContainer(ctx context.Context, tx storage.Tx, container model.Container) error {
	const query = `
INSERT INTO container (id, "number", container, created_at) VALUES ($1, $2, $3, $4)
ON CONFLICT ("number") DO NOTHING`
	result, err := tx.Exec(ctx, query, container.ID, container.Number, container, container.CreatedAt)
	if err != nil {
		return model.NewPersistenceError("add container", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("container %s: %w", container.Number, model.ErrContainerExists)
	}
	return nil
}

func (s *_Storage) MaxItemLineNumber(ctx context.Context, tx storage.Tx, billOfLadingID string) (int, error) {
	const query = `SELECT COALESCE(MAX(line_number), 0) FROM item WHERE bill_of_lading_id = $1`
	var maxLine int
	if err := tx.QueryRow(ctx, query, billOfLadingID).Scan(&maxLine); err != nil {
		return 0, model.NewPersistenceError("max item line number", err)
	}
	return maxLine, nil
}

func (s *_Storage) AddItem(ctx context.Context, tx storage.Tx, item model.Item) error {
	const query = `
INSERT INTO item (id, bill_of_lading_id, container_id, line_number, item, created_at)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)`
	if _, err := tx.Exec(ctx, query, item.ID, item.BillOfLadingID, item.ContainerID, item.LineNumber, item, item.CreatedAt); err != nil {
		return model.NewPersistenceError("add item", err)
	}
	return nil
}

func (s *_Storage) ListItems(ctx context.Context, tx storage.Tx, billOfLadingID string) ([]model.Item, error) {
	const query = `SELECT item FROM item WHERE bill_of_lading_id = $1 ORDER BY line_number ASC`
	rows, err := tx.Query(ctx, query, billOfLadingID)
	if err != nil {
		return nil, model.NewPersistenceError("list items", err)
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item); err != nil {
			return nil, model.NewPersistenceError("list items", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewPersistenceError("list items", err)
	}
	return items, nil
}
