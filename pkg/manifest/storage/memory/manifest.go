package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/storage"
)

func (s *_Storage) GetPortByCode(ctx context.Context, tx storage.Tx, code string) (model.Port, error) {
	state, err := s.readState(tx)
	if err != nil {
		return model.Port{}, err
	}
	port, ok := state.ports[code]
	if !ok {
		return model.Port{}, model.ErrPortNotFound
	}
	return port, nil
}

func (s *_Storage) AddPort(ctx context.Context, tx storage.Tx, port model.Port) error {
	state, err := s.writeState(tx)
	if err != nil {
		return err
	}
	if _, ok := state.ports[port.Code]; ok {
		return model.NewPersistenceError("add port", fmt.Errorf("duplicate port code %q", port.Code))
	}
	state.ports[port.Code] = port
	return nil
}

func (s *_Storage) GetVessel(ctx context.Context, tx storage.Tx, id string) (model.Vessel, error) {
	state, err := s.readState(tx)
	if err != nil {
		return model.Vessel{}, err
	}
	vessel, ok := state.vessels[id]
	if !ok {
		return model.Vessel{}, model.ErrVesselNotFound
	}
	return vessel, nil
}

func (s *_Storage) GetVesselByName(ctx context.Context, tx storage.Tx, companyID, name string) (model.Vessel, error) {
	state, err := s.readState(tx)
	if err != nil {
		return model.Vessel{}, err
	}
	for _, v := range state.vessels {
		if v.CompanyID == companyID && strings.EqualFold(v.Name, name) {
			return v, nil
		}
	}
	return model.Vessel{}, model.ErrVesselNotFound
}

func (s *_Storage) AddVessel(ctx context.Context, tx storage.Tx, vessel model.Vessel) error {
	state, err := s.writeState(tx)
	if err != nil {
		return err
	}
	state.vessels[vessel.ID] = vessel
	return nil
}

func (s *_Storage) GetPartyByTaxID(ctx context.Context, tx storage.Tx, companyID, taxID string) (model.Party, error) {
	state, err := s.readState(tx)
	if err != nil {
		return model.Party{}, err
	}
	for _, p := range state.parties {
		if p.CompanyID == companyID && p.TaxID == taxID {
			return p, nil
		}
	}
	return model.Party{}, model.ErrPartyNotFound
}

func (s *_Storage) GetPartyByName(ctx context.Context, tx storage.Tx, companyID, legalName string) (model.Party, error) {
	state, err := s.readState(tx)
	if err != nil {
		return model.Party{}, err
	}
	for _, p := range state.parties {
		if p.CompanyID == companyID && strings.EqualFold(p.LegalName, legalName) {
			return p, nil
		}
	}
	return model.Party{}, model.ErrPartyNotFound
}

func (s *_Storage) AddParty(ctx context.Context, tx storage.Tx, party model.Party) error {
	state, err := s.writeState(tx)
	if err != nil {
		return err
	}
	for _, p := range state.parties {
		if p.CompanyID == party.CompanyID && p.TaxID == party.TaxID {
			return model.NewPersistenceError("add party", fmt.Errorf("duplicate tax id %q", party.TaxID))
		}
	}
	state.parties[party.ID] = party
	return nil
}

func (s *_Storage) GetVoyageByReference(ctx context.Context, tx storage.Tx, companyID, reference string) (model.Voyage, error) {
	state, err := s.readState(tx)
	if err != nil {
		return model.Voyage{}, err
	}
	for _, v := range state.voyages {
		if v.CompanyID == companyID && v.Reference == reference {
			return v, nil
		}
	}
	return model.Voyage{}, model.ErrVoyageNotFound
}

func (s *_Storage) AddVoyage(ctx context.Context, tx storage.Tx, voyage model.Voyage) error {
	state, err := s.writeState(tx)
	if err != nil {
		return err
	}
	for _, v := range state.voyages {
		if v.CompanyID == voyage.CompanyID && v.Reference == voyage.Reference {
			return fmt.Errorf("voyage %s: %w", voyage.Reference, model.ErrVoyageExists)
		}
	}
	state.voyages[voyage.ID] = voyage
	return nil
}

func (s *_Storage) CountShipments(ctx context.Context, tx storage.Tx, voyageID string) (int, error) {
	state, err := s.readState(tx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, sh := range state.shipments {
		if sh.VoyageID == voyageID {
			count++
		}
	}
	return count, nil
}

func (s *_Storage) AddShipment(ctx context.Context, tx storage.Tx, shipment model.Shipment) error {
	state, err := s.writeState(tx)
	if err != nil {
		return err
	}
	state.shipments[shipment.ID] = shipment
	return nil
}

func (s *_Storage) GetBillOfLadingByNumber(ctx context.Context, tx storage.Tx, number string) (model.BillOfLading, error) {
	state, err := s.readState(tx)
	if err != nil {
		return model.BillOfLading{}, err
	}
	for _, b := range state.bills {
		if b.Number == number {
			return b, nil
		}
	}
	return model.BillOfLading{}, model.ErrBillOfLadingNotFound
}

func (s *_Storage) AddBillOfLading(ctx context.Context, tx storage.Tx, bill model.BillOfLading) error {
	state, err := s.writeState(tx)
	if err != nil {
		return err
	}
	for _, b := range state.bills {
		if b.Number == bill.Number {
			return fmt.Errorf("bill %s: %w", bill.Number, model.ErrBillOfLadingExists)
		}
	}
	state.bills[bill.ID] = bill
	return nil
}

func (s *_Storage) UpdateBillOfLading(ctx context.Context, tx storage.Tx, bill model.BillOfLading) error {
	state, err := s.writeState(tx)
	if err != nil {
		return err
	}
	if _, ok := state.bills[bill.ID]; !ok {
		return model.NewPersistenceError("update bill of lading", model.ErrBillOfLadingNotFound)
	}
	state.bills[bill.ID] = bill
	return nil
}

func (s *_Storage) GetContainerByNumber(ctx context.Context, tx storage.Tx, number string) (model.Container, error) {
	state, err := s.readState(tx)
	if err != nil {
		return model.Container{}, err
	}
	for _, c := range state.containers {
		if c.Number == number {
			return c, nil
		}
	}
	return model.Container{}, model.ErrContainerNotFound
}

func (s *_Storage) AddContainer(ctx context.Context, tx storage.Tx, container model.Container) error {
	state, err := s.writeState(tx)
	if err != nil {
		return err
	}
	for _, c := range state.containers {
		if c.Number == container.Number {
			return fmt.Errorf("container %s: %w", container.Number, model.ErrContainerExists)
		}
	}
	state.containers[container.ID] = container
	return nil
}

func (s *_Storage) MaxItemLineNumber(ctx context.Context, tx storage.Tx, billOfLadingID string) (int, error) {
	state, err := s.readState(tx)
	if err != nil {
		return 0, err
	}
	maxLine := 0
	for _, item := range state.items {
		if item.BillOfLadingID == billOfLadingID {
			maxLine = max(maxLine, item.LineNumber)
		}
	}
	return maxLine, nil
}

func (s *_Storage) AddItem(ctx context.Context, tx storage.Tx, item model.Item) error {
	state, err := s.writeState(tx)
	if err != nil {
		return err
	}
	for _, existing := range state.items {
		if existing.BillOfLadingID == item.BillOfLadingID && existing.LineNumber == item.LineNumber {
			return model.NewPersistenceError("add item", fmt.Errorf("duplicate line %d", item.LineNumber))
		}
	}
	state.items[item.ID] = item
	return nil
}

func (s *_Storage) ListItems(ctx context.Context, tx storage.Tx, billOfLadingID string) ([]model.Item, error) {
	state, err := s.readState(tx)
	if err != nil {
		return nil, err
	}
	items := make([]model.Item, 0)
	for _, item := range state.items {
		if item.BillOfLadingID == billOfLadingID {
			items = append(items, item)
		}
	}
	slices.SortFunc(items, func(a, b model.Item) int { return a.LineNumber - b.LineNumber })
	return items, nil
}
