package assembler

import (
	"context"
	"errors"
	"time"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/util"
)

type VoyageInput struct {
	Reference   string
	Vessel      model.Vessel // Optional for convoys, where each shipment carries its own vessel.
	Origin      model.Port
	Destination model.Port
	DepartureAt time.Time
	ArrivalAt   time.Time
}

// Direction classifies a movement from the point of view of the home country.
func Direction(originCountry, destinationCountry, homeCountry string) model.CargoDirection {
	switch {
	case originCountry != "" && originCountry == destinationCountry:
		return model.CargoDirectionCabotage
	case destinationCountry == homeCountry:
		return model.CargoDirectionImport
	case originCountry == homeCountry:
		return model.CargoDirectionExport
	default:
		return model.CargoDirectionTransit
	}
}

// OpenVoyage reuses the actor's voyage with the same reference or creates it.
func (a *Assembler) OpenVoyage(ctx context.Context, in VoyageInput) (model.Voyage, error) {
	reference := normalize.Upper(in.Reference)
	if reference == "" {
		return model.Voyage{}, model.NewValidationError("voyage reference is required")
	}

	voyage, err := a.storage.GetVoyageByReference(ctx, a.tx, a.actor.CompanyID, reference)
	if err == nil {
		a.voyage = &voyage
		return voyage, nil
	}
	if !errors.Is(err, model.ErrVoyageNotFound) {
		return model.Voyage{}, err
	}

	voyage = model.Voyage{
		ID:                 util.NewID(),
		CompanyID:          a.actor.CompanyID,
		Reference:          reference,
		VesselID:           in.Vessel.ID,
		OriginPortID:       in.Origin.ID,
		DestinationPortID:  in.Destination.ID,
		OriginCountry:      in.Origin.CountryCode,
		DestinationCountry: in.Destination.CountryCode,
		DepartureAt:        model.NewDate(in.DepartureAt),
		ArrivalAt:          model.NewDate(in.ArrivalAt),
		Direction:          Direction(in.Origin.CountryCode, in.Destination.CountryCode, a.actor.HomeCountry),
		Status:             model.VoyageStatusPlanned,
		CreatedAt:          a.timestamp(),
		CreatedBy:          a.actor.UserID,
	}
	if err := a.storage.AddVoyage(ctx, a.tx, voyage); err != nil {
		return model.Voyage{}, err
	}
	a.markCreated(KindVoyage, voyage.ID)
	a.voyage = &voyage
	return voyage, nil
}

// OpenShipment appends the vessel's participation to the voyage.
func (a *Assembler) OpenShipment(ctx context.Context, voyage model.Voyage, vessel model.Vessel, carrierCode string) (model.Shipment, error) {
	count, err := a.storage.CountShipments(ctx, a.tx, voyage.ID)
	if err != nil {
		return model.Shipment{}, err
	}

	shipment := model.Shipment{
		ID:           util.NewID(),
		VoyageID:     voyage.ID,
		VesselID:     vessel.ID,
		Sequence:     count + 1,
		CarrierCode:  normalize.Upper(carrierCode),
		CapacityTons: vessel.CapacityTons,
		CapacityTEU:  vessel.CapacityTEU,
		Status:       model.ShipmentStatusPending,
		CreatedAt:    a.timestamp(),
		CreatedBy:    a.actor.UserID,
	}
	if err := a.storage.AddShipment(ctx, a.tx, shipment); err != nil {
		return model.Shipment{}, err
	}
	a.markCreated(KindShipment, shipment.ID)
	a.Stat(model.StatCreatedShipments, 1)
	a.shipments = append(a.shipments, shipment)
	return shipment, nil
}
