package assembler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/util"
)

type PortInput struct {
	Code string
	Name string
	City string
}

type VesselInput struct {
	Name         string
	Registration string
	Type         model.VesselType
	CapacityTons decimal.Decimal
	CapacityTEU  int
}

type PartyInput struct {
	Name        string
	TaxID       string
	Address     string
	City        string
	CountryCode string
}

// ResolvePort finds a port by code or creates it. The country comes from the catalog, then from
// the UN/LOCODE prefix. When neither is known a strict caller gets ErrPortCountryUnknown and a
// tolerant caller gets the actor's home country with a warning.
func (a *Assembler) ResolvePort(ctx context.Context, in PortInput, strict bool) (model.Port, error) {
	code := normalize.Code(in.Code)
	name := normalize.Text(in.Name)
	if code == "" && name != "" {
		if ref, ok := a.catalog.PortByName(name); ok {
			code = ref.Code
		}
	}
	if code == "" {
		if name == "" {
			return model.Port{}, model.NewValidationError("port code is required")
		}
		code = strings.ToUpper(strings.ReplaceAll(name, " ", ""))
	}

	port, err := a.storage.GetPortByCode(ctx, a.tx, code)
	if err == nil {
		return port, nil
	}
	if !errors.Is(err, model.ErrPortNotFound) {
		return model.Port{}, err
	}

	country := ""
	if ref, ok := a.catalog.Port(code); ok {
		country = ref.Country
		if name == "" {
			name = ref.Name
		}
		if in.City == "" {
			in.City = ref.City
		}
	} else if len(code) == 5 && a.catalog.CountryKnown(code[:2]) {
		country = code[:2]
	}
	if country == "" {
		if strict {
			return model.Port{}, fmt.Errorf("port %s: %w", code, model.ErrPortCountryUnknown)
		}
		country = a.actor.HomeCountry
		a.Warn("port %s: country unknown, %s assumed", code, country)
	}

	if name == "" {
		name = code
	}
	city := normalize.Text(in.City)
	if city == "" {
		city = name
	}

	port = model.Port{
		ID:          util.NewID(),
		Code:        code,
		Name:        name,
		CountryCode: country,
		City:        city,
		CreatedAt:   a.timestamp(),
		CreatedBy:   a.actor.UserID,
	}
	if err := a.storage.AddPort(ctx, a.tx, port); err != nil {
		return model.Port{}, err
	}
	logrus.Debugf("port %s created (%s)", port.Code, port.CountryCode)
	a.markCreated(KindPort, port.ID)
	a.Stat(model.StatCreatedPorts, 1)
	return port, nil
}

// VesselByID returns a vessel of the actor's company.
func (a *Assembler) VesselByID(ctx context.Context, id string) (model.Vessel, error) {
	vessel, err := a.storage.GetVessel(ctx, a.tx, id)
	if err != nil {
		if errors.Is(err, model.ErrVesselNotFound) {
			return model.Vessel{}, fmt.Errorf("vessel %s: %w", id, model.ErrVesselNotFound)
		}
		return model.Vessel{}, err
	}
	if vessel.CompanyID != a.actor.CompanyID {
		return model.Vessel{}, fmt.Errorf("vessel %s: %w", id, model.ErrVesselNotFound)
	}
	return vessel, nil
}

// ResolveVessel finds a vessel of the actor's company by name or creates it.
func (a *Assembler) ResolveVessel(ctx context.Context, in VesselInput) (model.Vessel, error) {
	name := normalize.Upper(in.Name)
	if name == "" {
		return model.Vessel{}, model.NewValidationError("vessel name is required")
	}

	vessel, err := a.storage.GetVesselByName(ctx, a.tx, a.actor.CompanyID, name)
	if err == nil {
		return vessel, nil
	}
	if !errors.Is(err, model.ErrVesselNotFound) {
		return model.Vessel{}, err
	}

	vesselType := in.Type
	if vesselType == "" {
		vesselType = model.VesselTypeUnknown
	}
	vessel = model.Vessel{
		ID:           util.NewID(),
		CompanyID:    a.actor.CompanyID,
		Name:         name,
		Registration: normalize.Upper(in.Registration),
		Type:         vesselType,
		CapacityTons: model.NewDecimal(in.CapacityTons),
		CapacityTEU:  in.CapacityTEU,
		CreatedAt:    a.timestamp(),
		CreatedBy:    a.actor.UserID,
	}
	if err := a.storage.AddVessel(ctx, a.tx, vessel); err != nil {
		return model.Vessel{}, err
	}
	a.markCreated(KindVessel, vessel.ID)
	a.Stat(model.StatCreatedVessels, 1)
	return vessel, nil
}

// ResolveParty finds a party by tax id, then by legal name, or creates it.
// A party without tax id gets a synthetic one.
func (a *Assembler) ResolveParty(ctx context.Context, in PartyInput) (model.Party, error) {
	name := normalize.Upper(in.Name)
	taxID := strings.ToUpper(strings.Join(strings.Fields(in.TaxID), ""))
	if name == "" && taxID == "" {
		return model.Party{}, model.NewValidationError("party name is required")
	}
	if len(taxID) > model.TaxIDMaxLength {
		taxID = taxID[:model.TaxIDMaxLength]
	}

	if taxID != "" {
		party, err := a.storage.GetPartyByTaxID(ctx, a.tx, a.actor.CompanyID, taxID)
		if err == nil {
			a.Stat(model.StatReusedParties, 1)
			return party, nil
		}
		if !errors.Is(err, model.ErrPartyNotFound) {
			return model.Party{}, err
		}
	}
	if name != "" {
		party, err := a.storage.GetPartyByName(ctx, a.tx, a.actor.CompanyID, name)
		if err == nil {
			a.Stat(model.StatReusedParties, 1)
			return party, nil
		}
		if !errors.Is(err, model.ErrPartyNotFound) {
			return model.Party{}, err
		}
	}

	country := strings.ToUpper(strings.TrimSpace(in.CountryCode))
	if len(country) != 2 {
		country = a.actor.HomeCountry
	}
	if name == "" {
		name = taxID
	}

	synthetic := false
	if taxID == "" {
		taxID = SyntheticTaxID(name, country)
		synthetic = true
	}

	party := model.Party{
		ID:             util.NewID(),
		CompanyID:      a.actor.CompanyID,
		LegalName:      name,
		TaxID:          taxID,
		TaxIDSynthetic: synthetic,
		Address:        normalize.Text(in.Address),
		City:           normalize.Text(in.City),
		CountryCode:    country,
		CreatedAt:      a.timestamp(),
		CreatedBy:      a.actor.UserID,
	}
	if err := a.storage.AddParty(ctx, a.tx, party); err != nil {
		return model.Party{}, err
	}
	a.markCreated(KindParty, party.ID)
	a.Stat(model.StatCreatedParties, 1)
	return party, nil
}

// SyntheticTaxID derives a stable tax id for a party known only by name.
func SyntheticTaxID(name, country string) string {
	sum := sha1.Sum([]byte(strings.ToUpper(normalize.Text(name)) + "|" + strings.ToUpper(country)))
	id := "SYN" + strings.ToUpper(hex.EncodeToString(sum[:]))
	return id[:model.TaxIDMaxLength]
}
