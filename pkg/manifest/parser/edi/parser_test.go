package edi_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/edi"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/parsertest"
)

type CuscarTestSuite struct {
	suite.Suite
	h      *parsertest.Harness
	parser parser.Parser
}

func TestCuscar(t *testing.T) {
	suite.Run(t, new(CuscarTestSuite))
}

func (s *CuscarTestSuite) SetupTest() {
	s.h = parsertest.New(s.T())
	s.parser = edi.New()
}

func (s *CuscarTestSuite) TestCanParse() {
	s.True(s.parser.CanParse(filepath.Join("testdata", "scenario_a.edi")))
	s.True(s.parser.CanParse(filepath.Join("testdata", "reefer.edi")))
	s.False(s.parser.CanParse(parsertest.WriteFile(s.T(), "a.edi", []byte("UNB+UNOA:2+X'UNH+1+IFTMIN:D:99B:UN'"))))
	s.False(s.parser.CanParse(parsertest.WriteFile(s.T(), "b.txt", []byte("CUSCAR manifest notes"))))
	s.False(s.parser.CanParse(filepath.Join("testdata", "missing.edi")))
}

func (s *CuscarTestSuite) TestInfo() {
	info := s.parser.Info()
	s.Equal(edi.FormatName, info.Name)
	s.Equal("abort", info.DuplicatePolicy.String())
	s.False(info.RequiresVessel)
	s.Equal(true, s.parser.DefaultConfig()["strict_ports"])
}

func (s *CuscarTestSuite) TestSplitItemOverContainers() {
	result, err := s.h.Import(s.parser, filepath.Join("testdata", "scenario_a.edi"), parser.Options{})
	s.Require().NoError(err)
	s.True(result.Success)

	s.Equal(2, result.Stats[model.StatProcessedContainers])
	s.Equal(2, result.Stats[model.StatCreatedContainers])
	s.Equal(2, result.Stats[model.StatCreatedItems])
	s.Equal(1, result.Stats[model.StatValidationFindings])
	s.Equal([]string{"group 1 (1) item 2: no container, item ignored"}, result.Warnings)

	s.Require().NotNil(result.Voyage)
	s.Equal("V0123", result.Voyage.Reference)
	s.Equal(parsertest.Vessel.ID, result.Voyage.VesselID)
	s.Equal(model.CargoDirectionImport, result.Voyage.Direction)
	s.Equal("2024-03-05", result.Voyage.DepartureAt.String())
	s.Equal("2024-03-10", result.Voyage.ArrivalAt.String())
	s.Require().Len(result.Shipments, 1)
	s.Equal("MSC", result.Shipments[0].CarrierCode)

	s.Require().Len(result.BillsOfLading, 1)
	bill := result.BillsOfLading[0]
	s.Equal("MSCAB123", bill.Number)
	s.Equal("10000", bill.GrossWeight.String())
	s.Equal("40.5", bill.Volume.String())
	s.Equal(22, bill.PackageCount)
	s.Equal("AUTOPARTES REPUESTOS: FILTROS", bill.CargoDescription)
	s.Equal(map[string]string{"manifest_number": "MAN2024001"}, bill.Extra)
	s.NotEmpty(bill.NotifyPartyID)
	s.Equal(bill.ConsigneeID, bill.NotifyPartyID)

	items := s.h.Items(bill.ID)
	s.Require().Len(items, 2)
	s.Equal(1, items[0].LineNumber)
	s.Equal(12, items[0].PackageCount)
	s.Equal("5000", items[0].GrossWeight.String())
	s.Equal("BX", items[0].PackageTypeCode)
	s.Equal(2, items[1].LineNumber)
	s.Equal(10, items[1].PackageCount)

	first, err := s.h.Container("MSCU1234566")
	s.Require().NoError(err)
	s.Equal("42G1", first.ISOType)
	s.Equal([]string{"SL0001", "SL0002"}, first.Seals)
	s.Equal("8800", first.GrossWeight.String())
	s.Equal("5000", first.NetWeight.String())
	s.Equal(first.ID, items[0].ContainerID)

	second, err := s.h.Container("TGHU7654320")
	s.Require().NoError(err)
	s.Equal("9200", second.GrossWeight.String())
	s.Equal("7000", second.NetWeight.String())
}

func (s *CuscarTestSuite) TestDuplicateBillAborts() {
	_, err := s.h.Import(s.parser, filepath.Join("testdata", "scenario_a.edi"), parser.Options{})
	s.Require().NoError(err)

	result, err := s.h.Import(s.parser, filepath.Join("testdata", "scenario_a.edi"), parser.Options{})
	s.ErrorIs(err, model.ErrBillOfLadingExists)
	s.False(result.Success)
	s.Equal([]model.ErrorKind{model.ErrorKindDuplicateNaturalKey}, result.ErrorKinds)
}

func (s *CuscarTestSuite) TestReeferWithoutGroups() {
	result, err := s.h.Import(s.parser, filepath.Join("testdata", "reefer.edi"), parser.Options{VoyageReference: "VY-77"})
	s.Require().NoError(err)

	s.Equal("VY-77", result.Voyage.Reference)
	s.Equal(parsertest.ImportTime.Truncate(24*time.Hour), result.Voyage.DepartureAt.Time())
	s.Contains(result.Warnings, "bill MAEU900001: departure date missing, import date used")
	s.Equal(1, result.Stats[model.StatDatePlaceholders])
	s.Equal(1, result.Stats[model.StatCreatedVessels])

	bill := result.BillsOfLading[0]
	s.Equal("22000", bill.GrossWeight.String())
	s.Equal("21500", bill.NetWeight.String())

	items := s.h.Items(bill.ID)
	s.Require().Len(items, 1)
	s.Equal("REFRIGERATED", items[0].CargoTypeCode)
	s.Equal("CT", items[0].PackageTypeCode)
	s.Require().NotNil(items[0].TempMin)
	s.Equal("-18", items[0].TempMin.String())

	container, err := s.h.Container("MRKU7000006")
	s.Require().NoError(err)
	s.True(container.Reefer)
	s.Equal("22000", container.NetWeight.String())
}

func (s *CuscarTestSuite) TestVesselByID() {
	_, err := s.h.Import(s.parser, filepath.Join("testdata", "reefer.edi"), parser.Options{VesselID: "unknown"})
	s.ErrorIs(err, model.ErrVesselNotFound)

	result, err := s.h.Import(s.parser, filepath.Join("testdata", "reefer.edi"), parser.Options{VesselID: parsertest.Vessel.ID})
	s.Require().NoError(err)
	s.Equal(parsertest.Vessel.ID, result.Shipments[0].VesselID)
	s.Zero(result.Stats[model.StatCreatedVessels])
}

func (s *CuscarTestSuite) TestValidationReportsEveryProblem() {
	result, err := s.h.Import(s.parser, filepath.Join("testdata", "broken.edi"), parser.Options{})
	s.ErrorIs(err, model.ErrStructuralValidation)
	s.False(result.Success)

	msg := err.Error()
	s.Contains(msg, "segment 4 (DTM)")
	s.Contains(msg, "vessel name is missing")
	s.Contains(msg, "port of discharge is missing")
	s.Contains(msg, "shipper is missing")
	s.Contains(msg, "consignee is missing")
	s.Contains(msg, "group 2 (3): no goods items")
	s.NotContains(msg, "bill of lading number")

	_, err = s.h.Bill("MAN9")
	s.ErrorIs(err, model.ErrBillOfLadingNotFound)
}
