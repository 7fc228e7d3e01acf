package marker_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/marker"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/parsertest"
)

type MarkerTestSuite struct {
	suite.Suite
	h        *parsertest.Harness
	bl       parser.Parser
	manifest parser.Parser
}

func TestMarker(t *testing.T) {
	suite.Run(t, new(MarkerTestSuite))
}

func (s *MarkerTestSuite) SetupTest() {
	s.h = parsertest.New(s.T())
	s.bl = marker.NewBL()
	s.manifest = marker.NewManifest(marker.WithSniffBytes(1024))
}

func (s *MarkerTestSuite) TestCanParse() {
	s.True(s.bl.CanParse(filepath.Join("testdata", "bls.mbl")))
	s.True(s.bl.CanParse(filepath.Join("testdata", "scenario_b.mbl")))
	s.False(s.bl.CanParse(filepath.Join("testdata", "consolidated.man")))

	s.True(s.manifest.CanParse(filepath.Join("testdata", "consolidated.man")))
	s.True(s.manifest.CanParse(parsertest.WriteFile(s.T(), "a.man", []byte("** CONOCIMIENTO **\nCONOCIMIENTO: /*X*/"))))
	s.False(s.manifest.CanParse(filepath.Join("testdata", "bls.mbl")))
	s.False(s.manifest.CanParse(filepath.Join("testdata", "missing.man")))
}

func (s *MarkerTestSuite) TestInfo() {
	s.Equal(marker.FormatBL, s.bl.Info().Name)
	s.Equal("skip", s.bl.Info().DuplicatePolicy.String())
	s.Equal(marker.FormatManifest, s.manifest.Info().Name)
	s.Equal("abort", s.manifest.Info().DuplicatePolicy.String())
	s.Equal(1024, s.manifest.DefaultConfig()["sniff_bytes"])
	s.Equal("CONOCIMIENTO", s.manifest.DefaultConfig()["block"])
}

func (s *MarkerTestSuite) TestBillsWithContainers() {
	result, err := s.h.Import(s.bl, filepath.Join("testdata", "bls.mbl"), parser.Options{})
	s.Require().NoError(err)
	s.True(result.Success)

	s.Require().NotNil(result.Voyage)
	s.Equal("V77", result.Voyage.Reference)
	s.Equal(parsertest.Vessel.ID, result.Voyage.VesselID)
	s.Equal("2024-03-05", result.Voyage.DepartureAt.String())
	s.Require().Len(result.BillsOfLading, 2)
	s.Equal(2, result.Stats[model.StatCreatedContainers])
	s.Equal(3, result.Stats[model.StatCreatedItems])
	s.Equal(1, result.Stats[model.StatDatePlaceholders])
	s.Equal(1, result.Stats[model.StatWeightPlaceholders])
	s.Equal([]string{
		"bill AB124: FECHAEMBARQUE missing, import date used",
		"container MSCU1234566: tare missing, 2200 kg assumed for 20 ft",
	}, result.Warnings)

	first := result.BillsOfLading[0]
	s.Equal("AB123", first.Number)
	s.Equal("15000", first.GrossWeight.String())
	s.Equal(160, first.PackageCount)
	s.Equal(first.ConsigneeID, first.NotifyPartyID)

	items := s.h.Items(first.ID)
	s.Require().Len(items, 2)
	s.Equal(1, items[0].LineNumber)
	s.Equal("NEUMATICOS PARA AUTOMOVILES", items[0].Description)
	s.Equal("4011.10", items[0].CommodityCode)
	s.Equal(2, items[1].LineNumber)
	s.Equal("BX", items[1].PackageTypeCode)
	s.Equal(items[0].ContainerID, items[1].ContainerID)

	container, err := s.h.Container("CSQU3054383")
	s.Require().NoError(err)
	s.Equal("45G1", container.ISOType)
	s.Equal("15000", container.NetWeight.String())
	s.Equal([]string{"SL-0001"}, container.Seals)

	container, err = s.h.Container("MSCU1234566")
	s.Require().NoError(err)
	s.Equal("14700", container.GrossWeight.String())
	s.Equal("12500", container.NetWeight.String())
}

func (s *MarkerTestSuite) TestContainerWithoutCargoLine() {
	result, err := s.h.Import(s.bl, filepath.Join("testdata", "scenario_b.mbl"), parser.Options{})
	s.Require().Error(err)
	s.False(result.Success)
	s.ErrorIs(err, model.ErrStructuralValidation)
	s.Equal("bill[0] (AB123) container[0] (CSQU3054383): missing cargo line", err.Error())

	_, err = s.h.Container("CSQU3054383")
	s.ErrorIs(err, model.ErrContainerNotFound)
}

func (s *MarkerTestSuite) TestFlatContainersSection() {
	content := `**BL**
NUMERO BL: /*AB300*/
BUQUE: /*DON ALFREDO*/
VIAJE: /*V90*/
PUERTO CARGA: /*ARBUE*/
PUERTO DESCARGA: /*PYASU*/
EMBARCADOR: /*EXPORTADORA DEL PLATA SA*/
CONSIGNATARIO: /*IMPORTADORA GUARANI SRL*/
FECHA EMBARQUE: /*10/04/2024*/
**CONTENEDORES**
NUMERO: /*CSQU3054383*/
TIPO: /*40HC*/
TARA: /*3900*/
PESO BRUTO: /*13900*/
**MERCADERIA**
DESCRIPCION: /*YERBA MATE*/ BULTOS: /*400*/ EMBALAJE: /*BOLSAS*/ PESO: /*10000*/
**FIN MERCADERIA**
**FIN CONTENEDORES**
**FIN BL**
`
	path := parsertest.WriteFile(s.T(), "flat.mbl", []byte(content))

	result, err := s.h.Import(s.bl, path, parser.Options{})
	s.Require().NoError(err)
	s.True(result.Success)
	s.Require().Len(result.BillsOfLading, 1)
	s.Equal(1, result.Stats[model.StatCreatedContainers])
	s.Equal(1, result.Stats[model.StatCreatedItems])

	container, err := s.h.Container("CSQU3054383")
	s.Require().NoError(err)
	s.Equal("45G1", container.ISOType)
	s.Equal("13900", container.GrossWeight.String())

	items := s.h.Items(result.BillsOfLading[0].ID)
	s.Require().Len(items, 1)
	s.Equal("YERBA MATE", items[0].Description)
	s.Equal(container.ID, items[0].ContainerID)
}

func (s *MarkerTestSuite) TestAccumulatedErrors() {
	_, err := s.h.Import(s.bl, filepath.Join("testdata", "incomplete.mbl"), parser.Options{})
	s.Require().Error(err)
	s.Equal(`bill[0] (AB200): "mañana" is not a date
bill[0] (AB200) container[0] line[0]: BULTOS "diez" is not a number
bill[0] (AB200): missing VIAJE
bill[0] (AB200): missing PUERTODESCARGA
bill[0] (AB200): missing **FIN BL**
bill[0] (AB200) container[0] (MAEU1234567) line[0]: missing DESCRIPCION
bill[1] (AB201): missing **CONTENEDOR** section`, err.Error())
}

func (s *MarkerTestSuite) TestDuplicateBillSkipped() {
	_, err := s.h.Import(s.bl, filepath.Join("testdata", "bls.mbl"), parser.Options{})
	s.Require().NoError(err)

	result, err := s.h.Import(s.bl, filepath.Join("testdata", "bls.mbl"), parser.Options{VoyageReference: "V78"})
	s.Require().NoError(err)
	s.True(result.Success)
	s.Empty(result.BillsOfLading)
	s.Equal(2, result.Stats[model.StatSkippedBills])
	s.Contains(result.Warnings, "bill AB123 already exists, skipped")
	s.Contains(result.Warnings, "bill AB124 already exists, skipped")
}

func (s *MarkerTestSuite) TestConsolidatedManifest() {
	result, err := s.h.Import(s.manifest, filepath.Join("testdata", "consolidated.man"), parser.Options{})
	s.Require().NoError(err)
	s.True(result.Success)

	s.Require().NotNil(result.Voyage)
	s.Equal("RP-2024-07", result.Voyage.Reference)
	s.Equal("2024-04-02", result.Voyage.DepartureAt.String())
	s.Equal(1, result.Stats[model.StatCreatedVessels])
	s.Equal([]string{"container TCLU2000008: tare missing, 2200 kg assumed for 20 ft"}, result.Warnings)

	s.Require().Len(result.BillsOfLading, 2)
	s.Equal("RP-0001", result.BillsOfLading[0].Number)
	s.Equal("RP-0002", result.BillsOfLading[1].Number)
	s.NotEqual(result.BillsOfLading[0].DischargePortID, result.BillsOfLading[1].DischargePortID)
	s.Equal(result.BillsOfLading[0].ShipperID, result.BillsOfLading[1].ShipperID)

	container, err := s.h.Container("TCLU2000008")
	s.Require().NoError(err)
	s.Equal("18200", container.GrossWeight.String())

	result, err = s.h.Import(s.manifest, filepath.Join("testdata", "consolidated.man"), parser.Options{VoyageReference: "RP-2024-08"})
	s.Require().Error(err)
	s.ErrorIs(err, model.ErrBillOfLadingExists)
	s.Equal([]model.ErrorKind{model.ErrorKindDuplicateNaturalKey}, result.ErrorKinds)
}
