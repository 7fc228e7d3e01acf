package xmlbill_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/parsertest"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/xmlbill"
)

type BillTestSuite struct {
	suite.Suite
	h      *parsertest.Harness
	parser parser.Parser
}

func TestBill(t *testing.T) {
	suite.Run(t, new(BillTestSuite))
}

func (s *BillTestSuite) SetupTest() {
	s.h = parsertest.New(s.T())
	s.parser = xmlbill.New()
}

func (s *BillTestSuite) TestCanParse() {
	s.True(s.parser.CanParse(filepath.Join("testdata", "bill.xml")))
	s.False(s.parser.CanParse(parsertest.WriteFile(s.T(), "env.xml", []byte("<Manifiesto><Conocimiento><ConocimientoEmbarque/></Conocimiento></Manifiesto>"))))
	s.False(s.parser.CanParse(parsertest.WriteFile(s.T(), "other.xml", []byte("<Invoice/>"))))
}

func (s *BillTestSuite) TestImport() {
	result, err := s.h.Import(s.parser, filepath.Join("testdata", "bill.xml"), parser.Options{})
	s.Require().NoError(err)
	s.Empty(result.Warnings)

	s.Equal("PS-042", result.Voyage.Reference)
	s.Equal(1, result.Stats[model.StatCreatedVessels])
	s.Equal(model.CargoDirectionImport, result.Voyage.Direction)

	s.Require().Len(result.BillsOfLading, 1)
	bill := result.BillsOfLading[0]
	s.Equal("HLCU-BUE-240301", bill.Number)
	s.Equal("37000", bill.GrossWeight.String())
	s.Equal(1140, bill.PackageCount)
	s.Equal("2024-03-08", bill.DischargeDate.String())
	s.Equal(map[string]string{"ncm_codes": "0202.30.00,0206.29.90,3808.91"}, bill.Extra)

	items := s.h.Items(bill.ID)
	s.Require().Len(items, 2)
	s.Equal("0202.30.00", items[0].CommodityCode)
	s.Equal("REFRIGERATED", items[0].CargoTypeCode)
	s.Equal("BX", items[0].PackageTypeCode)
	s.Equal("-20", items[0].TempMin.String())
	s.Equal("HAZARDOUS", items[1].CargoTypeCode)
	s.Equal("DR", items[1].PackageTypeCode)
	s.True(items[1].Dangerous)

	reefer, err := s.h.Container("HLXU1000007")
	s.Require().NoError(err)
	s.Equal("45R1", reefer.ISOType)
	s.True(reefer.Reefer)
	s.Equal("26900", reefer.VGM.String())
	s.Equal([]string{"HL001", "AD-77"}, reefer.Seals)
	s.Equal(reefer.ID, items[0].ContainerID)
}

func (s *BillTestSuite) TestDuplicateBillAborts() {
	_, err := s.h.Import(s.parser, filepath.Join("testdata", "bill.xml"), parser.Options{})
	s.Require().NoError(err)

	result, err := s.h.Import(s.parser, filepath.Join("testdata", "bill.xml"), parser.Options{})
	s.ErrorIs(err, model.ErrBillOfLadingExists)
	s.Equal([]model.ErrorKind{model.ErrorKindDuplicateNaturalKey}, result.ErrorKinds)
}

func (s *BillTestSuite) TestValidation() {
	_, err := s.h.Import(s.parser, filepath.Join("testdata", "invalid.xml"), parser.Options{})
	s.ErrorIs(err, model.ErrStructuralValidation)

	msg := err.Error()
	s.Contains(msg, `line[1]: PesoBruto "doce" is not a number`)
	s.Contains(msg, "Vessel: cannot be blank")
	s.Contains(msg, "Consignee: (Name: cannot be blank.)")
	s.Contains(msg, "line[0] (HLXU1000007): Net: must not exceed the gross weight.")
	s.Contains(msg, "line[1] (): Container: cannot be blank; Gross: must be greater than zero; Tare: must be greater than zero.")

	_, err = s.h.Import(s.parser, parsertest.WriteFile(s.T(), "wrong.xml", []byte("<Manifiesto/>")), parser.Options{})
	s.ErrorIs(err, model.ErrStructuralValidation)
}

func (s *BillTestSuite) TestStrictPorts() {
	result, err := s.h.Import(s.parser, filepath.Join("testdata", "unknown_port.xml"), parser.Options{})
	s.ErrorIs(err, model.ErrPortCountryUnknown)
	s.Equal([]model.ErrorKind{model.ErrorKindReferenceResolution}, result.ErrorKinds)
}
