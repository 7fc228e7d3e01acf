package registry_test

import (
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/parsertest"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/registry"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/reference"
	mock_parser "github.com/Mardelherny-hub/app-cargas-sub007/test/mock/manifest/parser"
)

type RegistryTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	first  *mock_parser.MockParser
	second *mock_parser.MockParser
	reg    *registry.Registry
}

func TestRegistry(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.first = mock_parser.NewMockParser(s.ctrl)
	s.second = mock_parser.NewMockParser(s.ctrl)
	s.first.EXPECT().Info().Return(parser.FormatInfo{Name: "first", Extensions: []string{".TXT"}}).AnyTimes()
	s.second.EXPECT().Info().Return(parser.FormatInfo{Name: "second", Extensions: []string{".txt", ".dat"}}).AnyTimes()
	s.reg = registry.New(s.first, s.second)
}

func (s *RegistryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RegistryTestSuite) TestPriority() {
	path := parsertest.WriteFile(s.T(), "a.dat", []byte("content"))

	gomock.InOrder(
		s.first.EXPECT().CanParse(path).Return(true),
	)
	p, err := s.reg.Select(path)
	s.Require().NoError(err)
	s.Equal("first", p.Info().Name)

	gomock.InOrder(
		s.first.EXPECT().CanParse(path).Return(false),
		s.second.EXPECT().CanParse(path).Return(true),
	)
	p, err = s.reg.Select(path)
	s.Require().NoError(err)
	s.Equal("second", p.Info().Name)
}

func (s *RegistryTestSuite) TestExtensionFallback() {
	path := parsertest.WriteFile(s.T(), "a.TXT", []byte("content"))
	s.first.EXPECT().CanParse(path).Return(false)
	s.second.EXPECT().CanParse(path).Return(false)

	p, err := s.reg.Select(path)
	s.Require().NoError(err)
	s.Equal("first", p.Info().Name)
	s.Equal([]string{"first", "second"}, s.reg.Candidates(".txt"))
}

func (s *RegistryTestSuite) TestNoParser() {
	path := parsertest.WriteFile(s.T(), "a.bin", []byte("content"))
	s.first.EXPECT().CanParse(path).Return(false)
	s.second.EXPECT().CanParse(path).Return(false)

	_, err := s.reg.Select(path)
	s.ErrorIs(err, model.ErrNoParserFound)
	s.Equal("a.bin (extension .bin): no parser can handle the file", err.Error())

	noExt := parsertest.WriteFile(s.T(), "README", []byte("content"))
	s.first.EXPECT().CanParse(noExt).Return(false)
	s.second.EXPECT().CanParse(noExt).Return(false)
	_, err = s.reg.Select(noExt)
	s.Equal("README (extension (none)): no parser can handle the file", err.Error())
}

func (s *RegistryTestSuite) TestPanickingPredicate() {
	path := parsertest.WriteFile(s.T(), "a.dat", []byte("content"))
	s.first.EXPECT().CanParse(path).DoAndReturn(func(string) bool { panic("bad input") })
	s.second.EXPECT().CanParse(path).Return(true)

	p, err := s.reg.Select(path)
	s.Require().NoError(err)
	s.Equal("second", p.Info().Name)
}

func (s *RegistryTestSuite) TestEmptyAndMissingFiles() {
	_, err := s.reg.Select(parsertest.WriteFile(s.T(), "empty.txt", nil))
	s.ErrorIs(err, model.ErrEmptyFile)
	s.Equal(model.ErrorKindDetection, model.Classify(err))

	_, err = s.reg.Select(filepath.Join(s.T().TempDir(), "missing.txt"))
	s.ErrorIs(err, model.ErrDetectionFailure)

	_, err = s.reg.Select(s.T().TempDir())
	s.ErrorIs(err, model.ErrDetectionFailure)
}

func (s *RegistryTestSuite) TestLookup() {
	p, err := s.reg.Lookup(" SECOND ")
	s.Require().NoError(err)
	s.Equal("second", p.Info().Name)

	_, err = s.reg.Lookup("third")
	s.ErrorIs(err, model.ErrUnknownFormat)
	s.Equal("third (known: first, second): unknown format", err.Error())
}

func (s *RegistryTestSuite) TestDuplicateName() {
	s.Panics(func() { registry.New(s.first, s.first) })
}

func TestDefault(t *testing.T) {
	reg := registry.Default(reference.Default(), registry.Config{})
	fixture := func(format, name string) string {
		return filepath.Join("..", format, "testdata", name)
	}

	cases := []struct {
		path   string
		format string
	}{
		{fixture("edi", "scenario_a.edi"), "cuscar"},
		{fixture("xmlenvelope", "three_bills.xml"), "xml_envelope"},
		{fixture("xmlbill", "bill.xml"), "xml_bill"},
		{fixture("marker", "bls.mbl"), "marker_bl"},
		{fixture("marker", "consolidated.man"), "marker_manifest"},
		{fixture("delimited", "lines.csv"), "csv_lines"},
		// Too few keywords: the extension decides.
		{fixture("delimited", "plain.csv"), "csv_lines"},
	}
	for _, c := range cases {
		t.Run(filepath.Base(c.path), func(t *testing.T) {
			p, err := reg.Select(c.path)
			require.NoError(t, err)
			assert.Equal(t, c.format, p.Info().Name)
		})
	}

	assert.Equal(t, []string{"cuscar", "xml_envelope", "xml_bill", "marker_bl", "marker_manifest", "xlsx_consolidated", "xlsx_convoy", "csv_lines"}, reg.Names())
	assert.Equal(t, []string{"cuscar", "csv_lines"}, reg.Candidates(".TXT"))
}
