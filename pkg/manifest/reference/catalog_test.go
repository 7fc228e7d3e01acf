package reference_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := reference.Default()

	port, ok := c.Port("pyasu")
	require.True(t, ok)
	assert.Equal(t, "PY", port.Country)

	assert.True(t, c.CountryKnown("ar"))
	assert.False(t, c.CountryKnown("XX"))

	ct, ok := c.ContainerType("40 HC")
	require.True(t, ok)
	assert.Equal(t, "45G1", ct.Code)
	assert.Equal(t, 40, ct.Size)

	ct, ok = c.ContainerType("45R1")
	require.True(t, ok)
	assert.True(t, ct.Reefer)

	assert.Equal(t, "BG", c.PackagingType("bolsas"))
	assert.Equal(t, "PX", c.PackagingType("PALLETS DE MADERA"))
	assert.Equal(t, reference.DefaultPackagingType, c.PackagingType("ANFORA"))

	assert.Equal(t, "GRAIN", c.CargoType("1201.90.00"))
	assert.Equal(t, "HAZARDOUS", c.CargoType("2710.19"))
	assert.Equal(t, "CHEMICAL", c.CargoType("2815.11"))
	assert.Equal(t, reference.DefaultCargoType, c.CargoType("9999"))
	assert.Equal(t, reference.DefaultCargoType, c.CargoType(""))

	assert.Equal(t, 3, c.CSVKeywords().Version)
	assert.Contains(t, c.CSVKeywords().Carriers, "MAERSK")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
countries: [PY]
ports:
  - {code: pyasu, name: Asuncion, country: PY, city: Asuncion}
csv_keywords:
  version: 9
  carriers: [ACME LINE]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := reference.LoadFile(path)
	require.NoError(t, err)
	_, ok := c.Port("PYASU")
	assert.True(t, ok)
	assert.False(t, c.CountryKnown("AR"))
	assert.Equal(t, 9, c.CSVKeywords().Version)

	require.NoError(t, os.WriteFile(path, []byte("unknown_key: 1\n"), 0o600))
	_, err = reference.LoadFile(path)
	assert.Error(t, err)
}

func TestPortByName(t *testing.T) {
	c := reference.Default()

	port, ok := c.PortByName("buenos aires")
	require.True(t, ok)
	assert.Equal(t, "ARBUE", port.Code)

	_, ok = c.PortByName("Atlantis")
	assert.False(t, ok)
}
