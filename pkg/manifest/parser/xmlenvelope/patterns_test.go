package xmlenvelope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/xmlenvelope"
)

func TestTaxID(t *testing.T) {
	assert.Equal(t, "30-71234567-8", xmlenvelope.TaxID("Exportadora SA CUIT: 30-71234567-8 Av Corrientes"))
	assert.Equal(t, "30712345678", xmlenvelope.TaxID("Exportadora SA 30712345678"))
	assert.Equal(t, "80012345-6", xmlenvelope.TaxID("RUC 80012345-6"))
	assert.Equal(t, "4567890-1", xmlenvelope.TaxID("Comercial Sur 4567890-1"))
	assert.Equal(t, "211234560019", xmlenvelope.TaxID("Montevideo 211234560019"))
	assert.Equal(t, "", xmlenvelope.TaxID("Ruta 9 km 300"))
}

func TestCommodityCode(t *testing.T) {
	assert.Equal(t, "8708.99.90", xmlenvelope.CommodityCode("AUTOPARTES NCM: 8708.99.90"))
	assert.Equal(t, "1201.90", xmlenvelope.CommodityCode("SOJA HS CODE 1201.90"))
	assert.Equal(t, "1507", xmlenvelope.CommodityCode("ACEITE HS:1507"))
	assert.Equal(t, "4011.10.00", xmlenvelope.CommodityCode("NEUMATICOS 4011.10.00"))
	assert.Equal(t, "0202.30", xmlenvelope.CommodityCode("CARNE 0202.30 CONGELADA"))
	assert.Equal(t, "", xmlenvelope.CommodityCode("CARGA GENERAL"))
}
