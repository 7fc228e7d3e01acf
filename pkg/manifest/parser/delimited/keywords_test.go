package delimited

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/reference"
)

var testKeywords = reference.CSVKeywords{
	Version:      1,
	Carriers:     []string{"MSC", "HAMBURG SUD"},
	Terminals:    []string{"TERPORT"},
	Routes:       []string{"PYASU", "ARBUE"},
	Destinations: []string{"VILLETA", "CIUDAD DEL ESTE"},
}

func TestScoreCountsDistinctWholeWords(t *testing.T) {
	m := newMatcher(testKeywords)

	score, hits := m.Score("msc;BL1;ARBUE\nMSC;BL2;PYASU;terport\nMSCU1234566")
	assert.Equal(t, 3+2+1+1, score)
	assert.ElementsMatch(t, []string{"MSC", "TERPORT", "PYASU", "ARBUE"}, hits)

	score, _ = m.Score("MSCU1234566;XTERPORT")
	assert.Zero(t, score)

	score, _ = m.Score("HAMBURG SUD,BL9")
	assert.Equal(t, 3, score)
}

func TestCarrierAndDestination(t *testing.T) {
	m := newMatcher(testKeywords)
	assert.Equal(t, "HAMBURG SUD", m.Carrier("flete hamburg sud prepagado"))
	assert.Equal(t, "", m.Carrier("sin naviera"))
	assert.Equal(t, "CIUDAD DEL ESTE", m.Destination("entrega en Ciudad del Este"))
}

func TestSignals(t *testing.T) {
	m := newMatcher(testKeywords)

	s := m.Signals("Carne congelada -18 °C, certificado SENASA y HALAL")
	require.NotNil(t, s.Temperature)
	assert.Equal(t, "-18", s.Temperature.String())
	assert.True(t, s.Reefer)
	assert.Equal(t, []string{"SENASA", "HALAL"}, s.Certifications)

	s = m.Signals("FRUTA REEFER DESTINO VILLETA")
	assert.Nil(t, s.Temperature)
	assert.True(t, s.Reefer)
	assert.Equal(t, "VILLETA", s.Destination)

	s = m.Signals("20 CAJAS 40HC")
	assert.Nil(t, s.Temperature)
	assert.False(t, s.Reefer)
	assert.Empty(t, s.Certifications)
}

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, ';', detectDelimiter("A;B;C"))
	assert.Equal(t, ',', detectDelimiter("A,B,C;D"))
	assert.Equal(t, '\t', detectDelimiter("A\tB"))
}
