package normalize_test

import (
	"testing"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeight(t *testing.T) {
	w, err := normalize.Weight("1500", "KGM", normalize.Auto)
	require.NoError(t, err)
	assert.Equal(t, "1500", w.String())

	w, err = normalize.Weight("12,5", "TNE", normalize.Auto)
	require.NoError(t, err)
	assert.Equal(t, "12500", w.String())

	w, err = normalize.Weight("12,5 TN", "", normalize.Auto)
	require.NoError(t, err)
	assert.Equal(t, "12500", w.String())

	w, err = normalize.Weight("100", "LBR", normalize.Auto)
	require.NoError(t, err)
	assert.Equal(t, "45.359", w.String())

	_, err = normalize.Weight("100", "OZ", normalize.Auto)
	assert.Error(t, err)
}

func TestWeightIsIdempotent(t *testing.T) {
	cases := []struct {
		name   string
		style  normalize.Style
		inputs []string
	}{
		{"auto", normalize.Auto, []string{"21.345,75 KG", "1,234", "12,5 TN", "100 LBS", "18500"}},
		{"comma", normalize.CommaDecimal, []string{"1.234,5", "21.800,00 KGS", "25.5", "18500.75", "12,5 TN", "100 LBS", "1.250"}},
		{"dot", normalize.DotDecimal, []string{"1,234.5", "21,800 KGS", "25.5", "12.5 TN", "100 LBS"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, input := range c.inputs {
				first, err := normalize.Weight(input, "", c.style)
				require.NoError(t, err, input)
				second, err := normalize.Weight(first.String(), "", c.style)
				require.NoError(t, err, input)
				assert.True(t, first.Equal(second), "%s: %s != %s", input, first, second)
			}
		})
	}
}

func TestWeightCommaDecimalKeepsDecimalPoint(t *testing.T) {
	w, err := normalize.Weight("25.5", "", normalize.CommaDecimal)
	require.NoError(t, err)
	assert.Equal(t, "25.5", w.String())

	w, err = normalize.Weight("1.234,5", "", normalize.CommaDecimal)
	require.NoError(t, err)
	assert.Equal(t, "1234.5", w.String())
	w, err = normalize.Weight(w.String(), "", normalize.CommaDecimal)
	require.NoError(t, err)
	assert.Equal(t, "1234.5", w.String())
}
