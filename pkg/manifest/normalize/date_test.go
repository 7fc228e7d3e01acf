package normalize_test

import (
	"testing"
	"time"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	expected := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{"2024-03-05", "05/03/2024", "5/3/2024", "05-03-2024", "05.03.2024", "20240305", "45356", "45356.0", "05/03/24"} {
		d, err := normalize.Date(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, d, input)
	}

	d, err := normalize.Date("202403051430")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC), d)

	for _, input := range []string{"", "tomorrow", "31/02/2024"} {
		_, err := normalize.Date(input)
		assert.ErrorIs(t, err, normalize.ErrNotADate, input)
	}
}

func TestEDIFACTDate(t *testing.T) {
	d, err := normalize.EDIFACTDate("240305", "101")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), d)

	_, err = normalize.EDIFACTDate("20240305", "999")
	assert.ErrorIs(t, err, normalize.ErrNotADate)
}
