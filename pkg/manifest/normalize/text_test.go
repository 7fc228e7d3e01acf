package normalize_test

import (
	"testing"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	assert.Equal(t, "SOJA EN GRANO", normalize.Text("  SOJA \n\tEN   GRANO "))
	assert.Equal(t, "ACME SA", normalize.Upper("acme sa"))
}

func TestContainerNumber(t *testing.T) {
	assert.Equal(t, "CSQU3054383", normalize.ContainerNumber("csqu 305438-3"))

	shape, check := normalize.ValidContainerNumber("CSQU3054383")
	assert.True(t, shape)
	assert.True(t, check)

	shape, check = normalize.ValidContainerNumber("CSQU3054384")
	assert.True(t, shape)
	assert.False(t, check)

	shape, _ = normalize.ValidContainerNumber("CSQ3054383")
	assert.False(t, shape)
}
