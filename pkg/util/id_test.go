package util_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/util"
)

func TestNewID(t *testing.T) {
	first := util.NewID()
	second := util.NewID()
	assert.NotEqual(t, first, second)

	raw1, err := base58.Decode(first)
	require.NoError(t, err)
	parsed, err := uuid.FromBytes(raw1)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	raw2, err := base58.Decode(second)
	require.NoError(t, err)
	assert.LessOrEqual(t, bytes.Compare(raw1[:6], raw2[:6]), 0)
}
