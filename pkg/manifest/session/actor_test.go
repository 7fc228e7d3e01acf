package session_test

import (
	"testing"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	actor, err := session.NewActor(" company-1 ", "user-1", "py")
	require.NoError(t, err)
	assert.Equal(t, session.Actor{CompanyID: "company-1", UserID: "user-1", HomeCountry: "PY"}, actor)

	_, err = session.NewActor("", "user-1", "PY")
	assert.ErrorIs(t, err, model.ErrInvalidParameter)

	_, err = session.NewActor("company-1", "user-1", "PRY")
	assert.ErrorIs(t, err, model.ErrInvalidParameter)
}
