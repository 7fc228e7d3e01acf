package model_test

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
)

func TestDateJson(t *testing.T) {
	type Node struct {
		Departure model.Date `json:"departure"`
		Arrival   model.Date `json:"arrival"`
	}

	node := Node{Departure: model.NewDate(time.Date(2024, 3, 5, 23, 30, 0, 0, time.FixedZone("PYT", -3*3600)))}
	raw, err := json.Marshal(node)
	require.NoError(t, err)
	assert.JSONEq(t, `{"departure":"2024-03-05","arrival":null}`, string(raw))

	decoded := Node{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "2024-03-05", decoded.Departure.String())
	assert.True(t, decoded.Arrival.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"departure":"05/03/2024"}`), &decoded))
}

func TestParseDate(t *testing.T) {
	d, err := model.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d.Time())

	d, err = model.ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = model.ParseDate("2023-02-29")
	assert.Error(t, err)

	assert.True(t, model.NewDate(time.Time{}).IsZero())
}
