package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/util"
)

func TestLogJSON(t *testing.T) {
	assert.Equal(t, `{"voyage":"V01","dry_run":true}`, util.LogJSON(struct {
		Voyage string `json:"voyage"`
		DryRun bool   `json:"dry_run"`
	}{"V01", true}))
	assert.Equal(t, "{Ch:<nil>}", util.LogJSON(struct{ Ch chan int }{}))
}
