package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
)

func fixture(format, name string) string {
	return filepath.Join("..", "..", "pkg", "manifest", "parser", format, "testdata", name)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, StorageBackendPostgres, cfg.Storage)
	assert.Equal(t, "PY", cfg.DefaultCountry)

	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("MANIFEST_COMPANY", "company-9")
	require.NoError(t, os.WriteFile(path, []byte(`
storage: memory
actor:
  company_id: {{ .MANIFEST_COMPANY }}
  user_id: importer
default_country: ar
detection:
  csv_min_score: 9
kafka:
  brokers: ["localhost:9092"]
  topic: imports
`), 0o600))
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, StorageBackendMemory, cfg.Storage)
	assert.Equal(t, "company-9", cfg.Actor.CompanyID)
	assert.Equal(t, "ar", cfg.DefaultCountry)
	assert.Equal(t, 9, cfg.Detection.CSVMinScore)
	assert.True(t, cfg.Kafka.Enabled())
}

func TestDryRunImport(t *testing.T) {
	out := &bytes.Buffer{}
	app := App{stdout: out}

	cli := CLI{Config: filepath.Join(t.TempDir(), "missing.yaml")}
	cli.Import = ImportCmd{File: fixture("edi", "scenario_a.edi"), DryRun: true, Company: "company-1", User: "user-1"}
	require.Equal(t, 0, app.runImport(cli))

	var result model.ParseResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "cuscar", result.Format)
	assert.Len(t, result.Containers, 2)

	out.Reset()
	cli.Import = ImportCmd{File: fixture("marker", "scenario_b.mbl"), DryRun: true, Company: "company-1", User: "user-1"}
	require.Equal(t, 1, app.runImport(cli))
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, []model.ErrorKind{model.ErrorKindStructuralValidation}, result.ErrorKinds)
}

func TestImportWithoutActor(t *testing.T) {
	app := App{stdout: &bytes.Buffer{}}
	cli := CLI{Config: filepath.Join(t.TempDir(), "missing.yaml")}
	cli.Import = ImportCmd{File: fixture("edi", "scenario_a.edi"), DryRun: true}
	assert.Equal(t, 128, app.runImport(cli))
}

func TestFormatsAndDetect(t *testing.T) {
	out := &bytes.Buffer{}
	app := App{stdout: out}
	cli := CLI{Config: filepath.Join(t.TempDir(), "missing.yaml")}

	require.Equal(t, 0, app.runFormats(cli))
	var formats []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &formats))
	require.Len(t, formats, 8)
	assert.Equal(t, "cuscar", formats[0]["name"])
	assert.Equal(t, "abort", formats[0]["duplicate_policy"])
	assert.NotEmpty(t, formats[0]["default_config"])

	out.Reset()
	cli.Detect.File = fixture("xmlenvelope", "three_bills.xml")
	require.Equal(t, 0, app.runDetect(cli))
	var detected struct {
		Format struct {
			Name string `json:"name"`
		} `json:"format"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &detected))
	assert.Equal(t, "xml_envelope", detected.Format.Name)
}
