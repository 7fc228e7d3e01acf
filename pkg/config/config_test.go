package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/config"
)

type testConfig struct {
	Database struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		User string `yaml:"user"`
	} `yaml:"database"`
	Kafka struct {
		Topic string `yaml:"topic"`
	} `yaml:"kafka"`
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("MANIFEST_DB_HOST", "db.internal")
	t.Setenv("MANIFEST_TOPIC", "manifest-imports")

	path := writeConfig(t, `
database:
  host: {{ .MANIFEST_DB_HOST }}
  port: 5432
  user: ${MANIFEST_DB_USER:-importer}
kafka:
  topic: ${MANIFEST_TOPIC}
`)
	var cfg testConfig
	found, err := config.Load(path, &cfg)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "importer", cfg.Database.User)
	assert.Equal(t, "manifest-imports", cfg.Kafka.Topic)
}

func TestLoadMissingFile(t *testing.T) {
	cfg := testConfig{}
	cfg.Database.Port = 5432

	found, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), &cfg)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "database:\n  hostname: db.internal\n")

	var cfg testConfig
	found, err := config.Load(path, &cfg)
	assert.True(t, found)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hostname")
}
