package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Estimating Schedule", cfg.Import.Sheet)
	assert.Equal(t, 3, cfg.Import.HeaderRow)
	assert.Equal(t, "commitmentDate", cfg.Import.DateField)
	assert.Equal(t, "127.0.0.1:8470", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.DB.Path)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SCHEDTRACK_DB_PATH", "/tmp/test.db")
	t.Setenv("SCHEDTRACK_IMPORT_SHEET", "Other Sheet")
	t.Setenv("SCHEDTRACK_IMPORT_HEADER_ROW", "5")
	t.Setenv("SCHEDTRACK_DATE_FIELD", "mob")
	t.Setenv("SCHEDTRACK_REMOTE_URL", "http://shared:8470")
	t.Setenv("SCHEDTRACK_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.DB.Path)
	assert.Equal(t, "Other Sheet", cfg.Import.Sheet)
	assert.Equal(t, 5, cfg.Import.HeaderRow)
	assert.Equal(t, "mob", cfg.Import.DateField)
	assert.Equal(t, "http://shared:8470", cfg.Server.RemoteURL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidHeaderRow(t *testing.T) {
	t.Setenv("SCHEDTRACK_IMPORT_HEADER_ROW", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("db:\n  path: /data/sched.db\nimport:\n  sheet: Custom\nserver:\n  addr: 0.0.0.0:9000\n")
	require.NoError(t, os.WriteFile(path, body, 0644))
	t.Setenv("SCHEDTRACK_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/sched.db", cfg.DB.Path)
	assert.Equal(t, "Custom", cfg.Import.Sheet)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, 3, cfg.Import.HeaderRow, "file silence keeps the default")
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0644))
	t.Setenv("SCHEDTRACK_CONFIG_PATH", path)
	t.Setenv("SCHEDTRACK_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("SCHEDTRACK_CONFIG_PATH", "/does/not/exist.yaml")
	_, err := Load()
	assert.Error(t, err)
}
