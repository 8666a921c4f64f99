package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":5000", c.ListenAddr)
	assert.Equal(t, "dataset", c.DatasetDir)
	assert.Equal(t, "static", c.StaticDir)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 0, c.MaxRows)
}

func TestSaveThenLoadWithEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	c := &Global{ListenAddr: ":9000", DatasetDir: "/data", StaticDir: "/srv/static", LogLevel: "debug", LogFormat: "json", MaxRows: 50}
	require.NoError(t, Save(c, path))

	t.Setenv("LIKELENS_DATASET_DIR", "/override")
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", got.ListenAddr)
	assert.Equal(t, "/override", got.DatasetDir)
	assert.Equal(t, "json", got.LogFormat)
	assert.Equal(t, 50, got.MaxRows)
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LIKELENS_STATIC_DIR=/from/dotenv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("LIKELENS_STATIC_DIR") })

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv", c.StaticDir)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSet(t *testing.T) {
	c := &Global{}
	require.NoError(t, c.Set("max_rows", "10"))
	assert.Equal(t, 10, c.MaxRows)
	require.NoError(t, c.Set("csv_delimiter", ";"))
	assert.Error(t, c.Set("csv_delimiter", "|"))
	assert.Error(t, c.Set("log_format", "xml"))
	assert.Error(t, c.Set("max_rows", "-1"))
	assert.Error(t, c.Set("bogus", "1"))
}

func TestDatasetOptions(t *testing.T) {
	c := &Global{CSVDelimiter: "tab", DecimalSeparator: "comma", ThousandsSeparator: "space", MaxRows: 7, SheetName: "Data"}
	opt, err := c.DatasetOptions()
	require.NoError(t, err)
	assert.Equal(t, '\t', opt.Delimiter)
	assert.Equal(t, ',', opt.DecimalSeparator)
	assert.Equal(t, ' ', opt.ThousandsSeparator)
	assert.Equal(t, 7, opt.MaxRows)
	assert.Equal(t, "Data", opt.SheetName)
	assert.Equal(t, 1, opt.SheetIndex)

	_, err = (&Global{DecimalSeparator: "x"}).DatasetOptions()
	assert.Error(t, err)
}
