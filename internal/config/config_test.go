package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5*time.Second, cfg.Delay)
	assert.Equal(t, []string{"_shared"}, cfg.ReservedSlugs)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
data_file: site/data.js
delay: 250ms
count: 3
reserved_slugs: [_shared, admin]
index_path: ""
`))
	require.NoError(t, err)

	assert.Equal(t, "site/data.js", cfg.DataFile)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, []string{"_shared", "admin"}, cfg.ReservedSlugs)
	assert.Empty(t, cfg.IndexPath)
	assert.Equal(t, Default().OutputDir, cfg.OutputDir)
	assert.Equal(t, Default().MaxAttempts, cfg.MaxAttempts)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("data_fille: x.js\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_fille")
}

func TestParse_BadDuration(t *testing.T) {
	_, err := Parse([]byte("delay: soon\n"))
	assert.Error(t, err)
}

func TestParse_ValidationErrors(t *testing.T) {
	_, err := Parse([]byte(`
data_file: ""
count: 0
delay: -1s
reserved_slugs: [""]
`))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["data_file"])
	assert.Equal(t, "must be at least 1", verr.Fields["count"])
	assert.Contains(t, verr.Fields, "delay")
	assert.Contains(t, verr.Fields, "reserved_slugs[0]")
	assert.Contains(t, err.Error(), "invalid config: count must be at least 1; data_file is required")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: public\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "public", cfg.OutputDir)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOptional_MissingUsesDefaults(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOptional_InvalidStillFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: -5\n"), 0644))

	_, err := LoadOptional(path)
	assert.Error(t, err)
}
