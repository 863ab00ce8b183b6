package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Project.Root)
	assert.Equal(t, "droidlens.db", cfg.Database.Path)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "droidlens.yaml")
	data := `
project:
  root: /src/app
  ignore:
    - generated
database:
  path: /tmp/out.db
lifecycle:
  extra_methods:
    Activity:
      - "void onVendorResume()"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/src/app", cfg.Project.Root)
	assert.Equal(t, []string{"generated"}, cfg.Project.Ignore)
	assert.Equal(t, "/tmp/out.db", cfg.Database.Path)
	assert.Equal(t, []string{"void onVendorResume()"}, cfg.Lifecycle.ExtraMethods["Activity"])
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DROIDLENS_ROOT", "/env/root")
	t.Setenv("DROIDLENS_DB", "/env/db.sqlite")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/env/root", cfg.Project.Root)
	assert.Equal(t, "/env/db.sqlite", cfg.Database.Path)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "droidlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project: [broken"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
