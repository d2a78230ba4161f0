package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotransect/internal/geom"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gotransect.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
spacing = 5.0
length = 80.0

[meander]
reach = 500.0
`)
	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5.0, f.Spacing)
	assert.Equal(t, 80.0, f.Length)
	assert.Equal(t, Default().Resolution, f.Resolution, "unset keys keep defaults")
	assert.Equal(t, 500.0, f.Meander.Reach)
	assert.Equal(t, Default().Meander.Amplitude, f.Meander.Amplitude)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := writeConfig(t, "resolution = -1.0\n")
	_, err := Load(path)
	require.ErrorIs(t, err, geom.ErrInvalidParameter)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}
