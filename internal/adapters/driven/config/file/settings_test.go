package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		dir := t.TempDir()

		s, err := LoadSettings(dir)

		require.NoError(t, err)
		assert.Equal(t, defaultRegistryURL, s.RegistryURL)
		assert.Equal(t, defaultDownloadsURL, s.DownloadsURL)
		assert.Equal(t, defaultMaxWidth, s.MaxWidth)
	})

	t.Run("partial file keeps defaults for unset fields", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsName),
			[]byte("max_width = 120\n"), 0600))

		s, err := LoadSettings(dir)

		require.NoError(t, err)
		assert.Equal(t, 120, s.MaxWidth)
		assert.Equal(t, defaultRegistryURL, s.RegistryURL)
	})

	t.Run("unparsable file is an error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsName),
			[]byte("max_width = ["), 0600))

		_, err := LoadSettings(dir)

		assert.Error(t, err)
	})
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := Settings{RegistryURL: "http://localhost:1313/docs.json", MaxWidth: 100}

	require.NoError(t, SaveSettings(dir, in))
	out, err := LoadSettings(dir)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:1313/docs.json", out.RegistryURL)
	assert.Equal(t, 100, out.MaxWidth)
	// Unset field picked up its default on load.
	assert.Equal(t, defaultDownloadsURL, out.DownloadsURL)
}

func TestProgramDir_HonoursEnvOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "home")
	t.Setenv(HomeEnv, dir)

	got, err := ProgramDir()

	require.NoError(t, err)
	assert.Equal(t, dir, got)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
