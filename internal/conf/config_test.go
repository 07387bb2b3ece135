package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	settings, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 1280, settings.Window.Width)
	assert.Equal(t, 800, settings.Window.Height)
	assert.Equal(t, "surveyor", settings.Window.Title)
	assert.InDelta(t, 10.0, settings.Picking.PointTolerancePx, 1e-10)
	assert.InDelta(t, 0.5, settings.Linking.ProximityThreshold, 1e-10)
	assert.InDelta(t, 100.0, settings.Overlay.MaxLabelDistance, 1e-10)
	assert.Equal(t, 250*time.Millisecond, settings.Overlay.FallbackInterval)
	assert.NotEmpty(t, settings.Palette)
	assert.True(t, settings.Watch)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "surveyor.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestLoadOverridesFromFile(t *testing.T) {
	dir := writeConfig(t, `
window:
  width: 1920
  height: 1080
linking:
  proximitythreshold: 1.5
overlay:
  fallbackinterval: 500ms
watch: false
`)

	settings, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 1920, settings.Window.Width)
	assert.Equal(t, 1080, settings.Window.Height)
	assert.InDelta(t, 1.5, settings.Linking.ProximityThreshold, 1e-10)
	assert.Equal(t, 500*time.Millisecond, settings.Overlay.FallbackInterval)
	assert.False(t, settings.Watch)

	// Unset keys keep their defaults
	assert.Equal(t, "surveyor", settings.Window.Title)
	assert.InDelta(t, 10.0, settings.Picking.PointTolerancePx, 1e-10)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"zero window":        "window:\n  width: 0\n",
		"negative threshold": "linking:\n  proximitythreshold: -1\n",
		"empty palette":      "palette: []\n",
		"zero interval":      "overlay:\n  fallbackinterval: 0s\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "window: [not a map\n"))
	assert.Error(t, err)
}
