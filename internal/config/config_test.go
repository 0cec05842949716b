package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadInvalidReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "tour.json")
	want := Default()
	want.Windowed = true
	want.ShowFPS = true
	want.Font = "Inter"
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"show_fps": true}`), 0644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.True(t, p.ShowFPS)
	assert.Equal(t, "assets", p.AssetDir)
	assert.Equal(t, 1280, p.Width)
}

func TestDotenvAndOverrides(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TOUR_ASSETS=/srv/tour\nTOUR_WINDOWED=true\n"), 0644))

	t.Setenv(EnvAssets, "")
	t.Setenv(EnvWindowed, "")
	t.Setenv(EnvShowFPS, "")
	os.Unsetenv(EnvAssets)
	os.Unsetenv(EnvWindowed)
	require.NoError(t, LoadEnv(envFile))
	require.NoError(t, LoadEnv(filepath.Join(dir, "missing.env")))

	p, err := ApplyEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, "/srv/tour", p.AssetDir)
	assert.True(t, p.Windowed)
	assert.False(t, p.ShowFPS)
}

func TestApplyEnvBadBool(t *testing.T) {
	t.Setenv(EnvShowFPS, "sometimes")
	t.Setenv(EnvWindowed, "")
	p, err := ApplyEnv(Default())
	assert.Error(t, err)
	assert.False(t, p.ShowFPS)
}

func TestOverlay(t *testing.T) {
	base := Default()
	base.Windowed = true
	base.Font = "Inter"

	got, err := Overlay(base, Prefs{AssetDir: "/srv/tour", ShowFPS: true})
	require.NoError(t, err)
	assert.Equal(t, "/srv/tour", got.AssetDir)
	assert.True(t, got.ShowFPS)
	assert.True(t, got.Windowed, "false in the overlay must not clear")
	assert.Equal(t, "Inter", got.Font)
	assert.Equal(t, 1280, got.Width)
}
