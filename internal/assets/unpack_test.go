package assets

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pack.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, body := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestUnpack(t *testing.T) {
	zipPath := writeZip(t, map[string]string{
		"earth/map.webp":    "earth",
		"stars.webp":        "stars",
		"saturn/rings.webp": "rings",
	})
	dest := filepath.Join(t.TempDir(), "assets")

	got, err := Unpack(zipPath, dest)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	data, err := os.ReadFile(filepath.Join(dest, "earth", "map.webp"))
	require.NoError(t, err)
	assert.Equal(t, "earth", string(data))
	assert.FileExists(t, filepath.Join(dest, "saturn", "rings.webp"))
}

func TestUnpackMissingZip(t *testing.T) {
	_, err := Unpack(filepath.Join(t.TempDir(), "none.zip"), t.TempDir())
	assert.Error(t, err)
}
