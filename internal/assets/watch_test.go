package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	css := filepath.Join(dir, "tour.css")
	require.NoError(t, os.WriteFile(css, []byte(".head {}"), 0644))

	fw, err := WatchFile(css)
	require.NoError(t, err)
	defer fw.Close()
	assert.False(t, fw.Changed())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(css, []byte(".head { color: #fff; }"), 0644))

	assert.Eventually(t, fw.Changed, 3*time.Second, 10*time.Millisecond)
}

func TestWatchFileMissingDir(t *testing.T) {
	_, err := WatchFile(filepath.Join(t.TempDir(), "nope", "tour.css"))
	assert.Error(t, err)
}
