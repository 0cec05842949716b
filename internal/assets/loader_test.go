package assets

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// drain polls until n results arrived or the deadline passes.
func drain(t *testing.T, l *Loader, n int) map[string]Decoded {
	t.Helper()
	got := make(map[string]Decoded)
	deadline := time.Now().Add(5 * time.Second)
	for len(got) < n && time.Now().Before(deadline) {
		l.Poll(func(d Decoded) { got[d.Key] = d })
		time.Sleep(time.Millisecond)
	}
	require.Len(t, got, n)
	return got
}

func TestLoaderDecodesInBackground(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "earth", "map.png"), 4, 2)

	l := NewLoader(root)
	l.Load(context.Background(), "earth", "earth/map.png")
	l.Load(context.Background(), "missing", "nope/none.webp")
	assert.Equal(t, 2, l.Pending())

	got := drain(t, l, 2)
	assert.Equal(t, 0, l.Pending())

	require.NoError(t, got["earth"].Err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), got["earth"].Image.Bounds())
	assert.Error(t, got["missing"].Err)
	assert.Nil(t, got["missing"].Image)
}

func TestLoaderCancelled(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "a.png"), 1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := NewLoader(root)
	l.Load(ctx, "a", "a.png")
	got := drain(t, l, 1)
	assert.ErrorIs(t, got["a"].Err, context.Canceled)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.webp")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))
	_, err := Decode(path)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	l := NewLoader("assets")
	assert.Equal(t, filepath.Join("assets", "saturn", "rings2.webp"), l.Resolve("saturn/rings2.webp"))
	abs := filepath.Join(t.TempDir(), "x.png")
	assert.Equal(t, abs, l.Resolve(abs))
}

func TestFitMax(t *testing.T) {
	wide := image.NewRGBA(image.Rect(0, 0, 400, 100))
	got := FitMax(wide, 200)
	assert.Equal(t, image.Pt(200, 50), got.Bounds().Size())

	tall := image.NewRGBA(image.Rect(0, 0, 10, 300))
	assert.Equal(t, image.Pt(3, 90), FitMax(tall, 90).Bounds().Size())

	assert.Same(t, wide, FitMax(wide, 0))
	assert.Same(t, wide, FitMax(wide, 400))
}

func TestLoaderScalesLargeImages(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "stars.png"), 64, 32)

	l := NewLoader(root)
	l.MaxSize = 16
	l.Load(context.Background(), "stars", "stars.png")
	got := drain(t, l, 1)
	require.NoError(t, got["stars"].Err)
	assert.Equal(t, image.Pt(16, 8), got["stars"].Image.Bounds().Size())
}

func TestDecodeRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.webp")
	require.NoError(t, os.WriteFile(path, []byte("<html>404</html>"), 0644))
	_, err := Decode(path)
	assert.ErrorContains(t, err, "not an image")
}
