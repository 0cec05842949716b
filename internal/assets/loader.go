package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/webp"
)

// DefaultMaxSize keeps textures within what every GL driver accepts.
const DefaultMaxSize = 4096

// Decoded is the result of one background decode. Environment results carry Ambient
// instead of Image.
type Decoded struct {
	Key   string
	Path  string
	Image image.Image
	Err   error

	Environment bool
	Ambient     [4]float32
}

// Loader decodes images off the frame loop. GPU uploads must happen on the thread that
// owns the GL context, so results are queued and handed back through Poll.
type Loader struct {
	// MaxSize caps the longer side of decoded images; larger images are scaled down.
	// Zero disables scaling.
	MaxSize int

	root    string
	results chan Decoded
	pending int
}

// NewLoader returns a loader resolving relative paths against root.
func NewLoader(root string) *Loader {
	return &Loader{root: root, results: make(chan Decoded, 32), MaxSize: DefaultMaxSize}
}

// Resolve returns the on-disk path for a catalog-relative path.
func (l *Loader) Resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(l.root, filepath.FromSlash(rel))
}

// Load starts decoding rel in the background. The result is reported under key.
func (l *Loader) Load(ctx context.Context, key, rel string) {
	l.pending++
	path := l.Resolve(rel)
	maxSize := l.MaxSize
	go func() {
		d := Decoded{Key: key, Path: path}
		if err := ctx.Err(); err != nil {
			d.Err = err
		} else {
			d.Image, d.Err = Decode(path)
		}
		if d.Err == nil {
			d.Image = FitMax(d.Image, maxSize)
		}
		l.results <- d
	}()
}

// Poll hands every finished decode to fn without blocking. Call once per frame.
func (l *Loader) Poll(fn func(Decoded)) {
	for {
		select {
		case d := <-l.results:
			l.pending--
			fn(d)
		default:
			return
		}
	}
}

// Pending returns the number of loads not yet delivered through Poll.
func (l *Loader) Pending() int {
	return l.pending
}

// Decode reads an image file in any registered format (webp, png, jpeg). The header is
// sniffed first so that, e.g., an HTML error page saved under a .webp name is reported
// as such.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()
	head := make([]byte, 262)
	n, _ := io.ReadFull(f, head)
	if !filetype.IsImage(head[:n]) {
		return nil, fmt.Errorf("assets: %s: not an image", filepath.Base(path))
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// FitMax scales img so that its longer side is at most maxSize, keeping the aspect ratio.
// Smaller images and maxSize <= 0 return img unchanged.
func FitMax(img image.Image, maxSize int) image.Image {
	sz := img.Bounds().Size()
	if maxSize <= 0 || (sz.X <= maxSize && sz.Y <= maxSize) {
		return img
	}
	w, h := maxSize, maxSize
	if sz.X >= sz.Y {
		h = max(1, sz.Y*maxSize/sz.X)
	} else {
		w = max(1, sz.X*maxSize/sz.Y)
	}
	return transform.Resize(img, w, h, transform.Linear)
}
