package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/mdouchement/hdr/codec/rgbe"
)

// AmbientScale keeps the averaged environment from washing out the lit side.
const AmbientScale = 0.8

// maxAmbientSamples bounds the pixels visited by MeanAmbient; larger images are strided.
const maxAmbientSamples = 1 << 20

var radianceMagic = [][]byte{[]byte("#?RADIANCE"), []byte("#?RGBE")}

// LoadEnvironment decodes the environment map at rel in the background and reports its
// mean ambient colour under key. The image itself is dropped once averaged.
func (l *Loader) LoadEnvironment(ctx context.Context, key, rel string) {
	l.pending++
	path := l.Resolve(rel)
	go func() {
		d := Decoded{Key: key, Path: path, Environment: true}
		if err := ctx.Err(); err != nil {
			d.Err = err
		} else if img, err := DecodeEnvironment(path); err != nil {
			d.Err = err
		} else {
			d.Ambient = MeanAmbient(img)
		}
		l.results <- d
	}()
}

// DecodeEnvironment reads a Radiance RGBE (.hdr) file, or any image Decode accepts.
func DecodeEnvironment(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()
	head := make([]byte, 16)
	n, _ := io.ReadFull(f, head)
	if !isRadiance(head[:n]) {
		return Decode(path)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	img, err := rgbe.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func isRadiance(head []byte) bool {
	for _, m := range radianceMagic {
		if bytes.HasPrefix(head, m) {
			return true
		}
	}
	return false
}

// hdrColor is implemented by the pixels of high dynamic range images.
type hdrColor interface {
	HDRRGBA() (r, g, b, a float64)
}

// MeanAmbient averages img into an RGBA ambient term scaled by AmbientScale. HDR
// radiance is averaged linearly and then compressed with x/(1+x); 8-bit images are
// averaged as is.
func MeanAmbient(img image.Image) [4]float32 {
	b := img.Bounds()
	step := 1
	if n := b.Dx() * b.Dy(); n > maxAmbientSamples {
		step = int(math.Ceil(math.Sqrt(float64(n) / maxAmbientSamples)))
	}
	var sum [3]float64
	var count float64
	hdr := false
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			c := img.At(x, y)
			if h, ok := c.(hdrColor); ok {
				hdr = true
				r, g, bl, _ := h.HDRRGBA()
				sum[0] += r
				sum[1] += g
				sum[2] += bl
			} else {
				r, g, bl, _ := c.RGBA()
				sum[0] += float64(r) / 0xffff
				sum[1] += float64(g) / 0xffff
				sum[2] += float64(bl) / 0xffff
			}
			count++
		}
	}
	out := [4]float32{0, 0, 0, 1}
	if count == 0 {
		return out
	}
	for i, s := range sum {
		v := s / count
		if hdr {
			v = v / (1 + v)
		}
		out[i] = float32(v * AmbientScale)
	}
	return out
}
