package stargen

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// Options controls procedural starfield generation. The output is an equirectangular
// image (Width = 2*Height works best) used when no star texture is available.
// Density is the chance that a pixel holds a star; Nebula scales the fractal noise haze.
type Options struct {
	Width   int
	Height  int
	Seed    int32
	Density float32
	Nebula  float32

	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultOptions returns a 1024x512 sky with sparse stars and a faint blue haze.
func DefaultOptions() Options {
	return Options{
		Width:      1024,
		Height:     512,
		Seed:       7,
		Density:    0.004,
		Nebula:     0.18,
		Octaves:    4,
		Frequency:  0.01,
		Lacunarity: 2.0,
		Gain:       0.5,
	}
}

// Generate renders the sky. The same options always produce the same image.
func Generate(opts Options) *image.RGBA {
	if opts.Width <= 0 || opts.Height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	if opts.Octaves <= 0 {
		opts.Octaves = 1
	}
	if opts.Frequency <= 0 {
		opts.Frequency = 0.01
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = 2
	}
	if opts.Gain <= 0 {
		opts.Gain = 0.5
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			fx, fy := float32(x), float32(y)
			haze := fractalNoise(fx*opts.Frequency, fy*opts.Frequency, opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			haze = clamp01((haze-0.45)*2) * opts.Nebula

			r, g, b := haze*0.55, haze*0.6, haze
			if s := hash2D(int32(x), int32(y), opts.Seed+101); s < opts.Density {
				// Brightness and tint come from independent hashes so bright stars are not all blue.
				v := 0.5 + 0.5*hash2D(int32(x), int32(y), opts.Seed+202)
				tint := hash2D(int32(x), int32(y), opts.Seed+303)
				r = math32.Max(r, v*(0.85+0.15*tint))
				g = math32.Max(g, v*0.9)
				b = math32.Max(b, v*(1-0.15*tint))
			}
			img.SetRGBA(x, y, color.RGBA{toByte(r), toByte(g), toByte(b), 255})
		}
	}
	return img
}

// fractalNoise layers octaves of smooth value noise. Output is in [0,1].
func fractalNoise(x, y float32, seed int32, octaves int, lacunarity, gain float32) float32 {
	var sum, maxAmp float32
	amplitude, freq := float32(1), float32(1)
	for i := 0; i < octaves; i++ {
		sum += valueNoise(x*freq, y*freq, seed+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise interpolates lattice hashes with smoothstep. Output is in [0,1].
func valueNoise(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	sx := smoothStep(x - float32(x0))
	sy := smoothStep(y - float32(y0))

	top := lerp(hash2D(x0, y0, seed), hash2D(x0+1, y0, seed), sx)
	bottom := lerp(hash2D(x0, y0+1, seed), hash2D(x0+1, y0+1, seed), sx)
	return lerp(top, bottom, sy)
}

// hash2D maps lattice coordinates to a deterministic value in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	return float32(n&0x7fffffff) / 2147483647.0
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func clamp01(v float32) float32 {
	return math32.Min(1, math32.Max(0, v))
}

func toByte(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
