package planets

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// MaxRingSegments is the most segments a ring mesh can have with 16-bit indices.
const MaxRingSegments = 32767

// RingDef describes the flat annulus drawn around one planet (e.g. Saturn).
type RingDef struct {
	Texture     string  `yaml:"texture"`
	InnerRadius float32 `yaml:"inner_radius"`
	OuterRadius float32 `yaml:"outer_radius"`
	Segments    int     `yaml:"segments"`
}

// Planet is one stop of the tour. Index is its position along the row (0 = first).
// RotationRate is in radians per second about the planet's vertical axis; negative spins backwards.
type Planet struct {
	Index        int      `yaml:"-"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Texture      string   `yaml:"texture"`
	RotationRate float32  `yaml:"rotation_rate"`
	Ring         *RingDef `yaml:"ring,omitempty"`
}

// Starfield is the textured background sphere seen from the inside.
type Starfield struct {
	Texture      string  `yaml:"texture"`
	Radius       float32 `yaml:"radius"`
	Opacity      float32 `yaml:"opacity"`
	RotationRate float32 `yaml:"rotation_rate"`
}

// Environment is the equirectangular image used for ambient lighting.
// URL is fetched once and cached under the assets directory at File.
type Environment struct {
	URL  string `yaml:"url"`
	File string `yaml:"file"`
}

// Catalog is the full, immutable description of the tour content.
type Catalog struct {
	Planets     []Planet    `yaml:"planets"`
	Starfield   Starfield   `yaml:"starfield"`
	Environment Environment `yaml:"environment"`
}

// Default returns the embedded eight-planet catalog.
func Default() Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic("planets: embedded catalog: " + err.Error())
	}
	return c
}

// Load reads a catalog from a YAML file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("planets: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, assigns indices in file order and validates the result.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("planets: %w", err)
	}
	for i := range c.Planets {
		c.Planets[i].Index = i
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// FromParallel builds planets from aligned sequences (names[i] goes with descriptions[i], ...).
// Sequences of different length are rejected rather than silently mismatching captions.
func FromParallel(names, descriptions, textures []string, rates []float32) ([]Planet, error) {
	n := len(names)
	if len(descriptions) != n || len(textures) != n || len(rates) != n {
		return nil, fmt.Errorf("planets: misaligned sequences: %d names, %d descriptions, %d textures, %d rates",
			n, len(descriptions), len(textures), len(rates))
	}
	out := make([]Planet, n)
	for i := range out {
		out[i] = Planet{
			Index:        i,
			Name:         names[i],
			Description:  descriptions[i],
			Texture:      textures[i],
			RotationRate: rates[i],
		}
	}
	return out, nil
}

// Validate checks that the catalog can drive a tour.
func (c Catalog) Validate() error {
	if len(c.Planets) == 0 {
		return fmt.Errorf("planets: catalog has no planets")
	}
	rings := 0
	for i, p := range c.Planets {
		if p.Name == "" {
			return fmt.Errorf("planets: planet %d has no name", i)
		}
		if p.Texture == "" {
			return fmt.Errorf("planets: %s has no texture", p.Name)
		}
		if p.Ring != nil {
			rings++
			if p.Ring.InnerRadius <= 0 || p.Ring.OuterRadius <= p.Ring.InnerRadius {
				return fmt.Errorf("planets: %s ring radii %.2f..%.2f", p.Name, p.Ring.InnerRadius, p.Ring.OuterRadius)
			}
			if p.Ring.Segments > MaxRingSegments {
				return fmt.Errorf("planets: %s ring has %d segments, at most %d", p.Name, p.Ring.Segments, MaxRingSegments)
			}
		}
	}
	if rings > 1 {
		return fmt.Errorf("planets: %d rings defined, at most one is supported", rings)
	}
	return nil
}

// Count returns the number of planets (the valid index range is [0, Count()-1]).
func (c Catalog) Count() int {
	return len(c.Planets)
}

// RingIndex returns the index of the planet carrying the ring, or -1.
func (c Catalog) RingIndex() int {
	for i, p := range c.Planets {
		if p.Ring != nil {
			return i
		}
	}
	return -1
}

// Names returns the display names in tour order.
func (c Catalog) Names() []string {
	out := make([]string, len(c.Planets))
	for i, p := range c.Planets {
		out[i] = p.Name
	}
	return out
}
