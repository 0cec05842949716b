package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"planet-tour/internal/caption"
)

// Menu is the side list of planet names. Its items share one Block so the entrance can
// fade the whole menu in at once.
type Menu struct {
	Block *caption.Block
	panel *Node
	items []*Node
}

// NewMenu creates a menu with one item per name, styled by .left and .planet.
func NewMenu(names []string) *Menu {
	m := &Menu{Block: &caption.Block{}}
	m.panel = NewNode("left", "", m.Block)
	for i, name := range names {
		item := NewNode("planet", "", m.Block)
		item.Text = name
		item.Stack = i
		m.items = append(m.items, item)
	}
	return m
}

// AddTo registers the panel and items with the engine.
func (m *Menu) AddTo(e *Engine) {
	e.AddNode(m.panel)
	for _, it := range m.items {
		e.AddNode(it)
	}
}

// Hit returns the ordinal of the item under (x, y). Nothing is clickable while the menu
// is still invisible.
func (m *Menu) Hit(x, y float32) (int, bool) {
	if m.Block.Opacity <= 0 {
		return 0, false
	}
	p := rl.NewVector2(x, y)
	for i, it := range m.items {
		if rl.CheckCollisionPointRec(p, it.Bounds) {
			return i, true
		}
	}
	return 0, false
}

// Highlight marks the selected item with the .planet-active class.
func (m *Menu) Highlight(index int, e *Engine) {
	for i, it := range m.items {
		class := "planet"
		if i == index {
			class = "planet-active"
		}
		if it.Class != class {
			it.Class = class
			e.Invalidate()
		}
	}
}
