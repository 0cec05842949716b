package ui

import (
	_ "embed"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"planet-tour/internal/ui/style"
)

//go:embed tour.css
var defaultCSS string

// Engine holds the stylesheet and nodes and draws them with raylib in node order.
// Resolved styles are cached and recomputed only when the sheet, the nodes or the
// window size change.
type Engine struct {
	sheet        *style.Stylesheet
	nodes        []*Node
	cachedStyles []style.Computed
	cacheValid   bool
	font         rl.Font
}

// New creates an engine using the built-in tour stylesheet.
func New() *Engine {
	return &Engine{sheet: style.Parse(defaultCSS)}
}

// LoadCSS replaces the stylesheet with the file at path.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.sheet = style.Parse(string(data))
	e.cacheValid = false
	return nil
}

// LoadFont loads a TTF/OTF font for text. On failure the engine keeps raylib's default font.
// Call after the window exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// Font returns the loaded font (zero value when using the default).
func (e *Engine) Font() rl.Font {
	return e.font
}

// AddNode appends a node. Nodes are drawn in order.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
	e.cacheValid = false
}

// Invalidate forces styles and bounds to be recomputed on the next Draw (e.g. after a resize).
func (e *Engine) Invalidate() {
	e.cacheValid = false
}

// Style returns the resolved style for a class/id pair.
func (e *Engine) Style(class, id string) style.Computed {
	return style.Resolve(e.sheet.Match(class, id))
}

func (e *Engine) resolve() {
	if e.cacheValid {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	e.cachedStyles = make([]style.Computed, len(e.nodes))
	for i, n := range e.nodes {
		st := e.Style(n.Class, n.ID)
		e.cachedStyles[i] = st
		x, y := st.Left, st.Top
		if st.LeftPct >= 0 {
			x = (screenW - st.Width) * st.LeftPct / 100
		}
		if st.TopPct >= 0 {
			y = (screenH - st.Height) * st.TopPct / 100
		}
		y += int32(n.Stack) * (st.Height + st.Gap)
		n.Bounds = rl.NewRectangle(float32(x), float32(y), float32(st.Width), float32(st.Height))
	}
	e.cacheValid = true
}

// measure returns the width of text at size with the engine font.
func (e *Engine) measure(text string, size int32) float32 {
	if e.font.Texture.ID != 0 {
		return rl.MeasureTextEx(e.font, text, float32(size), 1).X
	}
	return float32(rl.MeasureText(text, size))
}

func (e *Engine) drawText(text string, x, y float32, size int32, c rl.Color) {
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, text, rl.NewVector2(x, y), float32(size), 1, c)
		return
	}
	rl.DrawText(text, int32(x), int32(y), size, c)
}

// Draw draws every node: background, border, then (wrapped) text, all faded by the
// node's opacity and shifted by its vertical offset.
func (e *Engine) Draw() {
	e.resolve()
	for i, n := range e.nodes {
		alpha := n.opacity()
		if alpha <= 0 {
			continue
		}
		st := e.cachedStyles[i]
		b := n.Bounds
		b.Y += n.offsetY()

		if st.Background.A > 0 {
			rl.DrawRectangleRec(b, rl.Fade(st.Background, alpha))
		}
		if st.HasBorder && b.Width > 0 && b.Height > 0 {
			rl.DrawRectangleLinesEx(b, 1, rl.Fade(st.Border, alpha))
		}
		text := n.text()
		if text == "" {
			continue
		}
		pad := float32(st.Padding)
		lineH := float32(st.FontSize) * 1.25
		lines := style.Wrap(text, b.Width-2*pad, func(s string) float32 { return e.measure(s, st.FontSize) })
		for li, line := range lines {
			x := b.X + pad
			if st.Center && b.Width > 0 {
				x = b.X + (b.Width-e.measure(line, st.FontSize))/2
			}
			e.drawText(line, x, b.Y+pad+float32(li)*lineH, st.FontSize, rl.Fade(st.Color, alpha))
		}
	}
}
