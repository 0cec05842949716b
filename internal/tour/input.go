package tour

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput forwards the wheel and menu clicks to navigation. raylib reports wheel-up
// as positive, the opposite sign of a browser deltaY, so it is negated.
func (a *App) handleInput() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.nav.Scroll(-wheel)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		p := rl.GetMousePosition()
		if i, ok := a.menu.Hit(p.X, p.Y); ok {
			a.nav.Select(i)
		}
	}
}
