package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configures the window opened by Run.
type Options struct {
	Title    string
	Windowed bool
	Width    int32 // windowed size; ignored when fullscreen
	Height   int32
}

// Run opens the window and drives the main loop. Each frame it calls update with the frame
// delta in seconds, then clears the screen and calls draw. resize (optional) is called once
// after the window opens and again whenever the framebuffer size changes.
// ESC does not quit; close via the window button.
func Run(opts Options, update func(dt float32), draw func(), resize func(w, h int32)) {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagWindowResizable | rl.FlagVsyncHint)
	if !opts.Windowed {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)

	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = 1280, 720
	}
	rl.InitWindow(w, h, opts.Title)
	defer rl.CloseWindow()
	if !opts.Windowed {
		m := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(m), rl.GetMonitorHeight(m))
	}

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	if resize != nil {
		resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	}

	for !rl.WindowShouldClose() {
		if resize != nil && rl.IsWindowResized() {
			resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		}
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
