package tour

import (
	"context"
	"fmt"
	"path/filepath"

	"planet-tour/internal/assets"
	"planet-tour/internal/caption"
	"planet-tour/internal/config"
	"planet-tour/internal/debug"
	"planet-tour/internal/download"
	"planet-tour/internal/entrance"
	"planet-tour/internal/fonts"
	"planet-tour/internal/graphics"
	"planet-tour/internal/logger"
	"planet-tour/internal/nav"
	"planet-tour/internal/planets"
	"planet-tour/internal/render"
	"planet-tour/internal/scene"
	"planet-tour/internal/stargen"
	"planet-tour/internal/ui"
)

const (
	windowTitle = "Planet Tour"
	navTitle    = "Solar System"
	envKey      = "environment"
)

// App wires the tour together. Everything except the environment download runs on the
// frame loop goroutine.
type App struct {
	prefs config.Prefs
	log   *logger.Logger

	catalog  planets.Catalog
	scene    *scene.Scene
	caption  *caption.Caption
	nav      *nav.Controller
	entrance *entrance.Sequencer

	loader   *assets.Loader
	renderer *render.Renderer
	overlay  *ui.Engine
	menu     *ui.Menu
	navTitle *caption.Block
	debug    *debug.Debug

	envReady chan string
	cssPath  string
	cssWatch *assets.FileWatcher
	started  bool
	cancel   context.CancelFunc
}

// New loads the catalog named by prefs (the built-in one when empty) and assembles the
// scene and controllers. No window is opened yet.
func New(prefs config.Prefs, log *logger.Logger) (*App, error) {
	cat := planets.Default()
	if prefs.Catalog != "" {
		loaded, err := planets.Load(prefs.Catalog)
		if err != nil {
			return nil, fmt.Errorf("tour: %w", err)
		}
		cat = loaded
	}

	a := &App{
		prefs:    prefs,
		log:      log,
		catalog:  cat,
		scene:    scene.Build(cat, scene.DefaultLayout()),
		caption:  caption.New(cat),
		loader:   assets.NewLoader(prefs.AssetDir),
		renderer: render.New(),
		overlay:  ui.New(),
		menu:     ui.NewMenu(cat.Names()),
		navTitle: &caption.Block{Text: navTitle},
		debug:    debug.New(),
		envReady: make(chan string, 1),
	}
	a.nav = nav.New(a.scene, &a.scene.Group.Position, a.caption, nil)
	a.nav.OnTransition = func(from, to int) {
		a.log.Logf("tour: %s -> %s", cat.Planets[from].Name, cat.Planets[to].Name)
	}
	a.debug.SetShowFPS(prefs.ShowFPS)

	a.overlay.AddNode(ui.NewNode("nav-title", "", a.navTitle))
	a.overlay.AddNode(ui.NewNode("head", "", a.caption.Heading))
	a.overlay.AddNode(ui.NewNode("desc", "", a.caption.Description))
	a.menu.AddTo(a.overlay)
	a.menu.Highlight(0, a.overlay)
	return a, nil
}

// Run opens the window and blocks until it is closed.
func (a *App) Run(ctx context.Context) {
	ctx, a.cancel = context.WithCancel(ctx)
	defer a.cancel()

	opts := graphics.Options{
		Title:    windowTitle,
		Windowed: a.prefs.Windowed,
		Width:    int32(a.prefs.Width),
		Height:   int32(a.prefs.Height),
	}
	graphics.Run(opts, func(dt float32) { a.update(ctx, dt) }, a.draw, a.resize)
	if a.cssWatch != nil {
		a.cssWatch.Close()
	}
	a.renderer.Close()
}

// start runs on the first frame, once the GL context exists.
func (a *App) start(ctx context.Context) {
	a.started = true
	a.loadStyle()
	// Textures are keyed by their catalog path, which is what the renderer looks up.
	for _, sp := range a.scene.Spheres {
		a.loader.Load(ctx, sp.Texture, sp.Texture)
	}
	if a.scene.Ring != nil {
		a.loader.Load(ctx, a.scene.Ring.Texture, a.scene.Ring.Texture)
	}
	a.loader.Load(ctx, a.scene.Starfield.Texture, a.scene.Starfield.Texture)
	go a.fetchEnvironment(ctx)

	a.entrance = entrance.Start(a.scene, entrance.ChromeTargets{
		Menu:        a.menu.Block,
		NavTitle:    a.navTitle,
		Heading:     a.caption.Heading,
		Description: a.caption.Description,
	})
	a.log.Logf("tour: started with %d planets", a.scene.Count())
}

func (a *App) loadStyle() {
	a.cssPath = filepath.Join(a.prefs.AssetDir, "ui", "tour.css")
	if err := a.overlay.LoadCSS(a.cssPath); err == nil {
		a.log.Logf("tour: stylesheet %s", a.cssPath)
		if w, err := assets.WatchFile(a.cssPath); err == nil {
			a.cssWatch = w
		}
	}
	if a.prefs.Font == "" {
		return
	}
	path, err := fonts.Find(fonts.BaseDirs(a.prefs.AssetDir), a.prefs.Font)
	if err != nil {
		a.log.Logf("tour: font %q: %v", a.prefs.Font, err)
		return
	}
	if err := a.overlay.LoadFont(path); err != nil {
		a.log.Logf("tour: font %s: %v", path, err)
		return
	}
	a.debug.SetFont(a.overlay.Font())
}

// fetchEnvironment downloads the environment map (if not cached) and hands the local
// path to the frame loop, which queues it on the loader for averaging.
func (a *App) fetchEnvironment(ctx context.Context) {
	env := a.catalog.Environment
	url := env.URL
	if a.prefs.EnvironmentURL != "" {
		url = a.prefs.EnvironmentURL
	}
	file := env.File
	if file == "" {
		file = filepath.Join("env", download.FileName(url))
	}
	dest := a.loader.Resolve(file)
	if url == "" && !download.Cached(dest) {
		return
	}
	path, err := download.New().Fetch(ctx, url, dest)
	if err != nil {
		a.log.Logf("tour: environment: %v", err)
		return
	}
	a.envReady <- path
}

// poll uploads finished decodes and applies the environment ambient.
func (a *App) poll(ctx context.Context) {
	a.loader.Poll(func(d assets.Decoded) {
		if d.Environment {
			if d.Err != nil {
				a.log.Logf("tour: environment %s: %v", d.Path, d.Err)
				return
			}
			a.renderer.SetAmbient(d.Ambient)
			a.log.Logf("tour: environment %s", d.Path)
			return
		}
		if d.Err != nil {
			a.log.Logf("tour: texture %s: %v", d.Path, d.Err)
			if d.Key == a.scene.Starfield.Texture {
				a.renderer.Upload(d.Key, stargen.Generate(stargen.DefaultOptions()), false)
				a.log.Log("tour: using generated starfield")
			}
			return
		}
		repeat := a.scene.Ring != nil && d.Key == a.scene.Ring.Texture
		a.renderer.Upload(d.Key, d.Image, repeat)
	})
	select {
	case path := <-a.envReady:
		a.loader.LoadEnvironment(ctx, envKey, path)
	default:
	}
}

func (a *App) update(ctx context.Context, dt float32) {
	if !a.started {
		a.start(ctx)
	}
	a.poll(ctx)
	if a.cssWatch != nil && a.cssWatch.Changed() {
		if err := a.overlay.LoadCSS(a.cssPath); err != nil {
			a.log.Logf("tour: reload stylesheet: %v", err)
		}
	}
	a.handleInput()
	a.entrance.Update(dt)
	a.nav.Update(dt)
	a.caption.Update(dt)
	a.scene.Update(dt)
	a.menu.Highlight(a.nav.Index(), a.overlay)
	if a.prefs.ShowFPS {
		a.debug.SetStatus(a.status())
	}
}

func (a *App) status() string {
	s := a.catalog.Planets[a.nav.Index()].Name
	if a.nav.Transitioning() {
		s += " (moving)"
	}
	if n := a.loader.Pending(); n > 0 {
		s += fmt.Sprintf(" loading %d", n)
	}
	return s
}

func (a *App) draw() {
	a.renderer.Draw(a.scene)
	a.overlay.Draw()
	a.debug.Draw()
}

// resize relayouts the overlay. raylib derives the 3D projection aspect from the
// framebuffer on every BeginMode3D, so the renderer needs no notice.
func (a *App) resize(w, h int32) {
	a.overlay.Invalidate()
}
