// Package viewer is the windowed front end: a GLFW window, the frame loop
// and the key bindings around a session.
package viewer

import (
	"log"
	"time"

	"orrery/internal/graphics/glrender"
	"orrery/internal/input"
	"orrery/internal/profiling"
	"orrery/internal/session"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const slowFrame = 16 * time.Millisecond

type App struct {
	window   *glfw.Window
	input    *input.Manager
	renderer *glrender.Renderer
	session  *session.Session

	fpsLimiter     *FPSLimiter
	lastTime       time.Time
	logProfiling   bool
	lastStatsPrint time.Time
}

// NewApp wires a session to window. The window's GL context must be current.
func NewApp(window *glfw.Window, s *session.Session) (*App, error) {
	fbWidth, fbHeight := window.GetFramebufferSize()
	r, err := glrender.New(fbWidth, fbHeight)
	if err != nil {
		return nil, err
	}

	a := &App{
		window:     window,
		input:      input.NewManager(),
		renderer:   r,
		session:    s,
		fpsLimiter: NewFPSLimiter(),
		lastTime:   time.Now(),
	}
	s.Resize(fbWidth, fbHeight)
	a.setupCallbacks()

	return a, nil
}

func (a *App) setupCallbacks() {
	a.input.Attach(a.window)

	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		a.renderer.SetViewport(fbWidth, fbHeight)
		a.session.Resize(fbWidth, fbHeight)
	})

	a.window.SetRefreshCallback(func(w *glfw.Window) {
		a.session.Frame(a.renderer)
		a.window.SwapBuffers()
	})
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	glfw.PollEvents()
	a.handleInput()

	a.session.Step(dt)
	a.session.Frame(a.renderer)

	a.window.SwapBuffers()

	if d := time.Since(startTick); d > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}
	if a.logProfiling && time.Since(a.lastStatsPrint) > time.Second {
		a.lastStatsPrint = time.Now()
		st := a.session.Camera.Stats()
		log.Printf("Frame %d: %d full, %d billboards, %d lights; %s",
			a.session.Frames, st.Full, st.Billboards, st.Lights, profiling.TopN(3))
	}

	a.input.PostUpdate()
	a.fpsLimiter.Wait(a.session.Paused)
}

func (a *App) handleInput() {
	im := a.input

	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionPause) {
		a.session.Paused = !a.session.Paused
	}
	if im.JustPressed(input.ActionWarpUp) {
		a.session.ScaleWarp(session.WarpStep)
	}
	if im.JustPressed(input.ActionWarpDown) {
		a.session.ScaleWarp(1 / session.WarpStep)
	}
	if im.JustPressed(input.ActionZoomIn) {
		a.session.Zoom(-session.ZoomStep)
	}
	if im.JustPressed(input.ActionZoomOut) {
		a.session.Zoom(session.ZoomStep)
	}
	if im.JustPressed(input.ActionEclipse) {
		a.session.Eclipse()
	}
	if im.JustPressed(input.ActionDeepSpace) {
		a.session.ToggleDeepSpace()
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		a.logProfiling = !a.logProfiling
	}
}

// Dispose releases GL resources. The context must still be current.
func (a *App) Dispose() {
	a.renderer.Dispose()
}
