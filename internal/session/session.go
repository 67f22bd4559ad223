// Package session ties a demo system, a camera and optional metrics
// together and runs one visibility pass per frame. It has no window or GL
// dependency; the viewer and the terminal inspector both drive it.
package session

import (
	"time"

	"orrery/internal/camera"
	"orrery/internal/config"
	"orrery/internal/metrics"
	"orrery/internal/profiling"
	"orrery/internal/system"
)

const (
	// WarpStep is the factor one warp up/down keypress applies.
	WarpStep = 10.0
	// ZoomStep is the field of view change, in degrees, of one zoom keypress.
	ZoomStep = 5.0
)

type Session struct {
	System  *system.System
	Context *camera.Context
	Camera  *camera.Camera

	// Metrics is optional.
	Metrics *metrics.Collector

	Paused    bool
	DeepSpace bool
	Frames    int

	lastUpdate time.Duration
}

// New builds a session around the Sol demo, or deep space when deepSpace is
// set, sized from the render configuration.
func New(deepSpace bool) *Session {
	width, height := config.GetScreenSize()
	near, far := config.GetClipPlanes()

	s := &Session{
		Context: camera.NewContext(float64(width), float64(height), config.GetFieldOfView(), near, far),
	}
	s.load(deepSpace)
	return s
}

func (s *Session) load(deepSpace bool) {
	if deepSpace {
		s.System = system.NewDeepSpace()
	} else {
		s.System = system.NewSol()
	}
	s.DeepSpace = deepSpace
	s.Camera = camera.New(s.Context, s.System.Space)
}

// ToggleDeepSpace swaps between the Sol demo and empty space.
func (s *Session) ToggleDeepSpace() {
	s.load(!s.DeepSpace)
}

// Eclipse moves the moon in front of the star, if there is one.
func (s *Session) Eclipse() {
	s.System.Eclipse()
}

// ScaleWarp multiplies the time warp by f, within the configured bounds.
func (s *Session) ScaleWarp(f float64) {
	config.SetTimeWarp(config.GetTimeWarp() * f)
}

// Zoom narrows (negative delta) or widens the field of view.
func (s *Session) Zoom(deltaDeg float64) {
	config.SetFieldOfView(config.GetFieldOfView() + deltaDeg)
}

// Resize follows a viewport change.
func (s *Session) Resize(width, height int) {
	config.SetScreenSize(width, height)
	w, h := config.GetScreenSize()
	s.Context.Resize(float64(w), float64(h))
}

// Step advances the simulation by realDt wall-clock seconds scaled by the
// time warp. A paused session does not move.
func (s *Session) Step(realDt float64) {
	defer profiling.Track("session.Step")()

	if !s.Paused && realDt > 0 {
		s.System.Advance(realDt * config.GetTimeWarp())
	}
	// one simulation step per rendered frame, so render the latest state
	s.System.Space.UpdateInterpTransforms(1)
}

// Frame runs the camera for one frame from the ship and, if r is not nil,
// draws the result. It returns the frame's statistics.
func (s *Session) Frame(r camera.Renderer) camera.FrameStats {
	if fov := config.GetFieldOfView(); fov != s.Context.FieldOfView() {
		s.Context.SetFieldOfView(fov)
	}

	frame, pos := s.System.Viewpoint()
	s.Context.SetCameraFrame(frame)
	s.Context.SetCameraPosition(pos)

	s.Context.BeginFrame()
	defer s.Context.EndFrame()

	start := time.Now()
	s.Camera.Update()
	s.lastUpdate = time.Since(start)

	stats := s.Camera.Stats()
	if s.Metrics != nil {
		s.Metrics.Observe(stats, s.lastUpdate)
	}

	if r != nil {
		s.Context.ApplyDrawTransforms(r)
		s.Camera.Draw(r, s.System.Ship)
	}

	s.Frames++
	return stats
}

// LastUpdate is how long the last Camera.Update took.
func (s *Session) LastUpdate() time.Duration {
	return s.lastUpdate
}
