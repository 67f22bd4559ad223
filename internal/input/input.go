// Package input maps GLFW key events to viewer actions with per-frame edge
// detection.
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical viewer command, not a physical key.
type Action int

const (
	ActionWarpUp Action = iota
	ActionWarpDown
	ActionZoomIn
	ActionZoomOut
	ActionEclipse
	ActionDeepSpace
	ActionPause
	ActionToggleProfiling
	ActionQuit
	ActionCount // sentinel for array sizing
)

var actionNames = [ActionCount]string{
	ActionWarpUp:          "warp up",
	ActionWarpDown:        "warp down",
	ActionZoomIn:          "zoom in",
	ActionZoomOut:         "zoom out",
	ActionEclipse:         "eclipse",
	ActionDeepSpace:       "deep space",
	ActionPause:           "pause",
	ActionToggleProfiling: "toggle profiling",
	ActionQuit:            "quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Manager tracks which actions are held and which changed this frame.
// Key events may arrive from GLFW callbacks while the frame loop reads.
type Manager struct {
	mu sync.RWMutex

	bindings map[glfw.Key][]Action

	held         [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewManager creates a manager with the default bindings.
func NewManager() *Manager {
	m := &Manager{bindings: make(map[glfw.Key][]Action)}

	m.Bind(glfw.KeyEqual, ActionWarpUp)
	m.Bind(glfw.KeyKPAdd, ActionWarpUp)
	m.Bind(glfw.KeyMinus, ActionWarpDown)
	m.Bind(glfw.KeyKPSubtract, ActionWarpDown)
	m.Bind(glfw.KeyLeftBracket, ActionZoomOut)
	m.Bind(glfw.KeyRightBracket, ActionZoomIn)
	m.Bind(glfw.KeyE, ActionEclipse)
	m.Bind(glfw.KeyD, ActionDeepSpace)
	m.Bind(glfw.KeySpace, ActionPause)
	m.Bind(glfw.KeyP, ActionToggleProfiling)
	m.Bind(glfw.KeyEscape, ActionQuit)

	return m
}

// Bind adds an action to key. A key can trigger several actions and an
// action can have several keys.
func (m *Manager) Bind(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.bindings[key] = append(m.bindings[key], action)
}

func (m *Manager) Unbind(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.bindings, key)
}

// HandleKeyEvent records a key event. Repeats count as held but do not
// raise a new press edge.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	actions, ok := m.bindings[key]
	if !ok {
		return
	}

	down := action == glfw.Press || action == glfw.Repeat
	for _, a := range actions {
		if down && !m.held[a] {
			m.justPressed[a] = true
		}
		if !down && m.held[a] {
			m.justReleased[a] = true
		}
		m.held[a] = down
	}
}

// Attach routes window's key events to m.
func (m *Manager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
}

// PostUpdate clears the edge flags; call it once at the end of every frame.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.justPressed[:])
	clear(m.justReleased[:])
}

func (m *Manager) IsActive(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.held[a]
}

func (m *Manager) JustPressed(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justPressed[a]
}

func (m *Manager) JustReleased(a Action) bool {
	if a < 0 || a >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justReleased[a]
}
