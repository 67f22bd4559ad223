package config

import "sync"

// RenderSettings holds render configuration
type RenderSettings struct {
	mu        sync.RWMutex
	fov       float64 // vertical, degrees
	width     int
	height    int
	nearPlane float64 // metres
	farPlane  float64 // metres
	fpsLimit  int     // 0 = unlimited
}

var globalRenderSettings = &RenderSettings{
	fov:       60.0,
	width:     1280,
	height:    720,
	nearPlane: 1.0,
	farPlane:  1e12,
	fpsLimit:  60,
}

// GetFieldOfView returns the vertical field of view in degrees
func GetFieldOfView() float64 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fov
}

// SetFieldOfView sets the vertical field of view in degrees
func SetFieldOfView(deg float64) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if deg < 10 {
		deg = 10
	}
	if deg > 120 {
		deg = 120
	}

	globalRenderSettings.fov = deg
}

// GetScreenSize returns the viewport size in pixels
func GetScreenSize() (width, height int) {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.width, globalRenderSettings.height
}

// SetScreenSize sets the viewport size in pixels; each side is at least 1
func SetScreenSize(width, height int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.width = max(1, width)
	globalRenderSettings.height = max(1, height)
}

// GetClipPlanes returns near and far clip distances in metres
func GetClipPlanes() (near, far float64) {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.nearPlane, globalRenderSettings.farPlane
}

// SetClipPlanes sets the clip distances. Invalid pairs are ignored.
func SetClipPlanes(near, far float64) {
	if near <= 0 || far <= near {
		return
	}
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.nearPlane = near
	globalRenderSettings.farPlane = far
}

// GetFPSLimit returns the frame cap; 0 means unlimited
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	globalRenderSettings.fpsLimit = limit
}
