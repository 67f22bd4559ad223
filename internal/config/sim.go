package config

import "sync"

// SimSettings holds simulation and service configuration
type SimSettings struct {
	mu          sync.RWMutex
	timeWarp    float64
	metricsAddr string
}

var globalSimSettings = &SimSettings{
	timeWarp: 1000, // simulated seconds per real second
}

// GetTimeWarp returns the simulation speed multiplier
func GetTimeWarp() float64 {
	globalSimSettings.mu.RLock()
	defer globalSimSettings.mu.RUnlock()
	return globalSimSettings.timeWarp
}

// SetTimeWarp sets the simulation speed multiplier, clamped to [0, 1e7]
func SetTimeWarp(warp float64) {
	globalSimSettings.mu.Lock()
	defer globalSimSettings.mu.Unlock()
	if warp < 0 {
		warp = 0
	}
	if warp > 1e7 {
		warp = 1e7
	}
	globalSimSettings.timeWarp = warp
}

// GetMetricsAddr returns the metrics listen address; empty disables it
func GetMetricsAddr() string {
	globalSimSettings.mu.RLock()
	defer globalSimSettings.mu.RUnlock()
	return globalSimSettings.metricsAddr
}

// SetMetricsAddr sets the metrics listen address
func SetMetricsAddr(addr string) {
	globalSimSettings.mu.Lock()
	defer globalSimSettings.mu.Unlock()
	globalSimSettings.metricsAddr = addr
}
