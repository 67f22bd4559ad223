// Command orrery opens a window onto a small star system and renders it with
// per-frame visibility, billboarding and eclipse shading.
package main

import (
	"context"
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"orrery/internal/config"
	"orrery/internal/metrics"
	"orrery/internal/session"
	"orrery/internal/viewer"
)

func init() {
	// GLFW and GL must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	width, height := config.GetScreenSize()
	fov := flag.Float64("fov", config.GetFieldOfView(), "Vertical field of view in degrees")
	flag.IntVar(&width, "width", width, "Window width in pixels")
	flag.IntVar(&height, "height", height, "Window height in pixels")
	warp := flag.Float64("warp", config.GetTimeWarp(), "Simulated seconds per real second")
	fps := flag.Int("fps", config.GetFPSLimit(), "Frame rate cap, 0 for unlimited")
	metricsAddr := flag.String("metrics", "", "Serve Prometheus metrics on this address (e.g. :9109)")
	deepSpace := flag.Bool("deep-space", false, "Start in empty space instead of Sol")
	flag.Parse()

	config.SetFieldOfView(*fov)
	config.SetScreenSize(width, height)
	config.SetTimeWarp(*warp)
	config.SetFPSLimit(*fps)
	config.SetMetricsAddr(*metricsAddr)

	defer closer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(cancel)

	s := session.New(*deepSpace)

	if addr := config.GetMetricsAddr(); addr != "" {
		s.Metrics = metrics.NewCollector()
		go func() {
			if err := s.Metrics.Serve(ctx, addr); err != nil {
				log.Printf("Metrics disabled: %v", err)
			}
		}()
	}

	if err := glfw.Init(); err != nil {
		closer.Fatalln("glfw init:", err)
	}
	closer.Bind(glfw.Terminate)

	window, err := viewer.SetupWindow("orrery")
	if err != nil {
		closer.Fatalln(err)
	}

	app, err := viewer.NewApp(window, s)
	if err != nil {
		closer.Fatalln(err)
	}

	log.Printf("orrery: %dx%d, fov %g°, warp ×%g", width, height, config.GetFieldOfView(), config.GetTimeWarp())
	app.Run()

	app.Dispose()
	log.Printf("orrery: %d frames", s.Frames)
}
