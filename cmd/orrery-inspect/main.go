// Command orrery-inspect shows, in the terminal, what the renderer would draw
// from the demo ship each frame: classes, sizes and eclipse shading.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xlab/closer"

	"orrery/internal/config"
	"orrery/internal/metrics"
	"orrery/internal/session"
	"orrery/internal/ui"
)

func main() {
	width, height := config.GetScreenSize()
	fov := flag.Float64("fov", config.GetFieldOfView(), "Vertical field of view in degrees")
	flag.IntVar(&width, "width", width, "Virtual screen width in pixels")
	flag.IntVar(&height, "height", height, "Virtual screen height in pixels")
	warp := flag.Float64("warp", config.GetTimeWarp(), "Simulated seconds per real second")
	metricsAddr := flag.String("metrics", "", "Serve Prometheus metrics on this address (e.g. :9109)")
	deepSpace := flag.Bool("deep-space", false, "Start in empty space instead of Sol")
	flag.Parse()

	config.SetFieldOfView(*fov)
	config.SetScreenSize(width, height)
	config.SetTimeWarp(*warp)
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

	// keep log output off the alternate screen
	log.SetOutput(os.Stderr)

	p := tea.NewProgram(ui.New(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running inspector: %v\n", err)
		closer.Exit(1)
	}
}
