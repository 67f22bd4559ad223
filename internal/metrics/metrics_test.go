package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orrery/internal/camera"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserve(t *testing.T) {
	m := NewCollector()

	stats := camera.FrameStats{
		Considered: 10,
		Excluded:   1,
		Culled:     2,
		Hidden:     3,
		Full:       1,
		Billboards: 3,
		Lights:     2,
	}
	m.Observe(stats, 2*time.Millisecond)
	m.Observe(stats, 4*time.Millisecond)

	if got := testutil.ToFloat64(m.drawList.WithLabelValues("full")); got != 1 {
		t.Errorf("full = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.drawList.WithLabelValues("billboard")); got != 3 {
		t.Errorf("billboard = %v, want 3", got)
	}
	// rejections accumulate across frames
	tests := []struct {
		reason string
		want   float64
	}{
		{"excluded", 2},
		{"frustum", 4},
		{"hidden", 6},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(m.rejected.WithLabelValues(tt.reason)); got != tt.want {
			t.Errorf("rejected{%s} = %v, want %v", tt.reason, got, tt.want)
		}
	}
	if got := testutil.ToFloat64(m.activeLights); got != 2 {
		t.Errorf("lights = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.frames); got != 2 {
		t.Errorf("frames = %v, want 2", got)
	}

	if n := testutil.CollectAndCount(m.updateDuration); n != 1 {
		t.Errorf("histogram series = %d, want 1", n)
	}
}

func TestRegistryExposition(t *testing.T) {
	m := NewCollector()
	m.Observe(camera.FrameStats{Full: 4, Lights: 1}, time.Millisecond)

	expected := `
# HELP orrery_active_lights Lights active in the last frame
# TYPE orrery_active_lights gauge
orrery_active_lights 1
# HELP orrery_frames_total Frames observed
# TYPE orrery_frames_total counter
orrery_frames_total 1
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected),
		"orrery_active_lights", "orrery_frames_total")
	if err != nil {
		t.Error(err)
	}

	// independent collectors do not share state
	if n, _ := testutil.GatherAndCount(NewCollector().Registry(), "orrery_frames_total"); n != 1 {
		t.Errorf("fresh collector series = %d", n)
	}
	if got := testutil.ToFloat64(NewCollector().frames); got != 0 {
		t.Errorf("fresh collector frames = %v", got)
	}
}

func TestHandler(t *testing.T) {
	m := NewCollector()
	m.Observe(camera.FrameStats{Billboards: 7}, time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if !strings.Contains(string(body), `orrery_draw_list_bodies{class="billboard"} 7`) {
		t.Errorf("billboard gauge missing from exposition:\n%s", body)
	}
}

func TestServeStopsWithContext(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	m := NewCollector()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/metrics"
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestServeBadAddress(t *testing.T) {
	m := NewCollector()
	if err := m.Serve(context.Background(), "256.0.0.1:bad"); err == nil {
		t.Error("expected a listen error")
	}
}
