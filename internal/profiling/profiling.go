package profiling

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU profiler. Totals accumulate until ResetFrame.

type entry struct {
	total time.Duration
	calls int
}

var (
	mu     sync.Mutex
	frame  = make(map[string]*entry)
	nowFor = time.Now
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("camera.Update")()
func Track(name string) func() {
	start := nowFor()
	return func() {
		d := nowFor().Sub(start)
		mu.Lock()
		e := frame[name]
		if e == nil {
			e = &entry{}
			frame[name] = e
		}
		e.total += d
		e.calls++
		mu.Unlock()
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frame)
	mu.Unlock()
}

// Snapshot returns a copy of current per-frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frame))
	for k, e := range frame {
		out[k] = e.total
	}
	return out
}

// Calls returns how many times name was tracked this frame.
func Calls(name string) int {
	mu.Lock()
	defer mu.Unlock()
	if e := frame[name]; e != nil {
		return e.calls
	}
	return 0
}

// SumWithPrefix totals every tracked name starting with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, e := range frame {
		if strings.HasPrefix(k, prefix) {
			sum += e.total
		}
	}
	return sum
}

// TopN formats top N durations from the current frame totals.
// Example: "camera.Update:4.2ms, camera.CalcShadows:2.1ms(x12)"
func TopN(n int) string {
	mu.Lock()
	type pair struct {
		name  string
		dur   time.Duration
		calls int
	}
	list := make([]pair, 0, len(frame))
	for k, e := range frame {
		list = append(list, pair{name: k, dur: e.total, calls: e.calls})
	}
	mu.Unlock()

	slices.SortFunc(list, func(a, b pair) int {
		if a.dur != b.dur {
			if a.dur > b.dur {
				return -1
			}
			return 1
		}
		return strings.Compare(a.name, b.name)
	})
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		s := p.name + ":" + formatMs(p.dur)
		if p.calls > 1 {
			s += "(x" + strconv.Itoa(p.calls) + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := math.Round(float64(d.Microseconds())/100) / 10
	return strconv.FormatFloat(ms, 'f', -1, 64) + "ms"
}
