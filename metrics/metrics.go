// Package metrics provides metrics-related utilities
// on top of github.com/rcrowley/go-metrics.
//
// Defined metrics:
//
//	asset.derive.ok (counter)
//	asset.derive.failed (counter)
//	asset.derive.elapsed (timer)
//	<func>.elapsed (timer, via RecordElapsed)
package metrics

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"
	"time"

	gometrics "github.com/rcrowley/go-metrics"
)

// Registry holds named metrics.
type Registry = gometrics.Registry

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return gometrics.NewRegistry()
}

// Counter returns the counter with the given name in r,
// creating it if necessary. A nil r means the default registry.
func Counter(r Registry, name string) gometrics.Counter {
	return gometrics.GetOrRegisterCounter(name, r)
}

// Timer returns the timer with the given name in r,
// creating it if necessary. A nil r means the default registry.
func Timer(r Registry, name string) gometrics.Timer {
	return gometrics.GetOrRegisterTimer(name, r)
}

// RecordElapsed records the time since t in the default registry,
// under a timer named after the calling function.
// It is meant to be deferred:
//
//	defer metrics.RecordElapsed(time.Now())
func RecordElapsed(t time.Time) {
	d := time.Since(t)
	Timer(nil, callerName(1)+".elapsed").Update(d)
}

func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	name := runtime.FuncForPC(pc).Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Dump writes one K=V line per metric in r, sorted by name.
// Counters report their count; timers report count and mean
// in milliseconds. A nil r means the default registry.
func Dump(w io.Writer, r Registry) error {
	if r == nil {
		r = gometrics.DefaultRegistry
	}
	var lines []string
	r.Each(func(name string, m interface{}) {
		switch m := m.(type) {
		case gometrics.Counter:
			lines = append(lines, fmt.Sprintf("metric=%s count=%d", name, m.Count()))
		case gometrics.Timer:
			s := m.Snapshot()
			lines = append(lines, fmt.Sprintf("metric=%s count=%d mean_ms=%.3f",
				name, s.Count(), s.Mean()/float64(time.Millisecond)))
		}
	})
	sort.Strings(lines)
	for _, l := range lines {
		_, err := io.WriteString(w, l+"\n")
		if err != nil {
			return err
		}
	}
	return nil
}
