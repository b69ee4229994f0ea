package metrics

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "persona-marketing-agent"

// Registry keeps labelled counters for the /metrics endpoint and mirrors
// every increment to an OpenTelemetry counter of the same name.
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	meter    metric.Meter
	otelCtrs map[string]metric.Int64Counter
}

func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		meter:    otel.GetMeterProvider().Meter(meterName),
		otelCtrs: make(map[string]metric.Int64Counter),
	}
}

// key renders name{k=v,...} with labels sorted by key.
func key(name string, labels map[string]string) string {
	if len(labels) == 0 {
		return name
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(labels[k])
	}
	b.WriteByte('}')
	return b.String()
}

// Inc adds n to the counter identified by name and labels. A nil Registry
// is a no-op.
func (r *Registry) Inc(ctx context.Context, name string, labels map[string]string, n int64) {
	if r == nil {
		return
	}
	k := key(name, labels)

	r.mu.RLock()
	c := r.counters[k]
	inst := r.otelCtrs[name]
	r.mu.RUnlock()

	if c == nil || inst == nil {
		r.mu.Lock()
		if c = r.counters[k]; c == nil {
			c = new(atomic.Int64)
			r.counters[k] = c
		}
		if inst = r.otelCtrs[name]; inst == nil {
			if ctr, err := r.meter.Int64Counter(name); err == nil {
				r.otelCtrs[name] = ctr
				inst = ctr
			}
		}
		r.mu.Unlock()
	}
	c.Add(n)

	if inst != nil {
		attrs := make([]attribute.KeyValue, 0, len(labels))
		for k, v := range labels {
			attrs = append(attrs, attribute.String(k, v))
		}
		inst.Add(ctx, n, metric.WithAttributes(attrs...))
	}
}

// Value returns the current value of one counter.
func (r *Registry) Value(name string, labels map[string]string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c := r.counters[key(name, labels)]; c != nil {
		return c.Load()
	}
	return 0
}

// SnapshotLines returns "key value" lines sorted by key.
func (r *Registry) SnapshotLines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.counters))
	for k := range r.counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s %d", k, r.counters[k].Load()))
	}
	return lines
}

// Handler serves the counters as plain text.
func (r *Registry) Handler(c *gin.Context) {
	lines := r.SnapshotLines()
	body := strings.Join(lines, "\n")
	if len(lines) > 0 {
		body += "\n"
	}
	c.String(http.StatusOK, body)
}

// StatusClass maps an HTTP status code to 2xx, 4xx and so on.
func StatusClass(code int) string {
	if code < 100 || code >= 600 {
		return "0"
	}
	return fmt.Sprintf("%dxx", code/100)
}
