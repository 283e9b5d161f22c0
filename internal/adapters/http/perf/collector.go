package perf

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultRingSize is the default capacity of the ring buffer.
const DefaultRingSize = 4096

// EntryKind distinguishes request vs query entries.
type EntryKind uint8

const (
	KindRequest EntryKind = iota
	KindQuery
)

// Entry is a single timing record stored in the ring buffer.
type Entry struct {
	Kind       EntryKind
	Path       string // HTTP "METHOD /path" or "store.Method"
	StatusCode int    // HTTP status (0 for queries)
	DurationMs float64
	Timestamp  time.Time
}

// Collector is a fixed-size ring buffer for timing entries.
// Writes are non-blocking; when full, oldest entries are overwritten.
// Aggregation happens only on read (Snapshot).
type Collector struct {
	mu      sync.Mutex
	entries []Entry
	size    int
	pos     int
	count   int64
}

// NewCollector creates a collector with the given ring buffer capacity.
// PRE: size > 0 (non-positive falls back to DefaultRingSize)
// POST: Returns a ready-to-use collector with pre-allocated storage
func NewCollector(size int) *Collector {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Collector{
		entries: make([]Entry, size),
		size:    size,
	}
}

// Record appends an entry to the ring buffer.
// POST: Entry stored; if buffer full, oldest entry overwritten
func (c *Collector) Record(e Entry) {
	c.mu.Lock()
	c.entries[c.pos] = e
	c.pos = (c.pos + 1) % c.size
	c.mu.Unlock()
	atomic.AddInt64(&c.count, 1)
}

// TotalRecorded returns the total number of entries ever recorded.
func (c *Collector) TotalRecorded() int64 {
	return atomic.LoadInt64(&c.count)
}

// Snapshot holds aggregated timing data computed on read.
type Snapshot struct {
	TotalRequests int64
	RequestP50Ms  float64
	RequestP95Ms  float64
	SlowestPaths  []PathStat
}

// PathStat aggregates timing for a single path or store method.
type PathStat struct {
	Path  string
	AvgMs float64
	MaxMs float64
	Count int
}

// Snapshot aggregates the current ring contents.
// POST: Returns request percentiles and the slowest paths by average duration
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	buf := make([]Entry, 0, c.size)
	for _, e := range c.entries {
		if e.Path != "" {
			buf = append(buf, e)
		}
	}
	c.mu.Unlock()

	var durations []float64
	totals := make(map[string]*PathStat)
	var snap Snapshot
	for _, e := range buf {
		if e.Kind != KindRequest {
			continue
		}
		snap.TotalRequests++
		durations = append(durations, e.DurationMs)
		st, ok := totals[e.Path]
		if !ok {
			st = &PathStat{Path: e.Path}
			totals[e.Path] = st
		}
		st.Count++
		st.AvgMs += e.DurationMs // running sum, divided below
		if e.DurationMs > st.MaxMs {
			st.MaxMs = e.DurationMs
		}
	}

	sort.Float64s(durations)
	snap.RequestP50Ms = percentile(durations, 0.50)
	snap.RequestP95Ms = percentile(durations, 0.95)

	for _, st := range totals {
		st.AvgMs /= float64(st.Count)
		snap.SlowestPaths = append(snap.SlowestPaths, *st)
	}
	sort.Slice(snap.SlowestPaths, func(i, j int) bool {
		return snap.SlowestPaths[i].AvgMs > snap.SlowestPaths[j].AvgMs
	})
	if len(snap.SlowestPaths) > 10 {
		snap.SlowestPaths = snap.SlowestPaths[:10]
	}
	return snap
}

// percentile returns the p-th percentile of sorted values (nearest-rank).
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
