package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading, taken around a
// benchmark run to report allocation cost alongside latency.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	Mallocs      uint64 // cumulative heap allocations
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		Mallocs:      m.Mallocs,
	}
}

// Delta reports the allocation activity between an earlier snapshot and
// this one. Cumulative counters never decrease, so the subtractions are
// safe; HeapAlloc can shrink and is reported as the later value.
func (s MemorySnapshot) Delta(earlier MemorySnapshot) MemorySnapshot {
	return MemorySnapshot{
		HeapAlloc:    s.HeapAlloc,
		Sys:          s.Sys,
		NumGC:        s.NumGC - earlier.NumGC,
		PauseTotalNs: s.PauseTotalNs - earlier.PauseTotalNs,
		Mallocs:      s.Mallocs - earlier.Mallocs,
	}
}
