package metrics

import (
	"runtime"
	"sync"
	"time"
)

// DefaultCapacity is the number of request samples the recorder retains.
const DefaultCapacity = 1024

// slowThreshold marks a request as slow in snapshots.
const slowThreshold = time.Second

// Sample is one recorded request.
type Sample struct {
	Method     string        `json:"method"`
	Path       string        `json:"path"`
	StatusCode int           `json:"statusCode"`
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"duration"`
	Timestamp  time.Time     `json:"timestamp"`
}

// Recorder keeps a bounded ring of request samples. Once the ring is full the
// oldest sample is overwritten, so memory use is fixed regardless of uptime.
type Recorder struct {
	mu      sync.Mutex
	samples []Sample
	next    int
	filled  bool
	started time.Time
}

// NewRecorder creates a Recorder holding at most capacity samples.
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Recorder{
		samples: make([]Sample, capacity),
		started: time.Now(),
	}
}

// Record stores one request sample.
func (r *Recorder) Record(method, path string, status int, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.samples[r.next] = Sample{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Duration:   duration,
		DurationMS: duration.Milliseconds(),
		Timestamp:  time.Now(),
	}
	r.next++
	if r.next == len(r.samples) {
		r.next = 0
		r.filled = true
	}
}

// Reset discards all recorded samples.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next = 0
	r.filled = false
}

// Len returns the number of retained samples.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.filled {
		return len(r.samples)
	}
	return r.next
}

// ordered returns the retained samples oldest first.
// Caller must hold r.mu.
func (r *Recorder) ordered() []Sample {
	if !r.filled {
		out := make([]Sample, r.next)
		copy(out, r.samples[:r.next])
		return out
	}
	out := make([]Sample, 0, len(r.samples))
	out = append(out, r.samples[r.next:]...)
	out = append(out, r.samples[:r.next]...)
	return out
}

// EndpointStats aggregates samples for one method+path pair.
type EndpointStats struct {
	Count       int   `json:"count"`
	AvgDuration int64 `json:"avgDuration"`
	MaxDuration int64 `json:"maxDuration"`

	total int64
}

// Summary is the top-level metrics overview.
type Summary struct {
	TotalRequests int   `json:"totalRequests"`
	AvgDuration   int64 `json:"avgDuration"`
	SlowRequests  int   `json:"slowRequests"`
	UptimeSeconds int64 `json:"uptime"`
}

// MemoryStats reports process heap usage in MB.
type MemoryStats struct {
	HeapUsedMB  uint64 `json:"heapUsed"`
	HeapTotalMB uint64 `json:"heapTotal"`
	SysMB       uint64 `json:"sys"`
	NumGC       uint32 `json:"numGC"`
}

// Snapshot is the full metrics report.
type Snapshot struct {
	Summary            Summary                  `json:"summary"`
	Memory             MemoryStats              `json:"memory"`
	Endpoints          map[string]EndpointStats `json:"endpoints"`
	RecentSlowRequests []Sample                 `json:"recentSlowRequests"`
}

// Snapshot computes the aggregate view of the retained samples.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	samples := r.ordered()
	started := r.started
	r.mu.Unlock()

	var totalDur int64
	endpoints := make(map[string]EndpointStats)
	var slow []Sample

	for _, s := range samples {
		totalDur += s.DurationMS

		key := s.Method + " " + s.Path
		st := endpoints[key]
		st.Count++
		st.total += s.DurationMS
		if s.DurationMS > st.MaxDuration {
			st.MaxDuration = s.DurationMS
		}
		endpoints[key] = st

		if s.Duration > slowThreshold {
			slow = append(slow, s)
		}
	}

	for key, st := range endpoints {
		st.AvgDuration = st.total / int64(st.Count)
		endpoints[key] = st
	}

	var avg int64
	if len(samples) > 0 {
		avg = totalDur / int64(len(samples))
	}

	slowCount := len(slow)

	// Keep only the most recent slow requests.
	const maxSlow = 10
	if len(slow) > maxSlow {
		slow = slow[len(slow)-maxSlow:]
	}
	if slow == nil {
		slow = []Sample{}
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return Snapshot{
		Summary: Summary{
			TotalRequests: len(samples),
			AvgDuration:   avg,
			SlowRequests:  slowCount,
			UptimeSeconds: int64(time.Since(started).Seconds()),
		},
		Memory: MemoryStats{
			HeapUsedMB:  mem.HeapAlloc / 1024 / 1024,
			HeapTotalMB: mem.HeapSys / 1024 / 1024,
			SysMB:       mem.Sys / 1024 / 1024,
			NumGC:       mem.NumGC,
		},
		Endpoints:          endpoints,
		RecentSlowRequests: slow,
	}
}

// Uptime returns the time since the recorder was created.
func (r *Recorder) Uptime() time.Duration {
	return time.Since(r.started)
}
