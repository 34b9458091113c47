package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderBounded(t *testing.T) {
	r := NewRecorder(8)

	for i := 0; i < 100; i++ {
		r.Record("GET", fmt.Sprintf("/posts/%d", i), 200, 5*time.Millisecond)
	}

	assert.Equal(t, 8, r.Len(), "recorder must never retain more than its capacity")

	snap := r.Snapshot()
	assert.Equal(t, 8, snap.Summary.TotalRequests)
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder(8)
	r.Record("GET", "/posts", 200, time.Millisecond)
	r.Record("GET", "/posts", 200, time.Millisecond)
	require.Equal(t, 2, r.Len())

	r.Reset()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, r.Snapshot().Summary.TotalRequests)
}

func TestSnapshotEndpointStats(t *testing.T) {
	r := NewRecorder(16)
	r.Record("GET", "/posts", 200, 10*time.Millisecond)
	r.Record("GET", "/posts", 200, 30*time.Millisecond)
	r.Record("POST", "/comments", 201, 50*time.Millisecond)

	snap := r.Snapshot()

	posts, ok := snap.Endpoints["GET /posts"]
	require.True(t, ok)
	assert.Equal(t, 2, posts.Count)
	assert.Equal(t, int64(20), posts.AvgDuration)
	assert.Equal(t, int64(30), posts.MaxDuration)

	comments, ok := snap.Endpoints["POST /comments"]
	require.True(t, ok)
	assert.Equal(t, 1, comments.Count)
	assert.Equal(t, int64(50), comments.MaxDuration)
}

func TestSnapshotSlowRequests(t *testing.T) {
	r := NewRecorder(32)
	r.Record("GET", "/posts", 200, 20*time.Millisecond)
	r.Record("GET", "/users/report2", 200, 1500*time.Millisecond)
	r.Record("GET", "/users/report3", 200, 2*time.Second)

	snap := r.Snapshot()
	assert.Equal(t, 2, snap.Summary.SlowRequests)
	require.Len(t, snap.RecentSlowRequests, 2)
	assert.Equal(t, "/users/report2", snap.RecentSlowRequests[0].Path)
	assert.Equal(t, "/users/report3", snap.RecentSlowRequests[1].Path)
}

func TestSnapshotOldestOverwrittenFirst(t *testing.T) {
	r := NewRecorder(2)
	r.Record("GET", "/a", 200, time.Millisecond)
	r.Record("GET", "/b", 200, time.Millisecond)
	r.Record("GET", "/c", 200, time.Millisecond)

	snap := r.Snapshot()
	_, hasA := snap.Endpoints["GET /a"]
	assert.False(t, hasA, "oldest sample should have been evicted")
	_, hasB := snap.Endpoints["GET /b"]
	_, hasC := snap.Endpoints["GET /c"]
	assert.True(t, hasB)
	assert.True(t, hasC)
}
