package rawvec

import (
	"unsafe"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// events counts storage events across all vectors in the process, broken
// down by kind: arena growth, relocation by move or copy, deep clones and
// buffer releases.
var events = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "rawvec_events_total",
	Help: "Storage events across all rawvec vectors",
}, []string{"event"})

var (
	growEvents    = events.WithLabelValues("grow")
	moveEvents    = events.WithLabelValues("relocate_move")
	copyEvents    = events.WithLabelValues("relocate_copy")
	cloneEvents   = events.WithLabelValues("clone")
	releaseEvents = events.WithLabelValues("release")
)

// SizeBytes returns the size of the arena's backing storage in bytes,
// live and dead slots included.
func (v *Vector[T]) SizeBytes() int {
	var zero T
	return v.Cap() * int(unsafe.Sizeof(zero))
}

// Utilization returns the ratio of live slots to capacity (0.0 to 1.0).
// Returns 0.0 for a vector with no capacity.
func (v *Vector[T]) Utilization() float64 {
	c := v.Cap()
	if c == 0 {
		return 0
	}
	return float64(v.Len()) / float64(c)
}

// Stats returns a snapshot of vector statistics.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:         v.Len(),
		Cap:         v.Cap(),
		SizeBytes:   v.SizeBytes(),
		Utilization: v.Utilization(),
	}
}

// Stats contains statistical information about a vector.
type Stats struct {
	Len         int     // Live elements
	Cap         int     // Slot capacity
	SizeBytes   int     // Backing storage size in bytes
	Utilization float64 // Ratio of live slots to capacity (0.0-1.0)
}
