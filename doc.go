// Package rawvec implements a generic dynamic array (Vector) on top of a
// hand-managed memory arena (Arena).
//
// # Overview
//
// The package separates raw storage ownership from object lifecycle
// management. An Arena owns a contiguous block of uninitialized slots for
// a fixed capacity and knows nothing about which slots hold values. A
// Vector owns exactly one Arena plus a live count, and performs explicit
// construction, copying, moving and destruction of elements as they are
// added, removed or relocated. This is useful for:
//
//   - Element types with teardown effects that Go's GC cannot express
//   - Containers that must control exactly when elements are copied or moved
//   - Reproducing strong/basic failure guarantees around fallible copies
//
// # Basic Usage
//
//	v := rawvec.New[int]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.Insert(1, 99)        // [1, 99, 2]
//	v.Erase(0)             // [99, 2]
//	fmt.Println(v.Get(0), v.Len(), v.Cap())
//
// # Element Lifecycle
//
// Construction, copying, moving and destruction default to plain value
// semantics and never fail. Types that need more supply a Lifecycle:
//
//	lc := rawvec.Lifecycle[*os.File]{
//		Destroy: func(f **os.File) { (*f).Close() },
//	}
//	v := rawvec.NewLifecycle(lc)
//	defer v.Release() // runs Destroy on every live element
//
// Lifecycle funcs may fail; those failures surface as errors from the
// mutating operations and are never swallowed.
//
// # Failure Guarantees
//
// Operations that build a complete new arena before touching the old one
// give the strong guarantee: on failure the vector is observably
// unchanged. This covers reallocating PushBack/EmplaceBack, reallocating
// Insert/Emplace, Reserve, Clone, and the growing branch of CopyFrom.
// Relocation into a new arena moves elements only when the Lifecycle
// promises moves cannot fail (or the type is not copyable); otherwise it
// copies, so the old storage stays valid until the operation succeeds.
//
// Operations that mutate in place give only the basic guarantee: the
// in-place branch of Insert/Emplace and the slot-reuse branch of CopyFrom
// may leave the vector valid but altered if an element operation fails
// partway. The asymmetry between the two Insert branches is a deliberate
// property of the design, not an oversight: unifying them would slow the
// common non-reallocating case.
//
// # Thread Safety
//
// Nothing in this package is goroutine-safe. A vector has exactly one
// logical owner; ownership moves via Take, TakeFrom and Swap and is never
// shared. Concurrent mutation, or reads concurrent with mutation, must be
// prevented by the caller.
//
// # Important Notes
//
//   - Out-of-range indexes and positions are caller bugs and panic.
//   - Go's make terminates the process when memory is exhausted, so
//     allocation itself has no recoverable failure path; the fallible
//     paths are element construct/clone/relocate operations.
//   - A moved-from vector is valid and empty (length 0, capacity 0).
//   - Element addresses are stable until the next reallocating operation.
//
// # Metrics and Monitoring
//
// Vectors expose a statistics snapshot:
//
//	s := v.Stats()
//	fmt.Printf("utilization: %.2f%%\n", s.Utilization*100)
//	fmt.Printf("storage: %d bytes\n", s.SizeBytes)
//
// Package-wide storage events (growth, relocation, clones, releases) are
// published as the rawvec_events_total Prometheus counter.
package rawvec
