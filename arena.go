// Package rawvec implements a generic dynamic array built on a hand-managed
// memory arena. The Arena owns raw slot storage; the Vector tracks which
// slots hold live elements and drives their lifecycle explicitly.
package rawvec

import "unsafe"

// noCopy flags value copies of the types that embed it to go vet's
// copylocks check. Duplicating an arena by value would alias its buffer
// without knowing which slots are live.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Arena owns one contiguous block of storage for a fixed number of element
// slots of type T. The block is never implicitly initialized: every slot's
// lifecycle belongs to the owning Vector, and the Arena only hands out
// addresses. Arenas are move-only; copy an *Arena pointer, never the value.
type Arena[T any] struct {
	noCopy noCopy
	buf    []T // backing block; len == Cap(), nil when capacity is 0
}

// NewArena acquires storage for capacity slots. A capacity of zero yields
// the null-buffer state and allocates nothing. Negative capacities are a
// caller bug.
func NewArena[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		panic("rawvec: negative arena capacity")
	}
	a := &Arena[T]{}
	if capacity > 0 {
		// A typed block rather than raw bytes, so the runtime scans
		// pointer-bearing element types in dead slots too. Dead slots
		// hold the zero pattern and are contractually uninitialized.
		a.buf = make([]T, capacity)
	}
	return a
}

// Cap returns the slot capacity of the arena.
func (a *Arena[T]) Cap() int {
	return len(a.buf)
}

// Slot returns the address of slot off. The one-past-end address
// (off == Cap()) is permitted so placement at the end can be expressed,
// but it must not be dereferenced. Any other out-of-range offset panics.
func (a *Arena[T]) Slot(off int) *T {
	if off < 0 || off > len(a.buf) {
		panic("rawvec: arena slot out of range")
	}
	if off == len(a.buf) {
		if a.buf == nil {
			return nil
		}
		var zero T
		base := unsafe.Pointer(unsafe.SliceData(a.buf))
		return (*T)(unsafe.Add(base, uintptr(off)*unsafe.Sizeof(zero)))
	}
	return &a.buf[off]
}

// At returns the address of slot i. Unlike Slot, the one-past-end address
// is not allowed.
func (a *Arena[T]) At(i int) *T {
	if i < 0 || i >= len(a.buf) {
		panic("rawvec: arena index out of range")
	}
	return &a.buf[i]
}

// Swap exchanges the buffers and capacities of two arenas in O(1).
func (a *Arena[T]) Swap(o *Arena[T]) {
	a.buf, o.buf = o.buf, a.buf
}

// Take transfers ownership of from's buffer to a, leaving from at
// zero capacity with a nil buffer. a's previous buffer is released;
// the caller must have destroyed any live elements in it beforehand.
func (a *Arena[T]) Take(from *Arena[T]) {
	if a == from {
		return
	}
	a.Release()
	a.buf = from.buf
	from.buf = nil
}

// Release drops the buffer and returns the arena to the zero-capacity
// state. It runs no element destructors; that is the owning Vector's job.
// Releasing an already-released arena is a no-op.
func (a *Arena[T]) Release() {
	if a.buf == nil {
		return
	}
	a.buf = nil
	releaseEvents.Inc()
}
