package rawvec

import (
	"iter"

	"github.com/pkg/errors"
)

// Vector is a contiguous, resizable sequence of T backed by one Arena.
// Slots [0, Len()) hold live elements in insertion order; slots
// [Len(), Cap()) are uninitialized. Not goroutine-safe: a vector has
// exactly one logical owner at a time.
//
// The zero Vector is an empty vector with plain value semantics. Vectors
// must not be copied by value; pass *Vector.
type Vector[T any] struct {
	noCopy noCopy
	arena  *Arena[T]
	n      int
	lc     Lifecycle[T]
}

// New returns an empty vector with plain value semantics for T.
func New[T any]() *Vector[T] {
	return &Vector[T]{arena: &Arena[T]{}}
}

// NewLifecycle returns an empty vector whose elements follow lc.
func NewLifecycle[T any](lc Lifecycle[T]) *Vector[T] {
	return &Vector[T]{arena: &Arena[T]{}, lc: lc}
}

// NewSize returns a vector of n zero-valued elements.
func NewSize[T any](n int) *Vector[T] {
	v, err := NewSizeLifecycle[T](n, Lifecycle[T]{})
	if err != nil {
		// The zero lifecycle cannot fail to construct.
		panic(err)
	}
	return v
}

// NewSizeLifecycle returns a vector of n elements default-constructed via
// lc. All-or-nothing: if any construction fails, the partially built
// prefix is destroyed and the storage released before the error returns.
func NewSizeLifecycle[T any](n int, lc Lifecycle[T]) (*Vector[T], error) {
	if n < 0 {
		panic("rawvec: negative size")
	}
	a := NewArena[T](n)
	if err := lc.constructN(a, 0, n); err != nil {
		a.Release()
		return nil, err
	}
	return &Vector[T]{arena: a, n: n, lc: lc}, nil
}

// Take constructs a vector that assumes ownership of src's storage and
// live count, leaving src empty with zero capacity. Never fails.
func Take[T any](src *Vector[T]) *Vector[T] {
	src.ensure()
	d := &Vector[T]{arena: src.arena, n: src.n, lc: src.lc}
	src.arena = &Arena[T]{}
	src.n = 0
	return d
}

// ensure lets the zero Vector work without a constructor call.
func (v *Vector[T]) ensure() {
	if v.arena == nil {
		v.arena = &Arena[T]{}
	}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.n
}

// Cap returns the slot capacity of the owned arena.
func (v *Vector[T]) Cap() int {
	if v.arena == nil {
		return 0
	}
	return v.arena.Cap()
}

// At returns the address of element i for reading or writing in place.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.n {
		panic("rawvec: index out of range")
	}
	return v.arena.At(i)
}

// Get returns the value of element i.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// All returns an iterator over index/element-address pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.arena.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over element values in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(*v.arena.At(i)) {
				return
			}
		}
	}
}

// Swap exchanges the contents of two vectors in O(1). Never fails.
func (v *Vector[T]) Swap(o *Vector[T]) {
	if v == o {
		return
	}
	v.ensure()
	o.ensure()
	v.arena, o.arena = o.arena, v.arena
	v.n, o.n = o.n, v.n
	v.lc, o.lc = o.lc, v.lc
}

// TakeFrom move-assigns rhs into v by exchanging ownership. Never fails.
func (v *Vector[T]) TakeFrom(rhs *Vector[T]) {
	v.Swap(rhs)
}

// Clone returns an independent deep copy with capacity equal to the
// source's length. If any element copy fails, the partially copied
// elements are destroyed before the error propagates.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.ensure()
	c := &Vector[T]{arena: &Arena[T]{}, lc: v.lc}
	if v.n > 0 {
		na := NewArena[T](v.n)
		if err := v.lc.cloneSpan(v.arena, 0, v.n, na, 0); err != nil {
			na.Release()
			return nil, err
		}
		c.arena = na
		c.n = v.n
	}
	cloneEvents.Inc()
	return c, nil
}

// CopyFrom copy-assigns rhs into v. When rhs does not fit the current
// capacity, a full copy of rhs is built and swapped in (strong guarantee:
// v is unchanged if the copy fails). Otherwise existing slots are reused
// element-wise and the tail destroyed or grown to match; a copy failure
// on that path can leave v valid but with mixed contents (basic
// guarantee only). Both vectors must use equivalent Lifecycles.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	v.ensure()
	rhs.ensure()
	if rhs.n > v.Cap() {
		cp, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(cp)
		cp.Release()
		return nil
	}
	m := min(v.n, rhs.n)
	for k := 0; k < m; k++ {
		if err := v.lc.cloneAssign(v.arena.At(k), *rhs.arena.At(k)); err != nil {
			return errors.Wrapf(err, "rawvec: copy-assign element %d", k)
		}
	}
	switch {
	case rhs.n < v.n:
		v.lc.destroyRange(v.arena, rhs.n, v.n-rhs.n)
	case rhs.n > v.n:
		if err := v.lc.cloneSpan(rhs.arena, v.n, rhs.n-v.n, v.arena, v.n); err != nil {
			return err
		}
	}
	v.n = rhs.n
	return nil
}

// Reserve grows the capacity to at least n, relocating all live elements
// into a fresh arena. A no-op when n <= Cap(): neither capacity nor
// element addresses change. If relocation has to copy and a copy fails,
// the old storage is untouched.
func (v *Vector[T]) Reserve(n int) error {
	v.ensure()
	if n <= v.Cap() {
		return nil
	}
	na := NewArena[T](n)
	if err := v.relocateInto(na, 0, v.n, 0); err != nil {
		na.Release()
		return err
	}
	v.retire(na)
	growEvents.Inc()
	return nil
}

// Resize sets the length to n, default-constructing new tail elements
// when growing and destroying excess ones when shrinking. Shrinking
// never fails. A construction failure while growing destroys the partial
// tail and leaves the length unchanged (capacity may have grown).
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("rawvec: negative size")
	}
	v.ensure()
	switch {
	case n > v.n:
		if err := v.Reserve(n); err != nil {
			return err
		}
		if err := v.lc.constructN(v.arena, v.n, n-v.n); err != nil {
			return err
		}
		v.n = n
	case n < v.n:
		v.lc.destroyRange(v.arena, n, v.n-n)
		v.n = n
	}
	return nil
}

// PushBack appends x, growing the capacity (doubling, or 1 from empty)
// when full, and returns the address of the stored element. Amortized
// O(1). On the reallocating path a relocation failure leaves the vector
// unchanged.
func (v *Vector[T]) PushBack(x T) (*T, error) {
	return v.EmplaceBack(func() (T, error) { return x, nil })
}

// EmplaceBack appends an element produced by ctor. On the reallocating
// path the element is constructed before any existing element moves, so
// a ctor or relocation failure leaves the vector unchanged.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	v.ensure()
	if v.n == v.Cap() {
		na := NewArena[T](v.grownCap())
		val, err := ctor()
		if err != nil {
			na.Release()
			return nil, errors.Wrap(err, "rawvec: construct element")
		}
		*na.At(v.n) = val
		if err := v.relocateInto(na, 0, v.n, 0); err != nil {
			v.lc.destroy(na.At(v.n))
			na.Release()
			return nil, err
		}
		v.retire(na)
		growEvents.Inc()
	} else {
		val, err := ctor()
		if err != nil {
			return nil, errors.Wrap(err, "rawvec: construct element")
		}
		*v.arena.At(v.n) = val
	}
	v.n++
	return v.arena.At(v.n - 1), nil
}

// PopBack destroys the last element. A no-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.n == 0 {
		return
	}
	v.lc.destroy(v.arena.At(v.n - 1))
	v.n--
}

// Insert inserts x before position i (i == Len() appends) and returns
// the address of the stored element. Positions outside [0, Len()] panic.
func (v *Vector[T]) Insert(i int, x T) (*T, error) {
	return v.Emplace(i, func() (T, error) { return x, nil })
}

// Emplace inserts an element produced by ctor before position i. When
// the arena is full the insert reallocates and carries the strong
// guarantee; otherwise it shifts in place with only the basic guarantee.
// See the package documentation for the asymmetry.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (*T, error) {
	if i < 0 || i > v.n {
		panic("rawvec: position out of range")
	}
	v.ensure()
	if v.n == v.Cap() {
		return v.emplaceGrow(i, ctor)
	}
	return v.emplaceInPlace(i, ctor)
}

// emplaceGrow inserts into a freshly allocated arena: the new element is
// constructed in its final slot first, then the prefix and suffix of the
// old elements are relocated around it. Any failure releases the new
// arena with the old one intact, so the vector is exactly as it was.
func (v *Vector[T]) emplaceGrow(i int, ctor func() (T, error)) (*T, error) {
	na := NewArena[T](v.grownCap())
	val, err := ctor()
	if err != nil {
		na.Release()
		return nil, errors.Wrap(err, "rawvec: construct element")
	}
	*na.At(i) = val
	if err := v.relocateInto(na, 0, i, 0); err != nil {
		v.lc.destroy(na.At(i))
		na.Release()
		return nil, err
	}
	if err := v.relocateInto(na, i, v.n-i, i+1); err != nil {
		v.lc.destroyRange(na, 0, i+1)
		na.Release()
		return nil, err
	}
	v.retire(na)
	growEvents.Inc()
	v.n++
	return v.arena.At(i), nil
}

// emplaceInPlace shifts the tail right one slot inside the existing
// arena: the last element moves into the one-past-end slot, elements
// [i, n-1) shift right, and the new element lands in slot i. A failure
// mid-shift leaves the vector valid but altered (basic guarantee). The
// asymmetry with emplaceGrow is deliberate; unifying the branches would
// slow the common non-reallocating case.
func (v *Vector[T]) emplaceInPlace(i int, ctor func() (T, error)) (*T, error) {
	val, err := ctor()
	if err != nil {
		return nil, errors.Wrap(err, "rawvec: construct element")
	}
	if i < v.n {
		mv, err := v.lc.relocate(v.arena.At(v.n - 1))
		if err != nil {
			return nil, errors.Wrap(err, "rawvec: relocate element")
		}
		*v.arena.At(v.n) = mv
		for j := v.n - 1; j > i; j-- {
			if err := v.lc.relocateAssign(v.arena.At(j), v.arena.At(j-1)); err != nil {
				v.lc.destroy(v.arena.At(v.n))
				return nil, errors.Wrapf(err, "rawvec: shift element %d", j-1)
			}
		}
		v.lc.destroy(v.arena.At(i))
	}
	*v.arena.At(i) = val
	v.n++
	return v.arena.At(i), nil
}

// Erase removes the element at position i, shifting the tail left by
// one, and returns the index of the element that followed it. Erase
// assumes element relocation does not fail; a Lifecycle whose Relocate
// errors during the shift is a contract violation and panics.
func (v *Vector[T]) Erase(i int) int {
	if i < 0 || i >= v.n {
		panic("rawvec: position out of range")
	}
	for j := i; j+1 < v.n; j++ {
		if err := v.lc.relocateAssign(v.arena.At(j), v.arena.At(j+1)); err != nil {
			panic("rawvec: relocate failed during erase: " + err.Error())
		}
	}
	v.PopBack()
	return i
}

// Release destroys all live elements and drops the arena, returning the
// vector to the default-constructed state. Go has no destructors, so
// call Release explicitly when the element Lifecycle carries teardown
// effects. A released vector stays usable and empty.
func (v *Vector[T]) Release() {
	v.ensure()
	v.lc.destroyRange(v.arena, 0, v.n)
	v.n = 0
	v.arena.Release()
}

// grownCap returns the doubled capacity for the next reallocation.
func (v *Vector[T]) grownCap() int {
	if v.n == 0 {
		return 1
	}
	return v.n * 2
}

// relocateInto transfers the live slots [from, from+n) into dst at slot
// at, moving when relocation cannot fail (or the type is not copyable)
// and copying otherwise, so the old storage survives a failure intact.
func (v *Vector[T]) relocateInto(dst *Arena[T], from, n, at int) error {
	if v.lc.relocateByMove() {
		return v.lc.relocateSpan(v.arena, from, n, dst, at)
	}
	return v.lc.cloneSpan(v.arena, from, n, dst, at)
}

// retire destroys the old live elements, swaps na in as the owned arena
// and releases the old storage. na must already hold the live elements.
func (v *Vector[T]) retire(na *Arena[T]) {
	v.lc.destroyRange(v.arena, 0, v.n)
	v.arena.Swap(na)
	na.Release()
}
