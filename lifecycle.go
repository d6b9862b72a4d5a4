package rawvec

import "github.com/pkg/errors"

// Lifecycle describes how elements of type T are constructed, copied,
// moved and destroyed inside a Vector. The zero Lifecycle gives plain
// value semantics: construction yields the zero value, copies and moves
// are assignments, destruction clears the slot, and nothing ever fails.
//
// Non-nil fields replace the corresponding default. Relocate must leave
// its source in a valid empty state; Destroy must tolerate being called
// exactly once per live element, including moved-from ones.
type Lifecycle[T any] struct {
	// Construct default-constructs an element. nil: zero value.
	Construct func() (T, error)
	// Clone copies an element. nil: assignment, never fails.
	Clone func(T) (T, error)
	// Relocate moves the element out of src, resetting src to a valid
	// empty state. nil: assignment plus zeroing the source, never fails.
	Relocate func(src *T) (T, error)
	// Destroy tears an element down. The slot is cleared afterwards
	// regardless. nil: clearing only.
	Destroy func(*T)
	// NotCopyable marks a type with no copy operation at all. Relocation
	// then always moves, and Clone-based operations report an error.
	NotCopyable bool
	// NoFailRelocate promises that Relocate never returns an error.
	// Relocation paths prefer moving only when it cannot fail (or the
	// type is not copyable); otherwise they copy so the old storage
	// stays intact until the whole operation has succeeded.
	NoFailRelocate bool
}

// ErrNotCopyable is returned by operations that need to copy elements of
// a type whose Lifecycle declares NotCopyable.
var ErrNotCopyable = errors.New("rawvec: element type is not copyable")

// relocateByMove reports whether relocation may use Relocate without
// giving up the strong guarantee on reallocating paths.
func (lc Lifecycle[T]) relocateByMove() bool {
	return lc.NotCopyable || lc.NoFailRelocate || lc.Relocate == nil
}

func (lc Lifecycle[T]) construct() (T, error) {
	if lc.Construct == nil {
		var zero T
		return zero, nil
	}
	return lc.Construct()
}

func (lc Lifecycle[T]) clone(v T) (T, error) {
	if lc.NotCopyable {
		var zero T
		return zero, ErrNotCopyable
	}
	if lc.Clone == nil {
		return v, nil
	}
	return lc.Clone(v)
}

func (lc Lifecycle[T]) relocate(src *T) (T, error) {
	if lc.Relocate == nil {
		v := *src
		var zero T
		*src = zero
		return v, nil
	}
	return lc.Relocate(src)
}

// destroy runs the destructor for the live element at p and clears the
// slot so dead storage never pins referents.
func (lc Lifecycle[T]) destroy(p *T) {
	if lc.Destroy != nil {
		lc.Destroy(p)
	}
	var zero T
	*p = zero
}

// destroyRange destroys the n live elements at slots [at, at+n).
func (lc Lifecycle[T]) destroyRange(a *Arena[T], at, n int) {
	for k := 0; k < n; k++ {
		lc.destroy(a.At(at + k))
	}
}

// constructN default-constructs n elements into the uninitialized slots
// [at, at+n). On failure the partially constructed prefix is destroyed
// before the error is returned, so the slots are uninitialized again.
func (lc Lifecycle[T]) constructN(a *Arena[T], at, n int) error {
	for k := 0; k < n; k++ {
		v, err := lc.construct()
		if err != nil {
			lc.destroyRange(a, at, k)
			return errors.Wrapf(err, "rawvec: construct element %d", at+k)
		}
		*a.At(at + k) = v
	}
	return nil
}

// cloneSpan copies src's live slots [from, from+n) into dst's
// uninitialized slots [at, at+n). On failure the partially cloned prefix
// in dst is destroyed and src is untouched.
func (lc Lifecycle[T]) cloneSpan(src *Arena[T], from, n int, dst *Arena[T], at int) error {
	for k := 0; k < n; k++ {
		v, err := lc.clone(*src.At(from + k))
		if err != nil {
			lc.destroyRange(dst, at, k)
			return errors.Wrapf(err, "rawvec: clone element %d", from+k)
		}
		*dst.At(at + k) = v
	}
	copyEvents.Add(float64(n))
	return nil
}

// relocateSpan moves src's live slots [from, from+n) into dst's
// uninitialized slots [at, at+n), emptying the source slots. A failing
// custom Relocate aborts the transfer with the landed prefix destroyed;
// the already-emptied source slots are not restored (basic guarantee —
// reallocating paths avoid this by copying when relocation can fail).
func (lc Lifecycle[T]) relocateSpan(src *Arena[T], from, n int, dst *Arena[T], at int) error {
	for k := 0; k < n; k++ {
		v, err := lc.relocate(src.At(from + k))
		if err != nil {
			lc.destroyRange(dst, at, k)
			return errors.Wrapf(err, "rawvec: relocate element %d", from+k)
		}
		*dst.At(at + k) = v
	}
	moveEvents.Add(float64(n))
	return nil
}

// cloneAssign replaces the live element at dst with a copy of src.
// The copy is made first so a failure leaves dst untouched.
func (lc Lifecycle[T]) cloneAssign(dst *T, src T) error {
	v, err := lc.clone(src)
	if err != nil {
		return err
	}
	lc.destroy(dst)
	*dst = v
	return nil
}

// relocateAssign replaces the live element at dst with the element moved
// out of src, leaving src empty.
func (lc Lifecycle[T]) relocateAssign(dst, src *T) error {
	v, err := lc.relocate(src)
	if err != nil {
		return err
	}
	lc.destroy(dst)
	*dst = v
	return nil
}
