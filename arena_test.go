package rawvec

import (
	"testing"
	"unsafe"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestNewArena(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{"zero capacity", 0},
		{"one slot", 1},
		{"many slots", 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena[int64](tt.capacity)
			if a.Cap() != tt.capacity {
				t.Errorf("NewArena(%d) capacity = %d, want %d", tt.capacity, a.Cap(), tt.capacity)
			}
		})
	}
}

func TestNewArenaNegativePanics(t *testing.T) {
	mustPanic(t, "NewArena(-1)", func() { NewArena[int](-1) })
}

func TestArenaSlotAddressing(t *testing.T) {
	a := NewArena[int32](4)
	for i := 0; i < 4; i++ {
		*a.At(i) = int32(i)
	}

	// Slots are contiguous; the one-past-end address is reachable.
	base := uintptr(unsafe.Pointer(a.Slot(0)))
	for off := 0; off <= 4; off++ {
		got := uintptr(unsafe.Pointer(a.Slot(off)))
		want := base + uintptr(off)*unsafe.Sizeof(int32(0))
		if got != want {
			t.Errorf("Slot(%d) = %#x, want %#x", off, got, want)
		}
	}

	mustPanic(t, "Slot(5)", func() { a.Slot(5) })
	mustPanic(t, "Slot(-1)", func() { a.Slot(-1) })
	mustPanic(t, "At(4)", func() { a.At(4) })
	mustPanic(t, "At(-1)", func() { a.At(-1) })
}

func TestZeroArenaSlot(t *testing.T) {
	a := NewArena[int](0)
	if got := a.Slot(0); got != nil {
		t.Errorf("Slot(0) on zero-capacity arena = %p, want nil", got)
	}
	mustPanic(t, "Slot(1)", func() { a.Slot(1) })
}

func TestArenaSwap(t *testing.T) {
	a := NewArena[int](2)
	b := NewArena[int](3)
	*a.At(0) = 10
	*b.At(0) = 20

	a.Swap(b)

	if a.Cap() != 3 || b.Cap() != 2 {
		t.Errorf("after Swap: caps = %d, %d, want 3, 2", a.Cap(), b.Cap())
	}
	if *a.At(0) != 20 || *b.At(0) != 10 {
		t.Errorf("after Swap: values = %d, %d, want 20, 10", *a.At(0), *b.At(0))
	}
}

func TestArenaTake(t *testing.T) {
	src := NewArena[string](2)
	*src.At(0) = "x"
	dst := NewArena[string](8)

	dst.Take(src)

	if dst.Cap() != 2 || *dst.At(0) != "x" {
		t.Errorf("Take: dst cap = %d, slot 0 = %q", dst.Cap(), *dst.At(0))
	}
	if src.Cap() != 0 {
		t.Errorf("Take: src cap = %d, want 0", src.Cap())
	}

	// Self-take is a no-op.
	dst.Take(dst)
	if dst.Cap() != 2 {
		t.Errorf("self Take: cap = %d, want 2", dst.Cap())
	}
}

func TestArenaRelease(t *testing.T) {
	a := NewArena[int](16)
	a.Release()
	if a.Cap() != 0 {
		t.Errorf("Cap after Release = %d, want 0", a.Cap())
	}
	// Releasing again is a no-op.
	a.Release()
	mustPanic(t, "At(0) after Release", func() { a.At(0) })
}
