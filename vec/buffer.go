package vec

import (
	"math"
	"unsafe"
)

// noCopy makes `go vet` flag by-value copies, the sync package convention.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer is an exclusive-ownership handle over a fixed block of T slots.
// The slot count is fixed at allocation and every slot starts at the zero
// value of T. Buffers transfer only by move or swap; the zero Buffer is
// the empty state.
type Buffer[T any] struct {
	noCopy noCopy
	slots  []T
}

// NewBuffer allocates a buffer of n zero-valued slots. n == 0 yields the
// empty state without allocating.
func NewBuffer[T any](n int) (*Buffer[T], error) {
	b := &Buffer[T]{}
	if err := b.alloc(n); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Buffer[T]) alloc(n int) error {
	if n < 0 || n > maxSlots[T]() {
		return &AllocError{Requested: n, Limit: maxSlots[T]()}
	}
	if n == 0 {
		b.slots = nil
		return nil
	}
	b.slots = make([]T, n)
	return nil
}

// maxSlots is the largest slot count whose byte size stays addressable.
func maxSlots[T any]() int {
	size := unsafe.Sizeof(*new(T))
	if size == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}

// Cap is the allocated slot count.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// IsEmpty reports whether the buffer holds no allocation.
func (b *Buffer[T]) IsEmpty() bool {
	return len(b.slots) == 0
}

// Slot returns the address of slot i. The buffer performs no bounds
// checking of its own beyond the runtime trap; bounds discipline belongs
// to the caller.
func (b *Buffer[T]) Slot(i int) *T {
	return &b.slots[i]
}

// Swap exchanges the owned blocks of two buffers in O(1).
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Move transfers the block to a fresh buffer, leaving b empty.
func (b *Buffer[T]) Move() *Buffer[T] {
	out := &Buffer[T]{}
	out.slots = b.release()
	return out
}

// MoveFrom drops whatever b held and takes src's block. src is left
// empty. Moving a buffer from itself is a no-op.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	b.slots = src.release()
}

// release relinquishes the block without touching its contents and
// leaves the buffer empty.
func (b *Buffer[T]) release() []T {
	raw := b.slots
	b.slots = nil
	return raw
}

// adopt takes ownership of an already-allocated block.
func (b *Buffer[T]) adopt(raw []T) {
	b.slots = raw
}

// raw is the package-internal view of the whole slot range.
func (b *Buffer[T]) raw() []T {
	return b.slots
}
