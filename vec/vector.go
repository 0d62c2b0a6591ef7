// Package vec provides a growable contiguous sequence built on an
// exclusively owned fixed-capacity buffer. The API is two-tier: checked
// accessors report errors, unchecked accessors trade the error path for
// speed and panic on contract violations. Growth doubles capacity so
// appending stays amortized O(1); move and swap transfer contents in
// O(1) without copying elements.
package vec

import "fmt"

// Vector is a growable sequence of T. It owns exactly one Buffer and
// tracks the live element count; 0 <= Len() <= Cap() holds after every
// operation. Slots at [Len, Cap) are allocated but logically unused.
// The zero Vector is an empty vector ready to use.
type Vector[T any] struct {
	buf  Buffer[T]
	size int
}

// CapacityHint carries a capacity request to NewWithHint and does
// nothing else.
type CapacityHint struct {
	capacity int
}

// Reserve builds a capacity hint for NewWithHint.
func Reserve(capacity int) CapacityHint {
	return CapacityHint{capacity: capacity}
}

// Capacity is the requested capacity.
func (h CapacityHint) Capacity() int {
	return h.capacity
}

// New returns an empty vector with no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize returns a vector of n zero-valued elements.
func NewSize[T any](n int) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.buf.alloc(n); err != nil {
		return nil, err
	}
	v.size = n
	return v, nil
}

// NewFill returns a vector of n elements, each equal to fill.
func NewFill[T any](n int, fill T) (*Vector[T], error) {
	v, err := NewSize[T](n)
	if err != nil {
		return nil, err
	}
	seq := v.buf.raw()
	for i := range seq {
		seq[i] = fill
	}
	return v, nil
}

// NewOf returns a vector holding the given items in order.
func NewOf[T any](items ...T) *Vector[T] {
	v := &Vector[T]{}
	if len(items) == 0 {
		return v
	}
	// items may alias the caller's backing array
	v.buf.adopt(make([]T, len(items)))
	copy(v.buf.raw(), items)
	v.size = len(items)
	return v
}

// NewWithHint returns an empty vector with the hinted capacity already
// reserved.
func NewWithHint[T any](h CapacityHint) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.buf.alloc(h.capacity); err != nil {
		return nil, err
	}
	return v, nil
}

// Len is the live element count.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap is the allocated slot count.
func (v *Vector[T]) Cap() int {
	return v.buf.Cap()
}

// IsEmpty reports whether the vector holds no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns element i on the unchecked tier: i must be below Len and
// violations panic instead of reporting an error.
func (v *Vector[T]) Get(i int) T {
	v.check(i)
	return *v.buf.Slot(i)
}

// Set overwrites element i. Same contract as Get.
func (v *Vector[T]) Set(i int, x T) {
	v.check(i)
	*v.buf.Slot(i) = x
}

// Ref returns the address of element i. Same contract as Get; the
// reference is invalidated by any capacity change or shift.
func (v *Vector[T]) Ref(i int) *T {
	v.check(i)
	return v.buf.Slot(i)
}

func (v *Vector[T]) check(i int) {
	if uint(i) >= uint(v.size) {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.size))
	}
}

// At returns element i, reporting *RangeError when i is outside the
// live range.
func (v *Vector[T]) At(i int) (T, error) {
	if uint(i) >= uint(v.size) {
		var zero T
		return zero, &RangeError{Index: i, Len: v.size}
	}
	return *v.buf.Slot(i), nil
}

// AtRef is At for in-place mutation.
func (v *Vector[T]) AtRef(i int) (*T, error) {
	if uint(i) >= uint(v.size) {
		return nil, &RangeError{Index: i, Len: v.size}
	}
	return v.buf.Slot(i), nil
}

// Clear drops all live elements in O(1). Capacity is kept; abandoned
// slots still occupy their storage until overwritten or the whole
// vector is released.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Push appends x, growing capacity to max(2*Cap, 1) when full. On a
// reported allocation failure the vector is unchanged.
func (v *Vector[T]) Push(x T) error {
	if v.size == v.buf.Cap() {
		newCap := v.buf.Cap() * 2
		if newCap < 1 {
			newCap = 1
		}
		if err := v.grow(newCap); err != nil {
			return err
		}
	}
	*v.buf.Slot(v.size) = x
	v.size++
	return nil
}

// Pop removes and returns the last element. Len must be positive;
// violations panic.
func (v *Vector[T]) Pop() T {
	if v.size == 0 {
		panic("vec: pop on empty vector")
	}
	v.size--
	return *v.buf.Slot(v.size)
}

// Insert places x before position i, shifting the elements at and after
// i one slot later. i may equal Len to append; other out-of-range
// positions panic. Growth follows the Push doubling policy and a
// reported allocation failure leaves the vector unchanged. The inserted
// position is returned.
func (v *Vector[T]) Insert(i int, x T) (int, error) {
	if uint(i) > uint(v.size) {
		panic(fmt.Sprintf("vec: insert position %d out of range [0, %d]", i, v.size))
	}
	if v.size == v.buf.Cap() {
		newCap := v.buf.Cap() * 2
		if newCap < 1 {
			newCap = 1
		}
		if err := v.grow(newCap); err != nil {
			return 0, err
		}
	}
	seq := v.buf.raw()
	copy(seq[i+1:v.size+1], seq[i:v.size])
	seq[i] = x
	v.size++
	return i, nil
}

// Erase removes element i, shifting the following elements one slot
// earlier, and returns the index now holding the element that followed
// the removed one. Capacity is kept. i must be below Len; violations
// panic.
func (v *Vector[T]) Erase(i int) int {
	v.check(i)
	seq := v.buf.raw()
	copy(seq[i:v.size-1], seq[i+1:v.size])
	v.size--
	return i
}

// Resize changes the live count to n. Truncation keeps capacity and
// abandons the tail. Growing within capacity exposes zero-valued slots.
// Growing past capacity reallocates to max(n, 2*Cap) so that appends
// after an arbitrary resize stay amortized O(1).
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		return &AllocError{Requested: n, Limit: maxSlots[T]()}
	case n <= v.size:
		v.size = n
	case n <= v.buf.Cap():
		// abandoned slots may hold stale values, re-exposed slots must not
		clear(v.buf.raw()[v.size:n])
		v.size = n
	default:
		newCap := v.buf.Cap() * 2
		if newCap < n {
			newCap = n
		}
		if err := v.grow(newCap); err != nil {
			return err
		}
		v.size = n
	}
	return nil
}

// Reserve grows capacity to exactly n, copying the live elements into
// the new buffer. Requests at or below the current capacity are no-ops.
// Size never changes.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.buf.Cap() {
		return nil
	}
	return v.grow(n)
}

// grow reallocates to exactly newCap slots in the allocate-fill-swap
// shape: the replacement buffer is complete before the old one is let
// go, so error paths leave the vector untouched. Callers pass
// newCap >= size; anything lower means the doubling arithmetic wrapped.
func (v *Vector[T]) grow(newCap int) error {
	if newCap < v.size {
		return &AllocError{Requested: newCap, Limit: maxSlots[T]()}
	}
	var next Buffer[T]
	if err := next.alloc(newCap); err != nil {
		return err
	}
	copy(next.raw(), v.live())
	v.buf.Swap(&next)
	return nil
}

// live is the view of the live range [0, size).
func (v *Vector[T]) live() []T {
	return v.buf.raw()[:v.size]
}

// Slice returns the live range as a slice sharing the vector's storage.
// The view is capped at Len, so an append through it cannot reach the
// spare capacity. Like every view it is invalidated by capacity changes
// and shifts.
func (v *Vector[T]) Slice() []T {
	return v.buf.raw()[:v.size:v.size]
}

// Swap exchanges the whole contents of two vectors in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
}

// Clone deep-copies the live elements into a fresh vector whose
// capacity equals the source's size.
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{}
	if v.size > 0 {
		out.buf.adopt(make([]T, v.size))
		copy(out.buf.raw(), v.live())
		out.size = v.size
	}
	return out
}

// CopyFrom replaces v's contents with a deep copy of src in the
// clone-then-swap shape. Copying a vector from itself is rejected with
// ErrSelfAssign.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return ErrSelfAssign
	}
	tmp := src.Clone()
	v.Swap(tmp)
	return nil
}

// Move transfers the contents to a fresh vector in O(1), leaving v
// empty with no capacity.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{}
	out.buf.MoveFrom(&v.buf)
	out.size = v.size
	v.size = 0
	return out
}

// MoveFrom drops v's own contents and takes src's in O(1). src is left
// empty with no capacity. Moving a vector from itself is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.buf.MoveFrom(&src.buf)
	v.size = src.size
	src.size = 0
}

// String renders the live elements for debugging.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("Vector%v", v.live())
}
