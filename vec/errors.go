package vec

import (
	"errors"
	"fmt"
)

// ErrSelfAssign reports a rejected self copy-assignment.
var ErrSelfAssign = errors.New("vec: copy from itself")

// RangeError is reported by the checked accessors when the index falls
// outside the live range [0, Len).
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vec: index %d out of range [0, %d)", e.Index, e.Len)
}

// AllocError is reported for an impossible allocation request: a negative
// slot count, or one whose byte size exceeds the address space for T.
type AllocError struct {
	Requested int
	Limit     int
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("vec: cannot allocate %d slots (limit %d)", e.Requested, e.Limit)
}
