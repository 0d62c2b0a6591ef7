package vec

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Equal reports whether v and other hold the same live elements in the
// same order. Elements are compared with reflect.DeepEqual so any T
// works.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v.size != other.size {
		return false
	}
	for i := 0; i < v.size; i++ {
		if !reflect.DeepEqual(*v.buf.Slot(i), *other.buf.Slot(i)) {
			return false
		}
	}
	return true
}

// Compare orders a against b lexicographically, returning -1, 0 or +1.
// A strict prefix orders before the longer sequence.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	for i := 0; i < a.size && i < b.size; i++ {
		x, y := *a.buf.Slot(i), *b.buf.Slot(i)
		switch {
		case x < y:
			return -1
		case y < x:
			return 1
		}
	}
	switch {
	case a.size < b.size:
		return -1
	case b.size < a.size:
		return 1
	}
	return 0
}

// CompareFunc is Compare with a caller-supplied element ordering that
// returns a negative, zero or positive value.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	for i := 0; i < a.size && i < b.size; i++ {
		if c := cmp(*a.buf.Slot(i), *b.buf.Slot(i)); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
	}
	switch {
	case a.size < b.size:
		return -1
	case b.size < a.size:
		return 1
	}
	return 0
}

// Less reports whether a orders strictly before b.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}
