package vec

import "iter"

// ValuesIter yields the live elements in order. The yielded values are
// copies, so this is the read-only view.
func (v *Vector[T]) ValuesIter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.buf.Slot(i)) {
				return
			}
		}
	}
}

// ItemsIter yields index/element pairs over the live range.
func (v *Vector[T]) ItemsIter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.buf.Slot(i)) {
				return
			}
		}
	}
}

// RefsIter yields element addresses for in-place mutation, the mutable
// view. Like every view it is invalidated by capacity changes and
// shifts, so the loop body must not grow, insert into or erase from the
// vector.
func (v *Vector[T]) RefsIter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.Slot(i)) {
				return
			}
		}
	}
}
