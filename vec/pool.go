package vec

import "sync"

// Pool recycles vectors so the buffers they grew survive across uses.
// Get hands out a cleared vector that keeps its capacity; Put returns
// it for a later Get. The zero Pool is not usable, build one with
// NewPool.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns an empty vector pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Vector[T]{}
			},
		},
	}
}

// Get returns an empty vector, reusing a recycled one when available.
// Abandoned slots keep whatever the previous user stored; use GetZeroed
// when T carries references that must not stay reachable.
func (p *Pool[T]) Get() *Vector[T] {
	v := p.pool.Get().(*Vector[T])
	v.Clear()
	return v
}

// GetZeroed is Get with every slot reset to the zero value of T.
func (p *Pool[T]) GetZeroed() *Vector[T] {
	v := p.Get()
	clear(v.buf.raw())
	return v
}

// Put hands v back for reuse. The caller must not touch v afterwards.
func (p *Pool[T]) Put(v *Vector[T]) {
	if v == nil {
		return
	}
	p.pool.Put(v)
}
