package codec

import (
	"errors"

	mus "github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/varint"

	"github.com/quickwritereader/VecOS/vec"
)

// ErrNegativeCount reports a decoded element count below zero.
var ErrNegativeCount = errors.New("negative element count")

// VectorSer serializes vectors in the MUS format: a varint element
// count followed by the elements in the element serializer's encoding.
// It is itself a mus.Serializer over *vec.Vector[T], so it composes the
// same way the mus-go serializers do.
type VectorSer[T any] struct {
	elem mus.Serializer[T]
}

var _ mus.Serializer[*vec.Vector[int]] = VectorSer[int]{}

// NewVectorSer builds a vector serializer from an element serializer,
// for example NewVectorSer[int](varint.Int).
func NewVectorSer[T any](elem mus.Serializer[T]) VectorSer[T] {
	return VectorSer[T]{elem: elem}
}

// Marshal writes v into bs and returns the byte count. bs must hold at
// least Size(v) bytes.
func (s VectorSer[T]) Marshal(v *vec.Vector[T], bs []byte) int {
	n := varint.Int.Marshal(v.Len(), bs)
	for x := range v.ValuesIter() {
		n += s.elem.Marshal(x, bs[n:])
	}
	return n
}

// Unmarshal rebuilds a vector from bs, returning it together with the
// consumed byte count.
func (s VectorSer[T]) Unmarshal(bs []byte) (*vec.Vector[T], int, error) {
	count, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, &Error{Codec: "mus", Op: "unmarshal", Err: err}
	}
	if count < 0 {
		return nil, n, &Error{Codec: "mus", Op: "unmarshal", Err: ErrNegativeCount}
	}
	// an element takes at least one encoded byte, so cap the reservation
	// at the remaining input length
	hint := min(count, len(bs)-n)
	out, err := vec.NewWithHint[T](vec.Reserve(hint))
	if err != nil {
		return nil, n, &Error{Codec: "mus", Op: "unmarshal", Err: err}
	}
	for i := 0; i < count; i++ {
		x, m, err := s.elem.Unmarshal(bs[n:])
		n += m
		if err != nil {
			return nil, n, &Error{Codec: "mus", Op: "unmarshal", Err: err}
		}
		if err := out.Push(x); err != nil {
			return nil, n, &Error{Codec: "mus", Op: "unmarshal", Err: err}
		}
	}
	return out, n, nil
}

// Size reports the marshalled byte size of v.
func (s VectorSer[T]) Size(v *vec.Vector[T]) int {
	size := varint.Int.Size(v.Len())
	for x := range v.ValuesIter() {
		size += s.elem.Size(x)
	}
	return size
}

// Skip advances past one marshalled vector and returns the byte count.
func (s VectorSer[T]) Skip(bs []byte) (int, error) {
	count, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return n, &Error{Codec: "mus", Op: "skip", Err: err}
	}
	if count < 0 {
		return n, &Error{Codec: "mus", Op: "skip", Err: ErrNegativeCount}
	}
	for i := 0; i < count; i++ {
		m, err := s.elem.Skip(bs[n:])
		n += m
		if err != nil {
			return n, &Error{Codec: "mus", Op: "skip", Err: err}
		}
	}
	return n, nil
}

// MarshalMUS renders v with the element serializer in one exact-size
// allocation.
func MarshalMUS[T any](v *vec.Vector[T], elem mus.Serializer[T]) []byte {
	s := NewVectorSer(elem)
	bs := make([]byte, s.Size(v))
	s.Marshal(v, bs)
	return bs
}

// UnmarshalMUS rebuilds a vector marshalled by MarshalMUS.
func UnmarshalMUS[T any](bs []byte, elem mus.Serializer[T]) (*vec.Vector[T], error) {
	v, _, err := NewVectorSer(elem).Unmarshal(bs)
	return v, err
}
