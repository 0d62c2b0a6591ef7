// Package codec serializes vectors to JSON, msgpack and the MUS binary
// format, and benchmarks the encoders against each other.
package codec

import (
	"fmt"

	goccyjson "github.com/goccy/go-json"

	"github.com/quickwritereader/VecOS/vec"
)

// Error wraps a serialization failure with the codec and operation that
// produced it.
type Error struct {
	Codec string
	Op    string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("codec %s: %s: %v", e.Codec, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// EncodeJSON renders the live elements as a JSON array through
// goccy/go-json. An empty vector renders as [].
func EncodeJSON[T any](v *vec.Vector[T]) ([]byte, error) {
	if v.IsEmpty() {
		return []byte("[]"), nil
	}
	out, err := goccyjson.Marshal(v.Slice())
	if err != nil {
		return nil, &Error{Codec: "json", Op: "encode", Err: err}
	}
	return out, nil
}

// DecodeJSON rebuilds a vector from a JSON array through goccy/go-json.
func DecodeJSON[T any](data []byte) (*vec.Vector[T], error) {
	var items []T
	if err := goccyjson.Unmarshal(data, &items); err != nil {
		return nil, &Error{Codec: "json", Op: "decode", Err: err}
	}
	return vec.NewOf(items...), nil
}
