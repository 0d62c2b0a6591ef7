package codec

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/quickwritereader/VecOS/vec"
)

// EncodeMsgpack renders the live elements as a msgpack array.
func EncodeMsgpack[T any](v *vec.Vector[T]) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeArrayLen(v.Len()); err != nil {
		return nil, &Error{Codec: "msgpack", Op: "encode", Err: err}
	}
	for x := range v.ValuesIter() {
		if err := enc.Encode(x); err != nil {
			return nil, &Error{Codec: "msgpack", Op: "encode", Err: err}
		}
	}
	return buf.Bytes(), nil
}

// DecodeMsgpack rebuilds a vector from a msgpack array. A nil array
// decodes as an empty vector.
func DecodeMsgpack[T any](data []byte) (*vec.Vector[T], error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, &Error{Codec: "msgpack", Op: "decode", Err: err}
	}
	if n <= 0 {
		return vec.New[T](), nil
	}
	// an element takes at least one encoded byte, so never reserve more
	// slots than the input holds; Push grows the rest for honest counts
	hint := min(n, len(data))
	out, err := vec.NewWithHint[T](vec.Reserve(hint))
	if err != nil {
		return nil, &Error{Codec: "msgpack", Op: "decode", Err: err}
	}
	for i := 0; i < n; i++ {
		var x T
		if err := dec.Decode(&x); err != nil {
			return nil, &Error{Codec: "msgpack", Op: "decode", Err: err}
		}
		if err := out.Push(x); err != nil {
			return nil, &Error{Codec: "msgpack", Op: "decode", Err: err}
		}
	}
	return out, nil
}
