package vec

import "encoding/json"

// MarshalJSON renders the live elements as a JSON array. An empty
// vector renders as [].
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	if v.size == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(v.live())
}

// UnmarshalJSON replaces the contents with the decoded array, reusing
// the buffer when it is already big enough.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	v.Clear()
	if err := v.Reserve(len(items)); err != nil {
		return err
	}
	for _, it := range items {
		if err := v.Push(it); err != nil {
			return err
		}
	}
	return nil
}
