package dto

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes a field that is absent from the payload from one
// that is explicitly null. Partial updates only touch fields that are
// Present; a Present field with a nil Value clears the column.
type Optional[T any] struct {
	Present bool
	Value   *T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Present = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

type MessageResponse struct {
	Message string `json:"message"`
}
