package server

import "encoding/json"

// Optional is a tri-state JSON field: absent, explicitly null, or a value.
// Partial updates need the distinction so that an omitted field is left
// untouched while an explicit null clears it.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	if string(data) == "null" {
		var zero T
		o.Valid = false
		o.Value = zero

		return nil
	}

	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}

	o.Valid = true

	return nil
}
