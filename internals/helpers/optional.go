// file: internals/helpers/optional.go
package helper

import "encoding/json"

// Optional membedakan field yang tidak dikirim, dikirim null, dan dikirim berisi —
// dibutuhkan partial update yang bisa meng-clear kolom nullable secara eksplisit.
type Optional[T any] struct {
	Set   bool // true jika key ada di payload
	Valid bool // false jika value-nya null
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr mengembalikan nilai sebagai pointer (nil saat null) untuk disalin ke model.
func (o Optional[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
