package fleet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObject builds a JSON object whose keys keep the order they are added
// in. Its zero value is an empty object.
type jsonObject struct {
	buf bytes.Buffer
	n   int
	err error
}

// Field adds key with value marshaled by encoding/json.
func (o *jsonObject) Field(key string, value any) *jsonObject {
	if o.err != nil {
		return o
	}
	v, err := json.Marshal(value)
	if err != nil {
		o.err = fmt.Errorf("cannot marshal %q: %w", key, err)
		return o
	}
	k, _ := json.Marshal(key)

	if o.n > 0 {
		o.buf.WriteByte(',')
	}
	o.buf.Write(k)
	o.buf.WriteByte(':')
	o.buf.Write(v)
	o.n++
	return o
}

// OmitEmpty adds key only if value is not the zero value of its type.
func (o *jsonObject) OmitEmpty(key string, value any) *jsonObject {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return o
	}
	return o.Field(key, value)
}

// MarshalJSON returns the object, or the first error met while adding fields.
func (o *jsonObject) MarshalJSON() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	out := make([]byte, 0, o.buf.Len()+2)
	out = append(out, '{')
	out = append(out, o.buf.Bytes()...)
	return append(out, '}'), nil
}
