package stream

import (
	"fmt"
	"reflect"
	"time"

	"github.com/calebcase/fixed/decimal"
)

// Appender is implemented by types that render themselves into a Stream.
type Appender interface {
	AppendStream(s *Stream)
}

// KV is a key and value rendered as "key: value".
type KV struct {
	Key   any
	Value any
}

// AppendStream implements Appender.
func (kv KV) AppendStream(s *Stream) {
	s.Put(kv.Key).Str(": ").Put(kv.Value)
}

// Put appends v according to its type. Numbers, decimals, durations and
// strings use the scalar writers, slices and arrays are written as
// "[ a, b, c ]" with every element rendered by Put, and anything else falls
// back to fmt's %v.
func (s *Stream) Put(v any) *Stream {
	switch x := v.(type) {
	case nil:
		return s.Str("nil")
	case decimal.Decimal:
		return s.Decimal(x)
	case int:
		return s.Int(int64(x))
	case int8:
		return s.Int(int64(x))
	case int16:
		return s.Int(int64(x))
	case int32:
		return s.Int(int64(x))
	case int64:
		return s.Int(x)
	case uint:
		return s.Uint(uint64(x))
	case uint8:
		return s.Uint(uint64(x))
	case uint16:
		return s.Uint(uint64(x))
	case uint32:
		return s.Uint(uint64(x))
	case uint64:
		return s.Uint(x)
	case uintptr:
		return s.Uint(uint64(x))
	case float32:
		return s.Float(float64(x))
	case float64:
		return s.Float(x)
	case bool:
		if x {
			return s.Str("true")
		}
		return s.Str("false")
	case string:
		return s.Str(x)
	case []byte:
		s.buf = append(s.buf, x...)
		return s
	case time.Duration:
		return s.Duration(x)
	case Appender:
		x.AppendStream(s)
		return s
	case []decimal.Decimal:
		return Slice(s, x)
	case []int64:
		return Slice(s, x)
	case []float64:
		return Slice(s, x)
	case []string:
		return Slice(s, x)
	case []any:
		return Slice(s, x)
	case error:
		return s.Str(x.Error())
	case fmt.Stringer:
		return s.Str(x.String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		s.Str("[ ")
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				s.Str(", ")
			}
			s.Put(rv.Index(i).Interface())
		}
		return s.Str(" ]")
	}

	s.buf = fmt.Append(s.buf, v)

	return s
}

// Slice appends xs as "[ a, b, c ]", rendering every element with Put.
func Slice[T any](s *Stream, xs []T) *Stream {
	s.Str("[ ")
	for i, x := range xs {
		if i > 0 {
			s.Str(", ")
		}
		s.Put(x)
	}

	return s.Str(" ]")
}
