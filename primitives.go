package godec

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/reoring/godec/i18n"
)

// String succeeds when the input is a textual scalar.
func String() Decoder[string] {
	return func(v any) Result[string] {
		if s, ok := v.(string); ok {
			return Ok(s)
		}
		return Err[string](i18n.T(CodeNotString, nil))
	}
}

// Int succeeds when the input is an integral scalar. json.Number counts when
// it parses as an integer, which is the shape JSONBytes produces for numbers;
// floating-point inputs are rejected even when their value is integral.
func Int() Decoder[int64] {
	return func(v any) Result[int64] {
		if n, ok := asInt(v); ok {
			return Ok(n)
		}
		return Err[int64](i18n.T(CodeNotInteger, nil))
	}
}

// Float succeeds when the input is an integral or floating scalar; integral
// inputs convert to float64.
func Float() Decoder[float64] {
	return func(v any) Result[float64] {
		switch n := v.(type) {
		case float64:
			return Ok(n)
		case float32:
			return Ok(float64(n))
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return Ok(f)
			}
		default:
			if i, ok := asInt(v); ok {
				return Ok(float64(i))
			}
		}
		return Err[float64](i18n.T(CodeNotFloat, nil))
	}
}

// Bool succeeds when the input is a boolean scalar.
func Bool() Decoder[bool] {
	return func(v any) Result[bool] {
		if b, ok := v.(bool); ok {
			return Ok(b)
		}
		return Err[bool](i18n.T(CodeNotBoolean, nil))
	}
}

// Nil succeeds only on the null/absence marker and decodes it as nil.
func Nil() Decoder[any] {
	return func(v any) Result[any] {
		if v == nil {
			return Ok[any](nil)
		}
		return Err[any](i18n.T(CodeNotNil, nil))
	}
}

// Raw accepts any input unchanged.
func Raw() Decoder[any] {
	return func(v any) Result[any] { return Ok(v) }
}

// Match succeeds when the input is deeply equal to want and decodes it
// unchanged. Useful as a discriminator check ahead of Then/OrElse.
func Match(want any) Decoder[any] {
	return func(v any) Result[any] {
		if reflect.DeepEqual(v, want) {
			return Ok(v)
		}
		return Err[any](i18n.T(CodeNoMatch, map[string]string{"want": fmt.Sprintf("%v", want)}))
	}
}

// Succeed ignores the input and always decodes to v.
func Succeed[T any](v T) Decoder[T] {
	return func(any) Result[T] { return Ok(v) }
}

// Fail ignores the input and always fails with msg.
func Fail[T any](msg string) Decoder[T] {
	return func(any) Result[T] { return Err[T](msg) }
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), uint64(n) <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	}
	return 0, false
}
