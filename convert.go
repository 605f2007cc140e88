package godec

import (
	"strconv"
	"time"

	"github.com/reoring/godec/i18n"
)

// Conversion decoders: require a textual scalar, then convert it to a typed
// value. Failure messages embed the raw input.

// StringToInt converts textual input such as "42" to an integer. Leading or
// trailing garbage and empty strings fail.
func StringToInt() Decoder[int64] {
	return func(v any) Result[int64] {
		s, ok := v.(string)
		if !ok {
			return Err[int64](i18n.T(CodeNotString, nil))
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Err[int64](i18n.T(CodeConvertInteger, map[string]string{"raw": s}))
		}
		return Ok(n)
	}
}

// StringToFloat converts textual input such as "3.14" to a float.
func StringToFloat() Decoder[float64] {
	return func(v any) Result[float64] {
		s, ok := v.(string)
		if !ok {
			return Err[float64](i18n.T(CodeNotString, nil))
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Err[float64](i18n.T(CodeConvertFloat, map[string]string{"raw": s}))
		}
		return Ok(f)
	}
}

// StringToBool converts textual input accepted by strconv.ParseBool ("true",
// "1", "F", ...) to a boolean.
func StringToBool() Decoder[bool] {
	return func(v any) Result[bool] {
		s, ok := v.(string)
		if !ok {
			return Err[bool](i18n.T(CodeNotString, nil))
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Err[bool](i18n.T(CodeConvertBoolean, map[string]string{"raw": s}))
		}
		return Ok(b)
	}
}

// TimeRFC3339 converts textual input in RFC3339 form to a time.Time.
func TimeRFC3339() Decoder[time.Time] {
	return func(v any) Result[time.Time] {
		s, ok := v.(string)
		if !ok {
			return Err[time.Time](i18n.T(CodeNotString, nil))
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return Err[time.Time](i18n.T(CodeInvalidTime, map[string]string{"raw": s}))
		}
		return Ok(t)
	}
}
