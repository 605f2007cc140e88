package godec

import "github.com/reoring/godec/i18n"

// FromKey looks key up in a mapping input and runs inner on the value found
// there. Non-mapping input and missing keys fail before inner ever runs.
func FromKey[T any](key string, inner Decoder[T]) Decoder[T] {
	return func(v any) Result[T] {
		m, ok := v.(map[string]any)
		if !ok {
			return Err[T](i18n.T(CodeNotMapping, nil))
		}
		elem, ok := m[key]
		if !ok {
			return Err[T](i18n.T(CodeMissingKey, map[string]string{"key": key}))
		}
		return inner(elem)
	}
}

// AtIndex runs inner on the index-th element of a sequence input. Negative
// indexes are rejected the same way as indexes past the end; there is no
// offset-from-end addressing.
func AtIndex[T any](index int, inner Decoder[T]) Decoder[T] {
	return func(v any) Result[T] {
		seq, ok := v.([]any)
		if !ok {
			return Err[T](i18n.T(CodeNotSequence, nil))
		}
		if index < 0 || index >= len(seq) {
			return Err[T](i18n.T(CodeIndexRange, nil))
		}
		return inner(seq[index])
	}
}

// Array decodes every element of a sequence input with inner, in index order,
// stopping at the first failing element. The error is that element's own
// message; no position information is added. On success the output preserves
// the input's length and order.
func Array[T any](inner Decoder[T]) Decoder[[]T] {
	return func(v any) Result[[]T] {
		seq, ok := v.([]any)
		if !ok {
			return Err[[]T](i18n.T(CodeNotSequence, nil))
		}
		out := make([]T, 0, len(seq))
		for _, elem := range seq {
			r := inner(elem)
			if r.IsErr() {
				return Err[[]T](r.msg)
			}
			out = append(out, r.value)
		}
		return Ok(out)
	}
}
