package godec

// Result is the outcome of a decode attempt: exactly one of a success value or
// a failure message is populated, never both. The zero value is an Err with an
// empty message; use Ok/Err to construct populated results.
type Result[T any] struct {
	value T
	msg   string
	ok    bool
}

// Ok returns the success variant carrying v.
func Ok[T any](v T) Result[T] { return Result[T]{value: v, ok: true} }

// Err returns the failure variant carrying a human-readable message.
func Err[T any](msg string) Result[T] { return Result[T]{msg: msg} }

// IsErr reports whether r is the failure variant.
func (r Result[T]) IsErr() bool { return !r.ok }

// Unwrap returns the success value. Calling it on an Err is a bug in the
// caller, not a decode failure, and panics.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic("godec: Unwrap called on an Err result: " + r.msg)
	}
	return r.value
}

// UnwrapErr returns the failure message. Calling it on an Ok panics.
func (r Result[T]) UnwrapErr() string {
	if r.ok {
		panic("godec: UnwrapErr called on an Ok result")
	}
	return r.msg
}

// AndThen feeds the success value of r into f and returns f's result; an Err
// passes through unchanged and f is never called. Every higher combinator in
// this package reduces to this short-circuit rule.
//
// Free function rather than a method because Go methods cannot introduce the U
// type parameter.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.ok {
		return Err[U](r.msg)
	}
	return f(r.value)
}
