package godec

// Decoder validates and converts an untyped value into a T. A Decoder is an
// immutable closure: composing decoders builds new values and never mutates
// existing ones, so the same Decoder may be run repeatedly and shared across
// goroutines without locks.
type Decoder[T any] func(v any) Result[T]

// Run decodes v. Every decode failure surfaces as the Err variant; Run never
// panics.
func (d Decoder[T]) Run(v any) Result[T] { return d(v) }

// DecodeError is the panic payload of MustRun. Message is the failure message
// of the underlying Err, verbatim.
type DecodeError struct{ Message string }

func (e *DecodeError) Error() string { return "godec: " + e.Message }

// MustRun decodes v and returns the value, panicking with *DecodeError when the
// decode fails. No combinator calls it; it exists for call sites that have no
// recovery strategy.
func (d Decoder[T]) MustRun(v any) T {
	r := d(v)
	if r.IsErr() {
		panic(&DecodeError{Message: r.msg})
	}
	return r.value
}

// Map applies f to the decoded value on success. f cannot turn success into
// failure (that is Then's job) and is never called when d fails; the failure
// message propagates unchanged.
func Map[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return func(v any) Result[B] {
		r := d(v)
		if r.IsErr() {
			return Err[B](r.msg)
		}
		return Ok(f(r.value))
	}
}

// Then sequences dependent decoders: it runs d, hands the decoded value to f to
// pick the follow-up decoder, then runs that decoder against the original
// input, not the decoded value. Running against the original input is what lets
// a decoder inspect a discriminator field of a mapping and then decode the
// whole mapping accordingly. When d fails, f is never called.
func Then[A, B any](d Decoder[A], f func(A) Decoder[B]) Decoder[B] {
	return func(v any) Result[B] {
		r := d(v)
		if r.IsErr() {
			return Err[B](r.msg)
		}
		return f(r.value)(v)
	}
}

// OrElse tries d first and falls back to other on failure, running other
// against the same input and returning its result, success or failure.
// Left-biased: when d succeeds, other is never invoked. Chaining
// a.OrElse(b).OrElse(c) returns the last attempt's result with no aggregation
// of intermediate errors.
func (d Decoder[T]) OrElse(other Decoder[T]) Decoder[T] {
	return func(v any) Result[T] {
		if r := d(v); !r.IsErr() {
			return r
		}
		return other(v)
	}
}

// To discards the decoded value and succeeds with the fixed replacement v
// instead. Failures propagate unchanged.
func To[A, B any](d Decoder[A], v B) Decoder[B] {
	return Map(d, func(A) B { return v })
}
