package godec

// Lazy defers decoder construction until run time: thunk is invoked on every
// Run and the decoder it returns is applied to the input. Resolving the
// reference only when a concrete input is in hand is what lets a decoder refer
// to itself (a nested record with an optional child slot) without recursing
// forever at construction time.
//
// The thunk's result is not memoized, so construction cost recurs on every
// decode. Decoder construction is cheap closure assembly, not data traversal,
// so this stays negligible. A thunk whose self-reference never reaches a base
// case on the given input recurses without bound; the engine does not guard
// against that.
func Lazy[T any](thunk func() Decoder[T]) Decoder[T] {
	return func(v any) Result[T] {
		return thunk()(v)
	}
}
