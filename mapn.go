package godec

// Map2 through Map8 run several decoders against the same input and combine
// the decoded values. The decoder count and the combine function's parameter
// count are tied together by the signature, so an arity mismatch is a compile
// error rather than a deferred runtime check.
//
// Every decoder runs even after an earlier one has failed; decoders are
// side-effect-free, so this keeps the evaluation rule uniform without being
// observable. Only the first failure in argument order is surfaced, and
// combine runs only when all decoders succeed, receiving the values in
// argument order.

// Map2 combines two decoders run against the same input.
func Map2[A, B, R any](da Decoder[A], db Decoder[B], combine func(A, B) R) Decoder[R] {
	return func(v any) Result[R] {
		ra := da(v)
		rb := db(v)
		if ra.IsErr() {
			return Err[R](ra.msg)
		}
		if rb.IsErr() {
			return Err[R](rb.msg)
		}
		return Ok(combine(ra.value, rb.value))
	}
}

// Map3 combines three decoders run against the same input.
func Map3[A, B, C, R any](da Decoder[A], db Decoder[B], dc Decoder[C], combine func(A, B, C) R) Decoder[R] {
	return func(v any) Result[R] {
		ra := da(v)
		rb := db(v)
		rc := dc(v)
		if ra.IsErr() {
			return Err[R](ra.msg)
		}
		if rb.IsErr() {
			return Err[R](rb.msg)
		}
		if rc.IsErr() {
			return Err[R](rc.msg)
		}
		return Ok(combine(ra.value, rb.value, rc.value))
	}
}

// Map4 combines four decoders run against the same input.
func Map4[A, B, C, D, R any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], combine func(A, B, C, D) R) Decoder[R] {
	return func(v any) Result[R] {
		ra := da(v)
		rb := db(v)
		rc := dc(v)
		rd := dd(v)
		if ra.IsErr() {
			return Err[R](ra.msg)
		}
		if rb.IsErr() {
			return Err[R](rb.msg)
		}
		if rc.IsErr() {
			return Err[R](rc.msg)
		}
		if rd.IsErr() {
			return Err[R](rd.msg)
		}
		return Ok(combine(ra.value, rb.value, rc.value, rd.value))
	}
}

// Map5 combines five decoders run against the same input.
func Map5[A, B, C, D, E, R any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], combine func(A, B, C, D, E) R) Decoder[R] {
	return func(v any) Result[R] {
		ra := da(v)
		rb := db(v)
		rc := dc(v)
		rd := dd(v)
		re := de(v)
		if ra.IsErr() {
			return Err[R](ra.msg)
		}
		if rb.IsErr() {
			return Err[R](rb.msg)
		}
		if rc.IsErr() {
			return Err[R](rc.msg)
		}
		if rd.IsErr() {
			return Err[R](rd.msg)
		}
		if re.IsErr() {
			return Err[R](re.msg)
		}
		return Ok(combine(ra.value, rb.value, rc.value, rd.value, re.value))
	}
}

// Map6 combines six decoders run against the same input.
func Map6[A, B, C, D, E, F, R any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], combine func(A, B, C, D, E, F) R) Decoder[R] {
	return func(v any) Result[R] {
		ra := da(v)
		rb := db(v)
		rc := dc(v)
		rd := dd(v)
		re := de(v)
		rf := df(v)
		if ra.IsErr() {
			return Err[R](ra.msg)
		}
		if rb.IsErr() {
			return Err[R](rb.msg)
		}
		if rc.IsErr() {
			return Err[R](rc.msg)
		}
		if rd.IsErr() {
			return Err[R](rd.msg)
		}
		if re.IsErr() {
			return Err[R](re.msg)
		}
		if rf.IsErr() {
			return Err[R](rf.msg)
		}
		return Ok(combine(ra.value, rb.value, rc.value, rd.value, re.value, rf.value))
	}
}

// Map7 combines seven decoders run against the same input.
func Map7[A, B, C, D, E, F, G, R any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], dg Decoder[G], combine func(A, B, C, D, E, F, G) R) Decoder[R] {
	return func(v any) Result[R] {
		ra := da(v)
		rb := db(v)
		rc := dc(v)
		rd := dd(v)
		re := de(v)
		rf := df(v)
		rg := dg(v)
		if ra.IsErr() {
			return Err[R](ra.msg)
		}
		if rb.IsErr() {
			return Err[R](rb.msg)
		}
		if rc.IsErr() {
			return Err[R](rc.msg)
		}
		if rd.IsErr() {
			return Err[R](rd.msg)
		}
		if re.IsErr() {
			return Err[R](re.msg)
		}
		if rf.IsErr() {
			return Err[R](rf.msg)
		}
		if rg.IsErr() {
			return Err[R](rg.msg)
		}
		return Ok(combine(ra.value, rb.value, rc.value, rd.value, re.value, rf.value, rg.value))
	}
}

// Map8 combines eight decoders run against the same input.
func Map8[A, B, C, D, E, F, G, H, R any](da Decoder[A], db Decoder[B], dc Decoder[C], dd Decoder[D], de Decoder[E], df Decoder[F], dg Decoder[G], dh Decoder[H], combine func(A, B, C, D, E, F, G, H) R) Decoder[R] {
	return func(v any) Result[R] {
		ra := da(v)
		rb := db(v)
		rc := dc(v)
		rd := dd(v)
		re := de(v)
		rf := df(v)
		rg := dg(v)
		rh := dh(v)
		if ra.IsErr() {
			return Err[R](ra.msg)
		}
		if rb.IsErr() {
			return Err[R](rb.msg)
		}
		if rc.IsErr() {
			return Err[R](rc.msg)
		}
		if rd.IsErr() {
			return Err[R](rd.msg)
		}
		if re.IsErr() {
			return Err[R](re.msg)
		}
		if rf.IsErr() {
			return Err[R](rf.msg)
		}
		if rg.IsErr() {
			return Err[R](rg.msg)
		}
		if rh.IsErr() {
			return Err[R](rh.msg)
		}
		return Ok(combine(ra.value, rb.value, rc.value, rd.value, re.value, rf.value, rg.value, rh.value))
	}
}
