// Package godec provides:
//
//   - A two-variant Result carrier for decode outcomes (Ok/Err)
//   - Composable Decoder values over untyped input (Map/Then/OrElse/To)
//   - Structural accessors for mappings and sequences (FromKey/AtIndex/Array)
//   - Fixed-arity aggregation (Map2..Map8) and self-reference via Lazy
//   - Primitive scalar decoders and text conversions, with messages served by
//     the i18n dictionary
//
// Design policy:
//   - Decoders are immutable closures; composition builds values, execution is
//     a plain synchronous call tree. Run never panics; MustRun is the only
//     fatal entry point.
//   - Alternation is left-biased and every combinator surfaces the first
//     failure only; there is no multi-error accumulation.
//   - Then resolves the follow-up decoder from the decoded value but runs it
//     against the original input, which is what makes discriminated mappings
//     decodable.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := godec.Map2(
//		godec.FromKey("name", godec.String()),
//		godec.FromKey("age", godec.StringToInt()),
//		func(name string, age int64) User { return User{Name: name, Age: age} },
//	)
//	res := godec.DecodeJSON(user, data)
package godec
