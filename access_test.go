package godec_test

import (
	"strings"
	"testing"

	godec "github.com/reoring/godec"
)

func TestFromKey_RunsInnerOnValue(t *testing.T) {
	d := godec.FromKey("a", godec.StringToInt())
	r := d.Run(map[string]any{"a": "24"})
	if r.IsErr() || r.Unwrap() != 24 {
		t.Fatalf("expected Ok(24), got %+v", r)
	}
}

func TestFromKey_MissingKeyNamesTheKey(t *testing.T) {
	d := godec.FromKey("a", godec.StringToInt())
	r := d.Run(map[string]any{"b": "1"})
	if !r.IsErr() {
		t.Fatalf("expected failure for missing key")
	}
	if msg := r.UnwrapErr(); !strings.Contains(msg, "`a`") {
		t.Fatalf("message should reference the key, got %q", msg)
	}
}

func TestFromKey_RejectsNonMapping(t *testing.T) {
	r := godec.FromKey("a", godec.Raw()).Run([]any{"a"})
	if !r.IsErr() || r.UnwrapErr() != "not a mapping" {
		t.Fatalf("expected not a mapping, got %+v", r)
	}
}

func TestAtIndex_BoundCheck(t *testing.T) {
	d := godec.AtIndex(1, godec.StringToInt())

	r := d.Run([]any{"2"})
	if !r.IsErr() || r.UnwrapErr() != "index out of range" {
		t.Fatalf("expected index out of range, got %+v", r)
	}

	r = d.Run([]any{"2", "42"})
	if r.IsErr() || r.Unwrap() != 42 {
		t.Fatalf("expected Ok(42), got %+v", r)
	}
}

func TestAtIndex_NegativeIndexRejected(t *testing.T) {
	r := godec.AtIndex(-1, godec.Raw()).Run([]any{"last"})
	if !r.IsErr() || r.UnwrapErr() != "index out of range" {
		t.Fatalf("negative indexes must be rejected, got %+v", r)
	}
}

func TestAtIndex_RejectsNonSequence(t *testing.T) {
	r := godec.AtIndex(0, godec.Raw()).Run(map[string]any{})
	if !r.IsErr() || r.UnwrapErr() != "not a sequence" {
		t.Fatalf("expected not a sequence, got %+v", r)
	}
}

func TestArray_DecodesInOrder(t *testing.T) {
	r := godec.Array(godec.StringToInt()).Run([]any{"42", "43"})
	if r.IsErr() {
		t.Fatalf("expected success, got %q", r.UnwrapErr())
	}
	got := r.Unwrap()
	if len(got) != 2 || got[0] != 42 || got[1] != 43 {
		t.Fatalf("expected [42 43], got %v", got)
	}
}

func TestArray_StopsAtFirstFailure(t *testing.T) {
	r := godec.Array(godec.StringToInt()).Run([]any{"foo", "43"})
	if !r.IsErr() {
		t.Fatalf("expected failure for the first element")
	}
	if msg := r.UnwrapErr(); !strings.Contains(msg, `"foo"`) {
		t.Fatalf("error should be the failing element's own message, got %q", msg)
	}
}

func TestArray_LaterElementsNotDecodedAfterFailure(t *testing.T) {
	seen := 0
	counting := godec.Decoder[int64](func(v any) godec.Result[int64] {
		seen++
		return godec.StringToInt().Run(v)
	})
	_ = godec.Array(counting).Run([]any{"bad", "43", "44"})
	if seen != 1 {
		t.Fatalf("expected decoding to stop at the first failing element, decoded %d", seen)
	}
}

func TestArray_RejectsNonSequence(t *testing.T) {
	r := godec.Array(godec.Raw()).Run("nope")
	if !r.IsErr() || r.UnwrapErr() != "not a sequence" {
		t.Fatalf("expected not a sequence, got %+v", r)
	}
}

func TestArray_EmptySequence(t *testing.T) {
	r := godec.Array(godec.StringToInt()).Run([]any{})
	if r.IsErr() || len(r.Unwrap()) != 0 {
		t.Fatalf("expected Ok([]), got %+v", r)
	}
}
