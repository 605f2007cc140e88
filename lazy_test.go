package godec_test

import (
	"reflect"
	"testing"

	godec "github.com/reoring/godec"
)

type node struct {
	Name   string
	Parent *node
}

// nodeDecoder builds a decoder for a named node with an optional parent,
// referring to itself through Lazy for the nested slot.
func nodeDecoder() godec.Decoder[*node] {
	var self godec.Decoder[*node]
	self = godec.Map2(
		godec.FromKey("name", godec.String()),
		godec.FromKey("parent",
			godec.To(godec.Nil(), (*node)(nil)).
				OrElse(godec.Lazy(func() godec.Decoder[*node] { return self }))),
		func(name string, parent *node) *node { return &node{Name: name, Parent: parent} },
	)
	return self
}

func TestLazy_RecursiveDecodingTerminates(t *testing.T) {
	in := map[string]any{
		"name": "a",
		"parent": map[string]any{
			"name":   "b",
			"parent": nil,
		},
	}
	r := nodeDecoder().Run(in)
	if r.IsErr() {
		t.Fatalf("expected success, got %q", r.UnwrapErr())
	}
	want := &node{Name: "a", Parent: &node{Name: "b"}}
	if got := r.Unwrap(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLazy_ThunkRunsOncePerRun(t *testing.T) {
	calls := 0
	d := godec.Lazy(func() godec.Decoder[string] {
		calls++
		return godec.String()
	})
	if calls != 0 {
		t.Fatalf("construction must not invoke the thunk")
	}
	_ = d.Run("x")
	_ = d.Run("y")
	if calls != 2 {
		t.Fatalf("expected one thunk call per run, got %d", calls)
	}
}

func TestLazy_FailurePropagates(t *testing.T) {
	d := godec.Lazy(func() godec.Decoder[int64] { return godec.Int() })
	r := d.Run("not a number")
	if !r.IsErr() || r.UnwrapErr() != "not an Integer" {
		t.Fatalf("expected the inner decoder's failure, got %+v", r)
	}
}
