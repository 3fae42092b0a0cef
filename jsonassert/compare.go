package jsonassert

import (
	"slices"

	"github.com/jacoelho/restassert/internal/stack"
)

// Mismatch is one difference found by Compare. Path is "" for the document
// root, otherwise e.g. "a.b" or "array[0]".
type Mismatch struct {
	Path     string
	Expected Value
	Actual   Value
}

// Options tunes Compare.
type Options struct {
	// IgnoredPaths skips the addressed nodes and all their descendants. A
	// trailing range such as array[0:3] skips those indexes of the array.
	IgnoredPaths []Path

	// Strict also reports object keys and array elements that exist only in
	// actual. They are reported after the expected-driven children of their
	// parent, with Absent as the expected value.
	Strict bool
}

type frame struct {
	at       []Segment
	actual   Value
	expected Value
	extra    bool
}

// Compare walks expected in pre-order, object keys in document order and
// array indexes ascending, and returns every difference found in actual.
// Keys present only in actual are ignored unless opts.Strict is set.
func Compare(actual, expected Value, opts Options) []Mismatch {
	var mismatches []Mismatch

	pending := stack.New[frame](16)
	pending.Push(frame{actual: actual, expected: expected})

	for pending.Len() > 0 {
		f, _ := pending.Pop()
		if ignored(opts.IgnoredPaths, f.at) {
			continue
		}

		if f.extra {
			mismatches = append(mismatches, Mismatch{Path: renderSegments(f.at), Expected: Absent, Actual: f.actual})
			continue
		}

		switch {
		case f.expected.kind == KindObject && f.actual.kind == KindObject:
			pending.PushReversed(objectChildren(f, opts.Strict)...)
		case f.expected.kind == KindArray && f.actual.kind == KindArray:
			pending.PushReversed(arrayChildren(f, opts.Strict)...)
		case !f.expected.Equal(f.actual):
			mismatches = append(mismatches, Mismatch{Path: renderSegments(f.at), Expected: f.expected, Actual: f.actual})
		}
	}

	return mismatches
}

func ignored(paths []Path, at []Segment) bool {
	for _, p := range paths {
		if p.covers(at) {
			return true
		}
	}
	return false
}

func child(parent []Segment, seg Segment) []Segment {
	return append(slices.Clip(parent), seg)
}

func objectChildren(f frame, strict bool) []frame {
	children := make([]frame, 0, len(f.expected.members))
	for _, m := range f.expected.members {
		actual, _ := f.actual.Get(m.Key)
		children = append(children, frame{at: child(f.at, field(m.Key)), actual: actual, expected: m.Value})
	}

	if strict {
		for _, m := range f.actual.members {
			if _, ok := f.expected.Get(m.Key); ok {
				continue
			}
			children = append(children, frame{at: child(f.at, field(m.Key)), actual: m.Value, extra: true})
		}
	}
	return children
}

func arrayChildren(f frame, strict bool) []frame {
	children := make([]frame, 0, len(f.expected.items))
	for i, item := range f.expected.items {
		actual, _ := f.actual.Index(i)
		children = append(children, frame{at: child(f.at, index(i)), actual: actual, expected: item})
	}

	if strict {
		for i := len(f.expected.items); i < len(f.actual.items); i++ {
			children = append(children, frame{at: child(f.at, index(i)), actual: f.actual.items[i], extra: true})
		}
	}
	return children
}
