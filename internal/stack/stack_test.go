package stack

import (
	"testing"
)

func TestPushPop(t *testing.T) {
	t.Parallel()

	s := New[int](2)
	s.Push(1, 2)
	s.Push(3)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = %d, %t, want %d, true", got, ok, want)
		}
	}

	if _, ok := s.Pop(); ok {
		t.Fatal("Pop() on empty stack returned ok")
	}
}

func TestPushReversed(t *testing.T) {
	t.Parallel()

	s := New[string](0)
	s.PushReversed("a", "b", "c")

	var got []string
	for s.Len() > 0 {
		v, _ := s.Pop()
		got = append(got, v)
	}

	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop order = %v, want %v", got, want)
		}
	}
}
