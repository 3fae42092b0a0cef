package jsonassert

import (
	"strings"
	"testing"

	"github.com/jacoelho/restassert/assertion"
	"github.com/jacoelho/restassert/predicate"
)

const booksBody = `{
  "store": {
    "books": [
      {"title": "Sayings", "price": 8.95, "tags": ["quotes"]},
      {"title": "Sword", "price": 12.99, "tags": []}
    ],
    "open": true
  }
}`

func TestJSONPathAssertions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result assertion.Result
		kind   assertion.Kind
	}{
		{name: "has_path", result: HasPath(booksBody, "$.store.books[0].title"), kind: assertion.KindSuccess},
		{name: "has_path_filter", result: HasPath(booksBody, "$.store.books[?@.price > 10]"), kind: assertion.KindSuccess},
		{name: "has_path_missing", result: HasPath(booksBody, "$.store.music"), kind: assertion.KindMismatch},
		{name: "does_not_have_path", result: DoesNotHavePath(booksBody, "$.store.music"), kind: assertion.KindSuccess},
		{name: "does_not_have_path_present", result: DoesNotHavePath(booksBody, "$.store.open"), kind: assertion.KindMismatch},
		{name: "count", result: HasPathCount(booksBody, "$.store.books[*]", 2), kind: assertion.KindSuccess},
		{name: "count_wrong", result: HasPathCount(booksBody, "$..title", 3), kind: assertion.KindMismatch},
		{name: "value_string", result: HasPathValue(booksBody, "$.store.books[1].title", `"Sword"`), kind: assertion.KindSuccess},
		{name: "value_number", result: HasPathValue(booksBody, "$.store.books[0].price", 8.95), kind: assertion.KindSuccess},
		{name: "value_object", result: HasPathValue(booksBody, "$.store.books[0]", `{"tags":["quotes"],"price":8.95,"title":"Sayings"}`), kind: assertion.KindSuccess},
		{name: "value_differs", result: HasPathValue(booksBody, "$.store.open", false), kind: assertion.KindMismatch},
		{name: "value_big_integer", result: HasPathValue(`{"id":12345678901234567890}`, "$.id", "12345678901234567890"), kind: assertion.KindSuccess},
		{name: "value_big_integer_differs", result: HasPathValue(`{"id":12345678901234567890}`, "$.id", "12345678901234567891"), kind: assertion.KindMismatch},
		{name: "value_decimal_literal", result: HasPathValue(`{"n":1.0}`, "$.n", 1), kind: assertion.KindSuccess},
		{name: "value_missing", result: HasPathValue(booksBody, "$.nope", 1), kind: assertion.KindMismatch},
		{name: "matches", result: PathMatches(booksBody, "$.store.books[1].price", predicate.GreaterThan(10)), kind: assertion.KindSuccess},
		{name: "matches_regex", result: PathMatches(booksBody, "$.store.books[0].title", predicate.Matches("^Say")), kind: assertion.KindSuccess},
		{name: "matches_length", result: PathMatches(booksBody, "$.store.books", predicate.HasLength(2)), kind: assertion.KindSuccess},
		{name: "matches_fails", result: PathMatches(booksBody, "$.store.books[1].tags", predicate.Exists()), kind: assertion.KindMismatch},
		{name: "matches_missing_node", result: PathMatches(booksBody, "$.store.none", predicate.Exists()), kind: assertion.KindMismatch},
		{name: "matches_type_error", result: PathMatches(booksBody, "$.store.open", predicate.Contains("t")), kind: assertion.KindInvalidInput},
		{name: "invalid_expression", result: HasPath(booksBody, "$.store[?"), kind: assertion.KindInvalidInput},
		{name: "empty_expression", result: HasPath(booksBody, ""), kind: assertion.KindInvalidInput},
		{name: "nil_document", result: HasPath(nil, "$"), kind: assertion.KindInvalidInput},
		{name: "invalid_document", result: HasPath(`{"a":`, "$.a"), kind: assertion.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.result.Kind() != tt.kind {
				t.Fatalf("Kind() = %v, want %v (%s)", tt.result.Kind(), tt.kind, tt.result)
			}
		})
	}
}

func TestJSONPathMessages(t *testing.T) {
	t.Parallel()

	res := HasPathValue(booksBody, "$.store.books[0].title", `"Other"`)
	if want := `Expecting json path $.store.books[0].title to be equal to "Other" but was "Sayings"`; res.Message() != want {
		t.Fatalf("Message() = %q, want %q", res.Message(), want)
	}

	res = PathMatches(booksBody, "$.store.books[0].price", predicate.LessThan(5))
	if !strings.Contains(res.Message(), "to satisfy less_than 5 but was 8.95") {
		t.Fatalf("Message() = %q", res.Message())
	}

	res = HasPathValue(`{"id":12345678901234567890}`, "$.id", "1")
	if want := "Expecting json path $.id to be equal to 1 but was 12345678901234567890"; res.Message() != want {
		t.Fatalf("Message() = %q, want %q", res.Message(), want)
	}

	res = DoesNotHavePath(booksBody, "$.store.open")
	if want := "Expecting json not to have path $.store.open but found true"; res.Message() != want {
		t.Fatalf("Message() = %q, want %q", res.Message(), want)
	}
}
