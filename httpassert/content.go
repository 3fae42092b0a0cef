package httpassert

import (
	"strings"

	"github.com/jacoelho/restassert/assertion"
	"github.com/jacoelho/restassert/jsonassert"
	"github.com/jacoelho/restassert/predicate"
)

func HasContent(r Response, content string) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	if r.Content() != content {
		return assertion.Failuref("Expecting content to be %q but was %q", content, r.Content())
	}
	return assertion.Success()
}

func ContentContains(r Response, fragment string) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	if !strings.Contains(r.Content(), fragment) {
		return assertion.Failuref("Expecting content to contain %q but was %q", fragment, r.Content())
	}
	return assertion.Success()
}

// IsJSONEqualTo compares the body with expected as jsonassert.IsEqualTo does.
func IsJSONEqualTo(r Response, expected any) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	return jsonassert.IsEqualTo(r.Content(), expected)
}

func IsJSONEqualToIgnoring(r Response, expected any, ignoredPaths ...string) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	return jsonassert.IsEqualToIgnoring(r.Content(), expected, ignoredPaths...)
}

// HasJSONPath runs an RFC 9535 JSONPath query against the body.
func HasJSONPath(r Response, expr string) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	return jsonassert.HasPath(r.Content(), expr)
}

func HasJSONPathValue(r Response, expr string, expected any) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	return jsonassert.HasPathValue(r.Content(), expr, expected)
}

func JSONPathMatches(r Response, expr string, p predicate.Expr) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	return jsonassert.PathMatches(r.Content(), expr, p)
}
