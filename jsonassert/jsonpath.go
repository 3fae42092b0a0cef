package jsonassert

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/theory/jsonpath"

	"github.com/jacoelho/restassert/assertion"
	"github.com/jacoelho/restassert/predicate"
)

// selectPath runs an RFC 9535 JSONPath query against the decoded document.
func selectPath(actual any, expr string) ([]any, assertion.Result) {
	doc, res := document(actual, "actual")
	if !res.OK() {
		return nil, res
	}

	if expr == "" {
		return nil, assertion.InvalidInput("Expecting json path not to be empty")
	}

	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, assertion.InvalidInputf("Expecting a valid json path %s: %v", expr, err)
	}

	// json.Number keeps the literal so large integers compare exactly.
	decoder := json.NewDecoder(strings.NewReader(doc.String()))
	decoder.UseNumber()

	var data any
	if err := decoder.Decode(&data); err != nil {
		return nil, assertion.InvalidInputf("Expecting actual to be valid json: %v", err)
	}

	return path.Select(data), assertion.Success()
}

// HasPath succeeds when expr selects at least one node.
func HasPath(actual any, expr string) assertion.Result {
	nodes, res := selectPath(actual, expr)
	if !res.OK() {
		return res
	}
	if len(nodes) == 0 {
		return assertion.Failuref("Expecting json to have path %s", expr)
	}
	return assertion.Success()
}

// DoesNotHavePath succeeds when expr selects nothing.
func DoesNotHavePath(actual any, expr string) assertion.Result {
	nodes, res := selectPath(actual, expr)
	if !res.OK() {
		return res
	}
	if len(nodes) > 0 {
		return assertion.Failuref("Expecting json not to have path %s but found %s", expr, render(nodes[0]))
	}
	return assertion.Success()
}

// HasPathCount succeeds when expr selects exactly n nodes.
func HasPathCount(actual any, expr string, n int) assertion.Result {
	nodes, res := selectPath(actual, expr)
	if !res.OK() {
		return res
	}
	if len(nodes) != n {
		return assertion.Failuref("Expecting json path %s to select %d values but selected %d", expr, n, len(nodes))
	}
	return assertion.Success()
}

// HasPathValue compares the first node selected by expr with expected using
// JSON equality.
func HasPathValue(actual any, expr string, expected any) assertion.Result {
	want, res := document(expected, "expected")
	if !res.OK() {
		return res
	}

	nodes, res := selectPath(actual, expr)
	if !res.OK() {
		return res
	}
	if len(nodes) == 0 {
		return assertion.Failuref("Expecting json to have path %s", expr)
	}

	got, err := FromAny(nodes[0])
	if err != nil {
		return assertion.InvalidInput(err.Error())
	}
	if !got.Equal(want) {
		return assertion.Failuref("Expecting json path %s to be equal to %s but was %s", expr, want, got)
	}
	return assertion.Success()
}

// PathMatches evaluates p against the first node selected by expr. A missing
// node is evaluated as null, so predicate.Exists fails on it.
func PathMatches(actual any, expr string, p predicate.Expr) assertion.Result {
	nodes, res := selectPath(actual, expr)
	if !res.OK() {
		return res
	}

	var node any
	if len(nodes) > 0 {
		node = nodes[0]
	}

	ok, err := p.Evaluate(node)
	if err != nil {
		return assertion.InvalidInput(err.Error())
	}
	if !ok {
		return assertion.Failuref("Expecting json path %s to satisfy %s but was %s", expr, p, render(node))
	}
	return assertion.Success()
}

func render(node any) string {
	v, err := FromAny(node)
	if err != nil {
		return fmt.Sprintf("%v", node)
	}
	return v.String()
}
