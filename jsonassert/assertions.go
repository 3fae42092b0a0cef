// Package jsonassert compares JSON documents structurally and reports every
// difference with its path.
//
// Comparison is driven by the expected document: its object keys are visited
// in document order and its arrays by index, so the reported mismatches are
// stable whatever the key order of the actual document. Keys present only in
// the actual document are allowed unless the strict variant is used.
//
//	res := jsonassert.IsEqualToIgnoring(body, `{"id":1,"created":"x"}`, "created")
//	if !res.OK() {
//		t.Fatal(res.Message())
//	}
//
// Documents may be given as string, []byte, json.RawMessage, io.Reader, Value
// or any value encoding/json can marshal. A nil document is an input error,
// never a mismatch.
package jsonassert

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/jacoelho/restassert/assertion"
)

const nullDocumentMessage = "Expecting json not to be null"

// document turns a supported source into a Value. Failures are input errors.
func document(in any, role string) (Value, assertion.Result) {
	var (
		v   Value
		err error
	)

	if isNilInput(in) {
		if role == "actual" {
			return Absent, assertion.InvalidInput(nullDocumentMessage)
		}
		return Absent, assertion.InvalidInputf("Expecting %s json not to be null", role)
	}

	switch src := in.(type) {
	case Value:
		if src.IsAbsent() {
			return Absent, assertion.InvalidInputf("Expecting %s json not to be absent", role)
		}
		return src, assertion.Success()
	case string:
		v, err = Parse([]byte(src))
	case []byte:
		v, err = Parse(src)
	case json.RawMessage:
		v, err = Parse(src)
	case io.Reader:
		var data []byte
		data, err = io.ReadAll(src)
		if err == nil {
			v, err = Parse(data)
		}
	default:
		v, err = FromAny(src)
	}

	if err != nil {
		return Absent, assertion.InvalidInputf("Expecting %s to be valid json: %v", role, err)
	}
	return v, assertion.Success()
}

// isNilInput reports untyped nil and nil pointers, slices, maps, funcs and
// interfaces. A nil []byte or *bytes.Reader is a missing document, not the
// JSON text null.
func isNilInput(in any) bool {
	if in == nil {
		return true
	}
	v := reflect.ValueOf(in)
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func documents(actual, expected any) (Value, Value, assertion.Result) {
	a, res := document(actual, "actual")
	if !res.OK() {
		return Absent, Absent, res
	}
	e, res := document(expected, "expected")
	if !res.OK() {
		return Absent, Absent, res
	}
	return a, e, assertion.Success()
}

// ParsePaths parses every raw path, failing on the first invalid one.
func ParsePaths(raw ...string) ([]Path, error) {
	paths := make([]Path, 0, len(raw))
	for _, r := range raw {
		p, err := ParsePath(r)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// CompareWith compares two documents with explicit options.
func CompareWith(actual, expected any, opts Options) assertion.Result {
	a, e, res := documents(actual, expected)
	if !res.OK() {
		return res
	}

	mismatches := Compare(a, e, opts)
	if len(mismatches) == 0 {
		return assertion.Success()
	}
	return assertion.Failure(Format(mismatches))
}

// IsEqualTo succeeds when actual holds every value of expected at the same
// path. Numbers compare by value, so 1 and 1.0 are equal.
func IsEqualTo(actual, expected any) assertion.Result {
	return CompareWith(actual, expected, Options{})
}

// IsEqualToIgnoring is IsEqualTo skipping the given paths and everything
// below them. An invalid path is an input error.
func IsEqualToIgnoring(actual, expected any, ignoredPaths ...string) assertion.Result {
	a, e, res := documents(actual, expected)
	if !res.OK() {
		return res
	}

	paths, err := ParsePaths(ignoredPaths...)
	if err != nil {
		return assertion.InvalidInput(err.Error())
	}

	return CompareWith(a, e, Options{IgnoredPaths: paths})
}

// IsStrictlyEqualTo also fails on keys and elements only actual has.
func IsStrictlyEqualTo(actual, expected any) assertion.Result {
	return CompareWith(actual, expected, Options{Strict: true})
}

// IsValid succeeds when actual parses as a single JSON document.
func IsValid(actual any) assertion.Result {
	_, res := document(actual, "actual")
	return res
}

// HasValueAt resolves a simple path and compares the value found there.
func HasValueAt(actual any, path string, expected any) assertion.Result {
	a, e, res := documents(actual, expected)
	if !res.OK() {
		return res
	}

	p, err := ParsePath(path)
	if err != nil {
		return assertion.InvalidInput(err.Error())
	}

	got, err := Resolve(a, p)
	if err != nil {
		return assertion.InvalidInput(err.Error())
	}

	if !got.Equal(e) {
		return assertion.Failure(fmt.Sprintf(`Expecting json entry "%s" to be equal to %s but was %s`, renderSegments(p.segments), e, got))
	}
	return assertion.Success()
}
