// Package must stops a test at the first failed assertion.
//
//	resp, err := http.Get(srv.URL + "/users/1")
//	...
//	must.IsOk(t, wrapped)
//	must.IsJSONEqualTo(t, wrapped, `{"id":1}`)
//
// Every function here forwards to the matching httpassert, cookieassert
// (prefixed Cookie) or jsonassert function and calls t.Fatalf with its
// message when the result is not a success.
package must

//go:generate go run ../cmd/assertgen --table ../codegen.yaml --target must --out .

import "github.com/jacoelho/restassert/assertion"

// TestingT is the subset of testing.TB used here.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

func require(t TestingT, res assertion.Result) {
	t.Helper()
	if !res.OK() {
		t.Fatalf("%s", res.Message())
	}
}
