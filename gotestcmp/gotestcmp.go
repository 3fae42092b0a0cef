// Package gotestcmp exposes the assertions as gotest.tools comparisons:
//
//	assert.Assert(t, gotestcmp.IsOk(resp))
//	assert.Check(t, gotestcmp.IsEqualTo(body, `{"id":1}`))
//
// A comparison runs its assertion when gotest.tools evaluates it.
package gotestcmp

//go:generate go run ../cmd/assertgen --table ../codegen.yaml --target gotestcmp --out .

import (
	"gotest.tools/v3/assert/cmp"

	"github.com/jacoelho/restassert/assertion"
)

func result(res assertion.Result) cmp.Result {
	if res.OK() {
		return cmp.ResultSuccess
	}
	return cmp.ResultFailure(res.Message())
}
