// Package httpassert checks HTTP responses through the Response capability
// interface. Bindings in restassert/binding adapt concrete client types.
//
//	resp, _ := nethttpbind.Wrap(res)
//	if r := httpassert.IsOk(resp); !r.OK() {
//		t.Fatal(r.Message())
//	}
package httpassert

import (
	"reflect"

	"github.com/jacoelho/restassert/assertion"
	"github.com/jacoelho/restassert/cookieassert"
)

// Response is the minimal view of an HTTP response the assertions need.
type Response interface {
	Status() int
	// Header returns every value of the header, matched case-insensitively.
	Header(name string) []string
	HasHeader(name string) bool
	Content() string
	Cookies() []cookieassert.Cookie
}

const nilResponseMessage = "Expecting response not to be nil"

func nilResponse() assertion.Result {
	return assertion.InvalidInput(nilResponseMessage)
}

// isNil also catches an interface holding a nil pointer, which is what a
// binding's Wrap returns alongside an error.
func isNil(r Response) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
