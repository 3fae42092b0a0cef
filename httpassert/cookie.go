package httpassert

import (
	"github.com/jacoelho/restassert/assertion"
	"github.com/jacoelho/restassert/cookieassert"
)

func HasCookie(r Response, name string) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	if _, ok := cookieassert.Find(r.Cookies(), name); !ok {
		return assertion.Failuref("Expecting response to have cookie %q", name)
	}
	return assertion.Success()
}

func DoesNotHaveCookie(r Response, name string) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	if c, ok := cookieassert.Find(r.Cookies(), name); ok {
		return assertion.Failuref("Expecting response not to have cookie %q but was %q", name, c.Value())
	}
	return assertion.Success()
}

func HasCookieValue(r Response, name, value string) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	c, ok := cookieassert.Find(r.Cookies(), name)
	if !ok {
		return assertion.Failuref("Expecting response to have cookie %q", name)
	}
	return cookieassert.HasValue(c, value)
}
