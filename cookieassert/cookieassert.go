// Package cookieassert checks HTTP cookies through the Cookie capability
// interface, whatever client library produced them.
//
// Attributes a binding cannot provide are reported as errors wrapping
// assertion.ErrUnsupported and surface as KindUnsupported results; they are
// never guessed.
package cookieassert

import (
	"fmt"
	"reflect"
	"regexp"
	"time"

	"github.com/jacoelho/restassert/assertion"
)

// SameSite is the SameSite attribute of a cookie.
type SameSite string

const (
	SameSiteDefault SameSite = ""
	SameSiteLax     SameSite = "Lax"
	SameSiteStrict  SameSite = "Strict"
	SameSiteNone    SameSite = "None"
)

// Cookie is what a binding exposes about one cookie.
type Cookie interface {
	Name() string
	Value() string
	Domain() (string, error)
	Path() (string, error)
	Secure() (bool, error)
	HTTPOnly() (bool, error)
	// MaxAge is in seconds; zero means unspecified, negative means delete now.
	MaxAge() (int, error)
	// Expires is the zero time when the attribute is not set.
	Expires() (time.Time, error)
	SameSite() (SameSite, error)
}

const nilCookieMessage = "Expecting cookie not to be nil"

// isNil also catches an interface holding a nil pointer, such as a
// *nethttpbind.Cookie that was never set.
func isNil(c Cookie) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Find returns the first cookie called name.
func Find(cookies []Cookie, name string) (Cookie, bool) {
	for _, c := range cookies {
		if !isNil(c) && c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

func HasName(c Cookie, name string) assertion.Result {
	if isNil(c) {
		return assertion.InvalidInput(nilCookieMessage)
	}
	if c.Name() != name {
		return assertion.Failuref("Expecting cookie name to be %q but was %q", name, c.Name())
	}
	return assertion.Success()
}

func HasValue(c Cookie, value string) assertion.Result {
	if isNil(c) {
		return assertion.InvalidInput(nilCookieMessage)
	}
	if c.Value() != value {
		return assertion.Failuref("Expecting cookie %q value to be %q but was %q", c.Name(), value, c.Value())
	}
	return assertion.Success()
}

// ValueMatches checks the value against a regular expression.
func ValueMatches(c Cookie, pattern string) assertion.Result {
	if isNil(c) {
		return assertion.InvalidInput(nilCookieMessage)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return assertion.InvalidInputf("Expecting a valid pattern %q: %v", pattern, err)
	}
	if !re.MatchString(c.Value()) {
		return assertion.Failuref("Expecting cookie %q value to match %q but was %q", c.Name(), pattern, c.Value())
	}
	return assertion.Success()
}

func HasDomain(c Cookie, domain string) assertion.Result {
	return attribute(c, "domain", Cookie.Domain, domain)
}

func HasPath(c Cookie, path string) assertion.Result {
	return attribute(c, "path", Cookie.Path, path)
}

func HasMaxAge(c Cookie, seconds int) assertion.Result {
	return attribute(c, "max age", Cookie.MaxAge, seconds)
}

func HasSameSite(c Cookie, mode SameSite) assertion.Result {
	return attribute(c, "same site", Cookie.SameSite, mode)
}

func IsSecured(c Cookie) assertion.Result {
	return flag(c, "secured", Cookie.Secure, true)
}

func IsNotSecured(c Cookie) assertion.Result {
	return flag(c, "secured", Cookie.Secure, false)
}

func IsHTTPOnly(c Cookie) assertion.Result {
	return flag(c, "http only", Cookie.HTTPOnly, true)
}

func IsNotHTTPOnly(c Cookie) assertion.Result {
	return flag(c, "http only", Cookie.HTTPOnly, false)
}

// ExpiresAfter fails for session cookies, which have no expiry.
func ExpiresAfter(c Cookie, t time.Time) assertion.Result {
	if isNil(c) {
		return assertion.InvalidInput(nilCookieMessage)
	}
	expires, err := c.Expires()
	if err != nil {
		return assertion.FromError(err)
	}
	if expires.IsZero() {
		return assertion.Failuref("Expecting cookie %q to expire after %s but it has no expiry", c.Name(), t.UTC().Format(time.RFC1123))
	}
	if !expires.After(t) {
		return assertion.Failuref("Expecting cookie %q to expire after %s but expires %s", c.Name(), t.UTC().Format(time.RFC1123), expires.UTC().Format(time.RFC1123))
	}
	return assertion.Success()
}

func attribute[T comparable](c Cookie, name string, get func(Cookie) (T, error), want T) assertion.Result {
	if isNil(c) {
		return assertion.InvalidInput(nilCookieMessage)
	}
	got, err := get(c)
	if err != nil {
		return assertion.FromError(err)
	}
	if got != want {
		return assertion.Failuref("Expecting cookie %q %s to be %s but was %s", c.Name(), name, quoted(want), quoted(got))
	}
	return assertion.Success()
}

func flag(c Cookie, name string, get func(Cookie) (bool, error), want bool) assertion.Result {
	if isNil(c) {
		return assertion.InvalidInput(nilCookieMessage)
	}
	got, err := get(c)
	if err != nil {
		return assertion.FromError(err)
	}
	if got != want {
		if want {
			return assertion.Failuref("Expecting cookie %q to be %s", c.Name(), name)
		}
		return assertion.Failuref("Expecting cookie %q not to be %s", c.Name(), name)
	}
	return assertion.Success()
}

func quoted(v any) string {
	switch s := v.(type) {
	case string:
		return fmt.Sprintf("%q", s)
	case SameSite:
		return fmt.Sprintf("%q", string(s))
	default:
		return fmt.Sprint(v)
	}
}
