// Package cookiejarbind exposes cookies stored in an http.CookieJar.
//
// A jar only hands back name and value pairs (RFC 6265 Cookie header form),
// so every other attribute fails with assertion.ErrUnsupported instead of
// reporting a default.
package cookiejarbind

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jacoelho/restassert/assertion"
	"github.com/jacoelho/restassert/cookieassert"
)

// Cookies returns the cookies jar would send to u.
func Cookies(jar http.CookieJar, u *url.URL) []cookieassert.Cookie {
	if jar == nil || u == nil {
		return nil
	}

	stored := jar.Cookies(u)
	cookies := make([]cookieassert.Cookie, 0, len(stored))
	for _, c := range stored {
		cookies = append(cookies, Cookie{name: c.Name, value: c.Value})
	}
	return cookies
}

// Cookie is a jar cookie: name and value only.
type Cookie struct {
	name  string
	value string
}

var _ cookieassert.Cookie = Cookie{}

func (c Cookie) Name() string  { return c.name }
func (c Cookie) Value() string { return c.value }

func (c Cookie) unsupported(attribute string) error {
	return fmt.Errorf("%w: cookie jar does not expose %s of cookie %q", assertion.ErrUnsupported, attribute, c.name)
}

func (c Cookie) Domain() (string, error)     { return "", c.unsupported("domain") }
func (c Cookie) Path() (string, error)       { return "", c.unsupported("path") }
func (c Cookie) Secure() (bool, error)       { return false, c.unsupported("secure") }
func (c Cookie) HTTPOnly() (bool, error)     { return false, c.unsupported("http only") }
func (c Cookie) MaxAge() (int, error)        { return 0, c.unsupported("max age") }
func (c Cookie) Expires() (time.Time, error) { return time.Time{}, c.unsupported("expires") }

func (c Cookie) SameSite() (cookieassert.SameSite, error) {
	return cookieassert.SameSiteDefault, c.unsupported("same site")
}
