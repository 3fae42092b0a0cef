// Package fasthttpbind adapts github.com/valyala/fasthttp responses and
// cookies to the httpassert and cookieassert capability interfaces.
//
// fasthttp recycles responses through pools, so Wrap takes a snapshot: the
// returned Response stays valid after the fasthttp.Response is released.
package fasthttpbind

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/jacoelho/restassert/assertion"
	"github.com/jacoelho/restassert/cookieassert"
	"github.com/jacoelho/restassert/httpassert"
)

var _ httpassert.Response = (*Response)(nil)

type Response struct {
	status  int
	header  http.Header
	content []byte
	cookies []cookieassert.Cookie
}

// Wrap copies status, headers, the raw body and every Set-Cookie.
func Wrap(resp *fasthttp.Response) (*Response, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: response is nil", assertion.ErrInvalidInput)
	}

	r := &Response{
		status:  resp.StatusCode(),
		header:  make(http.Header),
		content: append([]byte(nil), resp.Body()...),
	}

	resp.Header.VisitAll(func(key, value []byte) {
		r.header.Add(string(key), string(value))
	})

	for _, raw := range r.header.Values("Set-Cookie") {
		c := new(fasthttp.Cookie)
		if err := c.Parse(raw); err != nil {
			return nil, fmt.Errorf("%w: parse Set-Cookie %q: %v", assertion.ErrInvalidInput, raw, err)
		}
		r.cookies = append(r.cookies, &Cookie{c: c})
	}

	return r, nil
}

func (r *Response) Status() int {
	return r.status
}

func (r *Response) Header(name string) []string {
	return r.header.Values(name)
}

func (r *Response) HasHeader(name string) bool {
	return len(r.header.Values(name)) > 0
}

func (r *Response) Content() string {
	return string(r.content)
}

func (r *Response) Cookies() []cookieassert.Cookie {
	return append([]cookieassert.Cookie(nil), r.cookies...)
}

// Cookie holds a private copy of a fasthttp.Cookie.
type Cookie struct {
	c *fasthttp.Cookie
}

var _ cookieassert.Cookie = (*Cookie)(nil)

// WrapCookie copies c; nil stays nil.
func WrapCookie(c *fasthttp.Cookie) cookieassert.Cookie {
	if c == nil {
		return nil
	}
	cp := new(fasthttp.Cookie)
	cp.CopyTo(c)
	return &Cookie{c: cp}
}

func (c *Cookie) Name() string            { return string(c.c.Key()) }
func (c *Cookie) Value() string           { return string(c.c.Value()) }
func (c *Cookie) Domain() (string, error) { return string(c.c.Domain()), nil }
func (c *Cookie) Path() (string, error)   { return string(c.c.Path()), nil }
func (c *Cookie) Secure() (bool, error)   { return c.c.Secure(), nil }
func (c *Cookie) HTTPOnly() (bool, error) { return c.c.HTTPOnly(), nil }
func (c *Cookie) MaxAge() (int, error)    { return c.c.MaxAge(), nil }

// Expires maps fasthttp's "unlimited" marker to the zero time.
func (c *Cookie) Expires() (time.Time, error) {
	expire := c.c.Expire()
	if expire.Equal(fasthttp.CookieExpireUnlimited) {
		return time.Time{}, nil
	}
	return expire, nil
}

func (c *Cookie) SameSite() (cookieassert.SameSite, error) {
	switch c.c.SameSite() {
	case fasthttp.CookieSameSiteLaxMode:
		return cookieassert.SameSiteLax, nil
	case fasthttp.CookieSameSiteStrictMode:
		return cookieassert.SameSiteStrict, nil
	case fasthttp.CookieSameSiteNoneMode:
		return cookieassert.SameSiteNone, nil
	default:
		return cookieassert.SameSiteDefault, nil
	}
}

// Fetcher issues one request per call with client, honouring the context
// deadline. A nil client uses a zero fasthttp.Client.
func Fetcher(client *fasthttp.Client, method, url string) func(context.Context) (httpassert.Response, error) {
	if client == nil {
		client = &fasthttp.Client{}
	}

	return func(ctx context.Context) (httpassert.Response, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		req.Header.SetMethod(method)
		req.SetRequestURI(url)

		var err error
		if deadline, ok := ctx.Deadline(); ok {
			err = client.DoDeadline(req, resp, deadline)
		} else {
			err = client.Do(req, resp)
		}
		if err != nil {
			return nil, err
		}
		return Wrap(resp)
	}
}
