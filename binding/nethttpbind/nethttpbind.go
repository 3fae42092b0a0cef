// Package nethttpbind adapts net/http responses and cookies to the
// httpassert and cookieassert capability interfaces.
package nethttpbind

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/jacoelho/restassert/assertion"
	"github.com/jacoelho/restassert/cookieassert"
	"github.com/jacoelho/restassert/httpassert"
)

var _ httpassert.Response = (*Response)(nil)

// Response is a buffered snapshot of an *http.Response.
type Response struct {
	status  int
	header  http.Header
	content []byte
	cookies []*http.Cookie
}

// Wrap reads and closes the body, then replaces it with an in-memory copy so
// the caller can still read it.
func Wrap(resp *http.Response) (*Response, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: response is nil", assertion.ErrInvalidInput)
	}

	var content []byte
	if resp.Body != nil {
		data, err := io.ReadAll(resp.Body)
		closeErr := resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("close response body: %w", closeErr)
		}
		content = data
		resp.Body = io.NopCloser(bytes.NewReader(data))
	}

	return &Response{
		status:  resp.StatusCode,
		header:  resp.Header.Clone(),
		content: content,
		cookies: resp.Cookies(),
	}, nil
}

// FromRecorder wraps what a handler wrote to rec. A nil rec gives a nil
// Response, which httpassert reports as an input error.
func FromRecorder(rec *httptest.ResponseRecorder) *Response {
	if rec == nil {
		return nil
	}
	resp, err := Wrap(rec.Result())
	if err != nil {
		// the recorder body is an in-memory buffer
		panic(err)
	}
	return resp
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
	cookies := make([]cookieassert.Cookie, 0, len(r.cookies))
	for _, c := range r.cookies {
		cookies = append(cookies, WrapCookie(c))
	}
	return cookies
}

// Cookie exposes every attribute of an *http.Cookie.
type Cookie struct {
	c *http.Cookie
}

var _ cookieassert.Cookie = (*Cookie)(nil)

// WrapCookie returns nil for a nil cookie.
func WrapCookie(c *http.Cookie) cookieassert.Cookie {
	if c == nil {
		return nil
	}
	return &Cookie{c: c}
}

func (c *Cookie) Name() string                { return c.c.Name }
func (c *Cookie) Value() string               { return c.c.Value }
func (c *Cookie) Domain() (string, error)     { return c.c.Domain, nil }
func (c *Cookie) Path() (string, error)       { return c.c.Path, nil }
func (c *Cookie) Secure() (bool, error)       { return c.c.Secure, nil }
func (c *Cookie) HTTPOnly() (bool, error)     { return c.c.HttpOnly, nil }
func (c *Cookie) MaxAge() (int, error)        { return c.c.MaxAge, nil }
func (c *Cookie) Expires() (time.Time, error) { return c.c.Expires, nil }

func (c *Cookie) SameSite() (cookieassert.SameSite, error) {
	switch c.c.SameSite {
	case http.SameSiteLaxMode:
		return cookieassert.SameSiteLax, nil
	case http.SameSiteStrictMode:
		return cookieassert.SameSiteStrict, nil
	case http.SameSiteNoneMode:
		return cookieassert.SameSiteNone, nil
	default:
		return cookieassert.SameSiteDefault, nil
	}
}

// Fetcher returns a function issuing one request per call, suitable for
// poll.Eventually. A nil client uses NewClient(30 * time.Second).
func Fetcher(client *http.Client, method, url string) func(context.Context) (httpassert.Response, error) {
	if client == nil {
		client = NewClient(30 * time.Second)
	}

	return func(ctx context.Context) (httpassert.Response, error) {
		req, err := http.NewRequestWithContext(ctx, method, url, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		return Wrap(resp)
	}
}
