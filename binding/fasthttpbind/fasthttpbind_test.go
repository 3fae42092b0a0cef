package fasthttpbind

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/jacoelho/restassert/assertion"
	"github.com/jacoelho/restassert/cookieassert"
	"github.com/jacoelho/restassert/httpassert"
)

func newCookie(name, value string) *fasthttp.Cookie {
	c := new(fasthttp.Cookie)
	c.SetKey(name)
	c.SetValue(value)
	return c
}

func TestWrap(t *testing.T) {
	t.Parallel()

	token := uuid.NewString()

	raw := fasthttp.AcquireResponse()
	raw.SetStatusCode(fasthttp.StatusAccepted)
	raw.Header.SetContentType("application/json; charset=utf-8")
	raw.Header.Set("Cache-Control", "no-store")
	raw.SetBodyString(`{"job":{"id":"` + token + `","state":"queued"}}`)

	session := newCookie("session", token)
	session.SetPath("/api")
	session.SetDomain("example.com")
	session.SetSecure(true)
	session.SetHTTPOnly(true)
	session.SetMaxAge(60)
	session.SetSameSite(fasthttp.CookieSameSiteLaxMode)
	raw.Header.SetCookie(session)
	raw.Header.SetCookie(newCookie("theme", "dark"))

	resp, err := Wrap(raw)
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	fasthttp.ReleaseResponse(raw)

	checks := []assertion.Result{
		httpassert.IsAccepted(resp),
		httpassert.IsJSON(resp),
		httpassert.IsUTF8(resp),
		httpassert.HasCacheControl(resp, "no-store"),
		httpassert.IsJSONEqualToIgnoring(resp, `{"job":{"id":"ignored","state":"queued"}}`, "$.job.id"),
		httpassert.HasJSONPathValue(resp, "$.job.id", `"`+token+`"`),
		httpassert.HasCookieValue(resp, "session", token),
		httpassert.HasCookieValue(resp, "theme", "dark"),
		httpassert.DoesNotHaveCookie(resp, "tracking"),
	}
	for i, res := range checks {
		if !res.OK() {
			t.Fatalf("check %d = %s", i, res)
		}
	}

	c, ok := cookieassert.Find(resp.Cookies(), "session")
	if !ok {
		t.Fatal("session cookie not found")
	}
	cookieChecks := []assertion.Result{
		cookieassert.HasPath(c, "/api"),
		cookieassert.HasDomain(c, "example.com"),
		cookieassert.IsSecured(c),
		cookieassert.IsHTTPOnly(c),
		cookieassert.HasMaxAge(c, 60),
		cookieassert.HasSameSite(c, cookieassert.SameSiteLax),
	}
	for i, res := range cookieChecks {
		if !res.OK() {
			t.Fatalf("cookie check %d = %s", i, res)
		}
	}

	theme, _ := cookieassert.Find(resp.Cookies(), "theme")
	if res := cookieassert.IsNotSecured(theme); !res.OK() {
		t.Fatalf("IsNotSecured() = %s", res)
	}
	if res := cookieassert.ExpiresAfter(theme, time.Now()); res.Kind() != assertion.KindMismatch {
		t.Fatalf("ExpiresAfter(session cookie) = %s", res)
	}
}

func TestWrapCookie(t *testing.T) {
	t.Parallel()

	src := newCookie("id", "1")
	expires := time.Date(2031, time.March, 1, 0, 0, 0, 0, time.UTC)
	src.SetExpire(expires)

	c := WrapCookie(src)
	src.SetValue("changed")

	if res := cookieassert.HasValue(c, "1"); !res.OK() {
		t.Fatalf("wrapped cookie follows the source: %s", res)
	}
	if res := cookieassert.ExpiresAfter(c, expires.Add(-time.Second)); !res.OK() {
		t.Fatalf("ExpiresAfter() = %s", res)
	}
	if WrapCookie(nil) != nil {
		t.Fatal("WrapCookie(nil) should be nil")
	}
}

func TestWrapNil(t *testing.T) {
	t.Parallel()

	if _, err := Wrap(nil); !errors.Is(err, assertion.ErrInvalidInput) {
		t.Fatalf("Wrap(nil) error = %v, want ErrInvalidInput", err)
	}

	wrapped, _ := Wrap(nil)
	if res := httpassert.IsOk(wrapped); res.Kind() != assertion.KindInvalidInput {
		t.Fatalf("IsOk(Wrap(nil)) = %s, want invalid input", res)
	}

	var cookie *Cookie
	if res := cookieassert.HasValue(cookie, "v"); res.Message() != "Expecting cookie not to be nil" {
		t.Fatalf("HasValue(nil cookie) = %s", res)
	}
}

func TestFetcher(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("ETag", `"abc"`)
		_, _ = io.WriteString(w, "pong")
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := Fetcher(nil, fasthttp.MethodGet, srv.URL+"/ping")(ctx)
	if err != nil {
		t.Fatalf("fetch() error = %v", err)
	}

	for i, res := range []assertion.Result{
		httpassert.IsOk(resp),
		httpassert.IsText(resp),
		httpassert.HasETag(resp),
		httpassert.HasContent(resp, "pong"),
	} {
		if !res.OK() {
			t.Fatalf("check %d = %s", i, res)
		}
	}

	canceled, stop := context.WithCancel(context.Background())
	stop()
	if _, err := Fetcher(nil, fasthttp.MethodGet, srv.URL)(canceled); !errors.Is(err, context.Canceled) {
		t.Fatalf("fetch(canceled) error = %v, want context.Canceled", err)
	}
}
