package httpassert

import (
	"net/http"
	"testing"
	"time"

	"github.com/jacoelho/restassert/assertion"
	"github.com/jacoelho/restassert/cookieassert"
	"github.com/jacoelho/restassert/predicate"
)

type stubResponse struct {
	status  int
	header  http.Header
	content string
	cookies []cookieassert.Cookie
}

func (r stubResponse) Status() int                    { return r.status }
func (r stubResponse) Header(name string) []string    { return r.header.Values(name) }
func (r stubResponse) HasHeader(name string) bool     { return len(r.header.Values(name)) > 0 }
func (r stubResponse) Content() string                { return r.content }
func (r stubResponse) Cookies() []cookieassert.Cookie { return r.cookies }

type stubCookie struct{ name, value string }

func (c stubCookie) Name() string                             { return c.name }
func (c stubCookie) Value() string                            { return c.value }
func (c stubCookie) Domain() (string, error)                  { return "", nil }
func (c stubCookie) Path() (string, error)                    { return "/", nil }
func (c stubCookie) Secure() (bool, error)                    { return false, nil }
func (c stubCookie) HTTPOnly() (bool, error)                  { return false, nil }
func (c stubCookie) MaxAge() (int, error)                     { return 0, nil }
func (c stubCookie) Expires() (time.Time, error)              { return time.Time{}, nil }
func (c stubCookie) SameSite() (cookieassert.SameSite, error) { return cookieassert.SameSiteDefault, nil }

func newResponse(status int, headers map[string]string, content string) stubResponse {
	h := make(http.Header)
	for k, v := range headers {
		h.Add(k, v)
	}
	return stubResponse{status: status, header: h, content: content}
}

type check struct {
	name    string
	result  assertion.Result
	kind    assertion.Kind
	message string
}

func runChecks(t *testing.T, tests []check) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.result.Kind() != tt.kind {
				t.Fatalf("Kind() = %v, want %v (%s)", tt.result.Kind(), tt.kind, tt.result)
			}
			if tt.message != "" && tt.result.Message() != tt.message {
				t.Fatalf("Message() = %q, want %q", tt.result.Message(), tt.message)
			}
		})
	}
}

func TestStatusAssertions(t *testing.T) {
	t.Parallel()

	ok := newResponse(http.StatusOK, nil, "")
	missing := newResponse(http.StatusNotFound, nil, "")
	broken := newResponse(http.StatusServiceUnavailable, nil, "")

	runChecks(t, []check{
		{name: "has_status", result: HasStatus(ok, 200)},
		{name: "has_status_differs", result: HasStatus(missing, 200), kind: assertion.KindMismatch, message: "Expecting status code to be 200 but was 404"},
		{name: "does_not_have_status", result: DoesNotHaveStatus(ok, 500)},
		{name: "does_not_have_status_fails", result: DoesNotHaveStatus(ok, 200), kind: assertion.KindMismatch, message: "Expecting status code not to be 200"},
		{name: "between", result: IsStatusBetween(missing, 400, 404)},
		{name: "between_fails", result: IsStatusBetween(ok, 400, 499), kind: assertion.KindMismatch, message: "Expecting status code to be between 400 and 499 but was 200"},
		{name: "between_unordered", result: IsStatusBetween(ok, 499, 400), kind: assertion.KindInvalidInput},
		{name: "matches", result: StatusMatches(ok, predicate.In(200, 204))},
		{name: "matches_fails", result: StatusMatches(missing, predicate.LessThan(400)), kind: assertion.KindMismatch, message: "Expecting status code to satisfy less_than 400 but was 404"},
		{name: "success_class", result: IsSuccess(ok)},
		{name: "client_error_class", result: IsClientError(missing)},
		{name: "server_error_class", result: IsServerError(broken)},
		{name: "redirection_fails", result: IsRedirection(ok), kind: assertion.KindMismatch, message: "Expecting status code to be 3xx but was 200"},
		{name: "informational_fails", result: IsInformational(ok), kind: assertion.KindMismatch},
		{name: "is_ok", result: IsOk(ok)},
		{name: "is_not_found", result: IsNotFound(missing)},
		{name: "is_service_unavailable", result: IsServiceUnavailable(broken)},
		{name: "is_created_fails", result: IsCreated(ok), kind: assertion.KindMismatch, message: "Expecting status code to be 201 but was 200"},
		{name: "nil_response", result: IsOk(nil), kind: assertion.KindInvalidInput, message: "Expecting response not to be nil"},
	})
}

func TestHeaderAssertions(t *testing.T) {
	t.Parallel()

	r := newResponse(http.StatusOK, map[string]string{
		"Content-Type":     "application/problem+json; charset=UTF-8",
		"Etag":             `"v1"`,
		"Location":         "/items/1",
		"Cache-Control":    "public, max-age=60",
		"Content-Encoding": "gzip",
		"X-Request-Id":     "req-42",
	}, "")
	r.header.Add("Vary", "Accept")
	r.header.Add("Vary", "Origin")

	html := newResponse(http.StatusOK, map[string]string{"Content-Type": "text/html"}, "")
	bare := newResponse(http.StatusOK, nil, "")
	bad := newResponse(http.StatusOK, map[string]string{"Content-Type": "not a type;;"}, "")

	runChecks(t, []check{
		{name: "has_header_case_insensitive", result: HasHeader(r, "x-request-id")},
		{name: "has_header_missing", result: HasHeader(r, "X-Trace"), kind: assertion.KindMismatch, message: `Expecting response to have header "X-Trace"`},
		{name: "does_not_have_header", result: DoesNotHaveHeader(r, "X-Trace")},
		{name: "does_not_have_header_fails", result: DoesNotHaveHeader(r, "Vary"), kind: assertion.KindMismatch, message: `Expecting response not to have header "Vary" but was "Accept, Origin"`},
		{name: "header_value_any", result: HasHeaderValue(r, "Vary", "Origin")},
		{name: "header_value_differs", result: HasHeaderValue(r, "Vary", "Cookie"), kind: assertion.KindMismatch, message: `Expecting header "Vary" to be "Cookie" but was "Accept, Origin"`},
		{name: "header_value_missing", result: HasHeaderValue(r, "X-Trace", "1"), kind: assertion.KindMismatch},
		{name: "header_matches", result: HeaderMatches(r, "X-Request-Id", `^req-\d+$`)},
		{name: "header_matches_fails", result: HeaderMatches(r, "Location", `^https://`), kind: assertion.KindMismatch},
		{name: "header_matches_bad_pattern", result: HeaderMatches(r, "Location", `[`), kind: assertion.KindInvalidInput},
		{name: "content_type_ignores_params", result: HasContentType(r, "application/problem+json")},
		{name: "content_type_differs", result: HasContentType(html, "application/json"), kind: assertion.KindMismatch, message: `Expecting content type to be "application/json" but was "text/html"`},
		{name: "content_type_missing", result: HasContentType(bare, "text/plain"), kind: assertion.KindMismatch},
		{name: "content_type_invalid", result: HasContentType(bad, "text/plain"), kind: assertion.KindMismatch},
		{name: "is_json_suffix", result: IsJSON(r)},
		{name: "is_json_fails", result: IsJSON(html), kind: assertion.KindMismatch, message: `Expecting content type to be json but was "text/html"`},
		{name: "is_html", result: IsHTML(html)},
		{name: "is_xml_fails", result: IsXML(html), kind: assertion.KindMismatch},
		{name: "is_text_fails", result: IsText(html), kind: assertion.KindMismatch},
		{name: "charset_case_insensitive", result: HasCharset(r, "utf-8")},
		{name: "is_utf8", result: IsUTF8(r)},
		{name: "charset_missing", result: IsUTF8(html), kind: assertion.KindMismatch, message: `Expecting charset to be "utf-8" but none was set`},
		{name: "etag", result: HasETag(r)},
		{name: "etag_missing", result: HasETag(html), kind: assertion.KindMismatch},
		{name: "location", result: HasLocation(r, "/items/1")},
		{name: "gzipped", result: IsGzipped(r)},
		{name: "not_gzipped", result: IsGzipped(html), kind: assertion.KindMismatch},
		{name: "cache_control_directive", result: HasCacheControl(r, "max-age")},
		{name: "cache_control_exact", result: HasCacheControl(r, "max-age=60")},
		{name: "cache_control_public", result: HasCacheControl(r, "Public")},
		{name: "cache_control_wrong_value", result: HasCacheControl(r, "max-age=10"), kind: assertion.KindMismatch},
		{name: "cache_control_missing", result: HasCacheControl(r, "no-store"), kind: assertion.KindMismatch},
		{name: "nil_response", result: HasHeader(nil, "X"), kind: assertion.KindInvalidInput},
	})
}

func TestContentAssertions(t *testing.T) {
	t.Parallel()

	r := newResponse(http.StatusOK, map[string]string{"Content-Type": "application/json"}, `{"id":1,"name":"John Doe","created":"2024-01-01"}`)
	empty := newResponse(http.StatusNoContent, nil, "")

	runChecks(t, []check{
		{name: "content", result: HasContent(empty, "")},
		{name: "content_differs", result: HasContent(empty, "x"), kind: assertion.KindMismatch, message: `Expecting content to be "x" but was ""`},
		{name: "contains", result: ContentContains(r, `"name":"John Doe"`)},
		{name: "contains_fails", result: ContentContains(r, "Jane"), kind: assertion.KindMismatch},
		{name: "json_equal_subset", result: IsJSONEqualTo(r, `{"id":1}`)},
		{name: "json_equal_differs", result: IsJSONEqualTo(r, `{"id":2}`), kind: assertion.KindMismatch, message: `Expecting json entry "id" to be equal to 2 but was 1`},
		{name: "json_equal_ignoring", result: IsJSONEqualToIgnoring(r, `{"id":1,"created":"later"}`, "created")},
		{name: "json_equal_empty_body", result: IsJSONEqualTo(empty, `{}`), kind: assertion.KindInvalidInput},
		{name: "json_path", result: HasJSONPath(r, "$.name")},
		{name: "json_path_value", result: HasJSONPathValue(r, "$.id", 1)},
		{name: "json_path_matches", result: JSONPathMatches(r, "$.name", predicate.StartsWith("John"))},
		{name: "nil_response", result: IsJSONEqualTo(nil, `{}`), kind: assertion.KindInvalidInput, message: "Expecting response not to be nil"},
		{name: "typed_nil_response", result: HasContent((*stubResponse)(nil), ""), kind: assertion.KindInvalidInput, message: "Expecting response not to be nil"},
	})
}

func TestCookieAssertions(t *testing.T) {
	t.Parallel()

	r := newResponse(http.StatusOK, nil, "")
	r.cookies = []cookieassert.Cookie{stubCookie{name: "session", value: "abc"}}

	runChecks(t, []check{
		{name: "has_cookie", result: HasCookie(r, "session")},
		{name: "has_cookie_missing", result: HasCookie(r, "theme"), kind: assertion.KindMismatch, message: `Expecting response to have cookie "theme"`},
		{name: "does_not_have_cookie", result: DoesNotHaveCookie(r, "theme")},
		{name: "does_not_have_cookie_fails", result: DoesNotHaveCookie(r, "session"), kind: assertion.KindMismatch, message: `Expecting response not to have cookie "session" but was "abc"`},
		{name: "cookie_value", result: HasCookieValue(r, "session", "abc")},
		{name: "cookie_value_differs", result: HasCookieValue(r, "session", "xyz"), kind: assertion.KindMismatch, message: `Expecting cookie "session" value to be "xyz" but was "abc"`},
		{name: "cookie_value_missing", result: HasCookieValue(r, "theme", "dark"), kind: assertion.KindMismatch},
	})
}
