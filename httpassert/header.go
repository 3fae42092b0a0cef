package httpassert

import (
	"mime"
	"regexp"
	"slices"
	"strings"

	"github.com/jacoelho/restassert/assertion"
)

func HasHeader(r Response, name string) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	if !r.HasHeader(name) {
		return assertion.Failuref("Expecting response to have header %q", name)
	}
	return assertion.Success()
}

func DoesNotHaveHeader(r Response, name string) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	if r.HasHeader(name) {
		return assertion.Failuref("Expecting response not to have header %q but was %q", name, strings.Join(r.Header(name), ", "))
	}
	return assertion.Success()
}

// HasHeaderValue succeeds when any value of the header equals value.
func HasHeaderValue(r Response, name, value string) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	values := r.Header(name)
	if len(values) == 0 {
		return assertion.Failuref("Expecting response to have header %q", name)
	}
	if !slices.Contains(values, value) {
		return assertion.Failuref("Expecting header %q to be %q but was %q", name, value, strings.Join(values, ", "))
	}
	return assertion.Success()
}

// HeaderMatches succeeds when any value of the header matches pattern.
func HeaderMatches(r Response, name, pattern string) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return assertion.InvalidInputf("Expecting a valid pattern %q: %v", pattern, err)
	}
	values := r.Header(name)
	if len(values) == 0 {
		return assertion.Failuref("Expecting response to have header %q", name)
	}
	if !slices.ContainsFunc(values, re.MatchString) {
		return assertion.Failuref("Expecting header %q to match %q but was %q", name, pattern, strings.Join(values, ", "))
	}
	return assertion.Success()
}

// mediaType parses the first Content-Type value.
func mediaType(r Response) (string, map[string]string, assertion.Result) {
	values := r.Header("Content-Type")
	if len(values) == 0 {
		return "", nil, assertion.Failure(`Expecting response to have header "Content-Type"`)
	}
	mt, params, err := mime.ParseMediaType(values[0])
	if err != nil {
		return "", nil, assertion.Failuref("Expecting a valid content type but was %q: %v", values[0], err)
	}
	return mt, params, assertion.Success()
}

// HasContentType compares the media type only; parameters such as charset
// are ignored.
func HasContentType(r Response, want string) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	mt, _, res := mediaType(r)
	if !res.OK() {
		return res
	}
	if !strings.EqualFold(mt, strings.TrimSpace(want)) {
		return assertion.Failuref("Expecting content type to be %q but was %q", want, mt)
	}
	return assertion.Success()
}

func contentFamily(r Response, family string, match func(mt string) bool) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	mt, _, res := mediaType(r)
	if !res.OK() {
		return res
	}
	if !match(mt) {
		return assertion.Failuref("Expecting content type to be %s but was %q", family, mt)
	}
	return assertion.Success()
}

// IsJSON accepts application/json and any +json structured suffix.
func IsJSON(r Response) assertion.Result {
	return contentFamily(r, "json", func(mt string) bool {
		return mt == "application/json" || strings.HasSuffix(mt, "+json")
	})
}

// IsXML accepts application/xml, text/xml and any +xml structured suffix.
func IsXML(r Response) assertion.Result {
	return contentFamily(r, "xml", func(mt string) bool {
		return mt == "application/xml" || mt == "text/xml" || strings.HasSuffix(mt, "+xml")
	})
}

func IsHTML(r Response) assertion.Result {
	return contentFamily(r, "html", func(mt string) bool {
		return mt == "text/html" || mt == "application/xhtml+xml"
	})
}

func IsText(r Response) assertion.Result {
	return contentFamily(r, "text", func(mt string) bool { return mt == "text/plain" })
}

func HasCharset(r Response, charset string) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	_, params, res := mediaType(r)
	if !res.OK() {
		return res
	}
	got, ok := params["charset"]
	if !ok {
		return assertion.Failuref("Expecting charset to be %q but none was set", charset)
	}
	if !strings.EqualFold(got, charset) {
		return assertion.Failuref("Expecting charset to be %q but was %q", charset, got)
	}
	return assertion.Success()
}

func IsUTF8(r Response) assertion.Result {
	return HasCharset(r, "utf-8")
}

func HasETag(r Response) assertion.Result {
	return HasHeader(r, "ETag")
}

func HasLocation(r Response, location string) assertion.Result {
	return HasHeaderValue(r, "Location", location)
}

// IsGzipped checks Content-Encoding, which a transparently decompressing
// client removes.
func IsGzipped(r Response) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	for _, v := range r.Header("Content-Encoding") {
		for _, enc := range strings.Split(v, ",") {
			if strings.EqualFold(strings.TrimSpace(enc), "gzip") {
				return assertion.Success()
			}
		}
	}
	return assertion.Failuref("Expecting content encoding to be %q but was %q", "gzip", strings.Join(r.Header("Content-Encoding"), ", "))
}

// HasCacheControl looks for a Cache-Control directive. A bare directive
// ("max-age") matches any argument; "max-age=60" must match exactly.
func HasCacheControl(r Response, directive string) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	want := strings.ToLower(strings.TrimSpace(directive))
	for _, v := range r.Header("Cache-Control") {
		for _, d := range strings.Split(v, ",") {
			d = strings.ToLower(strings.TrimSpace(d))
			name, _, _ := strings.Cut(d, "=")
			if d == want || (!strings.Contains(want, "=") && name == want) {
				return assertion.Success()
			}
		}
	}
	return assertion.Failuref("Expecting cache control to contain %q but was %q", directive, strings.Join(r.Header("Cache-Control"), ", "))
}
