package nethttpbind

import (
	"net"
	"net/http"
	"time"
)

// NewClient returns a client that keeps the response as the server sent it:
// compression is not negotiated or undone, so Content-Encoding stays
// visible to httpassert.IsGzipped, and redirects are not followed.
func NewClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy:                  http.ProxyFromEnvironment,
		DialContext:            dialer.DialContext,
		TLSHandshakeTimeout:    10 * time.Second,
		ResponseHeaderTimeout:  10 * time.Second,
		IdleConnTimeout:        60 * time.Second,
		MaxIdleConnsPerHost:    10,
		MaxResponseHeaderBytes: 1 << 20,
		DisableCompression:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
