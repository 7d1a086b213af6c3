package download

import (
	"bytes"
	"io"
	"net/http"
)

// Fetcher retrieves remote image content by URL.
//
// Fetch returns the full response body as a fresh in-memory buffer positioned
// at its start; ownership of the buffer transfers to the caller. A (nil, nil)
// return means no image is available at the URL. Errors are reserved for
// transport and buffering failures.
type Fetcher interface {
	Fetch(url string) (*bytes.Reader, error)
}

// StreamHook overrides how image bytes are obtained for a URL. A nil return
// signals that no image is available; hooks do not report errors. The caller
// owns whatever stream the hook hands back.
type StreamHook func(url string) io.Reader

// ClientFactory supplies pre-configured HTTP clients (timeouts, TLS options).
// A fresh client is requested for every fetch.
type ClientFactory interface {
	NewHTTPClient() *http.Client
}
