package download

import (
	"bytes"
	"io"
	"net/http"
)

// Service handles image downloads over HTTP.
type Service struct {
	clients ClientFactory
}

// NewService creates a new download service.
func NewService(clients ClientFactory) *Service {
	return &Service{clients: clients}
}

// Fetch performs a synchronous GET for url and returns the whole body as a
// fresh buffer positioned at its start. An empty url, an unsuccessful HTTP
// status, or a response without content yield (nil, nil). Transport failures
// are a *TransportError, body buffering failures a *CopyError.
func (s *Service) Fetch(url string) (*bytes.Reader, error) {
	if url == "" {
		return nil, nil
	}

	// A fresh client per call; configuration comes from the factory.
	client := s.clients.NewHTTPClient()

	resp, err := client.Get(url)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices || resp.Body == http.NoBody {
		return nil, nil
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, &CopyError{URL: url, Err: err}
	}

	return bytes.NewReader(buf.Bytes()), nil
}
