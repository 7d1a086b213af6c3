package model

import "io"

// ImageResult describes one generated image as returned by a provider.
// Providers either inline the image bytes or hand back a remote URL;
// usually exactly one of Stream/URL is meaningful, but both may be absent.
type ImageResult struct {
	Stream   io.Reader // inline image bytes, nil when the provider returned a URL instead
	URL      string    // remote location of the image
	MIMEType string    // declared media type, e.g. "image/png"
}

// HasStream reports whether the result carries inline image bytes.
func (r ImageResult) HasStream() bool {
	return r.Stream != nil
}
