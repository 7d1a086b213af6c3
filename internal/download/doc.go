package download

// Package download implements synchronous HTTP retrieval of image content.
// Each fetch builds a fresh client from the injected ClientFactory, performs
// a blocking GET, and buffers the whole body into an independently owned
// in-memory reader. Unsuccessful HTTP statuses mean "no image available" and
// are not errors; only transport and buffering failures surface as errors.
