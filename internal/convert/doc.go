package convert

// Package convert resolves provider image results into owned gallery items.
// Each result is handled independently and in input order: inline bytes win,
// a URL is fetched only when auto-download is enabled, and anything else
// becomes an item with an empty image that still carries the result metadata.
