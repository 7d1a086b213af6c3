package provider

// Package provider supplies ordered image-generation results from an
// OpenAI-compatible images API. Responses inline base64 payloads as byte
// streams; hosted results come back as URL-only results for the gallery's
// auto-download path.
