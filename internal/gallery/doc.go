package gallery

// Package gallery holds the ordered, owned collection of decoded image items
// that the UI binds to. The list is rebuilt wholesale on every SetResults
// pass and announces readiness once per pass, after all items are loaded.
