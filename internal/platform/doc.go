package platform

// Package platform contains filesystem helpers for exporting decoded images:
// directory creation, file name sanitizing, collision-free paths, and PNG
// re-encoding of in-memory images.
