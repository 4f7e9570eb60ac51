// Package editor is the read-only composition behind the editing surface.
//
// Fetch resolves a page by slug, then loads that section's content and
// media rows concurrently and resolves media object keys to presigned URLs.
// It is a boundary in the error-handling sense: nothing propagates upward.
// Failures become the result's error message, and an absent page becomes a
// distinct not-found flag so callers never mistake absence for failure.
package editor
