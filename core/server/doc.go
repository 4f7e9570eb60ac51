// Package server holds configuration for the HTTP service surface the
// editing client talks to: listen port, API key, and the primary language
// used for read-time fallback.
package server
