// Package middleware groups the Fiber middlewares shared by every feature:
//
//   - rayid: mints or propagates a per-request ray ID for log correlation
//   - auth:  enforces the X-API-Key header when an API key is configured
package middleware
