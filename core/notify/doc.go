// Package notify provides an instance-scoped notification service.
//
// Save results, sync outcomes and degraded-mode warnings are pushed here so
// the editing client can surface them. IDs come from an injected UUID
// generator rather than a package-level counter, so two notifiers (e.g. one
// per test) never interfere.
package notify
