// Package structure reconciles the declared page manifest against the
// remote pages table.
//
// The manifest is a static list of pages and their sections, bundled with
// the binary and optionally overridden from a file. Reconciliation is
// strictly one-way: Refresh computes which declared slugs the remote set is
// missing (extras are reported, never deleted), and Sync inserts records for
// the missing ones in a single batch, then persists a last-synced marker.
//
// The sync exposes a small state machine: idle -> loading/syncing ->
// success -> idle, with success reverting automatically after a short delay
// and error sticking until the next explicit call.
package structure
