// Package content implements the core content synchronization engine.
//
// It maintains the canonical in-memory content tree
// (page -> section -> field -> language -> value), reconciles it against
// flattened rows in the remote relational store, tracks local edits as
// coalescing pending changes, and persists them through idempotent batched
// upserts.
//
// # Components
//
//   - Tree: the authoritative local cache, seeded from the bundled fallback
//     snapshot and re-hydrated by merging remote rows (remote wins per key).
//   - Tracker: records edits synchronously into the tree and keeps the
//     outbound pending-change queue, one coalesced entry per
//     (page, section, field, language).
//   - Service.Save: drains the queue as grouped per-field rows, one row
//     spanning all languages, seeded from a tree snapshot so a one-language
//     edit never blanks the others.
//   - Service.Resync: rebuilds remote content from the fallback snapshot in
//     chunked batches with a per-row fallback.
//
// # Concurrency
//
// Single writer in practice: edits mutate the tree synchronously; saves are
// asynchronous and operate on call-time snapshots of both the pending set
// and the tree. Concurrent saves of the same field resolve last-write-wins
// at the row level through the native upsert.
package content
