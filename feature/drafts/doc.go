// Package drafts holds section-scoped unpublished edits and autosaves them
// after a debounce window.
//
// Drafts live in their own table, disjoint from published content: queueing,
// autosaving, loading and discarding a draft never touches a content row.
// Every Queue call coalesces into the pending state of its (page, section)
// and restarts that section's timer; only state that has been quiet for the
// full window is written, one upsert per section. There is no maximum-wait
// ceiling, so a continuous edit stream defers the write indefinitely. A
// failed autosave keeps the edits local and retries on the next cycle.
package drafts
