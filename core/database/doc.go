// Package database provides the MySQL connection used as the remote
// relational content store.
//
// The engine does not own the store's schema; it consumes four tables
// (pages, content, media, drafts) whose definitions live with the store.
// Connect builds a pooled GORM connection with explicit I/O timeouts, and
// MissingTables lets callers verify the expected tables at startup.
package database
