package database

import (
	"gorm.io/gorm"
)

// RequiredTables are the tables the engine reads and writes.
var RequiredTables = []string{"pages", "content", "media", "drafts"}

// MissingTables returns the subset of the given tables that do not exist
// in the connected database. Schema ownership is external; the engine only
// verifies presence so a misconfigured store surfaces at startup instead of
// as a string of failed row operations.
func MissingTables(db *gorm.DB, tables []string) []string {
	var missing []string
	for _, name := range tables {
		if !db.Migrator().HasTable(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
