package content

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"content-sync/feature/content/models"
)

//go:embed fallback.json
var bundledFallback []byte

// FallbackDoc is the bundled content snapshot shipped with the client:
// page -> section -> field -> language -> value. It seeds the tree before
// the remote load and is the sole source for a forced full resync.
type FallbackDoc map[string]map[string]map[string]map[string]models.Value

// BundledFallback parses the snapshot compiled into the binary.
func BundledFallback() (FallbackDoc, error) {
	doc := FallbackDoc{}
	if err := json.Unmarshal(bundledFallback, &doc); err != nil {
		return nil, fmt.Errorf("parsing bundled fallback snapshot: %w", err)
	}
	return doc, nil
}

// Seed writes every fallback value into the tree. Unknown language codes in
// the document are skipped; the bundled snapshot is trusted but a typo in it
// must not take the tree down.
func (t *Tree) Seed(doc FallbackDoc) {
	for page, sections := range doc {
		for section, fields := range sections {
			for field, langs := range fields {
				for code, value := range langs {
					_ = t.Set(page, section, field, code, value)
				}
			}
		}
	}
}
