package structure

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

//go:embed manifest.json
var bundledManifest []byte

// ManifestSection is one declared section of a page.
type ManifestSection struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ManifestPage is one declared page. Ordering is positional: the record
// built for a page gets display order index+1.
type ManifestPage struct {
	Slug     string            `json:"slug"`
	Label    string            `json:"label"`
	Sections []ManifestSection `json:"sections"`
}

// Manifest is the static declared page list the remote pages table is
// reconciled against. It is owned externally; the sync is strictly one-way
// manifest -> missing remote records.
type Manifest struct {
	Pages []ManifestPage `json:"pages"`
}

// Slugs lists the declared page slugs in manifest order.
func (m Manifest) Slugs() []string {
	slugs := make([]string, 0, len(m.Pages))
	for _, page := range m.Pages {
		slugs = append(slugs, page.Slug)
	}
	return slugs
}

// Page returns the declared entry for a slug, or nil.
func (m Manifest) Page(slug string) *ManifestPage {
	for i := range m.Pages {
		if m.Pages[i].Slug == slug {
			return &m.Pages[i]
		}
	}
	return nil
}

// BundledManifest decodes the manifest compiled into the binary.
func BundledManifest() (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(bundledManifest, &m); err != nil {
		return Manifest{}, fmt.Errorf("decoding bundled manifest: %w", err)
	}
	return m, nil
}

// LoadManifest reads a manifest from the filesystem, falling back to the
// bundled one when path is empty.
func LoadManifest(fs afero.Fs, path string) (Manifest, error) {
	if path == "" {
		return BundledManifest()
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("decoding manifest %s: %w", path, err)
	}
	if len(m.Pages) == 0 {
		return Manifest{}, fmt.Errorf("manifest %s declares no pages", path)
	}
	return m, nil
}
