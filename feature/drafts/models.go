package drafts

import (
	"encoding/json"
	"fmt"
	"time"

	"content-sync/feature/content/models"
)

// Edits maps field name -> language code -> value. It is the unit the
// editing surface queues and the shape stored in a draft row.
type Edits map[string]map[string]models.Value

// merge overlays other on top of e, field by field and language by language.
func (e Edits) merge(other Edits) {
	for field, langs := range other {
		existing, ok := e[field]
		if !ok {
			existing = make(map[string]models.Value, len(langs))
			e[field] = existing
		}
		for code, v := range langs {
			existing[code] = v.Clone()
		}
	}
}

// set records one value, growing the field map as needed.
func (e Edits) set(field, lang string, v models.Value) {
	existing, ok := e[field]
	if !ok {
		existing = make(map[string]models.Value, 1)
		e[field] = existing
	}
	existing[lang] = v.Clone()
}

// fill copies values from other only where e has none, preserving newer
// local state when a failed write is requeued.
func (e Edits) fill(other Edits) {
	for field, langs := range other {
		existing, ok := e[field]
		if !ok {
			existing = make(map[string]models.Value, len(langs))
			e[field] = existing
		}
		for code, v := range langs {
			if _, ok := existing[code]; !ok {
				existing[code] = v.Clone()
			}
		}
	}
}

func (e Edits) clone() Edits {
	out := make(Edits, len(e))
	out.merge(e)
	return out
}

// DraftRow is one row of the remote drafts table: the unpublished edits of
// one page section. It lives in a table disjoint from content rows; nothing
// in this package ever writes these fields into the content table.
type DraftRow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PageSlug  string    `gorm:"column:page_slug" json:"page_slug"`
	Section   string    `gorm:"column:section" json:"section"`
	Fields    string    `gorm:"column:fields" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the GORM default.
func (DraftRow) TableName() string {
	return "drafts"
}

// Draft is the decoded form handed to callers.
type Draft struct {
	Page      string    `json:"page"`
	Section   string    `json:"section"`
	Fields    Edits     `json:"fields"`
	UpdatedAt time.Time `json:"updated_at"`
}

func decodeDraft(row DraftRow) (Draft, error) {
	fields := Edits{}
	if row.Fields != "" {
		if err := json.Unmarshal([]byte(row.Fields), &fields); err != nil {
			return Draft{}, fmt.Errorf("decoding draft fields for %s/%s: %w", row.PageSlug, row.Section, err)
		}
	}
	return Draft{
		Page:      row.PageSlug,
		Section:   row.Section,
		Fields:    fields,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func encodeFields(edits Edits) (string, error) {
	data, err := json.Marshal(edits)
	if err != nil {
		return "", fmt.Errorf("encoding draft fields: %w", err)
	}
	return string(data), nil
}
