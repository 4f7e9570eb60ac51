package models

import "strings"

// PageRecord is one row of the remote pages table.
type PageRecord struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Slug         string `gorm:"column:slug" json:"slug"`
	Name         string `gorm:"column:name" json:"name"`
	Description  string `gorm:"column:description" json:"description"`
	Icon         string `gorm:"column:icon" json:"icon"`
	DisplayOrder int    `gorm:"column:display_order" json:"display_order"`
}

// TableName overrides the GORM default.
func (PageRecord) TableName() string {
	return "pages"
}

// ContentRow is the flattened persisted representation of one field across
// all supported languages. The unique key is (page_id, content_key).
type ContentRow struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	PageID       uint   `gorm:"column:page_id" json:"page_id"`
	Section      string `gorm:"column:section" json:"section"`
	ContentKey   string `gorm:"column:content_key" json:"content_key"`
	ValueEn      string `gorm:"column:value_en" json:"value_en"`
	ValueSv      string `gorm:"column:value_sv" json:"value_sv"`
	ValueDe      string `gorm:"column:value_de" json:"value_de"`
	ValuePl      string `gorm:"column:value_pl" json:"value_pl"`
	Label        string `gorm:"column:label" json:"label"`
	DisplayOrder int    `gorm:"column:display_order" json:"display_order"`
}

// TableName overrides the GORM default.
func (ContentRow) TableName() string {
	return "content"
}

// Column returns the stored text for a language code; false for unknown codes.
func (r *ContentRow) Column(code string) (string, bool) {
	switch code {
	case LangEN:
		return r.ValueEn, true
	case LangSV:
		return r.ValueSv, true
	case LangDE:
		return r.ValueDe, true
	case LangPL:
		return r.ValuePl, true
	}
	return "", false
}

// SetColumn stores raw text into a language column; false for unknown codes.
func (r *ContentRow) SetColumn(code, raw string) bool {
	switch code {
	case LangEN:
		r.ValueEn = raw
	case LangSV:
		r.ValueSv = raw
	case LangDE:
		r.ValueDe = raw
	case LangPL:
		r.ValuePl = raw
	default:
		return false
	}
	return true
}

// LangColumns lists the language column names in Languages order, for
// building upsert assignment lists.
func LangColumns() []string {
	return []string{"value_en", "value_sv", "value_de", "value_pl"}
}

// MediaRow is one row of the remote media table, keyed by page + section.
// ObjectKey references an object in media storage; the engine resolves it
// to a presigned URL at read time and never touches the binary itself.
type MediaRow struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	PageID       uint   `gorm:"column:page_id" json:"page_id"`
	Section      string `gorm:"column:section" json:"section"`
	ObjectKey    string `gorm:"column:object_key" json:"object_key"`
	Label        string `gorm:"column:label" json:"label"`
	DisplayOrder int    `gorm:"column:display_order" json:"display_order"`
}

// TableName overrides the GORM default.
func (MediaRow) TableName() string {
	return "media"
}

// ContentKey joins section and field into the stored composite key.
func ContentKey(section, field string) string {
	return section + "." + field
}

// FieldFromKey recovers the field name from a stored content key using the
// row's own section value. Matching against the actual section, not a
// pattern, keeps a field name that happens to contain a dot unambiguous.
func FieldFromKey(contentKey, section string) string {
	if prefix := section + "."; strings.HasPrefix(contentKey, prefix) {
		return contentKey[len(prefix):]
	}
	// Key stored without the section prefix; treat it as the field name.
	return contentKey
}
