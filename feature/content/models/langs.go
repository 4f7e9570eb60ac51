package models

// Supported language codes. The set is closed: rows carry one column per
// code, and the tree rejects anything else at the boundary.
const (
	LangEN = "en"
	LangSV = "sv"
	LangDE = "de"
	LangPL = "pl"
)

// PrimaryLanguage is the language reads fall back to.
const PrimaryLanguage = LangEN

// Languages lists every supported code in a stable order.
var Languages = []string{LangEN, LangSV, LangDE, LangPL}

// IsLanguage reports whether code is a supported language.
func IsLanguage(code string) bool {
	switch code {
	case LangEN, LangSV, LangDE, LangPL:
		return true
	}
	return false
}

// LangValues is the fixed per-language record for one field. A fixed record
// rather than an open map keeps unknown codes unrepresentable past the
// boundary check.
type LangValues struct {
	En Value `json:"en"`
	Sv Value `json:"sv"`
	De Value `json:"de"`
	Pl Value `json:"pl"`
}

// Get returns the value for a language code. The second return is false for
// unknown codes.
func (lv *LangValues) Get(code string) (Value, bool) {
	switch code {
	case LangEN:
		return lv.En, true
	case LangSV:
		return lv.Sv, true
	case LangDE:
		return lv.De, true
	case LangPL:
		return lv.Pl, true
	}
	return Value{}, false
}

// Set stores the value for a language code, reporting false for unknown codes.
func (lv *LangValues) Set(code string, v Value) bool {
	switch code {
	case LangEN:
		lv.En = v
	case LangSV:
		lv.Sv = v
	case LangDE:
		lv.De = v
	case LangPL:
		lv.Pl = v
	default:
		return false
	}
	return true
}

// Clone returns a deep copy.
func (lv LangValues) Clone() LangValues {
	return LangValues{
		En: lv.En.Clone(),
		Sv: lv.Sv.Clone(),
		De: lv.De.Clone(),
		Pl: lv.Pl.Clone(),
	}
}
