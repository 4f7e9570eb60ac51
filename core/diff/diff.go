package diff

import "sort"

// Result is the outcome of diffing a declared key set against a remote one.
type Result struct {
	// Missing are declared keys absent from the remote set.
	Missing []string `json:"missing"`
	// Present are declared keys the remote set already has.
	Present []string `json:"present"`
	// Extra are remote keys that were never declared. They are reported
	// for observability only; reconciliation is strictly one-way and never
	// deletes remote data.
	Extra []string `json:"extra"`
}

// Summary provides aggregate counts for a diff result.
type Summary struct {
	Declared int `json:"declared"`
	Remote   int `json:"remote"`
	Missing  int `json:"missing"`
	Extra    int `json:"extra"`
}

// Keys computes the one-way difference between a declared key list and the
// keys a remote store actually contains. Output slices are sorted for
// deterministic reporting.
func Keys(declared, remote []string) Result {
	remoteSet := make(map[string]struct{}, len(remote))
	for _, key := range remote {
		remoteSet[key] = struct{}{}
	}
	declaredSet := make(map[string]struct{}, len(declared))
	for _, key := range declared {
		declaredSet[key] = struct{}{}
	}

	var result Result
	for key := range declaredSet {
		if _, ok := remoteSet[key]; ok {
			result.Present = append(result.Present, key)
		} else {
			result.Missing = append(result.Missing, key)
		}
	}
	for key := range remoteSet {
		if _, ok := declaredSet[key]; !ok {
			result.Extra = append(result.Extra, key)
		}
	}

	sort.Strings(result.Missing)
	sort.Strings(result.Present)
	sort.Strings(result.Extra)
	return result
}

// Summarize builds aggregate counts from a diff result.
func Summarize(declared, remote []string, r Result) Summary {
	return Summary{
		Declared: len(declared),
		Remote:   len(remote),
		Missing:  len(r.Missing),
		Extra:    len(r.Extra),
	}
}
