package quote

import (
	"sort"
	"strings"
)

// Line is one stored master-quote line: the last-known pricing for an item
// code quoted to a customer. Lines without a code are never stored.
type Line struct {
	Name  string `json:"name"`
	UOM   string `json:"uom"`
	Code  string `json:"code"`
	Price Price  `json:"price"`
}

// Record is a customer's master quote. DisplayName keeps the first
// human-entered spelling of the name; Items is keyed by item code.
type Record struct {
	DisplayName string          `json:"displayName"`
	Items       map[string]Line `json:"items"`
}

// SortedCodes returns the record's item codes in canonical display order.
func (r *Record) SortedCodes() []string {
	codes := make([]string, 0, len(r.Items))
	for code := range r.Items {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Clone deep-copies the record so callers can hold it outside the store lock.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	items := make(map[string]Line, len(r.Items))
	for code, line := range r.Items {
		items[code] = line
	}
	return &Record{DisplayName: r.DisplayName, Items: items}
}

// Registry maps normalized customer keys to records.
type Registry map[string]*Record

// NormalizeKey derives the registry key from a raw customer name: trimmed and
// lower-cased. An empty result is never a valid key.
func NormalizeKey(rawName string) string {
	return strings.ToLower(strings.TrimSpace(rawName))
}

func (reg Registry) Lookup(key string) (*Record, bool) {
	if key == "" {
		return nil, false
	}
	rec, ok := reg[key]
	return rec, ok
}

// Upsert stores rec under key. If a record already exists with a display
// name, that spelling wins over the incoming one.
func (reg Registry) Upsert(key string, rec *Record) {
	if key == "" || rec == nil {
		return
	}
	if prev, ok := reg[key]; ok && prev.DisplayName != "" {
		rec.DisplayName = prev.DisplayName
	}
	if rec.DisplayName == "" {
		rec.DisplayName = key
	}
	reg[key] = rec
}

func (reg Registry) Remove(key string) bool {
	if _, ok := reg[key]; !ok {
		return false
	}
	delete(reg, key)
	return true
}

// Suggestion is a customer-name autocomplete hit.
type Suggestion struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
}

// Search matches query as a case-insensitive substring of every display name
// (key when the display name is absent). Empty query means no results, not
// all. Results sort by display name, case-insensitively.
func (reg Registry) Search(query string) []Suggestion {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}
	var matches []Suggestion
	for key, rec := range reg {
		name := rec.DisplayName
		if name == "" {
			name = key
		}
		if strings.Contains(strings.ToLower(name), term) {
			matches = append(matches, Suggestion{Key: key, DisplayName: name})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return strings.ToLower(matches[i].DisplayName) < strings.ToLower(matches[j].DisplayName)
	})
	return matches
}

// Summary is one row of the customer management list.
type Summary struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	ItemCount   int    `json:"itemCount"`
}

// Summaries lists every customer sorted by display name, case-insensitively.
func (reg Registry) Summaries() []Summary {
	out := make([]Summary, 0, len(reg))
	for key, rec := range reg {
		name := rec.DisplayName
		if name == "" {
			name = key
		}
		out = append(out, Summary{Key: key, DisplayName: name, ItemCount: len(rec.Items)})
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].DisplayName) < strings.ToLower(out[j].DisplayName)
	})
	return out
}
