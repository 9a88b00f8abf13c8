package hiring

import "strings"

// maxSearchDepth bounds how far SearchText descends. Values nested deeper than
// this contribute nothing.
const maxSearchDepth = 5

// SearchText returns every scalar reachable from v, space-joined and
// lowercased. Only sequences and mappings produce text at the root.
func SearchText(v Value) string {
	if v.Kind() != ValueSequence && v.Kind() != ValueMapping {
		return ""
	}
	var parts []string
	collectScalars(v, 0, &parts)
	return strings.ToLower(strings.Join(parts, " "))
}

func collectScalars(v Value, depth int, parts *[]string) {
	if depth > maxSearchDepth {
		return
	}
	switch v.Kind() {
	case ValueScalar:
		*parts = append(*parts, v.Text())
	case ValueSequence:
		for _, item := range v.Items() {
			collectScalars(item, depth+1, parts)
		}
	case ValueMapping:
		for _, f := range v.Fields() {
			collectScalars(f.Value, depth+1, parts)
		}
	case ValueEmpty:
	}
}

// Filter returns the records of the given kind (all kinds when kind is empty)
// whose search text contains query, case-insensitively. The query is not
// trimmed. The result is a new slice; records is not modified.
func Filter(records []Record, query string, kind Kind) []Record {
	needle := strings.ToLower(query)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if kind != "" && r.Kind != kind {
			continue
		}
		if needle != "" && !strings.Contains(r.SearchText, needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}
