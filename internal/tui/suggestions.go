package tui

import (
	"strings"

	"github.com/akyairhashvil/lighttrack/internal/config"
)

// filterSuggestions keeps recent names containing query (case-insensitive),
// preserving recency order. Exact matches are dropped.
func filterSuggestions(recent []string, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []string
	for _, name := range recent {
		lower := strings.ToLower(name)
		if q != "" && (lower == q || !strings.Contains(lower, q)) {
			continue
		}
		out = append(out, name)
		if len(out) == config.MaxSuggestions {
			break
		}
	}
	return out
}
