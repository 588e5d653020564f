package tabular

import (
	"fmt"
	"strings"
)

// normalizeHeaders trims names, names blank headers "Unnamed: i" and
// suffixes repeats with ".1", ".2" and so on.
func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	used := make(map[string]bool, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for n := 1; used[name]; n++ {
			name = fmt.Sprintf("%s.%d", h, n)
		}
		used[name] = true
		headers[i] = name
	}
	return headers
}
