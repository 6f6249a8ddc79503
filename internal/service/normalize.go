package service

import "strings"

// normalizeMovies turns free-form multi-line movie text into the
// ordered entries sequence: one entry per line, whitespace trimmed,
// blank lines dropped. Line order is preserved.
func normalizeMovies(raw string) []string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if entry := strings.TrimSpace(line); entry != "" {
			out = append(out, entry)
		}
	}
	return out
}
