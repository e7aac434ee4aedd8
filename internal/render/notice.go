package render

import "strings"

// normalizeNotice strips per-line leading whitespace and trailing blank
// lines from the notice text. Notice bodies are often declared as indented
// multi-line literals; the indentation is an artifact of the source, not of
// the notice itself.
func normalizeNotice(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	out := strings.Join(lines, "\n")
	return strings.TrimRight(out, "\n")
}
