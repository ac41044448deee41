package parser

import (
	"strings"
)

const (
	// DefaultTitleLength is the rune budget of a generated title.
	DefaultTitleLength = 60
	// NoTitle is used when a message has no usable first line.
	NoTitle = "(no title)"
)

// BuildTitleFromText derives a post title from the first non-blank line
// of text with its leading hashtags removed, cut to maxLength runes.
func BuildTitleFromText(text string, maxLength int) string {
	for _, rawLine := range splitLines(text) {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		words := strings.Fields(line)
		i := 0
		for i < len(words) && strings.HasPrefix(words[i], "#") {
			i++
		}

		candidate := line
		if i < len(words) {
			candidate = strings.Join(words[i:], " ")
		}

		return truncateRunes(candidate, maxLength)
	}

	return NoTitle
}

// TextToHTML renders plain text as paragraphs: a blank line starts a new
// paragraph and single newlines become <br>. The text is not escaped.
func TextToHTML(text string) string {
	stripped := strings.TrimSpace(normalizeNewlines(text))
	if stripped == "" {
		return "<p></p>"
	}

	var b strings.Builder
	for _, para := range strings.Split(stripped, "\n\n") {
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(para, "\n", "<br>"))
		b.WriteString("</p>")
	}
	return b.String()
}

func splitLines(text string) []string {
	return strings.Split(normalizeNewlines(text), "\n")
}

func normalizeNewlines(text string) string {
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(text)
}

func truncateRunes(s string, limit int) string {
	if limit < 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
