package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	closingPunctuation = ".,!?:;)]}"
	openingPunctuation = "([{"
)

// ExtractHashtags returns the hashtags of text in order of first
// appearance. Punctuation glued to either end of a tag is dropped and
// matching is case-sensitive.
func ExtractHashtags(text string) []string {
	tags := lo.FilterMap(strings.Fields(text), func(token string, _ int) (string, bool) {
		if !strings.HasPrefix(token, "#") {
			return "", false
		}
		token = strings.TrimLeft(strings.TrimRight(token, closingPunctuation), openingPunctuation)
		if !strings.HasPrefix(token, "#") {
			return "", false
		}
		token = strings.TrimRight(token, closingPunctuation+openingPunctuation)
		if token == "#" || utf8.RuneCountInString(token) < 2 {
			return "", false
		}
		return token, true
	})

	return lo.Uniq(tags)
}
