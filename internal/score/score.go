// Package score counts whole-word occurrences of question tokens in text.
package score

import (
	"regexp"
	"strings"
)

// Score returns the total number of whole-word, case-insensitive occurrences
// of the given tokens in text. A token occurring three times contributes 3.
// Matching is bounded by word boundaries, so a token never matches inside a
// larger word ("card" does not match "cardboard"). Tokens are quoted before
// being compiled, so characters with regexp meaning cannot corrupt the match.
func Score(text string, tokens []string) int {
	if text == "" || len(tokens) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	total := 0
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(tok)) + `\b`)
		if err != nil {
			continue
		}
		total += len(re.FindAllStringIndex(lower, -1))
	}
	return total
}
