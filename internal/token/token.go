package token

import "strings"

// Tokenize lowercases the input and splits it on runs of non-alphanumeric
// characters, dropping empty pieces. Empty input yields an empty slice.
func Tokenize(s string) []string {
	lower := strings.ToLower(s)
	out := make([]string, 0, 8)
	start := -1
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, lower[start:i])
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, lower[start:])
	}
	return out
}

// FilterShort drops tokens shorter than min characters. Order is preserved.
func FilterShort(tokens []string, min int) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if len(t) >= min {
			out = append(out, t)
		}
	}
	return out
}
