// Package snippet extracts a short, question-relevant excerpt from a page body.
package snippet

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hyperifyio/goanswer/internal/score"
)

// DefaultMaxLen bounds the excerpt length when callers pass maxLen <= 0.
const DefaultMaxLen = 600

// minParagraphLen filters out headings, nav crumbs and similar short lines.
const minParagraphLen = 40

var paragraphSplit = regexp.MustCompile(`\n+`)

// Build picks the paragraph of content most relevant to the tokens and
// returns it truncated to maxLen. Paragraphs are newline-separated blocks
// longer than 40 characters after trimming; if none qualify, the raw content
// truncated to maxLen is returned. Among qualifying paragraphs the first one
// with a positive score wins; ties and all-zero scores fall back to the
// original paragraph order.
func Build(content string, tokens []string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	paragraphs := make([]string, 0, 16)
	for _, p := range paragraphSplit.Split(content, -1) {
		p = strings.TrimSpace(p)
		if len(p) > minParagraphLen {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) == 0 {
		return truncate(content, maxLen)
	}

	type ranked struct {
		text  string
		score int
	}
	rankedParagraphs := make([]ranked, 0, len(paragraphs))
	for _, p := range paragraphs {
		rankedParagraphs = append(rankedParagraphs, ranked{text: p, score: score.Score(p, tokens)})
	}
	sort.SliceStable(rankedParagraphs, func(i, j int) bool {
		return rankedParagraphs[i].score > rankedParagraphs[j].score
	})

	best := rankedParagraphs[0]
	for _, r := range rankedParagraphs {
		if r.score > 0 {
			best = r
			break
		}
	}
	return truncate(best.text, maxLen)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
