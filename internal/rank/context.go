package rank

import (
	"fmt"
	"strings"
)

// BuildContext formats ranked documents into the prompt context block, one
// numbered source per document in input order. The 1-based index here is the
// same id the response payload cites, so answers remain traceable.
func BuildContext(docs []Document) string {
	blocks := make([]string, 0, len(docs))
	for i, d := range docs {
		blocks = append(blocks, fmt.Sprintf("Source %d: %s\nURL: %s\nExcerpt: %s", i+1, d.Title, d.URL, d.Snippet))
	}
	return strings.Join(blocks, "\n\n")
}
