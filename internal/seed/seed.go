// Package seed supplies candidate URLs from a crawl CSV. It is the external
// input boundary of the pipeline: an absent dataset is an empty candidate
// set, not an error.
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
)

// DefaultLimit caps how many seed documents one ranking pass considers.
const DefaultLimit = 60

// Doc is one candidate source from the crawl dataset.
type Doc struct {
	URL       string
	Domain    string
	PathDepth int
}

// Provider reads seed documents from a CSV file with a header row containing
// a "url" column. Rows that do not parse as URLs are skipped.
type Provider struct {
	Path string
}

// Load returns up to limit seed documents in file order. A missing file
// yields an empty slice and no error; a malformed file is an error.
func (p *Provider) Load(limit int) ([]Doc, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	f, err := os.Open(p.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open seed csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read seed csv header: %w", err)
	}
	urlCol := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "url") {
			urlCol = i
			break
		}
	}
	if urlCol < 0 {
		return nil, errors.New("seed csv has no url column")
	}

	docs := make([]Doc, 0, limit)
	for len(docs) < limit {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read seed csv row: %w", err)
		}
		if urlCol >= len(record) {
			continue
		}
		raw := strings.TrimSpace(record[urlCol])
		if raw == "" {
			continue
		}
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Hostname() == "" {
			continue
		}
		docs = append(docs, Doc{
			URL:       raw,
			Domain:    parsed.Hostname(),
			PathDepth: pathDepth(parsed.Path),
		})
	}
	return docs, nil
}

func pathDepth(path string) int {
	depth := 0
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			depth++
		}
	}
	return depth
}
