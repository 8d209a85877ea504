// Package rank runs the retrieval pipeline: fetch each candidate URL under a
// concurrency gate, score its text against the question tokens, and keep the
// top-scoring documents. Per-URL failures are absorbed here; an empty result
// is a valid outcome, not an error.
package rank

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goanswer/internal/extract"
	"github.com/hyperifyio/goanswer/internal/fetch"
	"github.com/hyperifyio/goanswer/internal/score"
	"github.com/hyperifyio/goanswer/internal/snippet"
)

// DefaultConcurrency bounds in-flight fetches during one ranking pass.
const DefaultConcurrency = 3

// DefaultMaxDocs caps how many ranked documents feed the prompt context.
const DefaultMaxDocs = 4

// Document is a scored, snippet-bearing candidate that survived filtering.
type Document struct {
	URL     string
	Title   string
	Snippet string
	Score   int
}

// Fetcher is the single capability the ranker needs from the network layer.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

var fetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "goanswer_fetch_failures_total",
	Help: "Candidate fetches dropped during ranking, by reason.",
}, []string{"reason"})

// Ranker orchestrates concurrency-gated fetch, extraction and scoring.
type Ranker struct {
	Fetcher   Fetcher
	Extractor extract.Extractor
	// Concurrency limits in-flight fetches. Zero means DefaultConcurrency.
	Concurrency int
	// MaxDocs caps the result list. Zero means DefaultMaxDocs.
	MaxDocs int
	// SnippetMaxLen bounds excerpt length. Zero means snippet.DefaultMaxLen.
	SnippetMaxLen int
}

// Rank fetches and scores every candidate URL and returns at most MaxDocs
// documents ordered by descending score. Ties keep the original candidate
// order, so the output is independent of fetch completion order. Candidates
// that fail to fetch, extract to nothing, or score zero are dropped silently.
func (r *Ranker) Rank(ctx context.Context, urls []string, tokens []string) []Document {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	maxDocs := r.MaxDocs
	if maxDocs <= 0 {
		maxDocs = DefaultMaxDocs
	}

	// Results land in their candidate's slot so ties preserve enumeration
	// order regardless of which fetch finishes first.
	slots := make([]*Document, len(urls))
	gate := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			gate <- struct{}{}
			defer func() { <-gate }()
			slots[i] = r.rankOne(ctx, u, tokens)
		}(i, u)
	}
	wg.Wait()

	ranked := make([]Document, 0, len(urls))
	for _, d := range slots {
		if d != nil {
			ranked = append(ranked, *d)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > maxDocs {
		ranked = ranked[:maxDocs]
	}
	return ranked
}

// rankOne produces a Document for one candidate, or nil when the candidate
// contributes nothing. All failure modes stop here.
func (r *Ranker) rankOne(ctx context.Context, url string, tokens []string) *Document {
	raw, err := r.Fetcher.Get(ctx, url)
	if err != nil {
		reason := failureReason(err)
		fetchFailures.WithLabelValues(reason).Inc()
		log.Debug().Str("url", url).Str("reason", reason).Err(err).Msg("candidate dropped")
		return nil
	}

	doc := r.Extractor.Extract(raw)
	if doc.Text == "" {
		fetchFailures.WithLabelValues("empty_body").Inc()
		log.Debug().Str("url", url).Msg("candidate dropped: no extractable text")
		return nil
	}

	total := score.Score(doc.Text, tokens)
	if total == 0 {
		return nil
	}

	title := doc.Title
	if title == "" {
		title = url
	}
	return &Document{
		URL:     url,
		Title:   title,
		Snippet: snippet.Build(doc.Text, tokens, r.SnippetMaxLen),
		Score:   total,
	}
}

func failureReason(err error) string {
	var se *fetch.StatusError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &se):
		return "status"
	case errors.Is(err, fetch.ErrUnsupportedScheme):
		return "scheme"
	default:
		return "transport"
	}
}
