// Package answer is the request-level orchestration: validate the question,
// load seed candidates, rank them, and turn the best pages plus the question
// into one grounded chat completion.
package answer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goanswer/internal/llm"
	"github.com/hyperifyio/goanswer/internal/rank"
	"github.com/hyperifyio/goanswer/internal/seed"
	"github.com/hyperifyio/goanswer/internal/token"
)

// minTokenLen drops short stop-word-like tokens before ranking. The filter
// lives here, not in the tokenizer, so the tokenizer stays a pure splitter.
const minTokenLen = 3

// systemPrompt fixes the grounding contract for every completion.
const systemPrompt = "You are an internal knowledge assistant. Answer using the provided context. " +
	"Include concise bullet points when helpful. Cite sources as [1](URL). " +
	"If the context is insufficient, say so and suggest next steps."

// noContextAnswer is the canned reply when ranking finds nothing relevant.
// This is a successful outcome, not an error.
const noContextAnswer = "I couldn't find relevant documentation for that question yet. " +
	"Try a different phrasing or add a keyword from the docs."

// fallbackAnswer covers a completion that returns no text at all.
const fallbackAnswer = "No answer generated."

// Sentinel errors let the HTTP layer map outcomes to status codes.
var (
	// ErrEmptyQuestion is a client error, raised before any I/O.
	ErrEmptyQuestion = errors.New("question is required")
	// ErrNotConfigured means the completion client or model is missing.
	ErrNotConfigured = errors.New("completion client not configured")
	// ErrNoSeeds means the candidate dataset is absent or empty.
	ErrNoSeeds = errors.New("no seed documents available")
	// ErrCompletion wraps an upstream completion failure.
	ErrCompletion = errors.New("completion call failed")
)

// Source is one citation in the response payload. Its ID is the 1-based
// index the assembled context used for the same document.
type Source struct {
	ID    int    `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Response is the answer payload returned to the caller.
type Response struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources"`
}

// SeedProvider supplies candidate URLs, at most limit of them, in order.
type SeedProvider interface {
	Load(limit int) ([]seed.Doc, error)
}

// DocRanker narrows the ranking pipeline for fake injection in tests.
type DocRanker interface {
	Rank(ctx context.Context, urls []string, tokens []string) []rank.Document
}

// Service wires the collaborators for one answering endpoint. All
// configuration is explicit; the service never reads the environment.
type Service struct {
	Seeds  SeedProvider
	Ranker DocRanker
	Client llm.Client
	Model  string
	// SeedLimit caps candidates per question. Zero means seed.DefaultLimit.
	SeedLimit int
}

// Ask answers one question. Outcomes: ErrEmptyQuestion for blank input,
// ErrNotConfigured/ErrNoSeeds when collaborators are unavailable, a canned
// no-context Response when ranking finds nothing, and otherwise the model's
// answer with 1-based source citations matching context order.
func (s *Service) Ask(ctx context.Context, question string) (Response, error) {
	if strings.TrimSpace(question) == "" {
		return Response{}, ErrEmptyQuestion
	}
	if s.Client == nil || strings.TrimSpace(s.Model) == "" {
		return Response{}, ErrNotConfigured
	}

	limit := s.SeedLimit
	if limit <= 0 {
		limit = seed.DefaultLimit
	}
	seeds, err := s.Seeds.Load(limit)
	if err != nil {
		return Response{}, fmt.Errorf("load seeds: %w", err)
	}
	if len(seeds) == 0 {
		return Response{}, ErrNoSeeds
	}

	tokens := token.FilterShort(token.Tokenize(question), minTokenLen)
	urls := make([]string, 0, len(seeds))
	for _, d := range seeds {
		urls = append(urls, d.URL)
	}

	ranked := s.Ranker.Rank(ctx, urls, tokens)
	if len(ranked) == 0 {
		log.Debug().Str("question", question).Msg("no relevant context found")
		return Response{Answer: noContextAnswer, Sources: []Source{}}, nil
	}

	contextBlock := rank.BuildContext(ranked)
	completion, err := s.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.Model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Question: %s\n\nContext:\n%s", question, contextBlock)},
		},
	})
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrCompletion, err)
	}

	text := ""
	if len(completion.Choices) > 0 {
		text = strings.TrimSpace(completion.Choices[0].Message.Content)
	}
	if text == "" {
		text = fallbackAnswer
	}

	sources := make([]Source, 0, len(ranked))
	for i, d := range ranked {
		sources = append(sources, Source{ID: i + 1, URL: d.URL, Title: d.Title})
	}
	return Response{Answer: text, Sources: sources}, nil
}
