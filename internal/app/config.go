// Package app holds runtime configuration. Components receive an explicit
// Config; nothing below cmd reads the process environment directly.
package app

import "time"

// Config holds every runtime knob of the service.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string

	// Seed dataset
	SeedPath  string
	SeedLimit int

	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Fetching
	UserAgent        string
	FetchTimeout     time.Duration
	FetchConcurrency int

	// Ranking
	MaxContextDocs int
	SnippetMaxLen  int

	Verbose bool
}

// Defaults mirror the constants used by the pipeline when fields are zero.
const (
	DefaultAddr       = ":8080"
	DefaultModel      = "gpt-4o-mini"
	DefaultUserAgent  = "goanswer/1.0 (+https://github.com/hyperifyio/goanswer)"
	DefaultSeedLimit  = 60
	DefaultMaxDocs    = 4
	DefaultConcurrent = 3
	DefaultTimeout    = 10 * time.Second
)

// ApplyDefaults fills unset fields with service defaults.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = DefaultModel
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.SeedLimit == 0 {
		cfg.SeedLimit = DefaultSeedLimit
	}
	if cfg.MaxContextDocs == 0 {
		cfg.MaxContextDocs = DefaultMaxDocs
	}
	if cfg.FetchConcurrency == 0 {
		cfg.FetchConcurrency = DefaultConcurrent
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = DefaultTimeout
	}
}
