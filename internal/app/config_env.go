package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Addr == "" {
		cfg.Addr = os.Getenv("LISTEN_ADDR")
	}
	if cfg.SeedPath == "" {
		cfg.SeedPath = os.Getenv("SEED_CSV_PATH")
	}
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = os.Getenv("LLM_MODEL")
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = os.Getenv("LLM_API_KEY")
		if cfg.LLMAPIKey == "" {
			cfg.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
		}
	}

	if cfg.SeedLimit == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("SEED_LIMIT"))); err == nil && n > 0 {
			cfg.SeedLimit = n
		}
	}
	if cfg.FetchConcurrency == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("FETCH_CONCURRENCY"))); err == nil && n > 0 {
			cfg.FetchConcurrency = n
		}
	}
	if cfg.MaxContextDocs == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("MAX_CONTEXT_DOCS"))); err == nil && n > 0 {
			cfg.MaxContextDocs = n
		}
	}
	if cfg.FetchTimeout == 0 {
		if s := os.Getenv("FETCH_TIMEOUT"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.FetchTimeout = d
			}
		}
	}

	if !cfg.Verbose {
		switch strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))) {
		case "1", "true", "yes", "on":
			cfg.Verbose = true
		}
	}
}
