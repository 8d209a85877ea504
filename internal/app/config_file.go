package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to flags and env variables.
type FileConfig struct {
	Addr string `yaml:"addr"`

	Seed struct {
		Path  string `yaml:"path"`
		Limit int    `yaml:"limit"`
	} `yaml:"seed"`

	LLM struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
	} `yaml:"llm"`

	Fetch struct {
		UserAgent string `yaml:"ua"`
		// Timeout is a duration string like "10s".
		Timeout     string `yaml:"timeout"`
		Concurrency int    `yaml:"concurrency"`
	} `yaml:"fetch"`

	Max struct {
		ContextDocs int `yaml:"contextDocs"`
		SnippetLen  int `yaml:"snippetLen"`
	} `yaml:"max"`

	Verbose bool `yaml:"verbose"`
}

// LoadConfigFile reads a YAML config file into a FileConfig. A missing file
// is an error here; callers decide whether the file was optional.
func LoadConfigFile(path string) (*FileConfig, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &fc, nil
}

// MergeFileConfig fills unset cfg fields from fc. Flags and env that already
// populated cfg win over the file.
func MergeFileConfig(cfg *Config, fc *FileConfig) {
	if cfg == nil || fc == nil {
		return
	}
	if cfg.Addr == "" {
		cfg.Addr = fc.Addr
	}
	if cfg.SeedPath == "" {
		cfg.SeedPath = fc.Seed.Path
	}
	if cfg.SeedLimit == 0 {
		cfg.SeedLimit = fc.Seed.Limit
	}
	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if cfg.FetchTimeout == 0 && fc.Fetch.Timeout != "" {
		if d, err := time.ParseDuration(fc.Fetch.Timeout); err == nil {
			cfg.FetchTimeout = d
		}
	}
	if cfg.FetchConcurrency == 0 {
		cfg.FetchConcurrency = fc.Fetch.Concurrency
	}
	if cfg.MaxContextDocs == 0 {
		cfg.MaxContextDocs = fc.Max.ContextDocs
	}
	if cfg.SnippetMaxLen == 0 {
		cfg.SnippetMaxLen = fc.Max.SnippetLen
	}
	if !cfg.Verbose {
		cfg.Verbose = fc.Verbose
	}
}
