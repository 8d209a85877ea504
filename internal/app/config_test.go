package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)
	if cfg.Addr != DefaultAddr || cfg.LLMModel != DefaultModel {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.FetchConcurrency != 3 || cfg.MaxContextDocs != 4 || cfg.FetchTimeout != 10*time.Second {
		t.Fatalf("pipeline defaults wrong: %+v", cfg)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{Addr: ":9999", FetchConcurrency: 7}
	ApplyDefaults(&cfg)
	if cfg.Addr != ":9999" || cfg.FetchConcurrency != 7 {
		t.Fatalf("explicit values overwritten: %+v", cfg)
	}
}

func TestApplyEnvToConfig(t *testing.T) {
	t.Setenv("SEED_CSV_PATH", "/data/urls.csv")
	t.Setenv("LLM_MODEL", "test-model")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("FETCH_CONCURRENCY", "5")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("VERBOSE", "true")

	var cfg Config
	ApplyEnvToConfig(&cfg)
	if cfg.SeedPath != "/data/urls.csv" || cfg.LLMModel != "test-model" || cfg.LLMAPIKey != "sk-test" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.FetchConcurrency != 5 || cfg.FetchTimeout != 3*time.Second || !cfg.Verbose {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestApplyEnvToConfig_ExplicitWins(t *testing.T) {
	t.Setenv("LLM_MODEL", "from-env")
	cfg := Config{LLMModel: "explicit"}
	ApplyEnvToConfig(&cfg)
	if cfg.LLMModel != "explicit" {
		t.Fatalf("env overrode explicit value: %q", cfg.LLMModel)
	}
}

func TestLoadConfigFile_Merge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goanswer.yaml")
	content := "addr: \":7070\"\nseed:\n  path: /data/urls.csv\n  limit: 30\nllm:\n  model: file-model\n  key: sk-file\nfetch:\n  timeout: 5s\n  concurrency: 2\nmax:\n  contextDocs: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := Config{LLMModel: "flag-model"}
	MergeFileConfig(&cfg, fc)
	if cfg.LLMModel != "flag-model" {
		t.Fatalf("file overrode flag value: %q", cfg.LLMModel)
	}
	if cfg.Addr != ":7070" || cfg.SeedPath != "/data/urls.csv" || cfg.SeedLimit != 30 {
		t.Fatalf("file values not merged: %+v", cfg)
	}
	if cfg.FetchTimeout != 5*time.Second || cfg.FetchConcurrency != 2 || cfg.MaxContextDocs != 3 {
		t.Fatalf("file values not merged: %+v", cfg)
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
