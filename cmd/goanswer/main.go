package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/goanswer/internal/answer"
	"github.com/hyperifyio/goanswer/internal/app"
	"github.com/hyperifyio/goanswer/internal/extract"
	"github.com/hyperifyio/goanswer/internal/fetch"
	"github.com/hyperifyio/goanswer/internal/llm"
	"github.com/hyperifyio/goanswer/internal/rank"
	"github.com/hyperifyio/goanswer/internal/seed"
	"github.com/hyperifyio/goanswer/internal/server"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	var (
		addr        string
		configPath  string
		seedPath    string
		seedLimit   int
		llmBaseURL  string
		llmModel    string
		llmKey      string
		userAgent   string
		timeout     time.Duration
		concurrency int
		maxDocs     int
		verbose     bool
	)

	flag.StringVar(&addr, "addr", "", "HTTP listen address (default :8080)")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file path")
	flag.StringVar(&seedPath, "seed.csv", "", "Path to the crawl CSV with a url column")
	flag.IntVar(&seedLimit, "seed.limit", 0, "Maximum seed URLs considered per question")
	flag.StringVar(&llmBaseURL, "llm.base", "", "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", "", "Model name")
	flag.StringVar(&llmKey, "llm.key", "", "API key for the OpenAI-compatible server")
	flag.StringVar(&userAgent, "fetch.ua", "", "User-Agent for candidate fetches")
	flag.DurationVar(&timeout, "fetch.timeout", 0, "Per-fetch timeout (default 10s)")
	flag.IntVar(&concurrency, "fetch.concurrency", 0, "Maximum in-flight fetches (default 3)")
	flag.IntVar(&maxDocs, "max.contextDocs", 0, "Maximum ranked documents in the prompt context (default 4)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		Addr:             addr,
		SeedPath:         seedPath,
		SeedLimit:        seedLimit,
		LLMBaseURL:       llmBaseURL,
		LLMModel:         llmModel,
		LLMAPIKey:        llmKey,
		UserAgent:        userAgent,
		FetchTimeout:     timeout,
		FetchConcurrency: concurrency,
		MaxContextDocs:   maxDocs,
		Verbose:          verbose,
	}
	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load config file")
		}
		app.MergeFileConfig(&cfg, fc)
	}
	app.ApplyDefaults(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if cfg.LLMAPIKey == "" {
		log.Fatal().Msg("LLM_API_KEY not configured")
	}
	if cfg.SeedPath == "" {
		log.Fatal().Msg("seed CSV path not configured (use -seed.csv or SEED_CSV_PATH)")
	}

	svc := buildService(cfg)
	e := server.New(svc)

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func buildService(cfg app.Config) *answer.Service {
	clientCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		clientCfg.BaseURL = cfg.LLMBaseURL
	}

	fetcher := &fetch.Client{
		UserAgent:     cfg.UserAgent,
		Timeout:       cfg.FetchTimeout,
		MaxConcurrent: cfg.FetchConcurrency,
	}
	ranker := &rank.Ranker{
		Fetcher:       fetcher,
		Extractor:     extract.HTMLExtractor{},
		Concurrency:   cfg.FetchConcurrency,
		MaxDocs:       cfg.MaxContextDocs,
		SnippetMaxLen: cfg.SnippetMaxLen,
	}
	return &answer.Service{
		Seeds:     &seed.Provider{Path: cfg.SeedPath},
		Ranker:    ranker,
		Client:    &llm.OpenAIProvider{Inner: openai.NewClientWithConfig(clientCfg)},
		Model:     cfg.LLMModel,
		SeedLimit: cfg.SeedLimit,
	}
}
