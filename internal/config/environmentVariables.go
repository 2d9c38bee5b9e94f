package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	Version      = "0.1.0"
	TRACE_ID_KEY = "traceId"

	RATE_LIMIT_PER_SECOND       = 5
	BURST_RATE_LIMIT_PER_SECOND = 10

	//serverTimeouts
	ReadTimeout            = 15 * time.Second
	WriteTimeout           = 120 * time.Second //LLM calls are slow
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//extraction
	PageExtractTimeout = 10 * time.Second

	//news proxy
	NewsFeedURL      = "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"
	NewsMaxArticles  = 10
	NewsDescMaxChars = 250

	//pooled http transport
	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//fallback embedder
	HashEmbeddingDimension = 256
)

// Settings holds everything read from the environment. Defaults mirror the
// values the service ships with; a .env file is honored when present.
type Settings struct {
	ListenAddr string
	APIPrefix  string
	Debug      bool

	LogLevel string
	LogFile  string

	GeminiAPIKey   string
	LLMModel       string
	EmbeddingModel string

	MaxFileSizeMB    int
	AllowedFileTypes []string

	ChunkSize    int
	ChunkOverlap int
	TopKResults  int

	SessionMaxAge   time.Duration
	CleanupInterval time.Duration
}

var (
	settings *Settings
	once     sync.Once
)

// Get loads the settings exactly once. Call Validate afterwards from main.
func Get() *Settings {
	once.Do(func() {
		_ = godotenv.Load() //a missing .env is not an error

		settings = &Settings{
			ListenAddr:       envString("LISTEN_ADDR", ":8000"),
			APIPrefix:        envString("API_PREFIX", "/api"),
			Debug:            envBool("DEBUG", false),
			LogLevel:         envString("LOG_LEVEL", "INFO"),
			LogFile:          envString("LOG_FILE", "logs/api.log"),
			GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
			LLMModel:         envString("LLM_MODEL", "gemini-2.5-flash"),
			EmbeddingModel:   envString("EMBEDDING_MODEL", "gemini-embedding-001"),
			MaxFileSizeMB:    envInt("MAX_FILE_SIZE_MB", 20),
			AllowedFileTypes: envList("ALLOWED_FILE_TYPES", []string{"pdf", "png", "jpg", "jpeg", "docx", "txt", "tiff", "bmp"}),
			ChunkSize:        envInt("CHUNK_SIZE", 500),
			ChunkOverlap:     envInt("CHUNK_OVERLAP", 50),
			TopKResults:      envInt("TOP_K_RESULTS", 3),
			SessionMaxAge:    time.Duration(envInt("SESSION_MAX_AGE_HOURS", 24)) * time.Hour,
			CleanupInterval:  time.Duration(envInt("SESSION_CLEANUP_INTERVAL_MINUTES", 60)) * time.Minute,
		}
	})
	return settings
}

// Validate rejects configurations the pipeline cannot run with.
func (s *Settings) Validate() error {
	if s.MaxFileSizeMB < 1 || s.MaxFileSizeMB > 100 {
		return fmt.Errorf("MAX_FILE_SIZE_MB must be between 1 and 100, got %d", s.MaxFileSizeMB)
	}
	if s.ChunkSize <= 0 {
		return fmt.Errorf("CHUNK_SIZE must be positive, got %d", s.ChunkSize)
	}
	if s.ChunkOverlap < 0 || s.ChunkOverlap >= s.ChunkSize {
		return fmt.Errorf("CHUNK_OVERLAP must satisfy 0 <= overlap < CHUNK_SIZE, got %d", s.ChunkOverlap)
	}
	if s.TopKResults <= 0 {
		return fmt.Errorf("TOP_K_RESULTS must be positive, got %d", s.TopKResults)
	}
	if s.SessionMaxAge <= 0 {
		return fmt.Errorf("SESSION_MAX_AGE_HOURS must be positive")
	}
	if s.CleanupInterval <= 0 {
		return fmt.Errorf("SESSION_CLEANUP_INTERVAL_MINUTES must be positive")
	}
	switch strings.ToUpper(s.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not one of DEBUG, INFO, WARNING, ERROR", s.LogLevel)
	}
	return nil
}

func (s *Settings) MaxFileSizeBytes() int64 {
	return int64(s.MaxFileSizeMB) << 20
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
