package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        int

	// gemini
	GeminiAPIKey   string
	GeminiBaseURL  string
	EmbeddingModel string
	ChatModel      string

	// retrieval config
	MatchThreshold float64
	MatchCount     int
	MergeThreshold float64
	HistoryLimit   int
	EmbedTimeout   time.Duration
}

func Load() *Config {
	godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "5000"))
	if err != nil {
		port = 5000
	}

	return &Config{
		DatabaseURL: getEnv("SUPABASE_DB_URL", ""),
		Port:        port,

		// Gemini
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiBaseURL:  getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/"),
		EmbeddingModel: getEnv("EMBEDDING_MODEL", "text-embedding-004"),
		ChatModel:      getEnv("CHAT_MODEL", "gemini-2.0-flash"),

		// Retrieval Config
		MatchThreshold: getEnvFloat("MATCH_THRESHOLD", 0.5),
		MatchCount:     getEnvInt("MATCH_COUNT", 2),
		MergeThreshold: getEnvFloat("MERGE_THRESHOLD", 0.5),
		HistoryLimit:   getEnvInt("HISTORY_LIMIT", 1000),
		EmbedTimeout:   getEnvDuration("EMBED_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
