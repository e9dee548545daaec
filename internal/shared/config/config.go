package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const defaultMaxBodyBytes = 10 << 20 // 10MB

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	CORSAllowOrigin []string
	ObjectStoreType string
	DataDir         string
	RecipesKey      string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string
	MaxBodyBytes    int64
	WriteRateRPS    float64
	WriteRateBurst  int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	cfg := Config{
		Port:            getEnv("PORT", "3000"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		DataDir:         getEnv("DATA_DIR", "."),
		RecipesKey:      getEnv("RECIPES_KEY", "recipes.json"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", ""),
		MaxBodyBytes:    getEnvInt64("MAX_BODY_BYTES", defaultMaxBodyBytes),
		WriteRateRPS:    getEnvFloat("WRITE_RATE_LIMIT_RPS", 0),
		WriteRateBurst:  int(getEnvInt64("WRITE_RATE_LIMIT_BURST", 5)),
	}

	if cfg.ObjectStoreType == "s3" && cfg.S3Bucket == "" {
		log.Printf("OBJECT_STORE=s3 requires S3_BUCKET")
	}
	return cfg
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("config %s invalid int: %v", key, err)
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config %s invalid number: %v", key, err)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
